package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/showpick/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		// Recovery notices show until the first keypress.
		m.StartupNotices = nil

		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}
		if m.Add.CaptureMode {
			return m.handleAddKey(typed), nil
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Picker:
			m.CurrentView = ViewPicker
			return m, nil
		case m.Keys.Watched:
			m.CurrentView = ViewWatched
			return m, nil
		case m.Keys.Remaining:
			m.CurrentView = ViewRemaining
			return m, nil
		case m.Keys.Stats:
			m.CurrentView = ViewStats
			m.refreshRecentEvents()
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewPicker:
			return m.handlePickerKey(typed), nil
		case ViewWatched:
			var cmd tea.Cmd
			m.watchedList, cmd = m.watchedList.Update(typed)
			return m, cmd
		case ViewRemaining:
			var cmd tea.Cmd
			m.remainingList, cmd = m.remainingList.Update(typed)
			return m, cmd
		}
		return m, nil
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			if typed.View == ViewStats {
				m.refreshRecentEvents()
			}
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.fail(typed.Err)
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		p := m.engine.Progress()
		return fmt.Sprintf("final stats: %d watched, %d remaining\n", p.Watched, p.Remaining)
	}

	progress := m.engine.Progress()
	bar := m.pickProgress.ViewAs(progress.Percentage / 100)

	var body string
	switch {
	case m.HelpVisible:
		body = views.RenderHelpPanel(views.HelpPanelData{
			CurrentView: string(m.CurrentView),
			HelpView:    views.RenderMarkdown(views.HelpMarkdown()),
		})
	case m.Palette.Active:
		body = views.RenderPalettePanel(views.PalettePanelData{
			InputView: m.commandInput.View(),
		})
	case m.Add.CaptureMode:
		body = views.RenderAddPanel(m.addInput.View())
	case m.CurrentView == ViewWatched:
		body = views.RenderWatchedPanel(views.WatchedPanelData{
			ListView: m.watchedList.View(),
			Count:    progress.Watched,
		})
	case m.CurrentView == ViewRemaining:
		body = views.RenderRemainingPanel(views.RemainingPanelData{
			ListView: m.remainingList.View(),
			Count:    progress.Remaining,
		})
	case m.CurrentView == ViewStats:
		body = views.RenderStatsPanel(views.StatsPanelData{
			Watched:      progress.Watched,
			Remaining:    progress.Remaining,
			Total:        progress.Total,
			Percentage:   progress.Percentage,
			ProgressView: bar,
			Events:       eventRows(m.RecentEvents),
			EventsErr:    m.eventsErr,
		})
	default:
		data := views.PickerPanelData{
			ProgressView: bar,
			Percentage:   progress.Percentage,
			Remaining:    progress.Remaining,
			PoolEmpty:    progress.Remaining == 0 && progress.Total > 0,
			LastUndone:   m.LastUndone,
		}
		if m.LastPick != nil {
			data.LastPick = m.LastPick.Show
			data.LastPickedAt = m.LastPick.Timestamp.Format("2006-01-02 15:04")
			data.PoolEmpty = false
		}
		body = views.RenderPickerPanel(data)
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("showpick | view: %s", m.CurrentView),
		Body:       body,
		StatusLine: m.Status.Text,
		Footer:     fmt.Sprintf("keys: %s picker | %s watched | %s remaining | %s stats | / palette | %s help | %s quit", m.Keys.Picker, m.Keys.Watched, m.Keys.Remaining, m.Keys.Stats, m.Keys.Help, m.Keys.Quit),
		Notices:    m.StartupNotices,
	})
}
