package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/showpick/internal/commands"
	"github.com/sandeepkv93/showpick/internal/eventlog"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
		return m
	case "enter":
		input := m.commandInput.Value()
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.Blur()
		m.runCommand(input)
		return m
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	_ = cmd
	m.Palette.Input = m.commandInput.Value()
	return m
}

func (m *Model) runCommand(input string) {
	cmd, err := commands.Parse(input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	res, err := commands.Execute(cmd, m.paletteHandlers())
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	if res.Message != "" {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}
}

func (m *Model) paletteHandlers() commands.Handlers {
	return commands.Handlers{
		Pick: func() (commands.Result, error) {
			sel, ok, err := m.engine.SelectRandom()
			if err != nil {
				return commands.Result{}, err
			}
			if !ok {
				m.CurrentView = ViewPicker
				m.LastPick = nil
				return commands.Result{Message: "all shows watched, nothing left to pick"}, nil
			}
			m.LastPick = &sel
			m.LastUndone = ""
			m.CurrentView = ViewPicker
			m.syncBubbleData()
			m.recordEvent(sel.Show, eventlog.ActionWatched, "via palette")
			return commands.Result{Message: fmt.Sprintf("picked %s", sel.Show)}, nil
		},
		Undo: func() (commands.Result, error) {
			sel, ok, err := m.engine.UndoLast()
			if err != nil {
				return commands.Result{}, err
			}
			if !ok {
				return commands.Result{Message: "nothing to undo"}, nil
			}
			m.LastUndone = sel.Show
			if m.LastPick != nil && m.LastPick.Equal(sel) {
				m.LastPick = nil
			}
			m.CurrentView = ViewPicker
			m.syncBubbleData()
			m.recordEvent(sel.Show, eventlog.ActionUndone, "via palette")
			return commands.Result{Message: fmt.Sprintf("undid %s", sel.Show)}, nil
		},
		Add: func(args commands.AddArgs) (commands.Result, error) {
			if m.doAdd(args.Name) {
				return commands.Result{Message: fmt.Sprintf("added %s", args.Name)}, nil
			}
			return commands.Result{Message: "show already exists or invalid name"}, nil
		},
		Show: func(args commands.ShowArgs) (commands.Result, error) {
			switch args.Subject {
			case commands.SubjectWatched:
				m.CurrentView = ViewWatched
			case commands.SubjectRemaining:
				m.CurrentView = ViewRemaining
			case commands.SubjectStats:
				m.CurrentView = ViewStats
				m.refreshRecentEvents()
			}
			return commands.Result{Message: "showing " + string(args.Subject)}, nil
		},
	}
}
