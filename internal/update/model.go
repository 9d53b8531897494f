package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/showpick/internal/eventlog"
	domainmodel "github.com/sandeepkv93/showpick/internal/model"
	"github.com/sandeepkv93/showpick/internal/selector"
)

type View string

const (
	ViewPicker    View = "Picker"
	ViewWatched   View = "Watched"
	ViewRemaining View = "Remaining"
	ViewStats     View = "Stats"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Picker    string
	Watched   string
	Remaining string
	Stats     string
	Help      string
	Quit      string
}

type AddState struct {
	CaptureMode bool
	Input       string
}

type PaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	CurrentView    View
	Add            AddState
	Palette        PaletteState
	Status         StatusBar
	Keys           GlobalKeyMap
	HelpVisible    bool
	Quitting       bool
	LastError      error
	LastPick       *domainmodel.Selection
	LastUndone     string
	StartupNotices []string
	RecentEvents   []eventlog.Event
	eventsErr      string

	engine *selector.Engine
	events *eventlog.Log

	// Bubble components used for rich TUI controls
	watchedList   list.Model
	remainingList list.Model
	addInput      textinput.Model
	commandInput  textinput.Model
	pickProgress  progress.Model
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel(engine *selector.Engine) Model {
	m := Model{
		CurrentView: ViewPicker,
		engine:      engine,
		Keys: GlobalKeyMap{
			Picker:    "1",
			Watched:   "2",
			Remaining: "3",
			Stats:     "4",
			Help:      "?",
			Quit:      "q",
		},
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

// NewModelWithRuntime wires the optional event log and the recovery notices
// emitted while the engine loaded its snapshot. events may be nil.
func NewModelWithRuntime(engine *selector.Engine, events *eventlog.Log, notices []string) Model {
	m := NewModel(engine)
	m.events = events
	m.StartupNotices = append([]string(nil), notices...)
	return m
}

func (m *Model) initBubbleComponents() {
	delegate := list.NewDefaultDelegate()

	m.watchedList = list.New(nil, delegate, 70, 14)
	m.watchedList.SetShowTitle(false)
	m.watchedList.SetShowStatusBar(false)
	m.watchedList.SetFilteringEnabled(false)
	m.watchedList.SetShowHelp(false)

	m.remainingList = list.New(nil, delegate, 70, 14)
	m.remainingList.SetShowTitle(false)
	m.remainingList.SetShowStatusBar(false)
	m.remainingList.SetFilteringEnabled(false)
	m.remainingList.SetShowHelp(false)

	m.addInput = textinput.New()
	m.addInput.Placeholder = "show name"
	m.addInput.CharLimit = 120

	m.commandInput = textinput.New()
	m.commandInput.Placeholder = "/pick"
	m.commandInput.CharLimit = 160

	m.pickProgress = progress.New(progress.WithDefaultGradient())
	m.pickProgress.Width = 30
}

// syncBubbleData refreshes the list components from engine state.
func (m *Model) syncBubbleData() {
	if m.engine == nil {
		return
	}

	watched := m.engine.Watched()
	watchedItems := make([]list.Item, 0, len(watched))
	for i, sel := range watched {
		watchedItems = append(watchedItems, listItem{
			title:       fmt.Sprintf("%d. %s", i+1, sel.Show),
			description: "watched " + sel.Timestamp.Format("2006-01-02"),
		})
	}
	m.watchedList.SetItems(watchedItems)

	remaining := m.engine.Remaining()
	remainingItems := make([]list.Item, 0, len(remaining))
	for i, show := range remaining {
		remainingItems = append(remainingItems, listItem{
			title:       fmt.Sprintf("%d. %s", i+1, show),
			description: "unwatched",
		})
	}
	m.remainingList.SetItems(remainingItems)
}

func (m *Model) fail(err error) {
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
}

func isKnownView(v View) bool {
	switch v {
	case ViewPicker, ViewWatched, ViewRemaining, ViewStats:
		return true
	default:
		return false
	}
}
