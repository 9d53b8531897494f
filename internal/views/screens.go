package views

import (
	"fmt"
	"strings"
)

type PickerPanelData struct {
	LastPick     string
	LastPickedAt string
	LastUndone   string
	ProgressView string
	Percentage   float64
	Remaining    int
	PoolEmpty    bool
}

type WatchedPanelData struct {
	ListView string
	Count    int
}

type RemainingPanelData struct {
	ListView string
	Count    int
}

type EventRowData struct {
	Action     string
	Show       string
	Detail     string
	OccurredAt string
}

type StatsPanelData struct {
	Watched      int
	Remaining    int
	Total        int
	Percentage   float64
	ProgressView string
	Events       []EventRowData
	EventsErr    string
}

type HelpPanelData struct {
	CurrentView string
	HelpView    string
}

type PalettePanelData struct {
	InputView string
}

func RenderPickerPanel(data PickerPanelData) string {
	var b strings.Builder
	b.WriteString("picker:\n")
	b.WriteString("actions: [p/enter]pick [u]undo [a]add [1-4]views [/]palette [?]help\n")
	switch {
	case data.PoolEmpty:
		b.WriteString("all shows watched!\n")
	case data.LastPick != "":
		b.WriteString(fmt.Sprintf("picked: %s\n", data.LastPick))
		b.WriteString(fmt.Sprintf("selected at: %s\n", data.LastPickedAt))
	default:
		b.WriteString("press p to pick a random show\n")
	}
	if data.LastUndone != "" {
		b.WriteString(fmt.Sprintf("undid: %s\n", data.LastUndone))
	}
	b.WriteString(fmt.Sprintf("%s %.1f%%\n", data.ProgressView, data.Percentage))
	b.WriteString(fmt.Sprintf("%d still unwatched", data.Remaining))
	return strings.TrimSpace(b.String())
}

func RenderWatchedPanel(data WatchedPanelData) string {
	var b strings.Builder
	b.WriteString("watched:\n")
	if data.Count == 0 {
		b.WriteString("no shows watched yet\n")
	}
	b.WriteString(data.ListView)
	return strings.TrimSpace(b.String())
}

func RenderRemainingPanel(data RemainingPanelData) string {
	var b strings.Builder
	b.WriteString("remaining:\n")
	if data.Count == 0 {
		b.WriteString("all shows watched!\n")
	}
	b.WriteString(data.ListView)
	return strings.TrimSpace(b.String())
}

func RenderStatsPanel(data StatsPanelData) string {
	var b strings.Builder
	b.WriteString("stats:\n")
	b.WriteString(fmt.Sprintf("watched %d / %d, %d remaining\n", data.Watched, data.Total, data.Remaining))
	b.WriteString(fmt.Sprintf("%s %.1f%%\n", data.ProgressView, data.Percentage))
	b.WriteString("recent activity:\n")
	if data.EventsErr != "" {
		b.WriteString("  event log unavailable: " + data.EventsErr + "\n")
	} else if len(data.Events) == 0 {
		b.WriteString("  nothing logged yet\n")
	}
	for _, ev := range data.Events {
		line := fmt.Sprintf("  %s  %-8s %s", ev.OccurredAt, ev.Action, ev.Show)
		if ev.Detail != "" {
			line += " (" + ev.Detail + ")"
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderAddPanel(inputView string) string {
	var b strings.Builder
	b.WriteString("add a show:\n")
	b.WriteString("actions: [enter]save [esc]cancel\n")
	b.WriteString(inputView)
	return strings.TrimSpace(b.String())
}

func RenderPalettePanel(data PalettePanelData) string {
	var b strings.Builder
	b.WriteString("command palette (pick, undo, add <name>, show watched|remaining|stats):\n")
	b.WriteString(data.InputView)
	return strings.TrimSpace(b.String())
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("help (current view: %s)\n", data.CurrentView))
	b.WriteString(data.HelpView)
	return strings.TrimSpace(b.String())
}

const helpMarkdown = `# showpick

Pick a random unwatched show, keep the progress on disk.

| Key | Action |
| --- | ------ |
| p / enter | pick a random show |
| u | undo the last pick |
| a | add a show |
| 1-4 | picker, watched, remaining, stats |
| / | command palette |
| q | quit |
`

func HelpMarkdown() string {
	return helpMarkdown
}
