package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/showpick/internal/eventlog"
)

func (m Model) handlePickerKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "p", "enter":
		m.doPick()
	case "u":
		m.doUndo()
	case "a":
		m.Add.CaptureMode = true
		m.addInput.Focus()
		m.addInput.SetValue("")
		m.Status = StatusBar{Text: "add a show", IsError: false}
	}
	return m
}

func (m *Model) doPick() {
	sel, ok, err := m.engine.SelectRandom()
	if err != nil {
		m.fail(err)
		return
	}
	if !ok {
		m.LastPick = nil
		m.Status = StatusBar{Text: "all shows watched, nothing left to pick", IsError: false}
		return
	}
	m.LastPick = &sel
	m.LastUndone = ""
	m.syncBubbleData()
	m.Status = StatusBar{Text: fmt.Sprintf("picked %s", sel.Show), IsError: false}
	m.recordEvent(sel.Show, eventlog.ActionWatched, "")
}

func (m *Model) doUndo() {
	sel, ok, err := m.engine.UndoLast()
	if err != nil {
		m.fail(err)
		return
	}
	if !ok {
		m.Status = StatusBar{Text: "nothing to undo", IsError: false}
		return
	}
	m.LastUndone = sel.Show
	if m.LastPick != nil && m.LastPick.Equal(sel) {
		m.LastPick = nil
	}
	m.syncBubbleData()
	m.Status = StatusBar{Text: fmt.Sprintf("undid %s", sel.Show), IsError: false}
	m.recordEvent(sel.Show, eventlog.ActionUndone, "")
}

func (m *Model) doAdd(name string) bool {
	name = strings.TrimSpace(name)
	added, err := m.engine.AddShow(name)
	if err != nil {
		m.fail(err)
		return added
	}
	if !added {
		m.Status = StatusBar{Text: "show already exists or invalid name", IsError: false}
		return false
	}
	m.syncBubbleData()
	m.Status = StatusBar{Text: fmt.Sprintf("added %s, %d shows total", name, m.engine.Total()), IsError: false}
	m.recordEvent(name, eventlog.ActionAdded, "")
	return true
}
