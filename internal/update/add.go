package update

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleAddKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Add.CaptureMode = false
		m.Add.Input = ""
		m.addInput.Blur()
		m.Status = StatusBar{Text: "add cancelled", IsError: false}
		return m
	case "enter":
		if m.doAdd(m.addInput.Value()) {
			m.Add.CaptureMode = false
			m.addInput.Blur()
		}
		m.addInput.SetValue("")
		m.Add.Input = ""
		return m
	}
	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	_ = cmd
	m.Add.Input = m.addInput.Value()
	return m
}
