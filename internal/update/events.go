package update

import (
	"context"
	"fmt"

	"github.com/sandeepkv93/showpick/internal/eventlog"
	"github.com/sandeepkv93/showpick/internal/views"
)

const recentEventLimit = 10

// recordEvent appends to the audit log. The log is advisory: failures show
// up in the status bar but never undo or block the engine command that
// already ran.
func (m *Model) recordEvent(show, action, detail string) {
	if m.events == nil {
		return
	}
	err := m.events.Append(context.Background(), eventlog.Event{
		Show:   show,
		Action: action,
		Detail: detail,
	})
	if err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("event log write failed: %v", err), IsError: true}
	}
}

func (m *Model) refreshRecentEvents() {
	m.RecentEvents = nil
	m.eventsErr = ""
	if m.events == nil {
		return
	}
	events, err := m.events.Recent(context.Background(), recentEventLimit)
	if err != nil {
		m.eventsErr = err.Error()
		return
	}
	m.RecentEvents = events
}

func eventRows(events []eventlog.Event) []views.EventRowData {
	rows := make([]views.EventRowData, 0, len(events))
	for _, ev := range events {
		rows = append(rows, views.EventRowData{
			Action:     ev.Action,
			Show:       ev.Show,
			Detail:     ev.Detail,
			OccurredAt: ev.OccurredAt.Format("2006-01-02 15:04"),
		})
	}
	return rows
}
