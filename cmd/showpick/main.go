package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/showpick/internal/eventlog"
	"github.com/sandeepkv93/showpick/internal/selector"
	"github.com/sandeepkv93/showpick/internal/statefile"
	"github.com/sandeepkv93/showpick/internal/update"
)

func main() {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	store, err := statefile.NewStore(cfg.StateFilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "showpick failed: %v\n", err)
		os.Exit(1)
	}

	engine, report := selector.New(store, selector.DefaultSeed())

	var events *eventlog.Log
	if !cfg.EventLogDisabled {
		events, err = eventlog.Open(cfg.EventLogPath)
		if err != nil {
			// The audit log is optional; run without it.
			fmt.Fprintf(os.Stderr, "showpick: event log unavailable: %v\n", err)
			events = nil
		} else {
			defer events.Close()
			logRecovery(events, report)
		}
	}

	program := tea.NewProgram(update.NewModelWithRuntime(engine, events, report.Notices))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "showpick failed: %v\n", err)
		os.Exit(1)
	}
}

// logRecovery records non-clean load outcomes so recovery incidents stay
// visible in the stats screen after the startup notices are gone.
func logRecovery(events *eventlog.Log, report statefile.LoadReport) {
	switch report.Outcome {
	case statefile.OutcomeFresh, statefile.OutcomeAdopted:
		return
	}
	err := events.Append(context.Background(), eventlog.Event{
		Action: eventlog.ActionRecovery,
		Detail: string(report.Outcome),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "showpick: could not log recovery event: %v\n", err)
	}
}
