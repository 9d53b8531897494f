package statefile

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/sandeepkv93/showpick/internal/model"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "progress.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func writeStateFile(t *testing.T, store *Store, body string) {
	t.Helper()
	if err := os.WriteFile(store.Path(), []byte(body), 0o644); err != nil {
		t.Fatalf("write state file: %v", err)
	}
}

func selectionAt(show string, ts string) model.Selection {
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return model.Selection{Show: show, Timestamp: parsed, Action: model.ActionWatched}
}

func TestNewStoreRejectsEmptyPath(t *testing.T) {
	if _, err := NewStore("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestBackupPathSwapsExtension(t *testing.T) {
	store, err := NewStore("/tmp/showpick/progress.json")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if got := store.BackupPath(); got != "/tmp/showpick/progress.bak" {
		t.Fatalf("backup path = %q, want progress.bak sibling", got)
	}
}

func TestLoadMissingFileIsFresh(t *testing.T) {
	store := setupStore(t)
	seed := []string{"The Wire", "Fargo"}

	snap, report := store.Load(seed)
	if report.Outcome != OutcomeFresh {
		t.Fatalf("outcome = %s, want %s", report.Outcome, OutcomeFresh)
	}
	if !reflect.DeepEqual(snap.OriginalOrder, seed) || !reflect.DeepEqual(snap.Remaining, seed) {
		t.Fatalf("fresh snapshot not seeded: %#v", snap)
	}
	if len(snap.Watched) != 0 || len(snap.History) != 0 {
		t.Fatalf("fresh snapshot has non-empty logs: %#v", snap)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := setupStore(t)
	sel := selectionAt("The Wire", "2026-08-20T21:30:00Z")
	in := Snapshot{
		OriginalOrder: []string{"The Wire", "Fargo", "Dark"},
		Remaining:     []string{"Fargo", "Dark"},
		Watched:       []model.Selection{sel},
		History:       []model.Selection{sel},
	}
	if err := store.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, report := store.Load([]string{"ignored seed"})
	if report.Outcome != OutcomeAdopted {
		t.Fatalf("outcome = %s, want %s (notices: %v)", report.Outcome, OutcomeAdopted, report.Notices)
	}
	if !reflect.DeepEqual(out.OriginalOrder, in.OriginalOrder) {
		t.Fatalf("original order = %v, want %v", out.OriginalOrder, in.OriginalOrder)
	}
	if !reflect.DeepEqual(out.Remaining, in.Remaining) {
		t.Fatalf("remaining = %v, want %v", out.Remaining, in.Remaining)
	}
	if len(out.Watched) != 1 || !out.Watched[0].Equal(sel) {
		t.Fatalf("watched log mismatch: %#v", out.Watched)
	}
	if len(out.History) != 1 || !out.History[0].Equal(sel) {
		t.Fatalf("history mismatch: %#v", out.History)
	}
}

func TestSaveWritesEmptySequencesAsArrays(t *testing.T) {
	store := setupStore(t)
	if err := store.Save(Snapshot{}); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if strings.Contains(string(raw), "null") {
		t.Fatalf("snapshot serialized nil sequence as null: %s", raw)
	}
}

func TestLoadSyntaxErrorRecoversFromSeedAndMovesBackup(t *testing.T) {
	store := setupStore(t)
	writeStateFile(t, store, "{not valid json")

	snap, report := store.Load([]string{"A", "B"})
	if report.Outcome != OutcomeRecovered {
		t.Fatalf("outcome = %s, want %s (notices: %v)", report.Outcome, OutcomeRecovered, report.Notices)
	}
	if !reflect.DeepEqual(snap.OriginalOrder, []string{"A", "B"}) {
		t.Fatalf("recovered order = %v, want seed", snap.OriginalOrder)
	}

	if _, err := os.Stat(store.BackupPath()); err != nil {
		t.Fatalf("corrupted file not moved to backup path: %v", err)
	}
	backupRaw, err := os.ReadFile(store.BackupPath())
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(backupRaw) != "{not valid json" {
		t.Fatalf("backup content changed: %q", backupRaw)
	}

	// The recovered state is persisted immediately.
	reloaded, reloadReport := store.Load([]string{"A", "B"})
	if reloadReport.Outcome != OutcomeAdopted {
		t.Fatalf("reload outcome = %s, want %s", reloadReport.Outcome, OutcomeAdopted)
	}
	if !reflect.DeepEqual(reloaded.OriginalOrder, []string{"A", "B"}) {
		t.Fatalf("reloaded order = %v", reloaded.OriginalOrder)
	}
}

func TestLoadMissingKeyTriggersRecovery(t *testing.T) {
	store := setupStore(t)
	writeStateFile(t, store, `{"original_order": [], "remaining": [], "watched": []}`)

	_, report := store.Load([]string{"A"})
	if report.Outcome != OutcomeRecovered {
		t.Fatalf("outcome = %s, want %s (notices: %v)", report.Outcome, OutcomeRecovered, report.Notices)
	}
}

func TestLoadNullValueTriggersRecovery(t *testing.T) {
	store := setupStore(t)
	// null unmarshals into a slice without error, so it must be rejected
	// explicitly or the pool and the original order drift apart.
	writeStateFile(t, store, `{"original_order": null, "remaining": ["A", "B"], "watched": [], "history": []}`)

	snap, report := store.Load([]string{"Seed"})
	if report.Outcome != OutcomeRecovered {
		t.Fatalf("outcome = %s, want %s (notices: %v)", report.Outcome, OutcomeRecovered, report.Notices)
	}
	if !reflect.DeepEqual(snap.OriginalOrder, []string{"A", "B", "Seed"}) {
		t.Fatalf("recovered order = %v", snap.OriginalOrder)
	}
	if !reflect.DeepEqual(snap.Remaining, []string{"A", "B"}) {
		t.Fatalf("recovered remaining = %v", snap.Remaining)
	}
}

func TestLoadWrongTypeSalvagesFragments(t *testing.T) {
	store := setupStore(t)
	// original_order has the wrong type; remaining and watched are intact
	// fragments that salvage should pick up and merge ahead of the seed.
	writeStateFile(t, store, `{
		"original_order": "oops",
		"remaining": ["Dark", "Fargo"],
		"watched": [{"show": "The Wire", "timestamp": "2026-08-20T21:30:00Z", "action": "watched"}],
		"history": [{"show": "The Wire", "timestamp": "2026-08-20T21:30:00Z", "action": "watched"}]
	}`)

	snap, report := store.Load([]string{"A", "dark"})
	if report.Outcome != OutcomeRecovered {
		t.Fatalf("outcome = %s, want %s (notices: %v)", report.Outcome, OutcomeRecovered, report.Notices)
	}
	// Salvaged remaining, then watched shows, then seed, deduplicated
	// case-insensitively in first-seen order ("dark" loses to "Dark").
	wantOrder := []string{"Dark", "Fargo", "The Wire", "A"}
	if !reflect.DeepEqual(snap.OriginalOrder, wantOrder) {
		t.Fatalf("recovered order = %v, want %v", snap.OriginalOrder, wantOrder)
	}
	if !reflect.DeepEqual(snap.Remaining, []string{"Dark", "Fargo"}) {
		t.Fatalf("recovered remaining = %v", snap.Remaining)
	}
	if len(snap.Watched) != 1 || snap.Watched[0].Show != "The Wire" {
		t.Fatalf("recovered watched = %#v", snap.Watched)
	}
	if len(snap.History) != 1 {
		t.Fatalf("recovered history = %#v", snap.History)
	}
}

func TestLoadSalvageSkipsMalformedElements(t *testing.T) {
	store := setupStore(t)
	writeStateFile(t, store, `{
		"original_order": 42,
		"remaining": ["Dark", 7, "Fargo"],
		"watched": [{"show": "", "action": "watched"}, {"show": "Lost", "timestamp": "2026-08-20T21:30:00Z", "action": "watched"}],
		"history": "not a list"
	}`)

	snap, report := store.Load(nil)
	if report.Outcome != OutcomeRecovered {
		t.Fatalf("outcome = %s, want %s (notices: %v)", report.Outcome, OutcomeRecovered, report.Notices)
	}
	if !reflect.DeepEqual(snap.OriginalOrder, []string{"Dark", "Fargo", "Lost"}) {
		t.Fatalf("recovered order = %v", snap.OriginalOrder)
	}
	if len(snap.Watched) != 1 || snap.Watched[0].Show != "Lost" {
		t.Fatalf("recovered watched = %#v", snap.Watched)
	}
	if len(snap.History) != 0 {
		t.Fatalf("recovered history = %#v", snap.History)
	}
}

func TestLoadCorruptionOverwritesOlderBackup(t *testing.T) {
	store := setupStore(t)
	if err := os.WriteFile(store.BackupPath(), []byte("old backup"), 0o644); err != nil {
		t.Fatalf("write old backup: %v", err)
	}
	writeStateFile(t, store, "corrupt-take-two")

	_, report := store.Load([]string{"A"})
	if report.Outcome != OutcomeRecovered {
		t.Fatalf("outcome = %s, want %s", report.Outcome, OutcomeRecovered)
	}
	backupRaw, err := os.ReadFile(store.BackupPath())
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(backupRaw) != "corrupt-take-two" {
		t.Fatalf("backup not overwritten, content = %q", backupRaw)
	}
}

func TestLoadResetsWhenRecoveryCannotPersist(t *testing.T) {
	base := t.TempDir()
	// A regular file where the save directory should be makes every read,
	// rename, and write under it fail, driving Load to the final tier.
	blocker := filepath.Join(base, "saves")
	if err := os.WriteFile(blocker, []byte("not a directory"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	store, err := NewStore(filepath.Join(blocker, "progress.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	snap, report := store.Load([]string{"A", "B"})
	if report.Outcome != OutcomeReset {
		t.Fatalf("outcome = %s, want %s (notices: %v)", report.Outcome, OutcomeReset, report.Notices)
	}
	if !reflect.DeepEqual(snap.OriginalOrder, []string{"A", "B"}) || !reflect.DeepEqual(snap.Remaining, []string{"A", "B"}) {
		t.Fatalf("reset snapshot not seeded: %#v", snap)
	}
	if len(snap.Watched) != 0 || len(snap.History) != 0 {
		t.Fatalf("reset snapshot has non-empty logs: %#v", snap)
	}
	joined := strings.Join(report.Notices, "\n")
	for _, want := range []string{"data recovery failed", "resetting to initial show list", "could not persist reset state"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("notices missing %q: %v", want, report.Notices)
		}
	}
}

func TestLoadReportsNoticesForEveryRecoveryStep(t *testing.T) {
	store := setupStore(t)
	writeStateFile(t, store, "{broken")

	_, report := store.Load([]string{"A"})
	joined := strings.Join(report.Notices, "\n")
	for _, want := range []string{"corrupted save file", "moved corrupted file", "backup load failed", "recovered"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("notices missing %q: %v", want, report.Notices)
		}
	}
}
