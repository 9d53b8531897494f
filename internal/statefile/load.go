package statefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sandeepkv93/showpick/internal/model"
)

// Outcome tags how Load ended. Load always ends in a usable state; the
// outcome tells the caller which tier of recovery was needed.
type Outcome string

const (
	// OutcomeFresh means no snapshot file existed; state comes from the seed.
	OutcomeFresh Outcome = "fresh"
	// OutcomeAdopted is the clean path: parsed, validated, adopted.
	OutcomeAdopted Outcome = "adopted"
	// OutcomeAdoptedBackup means the snapshot was corrupt but the backup parsed.
	OutcomeAdoptedBackup Outcome = "adopted_backup"
	// OutcomeRecovered means state was rebuilt from salvaged fragments plus the seed.
	OutcomeRecovered Outcome = "recovered"
	// OutcomeReset means even salvage failed; state is the seed with empty logs.
	OutcomeReset Outcome = "reset"
)

// LoadReport carries the terminal outcome plus human-readable notices for
// every recovery step taken. Notices are for display, not for branching.
type LoadReport struct {
	Outcome Outcome
	Notices []string
}

// Load reads the snapshot at the store path, falling through recovery tiers
// on corruption:
//
//	parse+validate -> adopt
//	on failure     -> rename to backup, try the backup
//	on failure     -> rebuild from salvaged fragments plus the seed, persist
//	on failure     -> reset to the seed, persist
//
// Corruption is never an error to the caller; every tier terminates in a
// usable snapshot and is described in the report notices.
func (s *Store) Load(seed []string) (Snapshot, LoadReport) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewSnapshot(seed), LoadReport{Outcome: OutcomeFresh}
		}
		return s.recover(nil, seed, []string{fmt.Sprintf("unreadable save file: %v", err)})
	}

	snap, fields, err := parseSnapshot(raw)
	if err == nil {
		return snap, LoadReport{Outcome: OutcomeAdopted}
	}
	return s.recover(fields, seed, []string{fmt.Sprintf("corrupted save file: %v", err)})
}

// recover runs the backup, salvage, and reset tiers in order. fields holds
// whatever key/value fragments the failed parse produced, possibly nil.
func (s *Store) recover(fields map[string]json.RawMessage, seed []string, notices []string) (Snapshot, LoadReport) {
	backupPath := s.BackupPath()
	if err := os.Rename(s.path, backupPath); err != nil {
		notices = append(notices, fmt.Sprintf("could not move corrupted file aside: %v", err))
	} else {
		notices = append(notices, fmt.Sprintf("moved corrupted file to %s", backupPath))
	}

	if backupRaw, err := os.ReadFile(backupPath); err == nil {
		if snap, _, parseErr := parseSnapshot(backupRaw); parseErr == nil {
			notices = append(notices, "loaded state from backup")
			return snap, LoadReport{Outcome: OutcomeAdoptedBackup, Notices: notices}
		} else {
			notices = append(notices, fmt.Sprintf("backup load failed: %v", parseErr))
		}
	} else if !os.IsNotExist(err) {
		notices = append(notices, fmt.Sprintf("backup load failed: %v", err))
	}

	snap, err := s.recoverFromSalvage(fields, seed)
	if err == nil {
		notices = append(notices, fmt.Sprintf("recovered %d shows from corrupted data", len(snap.OriginalOrder)))
		return snap, LoadReport{Outcome: OutcomeRecovered, Notices: notices}
	}
	notices = append(notices, fmt.Sprintf("data recovery failed: %v", err))

	notices = append(notices, "resetting to initial show list")
	reset := NewSnapshot(seed)
	if err := s.Save(reset); err != nil {
		notices = append(notices, fmt.Sprintf("could not persist reset state: %v", err))
	}
	return reset, LoadReport{Outcome: OutcomeReset, Notices: notices}
}

// recoverFromSalvage rebuilds a consistent snapshot from whatever fragments
// survived the failed parse. OriginalOrder becomes salvaged-remaining +
// salvaged-watched shows + seed, deduplicated case-insensitively in
// first-seen order; the remaining pool and watched log are then filtered
// down to members of the rebuilt order. The recovered state is persisted
// before it is adopted.
func (s *Store) recoverFromSalvage(fields map[string]json.RawMessage, seed []string) (Snapshot, error) {
	remaining := salvageStrings(fields["remaining"])
	watched := salvageSelections(fields["watched"])
	history := salvageSelections(fields["history"])

	merged := make([]string, 0, len(remaining)+len(watched)+len(seed))
	merged = append(merged, remaining...)
	for _, sel := range watched {
		merged = append(merged, sel.Show)
	}
	merged = append(merged, seed...)

	seen := make(map[string]bool, len(merged))
	order := make([]string, 0, len(merged))
	for _, show := range merged {
		key := strings.ToLower(show)
		if seen[key] {
			continue
		}
		seen[key] = true
		order = append(order, show)
	}

	known := make(map[string]bool, len(order))
	for _, show := range order {
		known[show] = true
	}
	keptRemaining := make([]string, 0, len(remaining))
	for _, show := range remaining {
		if known[show] {
			keptRemaining = append(keptRemaining, show)
		}
	}
	keptWatched := make([]model.Selection, 0, len(watched))
	for _, sel := range watched {
		if known[sel.Show] {
			keptWatched = append(keptWatched, sel)
		}
	}

	snap := Snapshot{
		OriginalOrder: order,
		Remaining:     keptRemaining,
		Watched:       keptWatched,
		History:       history,
	}
	snap.normalize()
	if err := s.Save(snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// parseSnapshot is the Parse and Validate stages: the document must be a
// JSON object carrying all four keys, each an array of the declared element
// type. The raw field map is returned even on validation failure so the
// salvage tier can pick through it.
func parseSnapshot(raw []byte) (Snapshot, map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Snapshot{}, nil, err
	}

	var snap Snapshot
	if err := decodeField(fields, "original_order", &snap.OriginalOrder); err != nil {
		return Snapshot{}, fields, err
	}
	if err := decodeField(fields, "remaining", &snap.Remaining); err != nil {
		return Snapshot{}, fields, err
	}
	if err := decodeField(fields, "watched", &snap.Watched); err != nil {
		return Snapshot{}, fields, err
	}
	if err := decodeField(fields, "history", &snap.History); err != nil {
		return Snapshot{}, fields, err
	}
	snap.normalize()
	return snap, fields, nil
}

func decodeField(fields map[string]json.RawMessage, key string, dst any) error {
	raw, ok := fields[key]
	if !ok {
		return fmt.Errorf("missing required key %q", key)
	}
	// Unmarshalling null into a slice is a silent no-op, so it has to be
	// rejected up front; every key must hold an actual list.
	if string(bytes.TrimSpace(raw)) == "null" {
		return fmt.Errorf("invalid value for %q: null is not a list", key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("invalid value for %q: %v", key, err)
	}
	return nil
}

// salvageStrings decodes as many string elements as it can, skipping
// anything malformed. A non-array value salvages nothing.
func salvageStrings(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}
	out := make([]string, 0, len(elems))
	for _, elem := range elems {
		var s string
		if err := json.Unmarshal(elem, &s); err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

// salvageSelections is salvageStrings for selection records. Records with
// no show name are dropped; they cannot be placed back in any sequence.
func salvageSelections(raw json.RawMessage) []model.Selection {
	if len(raw) == 0 {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}
	out := make([]model.Selection, 0, len(elems))
	for _, elem := range elems {
		var sel model.Selection
		if err := json.Unmarshal(elem, &sel); err != nil {
			continue
		}
		if strings.TrimSpace(sel.Show) == "" {
			continue
		}
		out = append(out, sel)
	}
	return out
}
