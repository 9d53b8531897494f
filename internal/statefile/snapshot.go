package statefile

import (
	"github.com/sandeepkv93/showpick/internal/model"
)

// Snapshot is the persisted document: the four ordered sequences the
// selection engine owns. Field names match the on-disk JSON keys exactly;
// the format is fixed, there is no versioning or migration.
type Snapshot struct {
	OriginalOrder []string          `json:"original_order"`
	Remaining     []string          `json:"remaining"`
	Watched       []model.Selection `json:"watched"`
	History       []model.Selection `json:"history"`
}

// NewSnapshot builds a fresh snapshot where every show is still unwatched.
func NewSnapshot(seed []string) Snapshot {
	return Snapshot{
		OriginalOrder: append([]string(nil), seed...),
		Remaining:     append([]string(nil), seed...),
		Watched:       []model.Selection{},
		History:       []model.Selection{},
	}
}

// normalize replaces nil sequences with empty ones so a snapshot always
// marshals as four arrays, never null.
func (s *Snapshot) normalize() {
	if s.OriginalOrder == nil {
		s.OriginalOrder = []string{}
	}
	if s.Remaining == nil {
		s.Remaining = []string{}
	}
	if s.Watched == nil {
		s.Watched = []model.Selection{}
	}
	if s.History == nil {
		s.History = []model.Selection{}
	}
}
