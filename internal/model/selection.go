package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidAction = errors.New("model: invalid selection action")

type Action string

const (
	ActionWatched Action = "watched"
)

func (a Action) IsValid() bool {
	return a == ActionWatched
}

// Selection records one random pick: which show, when, and what happened to it.
// The shape mirrors the persisted snapshot entries, so json tags live here.
type Selection struct {
	Show      string    `json:"show"`
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
}

func (s Selection) Validate() error {
	if strings.TrimSpace(s.Show) == "" {
		return errors.New("model: selection show is required")
	}
	if s.Timestamp.IsZero() {
		return errors.New("model: selection timestamp is required")
	}
	if !s.Action.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidAction, s.Action)
	}
	return nil
}

// Equal compares selections by value. Timestamps are compared with
// time.Equal so a selection still matches itself after a JSON round trip.
func (s Selection) Equal(other Selection) bool {
	return s.Show == other.Show &&
		s.Timestamp.Equal(other.Timestamp) &&
		s.Action == other.Action
}
