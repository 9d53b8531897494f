package selector

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/sandeepkv93/showpick/internal/model"
	"github.com/sandeepkv93/showpick/internal/statefile"
)

// Engine owns the four ordered sequences behind show selection: the
// canonical original order, the remaining pool, the watched log, and the
// undo history. Every mutating command persists the full state through the
// snapshot store before it returns, so a process exit at any point leaves
// the last completed command on disk.
//
// The engine is single-threaded; it is driven from one event loop and does
// no locking.
type Engine struct {
	store *statefile.Store

	originalOrder []string
	remaining     []string
	watched       []model.Selection
	history       []model.Selection
	total         int

	intn func(n int) int
	now  func() time.Time
}

type Option func(*Engine)

// WithRand makes selection order deterministic for tests.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.intn = r.IntN }
}

// WithClock fixes the timestamp source for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New builds an engine seeded with the given shows, then lets any persisted
// snapshot override the in-memory state via the store's recovery protocol.
// Construction always succeeds; the report says which recovery tier ran and
// carries the notices the caller should surface.
func New(store *statefile.Store, seed []string, opts ...Option) (*Engine, statefile.LoadReport) {
	e := &Engine{
		store: store,
		intn:  rand.IntN,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	snap, report := store.Load(seed)
	e.adopt(snap)
	return e, report
}

func (e *Engine) adopt(snap statefile.Snapshot) {
	e.originalOrder = append([]string(nil), snap.OriginalOrder...)
	e.remaining = append([]string(nil), snap.Remaining...)
	e.watched = append([]model.Selection(nil), snap.Watched...)
	e.history = append([]model.Selection(nil), snap.History...)
	e.total = len(e.originalOrder)
}

// AddShow registers a new show at the end of the original order and the
// remaining pool. It reports false for an empty name or a case-insensitive
// duplicate; that is user input, not an error. The returned error is a
// persistence failure only, and the show is registered regardless.
func (e *Engine) AddShow(name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}
	for _, existing := range e.originalOrder {
		if strings.EqualFold(existing, name) {
			return false, nil
		}
	}

	e.originalOrder = append(e.originalOrder, name)
	e.remaining = append(e.remaining, name)
	e.total = len(e.originalOrder)
	return true, e.persist()
}

// SelectRandom picks a uniformly random show from the remaining pool, logs
// it as watched, and removes it from the pool. ok is false when nothing
// remains, in which case no state changes.
func (e *Engine) SelectRandom() (sel model.Selection, ok bool, err error) {
	if len(e.remaining) == 0 {
		return model.Selection{}, false, nil
	}

	idx := e.intn(len(e.remaining))
	sel = model.Selection{
		Show:      e.remaining[idx],
		Timestamp: e.now(),
		Action:    model.ActionWatched,
	}

	e.watched = append(e.watched, sel)
	e.history = append(e.history, sel)
	e.remaining = append(e.remaining[:idx], e.remaining[idx+1:]...)
	return sel, true, e.persist()
}

// UndoLast reverses the most recent selection. The show goes back into the
// remaining pool at its rank-ordered position (the pool stays sorted by
// original-order rank), and the matching record leaves the watched log.
// ok is false when there is nothing to undo.
func (e *Engine) UndoLast() (sel model.Selection, ok bool, err error) {
	if len(e.history) == 0 {
		return model.Selection{}, false, nil
	}

	sel = e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]

	e.remaining = insertByRank(e.remaining, sel.Show, e.originalOrder)

	for i, rec := range e.watched {
		if rec.Equal(sel) {
			e.watched = append(e.watched[:i], e.watched[i+1:]...)
			break
		}
	}
	return sel, true, e.persist()
}

// insertByRank places show into pool just before the first element whose
// original-order rank exceeds the show's own rank, keeping the pool sorted
// by original rank. A show absent from order ranks at the end, which can
// misplace an undone show whose entry was removed from the original order
// between watch and undo; that matches the historical behavior and the
// linear scan is fine at collection scale.
func insertByRank(pool []string, show string, order []string) []string {
	rank := indexOf(order, show)
	if rank < 0 {
		rank = len(order)
	}

	pos := len(pool)
	for i, existing := range pool {
		existingRank := indexOf(order, existing)
		if existingRank < 0 {
			existingRank = len(order)
		}
		if existingRank > rank {
			pos = i
			break
		}
	}

	pool = append(pool, "")
	copy(pool[pos+1:], pool[pos:])
	pool[pos] = show
	return pool
}

func indexOf(items []string, target string) int {
	for i, item := range items {
		if item == target {
			return i
		}
	}
	return -1
}

// Progress is a pure query over the current counts.
func (e *Engine) Progress() model.Progress {
	return model.ComputeProgress(len(e.watched), len(e.remaining), e.total)
}

// Shows returns the canonical original order.
func (e *Engine) Shows() []string {
	return append([]string(nil), e.originalOrder...)
}

// Remaining returns the unwatched pool in selection-eligible order.
func (e *Engine) Remaining() []string {
	return append([]string(nil), e.remaining...)
}

// Watched returns the watched log, oldest first.
func (e *Engine) Watched() []model.Selection {
	return append([]model.Selection(nil), e.watched...)
}

func (e *Engine) Total() int { return e.total }

func (e *Engine) persist() error {
	return e.store.Save(statefile.Snapshot{
		OriginalOrder: append([]string(nil), e.originalOrder...),
		Remaining:     append([]string(nil), e.remaining...),
		Watched:       append([]model.Selection(nil), e.watched...),
		History:       append([]model.Selection(nil), e.history...),
	})
}
