// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Holds live *game.Session values for hosts that serve many games at once.
//
// Characteristics:
//   - Sessions keyed by Session.ID in a map guarded by an RWMutex.
//   - Each entry carries its own mutex, so Update serializes work on one
//     session without blocking the others.
//   - Idle sessions can be swept by last-access time.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordguess/internal/game"
)

// ErrNotFound is returned for unknown game IDs.
var ErrNotFound = errors.New("store: game not found")

// Store defines the session registry used by hosts.
type Store interface {
	// Save adds or replaces a session.
	Save(ctx context.Context, s *game.Session) error

	// Get returns a snapshot of the session.
	Get(ctx context.Context, id string) (game.Snapshot, error)

	// Update runs fn with exclusive access to the session.
	Update(ctx context.Context, id string, fn func(s *game.Session) error) error

	// Delete removes a session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Sweep removes sessions idle for longer than maxIdle and reports how many.
	Sweep(ctx context.Context, maxIdle time.Duration) int

	// Len reports the number of live sessions.
	Len() int
}

// entry guards one session.
type entry struct {
	mu         sync.Mutex
	session    *game.Session
	lastAccess time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex      // guards entries map
	entries map[string]*entry // keyed by Session.ID
	now     func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{entries: make(map[string]*entry), now: time.Now}
}

func (m *memory) Save(ctx context.Context, s *game.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.ID == "" {
		return errors.New("store: session without ID")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[s.ID] = &entry{session: s, lastAccess: m.now()}
	return nil
}

func (m *memory) lookup(id string) (*entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[id]
	return e, ok
}

func (m *memory) Get(ctx context.Context, id string) (game.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return game.Snapshot{}, err
	}
	e, ok := m.lookup(id)
	if !ok {
		return game.Snapshot{}, ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastAccess = m.now()
	return e.session.Snapshot(), nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(s *game.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e, ok := m.lookup(id)
	if !ok {
		return ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastAccess = m.now()
	return fn(e.session)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

func (m *memory) Sweep(ctx context.Context, maxIdle time.Duration) int {
	cutoff := m.now().Add(-maxIdle)
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, e := range m.entries {
		if ctx.Err() != nil {
			break
		}
		e.mu.Lock()
		idle := e.lastAccess.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(m.entries, id)
			removed++
		}
	}
	return removed
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
