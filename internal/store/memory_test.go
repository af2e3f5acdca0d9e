package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordguess/internal/game"
)

func newSession(t *testing.T, id string) *game.Session {
	t.Helper()
	s, err := game.New("lion", "Dr. M", game.WithID(id))
	require.NoError(t, err)
	return s
}

func TestSaveGetUpdate(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	require.NoError(t, st.Save(ctx, newSession(t, "g1")))

	var code game.Code
	require.NoError(t, st.Update(ctx, "g1", func(s *game.Session) error {
		code = s.Guess("lio")
		return nil
	}))
	assert.Equal(t, game.CodeSubstring, code)

	snap, err := st.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, 12, snap.Points)
	assert.Equal(t, 1, snap.Attempts)
	assert.Equal(t, 1, st.Len())
}

func TestMissingGame(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	_, err := st.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	err = st.Update(ctx, "nope", func(*game.Session) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, st.Delete(ctx, "nope"))
}

func TestUpdatePropagatesError(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	require.NoError(t, st.Save(ctx, newSession(t, "g1")))
	boom := errors.New("boom")
	assert.ErrorIs(t, st.Update(ctx, "g1", func(*game.Session) error { return boom }), boom)
}

func TestSaveRejectsSessionWithoutID(t *testing.T) {
	st := NewMemoryStore()
	assert.Error(t, st.Save(context.Background(), nil))
	assert.Error(t, st.Save(context.Background(), &game.Session{}))
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	st := NewMemoryStore()
	assert.ErrorIs(t, st.Save(ctx, newSession(t, "g1")), context.Canceled)
	_, err := st.Get(ctx, "g1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUpdateSerializesGuesses(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	require.NoError(t, st.Save(ctx, newSession(t, "g1")))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Update(ctx, "g1", func(s *game.Session) error {
				s.Guess("z")
				return nil
			})
		}()
	}
	wg.Wait()

	snap, err := st.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, game.MaxAttempts, snap.Attempts)
	assert.Equal(t, game.StatusOver, snap.Status)
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	m := &memory{entries: make(map[string]*entry), now: func() time.Time { return now }}

	require.NoError(t, m.Save(ctx, newSession(t, "old")))
	now = now.Add(2 * time.Hour)
	require.NoError(t, m.Save(ctx, newSession(t, "fresh")))

	assert.Equal(t, 1, m.Sweep(ctx, time.Hour))
	_, err := m.Get(ctx, "old")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.Get(ctx, "fresh")
	assert.NoError(t, err)
}
