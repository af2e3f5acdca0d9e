// internal/game/engine.go
//
// Session: the state of a single word-guessing game.
// Responsibilities:
//   - Initialize (and re-initialize) a game for a secret word and player.
//   - Run each guess through a Classifier and commit the result.
//   - Track state transitions: in progress → won | over.
//
// Notes:
//   - A Session is not safe for concurrent use; hosts that share one
//     between goroutines serialize access (see store.Update).
//   - Guess never fails: every input maps to a Code.
package game

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session holds the state of one game. The zero value is not initialized;
// Guess on it returns CodeGameEnded until Init succeeds.
type Session struct {
	ID        string    // Unique game identifier (UUID).
	StartedAt time.Time // Set by Init.

	word     string
	player   string
	score    int
	attempts int
	history  map[string]struct{}
	status   Status
	ready    bool

	classifier Classifier
}

// Option configures a Session at construction.
type Option func(*Session)

// WithClassifier selects the classification strategy (GuardClassifier by default).
func WithClassifier(c Classifier) Option {
	return func(s *Session) {
		if c != nil {
			s.classifier = c
		}
	}
}

// WithID overrides the generated game identifier.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.ID = id
		}
	}
}

// NewSession returns an uninitialized session; call Init before guessing.
func NewSession(opts ...Option) *Session {
	s := &Session{
		ID:         uuid.NewString(),
		classifier: GuardClassifier,
		status:     StatusOver,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// New constructs and initializes a session in one step.
func New(word, player string, opts ...Option) (*Session, error) {
	s := NewSession(opts...)
	if err := s.Init(word, player); err != nil {
		return nil, err
	}
	return s, nil
}

// Init resets the session for a new secret word. The word is lowercased and
// must be non-empty letters a–z; otherwise an *InvalidWordError is returned
// and the session is left unchanged.
func (s *Session) Init(word, player string) error {
	w := strings.ToLower(word)
	if !isLetters(w) {
		return &InvalidWordError{Word: word}
	}
	s.word = w
	s.player = player
	s.score = InitialScore
	s.attempts = 0
	s.history = make(map[string]struct{})
	s.status = StatusInProgress
	s.ready = true
	s.StartedAt = time.Now().UTC()
	return nil
}

// Guess classifies one guess and commits its outcome.
// Once the game is won or over every call returns CodeGameEnded and
// leaves the session untouched.
func (s *Session) Guess(guess string) Code {
	if !s.ready || s.status.Terminal() {
		return CodeGameEnded
	}
	out := s.classifier.Classify(s, guess)
	return s.applyOutcome(strings.ToLower(guess), out)
}

// applyOutcome commits score, history and attempts, then evaluates the
// end-of-game transitions. A win on the last attempt stays a win.
func (s *Session) applyOutcome(g string, out Outcome) Code {
	s.score += out.Delta
	s.history[g] = struct{}{}
	s.attempts++

	if out.Code == CodeWin {
		s.status = StatusWon
		return out.Code
	}
	if s.attempts >= MaxAttempts {
		s.status = StatusOver
		return CodeOutOfAttempts
	}
	return out.Code
}

// Points returns the current score.
func (s *Session) Points() int { return s.score }

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.status }

// Attempts returns the number of processed guesses.
func (s *Session) Attempts() int { return s.attempts }

// Player returns the player identifier exactly as given to Init.
func (s *Session) Player() string { return s.player }

// Word returns the lowercase secret word.
func (s *Session) Word() string { return s.word }

// Seen reports whether the lowercase guess was submitted before.
func (s *Session) Seen(guess string) bool {
	_, ok := s.history[guess]
	return ok
}

// Snapshot is a JSON-friendly copy of the session. Word is only filled in
// once the game is finished.
type Snapshot struct {
	ID          string    `json:"gameId"`
	Player      string    `json:"player"`
	Points      int       `json:"points"`
	Attempts    int       `json:"attempts"`
	MaxAttempts int       `json:"maxAttempts"`
	WordLength  int       `json:"wordLength"`
	Status      Status    `json:"status"`
	Word        string    `json:"word,omitempty"`
	StartedAt   time.Time `json:"startedAt"`
}

// Snapshot copies the visible state of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:          s.ID,
		Player:      s.player,
		Points:      s.score,
		Attempts:    s.attempts,
		MaxAttempts: MaxAttempts,
		WordLength:  len(s.word),
		Status:      s.status,
		StartedAt:   s.StartedAt,
	}
	if s.ready && s.status.Terminal() {
		snap.Word = s.word
	}
	return snap
}
