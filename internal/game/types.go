// internal/game/types.go
//
// Core type definitions for the word-guessing engine.
// Defines:
//   - Status: lifecycle of a session (in progress → won | over).
//   - Code:   numeric outcome category reported to the host for each guess.
//   - Outcome: a classifier decision (code + score delta).
//   - Game:   the host-facing contract every realization satisfies.

package game

import (
	"fmt"
	"strconv"
)

// Scoring and lifecycle limits.
const (
	InitialScore = 10 // score of a freshly initialized session
	MaxAttempts  = 10 // processed guesses before the game is over
)

// Status is the lifecycle state of a session. The numeric values are part
// of the host contract (0 = in progress, 1 = won, 2 = over).
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusOver
)

// Terminal reports whether no further scoring can happen.
func (s Status) Terminal() bool { return s != StatusInProgress }

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusOver:
		return "over"
	}
	return "unknown"
}

// Code identifies how a guess was classified. Hosts see it as a number
// (0.0, 1.1, 2.2, ...).
type Code float64

const (
	CodeWin           Code = 0.0 // exact match
	CodeLetterAbsent  Code = 1.0 // single letter not in the word
	CodeLetterPresent Code = 1.1 // single letter in the word
	CodeSameLength    Code = 2.0 // right length, wrong word
	CodeTooLong       Code = 2.1
	CodeTooShort      Code = 2.2 // shorter and not a substring
	CodeSubstring     Code = 3.0 // shorter and contained in the word
	CodeRepeat        Code = 4.0 // already guessed
	CodeInvalid       Code = 4.1 // non-letter characters (or empty)
	CodeOutOfAttempts Code = 5.0 // last attempt used without a win
	CodeGameEnded     Code = 5.1 // guess after the game finished
)

// String formats the code the way hosts print it, e.g. "2.1".
func (c Code) String() string { return strconv.FormatFloat(float64(c), 'f', 1, 64) }

// Meaning returns a short machine-friendly label for the code.
func (c Code) Meaning() string {
	switch c {
	case CodeWin:
		return "win"
	case CodeLetterAbsent:
		return "letter_absent"
	case CodeLetterPresent:
		return "letter_present"
	case CodeSameLength:
		return "same_length"
	case CodeTooLong:
		return "too_long"
	case CodeTooShort:
		return "too_short"
	case CodeSubstring:
		return "substring"
	case CodeRepeat:
		return "repeat"
	case CodeInvalid:
		return "invalid"
	case CodeOutOfAttempts:
		return "out_of_attempts"
	case CodeGameEnded:
		return "game_ended"
	}
	return "unknown"
}

// Outcome is a classifier decision: the category and the score change it carries.
type Outcome struct {
	Code  Code
	Delta int
}

// Game is the contract a host drives: initialize, submit guesses, read
// back points and status. Realizations differ only in how they classify.
type Game interface {
	Init(word, player string) error
	Guess(guess string) Code
	Points() int
	Status() Status
}

// InvalidWordError is returned by Init when the secret word is empty or
// contains characters outside a–z (after lowercasing).
type InvalidWordError struct {
	Word string
}

func (e *InvalidWordError) Error() string {
	if e.Word == "" {
		return "game: secret word is empty"
	}
	return fmt.Sprintf("game: secret word %q must contain only letters", e.Word)
}
