// internal/game/classifier.go
//
// Guess classification: maps one raw guess to exactly one Outcome.
// The precedence order is fixed, because several categories overlap on the
// same input (a short guess can be a repeat and a substring at once):
//
//	invalid → win → single letter → repeat → substring → length → same length
//
// Classifiers are pure; they read a View and never mutate the session.

package game

import (
	"fmt"
	"strings"
)

// Score deltas for the fixed-value categories.
const (
	deltaSameLength = 1
	deltaSubstring  = 2
	deltaRepeat     = -2
	deltaInvalid    = -3
)

// View is the read-only part of a session a classifier may consult.
type View interface {
	// Word returns the lowercase secret word.
	Word() string
	// Seen reports whether the lowercase guess was submitted before.
	Seen(guess string) bool
}

// Classifier decides the outcome of one guess.
type Classifier interface {
	Classify(v View, guess string) Outcome
}

// ClassifierFunc adapts a plain function to Classifier.
type ClassifierFunc func(v View, guess string) Outcome

func (f ClassifierFunc) Classify(v View, guess string) Outcome { return f(v, guess) }

// GuardClassifier expresses the precedence as a chain of guard clauses.
var GuardClassifier Classifier = ClassifierFunc(classifyGuards)

func classifyGuards(v View, guess string) Outcome {
	g := strings.ToLower(guess)
	word := v.Word()

	if !isLetters(g) {
		return Outcome{Code: CodeInvalid, Delta: deltaInvalid}
	}
	if g == word {
		return Outcome{Code: CodeWin, Delta: len(word)}
	}
	if len(g) == 1 {
		if n := strings.Count(word, g); n > 0 {
			return Outcome{Code: CodeLetterPresent, Delta: n}
		}
		return Outcome{Code: CodeLetterAbsent}
	}
	if v.Seen(g) {
		return Outcome{Code: CodeRepeat, Delta: deltaRepeat}
	}
	if len(g) < len(word) && strings.Contains(word, g) {
		return Outcome{Code: CodeSubstring, Delta: deltaSubstring}
	}
	switch diff := len(g) - len(word); {
	case diff > 0:
		return Outcome{Code: CodeTooLong, Delta: -diff}
	case diff < 0:
		return Outcome{Code: CodeTooShort, Delta: diff}
	}
	return Outcome{Code: CodeSameLength, Delta: deltaSameLength}
}

// ClassifierByName resolves a classifier from configuration.
// Accepted names: "guard" (default when empty) and "table".
func ClassifierByName(name string) (Classifier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "guard":
		return GuardClassifier, nil
	case "table":
		return TableClassifier, nil
	}
	return nil, fmt.Errorf("game: unknown classifier %q", name)
}

// isLetters reports whether s is non-empty and all lowercase ASCII letters.
// The empty string is treated as invalid.
func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
