// internal/words/words.go
//
// Secret-word lists for hosts that pick the word themselves.
//
// Responsibilities:
//   - Load a list from a file (WORDS_FILE) or fall back to the embedded default.
//   - Normalize entries: lowercase, trimmed, letters a–z only, deduplicated.
//   - Supply Random, Contains, Words and Stats.
//
// Constraints:
//   • Entries shorter than MinLen or longer than MaxLen are dropped.
//   • A list with no usable entries is an error.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/robalobadob/wordguess/assets"
)

// Length bounds for secret words.
const (
	MinLen = 3
	MaxLen = 12
)

// ErrEmpty is returned when no usable word survives normalization.
var ErrEmpty = errors.New("words: list is empty")

// List is an immutable, normalized word list. Safe for concurrent reads.
type List struct {
	words []string
	set   map[string]struct{}
}

// NewList normalizes raw entries into a List.
func NewList(raw []string) (*List, error) {
	ws := normalize(raw)
	if len(ws) == 0 {
		return nil, ErrEmpty
	}
	return &List{
		words: ws,
		set:   lo.Associate(ws, func(w string) (string, struct{}) { return w, struct{}{} }),
	}, nil
}

// Load reads one word per line from path, or the embedded default list
// when path is empty. Lines starting with '#' are ignored.
func Load(path string) (*List, error) {
	if path == "" {
		raw, err := assets.WordList()
		if err != nil {
			return nil, fmt.Errorf("words: embedded list: %w", err)
		}
		return NewList(raw)
	}
	raw, err := readWordFile(path)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return NewList(raw)
}

// readWordFile loads one entry per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); !strings.HasPrefix(line, "#") {
			out = append(out, line)
		}
	}
	return out, sc.Err()
}

// normalize lowercases, trims, filters and deduplicates, keeping first-seen order.
func normalize(raw []string) []string {
	ws := lo.Map(raw, func(s string, _ int) string {
		return strings.ToLower(strings.TrimSpace(s))
	})
	ws = lo.Filter(ws, func(w string, _ int) bool {
		return len(w) >= MinLen && len(w) <= MaxLen && isAlpha(w)
	})
	return lo.Uniq(ws)
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Random returns a cryptographically random word from the list.
func (l *List) Random() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return l.words[0]
	}
	return l.words[n.Int64()]
}

// Contains reports whether w (any case) is in the list.
func (l *List) Contains(w string) bool {
	_, ok := l.set[strings.ToLower(w)]
	return ok
}

// Words returns a copy of the list in load order.
func (l *List) Words() []string {
	return append([]string(nil), l.words...)
}

// Len returns the number of words.
func (l *List) Len() int { return len(l.words) }

// Stats returns the word count and the shortest/longest word lengths.
func (l *List) Stats() (count, shortest, longest int) {
	lens := lo.Map(l.words, func(w string, _ int) int { return len(w) })
	return len(lens), lo.Min(lens), lo.Max(lens)
}
