// Package daily picks the shared secret word for a calendar day.
// The choice is deterministic for a (salt, date) pair so every player of
// the daily game gets the same word without any stored state.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns HMAC-SHA256(salt, DateKey(date)) mod n, or 0 when n <= 0.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes give an even enough spread for the modulus
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}

// Word returns the daily word from words for the given date, along with
// the date key it belongs to. It returns "" when words is empty.
func Word(date time.Time, salt string, words []string) (word, key string) {
	key = DateKey(date)
	if len(words) == 0 {
		return "", key
	}
	return words[WordIndex(date, salt, len(words))], key
}
