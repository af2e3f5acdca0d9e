package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordguess/internal/game"
)

func runREPL(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	r := &repl{
		in:     strings.NewReader(input),
		out:    &out,
		player: "Dr. M",
		pick:   func() string { return "lion" },
	}
	require.NoError(t, r.run())
	return out.String()
}

func TestREPLWin(t *testing.T) {
	out := runREPL(t, "o\nlio\nLION\nlion\n:quit\n")
	assert.Contains(t, out, "New game for Dr. M: 4 letters, 10 attempts.")
	assert.Contains(t, out, "1.1 letter is in the word")
	assert.Contains(t, out, "3.0 part of the word")
	assert.Contains(t, out, "You won with 17 points!")
	assert.Contains(t, out, "5.1 game already ended")
}

func TestREPLGameOverAndRestart(t *testing.T) {
	input := strings.Repeat("zz\n", game.MaxAttempts) + ":new\n:points\n"
	out := runREPL(t, input)
	assert.Contains(t, out, "5.0 out of attempts")
	assert.Contains(t, out, `Game over. The word was "lion".`)
	assert.Equal(t, 2, strings.Count(out, "New game for"))
	assert.Contains(t, out, "status in_progress · points 10 · attempt 0/10")
}

func TestREPLBadWord(t *testing.T) {
	r := &repl{
		in:   strings.NewReader(""),
		out:  &bytes.Buffer{},
		pick: func() string { return "" },
	}
	var iw *game.InvalidWordError
	assert.ErrorAs(t, r.run(), &iw)
}
