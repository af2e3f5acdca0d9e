package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeView struct {
	word string
	seen map[string]bool
}

func (f fakeView) Word() string           { return f.word }
func (f fakeView) Seen(guess string) bool { return f.seen[guess] }

var classifiers = map[string]Classifier{
	"guard": GuardClassifier,
	"table": TableClassifier,
}

func TestClassifyPrecedence(t *testing.T) {
	view := fakeView{word: "lion", seen: map[string]bool{
		"li": true, "lion": true, "o": true, "fans": true, "l1": true, "lumberjacks": true,
	}}
	cases := []struct {
		name  string
		guess string
		want  Outcome
	}{
		{"invalid beats everything", "l1", Outcome{CodeInvalid, -3}},
		{"win beats repeat", "lion", Outcome{CodeWin, 4}},
		{"letter beats repeat", "o", Outcome{CodeLetterPresent, 1}},
		{"absent letter", "q", Outcome{CodeLetterAbsent, 0}},
		{"repeat beats substring", "li", Outcome{CodeRepeat, -2}},
		{"repeat beats length", "lumberjacks", Outcome{CodeRepeat, -2}},
		{"repeat beats same length", "FANS", Outcome{CodeRepeat, -2}},
		{"substring beats too short", "ion", Outcome{CodeSubstring, 2}},
		{"too short", "ox", Outcome{CodeTooShort, -2}},
		{"too long by one", "lions", Outcome{CodeTooLong, -1}},
		{"same length", "loin", Outcome{CodeSameLength, 1}},
		{"empty", "", Outcome{CodeInvalid, -3}},
	}
	for name, c := range classifiers {
		t.Run(name, func(t *testing.T) {
			for _, tc := range cases {
				assert.Equal(t, tc.want, c.Classify(view, tc.guess), tc.name)
			}
		})
	}
}

func TestClassifiersAgree(t *testing.T) {
	view := fakeView{word: "mississippi", seen: map[string]bool{"sip": true, "miss": true}}
	guesses := []string{
		"", "m", "s", "z", "S", "sip", "miss", "ssi", "issi", "pi", "mississippi",
		"MISSISSIPPI", "mississippis", "missouririver", "abcdefghijk", "sis", "x1", "ss ",
	}
	for _, g := range guesses {
		assert.Equal(t, GuardClassifier.Classify(view, g), TableClassifier.Classify(view, g), "guess %q", g)
	}
	assert.Equal(t, Outcome{CodeLetterPresent, 4}, GuardClassifier.Classify(view, "s"))
}

func TestClassifierDoesNotMutate(t *testing.T) {
	s, err := New("lion", "p")
	require.NoError(t, err)
	for _, c := range classifiers {
		c.Classify(s, "fans")
		c.Classify(s, "lion")
	}
	assert.Equal(t, InitialScore, s.Points())
	assert.Equal(t, 0, s.Attempts())
	assert.False(t, s.Seen("fans"))
	assert.Equal(t, StatusInProgress, s.Status())
}

func TestTableRuleOrder(t *testing.T) {
	table, ok := TableClassifier.(ruleTable)
	require.True(t, ok)
	names := make([]string, 0, len(table))
	for _, r := range table {
		names = append(names, r.name)
	}
	assert.Equal(t, []string{
		"invalid", "win", "letter_present", "letter_absent",
		"repeat", "substring", "too_long", "too_short",
	}, names)
}

func TestClassifierByName(t *testing.T) {
	c, err := ClassifierByName("")
	require.NoError(t, err)
	assert.NotNil(t, c)

	c, err = ClassifierByName(" Table ")
	require.NoError(t, err)
	_, isTable := c.(ruleTable)
	assert.True(t, isTable)

	_, err = ClassifierByName("regex")
	assert.EqualError(t, err, `game: unknown classifier "regex"`)
}
