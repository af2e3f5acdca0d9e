// internal/game/table.go
//
// TableClassifier: the same precedence as GuardClassifier, expressed as an
// ordered decision table. The first rule whose predicate matches wins.

package game

import "strings"

// rule is one row of the decision table.
type rule struct {
	name    string
	matches func(word, g string, v View) bool
	outcome func(word, g string) Outcome
}

// ruleTable evaluates rules in order.
type ruleTable []rule

// TableClassifier classifies guesses with the ordered rule table below.
var TableClassifier Classifier = ruleTable{
	{
		name:    "invalid",
		matches: func(_, g string, _ View) bool { return !isLetters(g) },
		outcome: fixed(CodeInvalid, deltaInvalid),
	},
	{
		name:    "win",
		matches: func(word, g string, _ View) bool { return g == word },
		outcome: func(word, _ string) Outcome { return Outcome{Code: CodeWin, Delta: len(word)} },
	},
	{
		name: "letter_present",
		matches: func(word, g string, _ View) bool {
			return len(g) == 1 && strings.Contains(word, g)
		},
		outcome: func(word, g string) Outcome {
			return Outcome{Code: CodeLetterPresent, Delta: strings.Count(word, g)}
		},
	},
	{
		name:    "letter_absent",
		matches: func(_, g string, _ View) bool { return len(g) == 1 },
		outcome: fixed(CodeLetterAbsent, 0),
	},
	{
		name:    "repeat",
		matches: func(_, g string, v View) bool { return v.Seen(g) },
		outcome: fixed(CodeRepeat, deltaRepeat),
	},
	{
		name: "substring",
		matches: func(word, g string, _ View) bool {
			return len(g) < len(word) && strings.Contains(word, g)
		},
		outcome: fixed(CodeSubstring, deltaSubstring),
	},
	{
		name:    "too_long",
		matches: func(word, g string, _ View) bool { return len(g) > len(word) },
		outcome: func(word, g string) Outcome { return Outcome{Code: CodeTooLong, Delta: len(word) - len(g)} },
	},
	{
		name:    "too_short",
		matches: func(word, g string, _ View) bool { return len(g) < len(word) },
		outcome: func(word, g string) Outcome { return Outcome{Code: CodeTooShort, Delta: len(g) - len(word)} },
	},
}

func (t ruleTable) Classify(v View, guess string) Outcome {
	g := strings.ToLower(guess)
	word := v.Word()
	for _, r := range t {
		if r.matches(word, g, v) {
			return r.outcome(word, g)
		}
	}
	// Every shorter, longer or non-letter guess matched above.
	return Outcome{Code: CodeSameLength, Delta: deltaSameLength}
}

func fixed(c Code, delta int) func(string, string) Outcome {
	return func(string, string) Outcome { return Outcome{Code: c, Delta: delta} }
}
