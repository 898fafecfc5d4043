package lex

import "strings"

// Fixed yes/no lexicons. A reply is affirmative only when a positive phrase
// appears and no negative phrase does; everything else reads as "no".
var positivePhrases = []string{
	"yes", "yeah", "yup", "i want", "sure", "of course", "absolutely",
	"okay", "add", "include", "do", "confirm",
}

var negativePhrases = []string{
	"no", "nope", "don't", "not", "skip", "without", "exclude", "remove", "cancel",
}

var deferPhrases = []string{"maybe", "later"}

// ParseBooleanIntent reads a yes/no answer out of free-form text.
func ParseBooleanIntent(text string) bool {
	s := strings.ToLower(text)

	isPositive := containsAny(s, positivePhrases)
	isNegative := containsAny(s, negativePhrases)

	return isPositive && !isNegative
}

// ParseConfirmIntent classifies a final-confirmation reply as
// "yes", "no" or "maybe". ok is false when none of the lexicons matched.
func ParseConfirmIntent(text string) (string, bool) {
	s := strings.ToLower(text)

	switch {
	case containsAny(s, deferPhrases):
		return "maybe", true
	case containsAny(s, negativePhrases):
		return "no", true
	case containsAny(s, positivePhrases):
		return "yes", true
	}
	return "", false
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
