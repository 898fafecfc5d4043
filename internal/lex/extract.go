package lex

import (
	"regexp"
	"strconv"
	"strings"
)

// --------------------------------------------------
// WORD → NUMBER
// --------------------------------------------------

var unitWords = map[string]int{
	"zero": 0, "one": 1, "a": 1, "an": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
}

var tensWords = map[string]int{
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

var wordRe = regexp.MustCompile(`[a-z]+|\d+`)

// WordToNumber converts a spoken numeral ("two", "twenty one") to its value.
// Returns false when the text contains no recognizable number word.
func WordToNumber(text string) (int, bool) {
	tokens := wordRe.FindAllString(strings.ToLower(text), -1)

	for i, tok := range tokens {
		if n, err := strconv.Atoi(tok); err == nil {
			return n, true
		}
		if n, ok := tensWords[tok]; ok {
			if i+1 < len(tokens) {
				if u, ok := unitWords[tokens[i+1]]; ok && u >= 1 && u <= 9 {
					return n + u, true
				}
			}
			return n, true
		}
		if n, ok := unitWords[tok]; ok {
			return n, true
		}
	}
	return 0, false
}

// --------------------------------------------------
// QUANTITY EXTRACTION
// --------------------------------------------------

var digitRe = regexp.MustCompile(`\b\d+\b`)

// ExtractQuantity pulls a quantity out of free-form text.
// Digits win over number words; absence of a quantity means 1, never an error.
func ExtractQuantity(text string) int {
	if m := digitRe.FindString(text); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return n
		}
	}
	if n, ok := WordToNumber(text); ok && n >= 1 {
		return n
	}
	return 1
}

// ExplicitQuantity is ExtractQuantity without the default: it returns 0
// when the text mentions no quantity at all, so callers can tell "2 pizza"
// from plain "pizza".
func ExplicitQuantity(text string) int {
	if m := digitRe.FindString(text); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return n
		}
	}
	if n, ok := WordToNumber(text); ok && n >= 1 {
		return n
	}
	return 0
}

// --------------------------------------------------
// CHOICE NORMALIZATION
// --------------------------------------------------

// NormalizeChoice turns a clarification reply into a 1-based index. Only a
// reply that is entirely a numeral ("2") or a single number word ("two")
// counts; a number buried in a longer reply is left for the name rematch.
func NormalizeChoice(choice string) (int, bool) {
	choice = strings.TrimSpace(strings.ToLower(choice))
	if choice == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(choice); err == nil {
		return n, true
	}
	return wordValue(choice)
}
