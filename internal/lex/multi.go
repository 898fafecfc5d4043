package lex

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// LabelQuantity is one parsed "<n> <label>" mention, with repeats summed.
type LabelQuantity struct {
	Label    string
	Quantity int
}

// OptionQuantity is one literal option mention with its leading count.
type OptionQuantity struct {
	Option   string
	Quantity int
}

var tokenRe = regexp.MustCompile(`[a-zA-Z0-9]+`)

// ParseMultiQuantities finds every allowed label in the sentence, reads the
// optional quantity word/digit (and optional "x" multiplier) in front of it,
// and sums quantities for repeated mentions of the same label.
// With no allowed labels, any alphanumeric token that is not itself a numeral
// is treated as a candidate label.
func ParseMultiQuantities(sentence string, allowed []string) []LabelQuantity {
	rex := labelPattern(allowed)

	totals := map[string]int{}
	var order []string

	for _, loc := range rex.FindAllStringIndex(sentence, -1) {
		label := strings.ToLower(sentence[loc[0]:loc[1]])
		if isNumeral(label) || label == "x" {
			continue
		}

		qty := leadingQuantity(sentence[:loc[0]])
		if _, seen := totals[label]; !seen {
			order = append(order, label)
		}
		totals[label] += qty
	}

	out := make([]LabelQuantity, 0, len(order))
	for _, label := range order {
		out = append(out, LabelQuantity{Label: capitalize(label), Quantity: totals[label]})
	}
	return out
}

// ParseMultiOptions finds every occurrence of an allowed option keyword,
// case-insensitively, each with its leading digit count (default 1).
// Occurrences are appended in text order, not summed.
func ParseMultiOptions(sentence string, allowed []string) []OptionQuantity {
	if len(allowed) == 0 {
		return nil
	}

	canon := map[string]string{}
	for _, o := range allowed {
		canon[strings.ToLower(o)] = o
	}

	rex := labelPattern(allowed)

	var out []OptionQuantity
	for _, loc := range rex.FindAllStringIndex(sentence, -1) {
		opt := strings.ToLower(sentence[loc[0]:loc[1]])

		qty := 1
		if tok := trailingToken(sentence[:loc[0]]); tok != "" {
			if n, err := strconv.Atoi(tok); err == nil {
				qty = n
			}
		}
		out = append(out, OptionQuantity{Option: canon[opt], Quantity: qty})
	}
	return out
}

// labelPattern builds a word-bounded alternation over the allowed labels,
// longest first so multi-word labels win over their prefixes.
func labelPattern(allowed []string) *regexp.Regexp {
	if len(allowed) == 0 {
		return tokenRe
	}

	quoted := make([]string, 0, len(allowed))
	for _, a := range allowed {
		quoted = append(quoted, regexp.QuoteMeta(strings.ToLower(a)))
	}
	sort.Slice(quoted, func(i, j int) bool { return len(quoted[i]) > len(quoted[j]) })

	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// leadingQuantity reads the number immediately before a label mention,
// allowing an "x" multiplier marker in between ("3 x", "2x"). Defaults to 1.
func leadingQuantity(prefix string) int {
	tok := trailingToken(prefix)
	if tok == "x" {
		tok = trailingToken(strings.TrimRight(strings.TrimSpace(prefix), "xX"))
	} else if digits := strings.TrimSuffix(tok, "x"); digits != tok && digits != "" {
		if n, err := strconv.Atoi(digits); err == nil {
			return n
		}
	}
	if tok == "" {
		return 1
	}
	if n, err := strconv.Atoi(tok); err == nil {
		return n
	}
	if n, ok := wordValue(tok); ok {
		return n
	}
	return 1
}

// trailingToken returns the last alphanumeric token of s, lowercased.
func trailingToken(s string) string {
	tokens := tokenRe.FindAllString(s, -1)
	if len(tokens) == 0 {
		return ""
	}
	return strings.ToLower(tokens[len(tokens)-1])
}

// wordValue resolves a single token against the number-word tables.
func wordValue(tok string) (int, bool) {
	if n, ok := unitWords[tok]; ok {
		return n, true
	}
	if n, ok := tensWords[tok]; ok {
		return n, true
	}
	return 0, false
}

func isNumeral(tok string) bool {
	if _, err := strconv.Atoi(tok); err == nil {
		return true
	}
	_, ok := wordValue(tok)
	return ok
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
