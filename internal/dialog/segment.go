package dialog

import (
	"regexp"
	"strings"

	"github.com/SKxrda3/sb-voice/internal/lex"
)

// Conjunction markers that separate distinct requested items.
var conjunctionRe = regexp.MustCompile(`\s+(?:and|&|with)\s+|\s*,\s*`)

// SegmentUtterance splits a free-form order into item fragments, each with
// its explicitly mentioned quantity.
func SegmentUtterance(text string) []Fragment {
	var fragments []Fragment

	for _, part := range conjunctionRe.Split(strings.ToLower(text), -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fragments = append(fragments, Fragment{
			Text:     part,
			Quantity: lex.ExplicitQuantity(part),
		})
	}

	return fragments
}
