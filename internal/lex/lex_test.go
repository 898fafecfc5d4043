package lex

import "testing"

// --------------------------------------------------
// QUANTITY EXTRACTION
// --------------------------------------------------

func TestExtractQuantityDigitsWin(t *testing.T) {
	if got := ExtractQuantity("give me 3 pizzas"); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestExtractQuantityWords(t *testing.T) {
	cases := map[string]int{
		"two cheese pizzas":      2,
		"seventeen samosas":      17,
		"twenty one breadsticks": 21,
		"a coke":                 1,
	}
	for in, want := range cases {
		if got := ExtractQuantity(in); got != want {
			t.Fatalf("%q: expected %d, got %d", in, want, got)
		}
	}
}

func TestExtractQuantityIsTotal(t *testing.T) {
	for _, in := range []string{"", "???", "no numbers here", "zero"} {
		if got := ExtractQuantity(in); got < 1 {
			t.Fatalf("%q: expected >= 1, got %d", in, got)
		}
	}
}

// --------------------------------------------------
// BOOLEAN INTENT
// --------------------------------------------------

func TestParseBooleanIntent(t *testing.T) {
	cases := map[string]bool{
		"yes please":            true,
		"sure, add it":          true,
		"no thanks":             false,
		"yes but without onion": false, // negative phrase vetoes
		"hmm":                   false, // neither lexicon matched
	}
	for in, want := range cases {
		if got := ParseBooleanIntent(in); got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}
}

func TestParseConfirmIntent(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"yes, confirm it", "yes", true},
		{"no, cancel", "no", true},
		{"maybe later", "maybe", true},
		{"what's the weather", "", false},
		// Mixed replies read as the non-committing intent: deferral and
		// refusal veto an affirmative word.
		{"yes, cancel", "no", true},
		{"okay maybe later", "maybe", true},
	}
	for _, c := range cases {
		got, ok := ParseConfirmIntent(c.in)
		if got != c.want || ok != c.ok {
			t.Fatalf("%q: expected (%q,%v), got (%q,%v)", c.in, c.want, c.ok, got, ok)
		}
	}
}

// --------------------------------------------------
// MULTI-VALUE PARSERS
// --------------------------------------------------

func TestParseMultiQuantities(t *testing.T) {
	got := ParseMultiQuantities("two small and one large", []string{"small", "large"})
	if len(got) != 2 {
		t.Fatalf("expected 2 labels, got %d: %v", len(got), got)
	}
	if got[0].Label != "Small" || got[0].Quantity != 2 {
		t.Fatalf("expected {Small 2}, got %v", got[0])
	}
	if got[1].Label != "Large" || got[1].Quantity != 1 {
		t.Fatalf("expected {Large 1}, got %v", got[1])
	}
}

func TestParseMultiQuantitiesSumsRepeats(t *testing.T) {
	got := ParseMultiQuantities("small small", []string{"small", "large"})
	if len(got) != 1 || got[0].Quantity != 2 {
		t.Fatalf("expected {Small 2}, got %v", got)
	}
}

func TestParseMultiQuantitiesIgnoresUnknownLabels(t *testing.T) {
	got := ParseMultiQuantities("two medium and one large", []string{"small", "large"})
	if len(got) != 1 || got[0].Label != "Large" {
		t.Fatalf("expected only Large, got %v", got)
	}
}

func TestParseMultiQuantitiesMultiplierMarker(t *testing.T) {
	got := ParseMultiQuantities("3 x small", []string{"small"})
	if len(got) != 1 || got[0].Quantity != 3 {
		t.Fatalf("expected {Small 3}, got %v", got)
	}
}

func TestParseMultiQuantitiesCompactMultiplier(t *testing.T) {
	got := ParseMultiQuantities("2x small", []string{"small"})
	if len(got) != 1 || got[0].Quantity != 2 {
		t.Fatalf("expected {Small 2}, got %v", got)
	}
}

func TestParseMultiQuantitiesPermissiveFallback(t *testing.T) {
	got := ParseMultiQuantities("2 cokes", nil)
	if len(got) != 1 || got[0].Label != "Cokes" || got[0].Quantity != 2 {
		t.Fatalf("expected {Cokes 2}, got %v", got)
	}
}

func TestParseMultiQuantitiesDeterministic(t *testing.T) {
	a := ParseMultiQuantities("two small one large", []string{"small", "large"})
	b := ParseMultiQuantities("two small one large", []string{"small", "large"})
	if len(a) != len(b) {
		t.Fatalf("non-deterministic output: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic output: %v vs %v", a, b)
		}
	}
}

func TestParseMultiOptions(t *testing.T) {
	got := ParseMultiOptions("2 Thin Crust and cheese burst", []string{"Thin Crust", "Cheese Burst"})
	if len(got) != 2 {
		t.Fatalf("expected 2 options, got %v", got)
	}
	if got[0].Option != "Thin Crust" || got[0].Quantity != 2 {
		t.Fatalf("expected {Thin Crust 2}, got %v", got[0])
	}
	if got[1].Option != "Cheese Burst" || got[1].Quantity != 1 {
		t.Fatalf("expected {Cheese Burst 1}, got %v", got[1])
	}
}

// --------------------------------------------------
// CHOICE NORMALIZATION
// --------------------------------------------------

func TestNormalizeChoice(t *testing.T) {
	if n, ok := NormalizeChoice(" Two "); !ok || n != 2 {
		t.Fatalf("expected 2, got %d (%v)", n, ok)
	}
	if n, ok := NormalizeChoice("4"); !ok || n != 4 {
		t.Fatalf("expected 4, got %d (%v)", n, ok)
	}
	if _, ok := NormalizeChoice("banana"); ok {
		t.Fatalf("expected no match for non-numeric choice")
	}
	// A number word inside a name reply is not an index.
	if _, ok := NormalizeChoice("one veg wrap"); ok {
		t.Fatalf("expected no match for a nominal reply containing a number word")
	}
	if _, ok := NormalizeChoice("item 2"); ok {
		t.Fatalf("expected no match for a partial-numeral reply")
	}
}
