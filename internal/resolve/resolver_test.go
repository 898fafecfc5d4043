package resolve

import "testing"

// --------------------------------------------------
// Stub scorer with fixed scores per candidate
// --------------------------------------------------

type stubScorer struct {
	scores map[string]int
}

func (s stubScorer) Score(_, candidate string) int {
	return s.scores[candidate]
}

func fixedResolver(scores map[string]int) *Resolver {
	return NewResolver(stubScorer{scores: scores})
}

// --------------------------------------------------
// Threshold behavior
// --------------------------------------------------

func TestResolveClearsThreshold(t *testing.T) {
	r := fixedResolver(map[string]int{"cheese pizza": 90, "veg pizza": 60})

	m, ok := r.Resolve("chese pizza", []string{"cheese pizza", "veg pizza"}, DefaultThreshold)
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.Name != "cheese pizza" || m.Index != 0 {
		t.Fatalf("expected cheese pizza at index 0, got %+v", m)
	}
}

func TestResolveBelowThresholdIsNotFound(t *testing.T) {
	r := fixedResolver(map[string]int{"cheese pizza": 40})

	if _, ok := r.Resolve("sushi", []string{"cheese pizza"}, DefaultThreshold); ok {
		t.Fatalf("expected not found below threshold")
	}
}

func TestResolveEmptyCandidates(t *testing.T) {
	r := fixedResolver(nil)
	if _, ok := r.Resolve("anything", nil, DefaultThreshold); ok {
		t.Fatalf("expected not found for empty candidate set")
	}
}

// --------------------------------------------------
// Ambiguity banding
// --------------------------------------------------

func TestAmbiguityBandKeepsCloseScores(t *testing.T) {
	r := fixedResolver(map[string]int{"pizza a": 90, "pizza b": 88, "burger": 60})
	names := []string{"pizza a", "pizza b", "burger"}

	kept := r.ResolveWithAmbiguity("pizza", names, DefaultThreshold, DefaultBand)
	if len(kept) != 2 {
		t.Fatalf("band 20: expected 2 survivors, got %d", len(kept))
	}
	if kept[0].Name != "pizza a" || kept[1].Name != "pizza b" {
		t.Fatalf("unexpected survivors: %+v", kept)
	}
}

func TestAmbiguityBandTightensToSingle(t *testing.T) {
	r := fixedResolver(map[string]int{"pizza a": 90, "pizza b": 88, "burger": 60})
	names := []string{"pizza a", "pizza b", "burger"}

	kept := r.ResolveWithAmbiguity("pizza", names, DefaultThreshold, 1)
	if len(kept) != 1 || kept[0].Name != "pizza a" {
		t.Fatalf("band 1: expected only the top match, got %+v", kept)
	}
}

func TestAmbiguityBelowThresholdIsNotFound(t *testing.T) {
	r := fixedResolver(map[string]int{"pizza a": 40, "pizza b": 38})

	kept := r.ResolveWithAmbiguity("sushi", []string{"pizza a", "pizza b"}, CollectThreshold, NarrowBand)
	if kept != nil {
		t.Fatalf("expected nil for no candidate above threshold, got %+v", kept)
	}
}

func TestTiesAreNotBrokenAutomatically(t *testing.T) {
	r := fixedResolver(map[string]int{"paneer roll": 80, "paneer bowl": 80})
	names := []string{"paneer roll", "paneer bowl"}

	kept := r.ResolveWithAmbiguity("paneer", names, DefaultThreshold, NarrowBand)
	if len(kept) != 2 {
		t.Fatalf("expected both tied candidates to survive, got %+v", kept)
	}
	// Stable rank: candidate order preserved on equal scores.
	if kept[0].Name != "paneer roll" {
		t.Fatalf("expected stable ordering, got %+v", kept)
	}
}

// --------------------------------------------------
// Clarification rematch
// --------------------------------------------------

func TestRematchUsesHighCutoff(t *testing.T) {
	r := fixedResolver(map[string]int{"chicken pizza": 82, "cheese pizza": 70})
	names := []string{"chicken pizza", "cheese pizza"}

	m, ok := r.Rematch("chicken one", names)
	if !ok || m.Name != "chicken pizza" {
		t.Fatalf("expected chicken pizza, got %+v (%v)", m, ok)
	}

	r = fixedResolver(map[string]int{"chicken pizza": 75, "cheese pizza": 70})
	if _, ok := r.Rematch("something else", names); ok {
		t.Fatalf("expected no rematch below the high cutoff")
	}
}

// --------------------------------------------------
// Real scorer smoke test
// --------------------------------------------------

func TestWRatioScorerScale(t *testing.T) {
	s := WRatioScorer{}

	exact := s.Score("cheese pizza", "cheese pizza")
	if exact != 100 {
		t.Fatalf("expected exact match to score 100, got %d", exact)
	}

	close := s.Score("chese pizza", "cheese pizza")
	far := s.Score("chese pizza", "mango lassi")
	if close <= far {
		t.Fatalf("expected typo match (%d) to outscore unrelated item (%d)", close, far)
	}
}
