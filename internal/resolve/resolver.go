package resolve

import (
	"sort"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Thresholds observed per call site: single-item resolution uses the low bar,
// free-form collection the high one, clarification rematch higher still.
const (
	DefaultThreshold = 50
	CollectThreshold = 75
	ClarifyThreshold = 80

	DefaultBand = 20
	NarrowBand  = 5
)

// Scorer is the raw fuzzy-similarity primitive on a 0–100 scale.
// All thresholding and banding policy lives in the Resolver, not here.
type Scorer interface {
	Score(query, candidate string) int
}

// WRatioScorer scores with fuzzywuzzy's weighted ratio.
type WRatioScorer struct{}

func (WRatioScorer) Score(query, candidate string) int {
	return fuzzy.WRatio(query, candidate)
}

// Match is one ranked candidate.
type Match struct {
	Name  string
	Index int
	Score int
}

type Resolver struct {
	scorer Scorer
}

func NewResolver(scorer Scorer) *Resolver {
	if scorer == nil {
		scorer = WRatioScorer{}
	}
	return &Resolver{scorer: scorer}
}

// Rank scores every candidate name against the fragment, best first.
// Equal scores keep candidate order, so ties are left for the user to break.
func (r *Resolver) Rank(fragment string, names []string) []Match {
	matches := make([]Match, 0, len(names))
	for i, name := range names {
		matches = append(matches, Match{
			Name:  name,
			Index: i,
			Score: r.scorer.Score(fragment, name),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// Resolve returns the top-scoring candidate when it clears the threshold.
// No candidate clearing it is an explicit not-found, never an error.
func (r *Resolver) Resolve(fragment string, names []string, threshold int) (Match, bool) {
	ranked := r.Rank(fragment, names)
	if len(ranked) == 0 || ranked[0].Score < threshold {
		return Match{}, false
	}
	return ranked[0], true
}

// ResolveWithAmbiguity keeps every candidate scoring within band points of the
// top score, provided the top clears the threshold. One survivor means an
// unambiguous resolution; several mean the caller must clarify; none means
// not found.
func (r *Resolver) ResolveWithAmbiguity(fragment string, names []string, threshold, band int) []Match {
	ranked := r.Rank(fragment, names)
	if len(ranked) == 0 || ranked[0].Score < threshold {
		return nil
	}

	best := ranked[0].Score
	var kept []Match
	for _, m := range ranked {
		if m.Score >= best-band {
			kept = append(kept, m)
		}
	}
	return kept
}

// Rematch re-runs resolution against a clarification candidate set with the
// high-confidence cutoff.
func (r *Resolver) Rematch(fragment string, names []string) (Match, bool) {
	return r.Resolve(fragment, names, ClarifyThreshold)
}
