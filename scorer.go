// ABOUTME: Scoring pipeline for the select family: score, sort, rebuild view
// ABOUTME: Default scorer is sahilm/fuzzy; substring fallback folds case via x/text

package askline

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Scorer ranks an option against the live filter input. Returning ok=false
// excludes the option from the filtered view; higher scores rank first.
type Scorer func(filter, option string, index int) (score int64, ok bool)

var foldCaser = cases.Fold()

// SubstringScorer includes options containing the filter, compared under
// Unicode case folding, all with the same score. It is the plain fallback
// for callers who find fuzzy ranking too eager.
func SubstringScorer(filter, option string, _ int) (int64, bool) {
	if strings.Contains(foldCaser.String(option), foldCaser.String(filter)) {
		return 0, true
	}
	return 0, false
}

// scoredView computes the filtered view: the option indices eligible for
// display, ordered by descending score. An empty filter yields the identity
// view. The filter is NFC-normalised first so decomposed input matches
// composed option text.
func scoredView(filter string, options []string, scorer Scorer) []int {
	view := make([]int, 0, len(options))
	if filter == "" {
		for i := range options {
			view = append(view, i)
		}
		return view
	}
	filter = norm.NFC.String(filter)

	if scorer == nil {
		// fuzzy.Find returns matches already sorted by descending score.
		for _, m := range fuzzy.Find(filter, options) {
			view = append(view, m.Index)
		}
		return view
	}

	type scored struct {
		index int
		score int64
	}
	kept := make([]scored, 0, len(options))
	for i, opt := range options {
		if score, ok := scorer(filter, opt, i); ok {
			kept = append(kept, scored{index: i, score: score})
		}
	}
	sort.SliceStable(kept, func(a, b int) bool {
		return kept[a].score > kept[b].score
	})
	for _, s := range kept {
		view = append(view, s.index)
	}
	return view
}

// sameView reports whether two views hold the same indices in order.
func sameView(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
