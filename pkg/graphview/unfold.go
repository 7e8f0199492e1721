package graphview

import (
	"github.com/relateby/patterncore/pkg/pattern"
	"github.com/relateby/patterncore/pkg/patterngraph"
	"github.com/relateby/patterncore/pkg/reconcile"
)

// UnfoldGraph is the anamorphism dual of Materialize (spec.md §4.7): for
// each seed, expand yields a collection of patterns; every produced
// pattern across every seed is inserted into a fresh PatternGraph under
// classifier and policy.
func UnfoldGraph[Extra any](
	classifier patterngraph.Classifier[Extra],
	expand func(seed pattern.Pattern[pattern.Subject]) []pattern.Pattern[pattern.Subject],
	policy reconcile.Policy,
	seeds []pattern.Pattern[pattern.Subject],
) *patterngraph.PatternGraph[Extra] {
	var produced []pattern.Pattern[pattern.Subject]
	for _, seed := range seeds {
		produced = append(produced, expand(seed)...)
	}
	return patterngraph.FromPatterns(produced, classifier, policy)
}
