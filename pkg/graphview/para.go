package graphview

import (
	"github.com/relateby/patterncore/pkg/graphquery"
	"github.com/relateby/patterncore/pkg/pattern"
	"github.com/relateby/patterncore/pkg/patterngraph"
)

// ParaGraph runs a structure-aware bottom-up fold over view, producing
// identity -> result for every element (spec.md §4.7.1). Processing order
// is topo_shape_sort. f receives the view's snapshot query, the current
// element, and the results already computed for its direct sub-elements
// (best-effort: when a bucket contains an unresolved cycle, some
// sub-results are missing — f must treat an empty slice as a valid
// structural signal, not an error).
func ParaGraph[Extra, R any](
	f func(query graphquery.GraphQuery, p pattern.Pattern[pattern.Subject], subResults []R) R,
	view GraphView[Extra],
) map[string]R {
	order := patterngraph.TopoShapeSort(view.Elements)
	results := make(map[string]R, len(order))
	for _, ce := range order {
		p := ce.Pattern
		var subResults []R
		for _, sub := range p.Elements() {
			if r, ok := results[sub.Value().Identity()]; ok {
				subResults = append(subResults, r)
			}
		}
		results[p.Value().Identity()] = f(view.Query, p, subResults)
	}
	return results
}

// ParaGraphFixed iterates ParaGraph-with-seed to a fixpoint (spec.md
// §4.7.1): every identity starts at init; each round re-runs the same
// topo_shape_sort order (the view never changes) and threads an
// accumulator that grows within the round — later elements in the same
// round see earlier elements' freshly-computed results. The loop
// terminates when converged(prev, next) holds for every identity.
func ParaGraphFixed[Extra, R any](
	converged func(prev, next R) bool,
	f func(query graphquery.GraphQuery, p pattern.Pattern[pattern.Subject], subResults []R) R,
	init R,
	view GraphView[Extra],
) map[string]R {
	order := patterngraph.TopoShapeSort(view.Elements)

	current := make(map[string]R, len(order))
	for _, ce := range order {
		current[ce.Pattern.Value().Identity()] = init
	}

	for {
		next := make(map[string]R, len(order))
		for id, v := range current {
			next[id] = v
		}

		allConverged := true
		for _, ce := range order {
			p := ce.Pattern
			id := p.Value().Identity()
			var subResults []R
			for _, sub := range p.Elements() {
				if r, ok := next[sub.Value().Identity()]; ok {
					subResults = append(subResults, r)
				}
			}
			newVal := f(view.Query, p, subResults)
			if !converged(current[id], newVal) {
				allConverged = false
			}
			next[id] = newVal
		}

		current = next
		if allConverged {
			return current
		}
	}
}
