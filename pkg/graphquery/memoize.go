package graphquery

import "github.com/relateby/patterncore/pkg/pattern"

// MemoizeIncidentRels eagerly builds {identity -> incident_rels} once from
// base.QueryNodes(), then serves QueryIncidentRels and QueryDegree from
// that cache (spec.md §4.5). All other fields pass through unchanged.
// Recommended before running algorithms that revisit nodes repeatedly
// (betweenness centrality, iterative para_graph_fixed rounds).
func MemoizeIncidentRels(base GraphQuery) GraphQuery {
	cache := newResultCache(0) // unbounded: built once, immutable thereafter
	for _, n := range base.QueryNodes() {
		id := n.Value().Identity()
		rels := base.QueryIncidentRels(n)
		boxed := make([]interface{}, len(rels))
		for i, r := range rels {
			boxed[i] = r
		}
		cache.set(id, boxed)
	}

	lookup := func(n pattern.Pattern[pattern.Subject]) []pattern.Pattern[pattern.Subject] {
		boxed, ok := cache.get(n.Value().Identity())
		if !ok {
			return base.QueryIncidentRels(n)
		}
		out := make([]pattern.Pattern[pattern.Subject], len(boxed))
		for i, v := range boxed {
			out[i] = v.(pattern.Pattern[pattern.Subject])
		}
		return out
	}

	memoized := base
	memoized.QueryIncidentRels = lookup
	memoized.QueryDegree = func(n pattern.Pattern[pattern.Subject]) int { return len(lookup(n)) }
	return memoized
}
