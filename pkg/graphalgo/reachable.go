// Package graphalgo implements the algorithms suite (spec.md §4.6): BFS,
// DFS, Dijkstra shortest-path, all-paths, connected components,
// topological sort, cycle detection, Kruskal minimum spanning tree,
// degree and betweenness centrality, and context helpers. Every function
// here is a free function over a graphquery.GraphQuery — none look inside
// a backing store directly, grounded on internal/analyzer/relationships.go's
// "classify-then-report" shape in the teacher, generalized from file-level
// relationships to arbitrary GraphQuery traversal.
package graphalgo

import (
	"math"

	"github.com/relateby/patterncore/pkg/graphquery"
	"github.com/relateby/patterncore/pkg/pattern"
)

// Neighbor is a reachable node paired with the relationship that reached
// it and the traversal cost of that hop.
type Neighbor struct {
	Node pattern.Pattern[pattern.Subject]
	Rel  pattern.Pattern[pattern.Subject]
	Cost float64
}

// ReachableNeighbors is the uniform reachability primitive every algorithm
// in this package is built on (spec.md §4.6): for each relationship
// incident to n, the neighbor reached by traversing it under w, in
// whichever direction is finite-cost.
func ReachableNeighbors(q graphquery.GraphQuery, w graphquery.TraversalWeight, n pattern.Pattern[pattern.Subject]) []Neighbor {
	id := n.Value().Identity()
	var out []Neighbor
	for _, r := range q.QueryIncidentRels(n) {
		if source, ok := q.QuerySource(r); ok && source.Value().Identity() == id {
			if cost := w(r, graphquery.Forward); !math.IsInf(cost, 1) {
				if target, ok := q.QueryTarget(r); ok {
					out = append(out, Neighbor{Node: target, Rel: r, Cost: cost})
				}
			}
		}
		if target, ok := q.QueryTarget(r); ok && target.Value().Identity() == id {
			if cost := w(r, graphquery.Backward); !math.IsInf(cost, 1) {
				if source, ok := q.QuerySource(r); ok {
					out = append(out, Neighbor{Node: source, Rel: r, Cost: cost})
				}
			}
		}
	}
	return out
}
