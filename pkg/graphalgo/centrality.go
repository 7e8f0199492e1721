package graphalgo

import (
	"github.com/relateby/patterncore/pkg/graphquery"
	"github.com/relateby/patterncore/pkg/pattern"
)

// DegreeCentrality takes no weight parameter: for each node,
// query_degree(n) / (len(query_nodes()) - 1). On a graph with fewer than
// two nodes, every node scores 0.0 (spec.md §4.6, §8).
func DegreeCentrality(q graphquery.GraphQuery) map[string]float64 {
	nodes := q.QueryNodes()
	out := make(map[string]float64, len(nodes))
	if len(nodes) < 2 {
		for _, n := range nodes {
			out[n.Value().Identity()] = 0.0
		}
		return out
	}
	denom := float64(len(nodes) - 1)
	for _, n := range nodes {
		out[n.Value().Identity()] = float64(q.QueryDegree(n)) / denom
	}
	return out
}

// BetweennessCentrality runs Brandes' algorithm: one BFS per source for the
// shortest-path DAG, then back-propagation of dependencies. Returns
// unnormalized scores (spec.md §4.6). Wrapping q with
// graphquery.MemoizeIncidentRels is recommended before calling this on
// graphs that are revisited repeatedly.
func BetweennessCentrality(q graphquery.GraphQuery, w graphquery.TraversalWeight) map[string]float64 {
	nodes := q.QueryNodes()
	scores := make(map[string]float64, len(nodes))
	for _, n := range nodes {
		scores[n.Value().Identity()] = 0.0
	}

	for _, s := range nodes {
		sid := s.Value().Identity()

		stack := []string{}
		predecessors := map[string][]string{}
		sigma := map[string]float64{sid: 1.0}
		dist := map[string]int{sid: 0}
		queue := []pattern.Pattern[pattern.Subject]{s}
		byID := map[string]pattern.Pattern[pattern.Subject]{sid: s}

		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			vid := v.Value().Identity()
			stack = append(stack, vid)

			for _, nb := range ReachableNeighbors(q, w, v) {
				wid := nb.Node.Value().Identity()
				byID[wid] = nb.Node
				if _, seen := dist[wid]; !seen {
					dist[wid] = dist[vid] + 1
					queue = append(queue, nb.Node)
				}
				if dist[wid] == dist[vid]+1 {
					sigma[wid] += sigma[vid]
					predecessors[wid] = append(predecessors[wid], vid)
				}
			}
		}

		delta := map[string]float64{}
		for i := len(stack) - 1; i >= 0; i-- {
			wid := stack[i]
			for _, vid := range predecessors[wid] {
				if sigma[wid] != 0 {
					delta[vid] += (sigma[vid] / sigma[wid]) * (1 + delta[wid])
				}
			}
			if wid != sid {
				scores[wid] += delta[wid]
			}
		}
	}

	return scores
}
