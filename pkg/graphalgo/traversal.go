package graphalgo

import (
	"github.com/relateby/patterncore/pkg/graphquery"
	"github.com/relateby/patterncore/pkg/pattern"
)

// BFS returns nodes in breadth-first visit order starting with s.
// Deterministic tie-break: by iteration order of ReachableNeighbors
// (spec.md §4.6, §5).
func BFS(q graphquery.GraphQuery, w graphquery.TraversalWeight, s pattern.Pattern[pattern.Subject]) []pattern.Pattern[pattern.Subject] {
	visited := map[string]bool{s.Value().Identity(): true}
	order := []pattern.Pattern[pattern.Subject]{s}
	queue := []pattern.Pattern[pattern.Subject]{s}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range ReachableNeighbors(q, w, cur) {
			id := nb.Node.Value().Identity()
			if visited[id] {
				continue
			}
			visited[id] = true
			order = append(order, nb.Node)
			queue = append(queue, nb.Node)
		}
	}
	return order
}

// DFS returns nodes in depth-first discovery order starting with s.
func DFS(q graphquery.GraphQuery, w graphquery.TraversalWeight, s pattern.Pattern[pattern.Subject]) []pattern.Pattern[pattern.Subject] {
	visited := map[string]bool{}
	var order []pattern.Pattern[pattern.Subject]
	var visit func(n pattern.Pattern[pattern.Subject])
	visit = func(n pattern.Pattern[pattern.Subject]) {
		id := n.Value().Identity()
		if visited[id] {
			return
		}
		visited[id] = true
		order = append(order, n)
		for _, nb := range ReachableNeighbors(q, w, n) {
			visit(nb.Node)
		}
	}
	visit(s)
	return order
}

// IsConnected reports whether a single BFS from an arbitrary node visits
// every node. An empty graph is vacuously connected (spec.md §4.6, §8).
func IsConnected(q graphquery.GraphQuery, w graphquery.TraversalWeight) bool {
	nodes := q.QueryNodes()
	if len(nodes) == 0 {
		return true
	}
	visited := BFS(q, w, nodes[0])
	return len(visited) == len(nodes)
}

// ConnectedComponents partitions all nodes by repeated BFS on unvisited
// nodes, in discovery order (spec.md §4.6, §5).
func ConnectedComponents(q graphquery.GraphQuery, w graphquery.TraversalWeight) [][]pattern.Pattern[pattern.Subject] {
	seen := map[string]bool{}
	var components [][]pattern.Pattern[pattern.Subject]
	for _, n := range q.QueryNodes() {
		id := n.Value().Identity()
		if seen[id] {
			continue
		}
		component := BFS(q, w, n)
		for _, m := range component {
			seen[m.Value().Identity()] = true
		}
		components = append(components, component)
	}
	return components
}

// IsNeighbor reports whether a and b have any finite-cost direct
// connection.
func IsNeighbor(q graphquery.GraphQuery, w graphquery.TraversalWeight, a, b pattern.Pattern[pattern.Subject]) bool {
	bid := b.Value().Identity()
	for _, nb := range ReachableNeighbors(q, w, a) {
		if nb.Node.Value().Identity() == bid {
			return true
		}
	}
	return false
}
