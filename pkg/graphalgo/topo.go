package graphalgo

import (
	"github.com/relateby/patterncore/pkg/graphquery"
	"github.com/relateby/patterncore/pkg/pattern"
)

// TopologicalSort ignores weight entirely; it uses only QuerySource and
// QueryTarget to infer edge direction (source -> target). DFS post-order
// with on-stack cycle detection; returns (nil, false) on a cycle (spec.md
// §4.6).
func TopologicalSort(q graphquery.GraphQuery) ([]pattern.Pattern[pattern.Subject], bool) {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := map[string]int{}
	byID := map[string]pattern.Pattern[pattern.Subject]{}
	adjacency := map[string][]string{}

	for _, n := range q.QueryNodes() {
		byID[n.Value().Identity()] = n
		color[n.Value().Identity()] = white
	}
	for _, r := range q.QueryRelationships() {
		source, sok := q.QuerySource(r)
		target, tok := q.QueryTarget(r)
		if !sok || !tok {
			continue
		}
		sid, tid := source.Value().Identity(), target.Value().Identity()
		adjacency[sid] = append(adjacency[sid], tid)
	}

	var order []pattern.Pattern[pattern.Subject]
	ok := true

	var visit func(id string)
	visit = func(id string) {
		if !ok || color[id] == black {
			return
		}
		if color[id] == gray {
			ok = false
			return
		}
		color[id] = gray
		for _, next := range adjacency[id] {
			visit(next)
			if !ok {
				return
			}
		}
		color[id] = black
		order = append(order, byID[id])
	}

	for _, n := range q.QueryNodes() {
		if color[n.Value().Identity()] == white {
			visit(n.Value().Identity())
			if !ok {
				return nil, false
			}
		}
	}

	reversed := make([]pattern.Pattern[pattern.Subject], len(order))
	for i, p := range order {
		reversed[len(order)-1-i] = p
	}
	return reversed, true
}

// HasCycle reports whether TopologicalSort fails.
func HasCycle(q graphquery.GraphQuery) bool {
	_, ok := TopologicalSort(q)
	return !ok
}
