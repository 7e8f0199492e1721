package graphalgo

import (
	"math"
	"sort"

	"github.com/relateby/patterncore/pkg/graphquery"
	"github.com/relateby/patterncore/pkg/pattern"
)

// MinimumSpanningTree runs Kruskal's algorithm with a path-compressed
// union-find. Edge cost is min(w(r, Forward), w(r, Backward)); edges with
// both directions infinite are excluded. Returns the set of nodes spanned
// by the MST (spec.md §4.6).
func MinimumSpanningTree(q graphquery.GraphQuery, w graphquery.TraversalWeight) []pattern.Pattern[pattern.Subject] {
	type edgeCandidate struct {
		source, target string
		cost           float64
	}

	uf := newUnionFind()
	for _, n := range q.QueryNodes() {
		uf.add(n.Value().Identity())
	}

	var candidates []edgeCandidate
	for _, r := range q.QueryRelationships() {
		source, sok := q.QuerySource(r)
		target, tok := q.QueryTarget(r)
		if !sok || !tok {
			continue
		}
		forward := w(r, graphquery.Forward)
		backward := w(r, graphquery.Backward)
		cost := math.Min(forward, backward)
		if math.IsInf(cost, 1) {
			continue
		}
		candidates = append(candidates, edgeCandidate{source: source.Value().Identity(), target: target.Value().Identity(), cost: cost})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].cost != candidates[j].cost {
			return candidates[i].cost < candidates[j].cost
		}
		if candidates[i].source != candidates[j].source {
			return candidates[i].source < candidates[j].source
		}
		return candidates[i].target < candidates[j].target
	})

	spanned := map[string]bool{}
	for _, c := range candidates {
		if uf.find(c.source) == uf.find(c.target) {
			continue
		}
		uf.union(c.source, c.target)
		spanned[c.source] = true
		spanned[c.target] = true
	}

	var out []pattern.Pattern[pattern.Subject]
	for _, n := range q.QueryNodes() {
		if spanned[n.Value().Identity()] {
			out = append(out, n)
		}
	}
	return out
}

type unionFind struct {
	parent map[string]string
	rank   map[string]int
}

func newUnionFind() *unionFind {
	return &unionFind{parent: map[string]string{}, rank: map[string]int{}}
}

func (u *unionFind) add(id string) {
	if _, ok := u.parent[id]; !ok {
		u.parent[id] = id
		u.rank[id] = 0
	}
}

func (u *unionFind) find(id string) string {
	root := id
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[id] != root {
		u.parent[id], id = root, u.parent[id]
	}
	return root
}

func (u *unionFind) union(a, b string) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
}
