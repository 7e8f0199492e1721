package graphalgo

import (
	"container/heap"

	"github.com/relateby/patterncore/pkg/graphquery"
	"github.com/relateby/patterncore/pkg/pattern"
)

// ShortestPath runs Dijkstra over non-negative weights (spec.md §4.6). If
// a == b by identity, returns [a]. If b is unreachable from a, returns
// (nil, false).
func ShortestPath(q graphquery.GraphQuery, w graphquery.TraversalWeight, a, b pattern.Pattern[pattern.Subject]) ([]pattern.Pattern[pattern.Subject], bool) {
	aid, bid := a.Value().Identity(), b.Value().Identity()
	if aid == bid {
		return []pattern.Pattern[pattern.Subject]{a}, true
	}

	dist := map[string]float64{aid: 0}
	prev := map[string]pattern.Pattern[pattern.Subject]{}
	byID := map[string]pattern.Pattern[pattern.Subject]{aid: a}

	pq := &priorityQueue{{id: aid, dist: 0}}
	heap.Init(pq)
	visited := map[string]bool{}

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(pqItem)
		if visited[cur.id] {
			continue
		}
		visited[cur.id] = true
		if cur.id == bid {
			return reconstructPath(byID, prev, aid, bid), true
		}

		node := byID[cur.id]
		for _, nb := range ReachableNeighbors(q, w, node) {
			nid := nb.Node.Value().Identity()
			if visited[nid] {
				continue
			}
			byID[nid] = nb.Node
			alt := dist[cur.id] + nb.Cost
			if existing, ok := dist[nid]; !ok || alt < existing {
				dist[nid] = alt
				prev[nid] = node
				heap.Push(pq, pqItem{id: nid, dist: alt})
			}
		}
	}
	return nil, false
}

func reconstructPath(byID map[string]pattern.Pattern[pattern.Subject], prev map[string]pattern.Pattern[pattern.Subject], aid, bid string) []pattern.Pattern[pattern.Subject] {
	var reversed []pattern.Pattern[pattern.Subject]
	cur := bid
	for cur != aid {
		reversed = append(reversed, byID[cur])
		p, ok := prev[cur]
		if !ok {
			break
		}
		cur = p.Value().Identity()
	}
	reversed = append(reversed, byID[aid])

	out := make([]pattern.Pattern[pattern.Subject], len(reversed))
	for i, p := range reversed {
		out[len(reversed)-1-i] = p
	}
	return out
}

// HasPath delegates to ShortestPath (spec.md §4.6).
func HasPath(q graphquery.GraphQuery, w graphquery.TraversalWeight, a, b pattern.Pattern[pattern.Subject]) bool {
	_, ok := ShortestPath(q, w, a, b)
	return ok
}

// AllPaths enumerates every simple (no repeated node) path from a to b via
// DFS; exponential worst case (spec.md §4.6).
func AllPaths(q graphquery.GraphQuery, w graphquery.TraversalWeight, a, b pattern.Pattern[pattern.Subject]) [][]pattern.Pattern[pattern.Subject] {
	bid := b.Value().Identity()
	var paths [][]pattern.Pattern[pattern.Subject]
	visited := map[string]bool{a.Value().Identity(): true}
	current := []pattern.Pattern[pattern.Subject]{a}

	var walk func(node pattern.Pattern[pattern.Subject])
	walk = func(node pattern.Pattern[pattern.Subject]) {
		if node.Value().Identity() == bid {
			found := make([]pattern.Pattern[pattern.Subject], len(current))
			copy(found, current)
			paths = append(paths, found)
			return
		}
		for _, nb := range ReachableNeighbors(q, w, node) {
			id := nb.Node.Value().Identity()
			if visited[id] {
				continue
			}
			visited[id] = true
			current = append(current, nb.Node)
			walk(nb.Node)
			current = current[:len(current)-1]
			visited[id] = false
		}
	}
	walk(a)
	return paths
}

type pqItem struct {
	id   string
	dist float64
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(pqItem))
}
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
