package graphquery

import (
	"github.com/relateby/patterncore/pkg/pattern"
	"github.com/relateby/patterncore/pkg/patterngraph"
)

// FromPatternGraph wires each of the nine closures to the corresponding
// bucket operation of g (spec.md §4.5). query_containers scans
// relationships, walks, annotations, and others for direct containment —
// membership tests use identity equality, matching
// internal/analyzer/relationships.go's direct-dependency scan in the
// teacher, generalized from file-level edges to any bucket.
func FromPatternGraph[Extra any](g *patterngraph.PatternGraph[Extra]) GraphQuery {
	nodeIndex := make(map[string]pattern.Pattern[pattern.Subject])
	for _, n := range g.Nodes() {
		nodeIndex[n.Value().Identity()] = n
	}
	relIndex := make(map[string]pattern.Pattern[pattern.Subject])
	for _, r := range g.Relationships() {
		relIndex[r.Value().Identity()] = r
	}

	incidentOf := func(n pattern.Pattern[pattern.Subject]) []pattern.Pattern[pattern.Subject] {
		id := n.Value().Identity()
		var out []pattern.Pattern[pattern.Subject]
		for _, r := range g.Relationships() {
			source, target, ok := patterngraph.Endpoints(r)
			if !ok {
				continue
			}
			if source.Value().Identity() == id || target.Value().Identity() == id {
				out = append(out, r)
			}
		}
		return out
	}

	return GraphQuery{
		QueryNodes:         func() []pattern.Pattern[pattern.Subject] { return g.Nodes() },
		QueryRelationships: func() []pattern.Pattern[pattern.Subject] { return g.Relationships() },
		QueryIncidentRels:  incidentOf,
		QuerySource: func(r pattern.Pattern[pattern.Subject]) (pattern.Pattern[pattern.Subject], bool) {
			source, _, ok := patterngraph.Endpoints(r)
			return source, ok
		},
		QueryTarget: func(r pattern.Pattern[pattern.Subject]) (pattern.Pattern[pattern.Subject], bool) {
			_, target, ok := patterngraph.Endpoints(r)
			return target, ok
		},
		QueryDegree: func(n pattern.Pattern[pattern.Subject]) int { return len(incidentOf(n)) },
		QueryNodeByID: func(id string) (pattern.Pattern[pattern.Subject], bool) {
			p, ok := nodeIndex[id]
			return p, ok
		},
		QueryRelationshipByID: func(id string) (pattern.Pattern[pattern.Subject], bool) {
			p, ok := relIndex[id]
			return p, ok
		},
		QueryContainers: func(p pattern.Pattern[pattern.Subject]) []pattern.Pattern[pattern.Subject] {
			id := p.Value().Identity()
			var out []pattern.Pattern[pattern.Subject]
			scan := func(candidates []pattern.Pattern[pattern.Subject]) {
				for _, c := range candidates {
					for _, sub := range c.Elements() {
						if sub.Value().Identity() == id {
							out = append(out, c)
							break
						}
					}
				}
			}
			scan(g.Relationships())
			scan(g.Walks())
			scan(g.Annotations())
			scan(g.Others())
			return out
		},
	}
}
