// Package graphview implements GraphView and the transform pipeline
// (spec.md §3.8, §4.7): a snapshot GraphQuery paired with a classified
// element list, plus map_graph, filter_graph, fold_graph,
// map_with_context (snapshot semantics), unfold_graph, para_graph, and
// para_graph_fixed. Grounded on the teacher's internal/vgraph/engine.go
// and differ.go (snapshot-then-patch shape: a query captured once, a
// batch of transforms applied against that fixed snapshot) and on the
// iterate-to-fixpoint DAG evaluator pattern seen elsewhere in the
// examples pack for para_graph_fixed.
package graphview

import (
	"github.com/relateby/patterncore/pkg/graphquery"
	"github.com/relateby/patterncore/pkg/pattern"
	"github.com/relateby/patterncore/pkg/patterngraph"
	"github.com/relateby/patterncore/pkg/reconcile"
)

// GraphView pairs a snapshot GraphQuery with a classified element list
// (spec.md §3.8). Transforms consume and produce GraphViews; only
// Materialize converts back to a PatternGraph.
type GraphView[Extra any] struct {
	Query    graphquery.GraphQuery
	Elements []patterngraph.ClassifiedElement[Extra]
}

// New returns a GraphView over the given snapshot query and elements.
func New[Extra any](query graphquery.GraphQuery, elements []patterngraph.ClassifiedElement[Extra]) GraphView[Extra] {
	return GraphView[Extra]{Query: query, Elements: elements}
}

// FromPatternGraph builds the canonical view over every classified
// element of g, in topo_shape_sort order, with g's own GraphQuery as the
// snapshot.
func FromPatternGraph[Extra any](g *patterngraph.PatternGraph[Extra]) GraphView[Extra] {
	return GraphView[Extra]{
		Query:    graphquery.FromPatternGraph(g),
		Elements: g.TopoSort(),
	}
}

// Materialize consumes the view, insert-by-insert, using the same
// classifier and policy semantics as PatternGraph.FromPatterns (spec.md
// §4.3, §4.7).
func Materialize[Extra any](classifier patterngraph.Classifier[Extra], policy reconcile.Policy, view GraphView[Extra]) *patterngraph.PatternGraph[Extra] {
	patterns := make([]pattern.Pattern[pattern.Subject], len(view.Elements))
	for i, e := range view.Elements {
		patterns[i] = e.Pattern
	}
	return patterngraph.FromPatterns(patterns, classifier, policy)
}

// Stats summarizes per-class element counts over a view (supplemented —
// SPEC_FULL.md, the view-layer counterpart of PatternGraph.Stats()).
type Stats struct {
	Nodes         int
	Relationships int
	Walks         int
	Annotations   int
	Others        int
}

// ComputeStats derives Stats from view without mutating it.
func ComputeStats[Extra any](view GraphView[Extra]) Stats {
	var s Stats
	for _, e := range view.Elements {
		switch e.Class {
		case patterngraph.ClassNode:
			s.Nodes++
		case patterngraph.ClassRelationship:
			s.Relationships++
		case patterngraph.ClassWalk:
			s.Walks++
		case patterngraph.ClassAnnotation:
			s.Annotations++
		default:
			s.Others++
		}
	}
	return s
}
