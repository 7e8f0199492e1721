package graphview

import (
	"github.com/relateby/patterncore/pkg/graphquery"
	"github.com/relateby/patterncore/pkg/pattern"
	"github.com/relateby/patterncore/pkg/patterngraph"
)

// ClassMappers is map_graph's per-class transformation record (spec.md
// §4.7): one callable per shape class, plus Other which also receives and
// may rewrite the Extra tag. A nil field behaves as the identity.
type ClassMappers[Extra any] struct {
	Node         func(p pattern.Pattern[pattern.Subject]) pattern.Pattern[pattern.Subject]
	Relationship func(p pattern.Pattern[pattern.Subject]) pattern.Pattern[pattern.Subject]
	Walk         func(p pattern.Pattern[pattern.Subject]) pattern.Pattern[pattern.Subject]
	Annotation   func(p pattern.Pattern[pattern.Subject]) pattern.Pattern[pattern.Subject]
	Other        func(extra Extra, p pattern.Pattern[pattern.Subject]) (pattern.Pattern[pattern.Subject], Extra)
}

// MapGraph applies mappers pointwise to every classified element,
// according to its class, with an identity default for any unspecified
// slot (spec.md §4.7).
func MapGraph[Extra any](mappers ClassMappers[Extra], view GraphView[Extra]) GraphView[Extra] {
	out := make([]patterngraph.ClassifiedElement[Extra], len(view.Elements))
	for i, e := range view.Elements {
		switch e.Class {
		case patterngraph.ClassNode:
			out[i] = applyOrIdentity(e, mappers.Node)
		case patterngraph.ClassRelationship:
			out[i] = applyOrIdentity(e, mappers.Relationship)
		case patterngraph.ClassWalk:
			out[i] = applyOrIdentity(e, mappers.Walk)
		case patterngraph.ClassAnnotation:
			out[i] = applyOrIdentity(e, mappers.Annotation)
		default:
			if mappers.Other == nil {
				out[i] = e
				continue
			}
			newP, newExtra := mappers.Other(e.Extra, e.Pattern)
			out[i] = patterngraph.ClassifiedElement[Extra]{Class: e.Class, Extra: newExtra, Pattern: newP}
		}
	}
	return GraphView[Extra]{Query: view.Query, Elements: out}
}

func applyOrIdentity[Extra any](e patterngraph.ClassifiedElement[Extra], f func(pattern.Pattern[pattern.Subject]) pattern.Pattern[pattern.Subject]) patterngraph.ClassifiedElement[Extra] {
	if f == nil {
		return e
	}
	return patterngraph.ClassifiedElement[Extra]{Class: e.Class, Extra: e.Extra, Pattern: f(e.Pattern)}
}

// MapAllGraph applies f uniformly to every classified element irrespective
// of class (spec.md §4.7).
func MapAllGraph[Extra any](f func(p pattern.Pattern[pattern.Subject]) pattern.Pattern[pattern.Subject], view GraphView[Extra]) GraphView[Extra] {
	out := make([]patterngraph.ClassifiedElement[Extra], len(view.Elements))
	for i, e := range view.Elements {
		out[i] = patterngraph.ClassifiedElement[Extra]{Class: e.Class, Extra: e.Extra, Pattern: f(e.Pattern)}
	}
	return GraphView[Extra]{Query: view.Query, Elements: out}
}

// MapWithContext applies f(query_snapshot, p) to every element, where
// query_snapshot is the view's GraphQuery captured before any of these
// invocations begins (spec.md §4.7). Every invocation sees the same
// snapshot: later elements' transformed values are not visible to earlier
// or sibling invocations within this call.
func MapWithContext[Extra any](f func(query graphquery.GraphQuery, p pattern.Pattern[pattern.Subject]) pattern.Pattern[pattern.Subject], view GraphView[Extra]) GraphView[Extra] {
	snapshot := view.Query
	out := make([]patterngraph.ClassifiedElement[Extra], len(view.Elements))
	for i, e := range view.Elements {
		out[i] = patterngraph.ClassifiedElement[Extra]{Class: e.Class, Extra: e.Extra, Pattern: f(snapshot, e.Pattern)}
	}
	return GraphView[Extra]{Query: snapshot, Elements: out}
}
