// Package graphquery implements GraphQuery (spec.md §3.6, §3.7, §4.5): a
// struct-of-closures that decouples graph algorithms from the backing
// store, plus the frame and memoization combinators. Algorithms in
// pkg/graphalgo never look inside a PatternGraph directly — they operate
// purely against the nine closures.
package graphquery

import (
	"math"

	"github.com/relateby/patterncore/pkg/pattern"
)

// GraphQuery is the struct-of-closures spec.md §3.6 specifies: nine
// independently-shareable function values. A Go func value captures its
// environment by reference the same way the spec's reference-counted
// closures do, so cloning a GraphQuery (a plain struct copy) is already
// "increment counts only, no backing data copied" — no explicit refcount
// bookkeeping is needed in this language.
//
// query_neighbors is deliberately absent (spec.md §3.6, §9): traversal
// direction is a call-site parameter to TraversalWeight, not a fixed
// graph-query field.
type GraphQuery struct {
	QueryNodes         func() []pattern.Pattern[pattern.Subject]
	QueryRelationships func() []pattern.Pattern[pattern.Subject]
	QueryIncidentRels  func(n pattern.Pattern[pattern.Subject]) []pattern.Pattern[pattern.Subject]
	QuerySource        func(r pattern.Pattern[pattern.Subject]) (pattern.Pattern[pattern.Subject], bool)
	QueryTarget        func(r pattern.Pattern[pattern.Subject]) (pattern.Pattern[pattern.Subject], bool)
	QueryDegree        func(n pattern.Pattern[pattern.Subject]) int
	QueryNodeByID      func(id string) (pattern.Pattern[pattern.Subject], bool)
	QueryRelationshipByID func(id string) (pattern.Pattern[pattern.Subject], bool)
	QueryContainers    func(p pattern.Pattern[pattern.Subject]) []pattern.Pattern[pattern.Subject]
}

// TraversalDirection discriminates the two directions a relationship can
// be walked (spec.md §3.7).
type TraversalDirection int

const (
	Forward TraversalDirection = iota
	Backward
)

// TraversalWeight maps a relationship and a direction to a non-negative
// finite cost, or math.Inf(1) when impassable in that direction. Negative
// values are a precondition violation (spec.md §3.7, §7.3): behavior is
// unspecified if supplied.
type TraversalWeight func(r pattern.Pattern[pattern.Subject], dir TraversalDirection) float64

// Undirected returns 1.0 unconditionally: every relationship is
// traversable in both directions at unit cost.
func Undirected() TraversalWeight {
	return func(pattern.Pattern[pattern.Subject], TraversalDirection) float64 { return 1.0 }
}

// Directed returns 1.0 on Forward, +Inf on Backward: relationships are
// walked only source-to-target.
func Directed() TraversalWeight {
	return func(_ pattern.Pattern[pattern.Subject], dir TraversalDirection) float64 {
		if dir == Forward {
			return 1.0
		}
		return math.Inf(1)
	}
}

// DirectedReverse is the symmetric dual of Directed: relationships are
// walked only target-to-source.
func DirectedReverse() TraversalWeight {
	return func(_ pattern.Pattern[pattern.Subject], dir TraversalDirection) float64 {
		if dir == Backward {
			return 1.0
		}
		return math.Inf(1)
	}
}

// Endpoints returns the (source, target) of a relationship pattern as
// resolved through the query, i.e. q.QuerySource(r), q.QueryTarget(r).
func Endpoints(q GraphQuery, r pattern.Pattern[pattern.Subject]) (source, target pattern.Pattern[pattern.Subject], ok bool) {
	s, sok := q.QuerySource(r)
	t, tok := q.QueryTarget(r)
	return s, t, sok && tok
}
