// Package patterngraph implements the PatternGraph container and the
// GraphClassifier (spec.md §3.4, §3.5, §4.3, §4.4): typed buckets keyed by
// identity, populated from raw patterns via reconciliation, plus the
// shape-and-extra classification and the two-pass topo_shape_sort order
// (spec.md §4.7.1) shared with pkg/graphview.
//
// This package fixes the pattern value type to pattern.Subject — the
// "canonical value carrier" spec.md §3.2 names for subjects-of-record —
// rather than keeping patterngraph generic over an arbitrary V. The pattern
// algebra (pkg/pattern) stays fully generic; everything above it in this
// module (classification, graph queries, algorithms, transforms) operates
// on Pattern[Subject], matching how the teacher's own CodeGraph fixes its
// node/edge value types rather than leaving them generic (pkg/types/graph.go).
package patterngraph

import "github.com/relateby/patterncore/pkg/pattern"

// GraphClass is the classifier's output: one of five shape classes.
type GraphClass int

const (
	ClassNode GraphClass = iota
	ClassRelationship
	ClassWalk
	ClassAnnotation
	ClassOther
)

func (c GraphClass) String() string {
	switch c {
	case ClassNode:
		return "Node"
	case ClassRelationship:
		return "Relationship"
	case ClassWalk:
		return "Walk"
	case ClassAnnotation:
		return "Annotation"
	case ClassOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Classification is a classifier's verdict for a single pattern: its shape
// class, plus an Extra tag meaningful only when Class == ClassOther.
type Classification[Extra any] struct {
	Class GraphClass
	Extra Extra
}

// Classifier is a pure, pluggable classification function (spec.md §3.5):
// classifying a pattern requires no graph context, only structural
// inspection of the pattern itself (recursively, for its elements).
type Classifier[Extra any] struct {
	// ExtraFn tags a pattern that falls through to ClassOther. It is never
	// called for the other four classes.
	ExtraFn func(pattern.Pattern[pattern.Subject]) Extra
}

// CanonicalClassifier is the classifier bindings must use unless the caller
// explicitly supplies an alternative (spec.md §6): Extra = struct{}{}.
func CanonicalClassifier() Classifier[struct{}] {
	return Classifier[struct{}]{
		ExtraFn: func(pattern.Pattern[pattern.Subject]) struct{} { return struct{}{} },
	}
}

// Classify applies the five classification rules in order (spec.md §4.4).
func (c Classifier[Extra]) Classify(p pattern.Pattern[pattern.Subject]) Classification[Extra] {
	elements := p.Elements()

	if len(elements) == 0 {
		return Classification[Extra]{Class: ClassNode}
	}
	if len(elements) == 2 && c.classOf(elements[0]) == ClassNode && c.classOf(elements[1]) == ClassNode {
		return Classification[Extra]{Class: ClassRelationship}
	}
	if len(elements) >= 2 && c.allRelationships(elements) && chains(elements) {
		return Classification[Extra]{Class: ClassWalk}
	}
	if len(elements) == 1 {
		return Classification[Extra]{Class: ClassAnnotation}
	}
	return Classification[Extra]{Class: ClassOther, Extra: c.ExtraFn(p)}
}

func (c Classifier[Extra]) classOf(p pattern.Pattern[pattern.Subject]) GraphClass {
	return c.Classify(p).Class
}

func (c Classifier[Extra]) allRelationships(elements []pattern.Pattern[pattern.Subject]) bool {
	for _, e := range elements {
		if c.classOf(e) != ClassRelationship {
			return false
		}
	}
	return true
}

// chains reports whether a sequence of relationship patterns forms a walk:
// target(elements[i]) == source(elements[i+1]) by identity, for every i.
func chains(rels []pattern.Pattern[pattern.Subject]) bool {
	for i := 0; i < len(rels)-1; i++ {
		_, t, ok1 := Endpoints(rels[i])
		s, _, ok2 := Endpoints(rels[i+1])
		if !ok1 || !ok2 {
			return false
		}
		if t.Value().Identity() != s.Value().Identity() {
			return false
		}
	}
	return true
}

// Endpoints returns a relationship pattern's source and target — its two
// elements in order — or ok=false if p does not have exactly two elements.
// Source-then-target ordering is the structural invariant spec.md §3.1
// assigns to a relationship's element sequence.
func Endpoints(p pattern.Pattern[pattern.Subject]) (source, target pattern.Pattern[pattern.Subject], ok bool) {
	elements := p.Elements()
	if len(elements) != 2 {
		return pattern.Pattern[pattern.Subject]{}, pattern.Pattern[pattern.Subject]{}, false
	}
	return elements[0], elements[1], true
}
