package graphalgo

import (
	"sort"

	"github.com/relateby/patterncore/pkg/graphquery"
	"github.com/relateby/patterncore/pkg/pattern"
	"github.com/relateby/patterncore/pkg/patterngraph"
)

// QueryAnnotationsOf filters q.QueryContainers(e) to those the classifier
// tags Annotation (spec.md §4.6).
func QueryAnnotationsOf[Extra any](classifier patterngraph.Classifier[Extra], q graphquery.GraphQuery, e pattern.Pattern[pattern.Subject]) []pattern.Pattern[pattern.Subject] {
	return filterByClass(classifier, q.QueryContainers(e), patterngraph.ClassAnnotation)
}

// QueryWalksContaining filters q.QueryContainers(e) to those the
// classifier tags Walk (spec.md §4.6).
func QueryWalksContaining[Extra any](classifier patterngraph.Classifier[Extra], q graphquery.GraphQuery, e pattern.Pattern[pattern.Subject]) []pattern.Pattern[pattern.Subject] {
	return filterByClass(classifier, q.QueryContainers(e), patterngraph.ClassWalk)
}

func filterByClass[Extra any](classifier patterngraph.Classifier[Extra], candidates []pattern.Pattern[pattern.Subject], class patterngraph.GraphClass) []pattern.Pattern[pattern.Subject] {
	var out []pattern.Pattern[pattern.Subject]
	for _, c := range candidates {
		if classifier.Classify(c).Class == class {
			out = append(out, c)
		}
	}
	return out
}

// QueryCoMembers returns container.Elements() minus e, by identity
// equality (spec.md §4.6).
func QueryCoMembers(e, container pattern.Pattern[pattern.Subject]) []pattern.Pattern[pattern.Subject] {
	id := e.Value().Identity()
	var out []pattern.Pattern[pattern.Subject]
	for _, m := range container.Elements() {
		if m.Value().Identity() != id {
			out = append(out, m)
		}
	}
	return out
}

// Hotspot pairs a node with its degree-derived activity score (supplemented
// — SPEC_FULL.md, adapted from internal/analyzer/relationships.go's
// FileHotspot detection, generalized from file-level edges to any
// GraphQuery).
type Hotspot struct {
	Node  pattern.Pattern[pattern.Subject]
	Score int
}

// Hotspots ranks nodes by degree, highest first; ties broken by identity
// for determinism.
func Hotspots(q graphquery.GraphQuery) []Hotspot {
	nodes := q.QueryNodes()
	out := make([]Hotspot, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Hotspot{Node: n, Score: q.QueryDegree(n)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Node.Value().Identity() < out[j].Node.Value().Identity()
	})
	return out
}

// IsolatedNodes returns every node with zero incident relationships
// (supplemented — SPEC_FULL.md, adapted from
// internal/analyzer/relationships.go's IsolatedFiles detection).
func IsolatedNodes(q graphquery.GraphQuery) []pattern.Pattern[pattern.Subject] {
	var out []pattern.Pattern[pattern.Subject]
	for _, n := range q.QueryNodes() {
		if q.QueryDegree(n) == 0 {
			out = append(out, n)
		}
	}
	return out
}
