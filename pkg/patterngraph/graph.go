package patterngraph

import (
	"sort"

	"github.com/relateby/patterncore/pkg/pattern"
	"github.com/relateby/patterncore/pkg/reconcile"
)

// PatternGraph holds four typed buckets keyed by identity — nodes,
// relationships, walks, annotations — plus an others bucket and a conflict
// map (spec.md §3.4). It is never mutated in place by algorithms, queries,
// or transforms; New (empty), FromPatterns and Merge are its only
// constructors.
type PatternGraph[Extra any] struct {
	nodes         map[string]pattern.Pattern[pattern.Subject]
	relationships map[string]pattern.Pattern[pattern.Subject]
	walks         map[string]pattern.Pattern[pattern.Subject]
	annotations   map[string]pattern.Pattern[pattern.Subject]
	others        map[string]pattern.Pattern[pattern.Subject]
	otherExtra    map[string]Extra
	conflicts     map[string][]pattern.Pattern[pattern.Subject]
}

// New returns an empty PatternGraph.
func New[Extra any]() *PatternGraph[Extra] {
	return &PatternGraph[Extra]{
		nodes:         make(map[string]pattern.Pattern[pattern.Subject]),
		relationships: make(map[string]pattern.Pattern[pattern.Subject]),
		walks:         make(map[string]pattern.Pattern[pattern.Subject]),
		annotations:   make(map[string]pattern.Pattern[pattern.Subject]),
		others:        make(map[string]pattern.Pattern[pattern.Subject]),
		otherExtra:    make(map[string]Extra),
		conflicts:     make(map[string][]pattern.Pattern[pattern.Subject]),
	}
}

// FromPatterns classifies every pattern with classifier and inserts it into
// the matching typed bucket under policy (spec.md §4.3).
func FromPatterns[Extra any](patterns []pattern.Pattern[pattern.Subject], classifier Classifier[Extra], policy reconcile.Policy) *PatternGraph[Extra] {
	g := New[Extra]()
	for _, p := range patterns {
		g.insert(p, classifier, policy)
	}
	return g
}

func (g *PatternGraph[Extra]) insert(p pattern.Pattern[pattern.Subject], classifier Classifier[Extra], policy reconcile.Policy) {
	classification := classifier.Classify(p)
	bucket := g.bucketFor(classification.Class)
	id := p.Value().Identity()

	existing, exists := bucket[id]
	if !exists {
		bucket[id] = p
		if classification.Class == ClassOther {
			g.otherExtra[id] = classification.Extra
		}
		return
	}

	merged, outcome := reconcile.Reconcile(existing, p, policy)
	if outcome == reconcile.OutcomeConflict {
		g.conflicts[id] = append(g.conflicts[id], p)
		return
	}
	bucket[id] = merged
	if classification.Class == ClassOther {
		g.otherExtra[id] = classification.Extra
	}
}

func (g *PatternGraph[Extra]) bucketFor(c GraphClass) map[string]pattern.Pattern[pattern.Subject] {
	switch c {
	case ClassNode:
		return g.nodes
	case ClassRelationship:
		return g.relationships
	case ClassWalk:
		return g.walks
	case ClassAnnotation:
		return g.annotations
	default:
		return g.others
	}
}

// Merge combines two pattern graphs bucket by bucket under policy. The
// result's conflict map is the union of both inputs' conflicts plus any new
// conflicts discovered during the merge (spec.md §4.3).
func Merge[Extra any](a, b *PatternGraph[Extra], policy reconcile.Policy) *PatternGraph[Extra] {
	out := New[Extra]()
	mergeBucket(out.nodes, a.nodes, b.nodes, out.conflicts, policy)
	mergeBucket(out.relationships, a.relationships, b.relationships, out.conflicts, policy)
	mergeBucket(out.walks, a.walks, b.walks, out.conflicts, policy)
	mergeBucket(out.annotations, a.annotations, b.annotations, out.conflicts, policy)
	mergeBucket(out.others, a.others, b.others, out.conflicts, policy)

	for id, extra := range a.otherExtra {
		out.otherExtra[id] = extra
	}
	for id, extra := range b.otherExtra {
		out.otherExtra[id] = extra
	}

	for id, cs := range a.conflicts {
		out.conflicts[id] = append(out.conflicts[id], cs...)
	}
	for id, cs := range b.conflicts {
		out.conflicts[id] = append(out.conflicts[id], cs...)
	}
	return out
}

func mergeBucket(
	dst map[string]pattern.Pattern[pattern.Subject],
	a, b map[string]pattern.Pattern[pattern.Subject],
	conflicts map[string][]pattern.Pattern[pattern.Subject],
	policy reconcile.Policy,
) {
	for id, p := range a {
		dst[id] = p
	}
	for id, p := range b {
		existing, ok := dst[id]
		if !ok {
			dst[id] = p
			continue
		}
		merged, outcome := reconcile.Reconcile(existing, p, policy)
		if outcome == reconcile.OutcomeConflict {
			conflicts[id] = append(conflicts[id], p)
			continue
		}
		dst[id] = merged
	}
}

func sortedValues(m map[string]pattern.Pattern[pattern.Subject]) []pattern.Pattern[pattern.Subject] {
	out := make([]pattern.Pattern[pattern.Subject], 0, len(m))
	for _, p := range m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Value().Identity() < out[j].Value().Identity()
	})
	return out
}

// Nodes returns every Node-bucket pattern, identity-sorted for determinism.
func (g *PatternGraph[Extra]) Nodes() []pattern.Pattern[pattern.Subject] { return sortedValues(g.nodes) }

// Relationships returns every Relationship-bucket pattern, identity-sorted.
func (g *PatternGraph[Extra]) Relationships() []pattern.Pattern[pattern.Subject] {
	return sortedValues(g.relationships)
}

// Walks returns every Walk-bucket pattern, identity-sorted.
func (g *PatternGraph[Extra]) Walks() []pattern.Pattern[pattern.Subject] { return sortedValues(g.walks) }

// Annotations returns every Annotation-bucket pattern, identity-sorted.
func (g *PatternGraph[Extra]) Annotations() []pattern.Pattern[pattern.Subject] {
	return sortedValues(g.annotations)
}

// Others returns every Other-bucket pattern, identity-sorted.
func (g *PatternGraph[Extra]) Others() []pattern.Pattern[pattern.Subject] {
	return sortedValues(g.others)
}

// OtherExtra returns the Extra tag recorded for an Other-bucket identity.
func (g *PatternGraph[Extra]) OtherExtra(identity string) (Extra, bool) {
	e, ok := g.otherExtra[identity]
	return e, ok
}

// Conflicts returns the conflict map: identity -> patterns that collided
// under a Strict policy and were not merged (spec.md §3.4, populated only
// under Strict).
func (g *PatternGraph[Extra]) Conflicts() map[string][]pattern.Pattern[pattern.Subject] {
	out := make(map[string][]pattern.Pattern[pattern.Subject], len(g.conflicts))
	for id, cs := range g.conflicts {
		cp := make([]pattern.Pattern[pattern.Subject], len(cs))
		copy(cp, cs)
		out[id] = cp
	}
	return out
}

// Size is the total pattern count across all five buckets.
func (g *PatternGraph[Extra]) Size() int {
	return len(g.nodes) + len(g.relationships) + len(g.walks) + len(g.annotations) + len(g.others)
}

// Stats summarizes bucket sizes and conflict count (supplemented —
// SPEC_FULL.md, modeled on the teacher's GraphMetadata/RelationshipMetrics
// summary structs).
type Stats struct {
	Nodes         int
	Relationships int
	Walks         int
	Annotations   int
	Others        int
	Conflicts     int
}

// Stats computes a read-only summary of the graph; it never mutates the graph.
func (g *PatternGraph[Extra]) Stats() Stats {
	return Stats{
		Nodes:         len(g.nodes),
		Relationships: len(g.relationships),
		Walks:         len(g.walks),
		Annotations:   len(g.annotations),
		Others:        len(g.others),
		Conflicts:     len(g.conflicts),
	}
}

// TopoSort returns every pattern in the graph in topo_shape_sort order
// (spec.md §4.3, §4.7.1), exposed so a caller implementing para_graph
// itself (e.g. across an FFI boundary) does not need to re-derive the order.
func (g *PatternGraph[Extra]) TopoSort() []ClassifiedElement[Extra] {
	elements := make([]ClassifiedElement[Extra], 0, g.Size())
	for _, p := range g.Nodes() {
		elements = append(elements, ClassifiedElement[Extra]{Class: ClassNode, Pattern: p})
	}
	for _, p := range g.Relationships() {
		elements = append(elements, ClassifiedElement[Extra]{Class: ClassRelationship, Pattern: p})
	}
	for _, p := range g.Walks() {
		elements = append(elements, ClassifiedElement[Extra]{Class: ClassWalk, Pattern: p})
	}
	for _, p := range g.Annotations() {
		elements = append(elements, ClassifiedElement[Extra]{Class: ClassAnnotation, Pattern: p})
	}
	for _, p := range g.Others() {
		id := p.Value().Identity()
		elements = append(elements, ClassifiedElement[Extra]{Class: ClassOther, Extra: g.otherExtra[id], Pattern: p})
	}
	return TopoShapeSort(elements)
}
