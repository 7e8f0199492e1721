package patterngraph

import (
	"testing"

	"github.com/relateby/patterncore/pkg/pattern"
)

func elem(class GraphClass, p pattern.Pattern[pattern.Subject]) ClassifiedElement[struct{}] {
	return ClassifiedElement[struct{}]{Class: class, Pattern: p}
}

func TestTopoShapeSortFixedBucketPriority(t *testing.T) {
	n := elem(ClassNode, node("n1"))
	r := elem(ClassRelationship, rel("r1", "n1", "n2"))
	ann := elem(ClassAnnotation, pattern.New(subj("ann1"), []pattern.Pattern[pattern.Subject]{node("n1")}))
	other := elem(ClassOther, pattern.New(subj("o1"), []pattern.Pattern[pattern.Subject]{node("a"), node("b"), node("c")}))

	sorted := TopoShapeSort([]ClassifiedElement[struct{}]{other, ann, r, n})
	wantOrder := []GraphClass{ClassNode, ClassRelationship, ClassAnnotation, ClassOther}
	if len(sorted) != 4 {
		t.Fatalf("len(sorted) = %d, want 4", len(sorted))
	}
	for i, want := range wantOrder {
		if sorted[i].Class != want {
			t.Fatalf("position %d: class = %v, want %v (full order: %v)", i, sorted[i].Class, want, classesOf(sorted))
		}
	}
}

func classesOf(es []ClassifiedElement[struct{}]) []GraphClass {
	out := make([]GraphClass, len(es))
	for i, e := range es {
		out[i] = e.Class
	}
	return out
}

func TestTopoShapeSortKahnOrdersAnnotationDependencies(t *testing.T) {
	// ann2 contains ann1 as its element -> ann1 must come before ann2.
	ann1 := pattern.New(subj("ann1"), []pattern.Pattern[pattern.Subject]{node("n1")})
	ann2 := pattern.New(subj("ann2"), []pattern.Pattern[pattern.Subject]{ann1})

	sorted := TopoShapeSort([]ClassifiedElement[struct{}]{
		elem(ClassAnnotation, ann2),
		elem(ClassAnnotation, ann1),
	})

	if sorted[0].Pattern.Value().Identity() != "ann1" {
		t.Errorf("ann1 (dependency) must be ordered before ann2, got order %v",
			[]string{sorted[0].Pattern.Value().Identity(), sorted[1].Pattern.Value().Identity()})
	}
}

func TestTopoShapeSortHandlesCycleWithoutError(t *testing.T) {
	// Two annotations whose elements reference each other by identity
	// (structurally: ann1's element *is* a copy of ann2 and vice versa).
	ann2Stub := pattern.New(subj("ann2"), nil)
	ann1Stub := pattern.New(subj("ann1"), nil)
	ann1 := pattern.New(subj("ann1"), []pattern.Pattern[pattern.Subject]{ann2Stub})
	ann2 := pattern.New(subj("ann2"), []pattern.Pattern[pattern.Subject]{ann1Stub})

	sorted := TopoShapeSort([]ClassifiedElement[struct{}]{
		elem(ClassAnnotation, ann1),
		elem(ClassAnnotation, ann2),
	})

	if len(sorted) != 2 {
		t.Fatalf("cyclic bucket must still return all elements, got %d", len(sorted))
	}
}

func TestPatternGraphTopoSortOrdersBucketsThenAnnotations(t *testing.T) {
	classifier := CanonicalClassifier()
	a := node("a")
	b := node("b")
	r := rel("r1", "a", "b")
	ann := pattern.New(subj("ann1"), []pattern.Pattern[pattern.Subject]{r})

	g := FromPatterns([]pattern.Pattern[pattern.Subject]{ann, r, a, b}, classifier, defaultPolicyForTest())
	sorted := g.TopoSort()

	if sorted[0].Class != ClassNode {
		t.Fatalf("first element class = %v, want ClassNode", sorted[0].Class)
	}
	lastClass := sorted[len(sorted)-1].Class
	if lastClass != ClassAnnotation {
		t.Fatalf("last element class = %v, want ClassAnnotation", lastClass)
	}
}
