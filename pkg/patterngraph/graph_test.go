package patterngraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relateby/patterncore/pkg/pattern"
	"github.com/relateby/patterncore/pkg/reconcile"
)

func defaultPolicyForTest() reconcile.Policy {
	return reconcile.NewLastWriteWins()
}

func subjWithLabel(id, label string) pattern.Subject {
	return pattern.NewSubject(id, []string{label}, nil)
}

func TestFromPatternsBucketsByClass(t *testing.T) {
	classifier := CanonicalClassifier()
	a := node("a")
	b := node("b")
	r := rel("r1", "a", "b")
	ann := pattern.New(subj("ann1"), []pattern.Pattern[pattern.Subject]{node("a")})

	g := FromPatterns([]pattern.Pattern[pattern.Subject]{a, b, r, ann}, classifier, defaultPolicyForTest())

	assert.Len(t, g.Nodes(), 2)
	assert.Len(t, g.Relationships(), 1)
	assert.Len(t, g.Annotations(), 1)
	assert.Equal(t, 4, g.Size())
}

func TestFromPatternsLastWriteWinsOverwritesOnIdentityCollision(t *testing.T) {
	classifier := CanonicalClassifier()
	first := pattern.Point(subjWithLabel("a", "v1"))
	second := pattern.Point(subjWithLabel("a", "v2"))

	g := FromPatterns([]pattern.Pattern[pattern.Subject]{first, second}, classifier, reconcile.NewLastWriteWins())

	nodes := g.Nodes()
	require.Len(t, nodes, 1)
	assert.True(t, nodes[0].Value().HasLabel("v2"), "LastWriteWins should keep the incoming (second) value's label v2, got labels %v", nodes[0].Value().Labels())
	assert.Empty(t, g.Conflicts(), "LastWriteWins must not record conflicts")
}

func TestFromPatternsStrictRecordsConflict(t *testing.T) {
	classifier := CanonicalClassifier()
	first := pattern.Point(subjWithLabel("a", "v1"))
	second := pattern.Point(subjWithLabel("a", "v2"))

	g := FromPatterns([]pattern.Pattern[pattern.Subject]{first, second}, classifier, reconcile.NewStrict())

	nodes := g.Nodes()
	if len(nodes) != 1 {
		t.Fatalf("Nodes() len = %d, want 1", len(nodes))
	}
	if !nodes[0].Value().HasLabel("v1") {
		t.Errorf("Strict conflict must keep the existing (first) value stored, got labels %v", nodes[0].Value().Labels())
	}
	conflicts := g.Conflicts()
	if len(conflicts["a"]) != 1 {
		t.Fatalf("Conflicts()[\"a\"] len = %d, want 1", len(conflicts["a"]))
	}
	if !conflicts["a"][0].Value().HasLabel("v2") {
		t.Errorf("recorded conflict should be the rejected incoming value")
	}
}

func TestMergeCombinesBucketsAndConflicts(t *testing.T) {
	classifier := CanonicalClassifier()
	g1 := FromPatterns([]pattern.Pattern[pattern.Subject]{node("a")}, classifier, defaultPolicyForTest())
	g2 := FromPatterns([]pattern.Pattern[pattern.Subject]{node("b")}, classifier, defaultPolicyForTest())

	merged := Merge(g1, g2, defaultPolicyForTest())
	require.Equal(t, 2, merged.Size())

	gc1 := FromPatterns([]pattern.Pattern[pattern.Subject]{pattern.Point(subjWithLabel("x", "v1"))}, classifier, reconcile.NewStrict())
	gc2 := FromPatterns([]pattern.Pattern[pattern.Subject]{pattern.Point(subjWithLabel("x", "v2"))}, classifier, reconcile.NewStrict())
	mergedConflict := Merge(gc1, gc2, reconcile.NewStrict())
	assert.Len(t, mergedConflict.Conflicts()["x"], 1, "merge under Strict should record a new conflict for colliding identity x")
}

func TestStatsReflectsBucketSizes(t *testing.T) {
	classifier := CanonicalClassifier()
	g := FromPatterns([]pattern.Pattern[pattern.Subject]{node("a"), node("b"), rel("r1", "a", "b")}, classifier, defaultPolicyForTest())
	stats := g.Stats()
	if stats.Nodes != 2 || stats.Relationships != 1 {
		t.Errorf("Stats() = %+v, want Nodes=2 Relationships=1", stats)
	}
}

func TestAccessorsAreIdentitySortedDeterministic(t *testing.T) {
	classifier := CanonicalClassifier()
	g := FromPatterns([]pattern.Pattern[pattern.Subject]{node("z"), node("a"), node("m")}, classifier, defaultPolicyForTest())
	nodes := g.Nodes()
	want := []string{"a", "m", "z"}
	for i, w := range want {
		if nodes[i].Value().Identity() != w {
			t.Fatalf("Nodes()[%d] = %s, want %s", i, nodes[i].Value().Identity(), w)
		}
	}
}
