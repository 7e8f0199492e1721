package reconcile

import (
	"testing"

	"github.com/relateby/patterncore/pkg/pattern"
)

func nodeA1() pattern.Pattern[pattern.Subject] {
	return pattern.Point(pattern.NewSubject("a", []string{"X"}, map[string]pattern.Value{"k": pattern.IntValue(1)}))
}

func nodeA2() pattern.Pattern[pattern.Subject] {
	return pattern.Point(pattern.NewSubject("a", []string{"Y"}, map[string]pattern.Value{"k": pattern.IntValue(2)}))
}

func TestReconcileLastWriteWins(t *testing.T) {
	result, outcome := Reconcile(nodeA1(), nodeA2(), NewLastWriteWins())
	if outcome != OutcomeReplaced {
		t.Fatalf("outcome = %v, want OutcomeReplaced", outcome)
	}
	if !result.Value().HasLabel("Y") || result.Value().HasLabel("X") {
		t.Errorf("LastWriteWins should keep the incoming subject, got labels %v", result.Value().Labels())
	}
}

func TestReconcileFirstWriteWins(t *testing.T) {
	result, outcome := Reconcile(nodeA1(), nodeA2(), NewFirstWriteWins())
	if outcome != OutcomeKeptExisting {
		t.Fatalf("outcome = %v, want OutcomeKeptExisting", outcome)
	}
	if !result.Value().HasLabel("X") {
		t.Errorf("FirstWriteWins should keep the existing subject, got labels %v", result.Value().Labels())
	}
}

func TestReconcileStrictRecordsConflictWithoutMerging(t *testing.T) {
	result, outcome := Reconcile(nodeA1(), nodeA2(), NewStrict())
	if outcome != OutcomeConflict {
		t.Fatalf("outcome = %v, want OutcomeConflict", outcome)
	}
	if !result.Value().HasLabel("X") {
		t.Error("Strict must keep the existing (first) subject as the stored value")
	}
}

func TestReconcileMergeKeyWiseRightWinsProperties(t *testing.T) {
	strategy := MergeStrategy{
		Elements:   ElementUnionByIdentity,
		Labels:     pattern.LabelUnion,
		Properties: pattern.PropertyMerge,
	}
	result, outcome := Reconcile(nodeA1(), nodeA2(), NewMerge(strategy))
	if outcome != OutcomeMerged {
		t.Fatalf("outcome = %v, want OutcomeMerged", outcome)
	}
	if result.Value().Identity() != "a" {
		t.Errorf("merge must not change identity, got %q", result.Value().Identity())
	}
	if !result.Value().HasLabel("X") || !result.Value().HasLabel("Y") {
		t.Errorf("LabelUnion merge should carry both labels, got %v", result.Value().Labels())
	}
	k, _ := result.Value().Property("k")
	if i, _ := k.AsInt(); i != 2 {
		t.Errorf("PropertyMerge should be right-wins, got %d", i)
	}
}

func TestMergeElementsUnionByIdentityPreservesFirstAppearance(t *testing.T) {
	e1 := pattern.Point(pattern.NewSubject("e1", nil, nil))
	e2 := pattern.Point(pattern.NewSubject("e2", nil, nil))
	e1dup := pattern.Point(pattern.NewSubject("e1", []string{"dup"}, nil))

	a := pattern.New(pattern.NewSubject("root", nil, nil), []pattern.Pattern[pattern.Subject]{e1, e2})
	b := pattern.New(pattern.NewSubject("root", nil, nil), []pattern.Pattern[pattern.Subject]{e1dup})

	merged := mergePatterns(a, b, MergeStrategy{Elements: ElementUnionByIdentity})
	elems := merged.Elements()
	if len(elems) != 2 {
		t.Fatalf("union by identity should dedupe to 2 elements, got %d", len(elems))
	}
	if elems[0].Value().HasLabel("dup") {
		t.Error("union by identity should preserve the first-seen occurrence, not the later duplicate")
	}
}

func TestMergeElementsAppendConcatenates(t *testing.T) {
	e1 := pattern.Point(pattern.NewSubject("e1", nil, nil))
	e2 := pattern.Point(pattern.NewSubject("e2", nil, nil))
	a := pattern.New(pattern.NewSubject("root", nil, nil), []pattern.Pattern[pattern.Subject]{e1})
	b := pattern.New(pattern.NewSubject("root", nil, nil), []pattern.Pattern[pattern.Subject]{e2})

	merged := mergePatterns(a, b, MergeStrategy{Elements: ElementAppend})
	if len(merged.Elements()) != 2 {
		t.Fatalf("append should concatenate to 2 elements, got %d", len(merged.Elements()))
	}
}
