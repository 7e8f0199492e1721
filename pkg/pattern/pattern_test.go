package pattern

import "testing"

func intEq(a, b int) bool { return a == b }

func buildDeep(depth int) Pattern[int] {
	p := Point(depth)
	for i := depth - 1; i >= 0; i-- {
		p = New(i, []Pattern[int]{p})
	}
	return p
}

func TestPointAtomicEquivalence(t *testing.T) {
	a := Point(5)
	b := New(5, nil)
	if !a.Matches(b, intEq) {
		t.Error("Point(v) and New(v, nil) must be structurally identical")
	}
	if !a.IsAtomic() || !b.IsAtomic() {
		t.Error("zero-element patterns must report IsAtomic")
	}
}

func TestSizeMatchesFoldCount(t *testing.T) {
	p := New(1, []Pattern[int]{Point(2), New(3, []Pattern[int]{Point(4), Point(5)})})
	got := Fold(p, 0, func(acc int, _ int) int { return acc + 1 })
	if got != p.Size() {
		t.Errorf("fold count = %d, want Size() = %d", got, p.Size())
	}
	if p.Size() != 5 {
		t.Errorf("Size() = %d, want 5", p.Size())
	}
}

func TestValuesLengthMatchesSize(t *testing.T) {
	p := New(1, []Pattern[int]{Point(2), Point(3)})
	if len(p.Values()) != p.Size() {
		t.Errorf("len(Values()) = %d, want Size() = %d", len(p.Values()), p.Size())
	}
}

func TestFoldPreOrderLeftToRight(t *testing.T) {
	p := New(1, []Pattern[int]{
		New(2, []Pattern[int]{Point(3), Point(4)}),
		Point(5),
	})
	order := Fold(p, []int{}, func(acc []int, v int) []int { return append(acc, v) })
	want := []int{1, 2, 3, 4, 5}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestMatchesReflexiveSymmetric(t *testing.T) {
	p := New(1, []Pattern[int]{Point(2), Point(3)})
	q := New(1, []Pattern[int]{Point(2), Point(3)})
	r := New(1, []Pattern[int]{Point(2), Point(9)})

	if !p.Matches(p, intEq) {
		t.Error("matches must be reflexive")
	}
	if p.Matches(q, intEq) != q.Matches(p, intEq) {
		t.Error("matches must be symmetric")
	}
	if !p.Matches(q, intEq) {
		t.Error("structurally identical patterns should match")
	}
	if p.Matches(r, intEq) {
		t.Error("structurally different patterns should not match")
	}
}

func TestContainsReflexiveTransitiveAndImpliedByMatches(t *testing.T) {
	leaf := Point(3)
	mid := New(2, []Pattern[int]{leaf})
	root := New(1, []Pattern[int]{mid})

	if !root.Contains(root, intEq) {
		t.Error("contains must be reflexive")
	}
	if !root.Contains(mid, intEq) || !root.Contains(leaf, intEq) {
		t.Error("contains must reach transitively into descendants")
	}
	if !mid.Contains(leaf, intEq) {
		t.Error("contains must hold for the direct parent of the matched element")
	}

	if root.Matches(mid, intEq) {
		t.Fatal("test setup: root must not match mid")
	}
	if !root.Contains(mid, intEq) {
		t.Error("matches(q) implies contains(q), and root strictly contains mid")
	}
}

func TestFindFirstShortCircuitsAndSatisfiesPredicate(t *testing.T) {
	p := New(1, []Pattern[int]{Point(2), Point(3), Point(4)})
	found, ok := p.FindFirst(func(n Pattern[int]) bool { return n.Value() == 3 })
	if !ok || found.Value() != 3 {
		t.Fatalf("FindFirst should find the value 3 node, got %+v ok=%v", found, ok)
	}

	_, ok = p.FindFirst(func(n Pattern[int]) bool { return n.Value() == 999 })
	if ok {
		t.Error("FindFirst should report no match when nothing satisfies the predicate")
	}
}

func TestDeepPatternDoesNotOverflow(t *testing.T) {
	p := buildDeep(5000)
	if p.Size() != 5001 {
		t.Fatalf("Size() = %d, want 5001", p.Size())
	}
	mapped := Map(p, func(v int) int { return v * 2 })
	if mapped.Value() != 0 {
		t.Fatalf("root value after doubling 0 should stay 0, got %d", mapped.Value())
	}
	_, ok := p.FindFirst(func(n Pattern[int]) bool { return n.Value() == 4999 })
	if !ok {
		t.Error("FindFirst should locate a node near the bottom of a 5000-deep pattern")
	}
}
