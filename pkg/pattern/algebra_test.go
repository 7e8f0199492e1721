package pattern

import "testing"

func samplePattern() Pattern[int] {
	return New(10, []Pattern[int]{Point(5), Point(3)})
}

func TestMapIdentityLaw(t *testing.T) {
	p := samplePattern()
	mapped := Map(p, func(v int) int { return v })
	if !p.Matches(mapped, intEq) {
		t.Error("Map(p, id) must equal p")
	}
}

func TestMapCompositionLaw(t *testing.T) {
	p := samplePattern()
	f := func(v int) int { return v + 1 }
	g := func(v int) int { return v * 2 }

	composed := Map(p, func(v int) int { return g(f(v)) })
	sequential := Map(Map(p, f), g)

	if !composed.Matches(sequential, intEq) {
		t.Error("Map(p, g . f) must equal Map(Map(p, f), g)")
	}
}

func TestMapPreservesStructure(t *testing.T) {
	p := New(1, []Pattern[int]{
		New(2, []Pattern[int]{Point(3), Point(4)}),
		Point(5),
	})
	mapped := Map(p, func(v int) string {
		return string(rune('a' + v))
	})
	if len(mapped.Elements()) != 2 {
		t.Fatalf("top-level element count changed: got %d, want 2", len(mapped.Elements()))
	}
	if len(mapped.Elements()[0].Elements()) != 2 {
		t.Fatalf("nested element count changed: got %d, want 2", len(mapped.Elements()[0].Elements()))
	}
	if mapped.Value() != "b" {
		t.Errorf("root mapped value = %q, want %q", mapped.Value(), "b")
	}
}

func TestParaEquivalentToFoldForValueOnlyAggregation(t *testing.T) {
	p := samplePattern()

	paraResult := Para(p, func(n ParaNode[int], rs []int) int {
		sum := n.Value
		for _, r := range rs {
			sum += r
		}
		return sum
	})
	foldResult := Fold(p, 0, func(acc, v int) int { return acc + v })

	if paraResult != 18 {
		t.Errorf("Para result = %d, want 18", paraResult)
	}
	if foldResult != 18 {
		t.Errorf("Fold result = %d, want 18", foldResult)
	}
	if paraResult != foldResult {
		t.Errorf("Para and Fold must agree for value-only aggregation: %d != %d", paraResult, foldResult)
	}
}

func TestParaAtomicPatternGetsEmptySlice(t *testing.T) {
	var sawEmpty bool
	Para(Point(1), func(n ParaNode[int], rs []int) int {
		if len(rs) == 0 {
			sawEmpty = true
		}
		return 0
	})
	if !sawEmpty {
		t.Error("Para must call back with an empty slice for an atomic pattern")
	}
}

func TestParaBottomUpOrderAndDepth(t *testing.T) {
	p := New(1, []Pattern[int]{
		New(2, []Pattern[int]{Point(3)}),
	})
	var depths []int
	Para(p, func(n ParaNode[int], rs []int) int {
		depths = append(depths, n.Depth)
		return 0
	})
	// bottom-up: deepest node (depth 2) is processed first, root (depth 0) last.
	want := []int{2, 1, 0}
	if len(depths) != len(want) {
		t.Fatalf("depths = %v, want %v", depths, want)
	}
	for i := range want {
		if depths[i] != want[i] {
			t.Fatalf("depths = %v, want %v", depths, want)
		}
	}
}

func TestDeepMapFoldParaDoNotOverflow(t *testing.T) {
	p := buildDeep(3000)
	mapped := Map(p, func(v int) int { return v + 1 })
	if mapped.Size() != p.Size() {
		t.Fatalf("Map must preserve size: got %d, want %d", mapped.Size(), p.Size())
	}
	sum := Fold(p, 0, func(acc, v int) int { return acc + v })
	paraSum := Para(p, func(n ParaNode[int], rs []int) int {
		s := n.Value
		for _, r := range rs {
			s += r
		}
		return s
	})
	if sum != paraSum {
		t.Errorf("Fold sum = %d, Para sum = %d, want equal", sum, paraSum)
	}
}
