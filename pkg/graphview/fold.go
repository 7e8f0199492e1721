package graphview

import "github.com/relateby/patterncore/pkg/patterngraph"

// FoldGraph visits the classified-element list once, computing a partial
// result per element via f and combining it into the running accumulator
// via combine — an explicit accumulator and combine step, no hidden
// monoid assumption (spec.md §4.7).
func FoldGraph[Extra, B any](
	f func(ce patterngraph.ClassifiedElement[Extra]) B,
	empty B,
	combine func(acc, partial B) B,
	view GraphView[Extra],
) B {
	acc := empty
	for _, e := range view.Elements {
		acc = combine(acc, f(e))
	}
	return acc
}
