package graphview

import (
	"github.com/relateby/patterncore/pkg/pattern"
	"github.com/relateby/patterncore/pkg/patterngraph"
)

// SubstitutionKind discriminates the three container-gap policies
// filter_graph applies when an element's sub-element was removed (spec.md
// §4.7).
type SubstitutionKind int

const (
	// NoSubstitution leaves the container with a gap — walks may become
	// non-chainable.
	NoSubstitution SubstitutionKind = iota
	// ReplaceWithKind replaces the removed element with Substitution.Surrogate.
	ReplaceWithKind
	// RemoveContainerKind drops any container whose contained element was
	// removed.
	RemoveContainerKind
)

// Substitution is the discriminated union filter_graph consumes. Surrogate
// is only meaningful when Kind == ReplaceWithKind.
type Substitution struct {
	Kind      SubstitutionKind
	Surrogate pattern.Pattern[pattern.Subject]
}

// ReplaceWith builds a Substitution that replaces a removed sub-element
// with surrogate.
func ReplaceWith(surrogate pattern.Pattern[pattern.Subject]) Substitution {
	return Substitution{Kind: ReplaceWithKind, Surrogate: surrogate}
}

// FilterGraph drops elements where predicate(class, p) is false. Because
// walks and other containers hold other elements by identity, removing an
// inner element leaves a gap in its container's element sequence unless
// substitution says otherwise (spec.md §4.7).
func FilterGraph[Extra any](predicate func(class patterngraph.GraphClass, p pattern.Pattern[pattern.Subject]) bool, substitution Substitution, view GraphView[Extra]) GraphView[Extra] {
	removed := make(map[string]bool)
	for _, e := range view.Elements {
		if !predicate(e.Class, e.Pattern) {
			removed[e.Pattern.Value().Identity()] = true
		}
	}

	var rebuild func(p pattern.Pattern[pattern.Subject]) (pattern.Pattern[pattern.Subject], bool)
	rebuild = func(p pattern.Pattern[pattern.Subject]) (pattern.Pattern[pattern.Subject], bool) {
		elements := p.Elements()
		newElements := make([]pattern.Pattern[pattern.Subject], 0, len(elements))
		containerDropped := false
		for _, sub := range elements {
			if !removed[sub.Value().Identity()] {
				newElements = append(newElements, sub)
				continue
			}
			switch substitution.Kind {
			case ReplaceWithKind:
				newElements = append(newElements, substitution.Surrogate)
			case RemoveContainerKind:
				containerDropped = true
			case NoSubstitution:
				// gap: simply omit the sub-element.
			}
		}
		if containerDropped {
			return pattern.Pattern[pattern.Subject]{}, false
		}
		return pattern.New(p.Value(), newElements), true
	}

	out := make([]patterngraph.ClassifiedElement[Extra], 0, len(view.Elements))
	for _, e := range view.Elements {
		if removed[e.Pattern.Value().Identity()] {
			continue
		}
		newP, keep := rebuild(e.Pattern)
		if !keep {
			continue
		}
		out = append(out, patterngraph.ClassifiedElement[Extra]{Class: e.Class, Extra: e.Extra, Pattern: newP})
	}
	return GraphView[Extra]{Query: view.Query, Elements: out}
}
