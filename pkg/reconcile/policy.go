// Package reconcile implements ReconciliationPolicy and MergeStrategy
// (spec.md §3.3, §4.2): the rules a PatternGraph applies when two patterns
// collide on identity. The control flow is grounded on
// internal/vgraph/reconciler.go (teacher): classify the collision, then
// either replace, keep, record a conflict, or merge.
package reconcile

import "github.com/relateby/patterncore/pkg/pattern"

// ElementStrategy controls how two patterns' element sequences combine
// under the Merge policy.
type ElementStrategy int

const (
	// ElementReplace discards the existing elements in favor of the
	// incoming pattern's elements.
	ElementReplace ElementStrategy = iota
	// ElementAppend concatenates existing then incoming elements.
	ElementAppend
	// ElementUnionByIdentity deduplicates by identity, preserving first
	// appearance order.
	ElementUnionByIdentity
)

// MergeStrategy parameterizes the Merge policy: how element sequences,
// labels, and properties combine (spec.md §3.3).
type MergeStrategy struct {
	Elements   ElementStrategy
	Labels     pattern.LabelMergeMode
	Properties pattern.PropertyMergeMode
}

// PolicyKind discriminates the four reconciliation policies.
type PolicyKind int

const (
	LastWriteWins PolicyKind = iota
	FirstWriteWins
	Strict
	Merge
)

// Policy is a ReconciliationPolicy value. Strategy is only meaningful when
// Kind == Merge.
type Policy struct {
	Kind     PolicyKind
	Strategy MergeStrategy
}

// NewLastWriteWins returns the LastWriteWins policy: later occurrence
// replaces earlier.
func NewLastWriteWins() Policy { return Policy{Kind: LastWriteWins} }

// NewFirstWriteWins returns the FirstWriteWins policy: first occurrence is
// kept, later occurrences discarded.
func NewFirstWriteWins() Policy { return Policy{Kind: FirstWriteWins} }

// NewStrict returns the Strict policy: a second occurrence is recorded as a
// conflict, never merged.
func NewStrict() Policy { return Policy{Kind: Strict} }

// NewMerge returns the Merge policy parameterized by strategy.
func NewMerge(strategy MergeStrategy) Policy {
	return Policy{Kind: Merge, Strategy: strategy}
}

// Outcome reports what Reconcile actually did with a colliding identity.
type Outcome int

const (
	OutcomeReplaced Outcome = iota
	OutcomeKeptExisting
	OutcomeConflict
	OutcomeMerged
)

// Reconcile combines an already-stored pattern with a newly seen one that
// shares its identity, under policy. It returns the pattern that should end
// up stored and the Outcome describing what happened — callers insert the
// returned pattern and, on OutcomeConflict, additionally record the
// incoming pattern in the conflict map (PatternGraph does this; Reconcile
// itself is pure and does not touch any container).
func Reconcile(existing, incoming pattern.Pattern[pattern.Subject], policy Policy) (pattern.Pattern[pattern.Subject], Outcome) {
	switch policy.Kind {
	case LastWriteWins:
		return incoming, OutcomeReplaced
	case FirstWriteWins:
		return existing, OutcomeKeptExisting
	case Strict:
		return existing, OutcomeConflict
	case Merge:
		return mergePatterns(existing, incoming, policy.Strategy), OutcomeMerged
	default:
		return incoming, OutcomeReplaced
	}
}

func mergePatterns(a, b pattern.Pattern[pattern.Subject], strategy MergeStrategy) pattern.Pattern[pattern.Subject] {
	mergedSubject := a.Value().Merge(b.Value(), strategy.Labels, strategy.Properties)
	mergedElements := mergeElements(a.Elements(), b.Elements(), strategy.Elements)
	return pattern.New(mergedSubject, mergedElements)
}

func mergeElements(a, b []pattern.Pattern[pattern.Subject], strategy ElementStrategy) []pattern.Pattern[pattern.Subject] {
	switch strategy {
	case ElementReplace:
		out := make([]pattern.Pattern[pattern.Subject], len(b))
		copy(out, b)
		return out
	case ElementAppend:
		out := make([]pattern.Pattern[pattern.Subject], 0, len(a)+len(b))
		out = append(out, a...)
		out = append(out, b...)
		return out
	case ElementUnionByIdentity:
		fallthrough
	default:
		seen := make(map[string]struct{}, len(a)+len(b))
		out := make([]pattern.Pattern[pattern.Subject], 0, len(a)+len(b))
		for _, e := range a {
			id := e.Value().Identity()
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, e)
		}
		for _, e := range b {
			id := e.Value().Identity()
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, e)
		}
		return out
	}
}
