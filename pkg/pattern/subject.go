package pattern

import "sort"

// LabelMergeMode controls how two Subjects' label sets combine under Merge.
type LabelMergeMode int

const (
	LabelUnion LabelMergeMode = iota
	LabelIntersect
	LabelLeft
	LabelRight
)

// PropertyMergeMode controls how two Subjects' property maps combine under Merge.
type PropertyMergeMode int

const (
	PropertyLeft PropertyMergeMode = iota
	PropertyRight
	PropertyMerge // key-wise, right wins on collision
)

// Subject is the canonical value carrier when patterns represent
// subjects-of-record: an identity, a set of labels, and a property map
// (spec.md §3.2). Subjects are immutable; Merge produces a new Subject.
type Subject struct {
	identity   string
	labels     map[string]struct{}
	properties map[string]Value
}

// NewSubject constructs a Subject. labels are deduplicated (set semantics);
// properties are copied so later mutation of the caller's map cannot reach
// into the constructed Subject.
func NewSubject(identity string, labels []string, properties map[string]Value) Subject {
	labelSet := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		labelSet[l] = struct{}{}
	}
	props := make(map[string]Value, len(properties))
	for k, v := range properties {
		props[k] = v
	}
	return Subject{identity: identity, labels: labelSet, properties: props}
}

// Identity returns the Subject's unique identifier. Identity is never
// changed by Merge (spec.md §3.2, §4.2).
func (s Subject) Identity() string { return s.identity }

// HasLabel reports whether s carries label l.
func (s Subject) HasLabel(l string) bool {
	_, ok := s.labels[l]
	return ok
}

// Labels returns the Subject's labels in sorted order (set semantics: the
// underlying storage is insertion-order-irrelevant, per spec.md §3.2).
func (s Subject) Labels() []string {
	out := make([]string, 0, len(s.labels))
	for l := range s.labels {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Property looks up a property by name.
func (s Subject) Property(name string) (Value, bool) {
	v, ok := s.properties[name]
	return v, ok
}

// Properties returns a copy of the property map.
func (s Subject) Properties() map[string]Value {
	out := make(map[string]Value, len(s.properties))
	for k, v := range s.properties {
		out[k] = v
	}
	return out
}

// Equal reports whether s and other have the same identity, label set, and
// properties. It can be passed as the eq argument of Matches/Contains for
// Subject-valued patterns; those methods have no default eq.
func (s Subject) Equal(other Subject) bool {
	if s.identity != other.identity {
		return false
	}
	if len(s.labels) != len(other.labels) {
		return false
	}
	for l := range s.labels {
		if _, ok := other.labels[l]; !ok {
			return false
		}
	}
	if len(s.properties) != len(other.properties) {
		return false
	}
	for k, v := range s.properties {
		ov, ok := other.properties[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Merge combines s (the first operand) with other under the given label and
// property merge modes. The result's identity is always s.Identity() —
// identity never changes under merge (spec.md §4.2).
func (s Subject) Merge(other Subject, labels LabelMergeMode, props PropertyMergeMode) Subject {
	mergedLabels := mergeLabels(s.labels, other.labels, labels)
	mergedProps := mergeProperties(s.properties, other.properties, props)
	return Subject{identity: s.identity, labels: mergedLabels, properties: mergedProps}
}

func mergeLabels(a, b map[string]struct{}, mode LabelMergeMode) map[string]struct{} {
	switch mode {
	case LabelLeft:
		return copyLabelSet(a)
	case LabelRight:
		return copyLabelSet(b)
	case LabelIntersect:
		out := make(map[string]struct{})
		for l := range a {
			if _, ok := b[l]; ok {
				out[l] = struct{}{}
			}
		}
		return out
	case LabelUnion:
		fallthrough
	default:
		out := copyLabelSet(a)
		for l := range b {
			out[l] = struct{}{}
		}
		return out
	}
}

func copyLabelSet(a map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(a))
	for l := range a {
		out[l] = struct{}{}
	}
	return out
}

func mergeProperties(a, b map[string]Value, mode PropertyMergeMode) map[string]Value {
	switch mode {
	case PropertyLeft:
		return copyProps(a)
	case PropertyRight:
		return copyProps(b)
	case PropertyMerge:
		fallthrough
	default:
		out := copyProps(a)
		for k, v := range b {
			out[k] = v
		}
		return out
	}
}

func copyProps(a map[string]Value) map[string]Value {
	out := make(map[string]Value, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
