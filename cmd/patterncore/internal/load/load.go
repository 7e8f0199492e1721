// Package load reads a JSON subject dump into a slice of raw patterns the
// demo CLI feeds to patterngraph.FromPatterns. This is demonstration
// plumbing only: the core (pkg/pattern, pkg/patterngraph, ...) never
// parses JSON or any other external notation (spec.md §1, §6 — the gram
// notation parser/serializer is an external collaborator out of core
// scope).
package load

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/relateby/patterncore/pkg/pattern"
)

// rawPattern mirrors the on-disk subject-dump shape: a recursive node with
// an identity, a label set, a flat property map of JSON scalars, and
// nested elements.
type rawPattern struct {
	ID         string                 `json:"id"`
	Labels     []string               `json:"labels"`
	Properties map[string]interface{} `json:"properties"`
	Elements   []rawPattern           `json:"elements"`
}

// FromFile reads path as a JSON array of rawPattern and converts it to
// patterncore's Pattern[Subject] values.
func FromFile(path string) ([]pattern.Pattern[pattern.Subject], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: reading %s: %w", path, err)
	}

	var raws []rawPattern
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("load: parsing %s: %w", path, err)
	}

	out := make([]pattern.Pattern[pattern.Subject], 0, len(raws))
	for _, r := range raws {
		out = append(out, r.toPattern())
	}
	return out, nil
}

func (r rawPattern) toPattern() pattern.Pattern[pattern.Subject] {
	props := make(map[string]pattern.Value, len(r.Properties))
	for k, v := range r.Properties {
		props[k] = toValue(v)
	}
	subject := pattern.NewSubject(r.ID, r.Labels, props)

	if len(r.Elements) == 0 {
		return pattern.Point(subject)
	}
	elements := make([]pattern.Pattern[pattern.Subject], len(r.Elements))
	for i, e := range r.Elements {
		elements[i] = e.toPattern()
	}
	return pattern.New(subject, elements)
}

// toValue converts a decoded JSON scalar to a patterncore Value. JSON has
// no native decimal/range/tagged-string notion, so numbers decode as
// either Int or Decimal depending on whether they carry a fractional part;
// range and tagged-string values are outside this demo loader's scope
// (they require the external gram notation this module does not parse).
func toValue(v interface{}) pattern.Value {
	switch val := v.(type) {
	case string:
		return pattern.StringValue(val)
	case bool:
		return pattern.BoolValue(val)
	case float64:
		if val == float64(int64(val)) {
			return pattern.IntValue(int64(val))
		}
		return pattern.DecimalValue(val)
	case []interface{}:
		items := make([]pattern.Value, len(val))
		for i, item := range val {
			items[i] = toValue(item)
		}
		return pattern.ArrayValue(items)
	default:
		return pattern.StringValue(fmt.Sprintf("%v", val))
	}
}
