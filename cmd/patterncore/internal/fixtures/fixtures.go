// Package fixtures generates synthetic subject patterns for the demo CLI
// and for tests that need disposable identities. The core algebra never
// invents identities itself (spec.md §3.2: identity is supplied, not
// generated), so github.com/google/uuid lives only in this demo/test
// layer.
package fixtures

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/relateby/patterncore/pkg/pattern"
)

// RandomIdentity returns a fresh UUIDv4 string, suitable as a Subject
// identity when the caller has no natural stable key.
func RandomIdentity() string {
	return uuid.NewString()
}

// LineGraph builds a chain of n nodes connected by n-1 relationships:
// node-0 -> node-1 -> ... -> node-(n-1). Useful for demoing traversal
// algorithms without a real input file.
func LineGraph(n int) []pattern.Pattern[pattern.Subject] {
	if n <= 0 {
		return nil
	}
	patterns := make([]pattern.Pattern[pattern.Subject], 0, 2*n-1)
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = fmt.Sprintf("node-%d", i)
		patterns = append(patterns, pattern.Point(pattern.NewSubject(ids[i], []string{"generated"}, nil)))
	}
	for i := 0; i < n-1; i++ {
		relID := RandomIdentity()
		patterns = append(patterns, pattern.New(
			pattern.NewSubject(relID, []string{"generated"}, nil),
			[]pattern.Pattern[pattern.Subject]{
				pattern.Point(pattern.NewSubject(ids[i], nil, nil)),
				pattern.Point(pattern.NewSubject(ids[i+1], nil, nil)),
			},
		))
	}
	return patterns
}
