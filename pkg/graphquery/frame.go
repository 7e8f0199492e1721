package graphquery

import "github.com/relateby/patterncore/pkg/pattern"

// FrameQuery returns a new GraphQuery where every listing is filtered by
// predicate (spec.md §4.5). The five edge cases spec.md calls out:
//
//  1. query_relationships includes only rels whose both source and target
//     satisfy predicate; a rel with any endpoint outside the frame is
//     excluded entirely.
//  2. query_incident_rels(n) excludes rels with any endpoint outside the
//     frame.
//  3. query_degree(n) equals len(query_incident_rels(n)) in the framed view.
//  4. query_*_by_id(id) returns ok=true only if the result also satisfies
//     predicate.
//  5. query_containers(p) filters its result by predicate.
func FrameQuery(predicate func(pattern.Pattern[pattern.Subject]) bool, base GraphQuery) GraphQuery {
	relInFrame := func(r pattern.Pattern[pattern.Subject]) bool {
		source, sok := base.QuerySource(r)
		target, tok := base.QueryTarget(r)
		if !sok || !tok {
			return false
		}
		return predicate(source) && predicate(target)
	}

	filterPatterns := func(ps []pattern.Pattern[pattern.Subject]) []pattern.Pattern[pattern.Subject] {
		out := make([]pattern.Pattern[pattern.Subject], 0, len(ps))
		for _, p := range ps {
			if predicate(p) {
				out = append(out, p)
			}
		}
		return out
	}

	queryRelationships := func() []pattern.Pattern[pattern.Subject] {
		out := make([]pattern.Pattern[pattern.Subject], 0)
		for _, r := range base.QueryRelationships() {
			if relInFrame(r) {
				out = append(out, r)
			}
		}
		return out
	}

	queryIncidentRels := func(n pattern.Pattern[pattern.Subject]) []pattern.Pattern[pattern.Subject] {
		if !predicate(n) {
			return nil
		}
		out := make([]pattern.Pattern[pattern.Subject], 0)
		for _, r := range base.QueryIncidentRels(n) {
			if relInFrame(r) {
				out = append(out, r)
			}
		}
		return out
	}

	return GraphQuery{
		QueryNodes:         func() []pattern.Pattern[pattern.Subject] { return filterPatterns(base.QueryNodes()) },
		QueryRelationships: queryRelationships,
		QueryIncidentRels:  queryIncidentRels,
		QuerySource: func(r pattern.Pattern[pattern.Subject]) (pattern.Pattern[pattern.Subject], bool) {
			s, ok := base.QuerySource(r)
			if !ok || !predicate(s) {
				return pattern.Pattern[pattern.Subject]{}, false
			}
			return s, true
		},
		QueryTarget: func(r pattern.Pattern[pattern.Subject]) (pattern.Pattern[pattern.Subject], bool) {
			t, ok := base.QueryTarget(r)
			if !ok || !predicate(t) {
				return pattern.Pattern[pattern.Subject]{}, false
			}
			return t, true
		},
		QueryDegree: func(n pattern.Pattern[pattern.Subject]) int { return len(queryIncidentRels(n)) },
		QueryNodeByID: func(id string) (pattern.Pattern[pattern.Subject], bool) {
			p, ok := base.QueryNodeByID(id)
			if !ok || !predicate(p) {
				return pattern.Pattern[pattern.Subject]{}, false
			}
			return p, true
		},
		QueryRelationshipByID: func(id string) (pattern.Pattern[pattern.Subject], bool) {
			r, ok := base.QueryRelationshipByID(id)
			if !ok || !relInFrame(r) {
				return pattern.Pattern[pattern.Subject]{}, false
			}
			return r, true
		},
		QueryContainers: func(p pattern.Pattern[pattern.Subject]) []pattern.Pattern[pattern.Subject] {
			return filterPatterns(base.QueryContainers(p))
		},
	}
}
