package patterngraph

import (
	"sort"

	"github.com/relateby/patterncore/pkg/pattern"
)

// ClassifiedElement pairs a pattern with its classification, the unit
// topo_shape_sort and pkg/graphview's para_graph operate over.
type ClassifiedElement[Extra any] struct {
	Class   GraphClass
	Extra   Extra
	Pattern pattern.Pattern[pattern.Subject]
}

var bucketPriority = []GraphClass{ClassNode, ClassRelationship, ClassWalk, ClassAnnotation, ClassOther}

// TopoShapeSort orders classified elements bottom-up in two passes
// (spec.md §4.7.1):
//
//  1. Fixed inter-bucket priority: Node, Relationship, Walk, Annotation,
//     Other.
//  2. Kahn's algorithm within the Annotation and Other buckets only: a
//     direct sub-element belonging to the same bucket is ordered before
//     its referent. Node/Relationship/Walk buckets skip this pass — by the
//     classifier's layering property their sub-elements always belong to a
//     strictly lower-priority bucket.
//
// When a bucket's remaining dependency graph contains a cycle, Kahn's
// algorithm cannot drain it; the undrained remainder is appended in
// encounter order (identity-sorted, for determinism — spec.md §5 requires
// every iteration order to be deterministic given the input, and Go map
// iteration is not, so buckets are identity-sorted before Kahn's runs).
func TopoShapeSort[Extra any](elements []ClassifiedElement[Extra]) []ClassifiedElement[Extra] {
	buckets := make(map[GraphClass][]ClassifiedElement[Extra], len(bucketPriority))
	for _, e := range elements {
		buckets[e.Class] = append(buckets[e.Class], e)
	}
	for _, c := range bucketPriority {
		sortByIdentity(buckets[c])
	}

	result := make([]ClassifiedElement[Extra], 0, len(elements))
	for _, c := range bucketPriority {
		bucket := buckets[c]
		if c == ClassAnnotation || c == ClassOther {
			bucket = kahnSort(bucket)
		}
		result = append(result, bucket...)
	}
	return result
}

func sortByIdentity[Extra any](bucket []ClassifiedElement[Extra]) {
	sort.SliceStable(bucket, func(i, j int) bool {
		return bucket[i].Pattern.Value().Identity() < bucket[j].Pattern.Value().Identity()
	})
}

// kahnSort orders a single bucket so that any direct sub-element sharing
// the bucket is processed before its referent.
func kahnSort[Extra any](bucket []ClassifiedElement[Extra]) []ClassifiedElement[Extra] {
	if len(bucket) <= 1 {
		return bucket
	}

	indexByID := make(map[string]int, len(bucket))
	for i, e := range bucket {
		indexByID[e.Pattern.Value().Identity()] = i
	}

	inDegree := make([]int, len(bucket))
	dependents := make([][]int, len(bucket))
	for i, e := range bucket {
		for _, sub := range e.Pattern.Elements() {
			j, ok := indexByID[sub.Value().Identity()]
			if !ok || j == i {
				continue
			}
			dependents[j] = append(dependents[j], i)
			inDegree[i]++
		}
	}

	queue := make([]int, 0, len(bucket))
	for i := range bucket {
		if inDegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	visited := make([]bool, len(bucket))
	result := make([]ClassifiedElement[Extra], 0, len(bucket))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		if visited[i] {
			continue
		}
		visited[i] = true
		result = append(result, bucket[i])
		for _, dep := range dependents[i] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if len(result) < len(bucket) {
		for i, e := range bucket {
			if !visited[i] {
				result = append(result, e)
			}
		}
	}
	return result
}
