package services

import "slices"

// TagDiff is the set of join rows to delete and insert so that a product's
// tags become exactly the requested set.
type TagDiff struct {
	ToAdd    []uint
	ToRemove []uint
}

func (d TagDiff) Empty() bool {
	return len(d.ToAdd) == 0 && len(d.ToRemove) == 0
}

// ReconcileTags compares the current tag ids with the requested ones.
// requested is treated as a set: order and duplicates do not matter.
// Both result slices are sorted ascending.
func ReconcileTags(current []uint, requested []uint) TagDiff {
	currentSet := toSet(current)
	requestedSet := toSet(requested)

	diff := TagDiff{ToAdd: []uint{}, ToRemove: []uint{}}
	for id := range requestedSet {
		if _, ok := currentSet[id]; !ok {
			diff.ToAdd = append(diff.ToAdd, id)
		}
	}
	for id := range currentSet {
		if _, ok := requestedSet[id]; !ok {
			diff.ToRemove = append(diff.ToRemove, id)
		}
	}
	slices.Sort(diff.ToAdd)
	slices.Sort(diff.ToRemove)
	return diff
}

// uniqueTagIDs de-duplicates ids keeping first-seen order.
func uniqueTagIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func toSet(ids []uint) map[uint]struct{} {
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
