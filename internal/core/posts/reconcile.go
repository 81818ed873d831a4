package posts

import "sort"

// Reconcile computes the author links to add and remove so that the current
// set becomes exactly the desired set. Both results are ascending and free of
// duplicates; IDs present in both sets appear in neither result.
func Reconcile(current, desired []int64) (add, remove []int64) {
	currentSet := toSet(current)
	desiredSet := toSet(desired)

	for id := range desiredSet {
		if _, ok := currentSet[id]; !ok {
			add = append(add, id)
		}
	}
	for id := range currentSet {
		if _, ok := desiredSet[id]; !ok {
			remove = append(remove, id)
		}
	}

	sort.Slice(add, func(i, j int) bool { return add[i] < add[j] })
	sort.Slice(remove, func(i, j int) bool { return remove[i] < remove[j] })
	return add, remove
}

// uniqueIDs drops repeated IDs, keeping the first occurrence order
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func toSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
