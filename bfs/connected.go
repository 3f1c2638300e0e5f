// SPDX-License-Identifier: MIT
// Package: redistrict/bfs
//
// connected.go - reachability helpers over vertex subsets.
//
// A subset is described by a membership predicate. Both helpers only walk
// edges whose endpoints are members, so the cost is O(|subset| + edges
// incident to it), not O(V + E).

package bfs

import "fmt"

// Connected reports whether every member is reachable from start through
// members only. size is the number of members (including start); start must
// itself be a member. maxVisits bounds the traversal (0 = unbounded) and is
// surfaced as ErrVisitLimit.
func Connected(g Graph, member func(int) bool, start, size, maxVisits int) (bool, error) {
	if size <= 1 {
		return true, nil
	}
	res, err := BFS(g, start,
		WithFilterNeighbor(func(_, nbr int) bool { return member(nbr) }),
		WithMaxVisits(maxVisits),
	)
	if err != nil {
		return false, err
	}
	return len(res.Order) == size, nil
}

// CountComponents returns the number of connected pieces formed by the
// members listed in candidates (non-members in candidates are skipped).
// maxVisits bounds the total number of visits across all pieces
// (0 = unbounded).
func CountComponents(g Graph, candidates []int, member func(int) bool, maxVisits int) (int, error) {
	var (
		count   int
		visited int
		seen    = make(map[int]struct{}, len(candidates))
	)
	filter := WithFilterNeighbor(func(_, nbr int) bool { return member(nbr) })

	for _, v := range candidates {
		if !member(v) {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		limit := 0
		if maxVisits > 0 {
			limit = maxVisits - visited
			if limit <= 0 {
				return 0, fmt.Errorf("%w: %d", ErrVisitLimit, maxVisits)
			}
		}
		res, err := BFS(g, v, filter, WithMaxVisits(limit))
		if err != nil {
			return 0, err
		}
		for _, u := range res.Order {
			seen[u] = struct{}{}
		}
		visited += len(res.Order)
		count++
	}
	return count, nil
}
