// Copyright 2026 The go-parsort Authors. SPDX-License-Identifier: Apache-2.0

package parsort

// searchNotGreater returns the number of elements of the sorted slice s that
// compare not greater than pivot, i.e. the ix in [0, len(s)] with
// cmp(s[i], pivot) <= 0 for all i < ix and cmp(s[i], pivot) > 0 for all
// i >= ix. Ties count as not greater; parallelMerge relies on that rule to
// keep its partition consistent with serialMerge. O(log len(s)), no
// allocation.
func searchNotGreater[T any](pivot T, s []T, cmp func(a, b T) int) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp(s[mid], pivot) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
