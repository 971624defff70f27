// Copyright 2026 The go-parsort Authors. SPDX-License-Identifier: Apache-2.0

package parsort

import "github.com/ajroetker/go-parsort/parsort/forkjoin"

// serialMerge merges the sorted operands a and b into dst with a two-pointer
// scan. len(dst) must equal len(a)+len(b) and dst must not overlap either
// operand. An element of a is taken only while it compares strictly less
// than the head of b: ties go to b. This tie rule is a package contract, not
// an accident — searchNotGreater sends equal elements of the searched
// operand to the left partition for the same reason, and the two together
// keep the parallel partition order-consistent.
func serialMerge[T any](dst, a, b []T, cmp func(a, b T) int) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if cmp(a[i], b[j]) < 0 {
			dst[k] = a[i]
			i++
		} else {
			dst[k] = b[j]
			j++
		}
		k++
	}
	if i < len(a) {
		copy(dst[k:], a[i:])
	} else {
		copy(dst[k:], b[j:])
	}
}

// parallelMerge merges the sorted operands a and b into dst, recursively
// partitioning the work across pool. len(dst) must equal len(a)+len(b), and
// dst must be disjoint from both operands; within one call tree every task
// owns a distinct dst subslice, which is what makes the concurrent writes
// race-free.
//
// The recursion splits the larger operand at its midpoint, finds where that
// midpoint value ranks in the other operand, and merges the two resulting
// operand pairs independently: everything at or left of the split is not
// greater than everything right of it, so the children fill dst[:split] and
// dst[split:] with no coordination. Depth is logarithmic in the larger
// operand. Once either operand is empty or the combined length drops to
// cutoff, serialMerge finishes the job.
//
// budget counts how many consecutive levels of this call chain ran their
// second child inline; once it reaches inlineDepth the second child is
// spawned too and the budget starts over.
func parallelMerge[T any](pool *forkjoin.Pool, dst, a, b []T, cmp func(a, b T) int, cutoff, inlineDepth, budget int) {
	// A 1+1 merge has no midpoint to split at; folding it into the base
	// case keeps the recursion terminating even for cutoffs below 2.
	if len(a) == 0 || len(b) == 0 || len(a)+len(b) <= cutoff || len(a)+len(b) == 2 {
		serialMerge(dst, a, b, cmp)
		return
	}

	// Split the larger operand; on equal lengths keep a.
	if len(b) > len(a) {
		a, b = b, a
	}

	// a[:ia] and b[:ib] are not greater than a[ia:] and b[ib:], so the two
	// sub-merges are independent. ib may be 0 or len(b): then one child
	// inherits all of b and the other gets an empty operand.
	ia := len(a) / 2
	ib := searchNotGreater(a[ia], b, cmp)
	split := ia + ib

	first := pool.Spawn(func() {
		parallelMerge(pool, dst[:split], a[:ia], b[:ib], cmp, cutoff, inlineDepth, 0)
	})
	if budget < inlineDepth {
		parallelMerge(pool, dst[split:], a[ia:], b[ib:], cmp, cutoff, inlineDepth, budget+1)
	} else {
		second := pool.Spawn(func() {
			parallelMerge(pool, dst[split:], a[ia:], b[ib:], cmp, cutoff, inlineDepth, 0)
		})
		second.Join()
	}
	first.Join()
}
