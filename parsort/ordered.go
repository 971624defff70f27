// Copyright 2026 The go-parsort Authors. SPDX-License-Identifier: Apache-2.0

package parsort

import (
	"golang.org/x/exp/constraints"

	"github.com/ajroetker/go-parsort/parsort/forkjoin"
)

// Compare is the natural comparator over ordered element types, suitable for
// SortFunc and SortFuncOpts.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Sort sorts a slice of naturally ordered elements in place across pool with
// the default Options. A nil pool sorts serially.
func Sort[T constraints.Ordered](pool *forkjoin.Pool, x []T) {
	SortFunc(pool, x, Compare[T])
}

// SortOpts is Sort with explicit tuning.
func SortOpts[T constraints.Ordered](pool *forkjoin.Pool, x []T, opts Options) error {
	return SortFuncOpts(pool, x, Compare[T], opts)
}

// IsSorted reports whether x is in nondecreasing order.
func IsSorted[T constraints.Ordered](x []T) bool {
	return IsSortedFunc(x, Compare[T])
}

// IsSortedFunc reports whether x is in nondecreasing order under cmp.
func IsSortedFunc[T any](x []T, cmp func(a, b T) int) bool {
	for i := len(x) - 1; i > 0; i-- {
		if cmp(x[i], x[i-1]) < 0 {
			return false
		}
	}
	return true
}
