// Copyright 2026 The go-parsort Authors. SPDX-License-Identifier: Apache-2.0

package parsort

import (
	"slices"

	"github.com/ajroetker/go-parsort/parsort/forkjoin"
)

// SortFunc sorts x in place under cmp, fanning work out across pool, with
// the default Options. cmp must define a total order and return a negative,
// zero, or positive value for a < b, a == b, a > b respectively; it must be
// safe to call concurrently, which any pure comparator is. A nil pool sorts
// serially.
func SortFunc[T any](pool *forkjoin.Pool, x []T, cmp func(a, b T) int) {
	// Options{} resolves to the package defaults, which always validate.
	if err := SortFuncOpts(pool, x, cmp, Options{}); err != nil {
		panic(err)
	}
}

// SortFuncOpts is SortFunc with explicit tuning. It rejects invalid Options
// with a descriptive error before touching x; a partially sorted slice with
// no failure indication is never an outcome. Slices shorter than 2 elements
// return immediately, untouched.
//
// The call runs the root task on the calling goroutine: only child tasks are
// handed to the pool. One scratch buffer of len(x) elements is allocated for
// the whole sort and released when it returns.
func SortFuncOpts[T any](pool *forkjoin.Pool, x []T, cmp func(a, b T) int, opts Options) error {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return err
	}
	if len(x) < 2 {
		return nil
	}
	scratch := make([]T, len(x))
	parallelSort(pool, x, scratch, cmp, opts, 0)
	return nil
}

// parallelSort sorts x in place. scratch is a buffer of exactly len(x)
// elements owned by this task alone; children receive the halves of both
// slices, so sibling tasks never share a byte. budget is the same-thread
// recursion counter described on Options.InlineDepth.
//
// At or below opts.SerialCutoff the subrange is handed to the serial sort.
// Above it, the halves are sorted as fork-join children, merged into scratch
// by parallelMerge, and copied back.
func parallelSort[T any](pool *forkjoin.Pool, x, scratch []T, cmp func(a, b T) int, opts Options, budget int) {
	if len(x) <= opts.SerialCutoff {
		slices.SortFunc(x, cmp)
		return
	}

	mid := len(x) / 2
	first := pool.Spawn(func() {
		parallelSort(pool, x[:mid], scratch[:mid], cmp, opts, 0)
	})
	if budget < opts.InlineDepth {
		parallelSort(pool, x[mid:], scratch[mid:], cmp, opts, budget+1)
	} else {
		second := pool.Spawn(func() {
			parallelSort(pool, x[mid:], scratch[mid:], cmp, opts, 0)
		})
		second.Join()
	}
	first.Join()

	parallelMerge(pool, scratch, x[:mid], x[mid:], cmp, opts.MergeCutoff, opts.InlineDepth, budget)
	copy(x, scratch)
}
