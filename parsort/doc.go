// Copyright 2026 The go-parsort Authors. SPDX-License-Identifier: Apache-2.0

// Package parsort implements a fork-join parallel merge sort for in-memory
// slices, intended to beat a serial comparison sort on large inputs on
// multi-core hardware.
//
// The algorithm is a recursive merge sort whose merge step is itself
// parallelized: a merge task splits the larger of its two sorted operands at
// the midpoint, binary-searches the rank of the midpoint value in the other
// operand, and hands the two resulting sub-merges to independent tasks. Both
// recursions bottom out in serial base cases controlled by Options, and fan
// out through a bounded forkjoin.Pool. All concurrency operates on disjoint
// subslices of the input and of one top-level scratch buffer, so the hot
// path needs no locks.
//
// # Example Usage
//
//	import (
//	    "runtime"
//
//	    "github.com/ajroetker/go-parsort/parsort"
//	    "github.com/ajroetker/go-parsort/parsort/forkjoin"
//	)
//
//	pool := forkjoin.New(runtime.GOMAXPROCS(0))
//	data := loadRecords()
//	parsort.SortFunc(pool, data, func(a, b Record) int { return a.Key - b.Key })
//
// A nil pool runs the identical algorithm serially, which is useful for
// testing and as a baseline.
//
// Sorting is not stable: elements that compare equal may appear in either
// input order. Within a single merge the tie rule is fixed and documented on
// serialMerge; across the whole sort no ordering of equal elements is
// promised.
package parsort
