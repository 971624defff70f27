// Copyright 2026 The go-parsort Authors. SPDX-License-Identifier: Apache-2.0

package parsort

import "fmt"

// Tuning defaults. Benchmarked on an 8-core x86-64 box with 1e6 random
// int64s: cutoffs below ~1K make task overhead visible, cutoffs above ~8K
// leave cores idle at the tail of the recursion. The defaults sit in the
// flat part of that curve.
const (
	// DefaultSerialCutoff is the subrange length at or below which a sort
	// task stops splitting and delegates to the serial sort.
	DefaultSerialCutoff = 2048

	// DefaultMergeCutoff is the combined operand length at or below which a
	// merge task stops partitioning and runs the two-pointer serial merge.
	DefaultMergeCutoff = 4096

	// DefaultInlineDepth is how many consecutive recursion levels run their
	// second child as a direct call before one is spawned again. Each extra
	// level roughly halves the number of goroutines launched.
	DefaultInlineDepth = 4
)

// Options carries the tuning knobs of the sort. The zero value of each field
// selects the corresponding default, so Options{} is always valid.
type Options struct {
	// SerialCutoff bounds the sort base case. Must be positive.
	SerialCutoff int

	// MergeCutoff bounds the merge base case. Must be at least 2: a merge
	// of two non-empty operands has combined length 2, so a smaller cutoff
	// could never terminate the recursion.
	MergeCutoff int

	// InlineDepth bounds the same-thread recursion budget: a task whose
	// call chain has already run InlineDepth consecutive second children
	// inline spawns the next one instead, resetting the budget.
	InlineDepth int
}

// withDefaults fills zero fields with the package defaults.
func (o Options) withDefaults() Options {
	if o.SerialCutoff == 0 {
		o.SerialCutoff = DefaultSerialCutoff
	}
	if o.MergeCutoff == 0 {
		o.MergeCutoff = DefaultMergeCutoff
	}
	if o.InlineDepth == 0 {
		o.InlineDepth = DefaultInlineDepth
	}
	return o
}

// validate rejects option values under which the recursion would be
// meaningless or non-terminating. It runs after withDefaults, so only
// explicitly set bad values reach it.
func (o Options) validate() error {
	if o.SerialCutoff < 1 {
		return fmt.Errorf("parsort: SerialCutoff must be positive, got %d", o.SerialCutoff)
	}
	if o.MergeCutoff < 2 {
		return fmt.Errorf("parsort: MergeCutoff must be at least 2, got %d", o.MergeCutoff)
	}
	if o.InlineDepth < 0 {
		return fmt.Errorf("parsort: InlineDepth must not be negative, got %d", o.InlineDepth)
	}
	return nil
}
