// Copyright 2026 The go-parsort Authors. SPDX-License-Identifier: Apache-2.0

// Package forkjoin provides the bounded spawn/join primitive behind the
// parallel sort. A Pool does not queue work: Spawn either launches the task
// on a fresh goroutine, or — when the in-flight limit is reached — runs it
// inline on the caller before returning. Tasks therefore always make
// progress and a Spawn can never deadlock, even when tasks spawn subtasks
// of their own from inside the pool.
//
// Usage:
//
//	pool := forkjoin.New(runtime.GOMAXPROCS(0))
//
//	ticket := pool.Spawn(func() { work(left) })
//	work(right)
//	ticket.Join()
package forkjoin

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Pool bounds the number of goroutines a fork-join computation may have in
// flight at once. The zero limit of New selects GOMAXPROCS. A nil *Pool is
// valid and runs every task inline, which turns the whole computation into
// an ordinary serial recursion.
type Pool struct {
	limit int32

	// inflight and spawned are hammered from every task goroutine; keep
	// them on their own cache lines.
	_        cpu.CacheLinePad
	inflight atomic.Int32
	_        cpu.CacheLinePad
	spawned  atomic.Int64
}

// New creates a pool that allows up to limit concurrent spawned tasks.
// If limit <= 0, uses GOMAXPROCS.
func New(limit int) *Pool {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	return &Pool{limit: int32(limit)}
}

// Limit returns the maximum number of concurrently spawned tasks.
func (p *Pool) Limit() int {
	if p == nil {
		return 0
	}
	return int(p.limit)
}

// Spawned returns how many tasks have run on their own goroutine since the
// pool was created. Inline executions are not counted.
func (p *Pool) Spawned() int64 {
	if p == nil {
		return 0
	}
	return p.spawned.Load()
}

// Ticket is the join handle returned by Spawn. The zero Ticket is valid and
// joins immediately; it is what Spawn returns after running a task inline.
type Ticket struct {
	wg *sync.WaitGroup
}

// Join blocks until the spawned task has finished. Joining gives the caller
// a happens-before edge on everything the task wrote.
func (t Ticket) Join() {
	if t.wg != nil {
		t.wg.Wait()
	}
}

// Spawn runs fn as a new task. If the in-flight limit allows it, fn runs on
// its own goroutine and the returned Ticket joins on its completion.
// Otherwise fn runs inline on the calling goroutine and has already finished
// when Spawn returns.
func (p *Pool) Spawn(fn func()) Ticket {
	if p == nil {
		fn()
		return Ticket{}
	}
	if p.inflight.Add(1) > p.limit {
		p.inflight.Add(-1)
		fn()
		return Ticket{}
	}
	p.spawned.Add(1)
	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer p.inflight.Add(-1)
		fn()
	}()
	return Ticket{wg: wg}
}
