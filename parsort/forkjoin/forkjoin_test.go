// Copyright 2026 The go-parsort Authors. SPDX-License-Identifier: Apache-2.0

package forkjoin

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	if pool.Limit() != 4 {
		t.Errorf("Limit() = %d, want 4", pool.Limit())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	if pool.Limit() != runtime.GOMAXPROCS(0) {
		t.Errorf("Limit() = %d, want %d", pool.Limit(), runtime.GOMAXPROCS(0))
	}
}

func TestSpawnAndJoin(t *testing.T) {
	pool := New(4)

	var hits atomic.Int32
	tickets := make([]Ticket, 8)
	for i := range tickets {
		tickets[i] = pool.Spawn(func() { hits.Add(1) })
	}
	for _, ticket := range tickets {
		ticket.Join()
	}

	if hits.Load() != 8 {
		t.Errorf("hits = %d, want 8", hits.Load())
	}
}

func TestSpawnInlineWhenExhausted(t *testing.T) {
	pool := New(1)

	block := make(chan struct{})
	busy := pool.Spawn(func() { <-block })

	// The single slot is taken, so this must run inline and be done before
	// Spawn returns.
	ran := false
	ticket := pool.Spawn(func() { ran = true })
	if !ran {
		t.Error("second task did not run inline with pool exhausted")
	}
	ticket.Join()

	close(block)
	busy.Join()

	if got := pool.Spawned(); got != 1 {
		t.Errorf("Spawned() = %d, want 1 (inline runs must not count)", got)
	}
}

func TestNilPoolRunsInline(t *testing.T) {
	var pool *Pool

	ran := false
	ticket := pool.Spawn(func() { ran = true })
	if !ran {
		t.Error("nil pool did not run task inline")
	}
	ticket.Join()

	if pool.Spawned() != 0 {
		t.Errorf("Spawned() = %d, want 0", pool.Spawned())
	}
	if pool.Limit() != 0 {
		t.Errorf("Limit() = %d, want 0", pool.Limit())
	}
}

func TestNestedSpawn(t *testing.T) {
	pool := New(2)

	var sum atomic.Int64
	outer := pool.Spawn(func() {
		inner := pool.Spawn(func() { sum.Add(1) })
		sum.Add(10)
		inner.Join()
	})
	outer.Join()

	if sum.Load() != 11 {
		t.Errorf("sum = %d, want 11", sum.Load())
	}
}

func TestZeroTicketJoin(t *testing.T) {
	var ticket Ticket
	ticket.Join() // must not block or panic
}
