// Copyright 2026 The go-parsort Authors. SPDX-License-Identifier: Apache-2.0

// Command parsortbench times the parallel sort against the standard
// library's serial sort on random arrays and verifies that both produce the
// identical output.
//
// Usage:
//
//	parsortbench -sizes 1000,100000,1000000 -runs 3
//	parsortbench -workers 4 -serial-cutoff 1024 -merge-cutoff 2048
//
// The exit status is non-zero if any verification fails.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ajroetker/go-parsort/parsort"
	"github.com/ajroetker/go-parsort/parsort/forkjoin"
)

var (
	sizesFlag    = flag.String("sizes", "1000,100000,1000000", "Comma-separated array sizes to benchmark")
	runs         = flag.Int("runs", 3, "Timed runs per size; the best run is reported")
	workers      = flag.Int("workers", 0, "Fork-join pool size (default: GOMAXPROCS)")
	seed         = flag.Int64("seed", 42, "Random seed for array generation")
	serialCutoff = flag.Int("serial-cutoff", 0, "Sort base-case threshold (default: parsort default)")
	mergeCutoff  = flag.Int("merge-cutoff", 0, "Merge base-case threshold (default: parsort default)")
	inlineDepth  = flag.Int("inline-depth", 0, "Same-thread recursion budget (default: parsort default)")
)

func main() {
	flag.Parse()

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	opts := parsort.Options{
		SerialCutoff: *serialCutoff,
		MergeCutoff:  *mergeCutoff,
		InlineDepth:  *inlineDepth,
	}
	pool := forkjoin.New(*workers)

	fmt.Printf("cores=%d GOMAXPROCS=%d pool=%d runs=%d seed=%d\n\n",
		runtime.NumCPU(), runtime.GOMAXPROCS(0), pool.Limit(), *runs, *seed)

	failed := false
	for _, n := range sizes {
		serial, parallel, ok := benchmarkSize(pool, n, opts)
		status := "PASS"
		if !ok {
			status = "FAIL"
			failed = true
		}
		fmt.Printf("n=%-9d serial=%-12v parallel=%-12v speedup=%.2fx  %s\n",
			n, serial, parallel, serial.Seconds()/parallel.Seconds(), status)
	}

	if failed {
		os.Exit(1)
	}
}

// benchmarkSize times the best of *runs runs of both sorts over the same
// random input and checks the parallel output against the serial one.
func benchmarkSize(pool *forkjoin.Pool, n int, opts parsort.Options) (serial, parallel time.Duration, ok bool) {
	rng := rand.New(rand.NewSource(*seed))
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Int()
	}

	ok = true
	serial, parallel = time.Duration(1<<62), time.Duration(1<<62)
	for run := 0; run < *runs; run++ {
		want := slices.Clone(data)
		start := time.Now()
		slices.Sort(want)
		if d := time.Since(start); d < serial {
			serial = d
		}

		got := slices.Clone(data)
		start = time.Now()
		if err := parsort.SortOpts(pool, got, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		if d := time.Since(start); d < parallel {
			parallel = d
		}

		if !slices.Equal(got, want) {
			ok = false
		}
	}
	return serial, parallel, ok
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad size %q in -sizes", field)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
