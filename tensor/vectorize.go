// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

var (
	// ThreadingThreshold is the threshold in number of flops (floating point ops),
	// computed as tensor N * flops per element, to engage actual parallel processing.
	// Heuristically, numbers below this threshold do not result in
	// an overall speedup, due to overhead costs.
	ThreadingThreshold = 10_000

	// NumThreads is the number of threads to use for parallel threading.
	// The default of 0 causes the [runtime.GOMAXPROCS] to be used.
	NumThreads = 0
)

// Vectorize applies given function 'fun' to each index from 0 to n-1,
// sequentially in the calling goroutine.
func Vectorize(n int, fun func(idx int)) {
	for idx := range n {
		fun(idx)
	}
}

// VectorizeThreaded is a version of [Vectorize] that will automatically
// distribute the computation in parallel across multiple "threads" (goroutines)
// if the number of elements to be computed times the given flops
// (floating point operations) for the function exceeds the [ThreadingThreshold].
// Heuristically, numbers below this threshold do not result
// in an overall speedup, due to overhead costs.
// Each index is processed by exactly one goroutine, so fun must only
// write to output locations determined by its own index.
func VectorizeThreaded(flops, n int, fun func(idx int)) {
	if n*flops < ThreadingThreshold {
		Vectorize(n, fun)
		return
	}
	VectorizeOnThreads(0, n, fun)
}

// DefaultNumThreads returns the default number of threads to use:
// NumThreads if non-zero, otherwise [runtime.GOMAXPROCS].
func DefaultNumThreads() int {
	if NumThreads > 0 {
		return NumThreads
	}
	return runtime.GOMAXPROCS(0)
}

// VectorizeOnThreads runs given function 'fun' on given number of threads,
// splitting the indexes 0 to n-1 into contiguous blocks.
// If nThreads is 0, then the [DefaultNumThreads] will be used.
func VectorizeOnThreads(nThreads, n int, fun func(idx int)) {
	if nThreads <= 0 {
		nThreads = DefaultNumThreads()
	}
	nThreads = min(nThreads, n)
	if nThreads <= 1 {
		Vectorize(n, fun)
		return
	}
	nper := n / nThreads
	rem := n % nThreads
	var g errgroup.Group
	st := 0
	for th := range nThreads {
		ed := st + nper
		if th < rem {
			ed++
		}
		lo := st
		g.Go(func() error {
			for idx := lo; idx < ed; idx++ {
				fun(idx)
			}
			return nil
		})
		st = ed
	}
	g.Wait()
}
