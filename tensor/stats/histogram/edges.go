// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package histogram computes NaN-ignoring 1D and 2D histogram counts,
// and per-bin means and medians of a dependent variable, for
// coordinates binned by strictly increasing bin [Edges].
package histogram

import (
	"fmt"
	"math"
	"slices"

	"cogentcore.org/nanstat/math32/minmax"
	"cogentcore.org/nanstat/tensor"
)

// Edges are the strictly increasing boundaries of a sequence of bins.
// Bin i is the half-open interval [Values[i], Values[i+1]), except the
// last bin, which also includes its upper edge, so that every value in
// [Values[0], Values[len-1]] falls in exactly one bin.
type Edges struct {

	// Values are the edge values, at least 2, strictly increasing.
	Values []float64

	// uniform is true when the edges are equally spaced by width,
	// enabling direct computation of bin indexes.
	uniform bool

	width float64
}

// NewEdges returns nbins equal-width bins spanning [lo, hi].
// Returns an error wrapping [tensor.ErrInvalidEdges] unless
// nbins >= 1 and lo < hi, both finite.
func NewEdges(lo, hi float64, nbins int) (*Edges, error) {
	if nbins < 1 || !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("histogram.NewEdges: %w: [%g, %g] with %d bins", tensor.ErrInvalidEdges, lo, hi, nbins)
	}
	e := &Edges{Values: make([]float64, nbins+1), uniform: true}
	e.width = (hi - lo) / float64(nbins)
	for i := range nbins {
		e.Values[i] = lo + float64(i)*e.width
	}
	e.Values[nbins] = hi
	return e, nil
}

// EdgesOf returns Edges with the given values, which are copied.
// Returns an error wrapping [tensor.ErrInvalidEdges] if there are fewer
// than 2 values, or they are not strictly increasing (including NaN).
func EdgesOf(vals ...float64) (*Edges, error) {
	if len(vals) < 2 {
		return nil, fmt.Errorf("histogram.EdgesOf: %w: need at least 2 edges, have %d", tensor.ErrInvalidEdges, len(vals))
	}
	for i := 1; i < len(vals); i++ {
		if !(vals[i] > vals[i-1]) {
			return nil, fmt.Errorf("histogram.EdgesOf: %w: edge %d (%g) is not greater than edge %d (%g)", tensor.ErrInvalidEdges, i, vals[i], i-1, vals[i-1])
		}
	}
	return &Edges{Values: slices.Clone(vals)}, nil
}

// NumBins returns the number of bins, one less than the number of edges.
func (e *Edges) NumBins() int { return len(e.Values) - 1 }

// Range returns the min and max edges.
func (e *Edges) Range() minmax.F64 {
	return minmax.F64{Min: e.Values[0], Max: e.Values[len(e.Values)-1]}
}

// Bin returns the index of the bin containing x, or -1 if x is
// NaN or outside of the range of the edges.
func (e *Edges) Bin(x float64) int {
	n := e.NumBins()
	if !e.Range().Contains(x) {
		return -1
	}
	lo := e.Values[0]
	if e.uniform {
		b := min(int((x-lo)/e.width), n-1)
		// correct for rounding, against the actual edge values.
		if x < e.Values[b] {
			b--
		} else if b < n-1 && x >= e.Values[b+1] {
			b++
		}
		return b
	}
	i, found := slices.BinarySearch(e.Values, x)
	if found {
		return min(i, n-1)
	}
	return i - 1
}

// String satisfies the fmt.Stringer interface
func (e *Edges) String() string {
	return fmt.Sprintf("Edges%v", e.Values)
}
