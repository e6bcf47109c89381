// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histogram

import (
	"fmt"

	"cogentcore.org/nanstat/base/num"
	"cogentcore.org/nanstat/tensor"
)

// Counts returns a histogram of the values of x (in any shape),
// with the number of values in each bin of the edges.
// NaN values and values outside of the edges are not counted.
func Counts[T num.Number](x *tensor.Number[T], e *Edges) *tensor.Int64 {
	return CountsOf[int64](x, e)
}

// CountsOf is a version of [Counts] returning counts of the given type.
func CountsOf[C, T num.Number](x *tensor.Number[T], e *Edges) *tensor.Number[C] {
	counts := tensor.NewNumber[C](e.NumBins())
	addCounts(counts.Values, x, e)
	return counts
}

// CountsInto adds the histogram counts of x to the first NumBins values
// of counts, which are not reset, so that repeated calls accumulate
// a cumulative histogram. Returns an error wrapping
// [tensor.ErrShapeMismatch] if counts is too small, without changing it.
func CountsInto[C, T num.Number](counts *tensor.Number[C], x *tensor.Number[T], e *Edges) error {
	if counts.Len() < e.NumBins() {
		return fmt.Errorf("histogram.CountsInto: %w: %d counts for %d bins", tensor.ErrShapeMismatch, counts.Len(), e.NumBins())
	}
	addCounts(counts.Values, x, e)
	return nil
}

func addCounts[C, T num.Number](counts []C, x *tensor.Number[T], e *Edges) {
	for _, v := range x.Values {
		if b := e.Bin(float64(v)); b >= 0 {
			counts[b]++
		}
	}
}

// Counts2D returns a 2D histogram of the x, y pairs, which must have the
// same number of values, with the counts in each bin of the grid of
// xe by ye edges. The result has shape (ye.NumBins(), xe.NumBins()),
// so rows are y bins and columns are x bins. Pairs where either value
// is NaN or outside of its edges are not counted.
func Counts2D[T, U num.Number](x *tensor.Number[T], y *tensor.Number[U], xe, ye *Edges) (*tensor.Int64, error) {
	counts := tensor.NewInt64(ye.NumBins(), xe.NumBins())
	if err := Counts2DInto(counts, x, y, xe, ye); err != nil {
		return nil, err
	}
	return counts, nil
}

// Counts2DInto adds the 2D histogram counts of the x, y pairs, as in
// [Counts2D], to the first ye.NumBins() rows and xe.NumBins() columns of
// the 2D counts tensor. Counts are not reset, so that repeated calls
// accumulate. Returns an error wrapping [tensor.ErrShapeMismatch], without
// changing counts, if x and y differ in length or counts is too small.
func Counts2DInto[C, T, U num.Number](counts *tensor.Number[C], x *tensor.Number[T], y *tensor.Number[U], xe, ye *Edges) error {
	fn := "histogram.Counts2DInto"
	if err := tensor.MustBeSameLen(x, y); err != nil {
		return fmt.Errorf("%s: %w", fn, err)
	}
	nx, ny := xe.NumBins(), ye.NumBins()
	if counts.NumDims() != 2 {
		return fmt.Errorf("%s: %w: counts must be 2D, have shape %v", fn, tensor.ErrShapeMismatch, counts.ShapeSizes())
	}
	if err := checkGrid(fn, "counts", counts, ny, nx); err != nil {
		return err
	}
	_, cols := gridSize(counts)
	for i, v := range x.Values {
		xb := xe.Bin(float64(v))
		yb := ye.Bin(float64(y.Values[i]))
		if xb < 0 || yb < 0 {
			continue
		}
		counts.Values[yb*cols+xb]++
	}
	return nil
}
