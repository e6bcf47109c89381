// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tmath

import (
	"fmt"
	"math"

	"cogentcore.org/nanstat/base/num"
	"cogentcore.org/nanstat/tensor"
)

// OddWindow returns the window size actually used for a moving
// average of nominal size n: n if it is odd, otherwise n+1,
// and at least 1.
func OddWindow(n int) int {
	if n < 1 {
		return 1
	}
	return n | 1
}

// MovingAverage returns the centered moving average of the non-NaN values
// of x, spanning n values in 1D or n x n values in 2D, with the same shape
// as x. An even n is rounded up to the next odd number, so the window is
// symmetric. Windows are truncated at the edges, and a point whose
// window has no non-NaN values is NaN. Returns an error wrapping
// [tensor.ErrShapeMismatch] unless x is 1D or 2D.
func MovingAverage[T num.Number](x *tensor.Number[T], n int) (*tensor.Float64, error) {
	h := OddWindow(n) / 2
	switch x.NumDims() {
	case 1:
		return movingAverage(x, 1, x.Len(), h), nil
	case 2:
		return movingAverage(x, x.DimSize(0), x.DimSize(1), h), nil
	}
	return nil, fmt.Errorf("tmath.MovingAverage: %w: must be 1D or 2D, have shape %v", tensor.ErrShapeMismatch, x.ShapeSizes())
}

// movingAverage averages over the rows x cols grid with half-width h,
// which is applied to rows only if there are more than one.
func movingAverage[T num.Number](x *tensor.Number[T], rows, cols, h int) *tensor.Float64 {
	out := tensor.NewFloat64(x.ShapeSizes()...)
	hr := h
	if rows == 1 {
		hr = 0
	}
	flops := (2*hr + 1) * (2*h + 1)
	tensor.VectorizeThreaded(flops, len(out.Values), func(i int) {
		r, c := i/cols, i%cols
		sum, n := 0.0, 0
		for rr := max(0, r-hr); rr <= min(rows-1, r+hr); rr++ {
			row := x.Values[rr*cols : (rr+1)*cols]
			for _, v := range row[max(0, c-h):min(cols, c+h+1)] {
				if num.IsNaN(v) {
					continue
				}
				sum += float64(v)
				n++
			}
		}
		if n == 0 {
			out.Values[i] = math.NaN()
			return
		}
		out.Values[i] = sum / float64(n)
	})
	return out
}
