// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"cogentcore.org/nanstat/base/num"
	"cogentcore.org/nanstat/tensor"
)

// Reduction returns the [tensor.Reduction] of the given shape
// according to the Axes and DropDims options.
func (o *Options) Reduction(sh *tensor.Shape) (*tensor.Reduction, error) {
	return sh.Reduce(o.Axes, o.DropDims)
}

// VectorizeOut64 is the general compute function for stats.
// It calls fun for each slice of the given reduction, writing the
// result into the corresponding element of a new Float64 output,
// which has the reduction output shape. Slices are computed in parallel
// when the total work, as the number of slice elements times flops,
// exceeds [tensor.ThreadingThreshold]. Each slice is computed
// sequentially by one goroutine, so results do not depend on threading.
func VectorizeOut64(rd *tensor.Reduction, flops int, fun func(i int) float64) *tensor.Float64 {
	out := rd.NewOut()
	tensor.VectorizeThreaded(flops*rd.SliceLen(), rd.NumSlices(), func(i int) {
		out.Values[i] = fun(i)
	})
	return out
}

// VecFunc folds fun over the non-NaN values of slice i of vals,
// in slice order, starting from ini. It returns the aggregate
// and the number of values that were folded.
func VecFunc[T num.Number](rd *tensor.Reduction, vals []T, i int, ini float64, fun func(val, agg float64) float64) (float64, int) {
	agg, n := ini, 0
	rd.Visit(i, func(off int) {
		v := vals[off]
		if num.IsNaN(v) {
			return
		}
		agg = fun(float64(v), agg)
		n++
	})
	return agg, n
}

// VecFunc2 folds fun over the pairs of values at the same positions of
// slice i of a and b, skipping any pair where either value is NaN.
// It returns the aggregate and the number of pairs that were folded.
func VecFunc2[T, U num.Number](rd *tensor.Reduction, a []T, b []U, i int, ini float64, fun func(va, vb, agg float64) float64) (float64, int) {
	agg, n := ini, 0
	rd.Visit(i, func(off int) {
		va, vb := a[off], b[off]
		if num.IsNaN(va) || num.IsNaN(vb) {
			return
		}
		agg = fun(float64(va), float64(vb), agg)
		n++
	})
	return agg, n
}

// Gather copies the values of slice i of vals into buf, which is
// resized as needed and returned, along with the offsets of the values
// in offs (also resized and returned).
func Gather[T num.Number](rd *tensor.Reduction, vals []T, i int, buf []T, offs []int) ([]T, []int) {
	offs = rd.Offsets(i, offs)
	buf = buf[:0]
	for _, off := range offs {
		buf = append(buf, vals[off])
	}
	return buf, offs
}

// Scatter copies buf back into vals at the given offsets,
// reversing a [Gather].
func Scatter[T num.Number](vals []T, buf []T, offs []int) {
	for j, off := range offs {
		vals[off] = buf[j]
	}
}
