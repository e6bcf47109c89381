// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"cogentcore.org/nanstat/base/num"
	"cogentcore.org/nanstat/math32/minmax"
	"cogentcore.org/nanstat/tensor"
)

// The VecFunc kernels below compute one statistic over slice i of vals
// for a given reduction, skipping NaNs. Every kernel returns NaN
// for a slice with no valid values, except for counts and sums.

// SumVecFunc returns the sum of the non-NaN values of slice i,
// which is 0 if there are none.
func SumVecFunc[T num.Number](rd *tensor.Reduction, vals []T, i int) float64 {
	s, _ := VecFunc(rd, vals, i, 0, func(val, agg float64) float64 {
		return agg + val
	})
	return s
}

// CountVecFunc returns the number of non-NaN values of slice i.
func CountVecFunc[T num.Number](rd *tensor.Reduction, vals []T, i int) int {
	n := 0
	rd.Visit(i, func(off int) {
		if !num.IsNaN(vals[off]) {
			n++
		}
	})
	return n
}

// MeanVecFunc returns the mean of the non-NaN values of slice i.
func MeanVecFunc[T num.Number](rd *tensor.Reduction, vals []T, i int) float64 {
	s, n := VecFunc(rd, vals, i, 0, func(val, agg float64) float64 {
		return agg + val
	})
	if n == 0 {
		return math.NaN()
	}
	return s / float64(n)
}

// VarVecFunc returns the variance of the non-NaN values of slice i
// about the given mean, computed in two passes when mean is NaN
// (the mean is then computed first).
func VarVecFunc[T num.Number](rd *tensor.Reduction, vals []T, i int, mean float64, population bool) float64 {
	if math.IsNaN(mean) {
		mean = MeanVecFunc(rd, vals, i)
	}
	ss, n := VecFunc(rd, vals, i, 0, func(val, agg float64) float64 {
		d := val - mean
		return agg + d*d
	})
	return Variance(ss, float64(n), population)
}

// Variance returns the variance given the sum of squared deviations ss
// of n values, with Bessel's correction unless population is true.
// It returns NaN when the denominator is not positive.
func Variance(ss, n float64, population bool) float64 {
	if !population {
		n--
	}
	if n <= 0 {
		return math.NaN()
	}
	return ss / n
}

// ExtremaVecFunc returns the min and max of the non-NaN values of slice i,
// as a [minmax.F64] that is not valid (Min > Max) when there are none.
func ExtremaVecFunc[T num.Number](rd *tensor.Reduction, vals []T, i int) minmax.F64 {
	mm := minmax.Empty()
	rd.Visit(i, func(off int) {
		v := vals[off]
		if num.IsNaN(v) {
			return
		}
		mm.Fit(float64(v))
	})
	return mm
}

// AADVecFunc returns the mean absolute deviation from the mean
// of the non-NaN values of slice i.
func AADVecFunc[T num.Number](rd *tensor.Reduction, vals []T, i int) float64 {
	mean := MeanVecFunc(rd, vals, i)
	if math.IsNaN(mean) {
		return mean
	}
	s, n := VecFunc(rd, vals, i, 0, func(val, agg float64) float64 {
		return agg + math.Abs(val-mean)
	})
	return s / float64(n)
}
