// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"cogentcore.org/nanstat/base/num"
	"cogentcore.org/nanstat/tensor"
)

// Standardize returns a Float64 copy of in rescaled to zero mean and
// unit variance within each slice: (x - Mean) / Std, using the
// Bessel-corrected standard deviation unless [Population] is given.
// NaN values remain NaN. The DropDims option has no effect.
func Standardize[T num.Number](in *tensor.Number[T], opts ...Option) (*tensor.Float64, error) {
	out := tensor.NewNumberShape[float64](in.Shape())
	out.CopyFrom(in)
	if err := StandardizeInPlace(out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// StandardizeInPlace is a version of [Standardize] that
// rescales the float values of in directly.
func StandardizeInPlace[T num.Float](in *tensor.Number[T], opts ...Option) error {
	o := NewOptions(opts...)
	rd, err := o.Reduction(in.Shape())
	if err != nil {
		return err
	}
	tensor.VectorizeThreaded(8*rd.SliceLen(), rd.NumSlices(), func(i int) {
		mean := MeanVecFunc(rd, in.Values, i)
		std := math.Sqrt(VarVecFunc(rd, in.Values, i, mean, o.Population))
		rd.Visit(i, func(off int) {
			in.Values[off] = T((float64(in.Values[off]) - mean) / std)
		})
	})
	return nil
}

// InPercentile returns a mask that is true for the values of in that
// fall strictly within the central p-th percentile (0 <= p <= 100) of
// their slice, i.e., strictly between the (50-p/2) and (50+p/2)
// percentiles. NaN values are never within it. Returns an error
// wrapping [tensor.ErrInvalidQuantile] for p outside [0,100].
func InPercentile[T num.Number](in *tensor.Number[T], p float64, opts ...Option) (*tensor.Bool, error) {
	if err := checkPercentile("stats.InPercentile", p); err != nil {
		return nil, err
	}
	o := NewOptions(opts...)
	tail := (100 - p) / 2
	lower, err := selectOut(in, o, false, func(vals []T) float64 {
		return quantileSlice(vals, tail/100)
	})
	if err != nil {
		return nil, err
	}
	upper, _ := selectOut(in, o, false, func(vals []T) float64 {
		return quantileSlice(vals, (100-tail)/100)
	})
	rd, _ := o.Reduction(in.Shape())
	mask := tensor.NewBoolShape(in.Shape())
	tensor.VectorizeThreaded(rd.SliceLen(), rd.NumSlices(), func(i int) {
		lo, hi := lower.Values[i], upper.Values[i]
		rd.Visit(i, func(off int) {
			v := float64(in.Values[off])
			mask.Values[off] = lo < v && v < hi
		})
	})
	return mask, nil
}
