// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"cogentcore.org/nanstat/base/num"
	"cogentcore.org/nanstat/tensor"
)

// The reduction functions below compute a statistic over each slice of the
// input defined by the [Options] (all elements by default, see [Axes]),
// skipping NaN values, and return a new Float64 tensor with one value per
// slice, except for the counts, which are integers by default.
// They operate on any numeric element type, converting to float64.
// An invalid axis results in an error wrapping [tensor.ErrInvalidAxis].

// Count returns the number of non-NaN values, as an Int64 tensor.
func Count[T num.Number](in *tensor.Number[T], opts ...Option) (*tensor.Int64, error) {
	return CountOf[int64](in, opts...)
}

// CountOf returns the number of non-NaN values,
// as a tensor with element type C.
func CountOf[C, T num.Number](in *tensor.Number[T], opts ...Option) (*tensor.Number[C], error) {
	rd, err := NewOptions(opts...).Reduction(in.Shape())
	if err != nil {
		return nil, err
	}
	out := tensor.NewNumberShape[C](&rd.OutShape)
	tensor.VectorizeThreaded(rd.SliceLen(), rd.NumSlices(), func(i int) {
		out.Values[i] = C(CountVecFunc(rd, in.Values, i))
	})
	return out, nil
}

// Sum returns the sum of non-NaN values, which is 0 when there are none.
func Sum[T num.Number](in *tensor.Number[T], opts ...Option) (*tensor.Float64, error) {
	rd, err := NewOptions(opts...).Reduction(in.Shape())
	if err != nil {
		return nil, err
	}
	return VectorizeOut64(rd, 1, func(i int) float64 {
		return SumVecFunc(rd, in.Values, i)
	}), nil
}

// Mean returns the mean of non-NaN values, NaN when there are none.
func Mean[T num.Number](in *tensor.Number[T], opts ...Option) (*tensor.Float64, error) {
	rd, err := NewOptions(opts...).Reduction(in.Shape())
	if err != nil {
		return nil, err
	}
	return VectorizeOut64(rd, 2, func(i int) float64 {
		return MeanVecFunc(rd, in.Values, i)
	}), nil
}

// Var returns the variance of non-NaN values, computed in two passes
// (mean, then squared deviations). Bessel's correction is applied
// unless the [Population] option is given, so the result is NaN
// when there are fewer than 2 values (fewer than 1 for population).
// Precomputed means may be passed with [WithMean].
func Var[T num.Number](in *tensor.Number[T], opts ...Option) (*tensor.Float64, error) {
	o := NewOptions(opts...)
	rd, err := o.Reduction(in.Shape())
	if err != nil {
		return nil, err
	}
	if o.Mean != nil && o.Mean.Len() != rd.NumSlices() {
		return nil, fmt.Errorf("stats.Var: %w: %d means for %d slices", tensor.ErrShapeMismatch, o.Mean.Len(), rd.NumSlices())
	}
	return VectorizeOut64(rd, 5, func(i int) float64 {
		mean := math.NaN()
		if o.Mean != nil {
			mean = o.Mean.Values[i]
		}
		return VarVecFunc(rd, in.Values, i, mean, o.Population)
	}), nil
}

// Std returns the standard deviation of non-NaN values,
// which is the square root of [Var], with the same options.
func Std[T num.Number](in *tensor.Number[T], opts ...Option) (*tensor.Float64, error) {
	out, err := Var(in, opts...)
	if err != nil {
		return nil, err
	}
	for i, v := range out.Values {
		out.Values[i] = math.Sqrt(v)
	}
	return out, nil
}

// Min returns the smallest non-NaN value, NaN when there are none.
func Min[T num.Number](in *tensor.Number[T], opts ...Option) (*tensor.Float64, error) {
	rd, err := NewOptions(opts...).Reduction(in.Shape())
	if err != nil {
		return nil, err
	}
	return VectorizeOut64(rd, 1, func(i int) float64 {
		mn, n := VecFunc(rd, in.Values, i, math.Inf(1), math.Min)
		if n == 0 {
			return math.NaN()
		}
		return mn
	}), nil
}

// Max returns the largest non-NaN value, NaN when there are none.
func Max[T num.Number](in *tensor.Number[T], opts ...Option) (*tensor.Float64, error) {
	rd, err := NewOptions(opts...).Reduction(in.Shape())
	if err != nil {
		return nil, err
	}
	return VectorizeOut64(rd, 1, func(i int) float64 {
		mx, n := VecFunc(rd, in.Values, i, math.Inf(-1), math.Max)
		if n == 0 {
			return math.NaN()
		}
		return mx
	}), nil
}

// Range returns the difference between the largest and smallest
// non-NaN values, NaN when there are none.
func Range[T num.Number](in *tensor.Number[T], opts ...Option) (*tensor.Float64, error) {
	rd, err := NewOptions(opts...).Reduction(in.Shape())
	if err != nil {
		return nil, err
	}
	return VectorizeOut64(rd, 2, func(i int) float64 {
		return ExtremaVecFunc(rd, in.Values, i).Range()
	}), nil
}

// Extrema returns the smallest and largest non-NaN values in one pass,
// both NaN when there are none.
func Extrema[T num.Number](in *tensor.Number[T], opts ...Option) (mins, maxs *tensor.Float64, err error) {
	rd, err := NewOptions(opts...).Reduction(in.Shape())
	if err != nil {
		return nil, nil, err
	}
	mins, maxs = rd.NewOut(), rd.NewOut()
	tensor.VectorizeThreaded(2*rd.SliceLen(), rd.NumSlices(), func(i int) {
		mm := ExtremaVecFunc(rd, in.Values, i).OrNaN()
		mins.Values[i], maxs.Values[i] = mm.Min, mm.Max
	})
	return mins, maxs, nil
}

// AAD returns the mean absolute deviation from the mean of non-NaN
// values, NaN when there are none. For a normal distribution,
// the standard deviation is about 1.253 * AAD.
func AAD[T num.Number](in *tensor.Number[T], opts ...Option) (*tensor.Float64, error) {
	rd, err := NewOptions(opts...).Reduction(in.Shape())
	if err != nil {
		return nil, err
	}
	return VectorizeOut64(rd, 4, func(i int) float64 {
		return AADVecFunc(rd, in.Values, i)
	}), nil
}
