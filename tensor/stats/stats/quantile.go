// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"cogentcore.org/nanstat/base/num"
	"cogentcore.org/nanstat/tensor"
)

// selectOut calls fun on the values of each slice of in, returning a new
// Float64 tensor with one result per slice. If inPlace is false, fun is
// given a private copy of the slice values, leaving in unchanged.
// Otherwise fun may reorder the values of in within each slice:
// contiguous slices are passed directly, and strided ones are gathered,
// passed, and scattered back.
func selectOut[T num.Number](in *tensor.Number[T], o *Options, inPlace bool, fun func(vals []T) float64) (*tensor.Float64, error) {
	rd, err := o.Reduction(in.Shape())
	if err != nil {
		return nil, err
	}
	n := rd.SliceLen()
	contig := rd.Contiguous()
	return VectorizeOut64(rd, 4, func(i int) float64 {
		if inPlace && contig {
			return fun(in.Values[i*n : (i+1)*n])
		}
		buf, offs := Gather(rd, in.Values, i, make([]T, 0, n), nil)
		v := fun(buf)
		if inPlace {
			Scatter(in.Values, buf, offs)
		}
		return v
	}), nil
}

// Median returns the median of the non-NaN values in each slice of in,
// NaN when there are none. The input is not modified.
func Median[T num.Number](in *tensor.Number[T], opts ...Option) (*tensor.Float64, error) {
	return selectOut(in, NewOptions(opts...), false, func(vals []T) float64 {
		return quantileSlice(vals, 0.5)
	})
}

// MedianInPlace is a version of [Median] that partially sorts the
// values of in within each slice instead of copying them.
func MedianInPlace[T num.Number](in *tensor.Number[T], opts ...Option) (*tensor.Float64, error) {
	return selectOut(in, NewOptions(opts...), true, func(vals []T) float64 {
		return quantileSlice(vals, 0.5)
	})
}

// Quantile returns the q-th quantile (0 <= q <= 1) of the non-NaN values
// in each slice of in, interpolating linearly between the bracketing
// values, NaN when there are none. The input is not modified.
// Returns an error wrapping [tensor.ErrInvalidQuantile] for q outside [0,1].
func Quantile[T num.Number](in *tensor.Number[T], q float64, opts ...Option) (*tensor.Float64, error) {
	if err := checkQuantile("stats.Quantile", q); err != nil {
		return nil, err
	}
	return selectOut(in, NewOptions(opts...), false, func(vals []T) float64 {
		return quantileSlice(vals, q)
	})
}

// QuantileInPlace is a version of [Quantile] that partially sorts the
// values of in within each slice instead of copying them.
func QuantileInPlace[T num.Number](in *tensor.Number[T], q float64, opts ...Option) (*tensor.Float64, error) {
	if err := checkQuantile("stats.QuantileInPlace", q); err != nil {
		return nil, err
	}
	return selectOut(in, NewOptions(opts...), true, func(vals []T) float64 {
		return quantileSlice(vals, q)
	})
}

// Percentile returns the p-th percentile (0 <= p <= 100), which is the
// p/100 [Quantile]. The input is not modified.
func Percentile[T num.Number](in *tensor.Number[T], p float64, opts ...Option) (*tensor.Float64, error) {
	if err := checkPercentile("stats.Percentile", p); err != nil {
		return nil, err
	}
	return Quantile(in, p/100, opts...)
}

// PercentileInPlace is a version of [Percentile] that partially sorts the
// values of in within each slice instead of copying them.
func PercentileInPlace[T num.Number](in *tensor.Number[T], p float64, opts ...Option) (*tensor.Float64, error) {
	if err := checkPercentile("stats.PercentileInPlace", p); err != nil {
		return nil, err
	}
	return QuantileInPlace(in, p/100, opts...)
}

// MAD returns the median absolute deviation from the median of the
// non-NaN values in each slice of in, NaN when there are none.
// For a normal distribution, the standard deviation is about 1.4826 * MAD.
// The input is not modified.
func MAD[T num.Number](in *tensor.Number[T], opts ...Option) (*tensor.Float64, error) {
	return selectOut(in, NewOptions(opts...), false, madSlice[T])
}

// MADInPlace is a version of [MAD] that partially sorts the
// values of in within each slice instead of copying them.
func MADInPlace[T num.Number](in *tensor.Number[T], opts ...Option) (*tensor.Float64, error) {
	return selectOut(in, NewOptions(opts...), true, madSlice[T])
}

func madSlice[T num.Number](vals []T) float64 {
	med := quantileSlice(vals, 0.5)
	if math.IsNaN(med) {
		return med
	}
	// non-NaN values are now first.
	dev := make([]float64, 0, len(vals))
	for _, v := range vals {
		if num.IsNaN(v) {
			break
		}
		dev = append(dev, math.Abs(float64(v)-med))
	}
	return quantileSlice(dev, 0.5)
}
