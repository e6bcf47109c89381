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

// WeightedMean returns the weighted mean of the values in each slice
// of in, with weights w of the same shape: sum(w*x) / sum(w).
// A value contributes only if both it and its weight are non-NaN.
// The result is NaN when no value contributes or the weights sum to 0.
func WeightedMean[T, W num.Number](in *tensor.Number[T], w *tensor.Number[W], opts ...Option) (*tensor.Float64, error) {
	rd, err := weightedReduction("stats.WeightedMean", in, w, opts...)
	if err != nil {
		return nil, err
	}
	return VectorizeOut64(rd, 4, func(i int) float64 {
		return weightedMeanVec(rd, in.Values, w.Values, i)
	}), nil
}

// WeightedVar returns the weighted variance of the values in each slice
// of in, with reliability weights w of the same shape:
// sum(w*(x-m)^2) / (V1 - V2/V1), where m is the weighted mean,
// V1 = sum(w) and V2 = sum(w^2). With the [Population] option,
// the denominator is V1. A value contributes only if both it and its
// weight are non-NaN. The result is NaN for a non-positive denominator.
func WeightedVar[T, W num.Number](in *tensor.Number[T], w *tensor.Number[W], opts ...Option) (*tensor.Float64, error) {
	o := NewOptions(opts...)
	rd, err := weightedReduction("stats.WeightedVar", in, w, opts...)
	if err != nil {
		return nil, err
	}
	return VectorizeOut64(rd, 8, func(i int) float64 {
		return weightedVarVec(rd, in.Values, w.Values, i, o.Population)
	}), nil
}

// WeightedStd returns the weighted standard deviation,
// the square root of [WeightedVar].
func WeightedStd[T, W num.Number](in *tensor.Number[T], w *tensor.Number[W], opts ...Option) (*tensor.Float64, error) {
	out, err := WeightedVar(in, w, opts...)
	if err != nil {
		return nil, err
	}
	for i, v := range out.Values {
		out.Values[i] = math.Sqrt(v)
	}
	return out, nil
}

func weightedReduction[T, W num.Number](fn string, in *tensor.Number[T], w *tensor.Number[W], opts ...Option) (*tensor.Reduction, error) {
	if err := tensor.MustBeSameShape(in, w); err != nil {
		return nil, fmt.Errorf("%s: weights: %w", fn, err)
	}
	return NewOptions(opts...).Reduction(in.Shape())
}

func weightedMeanVec[T, W num.Number](rd *tensor.Reduction, x []T, w []W, i int) float64 {
	var sw float64
	swx, _ := VecFunc2(rd, x, w, i, 0, func(vx, vw, agg float64) float64 {
		sw += vw
		return agg + vw*vx
	})
	if sw == 0 {
		return math.NaN()
	}
	return swx / sw
}

func weightedVarVec[T, W num.Number](rd *tensor.Reduction, x []T, w []W, i int, population bool) float64 {
	mean := weightedMeanVec(rd, x, w, i)
	if math.IsNaN(mean) {
		return mean
	}
	var v1, v2 float64
	ss, _ := VecFunc2(rd, x, w, i, 0, func(vx, vw, agg float64) float64 {
		v1 += vw
		v2 += vw * vw
		d := vx - mean
		return agg + vw*d*d
	})
	den := v1
	if !population {
		den = v1 - v2/v1
	}
	if den <= 0 {
		return math.NaN()
	}
	return ss / den
}
