// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metric

import (
	"fmt"

	"cogentcore.org/nanstat/base/num"
	"cogentcore.org/nanstat/tensor"
	"cogentcore.org/nanstat/tensor/stats/stats"
)

// Covariance returns the covariance between a and b, which must have
// the same shape, over each slice defined by the [stats.Option]s
// (all elements by default). Only positions where both a and b are
// non-NaN are included, and the means are taken over those same positions.
// Bessel's correction is applied unless [stats.Population] is given,
// so the result is NaN for fewer than 2 joint values.
func Covariance[T, U num.Number](a *tensor.Number[T], b *tensor.Number[U], opts ...stats.Option) (*tensor.Float64, error) {
	o := stats.NewOptions(opts...)
	rd, err := pairReduction("metric.Covariance", a, b, o)
	if err != nil {
		return nil, err
	}
	return stats.VectorizeOut64(rd, 6, func(i int) float64 {
		offs := rd.Offsets(i, nil)
		m := PairMoments(a.Values, b.Values, offs, offs)
		return m.Covariance(o.Population)
	}), nil
}

// Correlation returns the Pearson correlation between a and b, which
// must have the same shape, over each slice defined by the [stats.Option]s
// (all elements by default). It equals Covariance(a, b) / (Std(a) * Std(b)),
// where all three are computed over the positions where both a and b are
// non-NaN. The result is NaN for fewer than 2 joint values.
func Correlation[T, U num.Number](a *tensor.Number[T], b *tensor.Number[U], opts ...stats.Option) (*tensor.Float64, error) {
	o := stats.NewOptions(opts...)
	rd, err := pairReduction("metric.Correlation", a, b, o)
	if err != nil {
		return nil, err
	}
	return stats.VectorizeOut64(rd, 8, func(i int) float64 {
		offs := rd.Offsets(i, nil)
		m := PairMoments(a.Values, b.Values, offs, offs)
		return m.Correlation()
	}), nil
}

func pairReduction[T, U num.Number](fn string, a *tensor.Number[T], b *tensor.Number[U], o *stats.Options) (*tensor.Reduction, error) {
	if err := tensor.MustBeSameShape(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return o.Reduction(a.Shape())
}
