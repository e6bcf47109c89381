// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metric

import (
	"math"

	"cogentcore.org/nanstat/base/num"
	"cogentcore.org/nanstat/tensor/stats/stats"
)

// Moments holds the joint second moments of a pair of variables,
// computed over the positions where both are non-NaN.
type Moments struct {

	// N is the number of jointly valid pairs.
	N int

	// MeanA and MeanB are the means of each variable over the valid pairs.
	MeanA, MeanB float64

	// SumAB is the sum of the products of deviations from the means.
	SumAB float64

	// SumAA and SumBB are the sums of squared deviations from the means.
	SumAA, SumBB float64
}

// PairMoments computes the [Moments] of the values of a at offsets oa
// paired with the values of b at offsets ob, which must have the same length.
// A pair is included only when both values are non-NaN. The means are
// computed in a first pass, and the deviations in a second.
func PairMoments[T, U num.Number](a []T, b []U, oa, ob []int) Moments {
	var m Moments
	var sa, sb float64
	for k, off := range oa {
		va, vb := a[off], b[ob[k]]
		if num.IsNaN(va) || num.IsNaN(vb) {
			continue
		}
		sa += float64(va)
		sb += float64(vb)
		m.N++
	}
	if m.N == 0 {
		m.MeanA, m.MeanB = math.NaN(), math.NaN()
		return m
	}
	m.MeanA = sa / float64(m.N)
	m.MeanB = sb / float64(m.N)
	for k, off := range oa {
		va, vb := a[off], b[ob[k]]
		if num.IsNaN(va) || num.IsNaN(vb) {
			continue
		}
		da := float64(va) - m.MeanA
		db := float64(vb) - m.MeanB
		m.SumAB += da * db
		m.SumAA += da * da
		m.SumBB += db * db
	}
	return m
}

// Covariance returns the covariance, with Bessel's correction
// unless population is true. It is NaN if the denominator is not positive.
func (m *Moments) Covariance(population bool) float64 {
	return stats.Variance(m.SumAB, float64(m.N), population)
}

// Correlation returns the Pearson correlation coefficient,
// which is NaN for fewer than 2 pairs or a constant variable.
func (m *Moments) Correlation() float64 {
	if m.N < 2 {
		return math.NaN()
	}
	den := math.Sqrt(m.SumAA * m.SumBB)
	if den == 0 {
		return math.NaN()
	}
	return m.SumAB / den
}
