// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"slices"

	"cogentcore.org/nanstat/base/num"
	"cogentcore.org/nanstat/base/slicesx"
	"cogentcore.org/nanstat/tensor"
)

// SelectSortThreshold is the number of values below which selection
// sorts the values instead of partitioning them.
var SelectSortThreshold = 32

// PartitionNaN moves all NaN values to the end of vals, and returns
// the number of non-NaN values, which are then vals[:m].
// The relative order of the values is not preserved.
func PartitionNaN[T num.Number](vals []T) int {
	m := len(vals)
	for i := 0; i < m; {
		if num.IsNaN(vals[i]) {
			m--
			slicesx.Swap(vals, i, m)
			continue
		}
		i++
	}
	return m
}

// SelectRank reorders vals, which must not contain NaN, such that
// vals[k] is the value that would be at index k in sorted order,
// all values before k are <= vals[k], and all values after are >= it.
// It uses Hoare partitioning with a median-of-three pivot, and sorts
// ranges shorter than [SelectSortThreshold].
func SelectRank[T num.Number](vals []T, k int) {
	lo, hi := 0, len(vals)-1
	for hi > lo {
		if hi-lo < SelectSortThreshold {
			slices.Sort(vals[lo : hi+1])
			return
		}
		mid := lo + (hi-lo)/2
		if vals[mid] < vals[lo] {
			slicesx.Swap(vals, lo, mid)
		}
		if vals[hi] < vals[lo] {
			slicesx.Swap(vals, lo, hi)
		}
		if vals[hi] < vals[mid] {
			slicesx.Swap(vals, mid, hi)
		}
		pivot := vals[mid]
		i, j := lo, hi
		for i <= j {
			for vals[i] < pivot {
				i++
			}
			for vals[j] > pivot {
				j--
			}
			if i <= j {
				slicesx.Swap(vals, i, j)
				i++
				j--
			}
		}
		// vals[lo:j+1] <= pivot, vals[i:hi+1] >= pivot, and any values between equal pivot.
		switch {
		case k <= j:
			hi = j
		case k >= i:
			lo = i
		default:
			return
		}
	}
}

// Select reorders vals so that the non-NaN values come first, with the
// k-th smallest of them (0-based) at index k, and returns that value.
// It returns NaN if k is not less than the number of non-NaN values.
func Select[T num.Number](vals []T, k int) float64 {
	m := PartitionNaN(vals)
	if k < 0 || k >= m {
		return math.NaN()
	}
	SelectRank(vals[:m], k)
	return float64(vals[k])
}

// QuantileSlice returns the q-th quantile (0 <= q <= 1) of the non-NaN
// values in vals, linearly interpolating between the two values
// bracketing rank q*(m-1), where m is the number of non-NaN values.
// It reorders vals, leaving the non-NaN values first. It returns NaN
// if there are no non-NaN values, and an error wrapping
// [tensor.ErrInvalidQuantile] if q is out of range, before changing vals.
func QuantileSlice[T num.Number](vals []T, q float64) (float64, error) {
	if err := checkQuantile("stats.QuantileSlice", q); err != nil {
		return math.NaN(), err
	}
	return quantileSlice(vals, q), nil
}

// MedianSlice returns the median of the non-NaN values in vals,
// NaN if there are none. It reorders vals, as [QuantileSlice].
func MedianSlice[T num.Number](vals []T) float64 {
	return quantileSlice(vals, 0.5)
}

func quantileSlice[T num.Number](vals []T, q float64) float64 {
	m := PartitionNaN(vals)
	if m == 0 {
		return math.NaN()
	}
	v := vals[:m]
	r := q * float64(m-1)
	k := int(math.Floor(r))
	frac := r - float64(k)
	if m < SelectSortThreshold {
		slices.Sort(v)
	} else {
		SelectRank(v, k)
	}
	lower := float64(v[k])
	if frac == 0 {
		return lower
	}
	// after selection, the next value in order is the smallest above k.
	upper := float64(slices.Min(v[k+1:]))
	return lower + frac*(upper-lower)
}

func checkQuantile(fn string, q float64) error {
	if !(q >= 0 && q <= 1) {
		return fmt.Errorf("%s: %w: q=%g is not in [0,1]", fn, tensor.ErrInvalidQuantile, q)
	}
	return nil
}

func checkPercentile(fn string, p float64) error {
	if !(p >= 0 && p <= 100) {
		return fmt.Errorf("%s: %w: p=%g is not in [0,100]", fn, tensor.ErrInvalidQuantile, p)
	}
	return nil
}
