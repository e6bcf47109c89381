// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tmath provides single-pass elementwise operations on
// tensors that treat NaN as a missing value: masking, NaN-tolerant
// max, min and addition, zero filling, and moving averages.
package tmath

import (
	"fmt"

	"cogentcore.org/nanstat/base/num"
	"cogentcore.org/nanstat/tensor"
)

// NanMask returns a mask of the same shape as a, which is true
// wherever a is not NaN.
func NanMask[T num.Number](a *tensor.Number[T]) *tensor.Bool {
	mask := tensor.NewBoolShape(a.Shape())
	nanMask(mask.Values, a.Values)
	return mask
}

// NanMaskInto fills the given mask, which must have the same shape
// as a, with true wherever a is not NaN. Returns an error wrapping
// [tensor.ErrShapeMismatch] if the shapes differ, leaving mask unchanged.
func NanMaskInto[T num.Number](mask *tensor.Bool, a *tensor.Number[T]) error {
	if err := tensor.MustBeSameShape(mask, a); err != nil {
		return fmt.Errorf("tmath.NanMaskInto: %w", err)
	}
	nanMask(mask.Values, a.Values)
	return nil
}

func nanMask[T num.Number](mask []bool, vals []T) {
	if !num.IsFloat[T]() {
		for i := range vals {
			mask[i] = true
		}
		return
	}
	for i, v := range vals {
		mask[i] = !num.IsNaN(v)
	}
}

// ZeroNaN replaces every NaN value of a with 0, in place,
// returning the number of values replaced. Integer tensors
// are returned unchanged without being scanned.
func ZeroNaN[T num.Number](a *tensor.Number[T]) int {
	if !num.IsFloat[T]() {
		return 0
	}
	n := 0
	for i, v := range a.Values {
		if num.IsNaN(v) {
			a.Values[i] = 0
			n++
		}
	}
	return n
}
