// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tmath

import (
	"fmt"

	"cogentcore.org/nanstat/base/num"
	"cogentcore.org/nanstat/tensor"
)

// NanMax returns the larger of a and b, or the other one if either is NaN.
func NanMax[T num.Number](a, b T) T {
	switch {
	case num.IsNaN(a):
		return b
	case num.IsNaN(b):
		return a
	}
	return max(a, b)
}

// NanMin returns the smaller of a and b, or the other one if either is NaN.
func NanMin[T num.Number](a, b T) T {
	switch {
	case num.IsNaN(a):
		return b
	case num.IsNaN(b):
		return a
	}
	return min(a, b)
}

// NanMaxOut returns the elementwise [NanMax] of two tensors of the same shape.
func NanMaxOut[T num.Number](a, b *tensor.Number[T]) (*tensor.Number[T], error) {
	return binaryOut("tmath.NanMaxOut", a, b, NanMax[T])
}

// NanMinOut returns the elementwise [NanMin] of two tensors of the same shape.
func NanMinOut[T num.Number](a, b *tensor.Number[T]) (*tensor.Number[T], error) {
	return binaryOut("tmath.NanMinOut", a, b, NanMin[T])
}

// NanAdd returns the elementwise sum of two tensors of the same shape,
// treating NaN as 0, so that two NaNs add to 0.
func NanAdd[T num.Number](a, b *tensor.Number[T]) (*tensor.Number[T], error) {
	return binaryOut("tmath.NanAdd", a, b, func(x, y T) T {
		if num.IsNaN(x) {
			x = 0
		}
		if num.IsNaN(y) {
			y = 0
		}
		return x + y
	})
}

// NanAddInto adds the non-NaN values of src to the corresponding values of
// dst, which must have the same shape. NaN values of src are skipped, so
// they leave dst unchanged. Returns an error wrapping
// [tensor.ErrShapeMismatch] if the shapes differ, leaving dst unchanged.
func NanAddInto[T, U num.Number](dst *tensor.Number[T], src *tensor.Number[U]) error {
	if err := tensor.MustBeSameShape(dst, src); err != nil {
		return fmt.Errorf("tmath.NanAddInto: %w", err)
	}
	tensor.VectorizeThreaded(1, len(dst.Values), func(i int) {
		if v := src.Values[i]; !num.IsNaN(v) {
			dst.Values[i] += T(v)
		}
	})
	return nil
}

func binaryOut[T num.Number](fn string, a, b *tensor.Number[T], fun func(x, y T) T) (*tensor.Number[T], error) {
	if err := tensor.MustBeSameShape(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	out := tensor.NewNumberShape[T](a.Shape())
	tensor.VectorizeThreaded(1, len(out.Values), func(i int) {
		out.Values[i] = fun(a.Values[i], b.Values[i])
	})
	return out, nil
}
