// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
)

// Tensor is the interface for n-dimensional tensors.
// Per C / Go / Python conventions, indexes are Row-Major, ordered from
// outer to inner left-to-right, so the inner-most is right-most.
// It is implemented by the [Number] generic type specialized
// by different concrete types, and by [Bool] for masks.
// For float32 and float64 values, use NaN to indicate missing values.
// All of the data analysis packages skip NaNs.
type Tensor interface {
	fmt.Stringer

	// Label returns a short summary description of the tensor.
	Label() string

	// Shape returns a pointer to the Shape that fully parametrizes
	// the tensor shape.
	Shape() *Shape

	// ShapeSizes returns the sizes of each dimension as a slice of ints.
	ShapeSizes() []int

	// Len returns the number of elements in the tensor,
	// which is the product of all shape dimensions.
	Len() int

	// NumDims returns the total number of dimensions.
	NumDims() int

	// DimSize returns size of given dimension.
	DimSize(dim int) int

	// Float returns the value of given n-dimensional index (matching Shape) as a float64.
	Float(i ...int) float64

	// SetFloat sets the value of given n-dimensional index (matching Shape) as a float64.
	SetFloat(val float64, i ...int)

	// Float1D returns the value of given 1-dimensional index (0-Len()-1) as a float64.
	Float1D(i int) float64

	// SetFloat1D sets the value of given 1-dimensional index (0-Len()-1) as a float64.
	SetFloat1D(val float64, i int)
}

// SameShape returns true if the two tensors have identical shapes.
func SameShape(a, b Tensor) bool {
	return a.Shape().IsEqual(b.Shape())
}

// MustBeSameShape returns an [ErrShapeMismatch] error if the two
// tensors do not have the same shape.
func MustBeSameShape(a, b Tensor) error {
	if !SameShape(a, b) {
		return fmt.Errorf("%w: %v != %v", ErrShapeMismatch, a.ShapeSizes(), b.ShapeSizes())
	}
	return nil
}

// MustBeSameLen returns an [ErrShapeMismatch] error if the two
// tensors do not have the same number of elements.
func MustBeSameLen(a, b Tensor) error {
	if a.Len() != b.Len() {
		return fmt.Errorf("%w: length %d != %d", ErrShapeMismatch, a.Len(), b.Len())
	}
	return nil
}
