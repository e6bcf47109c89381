// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"slices"
)

// Shape manages a tensor's shape information, including sizes
// and the row-major strides derived from them.
// Per C / Go / Python conventions, indexes are Row-Major, ordered from
// outer to inner left-to-right, so the inner-most is right-most.
// A Shape with no sizes is a scalar, holding exactly one value.
type Shape struct {

	// size per dimension.
	Sizes []int

	// offsets for each dimension.
	Strides []int `display:"-"`
}

// NewShape returns a new shape with given sizes.
func NewShape(sizes ...int) *Shape {
	sh := &Shape{}
	sh.SetShapeSizes(sizes...)
	return sh
}

// SetShapeSizes sets the shape sizes from list of ints.
// Row-major ordering is used by default.
func (sh *Shape) SetShapeSizes(sizes ...int) {
	sh.Sizes = slices.Clone(sizes)
	sh.Strides = RowMajorStrides(sh.Sizes...)
}

// CopyFrom copies the shape parameters from another Shape struct.
// copies the data so it is not accidentally subject to updates.
func (sh *Shape) CopyFrom(cp *Shape) {
	sh.Sizes = slices.Clone(cp.Sizes)
	sh.Strides = slices.Clone(cp.Strides)
}

// Len returns the total length of elements in the tensor
// (i.e., the product of the shape sizes).
func (sh *Shape) Len() int {
	ln := 1
	for _, v := range sh.Sizes {
		ln *= v
	}
	return ln
}

// NumDims returns the total number of dimensions.
func (sh *Shape) NumDims() int { return len(sh.Sizes) }

// DimSize returns the size of given dimension.
func (sh *Shape) DimSize(i int) int {
	return sh.Sizes[i]
}

// IsEqual returns true if this shape has the same sizes as other.
func (sh *Shape) IsEqual(oth *Shape) bool {
	return slices.Equal(sh.Sizes, oth.Sizes)
}

// IndexTo1D returns the flat 1D index from given n-dimensional indicies.
// No checking is done on the length or size of the index values relative
// to the shape of the tensor.
func (sh *Shape) IndexTo1D(index ...int) int {
	oned := 0
	for i, v := range index {
		oned += v * sh.Strides[i]
	}
	return oned
}

// IndexFrom1D returns the n-dimensional index from a "flat" 1D array index.
func (sh *Shape) IndexFrom1D(oned int) []int {
	nd := len(sh.Sizes)
	index := make([]int, nd)
	rem := oned
	for i := nd - 1; i >= 0; i-- {
		s := sh.Sizes[i]
		if s == 0 {
			return index
		}
		iv := rem % s
		rem /= s
		index[i] = iv
	}
	return index
}

// String satisfies the fmt.Stringer interface
func (sh *Shape) String() string {
	return fmt.Sprintf("%v", sh.Sizes)
}

// RowMajorStrides returns strides for sizes where the first dimension is outermost
// and subsequent dimensions are progressively inner.
func RowMajorStrides(sizes ...int) []int {
	if len(sizes) == 0 {
		return nil
	}
	rem := int(1)
	for _, v := range sizes {
		rem *= v
	}

	if rem == 0 {
		strides := make([]int, len(sizes))
		for i := range strides {
			strides[i] = rem
		}
		return strides
	}

	strides := make([]int, len(sizes))
	for i, v := range sizes {
		rem /= v
		strides[i] = rem
	}
	return strides
}
