// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"reflect"
	"unsafe"

	"cogentcore.org/nanstat/base/slicesx"
)

// Base is the base Tensor implementation for given type:
// a dense n-dimensional array of values in row-major order.
type Base[T any] struct {

	// shape contains the N-dimensional shape and indexing functionality.
	shape Shape

	// Values is a flat 1D slice of the underlying data.
	Values []T
}

// Shape returns a pointer to the shape that fully parametrizes the tensor shape.
func (tsr *Base[T]) Shape() *Shape { return &tsr.shape }

// ShapeSizes returns the sizes of each dimension as a slice of ints.
func (tsr *Base[T]) ShapeSizes() []int { return tsr.shape.Sizes }

// SetShapeSizes sets the dimension sizes of the tensor, and resizes
// backing storage appropriately, retaining all existing data that fits.
// This is the only way the shape of a tensor can change.
func (tsr *Base[T]) SetShapeSizes(sizes ...int) {
	tsr.shape.SetShapeSizes(sizes...)
	tsr.Values = slicesx.SetLength(tsr.Values, tsr.shape.Len())
}

// Len returns the number of elements in the tensor (product of shape dimensions).
func (tsr *Base[T]) Len() int { return tsr.shape.Len() }

// NumDims returns the total number of dimensions.
func (tsr *Base[T]) NumDims() int { return tsr.shape.NumDims() }

// DimSize returns size of given dimension.
func (tsr *Base[T]) DimSize(dim int) int { return tsr.shape.DimSize(dim) }

// DataType returns the type of the data elements in the tensor.
func (tsr *Base[T]) DataType() reflect.Kind {
	var v T
	return reflect.TypeOf(v).Kind()
}

// Sizeof returns the number of bytes contained in the Values of this tensor.
func (tsr *Base[T]) Sizeof() int64 {
	var v T
	return int64(unsafe.Sizeof(v)) * int64(tsr.Len())
}

// Value returns value at given tensor index.
func (tsr *Base[T]) Value(i ...int) T { return tsr.Values[tsr.shape.IndexTo1D(i...)] }

// Value1D returns value at given 1D (flat) tensor index.
func (tsr *Base[T]) Value1D(i int) T { return tsr.Values[i] }

// Set sets the value at given tensor index.
func (tsr *Base[T]) Set(val T, i ...int) { tsr.Values[tsr.shape.IndexTo1D(i...)] = val }

// Set1D sets the value at given 1D (flat) tensor index.
func (tsr *Base[T]) Set1D(val T, i int) { tsr.Values[i] = val }

// Label returns a short summary description of the tensor.
func (tsr *Base[T]) Label() string {
	return fmt.Sprintf("Tensor: %s", tsr.shape.String())
}
