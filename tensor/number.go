// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"slices"

	"cogentcore.org/nanstat/base/num"
)

// Number is a tensor of numerical values.
// For float32 and float64 values, use NaN to indicate missing values.
// All of the stats, histogram and tmath packages skip NaNs.
type Number[T num.Number] struct {
	Base[T]
}

// Float64 is an alias for Number[float64].
type Float64 = Number[float64]

// Float32 is an alias for Number[float32].
type Float32 = Number[float32]

// Int is an alias for Number[int].
type Int = Number[int]

// Int64 is an alias for Number[int64].
type Int64 = Number[int64]

// Int32 is an alias for Number[int32].
type Int32 = Number[int32]

// NewFloat64 returns a new [Float64] tensor
// with the given sizes per dimension (shape).
func NewFloat64(sizes ...int) *Float64 {
	return NewNumber[float64](sizes...)
}

// NewFloat32 returns a new [Float32] tensor
// with the given sizes per dimension (shape).
func NewFloat32(sizes ...int) *Float32 {
	return NewNumber[float32](sizes...)
}

// NewInt returns a new Int tensor
// with the given sizes per dimension (shape).
func NewInt(sizes ...int) *Int {
	return NewNumber[int](sizes...)
}

// NewInt64 returns a new Int64 tensor
// with the given sizes per dimension (shape).
func NewInt64(sizes ...int) *Int64 {
	return NewNumber[int64](sizes...)
}

// NewNumber returns a new n-dimensional tensor of numerical values
// with the given sizes per dimension (shape).
func NewNumber[T num.Number](sizes ...int) *Number[T] {
	tsr := &Number[T]{}
	tsr.SetShapeSizes(sizes...)
	return tsr
}

// NewNumberShape returns a new n-dimensional tensor of numerical values
// using given shape.
func NewNumberShape[T num.Number](shape *Shape) *Number[T] {
	tsr := &Number[T]{}
	tsr.shape.CopyFrom(shape)
	tsr.Values = make([]T, tsr.Len())
	return tsr
}

// NewNumberFromValues returns a new 1-dimensional tensor of given value type
// initialized directly from the given slice values, which are not copied.
// The resulting Tensor thus "wraps" the given values.
func NewNumberFromValues[T num.Number](vals ...T) *Number[T] {
	n := len(vals)
	tsr := &Number[T]{}
	tsr.Values = vals
	tsr.SetShapeSizes(n)
	return tsr
}

// NewFloat64FromValues returns a new 1-dimensional tensor of float64
// wrapping the given values, which are not copied.
func NewFloat64FromValues(vals ...float64) *Float64 {
	return NewNumberFromValues(vals...)
}

// NewFloat64Scalar is a convenience method for a Tensor
// representation of a single float64 scalar value,
// which has no dimensions.
func NewFloat64Scalar(val float64) *Float64 {
	tsr := NewFloat64()
	tsr.Values[0] = val
	return tsr
}

// String satisfies the fmt.Stringer interface for string of tensor data.
func (tsr *Number[T]) String() string { return Sprintf("", tsr, 0) }

// IsFloat returns true if the element type can represent NaN.
func (tsr *Number[T]) IsFloat() bool { return num.IsFloat[T]() }

/////////////////////  Floats

func (tsr *Number[T]) Float(i ...int) float64 {
	return float64(tsr.Values[tsr.shape.IndexTo1D(i...)])
}

func (tsr *Number[T]) SetFloat(val float64, i ...int) {
	tsr.Values[tsr.shape.IndexTo1D(i...)] = T(val)
}

func (tsr *Number[T]) Float1D(i int) float64 {
	return float64(tsr.Values[i])
}

func (tsr *Number[T]) SetFloat1D(val float64, i int) {
	tsr.Values[i] = T(val)
}

/////////////////////  Ints

func (tsr *Number[T]) Int(i ...int) int {
	return int(tsr.Values[tsr.shape.IndexTo1D(i...)])
}

func (tsr *Number[T]) SetInt(val int, i ...int) {
	tsr.Values[tsr.shape.IndexTo1D(i...)] = T(val)
}

func (tsr *Number[T]) Int1D(i int) int {
	return int(tsr.Values[i])
}

func (tsr *Number[T]) SetInt1D(val int, i int) {
	tsr.Values[i] = T(val)
}

// SetZeros is simple convenience function initialize all values to 0
func (tsr *Number[T]) SetZeros() {
	clear(tsr.Values)
}

// Fill sets all values to given value.
func (tsr *Number[T]) Fill(val T) {
	for i := range tsr.Values {
		tsr.Values[i] = val
	}
}

// Clone clones this tensor, creating a duplicate copy of itself with its
// own separate memory representation of all the values.
func (tsr *Number[T]) Clone() *Number[T] {
	csr := &Number[T]{}
	csr.shape.CopyFrom(&tsr.shape)
	csr.Values = slices.Clone(tsr.Values)
	return csr
}

// CopyFrom copies all avail values from other tensor into this tensor,
// going through float64 when the other tensor is of a different type.
func (tsr *Number[T]) CopyFrom(frm Tensor) {
	if fsm, ok := frm.(*Number[T]); ok {
		copy(tsr.Values, fsm.Values)
		return
	}
	sz := min(tsr.Len(), frm.Len())
	for i := range sz {
		tsr.Values[i] = T(frm.Float1D(i))
	}
}

// Range returns the min, max (and associated indexes, -1 = no values) for the tensor.
// NaN values are skipped.
func (tsr *Number[T]) Range() (min, max float64, minIndex, maxIndex int) {
	minIndex = -1
	maxIndex = -1
	for j, vl := range tsr.Values {
		if num.IsNaN(vl) {
			continue
		}
		fv := float64(vl)
		if fv < min || minIndex < 0 {
			min = fv
			minIndex = j
		}
		if fv > max || maxIndex < 0 {
			max = fv
			maxIndex = j
		}
	}
	return
}
