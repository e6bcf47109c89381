// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import "cogentcore.org/nanstat/base/num"

// Bool is a tensor of bool values, used for masks.
type Bool struct {
	Base[bool]
}

// NewBool returns a new n-dimensional tensor of bool values
// with the given sizes per dimension (shape).
func NewBool(sizes ...int) *Bool {
	tsr := &Bool{}
	tsr.SetShapeSizes(sizes...)
	return tsr
}

// NewBoolShape returns a new n-dimensional tensor of bool values
// using given shape.
func NewBoolShape(shape *Shape) *Bool {
	tsr := &Bool{}
	tsr.shape.CopyFrom(shape)
	tsr.Values = make([]bool, tsr.Len())
	return tsr
}

// String satisfies the fmt.Stringer interface for string of tensor data.
func (tsr *Bool) String() string { return Sprintf("", tsr, 0) }

func (tsr *Bool) Float(i ...int) float64 {
	return num.FromBool[float64](tsr.Values[tsr.shape.IndexTo1D(i...)])
}

func (tsr *Bool) SetFloat(val float64, i ...int) {
	tsr.Values[tsr.shape.IndexTo1D(i...)] = val != 0
}

func (tsr *Bool) Float1D(i int) float64 {
	return num.FromBool[float64](tsr.Values[i])
}

func (tsr *Bool) SetFloat1D(val float64, i int) {
	tsr.Values[i] = val != 0
}

// CountTrue returns the number of true values.
func (tsr *Bool) CountTrue() int {
	n := 0
	for _, v := range tsr.Values {
		if v {
			n++
		}
	}
	return n
}
