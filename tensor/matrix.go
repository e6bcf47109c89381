// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"

	"cogentcore.org/nanstat/base/errors"
	"cogentcore.org/nanstat/base/num"
	"gonum.org/v1/gonum/mat"
)

// Dims is the gonum/mat.Matrix interface method for returning the dimensionality of the
// 2D Matrix.  Assumes Row-major ordering and logs an error if NumDims < 2.
func (tsr *Number[T]) Dims() (r, c int) {
	nd := tsr.NumDims()
	if nd < 2 {
		errors.Log(fmt.Errorf("tensor.Dims: gonum Matrix call made on Tensor with dims < 2: %v", tsr.shape.Sizes))
		return 0, 0
	}
	return tsr.shape.DimSize(nd - 2), tsr.shape.DimSize(nd - 1)
}

// At is the gonum/mat.Matrix interface method for returning 2D matrix element at given
// row, column index.  Assumes Row-major ordering and logs an error if NumDims < 2.
func (tsr *Number[T]) At(i, j int) float64 {
	nd := tsr.NumDims()
	if nd < 2 {
		errors.Log(fmt.Errorf("tensor.At: gonum Matrix call made on Tensor with dims < 2: %v", tsr.shape.Sizes))
		return 0
	}
	if nd == 2 {
		return tsr.Float(i, j)
	}
	nix := make([]int, nd)
	nix[nd-2] = i
	nix[nd-1] = j
	return tsr.Float(nix...)
}

// T is the gonum/mat.Matrix transpose method.
// It performs an implicit transpose by returning the receiver inside a Transpose.
func (tsr *Number[E]) T() mat.Matrix {
	return mat.Transpose{Matrix: tsr}
}

// CopyDense copies a gonum mat.Matrix (e.g., a *mat.Dense or *mat.SymDense)
// into given Tensor, setting its shape to the matrix dimensions.
func CopyDense[T num.Number](to *Number[T], dm mat.Matrix) {
	nr, nc := dm.Dims()
	to.SetShapeSizes(nr, nc)
	idx := 0
	for ri := 0; ri < nr; ri++ {
		for ci := 0; ci < nc; ci++ {
			v := dm.At(ri, ci)
			to.SetFloat1D(v, idx)
			idx++
		}
	}
}
