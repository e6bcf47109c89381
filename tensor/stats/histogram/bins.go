// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histogram

import (
	"fmt"

	"cogentcore.org/nanstat/base/num"
	"cogentcore.org/nanstat/tensor"
)

// binIndexes returns the bin index of each value of x, in flat order,
// with -1 for values that are NaN or outside of the edges.
func binIndexes[T num.Number](x *tensor.Number[T], e *Edges) []int {
	ids := make([]int, len(x.Values))
	tensor.VectorizeThreaded(4, len(ids), func(i int) {
		ids[i] = e.Bin(float64(x.Values[i]))
	})
	return ids
}

// binIndexes2D returns the flat index yBin * nx + xBin of the 2D bin
// of each x, y pair, or -1 when either is excluded.
func binIndexes2D[T, U num.Number](x *tensor.Number[T], y *tensor.Number[U], xe, ye *Edges) []int {
	nx := xe.NumBins()
	ids := make([]int, len(x.Values))
	tensor.VectorizeThreaded(8, len(ids), func(i int) {
		xb := xe.Bin(float64(x.Values[i]))
		yb := ye.Bin(float64(y.Values[i]))
		if xb < 0 || yb < 0 {
			ids[i] = -1
			return
		}
		ids[i] = yb*nx + xb
	})
	return ids
}

// gridSize returns the rows and columns of the given output buffer,
// treating a 1D tensor as a single column.
func gridSize(t tensor.Tensor) (rows, cols int) {
	switch t.NumDims() {
	case 1:
		return t.Len(), 1
	case 2:
		return t.DimSize(0), t.DimSize(1)
	}
	return 0, 0
}

// checkGrid returns an error wrapping [tensor.ErrShapeMismatch]
// unless the buffer has at least the given rows and columns.
func checkGrid(fn, name string, t tensor.Tensor, rows, cols int) error {
	r, c := gridSize(t)
	if r < rows || c < cols {
		return fmt.Errorf("%s: %w: %s buffer of shape %v is smaller than %d x %d", fn, tensor.ErrShapeMismatch, name, t.ShapeSizes(), rows, cols)
	}
	return nil
}

// dependentCols returns the number of variables (columns) in y for n
// observations: 1 for a 1D y of length n, or k for a 2D y of shape (n, k).
func dependentCols(fn string, y tensor.Tensor, n int) (int, error) {
	switch {
	case y.NumDims() == 1 && y.Len() == n:
		return 1, nil
	case y.NumDims() == 2 && y.DimSize(0) == n:
		return y.DimSize(1), nil
	}
	return 0, fmt.Errorf("%s: %w: dependent variable of shape %v for %d observations", fn, tensor.ErrShapeMismatch, y.ShapeSizes(), n)
}

// copyGrid copies the rows x cols values of src into the top left
// of dst, which has dcols columns.
func copyGrid[S, D num.Number](dst []D, dcols int, src []S, rows, cols int) {
	for r := range rows {
		for c := range cols {
			dst[r*dcols+c] = D(src[r*cols+c])
		}
	}
}
