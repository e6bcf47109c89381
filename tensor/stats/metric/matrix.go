// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metric

import (
	"fmt"

	"cogentcore.org/nanstat/base/num"
	"cogentcore.org/nanstat/tensor"
	"cogentcore.org/nanstat/tensor/stats/stats"
	"gonum.org/v1/gonum/mat"
)

// CovarianceMatrix returns the vars x vars square covariance matrix of
// the 2D input tensor, where the given axis holds the observations and
// the other axis the variables: axis 0 means each column is a variable.
// Each element is the [Covariance] of a pair of variables over the
// observations where both are non-NaN, so different elements may be
// computed over different observations. Bessel's correction is applied
// unless [stats.Population] is given (other options are ignored).
// The result can be converted with [SymDense] for eigen decomposition.
func CovarianceMatrix[T num.Number](in *tensor.Number[T], axis int, opts ...stats.Option) (*tensor.Float64, error) {
	o := stats.NewOptions(opts...)
	return pairMatrix("metric.CovarianceMatrix", in, axis, func(m *Moments) float64 {
		return m.Covariance(o.Population)
	})
}

// CorrelationMatrix returns the vars x vars square Pearson correlation
// matrix of the 2D input tensor, where the given axis holds the
// observations, as in [CovarianceMatrix]. Use this instead of the
// covariance when variables have very different scales.
func CorrelationMatrix[T num.Number](in *tensor.Number[T], axis int) (*tensor.Float64, error) {
	return pairMatrix("metric.CorrelationMatrix", in, axis, func(m *Moments) float64 {
		return m.Correlation()
	})
}

// pairMatrix computes fun on the [Moments] of each pair of variables,
// for the lower triangular portion including the diagonal, and copies
// the results to the upper triangular region.
func pairMatrix[T num.Number](fn string, in *tensor.Number[T], axis int, fun func(m *Moments) float64) (*tensor.Float64, error) {
	if in.NumDims() != 2 {
		return nil, fmt.Errorf("%s: %w: need a 2D tensor, have shape %v", fn, tensor.ErrShapeMismatch, in.ShapeSizes())
	}
	if axis < 0 || axis > 1 {
		return nil, fmt.Errorf("%s: %w: observation axis %d must be 0 or 1", fn, tensor.ErrInvalidAxis, axis)
	}
	// each variable is a slice over the observation axis.
	rd, err := in.Shape().Reduce(tensor.Axes(axis), true)
	if err != nil {
		return nil, err
	}
	nv := rd.NumSlices()
	offs := make([][]int, nv)
	for v := range nv {
		offs[v] = rd.Offsets(v, nil)
	}
	out := tensor.NewFloat64(nv, nv)
	coords := TriangularLIndicies(nv)
	tensor.VectorizeThreaded(6*rd.SliceLen(), len(coords), func(idx int) {
		c := coords[idx]
		m := PairMoments(in.Values, in.Values, offs[c.X], offs[c.Y])
		out.Set(fun(&m), c.X, c.Y)
	})
	for _, c := range coords { // copy to upper
		if c.X == c.Y { // exclude diag
			continue
		}
		out.Set(out.Value(c.X, c.Y), c.Y, c.X)
	}
	return out, nil
}

// SymDense returns the given square 2D tensor as a gonum [mat.SymDense],
// for use in eigen decomposition and other linear algebra.
// Only the lower triangle is used. Returns an error wrapping
// [tensor.ErrShapeMismatch] if the tensor is not square.
func SymDense(in *tensor.Float64) (*mat.SymDense, error) {
	if in.NumDims() != 2 || in.DimSize(0) != in.DimSize(1) {
		return nil, fmt.Errorf("metric.SymDense: %w: need a square matrix, have shape %v", tensor.ErrShapeMismatch, in.ShapeSizes())
	}
	n := in.DimSize(0)
	sd := mat.NewSymDense(n, nil)
	for r := range n {
		for c := range r + 1 {
			sd.SetSym(r, c, in.Value(r, c))
		}
	}
	return sd, nil
}

////////////////////////////////////////////
// 	Triangular square matrix functions

// Coord is a row (X), column (Y) index into a matrix.
type Coord struct {
	X, Y int
}

// TriangularN returns the number of elements in the triangular region
// of a square matrix of given size, where the triangle includes the
// n elements along the diagonal.
func TriangularN(n int) int {
	return n + (n*(n-1))/2
}

// TriangularLIndicies returns the list of r, c indexes (as X, Y coordinates)
// for the lower triangular portion of a square matrix of size n,
// including the diagonal.
func TriangularLIndicies(n int) []Coord {
	coords := make([]Coord, 0, TriangularN(n))
	for r := range n {
		for c := range r + 1 {
			coords = append(coords, Coord{X: r, Y: c})
		}
	}
	return coords
}
