// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"math"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestTensorFloat64(t *testing.T) {
	tsr := NewFloat64(4, 2)
	assert.Equal(t, 8, tsr.Len())
	assert.Equal(t, true, tsr.IsFloat())
	assert.Equal(t, reflect.Float64, tsr.DataType())
	assert.Equal(t, int64(64), tsr.Sizeof())
	assert.Equal(t, []int{2, 1}, tsr.Shape().Strides)

	tsr.SetFloat(2.17, 2, 0)
	assert.Equal(t, 2.17, tsr.Float(2, 0))
	tsr.SetFloat1D(3.14, 5)
	assert.Equal(t, 3.14, tsr.Float(2, 1))
	assert.Equal(t, 2.17, tsr.Float1D(4))

	cln := tsr.Clone()
	assert.Equal(t, 3.14, cln.Float(2, 1))
	cln.SetZeros()
	assert.Equal(t, 0.0, cln.Float(2, 1))
	assert.Equal(t, 3.14, tsr.Float(2, 1))

	tsr.SetShapeSizes(2, 4)
	assert.Equal(t, 2.17, tsr.Float(1, 0))
	assert.Equal(t, 3.14, tsr.Float(1, 1))

	cln.CopyFrom(tsr)
	assert.Equal(t, 3.14, cln.Float1D(5))

	tsr.SetFloat1D(math.NaN(), 0)
	mn, mx, mi, xi := tsr.Range()
	assert.Equal(t, 0.0, mn)
	assert.Equal(t, 3.14, mx)
	assert.Equal(t, 1, mi)
	assert.Equal(t, 5, xi)
}

func TestTensorInt(t *testing.T) {
	tsr := NewInt(3)
	assert.Equal(t, false, tsr.IsFloat())
	tsr.SetInt1D(7, 2)
	assert.Equal(t, 7.0, tsr.Float1D(2))
	tsr.SetFloat(2.9, 0)
	assert.Equal(t, 2, tsr.Int(0))

	f32 := NewFloat32(2)
	f32.CopyFrom(NewFloat64FromValues(1.5, math.NaN()))
	assert.Equal(t, float32(1.5), f32.Values[0])
	assert.True(t, math.IsNaN(f32.Float1D(1)))
}

func TestScalar(t *testing.T) {
	sc := NewFloat64Scalar(3.5)
	assert.Equal(t, 0, sc.NumDims())
	assert.Equal(t, 1, sc.Len())
	assert.Equal(t, 3.5, sc.Float())
	assert.Equal(t, "3.5", sc.String())
}

func TestBool(t *testing.T) {
	tsr := NewBool(2, 2)
	tsr.Set(true, 1, 0)
	tsr.SetFloat1D(2, 3)
	assert.Equal(t, 1.0, tsr.Float(1, 0))
	assert.Equal(t, 0.0, tsr.Float1D(0))
	assert.Equal(t, 2, tsr.CountTrue())
}

func TestShape(t *testing.T) {
	sh := NewShape(2, 3, 4)
	assert.Equal(t, 24, sh.Len())
	assert.Equal(t, []int{12, 4, 1}, sh.Strides)
	assert.Equal(t, 23, sh.IndexTo1D(1, 2, 3))
	assert.Equal(t, []int{1, 2, 3}, sh.IndexFrom1D(23))
	assert.Equal(t, "[2 3 4]", sh.String())
	assert.True(t, sh.IsEqual(NewShape(2, 3, 4)))
	assert.False(t, sh.IsEqual(NewShape(2, 12)))
	assert.Equal(t, "Tensor: [2 3]", NewFloat64(2, 3).Label())

	err := MustBeSameShape(NewFloat64(2, 3), NewFloat64(3, 2))
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.NoError(t, MustBeSameLen(NewFloat64(2, 3), NewFloat64(3, 2)))
}

func TestReduceShapes(t *testing.T) {
	sh := NewShape(2, 3, 4)

	rd, err := sh.Reduce(All(), false)
	require.NoError(t, err)
	assert.Equal(t, 0, rd.OutShape.NumDims())
	assert.Equal(t, 1, rd.NumSlices())
	assert.Equal(t, 24, rd.SliceLen())
	assert.True(t, rd.Contiguous())

	rd, err = sh.Reduce(Axes(1), false)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 4}, rd.OutShape.Sizes)
	assert.Equal(t, 8, rd.NumSlices())
	assert.Equal(t, 3, rd.SliceLen())
	assert.False(t, rd.Contiguous())

	rd, err = sh.Reduce(Axes(1), true)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, rd.OutShape.Sizes)

	rd, err = sh.Reduce(Axes(2, 1), true)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, rd.OutShape.Sizes)
	assert.True(t, rd.Contiguous())

	rd, err = sh.Reduce(Axes(), false)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, rd.OutShape.Sizes)
	assert.Equal(t, 24, rd.NumSlices())
	assert.Equal(t, 1, rd.SliceLen())

	_, err = sh.Reduce(Axes(3), false)
	assert.ErrorIs(t, err, ErrInvalidAxis)
	_, err = sh.Reduce(Axes(-1), false)
	assert.ErrorIs(t, err, ErrInvalidAxis)
	_, err = sh.Reduce(Axes(0, 0), false)
	assert.ErrorIs(t, err, ErrInvalidAxis)
}

func TestReduceOffsets(t *testing.T) {
	sh := NewShape(2, 3, 4)

	rd, _ := sh.Reduce(Axes(1), false)
	// slice 5 is (i=1, k=1)
	assert.Equal(t, []int{13, 17, 21}, rd.Offsets(5, nil))

	rd, _ = sh.Reduce(Axes(0, 2), false)
	assert.Equal(t, 3, rd.NumSlices())
	assert.Equal(t, []int{4, 5, 6, 7, 16, 17, 18, 19}, rd.Offsets(1, nil))

	rd, _ = sh.Reduce(Axes(0, 1), false)
	assert.Equal(t, []int{2, 6, 10, 14, 18, 22}, rd.Offsets(2, nil))

	rd, _ = sh.Reduce(Axes(2), false)
	buf := make([]int, 0, 10)
	assert.Equal(t, []int{20, 21, 22, 23}, rd.Offsets(5, buf))

	// every element visited exactly once across slices
	for _, spec := range []AxisSpec{All(), Axes(), Axes(0), Axes(1), Axes(2), Axes(0, 2), Axes(0, 1, 2)} {
		rd, err := sh.Reduce(spec, false)
		require.NoError(t, err)
		seen := make([]int, sh.Len())
		for i := range rd.NumSlices() {
			for _, o := range rd.Offsets(i, nil) {
				seen[o]++
			}
		}
		for _, c := range seen {
			assert.Equal(t, 1, c, spec.String())
		}
	}
}

func TestVectorizeThreaded(t *testing.T) {
	n := 1000
	var sum atomic.Int64
	out := make([]int, n)
	VectorizeThreaded(100, n, func(idx int) {
		out[idx] = idx * 2
		sum.Add(int64(idx))
	})
	assert.Equal(t, int64(n*(n-1)/2), sum.Load())
	assert.Equal(t, 1998, out[999])

	VectorizeOnThreads(3, 10, func(idx int) { out[idx] = -1 })
	for i := range 10 {
		assert.Equal(t, -1, out[i])
	}
	VectorizeOnThreads(8, 0, func(idx int) { t.Fatal("called with n=0") })
}

func TestMatrix(t *testing.T) {
	tsr := NewFloat64(2, 3)
	for i := range tsr.Len() {
		tsr.SetFloat1D(float64(i), i)
	}
	r, c := tsr.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 5.0, tsr.At(1, 2))

	var prod mat.Dense
	prod.Mul(tsr, tsr.T())
	out := NewFloat64()
	CopyDense(out, &prod)
	assert.Equal(t, []int{2, 2}, out.ShapeSizes())
	assert.Equal(t, []float64{5, 14, 14, 50}, out.Values)
}

func TestSprintf(t *testing.T) {
	tsr := NewFloat64FromValues(1, 2, 3)
	assert.Equal(t, "Tensor: [3] 1,2,3,", Sprintf("%g,", tsr, 0))
	m := NewFloat64(2, 2)
	assert.Equal(t, "Tensor: [2 2]\n0 0 \n0 0 ", Sprintf("%g ", m, 0))
}
