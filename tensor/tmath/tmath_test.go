// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tmath

import (
	"math"
	"testing"

	"cogentcore.org/nanstat/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nan = math.NaN()

func TestNanMask(t *testing.T) {
	a := tensor.NewFloat64FromValues(1, nan, 3, nan)
	assert.Equal(t, []bool{true, false, true, false}, NanMask(a).Values)

	f := tensor.NewNumberFromValues(float32(1), float32(nan))
	assert.Equal(t, []bool{true, false}, NanMask(f).Values)

	i := tensor.NewNumberFromValues(1, 2, 3)
	assert.Equal(t, []bool{true, true, true}, NanMask(i).Values)

	a2 := tensor.NewFloat64(2, 2)
	a2.Values[3] = nan
	mask := tensor.NewBool(2, 2)
	require.NoError(t, NanMaskInto(mask, a2))
	assert.Equal(t, []bool{true, true, true, false}, mask.Values)
	assert.Equal(t, 3, mask.CountTrue())

	bad := tensor.NewBool(4)
	assert.ErrorIs(t, NanMaskInto(bad, a2), tensor.ErrShapeMismatch)
	assert.Equal(t, []bool{false, false, false, false}, bad.Values)
}

func TestNanMaxMin(t *testing.T) {
	assert.Equal(t, 2.0, NanMax(1.0, 2.0))
	assert.Equal(t, 1.0, NanMax(1.0, nan))
	assert.Equal(t, 2.0, NanMax(nan, 2.0))
	assert.True(t, math.IsNaN(NanMax(nan, nan)))
	assert.Equal(t, 1.0, NanMin(1.0, 2.0))
	assert.Equal(t, 1.0, NanMin(1.0, nan))
	assert.Equal(t, 2.0, NanMin(nan, 2.0))
	assert.Equal(t, 3, NanMax(3, -1))
	assert.Equal(t, float32(5), NanMin(float32(nan), 5))

	a := tensor.NewFloat64FromValues(1, nan, 3, nan)
	b := tensor.NewFloat64FromValues(2, 2, nan, nan)
	mx, err := NanMaxOut(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 3}, mx.Values[:3])
	assert.True(t, math.IsNaN(mx.Values[3]))
	mn, err := NanMinOut(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, mn.Values[:3])

	_, err = NanMaxOut(a, tensor.NewFloat64(2, 2))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestNanAdd(t *testing.T) {
	a := tensor.NewFloat64FromValues(1, nan, 3, nan)
	b := tensor.NewFloat64FromValues(2, 2, nan, nan)
	sum, err := NanAdd(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2, 3, 0}, sum.Values)
	assert.True(t, math.IsNaN(a.Values[1]), "inputs unchanged")

	dst := tensor.NewFloat64FromValues(1, 1, nan, 1)
	require.NoError(t, NanAddInto(dst, b))
	require.NoError(t, NanAddInto(dst, b))
	assert.Equal(t, []float64{5, 5}, dst.Values[:2])
	assert.True(t, math.IsNaN(dst.Values[2]))
	assert.Equal(t, 1.0, dst.Values[3])

	counts := tensor.NewInt64(4)
	require.NoError(t, NanAddInto(counts, tensor.NewFloat64FromValues(1, nan, 2, 3)))
	assert.Equal(t, []int64{1, 0, 2, 3}, counts.Values)

	assert.ErrorIs(t, NanAddInto(dst, tensor.NewFloat64(3)), tensor.ErrShapeMismatch)
	assert.Equal(t, 5.0, dst.Values[0])
	_, err = NanAdd(a, tensor.NewFloat64(3))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestZeroNaN(t *testing.T) {
	a := tensor.NewFloat64FromValues(1, nan, 3, nan)
	assert.Equal(t, 2, ZeroNaN(a))
	assert.Equal(t, []float64{1, 0, 3, 0}, a.Values)
	assert.Equal(t, 0, ZeroNaN(a))

	f := tensor.NewNumberFromValues(float32(nan), float32(2))
	assert.Equal(t, 1, ZeroNaN(f))
	assert.Equal(t, []float32{0, 2}, f.Values)

	i := tensor.NewNumberFromValues(1, 2)
	assert.Equal(t, 0, ZeroNaN(i))
	assert.Equal(t, []int{1, 2}, i.Values)

	type celsius float64
	c := tensor.NewNumberFromValues(celsius(nan), 3)
	assert.Equal(t, []bool{false, true}, NanMask(c).Values)
	assert.Equal(t, 1, ZeroNaN(c))
	assert.Equal(t, []celsius{0, 3}, c.Values)
}

func TestMovingAverage(t *testing.T) {
	assert.Equal(t, 1, OddWindow(0))
	assert.Equal(t, 3, OddWindow(2))
	assert.Equal(t, 3, OddWindow(3))
	assert.Equal(t, 5, OddWindow(4))

	x := tensor.NewFloat64FromValues(1, 2, 3, 4, 5)
	ma, err := MovingAverage(x, 3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.5, 2, 3, 4, 4.5}, ma.Values, 1.0e-12)

	// even window rounds up to odd
	ma2, err := MovingAverage(x, 2)
	require.NoError(t, err)
	assert.Equal(t, ma.Values, ma2.Values)

	ma, err = MovingAverage(x, 1)
	require.NoError(t, err)
	assert.Equal(t, x.Values, ma.Values)

	x = tensor.NewFloat64FromValues(1, nan, 3, nan, nan, nan)
	ma, err = MovingAverage(x, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 3}, ma.Values[:4])
	assert.True(t, math.IsNaN(ma.Values[4]))
	assert.True(t, math.IsNaN(ma.Values[5]))

	g := tensor.NewNumber[int](3, 3)
	for i := range g.Values {
		g.Values[i] = i
	}
	ma, err = MovingAverage(g, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, ma.ShapeSizes())
	assert.Equal(t, 4.0, ma.Value(1, 1))
	assert.Equal(t, 2.0, ma.Value(0, 0))
	assert.Equal(t, 2.5, ma.Value(0, 1))
	assert.Equal(t, 6.0, ma.Value(2, 2))

	_, err = MovingAverage(tensor.NewFloat64(2, 2, 2), 3)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}
