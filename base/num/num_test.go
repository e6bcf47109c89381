// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNaN(t *testing.T) {
	assert.True(t, IsNaN(math.NaN()))
	assert.True(t, IsNaN(float32(math.NaN())))
	assert.False(t, IsNaN(1.5))
	assert.False(t, IsNaN(math.Inf(1)))
	assert.False(t, IsNaN(3))
	assert.False(t, IsNaN(uint8(255)))
}

type celsius float64

type count uint16

func TestIsFloat(t *testing.T) {
	assert.True(t, IsFloat[float32]())
	assert.True(t, IsFloat[float64]())
	assert.True(t, IsFloat[celsius]())
	assert.False(t, IsFloat[int64]())
	assert.False(t, IsFloat[uint8]())
	assert.False(t, IsFloat[count]())
	assert.True(t, IsNaN(celsius(math.NaN())))
}

func TestFromBool(t *testing.T) {
	assert.Equal(t, 1, FromBool[int](true))
	assert.Equal(t, 0.0, FromBool[float64](false))
	assert.Equal(t, celsius(1), FromBool[celsius](true))
}
