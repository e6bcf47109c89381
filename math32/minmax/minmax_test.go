// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF64(t *testing.T) {
	mr := Empty()
	assert.False(t, mr.IsValid())
	assert.True(t, math.IsNaN(mr.Range()))
	assert.True(t, math.IsNaN(mr.OrNaN().Min))
	assert.True(t, math.IsNaN(mr.OrNaN().Max))

	for _, v := range []float64{3, math.NaN(), -2, 5} {
		mr.Fit(v)
	}
	assert.True(t, mr.IsValid())
	assert.Equal(t, F64{Min: -2, Max: 5}, mr)
	assert.Equal(t, mr, mr.OrNaN())
	assert.Equal(t, 7.0, mr.Range())

	assert.True(t, mr.Contains(0))
	assert.True(t, mr.Contains(5))
	assert.False(t, mr.Contains(5.001))
	assert.False(t, mr.Contains(math.NaN()))
}
