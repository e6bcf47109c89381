// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a closed interval of float64 values,
// used for extrema and for the bounds of bin edges.
package minmax

import "math"

// F64 is the closed interval [Min, Max].
type F64 struct {
	Min float64
	Max float64
}

// Empty returns an interval with Min = +Inf and Max = -Inf,
// which is not valid until [F64.Fit] has been called with a
// non-NaN value.
func Empty() F64 {
	return F64{Min: math.Inf(1), Max: math.Inf(-1)}
}

// IsValid returns true if Min <= Max.
func (mr F64) IsValid() bool {
	return mr.Min <= mr.Max
}

// Contains returns true if Min <= v <= Max, which is never
// the case for a NaN.
func (mr F64) Contains(v float64) bool {
	return v >= mr.Min && v <= mr.Max
}

// Range returns Max - Min, or NaN if the interval is not valid.
func (mr F64) Range() float64 {
	if !mr.IsValid() {
		return math.NaN()
	}
	return mr.Max - mr.Min
}

// Fit extends the interval to include v. A NaN leaves it unchanged.
func (mr *F64) Fit(v float64) {
	if v < mr.Min {
		mr.Min = v
	}
	if v > mr.Max {
		mr.Max = v
	}
}

// OrNaN returns the interval if it is valid,
// and otherwise one with NaN for both Min and Max.
func (mr F64) OrNaN() F64 {
	if mr.IsValid() {
		return mr
	}
	return F64{Min: math.NaN(), Max: math.NaN()}
}
