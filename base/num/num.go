// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides generic numeric constraints and the
// missing-value predicate shared by every package in this module.
package num

import (
	"golang.org/x/exp/constraints"
)

// Number is a type constraint for all integer and float types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is a type constraint for the floating point types,
// which are the only types able to represent a NaN.
type Float interface {
	constraints.Float
}

// Integer is a type constraint for all integer types.
type Integer interface {
	constraints.Integer
}

// IsNaN returns true if v is a NaN. It is the one place where the
// "missing value" test is defined: a value is missing iff it is not
// equal to itself, which is never true for integer types.
func IsNaN[T Number](v T) bool {
	return v != v
}

// IsFloat returns true if T is a floating point type, including
// named types whose underlying type is float32 or float64.
func IsFloat[T Number]() bool {
	half := 0.5
	return T(half) != 0
}

// FromBool returns 1 if b is true and 0 otherwise.
func FromBool[T Number](b bool) T {
	if b {
		return 1
	}
	return 0
}
