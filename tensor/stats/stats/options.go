// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"cogentcore.org/nanstat/tensor"
)

// Options configures a reduction. The zero value is not useful:
// use [NewOptions], which reduces over all elements.
type Options struct {

	// Axes specifies which axes are reduced over.
	Axes tensor.AxisSpec

	// DropDims removes the reduced axes from the output shape,
	// instead of leaving them with size 1.
	DropDims bool

	// Population computes population variance (divided by n)
	// instead of the Bessel-corrected sample variance (divided by n-1).
	Population bool

	// Mean, if non-nil, holds precomputed means, one per reduced slice,
	// used by Var and Std instead of computing the mean.
	Mean *tensor.Float64
}

// Option sets a field of [Options].
type Option func(o *Options)

// NewOptions returns Options with the given options applied
// on top of the default of reducing over all elements.
func NewOptions(opts ...Option) *Options {
	o := &Options{Axes: tensor.All()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// All reduces over all elements, producing a scalar. This is the default.
func All() Option {
	return func(o *Options) { o.Axes = tensor.All() }
}

// Axes reduces over the given 0-based axes.
// An empty list reduces nothing.
func Axes(axes ...int) Option {
	return func(o *Options) { o.Axes = tensor.Axes(axes...) }
}

// DropDims removes the reduced axes from the output shape.
func DropDims() Option {
	return func(o *Options) { o.DropDims = true }
}

// Population disables Bessel's correction in variance computations.
func Population() Option {
	return func(o *Options) { o.Population = true }
}

// WithMean provides precomputed per-slice means for Var and Std,
// which must have one value per reduced slice.
func WithMean(mean *tensor.Float64) Option {
	return func(o *Options) { o.Mean = mean }
}
