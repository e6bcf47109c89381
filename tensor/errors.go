// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import "errors"

// These are the sentinel errors returned by the tensor, stats, metric,
// histogram and tmath packages. Operations wrap them with context,
// e.g., fmt.Errorf("stats.Quantile: %w: q=%g", ErrInvalidQuantile, q),
// so callers should test for them with errors.Is.
// All are detected before any output or input buffer is modified.
var (
	// ErrInvalidAxis is returned when an axis index is out of range
	// for the tensor rank, or is listed more than once.
	ErrInvalidAxis = errors.New("tensor: invalid axis")

	// ErrInvalidQuantile is returned for a quantile outside [0,1]
	// or a percentile outside [0,100].
	ErrInvalidQuantile = errors.New("tensor: invalid quantile")

	// ErrShapeMismatch is returned when paired tensors, or output
	// buffers, have shapes incompatible with the operation.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrInvalidEdges is returned when bin edges have fewer than
	// two values or are not strictly increasing.
	ErrInvalidEdges = errors.New("tensor: invalid bin edges")
)
