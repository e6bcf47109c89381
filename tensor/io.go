// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"strings"
)

// MaxSprintLength is the default maximum length of a String() representation
// of a tensor, as generated by the Sprintf function.
var MaxSprintLength = 1000

// Sprintf returns a string representation of the given tensor,
// with a maximum length of as given: output is terminated
// when it exceeds that length. If maxLen = 0, [MaxSprintLength] is used.
// The format is the per-element format string, "%7.3g\t" if empty.
// Higher-dimensional tensors are shown as a 2D matrix whose rows are
// all the outer dimensions collapsed, and columns the innermost one.
func Sprintf(format string, tsr Tensor, maxLen int) string {
	if maxLen == 0 {
		maxLen = MaxSprintLength
	}
	nd := tsr.NumDims()
	if nd == 0 {
		if format == "" {
			format = "%g"
		}
		return fmt.Sprintf(strings.TrimSpace(format), tsr.Float1D(0))
	}
	if format == "" {
		format = "%7.3g\t"
	}
	var b strings.Builder
	b.WriteString(tsr.Label())
	cols := tsr.DimSize(nd - 1)
	n := tsr.Len()
	if nd == 1 {
		b.WriteString(" ")
	} else {
		b.WriteString("\n")
	}
	for i := range n {
		if b.Len() > maxLen {
			b.WriteString("...")
			break
		}
		if nd > 1 && cols > 0 && i > 0 && i%cols == 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf(format, tsr.Float1D(i)))
	}
	return b.String()
}
