// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"slices"
)

// AxisSpec specifies which axes of a tensor a reduction is computed over:
// either all elements at once ([All]), producing a scalar with no dimensions,
// or a given set of axes ([Axes]). An empty set of axes reduces nothing,
// so every element is its own slice of length 1.
// The zero value is an empty set of axes.
type AxisSpec struct {
	all  bool
	axes []int
}

// All returns an AxisSpec reducing over all elements of a tensor.
func All() AxisSpec {
	return AxisSpec{all: true}
}

// Axes returns an AxisSpec reducing over the given 0-based axis indexes.
func Axes(axes ...int) AxisSpec {
	return AxisSpec{axes: slices.Clone(axes)}
}

// IsAll returns true if all elements are reduced over.
func (as AxisSpec) IsAll() bool { return as.all }

// Dims returns the list of axes (nil for [All]).
func (as AxisSpec) Dims() []int { return as.axes }

// String satisfies the fmt.Stringer interface
func (as AxisSpec) String() string {
	if as.all {
		return "All"
	}
	return fmt.Sprintf("Axes%v", as.axes)
}

// Reduction describes how a tensor of a given shape is partitioned into
// independent slices by an [AxisSpec]. Each slice holds all the elements
// sharing one combination of the kept (non-reduced) axis indexes, and
// slice i is written to flat index i of a tensor of shape OutShape.
// A Reduction is read-only after construction and safe for concurrent use.
type Reduction struct {

	// OutShape is the shape of the result: reduced axes have size 1,
	// or are removed when dimensions are dropped. Reducing over All
	// always produces a scalar shape with no dimensions.
	OutShape Shape

	// in is the input shape.
	in Shape

	// kept are the kept axes, in order.
	kept []int

	// reduced are the reduced axes, in order.
	reduced []int

	// keptSizes and reducedSizes are the sizes of the kept and reduced axes.
	keptSizes, reducedSizes []int

	// nslices is the number of slices, sliceLen is the length of each.
	nslices, sliceLen int

	// step is the stride of a coalesced scan over a single run of
	// adjacent reduced axes, or 0 when the reduced axes are not adjacent.
	step int
}

// Reduce returns the [Reduction] of this shape by the given [AxisSpec].
// If drop is true, reduced axes are removed from the output shape
// instead of being set to size 1.
// Returns an [ErrInvalidAxis] error if an axis is out of range or repeated.
func (sh *Shape) Reduce(spec AxisSpec, drop bool) (*Reduction, error) {
	nd := sh.NumDims()
	isred := make([]bool, nd)
	if spec.all {
		for i := range isred {
			isred[i] = true
		}
	} else {
		for _, ax := range spec.axes {
			if ax < 0 || ax >= nd {
				return nil, fmt.Errorf("%w: axis %d for shape %v", ErrInvalidAxis, ax, sh.Sizes)
			}
			if isred[ax] {
				return nil, fmt.Errorf("%w: axis %d repeated in %v", ErrInvalidAxis, ax, spec.axes)
			}
			isred[ax] = true
		}
	}
	rd := &Reduction{}
	rd.in.CopyFrom(sh)
	var osz []int
	for i, r := range isred {
		sz := sh.Sizes[i]
		if r {
			rd.reduced = append(rd.reduced, i)
			rd.reducedSizes = append(rd.reducedSizes, sz)
			if !drop {
				osz = append(osz, 1)
			}
			continue
		}
		rd.kept = append(rd.kept, i)
		rd.keptSizes = append(rd.keptSizes, sz)
		osz = append(osz, sz)
	}
	if spec.all {
		osz = nil
	}
	rd.OutShape.SetShapeSizes(osz...)
	rd.nslices = product(rd.keptSizes)
	rd.sliceLen = product(rd.reducedSizes)
	rd.step = rd.coalescedStep()
	return rd, nil
}

// coalescedStep returns the stride at which all elements of a slice can be
// visited in one scan, which is possible when the reduced axes are adjacent
// (their combined extent then advances by the stride of the innermost one).
func (rd *Reduction) coalescedStep() int {
	nr := len(rd.reduced)
	if nr == 0 {
		return 1
	}
	for i := 1; i < nr; i++ {
		if rd.reduced[i] != rd.reduced[i-1]+1 {
			return 0
		}
	}
	last := rd.reduced[nr-1]
	return max(rd.in.Strides[last], 1)
}

// NumSlices returns the number of independent slices,
// which is also the Len of the output.
func (rd *Reduction) NumSlices() int { return rd.nslices }

// SliceLen returns the number of elements in each slice.
func (rd *Reduction) SliceLen() int { return rd.sliceLen }

// Contiguous returns true if each slice is a contiguous range of
// the input values, so that slice i is Values[i*SliceLen : (i+1)*SliceLen].
// This holds when the reduced axes are the innermost ones.
func (rd *Reduction) Contiguous() bool {
	if rd.step != 1 {
		return false
	}
	nr := len(rd.reduced)
	return nr == 0 || rd.reduced[nr-1] == rd.in.NumDims()-1
}

// Start returns the flat input offset of the first element of slice i.
func (rd *Reduction) Start(i int) int {
	off := 0
	for k := len(rd.kept) - 1; k >= 0; k-- {
		sz := rd.keptSizes[k]
		off += (i % sz) * rd.in.Strides[rd.kept[k]]
		i /= sz
	}
	return off
}

// Visit calls fun with each flat input offset of the elements of
// slice i, in row-major order of the reduced axes.
func (rd *Reduction) Visit(i int, fun func(off int)) {
	n := rd.sliceLen
	if n == 0 {
		return
	}
	off := rd.Start(i)
	if rd.step > 0 {
		for range n {
			fun(off)
			off += rd.step
		}
		return
	}
	nr := len(rd.reduced)
	idx := make([]int, nr)
	for range n {
		fun(off)
		for k := nr - 1; k >= 0; k-- { // odometer over reduced axes
			str := rd.in.Strides[rd.reduced[k]]
			idx[k]++
			off += str
			if idx[k] < rd.reducedSizes[k] {
				break
			}
			off -= idx[k] * str
			idx[k] = 0
		}
	}
}

// Offsets fills buf (which is resized as needed, and returned) with
// the flat input offsets of the elements of slice i, in the order of [Reduction.Visit].
func (rd *Reduction) Offsets(i int, buf []int) []int {
	buf = buf[:0]
	if cap(buf) < rd.sliceLen {
		buf = make([]int, 0, rd.sliceLen)
	}
	rd.Visit(i, func(off int) {
		buf = append(buf, off)
	})
	return buf
}

// NewOut returns a new Float64 tensor with the output shape.
func (rd *Reduction) NewOut() *Float64 {
	return NewNumberShape[float64](&rd.OutShape)
}

func product(sizes []int) int {
	p := 1
	for _, s := range sizes {
		p *= s
	}
	return p
}
