// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histogram

import (
	"fmt"
	"math"

	"cogentcore.org/nanstat/base/num"
	"cogentcore.org/nanstat/tensor"
	"cogentcore.org/nanstat/tensor/stats/stats"
)

// binned holds per-bin results for rows x cols (bin, variable) cells.
type binned struct {
	vals       []float64
	count      []int64
	rows, cols int
}

// newOut returns new output tensors for the results, 1D when oneD is true.
func (b *binned) newOut(oneD bool) (*tensor.Float64, *tensor.Int64) {
	sizes := []int{b.rows, b.cols}
	if oneD {
		sizes = sizes[:1]
	}
	vals := tensor.NewFloat64(sizes...)
	count := tensor.NewInt64(sizes...)
	copy(vals.Values, b.vals)
	copy(count.Values, b.count)
	return vals, count
}

// into assigns the results to the top left of the given buffers,
// where count may be nil. Buffers must be checked by checkInto.
func (b *binned) into(vals *tensor.Float64, count *tensor.Int64) {
	_, vc := gridSize(vals)
	copyGrid(vals.Values, vc, b.vals, b.rows, b.cols)
	if count != nil {
		_, cc := gridSize(count)
		copyGrid(count.Values, cc, b.count, b.rows, b.cols)
	}
}

func checkInto(fn string, vals *tensor.Float64, count *tensor.Int64, rows, cols int) error {
	if err := checkGrid(fn, "output", vals, rows, cols); err != nil {
		return err
	}
	if count == nil {
		return nil
	}
	return checkGrid(fn, "count", count, rows, cols)
}

// binMeans computes the (weighted) mean and count of the non-NaN values of
// y, with k values per observation, in each of nb bins given by ids.
// weight returns the weight of flat y index j, and may be nil for 1.
// A value with a NaN weight is excluded.
func binMeans[U num.Number](ids []int, y []U, k, nb int, weight func(j int) float64) *binned {
	b := &binned{rows: nb, cols: k}
	b.vals = make([]float64, nb*k)
	b.count = make([]int64, nb*k)
	wsum := make([]float64, nb*k)
	for i, bin := range ids {
		if bin < 0 {
			continue
		}
		for c := range k {
			j := i*k + c
			v := y[j]
			if num.IsNaN(v) {
				continue
			}
			w := 1.0
			if weight != nil {
				w = weight(j)
				if math.IsNaN(w) {
					continue
				}
			}
			o := bin*k + c
			b.vals[o] += w * float64(v)
			wsum[o] += w
			b.count[o]++
		}
	}
	for o, s := range b.vals {
		if wsum[o] == 0 {
			b.vals[o] = math.NaN()
			continue
		}
		b.vals[o] = s / wsum[o]
	}
	return b
}

// binMedians computes the median and count of the non-NaN values of y,
// with k values per observation, in each of nb bins given by ids.
// The first pass counts the values in each cell, and the second
// gathers them into contiguous segments, whose medians are then
// selected independently.
func binMedians[U num.Number](ids []int, y []U, k, nb int) *binned {
	b := &binned{rows: nb, cols: k}
	nc := nb * k
	b.count = make([]int64, nc)
	for i, bin := range ids {
		if bin < 0 {
			continue
		}
		for c := range k {
			if !num.IsNaN(y[i*k+c]) {
				b.count[bin*k+c]++
			}
		}
	}
	start := make([]int, nc+1)
	for o, n := range b.count {
		start[o+1] = start[o] + int(n)
	}
	buf := make([]float64, start[nc])
	pos := make([]int, nc)
	copy(pos, start)
	for i, bin := range ids {
		if bin < 0 {
			continue
		}
		for c := range k {
			v := y[i*k+c]
			if num.IsNaN(v) {
				continue
			}
			o := bin*k + c
			buf[pos[o]] = float64(v)
			pos[o]++
		}
	}
	b.vals = make([]float64, nc)
	flops := 4 * max(1, len(buf)/max(1, nc))
	tensor.VectorizeThreaded(flops, nc, func(o int) {
		b.vals[o] = stats.MedianSlice(buf[start[o]:start[o+1]])
	})
	return b
}

// Mean returns the mean of the non-NaN values of y in each bin of x,
// along with their count. y is either 1D with one value per x value, or
// 2D of shape (n, k) for n x values, in which case each column is a
// separate variable and the outputs have shape (NumBins, k).
// Bins with no values have a NaN mean and a 0 count.
func Mean[T, U num.Number](x *tensor.Number[T], y *tensor.Number[U], e *Edges) (*tensor.Float64, *tensor.Int64, error) {
	k, err := dependentCols("histogram.Mean", y, x.Len())
	if err != nil {
		return nil, nil, err
	}
	mean, count := binMeans(binIndexes(x, e), y.Values, k, e.NumBins(), nil).newOut(y.NumDims() == 1)
	return mean, count, nil
}

// MeanInto is a version of [Mean] that assigns the means to the first
// NumBins rows (and k columns) of the given buffer, and the counts to
// count, unless it is nil. Other values are not changed. Returns an
// error wrapping [tensor.ErrShapeMismatch] if a buffer is too small,
// before changing anything.
func MeanInto[T, U num.Number](mean *tensor.Float64, count *tensor.Int64, x *tensor.Number[T], y *tensor.Number[U], e *Edges) error {
	fn := "histogram.MeanInto"
	k, err := dependentCols(fn, y, x.Len())
	if err != nil {
		return err
	}
	if err := checkInto(fn, mean, count, e.NumBins(), k); err != nil {
		return err
	}
	binMeans(binIndexes(x, e), y.Values, k, e.NumBins(), nil).into(mean, count)
	return nil
}

// WeightedMean returns the weighted mean sum(w*y) / sum(w) of the
// values of y in each bin of x, where w has the same shape as y,
// which is 1D or 2D as in [Mean]. A value is excluded if it or its
// weight is NaN. Bins with no values (or zero total weight) are NaN.
func WeightedMean[T, U, W num.Number](x *tensor.Number[T], y *tensor.Number[U], w *tensor.Number[W], e *Edges) (*tensor.Float64, error) {
	fn := "histogram.WeightedMean"
	k, err := dependentCols(fn, y, x.Len())
	if err != nil {
		return nil, err
	}
	if err := tensor.MustBeSameShape(y, w); err != nil {
		return nil, fmt.Errorf("%s: weights: %w", fn, err)
	}
	weight := func(j int) float64 { return float64(w.Values[j]) }
	mean, _ := binMeans(binIndexes(x, e), y.Values, k, e.NumBins(), weight).newOut(y.NumDims() == 1)
	return mean, nil
}

// Median returns the median of the non-NaN values of y in each bin of x,
// along with their count, with y 1D or 2D as in [Mean].
// Bins with no values have a NaN median and a 0 count.
func Median[T, U num.Number](x *tensor.Number[T], y *tensor.Number[U], e *Edges) (*tensor.Float64, *tensor.Int64, error) {
	k, err := dependentCols("histogram.Median", y, x.Len())
	if err != nil {
		return nil, nil, err
	}
	med, count := binMedians(binIndexes(x, e), y.Values, k, e.NumBins()).newOut(y.NumDims() == 1)
	return med, count, nil
}

// MedianInto is a version of [Median] that assigns the medians and
// counts (unless nil) to the given buffers, as in [MeanInto].
func MedianInto[T, U num.Number](med *tensor.Float64, count *tensor.Int64, x *tensor.Number[T], y *tensor.Number[U], e *Edges) error {
	fn := "histogram.MedianInto"
	k, err := dependentCols(fn, y, x.Len())
	if err != nil {
		return err
	}
	if err := checkInto(fn, med, count, e.NumBins(), k); err != nil {
		return err
	}
	binMedians(binIndexes(x, e), y.Values, k, e.NumBins()).into(med, count)
	return nil
}

// check2D validates the x, y, z values of a 2D binning.
func check2D(fn string, x, y, z tensor.Tensor) error {
	if err := tensor.MustBeSameLen(x, y); err != nil {
		return fmt.Errorf("%s: %w", fn, err)
	}
	if err := tensor.MustBeSameLen(x, z); err != nil {
		return fmt.Errorf("%s: %w", fn, err)
	}
	return nil
}

// Mean2D returns the mean of the non-NaN values of z in each bin of the
// 2D grid of x by y bins, along with their count, where x, y and z have
// the same number of values. Outputs have shape (ye.NumBins(), xe.NumBins()),
// with rows for y bins and columns for x bins. Empty bins are NaN.
func Mean2D[T, U, V num.Number](x *tensor.Number[T], y *tensor.Number[U], z *tensor.Number[V], xe, ye *Edges) (*tensor.Float64, *tensor.Int64, error) {
	if err := check2D("histogram.Mean2D", x, y, z); err != nil {
		return nil, nil, err
	}
	b := binMeans(binIndexes2D(x, y, xe, ye), z.Values, 1, xe.NumBins()*ye.NumBins(), nil)
	b.rows, b.cols = ye.NumBins(), xe.NumBins()
	mean, count := b.newOut(false)
	return mean, count, nil
}

// Mean2DInto is a version of [Mean2D] that assigns the means to the
// first ye.NumBins() rows and xe.NumBins() columns of the given 2D buffer,
// and likewise the counts, unless nil. Returns an error wrapping
// [tensor.ErrShapeMismatch] if a buffer is too small, before changing anything.
func Mean2DInto[T, U, V num.Number](mean *tensor.Float64, count *tensor.Int64, x *tensor.Number[T], y *tensor.Number[U], z *tensor.Number[V], xe, ye *Edges) error {
	fn := "histogram.Mean2DInto"
	if err := check2D(fn, x, y, z); err != nil {
		return err
	}
	if err := checkInto(fn, mean, count, ye.NumBins(), xe.NumBins()); err != nil {
		return err
	}
	b := binMeans(binIndexes2D(x, y, xe, ye), z.Values, 1, xe.NumBins()*ye.NumBins(), nil)
	b.rows, b.cols = ye.NumBins(), xe.NumBins()
	b.into(mean, count)
	return nil
}

// Median2D returns the median of the non-NaN values of z in each bin of
// the 2D grid of x by y bins, along with their count, as in [Mean2D].
func Median2D[T, U, V num.Number](x *tensor.Number[T], y *tensor.Number[U], z *tensor.Number[V], xe, ye *Edges) (*tensor.Float64, *tensor.Int64, error) {
	if err := check2D("histogram.Median2D", x, y, z); err != nil {
		return nil, nil, err
	}
	b := binMedians(binIndexes2D(x, y, xe, ye), z.Values, 1, xe.NumBins()*ye.NumBins())
	b.rows, b.cols = ye.NumBins(), xe.NumBins()
	med, count := b.newOut(false)
	return med, count, nil
}

// Median2DInto is a version of [Median2D] that assigns the medians
// and counts (unless nil) to the given buffers, as in [Mean2DInto].
func Median2DInto[T, U, V num.Number](med *tensor.Float64, count *tensor.Int64, x *tensor.Number[T], y *tensor.Number[U], z *tensor.Number[V], xe, ye *Edges) error {
	fn := "histogram.Median2DInto"
	if err := check2D(fn, x, y, z); err != nil {
		return err
	}
	if err := checkInto(fn, med, count, ye.NumBins(), xe.NumBins()); err != nil {
		return err
	}
	b := binMedians(binIndexes2D(x, y, xe, ye), z.Values, 1, xe.NumBins()*ye.NumBins())
	b.rows, b.cols = ye.NumBins(), xe.NumBins()
	b.into(med, count)
	return nil
}
