// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package histogram_test

import (
	"fmt"
	"math"

	"cogentcore.org/nanstat/tensor"
	"cogentcore.org/nanstat/tensor/stats/histogram"
)

func ExampleCounts() {
	e, _ := histogram.NewEdges(0, 3, 3)
	x := tensor.NewFloat64FromValues(0.5, 1.5, 2.5, 3, math.NaN(), 7)
	fmt.Println(histogram.Counts(x, e).Values)
	// Output: [1 1 2]
}

func ExampleCountsInto() {
	e, _ := histogram.NewEdges(0, 2, 2)
	counts := tensor.NewInt64(2)
	for range 3 {
		histogram.CountsInto(counts, tensor.NewFloat64FromValues(0.5, 1.5, 1.5), e)
	}
	fmt.Println(counts.Values)
	// Output: [3 6]
}

func ExampleMedian() {
	x := tensor.NewFloat64(101)
	y := tensor.NewFloat64(101)
	for i := range 100 {
		x.Values[i] = float64(i + 1)
		y.Values[i] = float64(i + 1)
	}
	x.Values[100], y.Values[100] = 1, math.NaN()
	e, _ := histogram.NewEdges(0, 100, 4)
	med, count, _ := histogram.Median(x, y, e)
	fmt.Println(med.Values, count.Values)
	// Output: [12.5 37 62 87.5] [24 25 25 26]
}
