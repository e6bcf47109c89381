// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats_test

import (
	"errors"
	"fmt"
	"math"

	"cogentcore.org/nanstat/tensor"
	"cogentcore.org/nanstat/tensor/stats/stats"
)

func ExampleMean() {
	x := tensor.NewFloat64(2, 3)
	copy(x.Values, []float64{1, 2, 3, 4, math.NaN(), 6})
	m, err := stats.Mean(x, stats.Axes(1), stats.DropDims())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m.ShapeSizes(), m.Values)
	// Output: [2] [2 5]
}

func ExampleQuantile() {
	x := tensor.NewFloat64FromValues(5, 3, math.NaN(), 1, 4, 2)
	q1, _ := stats.Quantile(x, 0.25)
	q, _ := stats.Quantile(x, 0.1)
	fmt.Println(q1.Values[0], q.Values[0])

	_, err := stats.Quantile(x, 1.5)
	fmt.Println(errors.Is(err, tensor.ErrInvalidQuantile))
	// Output:
	// 2 1.4
	// true
}

func ExampleMedianInPlace() {
	x := tensor.NewFloat64FromValues(3, math.NaN(), 1, 4, 2)
	m, _ := stats.MedianInPlace(x)
	fmt.Println(m.Values[0], math.IsNaN(x.Values[4]))
	// Output: 2.5 true
}

func ExampleStats_Call() {
	x := tensor.NewFloat64FromValues(2, 4, math.NaN(), 6)
	fmt.Println(stats.StatMean.Call(x).Values, stats.StatCount.Call(x).Values)
	// Output: [4] [3]
}
