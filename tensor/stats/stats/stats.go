// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/nanstat/base/errors"
	"cogentcore.org/nanstat/tensor"
)

// StatsFunc is the function signature for a registered stats function,
// which computes one statistic over the slices of the input defined by
// the options, skipping NaN values, and returns a new output tensor.
type StatsFunc func(in *tensor.Float64, opts ...Option) (*tensor.Float64, error)

// Funcs is a registry of named stats functions,
// which can then be called by standard enum or
// string name for custom functions.
var Funcs map[string]StatsFunc

func init() {
	Funcs = make(map[string]StatsFunc)
	Funcs[StatCount.String()] = CountOf[float64, float64]
	Funcs[StatSum.String()] = Sum[float64]
	Funcs[StatMean.String()] = Mean[float64]
	Funcs[StatVar.String()] = Var[float64]
	Funcs[StatStd.String()] = Std[float64]
	Funcs[StatVarPop.String()] = func(in *tensor.Float64, opts ...Option) (*tensor.Float64, error) {
		return Var(in, append(slices.Clip(opts), Population())...)
	}
	Funcs[StatStdPop.String()] = func(in *tensor.Float64, opts ...Option) (*tensor.Float64, error) {
		return Std(in, append(slices.Clip(opts), Population())...)
	}
	Funcs[StatMin.String()] = Min[float64]
	Funcs[StatMax.String()] = Max[float64]
	Funcs[StatRange.String()] = Range[float64]
	Funcs[StatAAD.String()] = AAD[float64]
	Funcs[StatMedian.String()] = Median[float64]
	Funcs[StatQ1.String()] = func(in *tensor.Float64, opts ...Option) (*tensor.Float64, error) {
		return Quantile(in, 0.25, opts...)
	}
	Funcs[StatQ3.String()] = func(in *tensor.Float64, opts ...Option) (*tensor.Float64, error) {
		return Quantile(in, 0.75, opts...)
	}
	Funcs[StatMAD.String()] = MAD[float64]
}

// Call calls a registered stats function on given tensor,
// returning the output. Returns an error if name not found.
func Call(name string, in *tensor.Float64, opts ...Option) (*tensor.Float64, error) {
	f, ok := Funcs[name]
	if !ok {
		return nil, fmt.Errorf("stats.Call: function %q not registered", name)
	}
	return f(in, opts...)
}

// Stats is a list of different standard aggregation functions, which can be used
// to choose an aggregation function
type Stats int32

const (
	// count of number of non-NaN elements.
	StatCount Stats = iota

	// sum of elements.
	StatSum

	// mean value = sum / count.
	StatMean

	// sample variance (squared deviations from mean, divided by n-1).
	StatVar

	// sample standard deviation (sqrt of Var).
	StatStd

	// population variance (squared diffs from mean, divided by n).
	StatVarPop

	// population standard deviation (sqrt of VarPop).
	StatStdPop

	// minimum value.
	StatMin

	// maximum value.
	StatMax

	// range = max - min.
	StatRange

	// mean absolute deviation from the mean.
	StatAAD

	// middle value in sorted ordering.
	StatMedian

	// Q1 first quartile = 25%ile value = .25 quantile value.
	StatQ1

	// Q3 third quartile = 75%ile value = .75 quantile value.
	StatQ3

	// median absolute deviation from the median.
	StatMAD

	// StatsN is the number of standard stats.
	StatsN
)

var statsNames = [...]string{"Count", "Sum", "Mean", "Var", "Std", "VarPop", "StdPop", "Min", "Max", "Range", "AAD", "Median", "Q1", "Q3", "MAD"}

// String returns the name of the stat, which is its key in [Funcs].
func (s Stats) String() string {
	if s < 0 || s >= StatsN {
		return fmt.Sprintf("Stats(%d)", int32(s))
	}
	return statsNames[s]
}

// StatsFromString returns the stat with the given name,
// case insensitive, or an error if there is none.
func StatsFromString(name string) (Stats, error) {
	for i, nm := range statsNames {
		if strings.EqualFold(nm, name) {
			return Stats(i), nil
		}
	}
	return StatsN, fmt.Errorf("stats.StatsFromString: %q is not a valid stat", name)
}

// Func returns the registered [StatsFunc] for this stat.
func (s Stats) Func() StatsFunc {
	return Funcs[s.String()]
}

// Call calls this statistic on the given tensor, returning the output.
// Errors are logged, and result in a nil output.
func (s Stats) Call(in *tensor.Float64, opts ...Option) *tensor.Float64 {
	return errors.Log1(s.Func()(in, opts...))
}
