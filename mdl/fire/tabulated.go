// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fire

import "github.com/cpmech/gosl/chk"

// Table implements a fire curve given by tabulated time versus temperature
// points. Temperatures are interpolated linearly and clamped to the first
// and last entries outside the tabulated range.
type Table struct {
	Times []float64 // times [s]; strictly increasing
	Temps []float64 // gas temperatures [K]
}

// add tabulated standard curves to factory
func init() {
	allocators["rabt-ztv-train"] = func() Curve {
		return &Table{
			Times: []float64{0, 5 * 60, 60 * 60, 170 * 60},
			Temps: []float64{kelvin + 15, kelvin + 1200, kelvin + 1200, kelvin + 15},
		}
	}
	allocators["rabt-ztv-car"] = func() Curve {
		return &Table{
			Times: []float64{0, 5 * 60, 30 * 60, 140 * 60},
			Temps: []float64{kelvin + 15, kelvin + 1200, kelvin + 1200, kelvin + 15},
		}
	}
	allocators["rws"] = func() Curve {
		return &Table{
			Times: []float64{0, 3 * 60, 5 * 60, 10 * 60, 30 * 60, 60 * 60, 90 * 60, 120 * 60, 180 * 60},
			Temps: []float64{kelvin + 20, kelvin + 890, kelvin + 1140, kelvin + 1200, kelvin + 1300, kelvin + 1350, kelvin + 1300, kelvin + 1200, kelvin + 1200},
		}
	}
}

// NewTable returns a tabulated fire curve after validating the table
func NewTable(times, temps []float64) (o *Table, err error) {
	n := len(times)
	if len(temps) != n {
		return nil, chk.Err("fire table: times and temperatures must have the same length: nt=%d nT=%d", n, len(temps))
	}
	if n < 2 {
		return nil, chk.Err("fire table: at least two points are required; got %d", n)
	}
	for i := 1; i < n; i++ {
		if times[i] <= times[i-1] {
			return nil, chk.Err("fire table: times must be strictly increasing: t[%d]=%g ≤ t[%d]=%g", i, times[i], i-1, times[i-1])
		}
	}
	return &Table{Times: times, Temps: temps}, nil
}

// Temp returns the gas temperature [K] at time t [s]
func (o *Table) Temp(t float64) float64 {
	n := len(o.Times)
	if t <= o.Times[0] {
		return o.Temps[0]
	}
	if t >= o.Times[n-1] {
		return o.Temps[n-1]
	}
	for i := 1; i < n; i++ {
		if t <= o.Times[i] {
			return o.Temps[i-1] + (o.Temps[i]-o.Temps[i-1])*(t-o.Times[i-1])/(o.Times[i]-o.Times[i-1])
		}
	}
	return o.Temps[n-1]
}
