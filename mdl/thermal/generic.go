// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"
)

// Generic implements a material defined by tabulated temperature dependent
// properties. Values are interpolated linearly and clamped to the first and
// last table entries outside the tabulated range.
type Generic struct {
	Temps []float64 // temperatures [K]; strictly increasing
	Rhos  []float64 // densities [kg/m³]
	Ks    []float64 // thermal conductivities [W/(m·K)]
	Cps   []float64 // specific heat capacities [J/(kg·K)]
}

// NewGeneric returns a tabulated model after validating the tables
func NewGeneric(temps, rhos, ks, cps []float64) (o *Generic, err error) {
	n := len(temps)
	if len(rhos) != n || len(ks) != n || len(cps) != n {
		return nil, chk.Err("generic model: all tables must have the same length: nT=%d nρ=%d nk=%d ncp=%d", n, len(rhos), len(ks), len(cps))
	}
	if n < 2 {
		return nil, chk.Err("generic model: at least two points are required for interpolation; got %d", n)
	}
	for i := 1; i < n; i++ {
		if temps[i] <= temps[i-1] {
			return nil, chk.Err("generic model: temperatures must be strictly increasing: T[%d]=%g ≤ T[%d]=%g", i, temps[i], i-1, temps[i-1])
		}
	}
	for i := 0; i < n; i++ {
		if rhos[i] <= 0 {
			return nil, chk.Err("generic model: densities must be positive: ρ[%d]=%g", i, rhos[i])
		}
		if ks[i] <= 0 {
			return nil, chk.Err("generic model: conductivities must be positive: k[%d]=%g", i, ks[i])
		}
		if cps[i] <= 0 {
			return nil, chk.Err("generic model: heat capacities must be positive: cp[%d]=%g", i, cps[i])
		}
	}
	return &Generic{Temps: temps, Rhos: rhos, Ks: ks, Cps: cps}, nil
}

// Init is a no-op since tables are validated by NewGeneric
func (o *Generic) Init(prms fun.Params) error { return nil }

// Kval returns the thermal conductivity [W/(m·K)]
func (o *Generic) Kval(T float64) float64 { return interp(T, o.Temps, o.Ks) }

// Rho returns the density [kg/m³]
func (o *Generic) Rho(T float64) float64 { return interp(T, o.Temps, o.Rhos) }

// Cp returns the specific heat capacity [J/(kg·K)]
func (o *Generic) Cp(T float64) float64 { return interp(T, o.Temps, o.Cps) }

// Batch evaluates conductivity and volumetric heat capacity at many temperatures
func (o *Generic) Batch(T, k, rhocp []float64) {
	for i, t := range T {
		k[i] = o.Kval(t)
		rhocp[i] = o.Rho(t) * o.Cp(t)
	}
}

// interp performs clamped linear interpolation of ys over strictly
// increasing xs
func interp(x float64, xs, ys []float64) float64 {
	n := len(xs)
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	for i := 1; i < n; i++ {
		if x <= xs[i] {
			return ys[i-1] + (ys[i]-ys[i-1])*(x-xs[i-1])/(xs[i]-xs[i-1])
		}
	}
	return ys[n-1]
}
