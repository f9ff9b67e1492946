// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"
)

// Steel implements the EN 1993-1-2 thermal properties of carbon steel.
// The density is taken constant; the heat capacity is returned already
// scaled by the initial density
type Steel struct {
	Rho0 float64 // initial density [kg/m³]
}

// add model to factory
func init() {
	allocators["steel"] = func() Model { return &Steel{Rho0: 7850} }
}

// Init initialises this structure
func (o *Steel) Init(prms fun.Params) (err error) {
	prms.Connect(&o.Rho0, "rho0", "rho0 steel model")
	if o.Rho0 <= 0 {
		return chk.Err("steel model: initial density rho0=%g must be positive", o.Rho0)
	}
	return
}

// Kval returns the thermal conductivity [W/(m·K)]
func (o *Steel) Kval(T float64) float64 {
	θ := T - CelsiusZero
	if θ <= 800 {
		return 54.0 - 3.33*θ/100.0
	}
	return 27.3
}

// Rho returns the density [kg/m³]
func (o *Steel) Rho(T float64) float64 {
	return o.Rho0
}

// Cp returns the heat capacity scaled by the initial density
func (o *Steel) Cp(T float64) float64 {
	θ := T - CelsiusZero
	switch {
	case θ <= 600:
		return o.Rho0 * (425.0 + 7.73*θ/10.0 - 1.69*θ*θ/1e3 + 2.22*θ*θ*θ/1e6)
	case θ <= 735:
		return o.Rho0 * (666.0 - 13002.0/(θ-738.0))
	case θ <= 900:
		return o.Rho0 * (545.0 + 17820.0/(θ-731.0))
	}
	return o.Rho0 * 650.0
}

// Batch evaluates conductivity and volumetric heat capacity at many temperatures
func (o *Steel) Batch(T, k, rhocp []float64) {
	for i, t := range T {
		k[i] = o.Kval(t)
		rhocp[i] = o.Rho(t) * o.Cp(t)
	}
}
