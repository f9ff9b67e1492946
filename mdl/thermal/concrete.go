// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"
)

// Concrete implements the EN 1992-1-2 thermal properties of normal weight
// concrete. The conductivity follows either the upper or the lower limit
// curve; the specific heat capacity includes the moisture peak between
// 100 and 115 [°C]
type Concrete struct {
	Rho0  float64 // initial density [kg/m³]
	U     float64 // moisture content [% of concrete weight]; 0 ≤ u ≤ 10
	Upper bool    // use upper limit conductivity curve

	// derived
	cpeak float64 // cp at the moisture peak [J/(kg·K)]
}

// add model to factory
func init() {
	allocators["concrete"] = func() Model {
		return &Concrete{Rho0: 2300}
	}
}

// Init initialises this structure
func (o *Concrete) Init(prms fun.Params) (err error) {
	kupper := 0.0
	prms.Connect(&o.Rho0, "rho0", "rho0 concrete model")
	prms.Connect(&o.U, "u", "u concrete model")
	prms.Connect(&kupper, "kupper", "kupper concrete model")
	o.Upper = kupper > 0
	if o.Rho0 <= 0 {
		return chk.Err("concrete model: initial density rho0=%g must be positive", o.Rho0)
	}
	if o.U < 0 || o.U > 10 {
		return chk.Err("concrete model: moisture content u=%g must be within [0, 10]", o.U)
	}
	o.cpeak = 900.0 + interp(o.U, []float64{0, 1.5, 3, 10}, []float64{0, 570, 1120, 4700})
	return
}

// Kval returns the thermal conductivity [W/(m·K)]
func (o *Concrete) Kval(T float64) float64 {
	θ := T - CelsiusZero
	if o.Upper {
		if θ > 1200 {
			return 0.5996
		}
		return 2.0 - 0.2451*(θ/100.0) + 0.0107*(θ/100.0)*(θ/100.0)
	}
	if θ > 1200 {
		return 0.5488
	}
	return 1.36 - 0.136*(θ/100.0) + 0.0057*(θ/100.0)*(θ/100.0)
}

// Rho returns the density [kg/m³]
func (o *Concrete) Rho(T float64) float64 {
	θ := T - CelsiusZero
	switch {
	case θ <= 115:
		return o.Rho0
	case θ <= 200:
		return o.Rho0 * (1.0 - 0.02*(θ-115.0)/85.0)
	case θ <= 400:
		return o.Rho0 * (0.98 - 0.03*(θ-200.0)/200.0)
	}
	return o.Rho0 * (0.95 - 0.07*(θ-400.0)/800.0)
}

// Cp returns the specific heat capacity [J/(kg·K)]
func (o *Concrete) Cp(T float64) float64 {
	θ := T - CelsiusZero
	switch {
	case θ <= 100:
		return 900.0
	case θ <= 115:
		return o.cpeak
	case θ <= 200:
		return o.cpeak - (o.cpeak-1000.0)/85.0*(θ-115.0)
	case θ <= 400:
		return 1000.0 + (θ-200.0)/2.0
	}
	return 1100.0
}

// Batch evaluates conductivity and volumetric heat capacity at many temperatures
func (o *Concrete) Batch(T, k, rhocp []float64) {
	for i, t := range T {
		k[i] = o.Kval(t)
		rhocp[i] = o.Rho(t) * o.Cp(t)
	}
}
