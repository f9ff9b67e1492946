// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package thermal implements temperature dependent material models for
// transient heat conduction analyses
package thermal

import (
	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for thermal material models. All temperatures
// are absolute [K]; properties are evaluated pointwise.
type Model interface {
	Init(prms fun.Params) error // initialises model with parameters
	Kval(T float64) float64   // Kval returns the thermal conductivity k(T) [W/(m·K)]
	Rho(T float64) float64    // Rho returns the density ρ(T) [kg/m³]
	Cp(T float64) float64     // Cp returns the specific heat capacity cp(T) [J/(kg·K)]
}

// Batcher is implemented by models that can evaluate properties at many
// temperatures in one call; e.g. at all integration points of an element.
// k[i] receives the conductivity and rhocp[i] the volumetric heat capacity
// ρ(T[i])·cp(T[i]) for each temperature T[i]. Slices must have equal length.
type Batcher interface {
	Batch(T, k, rhocp []float64)
}

// RhoCp returns the volumetric heat capacity ρ(T)·cp(T) [J/(m³·K)]
func RhoCp(m Model, T float64) float64 {
	return m.Rho(T) * m.Cp(T)
}

// New returns a new thermal model. Tabulated models must be created with
// NewGeneric instead, since parameter sets cannot carry tables.
func New(name string) (model Model, err error) {
	if name == "generic" {
		return nil, chk.Err("thermal.New: model %q requires tables; use NewGeneric", name)
	}
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("thermal.New: cannot find model named %q", name)
	}
	return allocator(), nil
}

// allocators holds the available model allocators
var allocators = map[string]func() Model{}

// CelsiusZero is the offset between the Kelvin and Celsius scales
const CelsiusZero = 273.15
