// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fire implements design fire curves providing the gas temperature
// near a boundary as a function of time
package fire

import "github.com/cpmech/gosl/chk"

// Curve computes the gas temperature for a design fire
type Curve interface {
	Temp(t float64) float64 // Temp returns the gas temperature [K] at time t [s]
}

// New returns one of the predefined fire curves
func New(name string) (curve Curve, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("fire.New: cannot find curve named %q", name)
	}
	return allocator(), nil
}

// allocators holds the available curve allocators
var allocators = map[string]func() Curve{}

// kelvin is the offset between the Kelvin and Celsius scales
const kelvin = 273.15
