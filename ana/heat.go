// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ana implements analytical solutions of transient heat conduction
// problems for verifying the finite element solver
package ana

import (
	"math"
)

// SemiInfiniteConvection computes the temperature in a semi-infinite solid,
// initially at Tini, whose surface at x=0 exchanges heat by convection with
// a gas at constant temperature Tgas. With α = k/(ρ・cp), η = x/(2・√(α・t))
// and β = h・√(α・t)/k the solution is:
//
//    T(x,t) - Tini
//    ------------- = erfc(η) - exp(h・x/k + β²)・erfc(η + β)
//    Tgas  - Tini
//
type SemiInfiniteConvection struct {
	K    float64 // thermal conductivity
	Rho  float64 // density
	Cp   float64 // specific heat capacity
	H    float64 // surface heat transfer coefficient
	Tini float64 // initial temperature
	Tgas float64 // gas temperature
	α    float64 // diffusivity
}

// Init initialises this structure
func (o *SemiInfiniteConvection) Init(k, rho, cp, h, Tini, Tgas float64) {
	o.K = k
	o.Rho = rho
	o.Cp = cp
	o.H = h
	o.Tini = Tini
	o.Tgas = Tgas
	o.α = k / (rho * cp)
}

// Temp computes the temperature at depth x and time t
func (o SemiInfiniteConvection) Temp(x, t float64) float64 {
	if t <= 0 {
		return o.Tini
	}
	s := math.Sqrt(o.α * t)
	η := x / (2.0 * s)
	β := o.H * s / o.K
	a := o.H*x/o.K + β*β
	θ := math.Erfc(η) - expErfc(a, η+β)
	return o.Tini + (o.Tgas-o.Tini)*θ
}

// expErfc computes exp(a)・erfc(b) avoiding overflow for large arguments
func expErfc(a, b float64) float64 {
	if b > 25 {
		// erfc(b) ≈ exp(-b²)/(b・√π)
		return math.Exp(a-b*b) / (b * math.SqrtPi)
	}
	return math.Exp(a) * math.Erfc(b)
}

// LumpedCapacitance computes the uniform temperature of a body with
// negligible internal resistance exposed to a gas at constant temperature
type LumpedCapacitance struct {
	H    float64 // surface heat transfer coefficient
	Area float64 // exposed surface area
	Vol  float64 // volume
	Rho  float64 // density
	Cp   float64 // specific heat capacity
	Tini float64 // initial temperature
	Tgas float64 // gas temperature
	τ    float64 // time constant
}

// Init initialises this structure
func (o *LumpedCapacitance) Init(h, area, vol, rho, cp, Tini, Tgas float64) {
	o.H = h
	o.Area = area
	o.Vol = vol
	o.Rho = rho
	o.Cp = cp
	o.Tini = Tini
	o.Tgas = Tgas
	o.τ = rho * cp * vol / (h * area)
}

// Temp computes the temperature at time t
func (o LumpedCapacitance) Temp(t float64) float64 {
	return o.Tgas + (o.Tini-o.Tgas)*math.Exp(-t/o.τ)
}
