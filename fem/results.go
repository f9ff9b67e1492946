// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/chk"

// Results holds the nodal temperature history of a simulation. The first
// entry is the initial state at time zero; one entry follows per committed
// time step.
type Results struct {
	Dom   *Domain     // the domain
	Times []float64   // time of each state [s]
	Temps [][]float64 // nodal temperatures of each state [K]
}

// commit appends a copy of the temperature vector
func (o *Results) commit(t float64, T []float64) {
	c := make([]float64, len(T))
	copy(c, T)
	o.Times = append(o.Times, t)
	o.Temps = append(o.Temps, c)
}

// NSteps returns the number of committed states, including the initial one
func (o *Results) NSteps() int {
	return len(o.Times)
}

// Last returns the final temperature vector
func (o *Results) Last() []float64 {
	return o.Temps[len(o.Temps)-1]
}

// NodeHistory returns the temperature history of one equation
func (o *Results) NodeHistory(eq int) (hist []float64, err error) {
	if eq < 0 || eq >= o.Dom.Ny {
		return nil, chk.Err("equation number %d is out of range [0,%d)", eq, o.Dom.Ny)
	}
	hist = make([]float64, len(o.Temps))
	for i, T := range o.Temps {
		hist[i] = T[eq]
	}
	return
}

// ThermocoupleHistory returns the temperature history at a named
// measurement point
func (o *Results) ThermocoupleHistory(name string) (hist []float64, err error) {
	eq, found := o.Dom.Thermocouples[name]
	if !found {
		return nil, chk.Err("cannot find thermocouple %q", name)
	}
	return o.NodeHistory(eq)
}
