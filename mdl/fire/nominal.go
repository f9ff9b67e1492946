// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fire

import "math"

// Iso834 implements the ISO 834 cellulosic fire curve
type Iso834 struct{}

// Hydrocarbon implements the EN 1991-1-2 hydrocarbon fire curve. With
// Modified set, the peak rises to 1300 [°C] (HCM curve)
type Hydrocarbon struct {
	Modified bool
}

// add curves to factory
func init() {
	allocators["iso834"] = func() Curve { return new(Iso834) }
	allocators["hc"] = func() Curve { return new(Hydrocarbon) }
	allocators["hcm"] = func() Curve { return &Hydrocarbon{Modified: true} }
}

// Temp returns the gas temperature [K] at time t [s]
func (o *Iso834) Temp(t float64) float64 {
	return kelvin + 20.0 + 345.0*math.Log10(8.0*(t/60.0)+1.0)
}

// Temp returns the gas temperature [K] at time t [s]
func (o *Hydrocarbon) Temp(t float64) float64 {
	rise := 1080.0
	if o.Modified {
		rise = 1280.0
	}
	m := t / 60.0
	return kelvin + 20.0 + rise*(1.0-0.325*math.Exp(-0.167*m)-0.675*math.Exp(-2.5*m))
}
