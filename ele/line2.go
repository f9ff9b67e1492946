// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/DanBeranek/temperatureanalysis-sub000/mdl/fire"
)

// heat exchange constants on fire exposed boundaries
const (
	HeatTransferCoef = 9.0     // convective heat transfer coefficient [W/(m²·K)]
	StefanBoltzmann  = 5.67e-8 // Stefan-Boltzmann constant [W/(m²·K⁴)]
)

// Line2 implements the 2-node linear edge element carrying the nonlinear
// convective and radiative heat exchange with the fire gases:
//
//	f_m   = ∫ N_m * ( α*(T - Tf) + σ*(T⁴ - Tf⁴) ) dΓ
//	D_mn  = ∫ N_m*N_n * ( α + 4σT³ ) dΓ
//
// where Tf is the gas temperature given by the fire curve
type Line2 struct {

	// input
	Eid   int        // element id
	Tag   string     // physical group
	Curve fire.Curve // fire curve of the exposed boundary

	// constant geometry data
	DetJ float64 // half the edge length

	// integration rule
	ips []float64 // natural coordinates of integration points
	wts []float64 // weights

	// scratchpad
	dofs []int
}

// NewLine2 returns a new edge element with detJ precomputed
func NewLine2(id int, tag string, dofs []int, x, y []float64, curve fire.Curve) (o *Line2, err error) {

	// check
	if len(dofs) != 2 || len(x) != 2 || len(y) != 2 {
		return nil, chk.Err("cell %d (group %q): lin2 needs 2 nodes; got ndofs=%d nx=%d ny=%d", id, tag, len(dofs), len(x), len(y))
	}
	if curve == nil {
		return nil, chk.Err("cell %d (group %q): edge element needs a fire curve", id, tag)
	}

	// new element
	o = &Line2{Eid: id, Tag: tag, Curve: curve}
	o.dofs = make([]int, 2)
	copy(o.dofs, dofs)

	// jacobian: dx/dξ with shape function derivatives [-1/2, 1/2]
	jx := 0.5 * (x[1] - x[0])
	jy := 0.5 * (y[1] - y[0])
	o.DetJ = math.Sqrt(jx*jx + jy*jy)
	if o.DetJ < 1e-14 {
		return nil, chk.Err("cell %d (group %q): degenerate edge: |detJ|=%g", id, tag, o.DetJ)
	}

	// integration rule
	o.ips, o.wts, err = EdgeGauss(3)
	return
}

// Dofs returns the global equation numbers
func (o *Line2) Dofs() []int {
	return o.dofs
}

// LoadVector computes the boundary load vector into the length-2 vector f,
// overwriting its contents. t is the current time [s].
func (o *Line2) LoadVector(f []float64, T []float64, t float64) {
	Tf := o.Curve.Temp(t)
	Tf4 := Tf * Tf * Tf * Tf
	la.VecFill(f, 0)
	for i, ξ := range o.ips {
		n0 := (1.0 - ξ) / 2.0
		n1 := (1.0 + ξ) / 2.0
		Ti := n0*T[o.dofs[0]] + n1*T[o.dofs[1]]
		Ti4 := Ti * Ti * Ti * Ti
		flux := (HeatTransferCoef*(Ti-Tf) + StefanBoltzmann*(Ti4-Tf4)) * o.wts[i] * o.DetJ
		f[0] += n0 * flux
		f[1] += n1 * flux
	}
}

// LoadTangent computes ∂f/∂T into the 2x2 matrix D, overwriting its contents
func (o *Line2) LoadTangent(D [][]float64, T []float64) {
	la.MatFill(D, 0)
	for i, ξ := range o.ips {
		n0 := (1.0 - ξ) / 2.0
		n1 := (1.0 + ξ) / 2.0
		Ti := n0*T[o.dofs[0]] + n1*T[o.dofs[1]]
		coef := (HeatTransferCoef + 4.0*StefanBoltzmann*Ti*Ti*Ti) * o.wts[i] * o.DetJ
		D[0][0] += n0 * n0 * coef
		D[0][1] += n0 * n1 * coef
		D[1][0] += n1 * n0 * coef
		D[1][1] += n1 * n1 * coef
	}
}
