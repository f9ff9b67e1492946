// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/la"

	"github.com/DanBeranek/temperatureanalysis-sub000/spm"
)

// Assembler holds the global matrices and vectors of the problem together
// with the symbolic machinery to fill them. All patterns and scatter tables
// are computed once; assembly only zeroes and accumulates values.
type Assembler struct {

	// domain
	dom *Domain

	// patterns and scatter tables
	PatA  *spm.Pattern // pattern of K and C from area elements
	PatB  *spm.Pattern // pattern of dF/dT from boundary elements
	PatJ  *spm.Pattern // union pattern of the Jacobian
	scatA [][]int      // per area element positions in PatA
	scatB [][]int      // per boundary element positions in PatB
	posA  []int        // PatA positions to PatJ positions
	posB  []int        // PatB positions to PatJ positions

	// global matrices and vectors
	K *spm.Matrix // conductivity matrix
	C *spm.Matrix // capacity matrix
	D *spm.Matrix // load tangent dF/dT
	J *spm.Matrix // Jacobian C/Δt + K + dF/dT
	F []float64   // boundary load vector

	// scratchpad for local matrices, per size
	mats map[int][][]float64
	vecs map[int][]float64
}

// NewAssembler precomputes the sparsity patterns, the per element scatter
// tables and the merge maps of the Jacobian
func NewAssembler(dom *Domain) (o *Assembler, err error) {

	// new assembler
	o = &Assembler{
		dom:  dom,
		mats: make(map[int][][]float64),
		vecs: make(map[int][]float64),
	}

	// pattern of area matrices
	blocks := make([][]int, len(dom.Areas))
	for i, e := range dom.Areas {
		blocks[i] = e.Dofs()
	}
	o.PatA = spm.NewPattern(dom.Ny, blocks)
	o.scatA = make([][]int, len(dom.Areas))
	for i, e := range dom.Areas {
		if o.scatA[i], err = o.PatA.Scatter(e.Dofs()); err != nil {
			return nil, err
		}
	}

	// pattern of the boundary load tangent
	blocks = make([][]int, len(dom.Bounds))
	for i, e := range dom.Bounds {
		blocks[i] = e.Dofs()
	}
	o.PatB = spm.NewPattern(dom.Ny, blocks)
	o.scatB = make([][]int, len(dom.Bounds))
	for i, e := range dom.Bounds {
		if o.scatB[i], err = o.PatB.Scatter(e.Dofs()); err != nil {
			return nil, err
		}
	}

	// union pattern of the Jacobian
	o.PatJ, o.posA, o.posB, err = spm.Merge(o.PatA, o.PatB)
	if err != nil {
		return nil, err
	}

	// matrices and vectors
	o.K = spm.NewMatrix(o.PatA)
	o.C = spm.NewMatrix(o.PatA)
	o.D = spm.NewMatrix(o.PatB)
	o.J = spm.NewMatrix(o.PatJ)
	o.F = make([]float64, dom.Ny)
	return
}

// System assembles the conductivity and capacity matrices with material
// properties evaluated at the temperatures T
func (o *Assembler) System(T []float64) {
	o.K.Zero()
	o.C.Zero()
	for i, e := range o.dom.Areas {
		n := len(e.Dofs())
		local := o.mat(n)
		e.Conductivity(local, T)
		o.K.AddLocal(o.scatA[i], local)
		e.Capacity(local, T)
		o.C.AddLocal(o.scatA[i], local)
	}
}

// Load assembles the boundary load vector F and its tangent dF/dT at the
// temperatures T and time t [s]
func (o *Assembler) Load(T []float64, t float64) {
	la.VecFill(o.F, 0)
	o.D.Zero()
	for i, e := range o.dom.Bounds {
		dofs := e.Dofs()
		n := len(dofs)
		fe := o.vec(n)
		e.LoadVector(fe, T, t)
		for a, dof := range dofs {
			o.F[dof] += fe[a]
		}
		de := o.mat(n)
		e.LoadTangent(de, T)
		o.D.AddLocal(o.scatB[i], de)
	}
}

// Jacobian combines J = C/Δt + K + dF/dT using the precomputed merge maps
func (o *Assembler) Jacobian(invdt float64) {
	o.J.Zero()
	for p, q := range o.posA {
		o.J.Val[q] = o.C.Val[p]*invdt + o.K.Val[p]
	}
	for p, q := range o.posB {
		o.J.Val[q] += o.D.Val[p]
	}
}

// Residual computes R = C*Tnew/Δt - cold + K*Tnew + F where cold holds the
// frozen term C*Told/Δt
func (o *Assembler) Residual(R, Tnew, cold []float64, invdt float64) {
	la.VecFill(R, 0)
	o.C.MatVecAdd(R, invdt, Tnew)
	o.K.MatVecAdd(R, 1, Tnew)
	for i := range R {
		R[i] += o.F[i] - cold[i]
	}
}

// mat returns a scratch local matrix of dimension n
func (o *Assembler) mat(n int) [][]float64 {
	m, ok := o.mats[n]
	if !ok {
		m = la.MatAlloc(n, n)
		o.mats[n] = m
	}
	return m
}

// vec returns a scratch local vector of dimension n
func (o *Assembler) vec(n int) []float64 {
	v, ok := o.vecs[n]
	if !ok {
		v = make([]float64, n)
		o.vecs[n] = v
	}
	return v
}
