// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/DanBeranek/temperatureanalysis-sub000/mdl/thermal"
)

// Tri3 implements the 3-node linear triangle for heat conduction. The
// gradient matrix B and the Jacobian determinant are constant and computed
// once; only the material properties vary with the nodal temperatures.
//
//	B_N = [ dN1/dr dN2/dr dN3/dr ]  =  [ -1  1  0 ]
//	      [ dN1/ds dN2/ds dN3/ds ]     [ -1  0  1 ]
//
//	B = inv(J) * B_N   with   J = B_N * [x y]
type Tri3 struct {

	// input
	Eid int           // element id
	Tag string        // physical group
	Mdl thermal.Model // material model

	// constant geometry data
	B    [][]float64 // (2,3) gradient matrix
	BtB  [][]float64 // (3,3) Bᵀ*B
	DetJ float64     // |det(J)| = twice the area

	// integration rule
	ips [][]float64 // triangle coordinates of integration points
	wts []float64   // weights

	// scratchpad
	dofs  []int
	batch thermal.Batcher // non-nil if Mdl supports batch evaluation
	tgp   []float64       // temperatures at integration points
	kgp   []float64       // conductivities at integration points
	rcgp  []float64       // volumetric heat capacities at integration points
}

// NewTri3 returns a new triangle with B and detJ precomputed
func NewTri3(id int, tag string, dofs []int, x, y []float64, mdl thermal.Model) (o *Tri3, err error) {

	// check
	if len(dofs) != 3 || len(x) != 3 || len(y) != 3 {
		return nil, chk.Err("cell %d (group %q): tri3 needs 3 nodes; got ndofs=%d nx=%d ny=%d", id, tag, len(dofs), len(x), len(y))
	}

	// new element
	o = &Tri3{Eid: id, Tag: tag, Mdl: mdl}
	o.dofs = make([]int, 3)
	copy(o.dofs, dofs)
	o.batch, _ = mdl.(thermal.Batcher)

	// jacobian
	J00 := x[1] - x[0]
	J01 := y[1] - y[0]
	J10 := x[2] - x[0]
	J11 := y[2] - y[0]
	det := J00*J11 - J01*J10
	o.DetJ = math.Abs(det)
	if o.DetJ < 1e-14 {
		return nil, chk.Err("cell %d (group %q): degenerate triangle: |detJ|=%g", id, tag, o.DetJ)
	}

	// B = inv(J) * B_N
	i00, i01 := J11/det, -J01/det
	i10, i11 := -J10/det, J00/det
	bn := [][]float64{{-1, 1, 0}, {-1, 0, 1}}
	o.B = la.MatAlloc(2, 3)
	for j := 0; j < 3; j++ {
		o.B[0][j] = i00*bn[0][j] + i01*bn[1][j]
		o.B[1][j] = i10*bn[0][j] + i11*bn[1][j]
	}
	o.BtB = la.MatAlloc(3, 3)
	for m := 0; m < 3; m++ {
		for n := 0; n < 3; n++ {
			o.BtB[m][n] = o.B[0][m]*o.B[0][n] + o.B[1][m]*o.B[1][n]
		}
	}

	// integration rule and scratchpad
	o.ips, o.wts, err = TriGauss(3)
	if err != nil {
		return nil, err
	}
	nip := len(o.ips)
	o.tgp = make([]float64, nip)
	o.kgp = make([]float64, nip)
	o.rcgp = make([]float64, nip)
	return
}

// Dofs returns the global equation numbers
func (o *Tri3) Dofs() []int {
	return o.dofs
}

// Conductivity computes K = Bᵀ*B * |detJ| * Σ k(T_i)*w_i into the 3x3
// matrix K, overwriting its contents
func (o *Tri3) Conductivity(K [][]float64, T []float64) {
	o.ipProps(T)
	kwsum := 0.0
	for i, w := range o.wts {
		kwsum += o.kgp[i] * w
	}
	la.MatCopy(K, o.DetJ*kwsum, o.BtB)
}

// Capacity computes C = Σ Nᵀ*N * ρcp(T_i) * |detJ| * w_i into the 3x3
// matrix C, overwriting its contents
func (o *Tri3) Capacity(C [][]float64, T []float64) {
	o.ipProps(T)
	la.MatFill(C, 0)
	for i, p := range o.ips {
		coef := o.rcgp[i] * o.DetJ * o.wts[i]
		for m := 0; m < 3; m++ {
			for n := 0; n < 3; n++ {
				C[m][n] += p[m] * p[n] * coef
			}
		}
	}
}

// ipProps interpolates nodal temperatures to the integration points and
// evaluates the material properties there. The shape functions of the tri3
// coincide with the triangle coordinates of the points.
func (o *Tri3) ipProps(T []float64) {
	for i, p := range o.ips {
		o.tgp[i] = p[0]*T[o.dofs[0]] + p[1]*T[o.dofs[1]] + p[2]*T[o.dofs[2]]
	}
	if o.batch != nil {
		o.batch.Batch(o.tgp, o.kgp, o.rcgp)
		return
	}
	for i, t := range o.tgp {
		o.kgp[i] = o.Mdl.Kval(t)
		o.rcgp[i] = thermal.RhoCp(o.Mdl, t)
	}
}
