// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// LinSolver solves the sparse linear systems arising in the Newton
// iterations. Init is called once with the triplet holding the fixed
// Jacobian structure; Solve is called whenever its values have changed.
type LinSolver interface {
	Init(t *la.Triplet) error   // initialises with the (fixed) structure of the system
	Solve(x, b []float64) error // Solve finds x such that J*x = b, refactorising first
	Free()                      // Free frees resources
}

// Sparse wraps the gosl sparse solvers (umfpack, mumps) behind the
// LinSolver interface
type Sparse struct {
	Name string // solver name; e.g. "umfpack"

	// derived
	ls          la.LinSol
	t           *la.Triplet
	initialised bool
}

// NewSparse returns a solver backed by the named gosl implementation
func NewSparse(name string) *Sparse {
	return &Sparse{Name: name}
}

// Init initialises the solver with the structure of the system
func (o *Sparse) Init(t *la.Triplet) (err error) {
	o.ls = la.GetSolver(o.Name)
	symmetric, verbose, timing := false, false, false
	if err = o.ls.InitR(t, symmetric, verbose, timing); err != nil {
		return chk.Err("cannot initialise linear solver %q: %v", o.Name, err)
	}
	o.t = t
	o.initialised = true
	return
}

// Solve refactorises and solves J*x = b
func (o *Sparse) Solve(x, b []float64) (err error) {
	if !o.initialised {
		return chk.Err("linear solver %q was not initialised", o.Name)
	}
	if err = o.ls.Fact(); err != nil {
		return chk.Err("factorisation failed: %v", err)
	}
	sumToRoot := false
	if err = o.ls.SolveR(x, b, sumToRoot); err != nil {
		return chk.Err("solution of linear system failed: %v", err)
	}
	return
}

// Free frees resources
func (o *Sparse) Free() {
	if o.initialised {
		o.ls.Free()
		o.initialised = false
	}
}
