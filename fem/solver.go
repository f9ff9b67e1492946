// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"context"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// NonConvergence reports a time step whose Newton iterations exhausted the
// iteration limit
type NonConvergence struct {
	Time  float64 // time of failing step [s]
	It    int     // iterations performed
	Resid float64 // last residual norm ‖R‖∞
}

func (e *NonConvergence) Error() string {
	return io.Sf("Newton-Raphson did not converge after %d iterations at time %g s (‖R‖∞ = %g)", e.It, e.Time, e.Resid)
}

// Options holds the parameters of the transient solution
type Options struct {
	Dt       float64       // time step [s]
	Tf       float64       // final time [s]
	Tini     float64       // initial temperature [K]; default is 293.15
	Itol     float64       // tolerance on ‖R‖∞; default is 1e-2
	NmaxIt   int           // iteration limit per step; default is 100
	LinSol   LinSolver     // linear solver; default is umfpack
	Progress func(pct int) // called after each committed step with the percentage done
}

// Solver integrates the semi-discrete heat equation with the backward Euler
// scheme, solving the nonlinear system of each time step with Newton-Raphson
// iterations. The conductivity and capacity matrices are frozen at the
// beginning of each step; the fire load and its tangent are re-linearised
// every iteration.
type Solver struct {

	// input
	Dom  *Domain
	Asm  *Assembler
	Opts Options

	// state
	T    []float64 // committed nodal temperatures
	Tnew []float64 // trial nodal temperatures

	// scratchpad
	resid []float64   // residual vector
	δT    []float64   // temperature corrections
	cold  []float64   // C*Told/Δt, frozen during iterations
	tJ    *la.Triplet // Jacobian in triplet form for the linear solver

	// linear solver
	lis     LinSolver
	lisInit bool
}

// NewSolver validates the options and prepares the assembler and the
// state vectors
func NewSolver(dom *Domain, opts Options) (o *Solver, err error) {

	// default options
	if opts.Tini == 0 {
		opts.Tini = 293.15
	}
	if opts.Itol == 0 {
		opts.Itol = 1e-2
	}
	if opts.NmaxIt == 0 {
		opts.NmaxIt = 100
	}
	if opts.LinSol == nil {
		opts.LinSol = NewSparse("umfpack")
	}
	if opts.Dt <= 0 {
		return nil, chk.Err("time step Δt=%g must be positive", opts.Dt)
	}
	if opts.Tf < opts.Dt {
		return nil, chk.Err("final time tf=%g must be at least one time step Δt=%g", opts.Tf, opts.Dt)
	}

	// new solver
	o = &Solver{Dom: dom, Opts: opts, lis: opts.LinSol}
	o.Asm, err = NewAssembler(dom)
	if err != nil {
		return nil, err
	}

	// state and scratchpad
	ny := dom.Ny
	o.T = make([]float64, ny)
	la.VecFill(o.T, opts.Tini)
	o.Tnew = make([]float64, ny)
	o.resid = make([]float64, ny)
	o.δT = make([]float64, ny)
	o.cold = make([]float64, ny)
	o.tJ = new(la.Triplet)
	o.tJ.Init(ny, ny, o.Asm.PatJ.Nnz())
	return
}

// Run integrates from time zero to the final time. The returned results
// always include the initial state; on failure they hold all states
// committed before the error. The context is checked between time steps.
func (o *Solver) Run(ctx context.Context) (res *Results, err error) {

	// initial state
	res = &Results{Dom: o.Dom}
	res.commit(0, o.T)

	// time loop
	t := 0.0
	step := 0
	invdt := 1.0 / o.Opts.Dt
	for t < o.Opts.Tf {

		// cancellation
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		// advance
		t += o.Opts.Dt
		step++
		it, rnorm, err := o.doStep(t, invdt)
		if err != nil {
			return res, err
		}

		// commit
		copy(o.T, o.Tnew)
		res.commit(t, o.T)

		// report
		pct := int(t / o.Opts.Tf * 100.0)
		if pct > 100 {
			pct = 100
		}
		io.Pf("step %4d  t=%10.2f s  it=%2d  resid=%10.3e  (%d%%)\n", step, t, it, rnorm, pct)
		if o.Opts.Progress != nil {
			o.Opts.Progress(pct)
		}
	}
	return
}

// Free frees the linear solver resources
func (o *Solver) Free() {
	o.lis.Free()
}

// doStep solves the nonlinear system of one time step, leaving the
// converged temperatures in Tnew
func (o *Solver) doStep(t, invdt float64) (it int, rnorm float64, err error) {

	// trial state and frozen matrices
	copy(o.Tnew, o.T)
	o.Asm.System(o.T)
	o.Asm.Load(o.Tnew, t)
	o.Asm.Jacobian(invdt)

	// cold = C*Told/Δt does not change during iterations
	la.VecFill(o.cold, 0)
	o.Asm.C.MatVecAdd(o.cold, invdt, o.T)

	// initial residual
	o.Asm.Residual(o.resid, o.Tnew, o.cold, invdt)
	rnorm = la.VecLargest(o.resid, 1)

	// iterations
	for rnorm > o.Opts.Itol {
		if it >= o.Opts.NmaxIt {
			return it, rnorm, &NonConvergence{Time: t, It: it, Resid: rnorm}
		}

		// solve J*δT = -R
		o.Asm.J.PutInto(o.tJ)
		if !o.lisInit {
			if err = o.lis.Init(o.tJ); err != nil {
				return
			}
			o.lisInit = true
		}
		for i := range o.resid {
			o.resid[i] = -o.resid[i]
		}
		if err = o.lis.Solve(o.δT, o.resid); err != nil {
			return
		}

		// update trial temperatures
		for i := range o.Tnew {
			o.Tnew[i] += o.δT[i]
		}

		// re-linearise the fire load
		o.Asm.Load(o.Tnew, t)
		o.Asm.Jacobian(invdt)
		o.Asm.Residual(o.resid, o.Tnew, o.cold, invdt)
		rnorm = la.VecLargest(o.resid, 1)
		it++
	}
	return
}
