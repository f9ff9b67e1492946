// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/DanBeranek/temperatureanalysis-sub000/mdl/fire"
	"github.com/DanBeranek/temperatureanalysis-sub000/mdl/thermal"
)

// Data holds global simulation data
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Mshfile string `json:"mshfile"` // mesh file path, relative to the .sim file
	Matfile string `json:"matfile"` // materials file path, relative to the .sim file
	DirOut  string `json:"dirout"`  // directory for output
}

// SolverData holds data for the transient solver
type SolverData struct {
	Dt     float64 `json:"dt"`     // time step [s]
	Tf     float64 `json:"tf"`     // final time [s]
	Itol   float64 `json:"itol"`   // iterations tolerance on ‖R‖∞
	NmaxIt int     `json:"nmaxit"` // max number of iterations per time step
	Tini   float64 `json:"tini"`   // initial temperature [K]
	LinSol string  `json:"linsol"` // linear solver name; e.g. "umfpack"
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Itol = 1e-2
	o.NmaxIt = 100
	o.Tini = 293.15
	o.LinSol = "umfpack"
}

// Validate checks the solver data
func (o *SolverData) Validate() error {
	if o.Dt <= 0 {
		return chk.Err("solver: time step dt=%g must be positive", o.Dt)
	}
	if o.Tf < o.Dt {
		return chk.Err("solver: final time tf=%g must be at least one time step dt=%g", o.Tf, o.Dt)
	}
	if o.Itol <= 0 {
		return chk.Err("solver: tolerance itol=%g must be positive", o.Itol)
	}
	if o.NmaxIt < 1 {
		return chk.Err("solver: nmaxit=%d must be at least 1", o.NmaxIt)
	}
	return nil
}

// DomainData assigns a material to a physical surface group
type DomainData struct {
	Name string `json:"name"` // physical group name
	Mat  string `json:"mat"`  // material name in the .mat file
}

// BoundaryData assigns a fire curve to a physical line group. Either Curve
// names a predefined curve or Times and Temps give a tabulated one.
type BoundaryData struct {
	Name  string    `json:"name"`  // physical group name
	Curve string    `json:"curve"` // predefined curve name; e.g. "iso834"
	Times []float64 `json:"times"` // times [s] of a tabulated curve
	Temps []float64 `json:"temps"` // gas temperatures [K] of a tabulated curve
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data       Data            `json:"data"`
	Domains    []*DomainData   `json:"domains"`
	Boundaries []*BoundaryData `json:"boundaries"`
	Solver     SolverData      `json:"solver"`

	// derived
	Key     string                   // simulation key; name of .sim file without extension
	DirOut  string                   // output directory
	Mdb     *MatDb                   // materials database
	Msh     *Mesh                    // the mesh
	MatOf   map[string]thermal.Model // material model per surface group
	CurveOf map[string]fire.Curve    // fire curve per line group
}

// ReadSim reads a simulation file, the materials database and the mesh, and
// builds the group to model and group to curve mappings
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// new sim
	o = new(Simulation)

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.Solver.SetDefault()

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q: %v", simfilepath, err)
	}
	if err = o.Solver.Validate(); err != nil {
		return nil, err
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	o.Key = io.FnKey(filepath.Base(simfilepath))

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = filepath.Join("/tmp/temperatureanalysis", o.Key)
	}

	// materials
	if o.Data.Matfile == "" {
		return nil, chk.Err("%s: materials file not given", simfilepath)
	}
	o.Mdb, err = ReadMat(dir, o.Data.Matfile)
	if err != nil {
		return nil, err
	}

	// mesh
	if o.Data.Mshfile == "" {
		return nil, chk.Err("%s: mesh file not given", simfilepath)
	}
	o.Msh, err = ReadMsh(filepath.Join(dir, o.Data.Mshfile))
	if err != nil {
		return nil, err
	}

	// material models per surface group
	o.MatOf = make(map[string]thermal.Model)
	for _, d := range o.Domains {
		mat := o.Mdb.Get(d.Mat)
		if mat == nil {
			return nil, chk.Err("%s: domain %q: cannot find material %q", simfilepath, d.Name, d.Mat)
		}
		if _, found := o.MatOf[d.Name]; found {
			return nil, chk.Err("%s: duplicate domain %q", simfilepath, d.Name)
		}
		o.MatOf[d.Name] = mat.Model
	}

	// fire curves per line group
	o.CurveOf = make(map[string]fire.Curve)
	for _, bc := range o.Boundaries {
		if _, found := o.CurveOf[bc.Name]; found {
			return nil, chk.Err("%s: duplicate boundary %q", simfilepath, bc.Name)
		}
		var curve fire.Curve
		if len(bc.Times) > 0 || len(bc.Temps) > 0 {
			curve, err = fire.NewTable(bc.Times, bc.Temps)
		} else {
			curve, err = fire.New(bc.Curve)
		}
		if err != nil {
			return nil, chk.Err("%s: boundary %q: %v", simfilepath, bc.Name, err)
		}
		o.CurveOf[bc.Name] = curve
	}
	return
}
