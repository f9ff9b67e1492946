// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/DanBeranek/temperatureanalysis-sub000/ele"
	"github.com/DanBeranek/temperatureanalysis-sub000/mdl/thermal"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01. rectangle mesh with four boundaries")

	msh, err := ReadMsh("data/rectangle.msh")
	if err != nil {
		tst.Errorf("ReadMsh failed: %v\n", err)
		return
	}

	chk.IntAssert(len(msh.Verts), 12)
	chk.Vector(tst, "vert0", 1e-15, msh.Verts[0].C, []float64{0, 0})
	chk.Vector(tst, "vert11", 1e-15, msh.Verts[11].C, []float64{0.2, 0.3})

	chk.Strings(tst, "surf groups", msh.SurfGroups, []string{"Domain"})
	chk.Strings(tst, "line groups", msh.LineGroups, []string{"Bottom", "Left", "Right", "Top"})

	chk.IntAssert(len(msh.Surfs["Domain"]), 12)
	chk.IntAssert(len(msh.Lines["Bottom"]), 2)
	chk.IntAssert(len(msh.Lines["Right"]), 3)
	chk.IntAssert(len(msh.Lines["Top"]), 2)
	chk.IntAssert(len(msh.Lines["Left"]), 3)

	// connectivity is zero based
	first := msh.Surfs["Domain"][0]
	chk.IntAssert(int(first.Kind), int(ele.KindTri3))
	chk.Ints(tst, "tri verts", first.Verts, []int{0, 1, 3})
	chk.Ints(tst, "line verts", msh.Lines["Bottom"][0].Verts, []int{0, 1})

	// thermocouple at the node with tag 5
	id, found := msh.Thermocouples["THERMOCOUPLE-A"]
	if !found {
		tst.Errorf("missing thermocouple\n")
		return
	}
	chk.IntAssert(id, 4)
}

func Test_msh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh02. invalid meshes fail with context")

	var merr *MeshError

	_, err := ReadMsh("data/bad-nophys.msh")
	if !errors.As(err, &merr) {
		tst.Errorf("element without physical group should have failed with MeshError; got %v\n", err)
	}

	_, err = ReadMsh("data/bad-thermocouple.msh")
	if err == nil {
		tst.Errorf("thermocouple with two nodes should have failed\n")
	}

	_, err = ReadMsh("data/does-not-exist.msh")
	if err == nil {
		tst.Errorf("missing file should have failed\n")
	}
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. materials database")

	mdb, err := ReadMat("data", "materials.mat")
	if err != nil {
		tst.Errorf("ReadMat failed: %v\n", err)
		return
	}
	chk.IntAssert(len(mdb.Materials), 3)

	con := mdb.Get("c30")
	if con == nil {
		tst.Errorf("missing material c30\n")
		return
	}
	cc, ok := con.Model.(*thermal.Concrete)
	if !ok {
		tst.Errorf("c30 must be a concrete model\n")
		return
	}
	chk.Scalar(tst, "rho0", 1e-15, cc.Rho0, 2300)
	chk.Scalar(tst, "u", 1e-15, cc.U, 1.5)
	if cc.Upper {
		tst.Errorf("c30 must use the lower conductivity limit\n")
	}

	stl := mdb.Get("s355")
	if stl == nil {
		tst.Errorf("missing material s355\n")
		return
	}
	chk.Scalar(tst, "steel k(20°C)", 1e-12, stl.Model.Kval(thermal.CelsiusZero+20), 53.334)

	ins := mdb.Get("insulation")
	if ins == nil {
		tst.Errorf("missing material insulation\n")
		return
	}
	chk.Scalar(tst, "insulation ρ", 1e-15, ins.Model.Rho(500), 300.0)

	if mdb.Get("unknown") != nil {
		tst.Errorf("unknown material must be nil\n")
	}
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. simulation file with defaults")

	sim, err := ReadSim("data/rectangle.sim")
	if err != nil {
		tst.Errorf("ReadSim failed: %v\n", err)
		return
	}

	chk.String(tst, sim.Key, "rectangle")
	chk.Scalar(tst, "dt", 1e-15, sim.Solver.Dt, 30)
	chk.Scalar(tst, "tf", 1e-15, sim.Solver.Tf, 300)

	// defaults
	chk.Scalar(tst, "itol", 1e-15, sim.Solver.Itol, 1e-2)
	chk.IntAssert(sim.Solver.NmaxIt, 100)
	chk.Scalar(tst, "tini", 1e-15, sim.Solver.Tini, 293.15)
	chk.String(tst, sim.Solver.LinSol, "umfpack")

	// mappings
	if _, found := sim.MatOf["Domain"]; !found {
		tst.Errorf("missing material mapping for group Domain\n")
	}
	curve, found := sim.CurveOf["Bottom"]
	if !found {
		tst.Errorf("missing curve mapping for group Bottom\n")
		return
	}
	chk.Scalar(tst, "T(0)", 1e-12, curve.Temp(0), 293.15)

	// mesh came along
	chk.IntAssert(len(sim.Msh.Verts), 12)
	chk.Strings(tst, "line groups", sim.Msh.LineGroups, []string{"Bottom"})
}
