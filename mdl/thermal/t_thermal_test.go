// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_concrete01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("concrete01. EN 1992-1-2 concrete properties")

	mdl, err := New("concrete")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	prms := []*fun.P{
		{N: "rho0", V: 2300},
		{N: "u", V: 3},
		{N: "kupper", V: 1},
	}
	err = mdl.Init(prms)
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	// conductivity, upper limit
	chk.Scalar(tst, "k(20°C)", 1e-12, mdl.Kval(CelsiusZero+20), 1.951408)
	chk.Scalar(tst, "k(1300°C)", 1e-15, mdl.Kval(CelsiusZero+1300), 0.5996)

	// density
	chk.Scalar(tst, "ρ(100°C)", 1e-12, mdl.Rho(CelsiusZero+100), 2300.0)
	chk.Scalar(tst, "ρ(157.5°C)", 1e-12, mdl.Rho(CelsiusZero+157.5), 2277.0)
	chk.Scalar(tst, "ρ(300°C)", 1e-12, mdl.Rho(CelsiusZero+300), 2219.5)
	chk.Scalar(tst, "ρ(800°C)", 1e-12, mdl.Rho(CelsiusZero+800), 2104.5)

	// heat capacity with moisture peak at u = 3 %
	chk.Scalar(tst, "cp(50°C)", 1e-15, mdl.Cp(CelsiusZero+50), 900.0)
	chk.Scalar(tst, "cp(110°C)", 1e-12, mdl.Cp(CelsiusZero+110), 2020.0)
	chk.Scalar(tst, "cp(200°C)", 1e-12, mdl.Cp(CelsiusZero+200), 1000.0)
	chk.Scalar(tst, "cp(300°C)", 1e-12, mdl.Cp(CelsiusZero+300), 1050.0)
	chk.Scalar(tst, "cp(500°C)", 1e-15, mdl.Cp(CelsiusZero+500), 1100.0)
}

func Test_concrete02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("concrete02. lower conductivity limit and moisture checks")

	mdl, err := New("concrete")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init([]*fun.P{{N: "kupper", V: 0}})
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}
	chk.Scalar(tst, "k(20°C)", 1e-12, mdl.Kval(CelsiusZero+20), 1.333028)
	chk.Scalar(tst, "k(1300°C)", 1e-15, mdl.Kval(CelsiusZero+1300), 0.5488)

	// dry concrete has no moisture peak
	chk.Scalar(tst, "cp(110°C)", 1e-15, mdl.Cp(CelsiusZero+110), 900.0)

	// omitting kupper picks the lower limit curve
	def, _ := New("concrete")
	err = def.Init(nil)
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}
	chk.Scalar(tst, "k(20°C) default", 1e-12, def.Kval(CelsiusZero+20), 1.333028)

	// moisture out of range
	bad, _ := New("concrete")
	err = bad.Init([]*fun.P{{N: "u", V: 12}})
	if err == nil {
		tst.Errorf("moisture content u=12 should have failed\n")
	}
}

func Test_steel01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("steel01. EN 1993-1-2 steel properties")

	mdl, err := New("steel")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(nil)
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	chk.Scalar(tst, "k(20°C)", 1e-12, mdl.Kval(CelsiusZero+20), 53.334)
	chk.Scalar(tst, "k(900°C)", 1e-15, mdl.Kval(CelsiusZero+900), 27.3)
	chk.Scalar(tst, "ρ(500°C)", 1e-15, mdl.Rho(CelsiusZero+500), 7850.0)

	chk.Scalar(tst, "cp(0°C)", 1e-9, mdl.Cp(CelsiusZero), 7850.0*425.0)
	chk.Scalar(tst, "cp(700°C)", 1e-6, mdl.Cp(CelsiusZero+700), 7850.0*(666.0-13002.0/(700.0-738.0)))
	chk.Scalar(tst, "cp(800°C)", 1e-6, mdl.Cp(CelsiusZero+800), 7850.0*(545.0+17820.0/(800.0-731.0)))
	chk.Scalar(tst, "cp(1000°C)", 1e-9, mdl.Cp(CelsiusZero+1000), 7850.0*650.0)
}

func Test_generic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("generic01. tabulated model validation and interpolation")

	// invalid tables
	if _, err := NewGeneric([]float64{300, 400}, []float64{2300}, []float64{1.5, 1.5}, []float64{900, 900}); err == nil {
		tst.Errorf("length mismatch should have failed\n")
	}
	if _, err := NewGeneric([]float64{300}, []float64{2300}, []float64{1.5}, []float64{900}); err == nil {
		tst.Errorf("single point should have failed\n")
	}
	if _, err := NewGeneric([]float64{300, 300}, []float64{2300, 2300}, []float64{1.5, 1.5}, []float64{900, 900}); err == nil {
		tst.Errorf("non increasing temperatures should have failed\n")
	}
	if _, err := NewGeneric([]float64{300, 400}, []float64{2300, -1}, []float64{1.5, 1.5}, []float64{900, 900}); err == nil {
		tst.Errorf("negative density should have failed\n")
	}

	mdl, err := NewGeneric(
		[]float64{300, 500, 900},
		[]float64{2400, 2200, 2000},
		[]float64{2.0, 1.5, 1.0},
		[]float64{900, 1000, 1100},
	)
	if err != nil {
		tst.Errorf("NewGeneric failed: %v\n", err)
		return
	}

	// interpolation and clamping
	chk.Scalar(tst, "k(400)", 1e-15, mdl.Kval(400), 1.75)
	chk.Scalar(tst, "k(100)", 1e-15, mdl.Kval(100), 2.0)
	chk.Scalar(tst, "k(1200)", 1e-15, mdl.Kval(1200), 1.0)
	chk.Scalar(tst, "ρ(700)", 1e-15, mdl.Rho(700), 2100.0)
	chk.Scalar(tst, "cp(500)", 1e-15, mdl.Cp(500), 1000.0)
}

func Test_batch01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("batch01. batch evaluation matches pointwise calls")

	models := []Model{}
	con, _ := New("concrete")
	con.Init([]*fun.P{{N: "u", V: 1.5}})
	stl, _ := New("steel")
	stl.Init(nil)
	gen, _ := NewGeneric([]float64{300, 600}, []float64{2300, 2100}, []float64{1.6, 1.2}, []float64{900, 1100})
	models = append(models, con, stl, gen)

	T := []float64{293.15, 400.0, 600.0, 1100.0}
	k := make([]float64, len(T))
	rc := make([]float64, len(T))
	for _, mdl := range models {
		b := mdl.(Batcher)
		b.Batch(T, k, rc)
		for i, t := range T {
			chk.Scalar(tst, "k", 1e-14, k[i], mdl.Kval(t))
			chk.Scalar(tst, "ρcp", 1e-9, rc[i], RhoCp(mdl, t))
		}
	}
}

func Test_alloc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("alloc01. model factory")

	if _, err := New("unknown"); err == nil {
		tst.Errorf("unknown model should have failed\n")
	}
	if _, err := New("generic"); err == nil {
		tst.Errorf("generic must be created with NewGeneric\n")
	}
	for _, name := range []string{"concrete", "steel"} {
		if _, err := New(name); err != nil {
			tst.Errorf("cannot allocate %q: %v\n", name, err)
		}
	}
}
