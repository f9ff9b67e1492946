// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/DanBeranek/temperatureanalysis-sub000/fem"
	"github.com/DanBeranek/temperatureanalysis-sub000/inp"
	"github.com/DanBeranek/temperatureanalysis-sub000/mdl/fire"
	"github.com/DanBeranek/temperatureanalysis-sub000/mdl/thermal"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// testResults builds a two state result set over the rectangle mesh
func testResults(tst *testing.T) *fem.Results {
	msh, err := inp.ReadMsh("../inp/data/rectangle.msh")
	if err != nil {
		tst.Fatalf("ReadMsh failed: %v\n", err)
	}
	mdl, err := thermal.New("concrete")
	if err != nil {
		tst.Fatalf("cannot allocate material: %v\n", err)
	}
	mdl.Init(nil)
	curve, err := fire.NewTable([]float64{0, 1e9}, []float64{293.15, 293.15})
	if err != nil {
		tst.Fatalf("cannot create curve: %v\n", err)
	}
	curves := map[string]fire.Curve{"Bottom": curve, "Right": curve, "Top": curve, "Left": curve}
	dom, err := fem.NewDomain(msh, map[string]thermal.Model{"Domain": mdl}, curves)
	if err != nil {
		tst.Fatalf("NewDomain failed: %v\n", err)
	}
	res := &fem.Results{Dom: dom, Times: []float64{0, 60}}
	T0 := make([]float64, dom.Ny)
	T1 := make([]float64, dom.Ny)
	for i := range T0 {
		T0[i] = 293.15
		T1[i] = 293.15 + float64(i)
	}
	res.Temps = [][]float64{T0, T1}
	return res
}

func Test_csv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("csv01. thermocouple and node histories")

	res := testResults(tst)
	dirout := "/tmp/temperatureanalysis/test"

	if err := WriteThermocouples(dirout, "csv01", res); err != nil {
		tst.Errorf("WriteThermocouples failed: %v\n", err)
		return
	}
	b, err := io.ReadFile(io.Sf("%s/csv01-thermocouples.csv", dirout))
	if err != nil {
		tst.Errorf("cannot read csv: %v\n", err)
		return
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	chk.IntAssert(len(lines), 3)
	chk.String(tst, lines[0], "time,THERMOCOUPLE-A_K,THERMOCOUPLE-A_C")
	chk.String(tst, lines[1], "0,293.15,20") // vertex id 4 at state 0
	chk.String(tst, lines[2], "60,297.15,24")

	if err := WriteNodes(dirout, "csv01", res, []int{0, 11}); err != nil {
		tst.Errorf("WriteNodes failed: %v\n", err)
		return
	}
	b, err = io.ReadFile(io.Sf("%s/csv01-nodes.csv", dirout))
	if err != nil {
		tst.Errorf("cannot read csv: %v\n", err)
		return
	}
	lines = strings.Split(strings.TrimSpace(string(b)), "\n")
	chk.String(tst, lines[0], "time,node0,node11")
	chk.String(tst, lines[2], "60,293.15,304.15")

	// out of range node
	if err := WriteNodes(dirout, "csv01", res, []int{12}); err == nil {
		tst.Errorf("out of range node should have failed\n")
	}
}

func Test_vtu01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vtu01. unstructured grid time series")

	res := testResults(tst)
	dirout := "/tmp/temperatureanalysis/test"

	if err := WriteVtuSeries(dirout, "vtu01", res); err != nil {
		tst.Errorf("WriteVtuSeries failed: %v\n", err)
		return
	}

	// collection file references both states
	b, err := io.ReadFile(io.Sf("%s/vtu01.pvd", dirout))
	if err != nil {
		tst.Errorf("cannot read pvd: %v\n", err)
		return
	}
	pvd := string(b)
	for _, want := range []string{
		"<VTKFile type=\"Collection\"",
		"timestep=\"0\" file=\"vtu01-0000.vtu\"",
		"timestep=\"60\" file=\"vtu01-0001.vtu\"",
	} {
		if !strings.Contains(pvd, want) {
			tst.Errorf("pvd file is missing %q\n", want)
			return
		}
	}

	// grid file carries the mesh and the field
	b, err = io.ReadFile(io.Sf("%s/vtu01-0001.vtu", dirout))
	if err != nil {
		tst.Errorf("cannot read vtu: %v\n", err)
		return
	}
	vtu := string(b)
	for _, want := range []string{
		"NumberOfPoints=\"12\" NumberOfCells=\"22\"", // 12 triangles + 10 lines
		"Name=\"connectivity\"",
		"Name=\"T\"",
		"Name=\"T_celsius\"",
	} {
		if !strings.Contains(vtu, want) {
			tst.Errorf("vtu file is missing %q\n", want)
			return
		}
	}

	// triangle and line type codes appear in the types array
	itypes := strings.Index(vtu, "Name=\"types\"")
	if itypes < 0 {
		tst.Errorf("vtu file is missing the cell types array\n")
		return
	}
	types := vtu[itypes:]
	if !strings.Contains(types, "5 ") || !strings.Contains(types, "3 ") {
		tst.Errorf("cell types array must list triangles and lines\n")
	}

	// out of range state
	if err := WriteVtu(dirout, "vtu01", res, 2); err == nil {
		tst.Errorf("out of range state should have failed\n")
	}
}
