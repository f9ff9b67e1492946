// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/DanBeranek/temperatureanalysis-sub000/ele"
	"github.com/DanBeranek/temperatureanalysis-sub000/fem"
	"github.com/DanBeranek/temperatureanalysis-sub000/inp"
	"github.com/DanBeranek/temperatureanalysis-sub000/mdl/thermal"
)

// vtkCodes maps element kinds to VTK cell type codes
var vtkCodes = map[ele.Kind]int{
	ele.KindLin2: 3,
	ele.KindTri3: 5,
	ele.KindQua4: 9,
	ele.KindLin3: 21,
	ele.KindTri6: 22,
	ele.KindQua8: 23,
}

// WriteVtu writes the temperature field of one committed state as a VTK
// unstructured grid file named fnkey-NNNN.vtu
func WriteVtu(dirout, fnkey string, res *fem.Results, tidx int) (err error) {
	if tidx < 0 || tidx >= res.NSteps() {
		return chk.Err("state index %d is out of range [0,%d)", tidx, res.NSteps())
	}

	// buffers
	geo := new(bytes.Buffer)
	dat := new(bytes.Buffer)
	cells := meshCells(res.Dom.Msh)
	if err = topology(geo, res.Dom.Msh, cells); err != nil {
		return
	}
	pdata(dat, res, tidx)
	cdata(dat, cells)

	// write file
	var hdr, foo bytes.Buffer
	io.Ff(&hdr, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&hdr, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", len(res.Dom.Msh.Verts), len(cells))
	io.Ff(&foo, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
	io.WriteFileD(dirout, io.Sf("%s-%04d.vtu", fnkey, tidx), &hdr, geo, dat, &foo)
	return
}

// WriteVtuSeries writes one vtu file per committed state plus a ParaView
// collection file fnkey.pvd connecting them to the simulation times
func WriteVtuSeries(dirout, fnkey string, res *fem.Results) (err error) {
	var pvd bytes.Buffer
	io.Ff(&pvd, "<?xml version=\"1.0\"?>\n<VTKFile type=\"Collection\" version=\"0.1\" byte_order=\"LittleEndian\">\n<Collection>\n")
	for k, t := range res.Times {
		if err = WriteVtu(dirout, fnkey, res, k); err != nil {
			return
		}
		io.Ff(&pvd, "<DataSet timestep=\"%g\" file=\"%s\"/>\n", t, io.Sf("%s-%04d.vtu", fnkey, k))
	}
	io.Ff(&pvd, "</Collection>\n</VTKFile>\n")
	io.WriteFileD(dirout, fnkey+".pvd", &pvd)
	return
}

// meshCells flattens the mesh cells in the same order the domain uses:
// sorted surface groups first, then sorted line groups
func meshCells(msh *inp.Mesh) (cells []*inp.Cell) {
	for _, group := range msh.SurfGroups {
		cells = append(cells, msh.Surfs[group]...)
	}
	for _, group := range msh.LineGroups {
		cells = append(cells, msh.Lines[group]...)
	}
	return
}

func topology(buf *bytes.Buffer, msh *inp.Mesh, cells []*inp.Cell) (err error) {

	// coordinates
	io.Ff(buf, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, v := range msh.Verts {
		io.Ff(buf, "%23.15e %23.15e %23.15e ", v.C[0], v.C[1], 0.0)
	}
	io.Ff(buf, "\n</DataArray>\n</Points>\n")

	// connectivities
	io.Ff(buf, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for _, c := range cells {
		for _, v := range c.Verts {
			io.Ff(buf, "%d ", v)
		}
	}

	// offsets
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	var offset int
	for _, c := range cells {
		offset += len(c.Verts)
		io.Ff(buf, "%d ", offset)
	}

	// types
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for _, c := range cells {
		code, ok := vtkCodes[c.Kind]
		if !ok {
			return chk.Err("cannot map cell kind %q to a VTK type", c.Kind)
		}
		io.Ff(buf, "%d ", code)
	}
	io.Ff(buf, "\n</DataArray>\n</Cells>\n")
	return
}

func pdata(buf *bytes.Buffer, res *fem.Results, tidx int) {
	io.Ff(buf, "<PointData Scalars=\"T\">\n")

	// temperatures
	io.Ff(buf, "<DataArray type=\"Float64\" Name=\"T\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, T := range res.Temps[tidx] {
		io.Ff(buf, "%23.15e ", T)
	}
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Float64\" Name=\"T_celsius\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, T := range res.Temps[tidx] {
		io.Ff(buf, "%23.15e ", T-thermal.CelsiusZero)
	}

	// node ids
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"nid\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, n := range res.Dom.Nodes {
		io.Ff(buf, "%d ", n.Id)
	}
	io.Ff(buf, "\n</DataArray>\n</PointData>\n")
}

func cdata(buf *bytes.Buffer, cells []*inp.Cell) {
	io.Ff(buf, "<CellData Scalars=\"eid\">\n")
	io.Ff(buf, "<DataArray type=\"Int32\" Name=\"eid\" NumberOfComponents=\"1\" format=\"ascii\">\n")
	for _, c := range cells {
		io.Ff(buf, "%d ", c.Id)
	}
	io.Ff(buf, "\n</DataArray>\n</CellData>\n")
}
