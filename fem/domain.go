// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fem implements the transient nonlinear finite element solution of
// two dimensional heat conduction problems with fire boundary conditions
package fem

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/DanBeranek/temperatureanalysis-sub000/ele"
	"github.com/DanBeranek/temperatureanalysis-sub000/inp"
	"github.com/DanBeranek/temperatureanalysis-sub000/mdl/fire"
	"github.com/DanBeranek/temperatureanalysis-sub000/mdl/thermal"
)

// Node holds the location of a mesh vertex. The equation number of its
// single temperature degree of freedom equals the vertex id; temperatures
// themselves live in the global vectors of the solver.
type Node struct {
	Id   int     // vertex id == equation number
	X, Y float64 // coordinates
}

// Domain holds the nodes and elements of a problem. Elements are flattened
// over the sorted physical group names, keeping file order within a group,
// so that assembly is deterministic.
type Domain struct {

	// input
	Msh *inp.Mesh // the mesh

	// nodes and elements
	Nodes  []*Node        // all nodes
	Areas  []ele.Area     // all area elements in fixed order
	Bounds []ele.Boundary // all boundary elements in fixed order

	// elements per physical group
	AreaOf  map[string][]ele.Area
	BoundOf map[string][]ele.Boundary

	// virtual measurement points
	Thermocouples map[string]int // name to equation number

	// derived
	Ny int // total number of equations
}

// NewDomain builds nodes and elements from a mesh and the material and fire
// curve mappings. The mapping keys must match the physical group names of
// the mesh exactly, in both directions.
func NewDomain(msh *inp.Mesh, mats map[string]thermal.Model, curves map[string]fire.Curve) (dom *Domain, err error) {

	// check mappings
	if err = checkGroups("surface", "material", msh.SurfGroups, keysOfMats(mats)); err != nil {
		return
	}
	if err = checkGroups("boundary", "fire curve", msh.LineGroups, keysOfCurves(curves)); err != nil {
		return
	}

	// new domain
	dom = &Domain{
		Msh:           msh,
		AreaOf:        make(map[string][]ele.Area),
		BoundOf:       make(map[string][]ele.Boundary),
		Thermocouples: make(map[string]int),
		Ny:            len(msh.Verts),
	}

	// nodes; one equation per vertex
	dom.Nodes = make([]*Node, len(msh.Verts))
	for i, v := range msh.Verts {
		dom.Nodes[i] = &Node{Id: v.Id, X: v.C[0], Y: v.C[1]}
	}
	for name, id := range msh.Thermocouples {
		dom.Thermocouples[name] = id
	}

	// area elements
	for _, group := range msh.SurfGroups {
		mdl := mats[group]
		for _, c := range msh.Surfs[group] {
			x, y := dom.cellCoords(c)
			var a ele.Area
			a, err = ele.NewArea(c.Kind, c.Id, group, c.Verts, x, y, mdl)
			if err != nil {
				return nil, err
			}
			dom.AreaOf[group] = append(dom.AreaOf[group], a)
			dom.Areas = append(dom.Areas, a)
		}
	}

	// boundary elements
	for _, group := range msh.LineGroups {
		curve := curves[group]
		for _, c := range msh.Lines[group] {
			x, y := dom.cellCoords(c)
			var b ele.Boundary
			b, err = ele.NewBoundary(c.Kind, c.Id, group, c.Verts, x, y, curve)
			if err != nil {
				return nil, err
			}
			dom.BoundOf[group] = append(dom.BoundOf[group], b)
			dom.Bounds = append(dom.Bounds, b)
		}
	}
	if len(dom.Areas) == 0 {
		return nil, chk.Err("domain has no area elements")
	}
	return
}

// cellCoords collects the coordinates of the vertices of a cell
func (o *Domain) cellCoords(c *inp.Cell) (x, y []float64) {
	x = make([]float64, len(c.Verts))
	y = make([]float64, len(c.Verts))
	for i, v := range c.Verts {
		x[i] = o.Msh.Verts[v].C[0]
		y[i] = o.Msh.Verts[v].C[1]
	}
	return
}

// checkGroups verifies the 1:1 correspondence between mesh group names and
// mapping keys
func checkGroups(what, target string, groups, keys []string) error {
	missing := diff(groups, keys) // groups without mapping
	unused := diff(keys, groups)  // mappings without group
	if len(missing) == 0 && len(unused) == 0 {
		return nil
	}
	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "missing in mapping: "+strings.Join(missing, ", "))
	}
	if len(unused) > 0 {
		parts = append(parts, "unused in mesh: "+strings.Join(unused, ", "))
	}
	return chk.Err("%s groups do not correspond to the %s mapping (%s)", what, target, strings.Join(parts, " | "))
}

// diff returns the sorted elements of a not present in b
func diff(a, b []string) (res []string) {
	inB := make(map[string]bool)
	for _, s := range b {
		inB[s] = true
	}
	for _, s := range a {
		if !inB[s] {
			res = append(res, s)
		}
	}
	sort.Strings(res)
	return
}

func keysOfMats(m map[string]thermal.Model) (keys []string) {
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}

func keysOfCurves(m map[string]fire.Curve) (keys []string) {
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}
