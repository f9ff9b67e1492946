// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the input data read from mesh (.msh), material
// (.mat) and simulation (.sim) files
package inp

import (
	"bufio"
	"bytes"
	"sort"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"

	"github.com/DanBeranek/temperatureanalysis-sub000/ele"
)

// ThermocouplePrefix marks physical point groups holding virtual measurement
// points. Each such group must contain exactly one node.
const ThermocouplePrefix = "THERMOCOUPLE"

// MeshError indicates an invalid or inconsistent mesh file
type MeshError struct {
	Fname string // file name
	Line  int    // line number in file; 0 if not applicable
	Msg   string // description
}

func (e *MeshError) Error() string {
	if e.Line > 0 {
		return io.Sf("%s:%d: %s", e.Fname, e.Line, e.Msg)
	}
	return io.Sf("%s: %s", e.Fname, e.Msg)
}

// Vert holds vertex data
type Vert struct {
	Id int       // zero based id
	C  []float64 // x and y coordinates; the z coordinate of the file is dropped
}

// Cell holds cell data read from the mesh file
type Cell struct {
	Id    int      // zero based id
	Kind  ele.Kind // geometric kind
	Group string   // physical group name
	Verts []int    // zero based vertex ids
}

// Mesh holds a two dimensional mesh in Gmsh 2.2 ASCII format. Surface and
// line cells are kept per physical group; the group name lists are sorted
// so that element construction is deterministic.
type Mesh struct {

	// input
	Fnamepath string // path of mesh file

	// vertices and cells
	Verts []*Vert            // all vertices; ids equal file tags minus one
	Surfs map[string][]*Cell // surface cells per physical group, in file order
	Lines map[string][]*Cell // line cells per physical group, in file order

	// derived
	SurfGroups    []string       // sorted surface group names
	LineGroups    []string       // sorted line group names
	Thermocouples map[string]int // thermocouple name to vertex id
}

// gmsh element type numbers
var gmshKinds = map[int]ele.Kind{
	1:  ele.KindLin2,
	2:  ele.KindTri3,
	3:  ele.KindQua4,
	8:  ele.KindLin3,
	9:  ele.KindTri6,
	15: ele.KindPoint,
	16: ele.KindQua8,
}

// kindDim returns the topological dimension of a cell kind
func kindDim(kind ele.Kind) int {
	switch kind {
	case ele.KindPoint:
		return 0
	case ele.KindLin2, ele.KindLin3:
		return 1
	}
	return 2
}

// kindNverts returns the number of vertices of a cell kind
func kindNverts(kind ele.Kind) int {
	switch kind {
	case ele.KindPoint:
		return 1
	case ele.KindLin2:
		return 2
	case ele.KindLin3, ele.KindTri3:
		return 3
	case ele.KindQua4:
		return 4
	case ele.KindTri6:
		return 6
	}
	return 8
}

// ReadMsh reads a mesh file in Gmsh 2.2 ASCII format
func ReadMsh(fnamepath string) (o *Mesh, err error) {

	// new mesh
	o = &Mesh{
		Fnamepath:     fnamepath,
		Surfs:         make(map[string][]*Cell),
		Lines:         make(map[string][]*Cell),
		Thermocouples: make(map[string]int),
	}

	// read file
	b, err := io.ReadFile(fnamepath)
	if err != nil {
		return nil, &MeshError{Fname: fnamepath, Msg: io.Sf("cannot read mesh file: %v", err)}
	}

	// scan sections
	sc := newMshScanner(fnamepath, b)
	physNames := make(map[[2]int]string) // (dim,tag) to name
	tcNodes := make(map[string]map[int]bool)
	for sc.next() {
		line := sc.text()
		if !strings.HasPrefix(line, "$") {
			return nil, sc.errf("expected section marker; got %q", line)
		}
		section := line[1:]
		switch section {
		case "MeshFormat":
			if err = o.readFormat(sc); err != nil {
				return nil, err
			}
		case "PhysicalNames":
			if err = o.readPhysNames(sc, physNames); err != nil {
				return nil, err
			}
		case "Nodes":
			if err = o.readNodes(sc); err != nil {
				return nil, err
			}
		case "Elements":
			if err = o.readElements(sc, physNames, tcNodes); err != nil {
				return nil, err
			}
		default:
			if err = sc.skipSection(section); err != nil {
				return nil, err
			}
			continue
		}
		if err = sc.endSection(section); err != nil {
			return nil, err
		}
	}
	if len(o.Verts) == 0 {
		return nil, &MeshError{Fname: fnamepath, Msg: "mesh has no nodes"}
	}
	if len(o.Surfs) == 0 {
		return nil, &MeshError{Fname: fnamepath, Msg: "mesh has no surface elements"}
	}

	// thermocouples must reference exactly one node each
	for name, set := range tcNodes {
		if len(set) != 1 {
			return nil, &MeshError{Fname: fnamepath, Msg: io.Sf("physical group %q has %d associated nodes, but exactly one is required", name, len(set))}
		}
		for id := range set {
			o.Thermocouples[name] = id
		}
	}

	// sorted group names
	for name := range o.Surfs {
		o.SurfGroups = append(o.SurfGroups, name)
	}
	for name := range o.Lines {
		o.LineGroups = append(o.LineGroups, name)
	}
	sort.Strings(o.SurfGroups)
	sort.Strings(o.LineGroups)
	return
}

// readFormat checks the version header
func (o *Mesh) readFormat(sc *mshScanner) error {
	if !sc.next() {
		return sc.errf("missing mesh format line")
	}
	f := strings.Fields(sc.text())
	if len(f) != 3 || f[0] != "2.2" {
		return sc.errf("unsupported mesh format %q; only Gmsh 2.2 ASCII is supported", sc.text())
	}
	if f[1] != "0" {
		return sc.errf("binary mesh files are not supported")
	}
	return nil
}

// readPhysNames parses the $PhysicalNames section
func (o *Mesh) readPhysNames(sc *mshScanner, names map[[2]int]string) error {
	n, err := sc.count()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if !sc.next() {
			return sc.errf("unexpected end of physical names")
		}
		line := sc.text()
		f := strings.Fields(line)
		if len(f) < 3 {
			return sc.errf("invalid physical name line %q", line)
		}
		dim, err1 := strconv.Atoi(f[0])
		tag, err2 := strconv.Atoi(f[1])
		if err1 != nil || err2 != nil {
			return sc.errf("invalid physical name line %q", line)
		}
		q0 := strings.Index(line, "\"")
		q1 := strings.LastIndex(line, "\"")
		if q0 < 0 || q1 <= q0 {
			return sc.errf("physical name must be quoted in line %q", line)
		}
		name := line[q0+1 : q1]
		if name == "" {
			return sc.errf("empty physical name for dim=%d tag=%d; only non-empty names are supported", dim, tag)
		}
		names[[2]int{dim, tag}] = name
	}
	return nil
}

// readNodes parses the $Nodes section. Node tags must be contiguous
// starting at one; ids become tags minus one.
func (o *Mesh) readNodes(sc *mshScanner) error {
	n, err := sc.count()
	if err != nil {
		return err
	}
	o.Verts = make([]*Vert, 0, n)
	for i := 0; i < n; i++ {
		if !sc.next() {
			return sc.errf("unexpected end of nodes")
		}
		f := strings.Fields(sc.text())
		if len(f) != 4 {
			return sc.errf("invalid node line %q", sc.text())
		}
		tag, err := strconv.Atoi(f[0])
		if err != nil || tag != i+1 {
			return sc.errf("node tags must be contiguous starting at 1; got %q", f[0])
		}
		x, err1 := strconv.ParseFloat(f[1], 64)
		y, err2 := strconv.ParseFloat(f[2], 64)
		if err1 != nil || err2 != nil {
			return sc.errf("invalid node coordinates in line %q", sc.text())
		}
		o.Verts = append(o.Verts, &Vert{Id: i, C: []float64{x, y}})
	}
	return nil
}

// readElements parses the $Elements section and dispatches cells to their
// physical groups
func (o *Mesh) readElements(sc *mshScanner, names map[[2]int]string, tcNodes map[string]map[int]bool) error {
	n, err := sc.count()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if !sc.next() {
			return sc.errf("unexpected end of elements")
		}
		f := strings.Fields(sc.text())
		if len(f) < 3 {
			return sc.errf("invalid element line %q", sc.text())
		}
		vals := make([]int, len(f))
		for j, s := range f {
			if vals[j], err = strconv.Atoi(s); err != nil {
				return sc.errf("invalid element line %q", sc.text())
			}
		}
		etag, etype, ntags := vals[0], vals[1], vals[2]
		kind, ok := gmshKinds[etype]
		if !ok {
			return sc.errf("element %d: unsupported element type %d", etag, etype)
		}
		if ntags < 1 || len(vals) < 3+ntags {
			return sc.errf("element %d: missing tags", etag)
		}
		ptag := vals[3]
		if ptag == 0 {
			return sc.errf("element %d has no physical group; every element must belong to exactly one named physical group", etag)
		}
		name, ok := names[[2]int{kindDim(kind), ptag}]
		if !ok {
			return sc.errf("element %d references physical group %d (dim %d) which has no name", etag, ptag, kindDim(kind))
		}
		nv := kindNverts(kind)
		verts := vals[3+ntags:]
		if len(verts) != nv {
			return sc.errf("element %d: kind %q needs %d nodes; got %d", etag, kind.String(), nv, len(verts))
		}
		cell := &Cell{Id: etag - 1, Kind: kind, Group: name, Verts: make([]int, nv)}
		for j, v := range verts {
			if v < 1 || v > len(o.Verts) {
				return sc.errf("element %d references unknown node %d", etag, v)
			}
			cell.Verts[j] = v - 1
		}
		switch kindDim(kind) {
		case 0:
			if !strings.HasPrefix(name, ThermocouplePrefix) {
				return sc.errf("point element %d has physical name %q but point physical names must start with %q", etag, name, ThermocouplePrefix)
			}
			if tcNodes[name] == nil {
				tcNodes[name] = make(map[int]bool)
			}
			tcNodes[name][cell.Verts[0]] = true
		case 1:
			o.Lines[name] = append(o.Lines[name], cell)
		default:
			o.Surfs[name] = append(o.Surfs[name], cell)
		}
	}
	return nil
}

// mshScanner scans non-empty lines of a mesh file keeping track of the line
// number for error messages
type mshScanner struct {
	fname string
	sc    *bufio.Scanner
	line  int
	cur   string
}

func newMshScanner(fname string, b []byte) *mshScanner {
	return &mshScanner{fname: fname, sc: bufio.NewScanner(bytes.NewReader(b))}
}

// next advances to the next non-empty line
func (o *mshScanner) next() bool {
	for o.sc.Scan() {
		o.line++
		o.cur = strings.TrimSpace(o.sc.Text())
		if o.cur != "" {
			return true
		}
	}
	return false
}

func (o *mshScanner) text() string {
	return o.cur
}

func (o *mshScanner) errf(msg string, args ...interface{}) error {
	return &MeshError{Fname: o.fname, Line: o.line, Msg: io.Sf(msg, args...)}
}

// count reads the single integer line at the beginning of a section
func (o *mshScanner) count() (int, error) {
	if !o.next() {
		return 0, o.errf("missing section count")
	}
	n, err := strconv.Atoi(o.text())
	if err != nil {
		return 0, o.errf("invalid section count %q", o.text())
	}
	return n, nil
}

// endSection consumes the $End marker of a section
func (o *mshScanner) endSection(section string) error {
	if !o.next() || o.text() != "$End"+section {
		return o.errf("missing $End%s marker", section)
	}
	return nil
}

// skipSection skips everything until the $End marker of an unknown section
func (o *mshScanner) skipSection(section string) error {
	for o.next() {
		if o.text() == "$End"+section {
			return nil
		}
	}
	return o.errf("missing $End%s marker", section)
}
