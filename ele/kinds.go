// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ele implements the finite elements of the heat conduction problem:
// area elements providing conductivity and capacity matrices and boundary
// (edge) elements providing the nonlinear fire load vector and its tangent
package ele

import "github.com/cpmech/gosl/io"

// Kind identifies the geometric type of a mesh cell
type Kind int

// recognised cell kinds
const (
	KindTri3 Kind = iota
	KindTri6
	KindQua4
	KindQua8
	KindLin2
	KindLin3
	KindPoint
)

// kindNames maps kinds to labels
var kindNames = []string{"tri3", "tri6", "qua4", "qua8", "lin2", "lin3", "point"}

func (o Kind) String() string {
	if o < 0 || int(o) >= len(kindNames) {
		return io.Sf("kind(%d)", int(o))
	}
	return kindNames[o]
}

// NotImplementedError indicates a cell whose kind is recognised by the mesh
// reader but has no element implementation yet
type NotImplementedError struct {
	Kind Kind   // kind of cell
	Cell int    // id of cell
	Tag  string // physical group of cell
}

func (e *NotImplementedError) Error() string {
	return io.Sf("cell %d (group %q): %q elements are not implemented", e.Cell, e.Tag, e.Kind.String())
}
