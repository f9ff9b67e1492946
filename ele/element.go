// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"

	"github.com/DanBeranek/temperatureanalysis-sub000/mdl/fire"
	"github.com/DanBeranek/temperatureanalysis-sub000/mdl/thermal"
)

// Area is an area element contributing the conductivity and capacity
// matrices. T is the global temperature vector; local matrices are gathered
// through the element's Dofs.
type Area interface {
	Dofs() []int                         // global equation numbers, one per node
	Conductivity(K [][]float64, T []float64) // Conductivity computes the element conductivity matrix
	Capacity(C [][]float64, T []float64)     // Capacity computes the element capacity matrix
}

// Boundary is an edge element on a fire exposed boundary contributing the
// nonlinear convective radiative load vector and its tangent
type Boundary interface {
	Dofs() []int                                 // global equation numbers, one per node
	LoadVector(f []float64, T []float64, t float64) // LoadVector computes the element load vector at time t [s]
	LoadTangent(D [][]float64, T []float64)         // LoadTangent computes ∂f/∂T of the element load vector
}

// NewArea allocates an area element of the given kind. Recognised but not
// yet implemented kinds result in NotImplementedError.
func NewArea(kind Kind, id int, tag string, dofs []int, x, y []float64, mdl thermal.Model) (Area, error) {
	switch kind {
	case KindTri3:
		return NewTri3(id, tag, dofs, x, y, mdl)
	case KindTri6, KindQua4, KindQua8:
		return nil, &NotImplementedError{Kind: kind, Cell: id, Tag: tag}
	}
	return nil, chk.Err("cell %d (group %q): kind %q cannot be used as an area element", id, tag, kind.String())
}

// NewBoundary allocates a boundary element of the given kind
func NewBoundary(kind Kind, id int, tag string, dofs []int, x, y []float64, curve fire.Curve) (Boundary, error) {
	switch kind {
	case KindLin2:
		return NewLine2(id, tag, dofs, x, y, curve)
	case KindLin3:
		return nil, &NotImplementedError{Kind: kind, Cell: id, Tag: tag}
	}
	return nil, chk.Err("cell %d (group %q): kind %q cannot be used as a boundary element", id, tag, kind.String())
}
