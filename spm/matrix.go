// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spm

import "github.com/cpmech/gosl/la"

// Matrix is a sparse matrix with a fixed pattern and mutable values
type Matrix struct {
	Pat *Pattern  // symbolic structure
	Val []float64 // values; aligned with Pat.Col
}

// NewMatrix returns a zeroed matrix over the given pattern
func NewMatrix(p *Pattern) *Matrix {
	return &Matrix{Pat: p, Val: make([]float64, p.Nnz())}
}

// Zero resets all values keeping the pattern
func (o *Matrix) Zero() {
	la.VecFill(o.Val, 0)
}

// AddLocal accumulates the dense local matrix into the values array using a
// scatter table computed by Pattern.Scatter
func (o *Matrix) AddLocal(pos []int, local [][]float64) {
	n := len(local)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			o.Val[pos[a*n+b]] += local[a][b]
		}
	}
}

// MatVecAdd computes y += α * A * x
func (o *Matrix) MatVecAdd(y []float64, α float64, x []float64) {
	for i := 0; i < o.Pat.N; i++ {
		sum := 0.0
		for p := o.Pat.Ptr[i]; p < o.Pat.Ptr[i+1]; p++ {
			sum += o.Val[p] * x[o.Pat.Col[p]]
		}
		y[i] += α * sum
	}
}

// PutInto copies all entries into a triplet, restarting it first. The
// insertion order is fixed so repeated calls keep the triplet structure.
func (o *Matrix) PutInto(t *la.Triplet) {
	t.Start()
	for i := 0; i < o.Pat.N; i++ {
		for p := o.Pat.Ptr[i]; p < o.Pat.Ptr[i+1]; p++ {
			t.Put(i, o.Pat.Col[p], o.Val[p])
		}
	}
}

// ToDense returns the dense version of this matrix
func (o *Matrix) ToDense() [][]float64 {
	d := la.MatAlloc(o.Pat.N, o.Pat.N)
	for i := 0; i < o.Pat.N; i++ {
		for p := o.Pat.Ptr[i]; p < o.Pat.Ptr[i+1]; p++ {
			d[i][o.Pat.Col[p]] = o.Val[p]
		}
	}
	return d
}
