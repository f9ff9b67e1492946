// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spm implements sparse matrices with a symbolic pattern in
// compressed sparse row format. The pattern and the scatter tables mapping
// local element matrices to positions in the values array are computed once;
// assembly then only zeroes and accumulates values in place.
package spm

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Pattern holds the symbolic structure of a sparse matrix in compressed
// sparse row format. Column indices are sorted within each row.
type Pattern struct {
	N   int   // matrix dimension
	Ptr []int // row pointers; length N+1
	Col []int // column indices; length Nnz
}

// NewPattern builds the pattern of the union of the dense blocks
// dofs × dofs, one per entry of blocks
func NewPattern(n int, blocks [][]int) *Pattern {
	rows := make([][]int, n)
	for _, dofs := range blocks {
		for _, i := range dofs {
			rows[i] = append(rows[i], dofs...)
		}
	}
	o := &Pattern{N: n, Ptr: make([]int, n+1)}
	for i := 0; i < n; i++ {
		sort.Ints(rows[i])
		last := -1
		for _, j := range rows[i] {
			if j != last {
				o.Col = append(o.Col, j)
				last = j
			}
		}
		o.Ptr[i+1] = len(o.Col)
	}
	return o
}

// Nnz returns the number of stored entries
func (o *Pattern) Nnz() int {
	return len(o.Col)
}

// Find returns the position of entry (i,j) in the values array, or -1 if
// the entry is not part of the pattern
func (o *Pattern) Find(i, j int) int {
	lo, hi := o.Ptr[i], o.Ptr[i+1]
	p := lo + sort.SearchInts(o.Col[lo:hi], j)
	if p < hi && o.Col[p] == j {
		return p
	}
	return -1
}

// Scatter returns the positions of the dense block dofs × dofs in row-major
// order; i.e. position dofs[a],dofs[b] lands in slot a*len(dofs)+b
func (o *Pattern) Scatter(dofs []int) (pos []int, err error) {
	n := len(dofs)
	pos = make([]int, n*n)
	for a, i := range dofs {
		for b, j := range dofs {
			p := o.Find(i, j)
			if p < 0 {
				return nil, chk.Err("scatter: entry (%d,%d) is not in the pattern", i, j)
			}
			pos[a*n+b] = p
		}
	}
	return
}

// Merge returns the union of patterns a and b together with maps from the
// positions of each input pattern to positions in the union. Both patterns
// must have the same dimension.
func Merge(a, b *Pattern) (u *Pattern, posA, posB []int, err error) {
	if a.N != b.N {
		return nil, nil, nil, chk.Err("merge: patterns have different dimensions: %d != %d", a.N, b.N)
	}
	u = &Pattern{N: a.N, Ptr: make([]int, a.N+1)}
	posA = make([]int, a.Nnz())
	posB = make([]int, b.Nnz())
	for i := 0; i < a.N; i++ {
		pa, ea := a.Ptr[i], a.Ptr[i+1]
		pb, eb := b.Ptr[i], b.Ptr[i+1]
		for pa < ea || pb < eb {
			switch {
			case pb == eb || (pa < ea && a.Col[pa] < b.Col[pb]):
				posA[pa] = len(u.Col)
				u.Col = append(u.Col, a.Col[pa])
				pa++
			case pa == ea || b.Col[pb] < a.Col[pa]:
				posB[pb] = len(u.Col)
				u.Col = append(u.Col, b.Col[pb])
				pb++
			default: // same column in both
				posA[pa] = len(u.Col)
				posB[pb] = len(u.Col)
				u.Col = append(u.Col, a.Col[pa])
				pa++
				pb++
			}
		}
		u.Ptr[i+1] = len(u.Col)
	}
	return
}
