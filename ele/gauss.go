// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// TriGauss returns the Gauss points and weights of the integration rule with
// npts points over the unit triangle with vertices (0,0), (1,0) and (0,1).
// Points are given as triplets of triangle coordinates [1-r-s, r, s] and the
// weights already include the factor 1/2 for the area of the unit triangle.
func TriGauss(npts int) (pts [][]float64, wts []float64, err error) {
	switch npts {
	case 1:
		pts = [][]float64{{1.0 / 3.0, 1.0 / 3.0, 1.0 / 3.0}}
		wts = []float64{0.5}
	case 3:
		pts = [][]float64{
			{2.0 / 3.0, 1.0 / 6.0, 1.0 / 6.0},
			{1.0 / 6.0, 2.0 / 3.0, 1.0 / 6.0},
			{1.0 / 6.0, 1.0 / 6.0, 2.0 / 3.0},
		}
		wts = []float64{0.5 / 3.0, 0.5 / 3.0, 0.5 / 3.0}
	default:
		return nil, nil, chk.Err("TriGauss: unsupported number of integration points: %d (must be 1 or 3)", npts)
	}
	return
}

// EdgeGauss returns the Gauss points and weights of the integration rule with
// npts points over the interval [-1, +1]
func EdgeGauss(npts int) (pts, wts []float64, err error) {
	switch npts {
	case 1:
		pts = []float64{0}
		wts = []float64{2}
	case 2:
		g := 1.0 / math.Sqrt(3.0)
		pts = []float64{-g, g}
		wts = []float64{1, 1}
	case 3:
		g := math.Sqrt(3.0 / 5.0)
		pts = []float64{-g, 0, g}
		wts = []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
	default:
		return nil, nil, chk.Err("EdgeGauss: unsupported number of integration points: %d (must be 1, 2 or 3)", npts)
	}
	return
}
