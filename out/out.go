// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out writes simulation results to disk: temperature histories as
// CSV tables and nodal temperature fields as VTK unstructured grid files
// for post-processing with ParaView.
package out

import (
	"bytes"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/DanBeranek/temperatureanalysis-sub000/fem"
	"github.com/DanBeranek/temperatureanalysis-sub000/mdl/thermal"
)

// WriteThermocouples writes one CSV table with the temperature history of
// every thermocouple, one column per measurement point in sorted name order.
// Temperatures are written in both Kelvin and degrees Celsius.
func WriteThermocouples(dirout, fnkey string, res *fem.Results) (err error) {
	names := make([]string, 0, len(res.Dom.Thermocouples))
	for name := range res.Dom.Thermocouples {
		names = append(names, name)
	}
	if len(names) == 0 {
		return chk.Err("mesh has no thermocouples")
	}
	sort.Strings(names)

	var buf bytes.Buffer
	io.Ff(&buf, "time")
	for _, name := range names {
		io.Ff(&buf, ",%s_K,%s_C", name, name)
	}
	io.Ff(&buf, "\n")
	for k, t := range res.Times {
		io.Ff(&buf, "%g", t)
		for _, name := range names {
			T := res.Temps[k][res.Dom.Thermocouples[name]]
			io.Ff(&buf, ",%g,%g", T, T-thermal.CelsiusZero)
		}
		io.Ff(&buf, "\n")
	}
	io.WriteFileD(dirout, fnkey+"-thermocouples.csv", &buf)
	return
}

// WriteNodes writes one CSV table with the temperature history of the given
// nodes, in Kelvin, one column per node
func WriteNodes(dirout, fnkey string, res *fem.Results, nodes []int) (err error) {
	for _, n := range nodes {
		if n < 0 || n >= res.Dom.Ny {
			return chk.Err("node %d is out of range", n)
		}
	}
	var buf bytes.Buffer
	io.Ff(&buf, "time")
	for _, n := range nodes {
		io.Ff(&buf, ",node%d", n)
	}
	io.Ff(&buf, "\n")
	for k, t := range res.Times {
		io.Ff(&buf, "%g", t)
		for _, n := range nodes {
			io.Ff(&buf, ",%g", res.Temps[k][n])
		}
		io.Ff(&buf, "\n")
	}
	io.WriteFileD(dirout, fnkey+"-nodes.csv", &buf)
	return
}
