// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/DanBeranek/temperatureanalysis-sub000/mdl/thermal"
)

// Material holds material data
type Material struct {

	// input
	Name string   `json:"name"` // name of material
	Type string   `json:"type"` // type of material; e.g. "concrete", "steel" or "generic"
	Prms fun.Params `json:"prms"` // model parameters

	// input for "generic" materials
	Temps []float64 `json:"temps"` // temperatures [K]
	Rhos  []float64 `json:"rhos"`  // densities [kg/m³]
	Kvals []float64 `json:"kvals"` // thermal conductivities [W/(m·K)]
	Cps   []float64 `json:"cps"`   // specific heat capacities [J/(kg·K)]

	// derived
	Model thermal.Model // allocated and initialised model
}

// MatsData holds all materials
type MatsData []*Material

// MatDb implements a database of materials read from a .mat JSON file
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	byName map[string]*Material
}

// ReadMat reads all materials from a .mat JSON file and allocates their
// thermal models
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	fnamepath := filepath.Join(dir, fn)
	b, err := io.ReadFile(fnamepath)
	if err != nil {
		return nil, chk.Err("cannot read materials file %q", fnamepath)
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot unmarshal materials file %q: %v", fnamepath, err)
	}

	// allocate models
	mdb.byName = make(map[string]*Material)
	for _, m := range mdb.Materials {
		if m.Name == "" {
			return nil, chk.Err("%s: material without name", fnamepath)
		}
		if _, found := mdb.byName[m.Name]; found {
			return nil, chk.Err("%s: duplicate material %q", fnamepath, m.Name)
		}
		switch m.Type {
		case "generic":
			m.Model, err = thermal.NewGeneric(m.Temps, m.Rhos, m.Kvals, m.Cps)
			if err != nil {
				return nil, chk.Err("%s: material %q: %v", fnamepath, m.Name, err)
			}
		default:
			m.Model, err = thermal.New(m.Type)
			if err != nil {
				return nil, chk.Err("%s: material %q: %v", fnamepath, m.Name, err)
			}
			if err = m.Model.Init(m.Prms); err != nil {
				return nil, chk.Err("%s: material %q: %v", fnamepath, m.Name, err)
			}
		}
		mdb.byName[m.Name] = m
	}
	return
}

// Get returns a material or nil if not found
func (o *MatDb) Get(name string) *Material {
	return o.byName[name]
}
