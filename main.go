// Copyright 2026 The Temperatureanalysis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Temperatureanalysis computes transient temperature fields in fire exposed
// tunnel lining cross sections with the finite element method.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"github.com/DanBeranek/temperatureanalysis-sub000/fem"
	"github.com/DanBeranek/temperatureanalysis-sub000/inp"
	"github.com/DanBeranek/temperatureanalysis-sub000/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	writeVtu := io.ArgToBool(2, true)
	cfgfn := io.ArgToString(3, "")

	// message
	if verbose {
		io.PfWhite("\nTemperatureanalysis -- FE thermal analysis of fire exposed cross sections\n")
		io.Pf("Copyright 2026 The Temperatureanalysis Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"write vtu files", "writeVtu", writeVtu,
			"ini file with overrides", "cfgfn", cfgfn,
		))
	}
	io.Verbose = verbose

	// simulation input
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation input:\n%v", err)
	}
	if cfgfn != "" {
		if err = applyOverrides(sim, cfgfn); err != nil {
			chk.Panic("cannot apply configuration overrides:\n%v", err)
		}
	}
	log.WithFields(log.Fields{
		"sim":    sim.Key,
		"mesh":   sim.Data.Mshfile,
		"mats":   sim.Data.Matfile,
		"dirout": sim.DirOut,
	}).Info("simulation input loaded")

	// domain and solver
	dom, err := fem.NewDomain(sim.Msh, sim.MatOf, sim.CurveOf)
	if err != nil {
		chk.Panic("cannot build domain:\n%v", err)
	}
	sol, err := fem.NewSolver(dom, fem.Options{
		Dt:     sim.Solver.Dt,
		Tf:     sim.Solver.Tf,
		Tini:   sim.Solver.Tini,
		Itol:   sim.Solver.Itol,
		NmaxIt: sim.Solver.NmaxIt,
		LinSol: fem.NewSparse(sim.Solver.LinSol),
		Progress: func(pct int) {
			log.WithFields(log.Fields{"sim": sim.Key, "progress": pct}).Info("running")
		},
	})
	if err != nil {
		chk.Panic("cannot build solver:\n%v", err)
	}
	defer sol.Free()

	// run; interrupt stops cleanly between time steps
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	res, err := sol.Run(ctx)
	if err != nil {
		chk.Panic("simulation failed:\n%v", err)
	}
	log.WithFields(log.Fields{"sim": sim.Key, "states": res.NSteps()}).Info("simulation finished")

	// output
	if len(dom.Thermocouples) > 0 {
		if err = out.WriteThermocouples(sim.DirOut, sim.Key, res); err != nil {
			chk.Panic("cannot write thermocouple histories:\n%v", err)
		}
	}
	if writeVtu {
		if err = out.WriteVtuSeries(sim.DirOut, sim.Key, res); err != nil {
			chk.Panic("cannot write vtu series:\n%v", err)
		}
	}
	log.WithFields(log.Fields{"sim": sim.Key, "dirout": sim.DirOut}).Info("results written")
}

// applyOverrides updates solver and output settings from an ini file. Keys
// absent from the file keep the values of the .sim file.
func applyOverrides(sim *inp.Simulation, cfgfn string) error {
	file, err := ini.Load(cfgfn)
	if err != nil {
		return err
	}
	solver := file.Section("solver")
	sim.Solver.Dt = solver.Key("dt").MustFloat64(sim.Solver.Dt)
	sim.Solver.Tf = solver.Key("tf").MustFloat64(sim.Solver.Tf)
	sim.Solver.Itol = solver.Key("itol").MustFloat64(sim.Solver.Itol)
	sim.Solver.NmaxIt = solver.Key("nmaxit").MustInt(sim.Solver.NmaxIt)
	sim.Solver.Tini = solver.Key("tini").MustFloat64(sim.Solver.Tini)
	sim.Solver.LinSol = solver.Key("linsol").MustString(sim.Solver.LinSol)
	sim.DirOut = file.Section("output").Key("dirout").MustString(sim.DirOut)
	return sim.Solver.Validate()
}
