// Copyright 2023 The Bemcs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/brendanjmeade/bemcs/inp"
	"github.com/brendanjmeade/bemcs/kelvin"
	"github.com/brendanjmeade/bemcs/out"
	"github.com/brendanjmeade/bemcs/quad"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "inp/data/line", ".sim", true)
	verbose := io.ArgToBool(1, true)
	dosave := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nBemcs -- Kelvin line-source displacements: quadrature versus closed form\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"simulation filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"save result tables", "dosave", dosave,
		))
	}

	// input data and comparison layer
	dat := inp.Read(fnamepath)
	src := new(kelvin.LineSource)
	src.Init(dat.Params())
	grid := out.NewGrid(dat.Xmin, dat.Xmax, dat.Ymin, dat.Ymax, dat.Nx, dat.Ny)
	cmp := out.NewComparison(src, grid)
	if verbose {
		io.Pf("%s: %s\n\n", dat.Key, dat.Desc)
	}

	// fixed-order Gauss-Legendre
	rule, err := quad.NewRule(dat.Ngauss)
	if err != nil {
		chk.Panic("rule construction failed:\n%v", err)
	}
	t0 := time.Now()
	gl := cmp.Gauss(rule)
	tGl := time.Since(t0)

	// tanh-sinh
	ts := quad.NewTanhSinh(dat.Hts)
	if dat.Lts > 0 {
		ts.L = dat.Lts
	}
	t0 = time.Now()
	de := cmp.TanhSinh(ts)
	tDe := time.Since(t0)

	// adaptive
	t0 = time.Now()
	ad, err := cmp.Adaptive()
	tAd := time.Since(t0)
	if err != nil {
		io.Pfyel("adaptive: %v\n", err)
	}

	// report residuals with respect to the closed form
	band := 0.1
	if verbose {
		gl.Report(grid, dat.Y0, band)
		de.Report(grid, dat.Y0, band)
		ad.Report(grid, dat.Y0, band)
		io.Pf("\nelapsed: gauss-legendre = %v  tanh-sinh = %v  adaptive = %v\n", tGl, tDe, tAd)
	}

	// result tables
	if dosave {
		out.SaveField(grid, cmp.Ref, dat.DirOut, "reference")
		out.SaveResidual(grid, gl, dat.DirOut, "resid_gauss")
		out.SaveResidual(grid, de, dat.DirOut, "resid_tanhsinh")
		out.SaveResidual(grid, ad, dat.DirOut, "resid_adaptive")
		if verbose {
			io.Pf("result tables saved to %s\n", dat.DirOut)
		}
	}
}
