// Copyright 2023 The Bemcs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Data holds all input parameters for one line-source run. Material/force
// parameters and the source segment are fixed at the start of a run and
// read-only thereafter
type Data struct {

	// global information
	Desc   string `json:"desc"`   // description of run
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/bemcs

	// material and force parameters
	Mu float64 `json:"mu"` // shear modulus
	Nu float64 `json:"nu"` // Poisson's coefficient
	Fx float64 `json:"fx"` // horizontal force component
	Fy float64 `json:"fy"` // vertical force component
	Y0 float64 `json:"y0"` // elevation of the source segment

	// field-point grid
	Xmin float64 `json:"xmin"` // lower x bound
	Xmax float64 `json:"xmax"` // upper x bound
	Ymin float64 `json:"ymin"` // lower y bound
	Ymax float64 `json:"ymax"` // upper y bound
	Nx   int     `json:"nx"`   // number of points along x
	Ny   int     `json:"ny"`   // number of points along y

	// quadrature knobs
	Ngauss int     `json:"ngauss"` // order of the Gauss-Legendre rule
	Hts    float64 `json:"hts"`    // tanh-sinh step size
	Lts    float64 `json:"lts"`    // tanh-sinh truncation bound; 0 => default

	// derived
	Key string // simulation file key; e.g. "line" for "line.sim"
}

// SetDefault sets default values
func (o *Data) SetDefault() {
	o.Mu = 1.0
	o.Nu = 0.25
	o.Fx = 0.0
	o.Fy = -1.0
	o.Y0 = 0.0
	o.Xmin, o.Xmax = -2.0, 2.0
	o.Ymin, o.Ymax = -1.5, 1.5
	o.Nx, o.Ny = 51, 51
	o.Ngauss = 39
	o.Hts = 0.05
}

// Read reads a simulation file. Failures to read or decode are fatal
func Read(simfilepath string) (o *Data) {
	o = new(Data)
	o.SetDefault()
	b := io.ReadFile(simfilepath)
	err := json.Unmarshal(b, o)
	if err != nil {
		chk.Panic("Read: cannot unmarshal simulation file %q", simfilepath)
	}
	o.Key = io.FnKey(filepath.Base(simfilepath))
	if o.DirOut == "" {
		o.DirOut = "/tmp/bemcs/" + o.Key
	} else {
		o.DirOut = os.ExpandEnv(o.DirOut)
	}
	if o.Nx < 2 || o.Ny < 2 {
		chk.Panic("Read: grid resolution nx=%d ny=%d is invalid (must be ≥ 2)", o.Nx, o.Ny)
	}
	if o.Ngauss < 1 {
		chk.Panic("Read: ngauss=%d is invalid (must be ≥ 1)", o.Ngauss)
	}
	if o.Hts <= 0 {
		chk.Panic("Read: hts=%g is invalid (must be > 0)", o.Hts)
	}
	return
}

// Params returns the material/force parameters for the kelvin structures
func (o *Data) Params() utl.Params {
	return utl.Params{
		&utl.P{N: "mu", V: o.Mu},
		&utl.P{N: "nu", V: o.Nu},
		&utl.P{N: "fx", V: o.Fx},
		&utl.P{N: "fy", V: o.Fy},
		&utl.P{N: "y0", V: o.Y0},
	}
}
