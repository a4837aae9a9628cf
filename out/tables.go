// Copyright 2023 The Bemcs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// SaveField writes one producer's displacement field as a text table with
// columns x, y, ux, uy and |u|, one grid point per row. No core computation
// happens here; this is a pure consumer of the arrays produced by the
// comparison layer
func SaveField(g *Grid, res *Results, dirout, fnkey string) {
	n := g.Nx * g.Ny
	x := make([]float64, n)
	y := make([]float64, n)
	ux := make([]float64, n)
	uy := make([]float64, n)
	m := make([]float64, n)
	k := 0
	for i := 0; i < g.Ny; i++ {
		for j := 0; j < g.Nx; j++ {
			x[k] = g.X[i][j]
			y[k] = g.Y[i][j]
			ux[k] = res.Ux[i][j]
			uy[k] = res.Uy[i][j]
			m[k] = math.Hypot(res.Ux[i][j], res.Uy[i][j])
			k++
		}
	}
	io.WriteTableVD(dirout, fnkey+".res", []string{"x", "y", "ux", "uy", "magn"}, x, y, ux, uy, m)
}

// SaveResidual writes one producer's percentage residuals as a text table
// with columns x, y and resid
func SaveResidual(g *Grid, res *Results, dirout, fnkey string) {
	n := g.Nx * g.Ny
	x := make([]float64, n)
	y := make([]float64, n)
	r := make([]float64, n)
	k := 0
	for i := 0; i < g.Ny; i++ {
		for j := 0; j < g.Nx; j++ {
			x[k] = g.X[i][j]
			y[k] = g.Y[i][j]
			r[k] = res.R[i][j]
			k++
		}
	}
	io.WriteTableVD(dirout, fnkey+".res", []string{"x", "y", "resid"}, x, y, r)
}
