// Copyright 2023 The Bemcs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the comparison and reporting layer: field-point
// grids, residual maps of the numerical producers with respect to the
// closed-form reference, and result tables
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Grid holds a rectangular collection of field points
type Grid struct {
	Nx, Ny int
	X, Y   [][]float64 // [Ny][Nx] coordinates
}

// NewGrid builds an evenly spaced nx × ny grid covering the given window
func NewGrid(xmin, xmax, ymin, ymax float64, nx, ny int) (o *Grid) {
	if nx < 2 || ny < 2 {
		chk.Panic("grid resolution nx=%d ny=%d is invalid (must be ≥ 2)", nx, ny)
	}
	xs := utl.LinSpace(xmin, xmax, nx)
	ys := utl.LinSpace(ymin, ymax, ny)
	o = &Grid{Nx: nx, Ny: ny, X: utl.Alloc(ny, nx), Y: utl.Alloc(ny, nx)}
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			o.X[i][j] = xs[j]
			o.Y[i][j] = ys[i]
		}
	}
	return
}
