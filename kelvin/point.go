// Copyright 2023 The Bemcs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kelvin evaluates the displacement field of a concentrated (Kelvin)
// point force embedded in an infinite, homogeneous, isotropic elastic medium,
// and of a line of such forces integrated over a segment
package kelvin

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// PointSource computes the displacements produced by a concentrated force
// (fx, fy) applied at one point of the medium (the Kelvin solution)
//
//	g  = -C·ln(r)                  C = 1/(4π(1-ν))
//	ux = fx/(2μ)·[(3-4ν)·g - x·gx] + fy/(2μ)·(-y·gx)
//	uy = fx/(2μ)·(-x·gy)           + fy/(2μ)·[(3-4ν)·g - y·gy]
//
// with (x, y) measured from the source point and (gx, gy) the closed-form
// gradient of g
type PointSource struct {
	Mu float64 // shear modulus
	Nu float64 // Poisson's coefficient
	Fx float64 // horizontal force component
	Fy float64 // vertical force component
}

// Init initialises this structure
func (o *PointSource) Init(prms utl.Params) {

	// default values
	o.Mu = 1.0
	o.Nu = 0.25
	o.Fx = 0.0
	o.Fy = -1.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "mu":
			o.Mu = p.V
		case "nu":
			o.Nu = p.V
		case "fx":
			o.Fx = p.V
		case "fy":
			o.Fy = p.V
		}
	}
}

// Displ computes the displacement components at field point (x, y) due to the
// force applied at source point (xs, ys). The evaluation is singular when the
// field point coincides with the source point; the resulting non-finite
// values are propagated, not masked, so that callers can detect the invalid
// query
func (o PointSource) Displ(x, y, xs, ys float64) (ux, uy float64) {
	dx := x - xs
	dy := y - ys
	r2 := dx*dx + dy*dy
	C := 1.0 / (4.0 * math.Pi * (1.0 - o.Nu))
	g := -0.5 * C * math.Log(r2)
	gx := -C * dx / r2
	gy := -C * dy / r2
	k := 3.0 - 4.0*o.Nu
	ux = o.Fx/(2.0*o.Mu)*(k*g-dx*gx) + o.Fy/(2.0*o.Mu)*(-dy*gx)
	uy = o.Fx/(2.0*o.Mu)*(-dx*gy) + o.Fy/(2.0*o.Mu)*(k*g-dy*gy)
	return
}

// DisplField evaluates Displ over a whole grid of field points with one fixed
// source point. The output arrays have the same shape as X and Y
func (o PointSource) DisplField(X, Y [][]float64, xs, ys float64) (Ux, Uy [][]float64) {
	Ux = utl.Alloc(len(X), len(X[0]))
	Uy = utl.Alloc(len(X), len(X[0]))
	for i := range X {
		for j := range X[i] {
			Ux[i][j], Uy[i][j] = o.Displ(X[i][j], Y[i][j], xs, ys)
		}
	}
	return
}
