// Copyright 2023 The Bemcs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kelvin

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// LineSource represents a uniform distribution of Kelvin point forces along
// the segment x0 ∈ [-1, 1] at elevation y = Y0. Displ evaluates the
// closed-form integral of the point-source kernel over the segment and serves
// as the reference the numerical integration drivers are checked against
type LineSource struct {
	PointSource
	Y0 float64 // elevation of the source segment
}

// Init initialises this structure
func (o *LineSource) Init(prms utl.Params) {
	o.PointSource.Init(prms)
	o.Y0 = 0.0
	for _, p := range prms {
		if p.N == "y0" {
			o.Y0 = p.V
		}
	}
}

// Displ computes the line-integrated displacements at (x, y) from the
// antiderivative of the kernel with respect to the source coordinate.
// With ξ evaluated at the limits x∓1, η = y-Y0, R² = ξ²+η², T = atan(ξ/η)
// and κ = 3-4ν:
//
//	A(ξ) = -κ/2·ξ·ln(R²) + (4-4ν)·ξ - (4-4ν)·η·T
//	B(ξ) = η/2·ln(R²)
//	D(ξ) = -κ/2·ξ·ln(R²) + κ·ξ - (2-4ν)·η·T
//
//	ux = [fx·ΔA + fy·ΔB] / (8πμ(1-ν))
//	uy = [fx·ΔB + fy·ΔD] / (8πμ(1-ν))
//
// where Δ is the difference between the upper (x+1) and lower (x-1) limits.
// The log singularity of the kernel is integrable, so the result is finite
// everywhere except at the segment endpoints (±1, Y0)
func (o LineSource) Displ(x, y float64) (ux, uy float64) {
	k := 3.0 - 4.0*o.Nu
	e := y - o.Y0
	lim := func(xi float64) (a, b, d float64) {
		l := math.Log(xi*xi + e*e)
		t := e * math.Atan(xi/e) // η·T → 0 as η → 0: on-line points stay finite
		a = -0.5*k*xi*l + (4.0-4.0*o.Nu)*xi - (4.0-4.0*o.Nu)*t
		b = 0.5 * e * l
		d = -0.5*k*xi*l + k*xi - (2.0-4.0*o.Nu)*t
		return
	}
	a2, b2, d2 := lim(x + 1.0)
	a1, b1, d1 := lim(x - 1.0)
	c := 1.0 / (8.0 * math.Pi * o.Mu * (1.0 - o.Nu))
	ux = c * (o.Fx*(a2-a1) + o.Fy*(b2-b1))
	uy = c * (o.Fx*(b2-b1) + o.Fy*(d2-d1))
	return
}

// DisplField evaluates the closed form over a grid of field points
func (o LineSource) DisplField(X, Y [][]float64) (Ux, Uy [][]float64) {
	Ux = utl.Alloc(len(X), len(X[0]))
	Uy = utl.Alloc(len(X), len(X[0]))
	for i := range X {
		for j := range X[i] {
			Ux[i][j], Uy[i][j] = o.Displ(X[i][j], Y[i][j])
		}
	}
	return
}
