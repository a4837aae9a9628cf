// Copyright 2023 The Bemcs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/brendanjmeade/bemcs/kelvin"
	"github.com/brendanjmeade/bemcs/quad"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Results holds one producer's displacement field over a grid together with
// its residual map with respect to the closed-form reference. The fields are
// written once by the producer and only read afterwards
type Results struct {
	Name   string
	Ux, Uy [][]float64 // [Ny][Nx] displacement components
	R      [][]float64 // [Ny][Nx] percentage residual versus the reference
}

// Comparison evaluates the alternative displacement producers over one shared
// grid of field points. The closed form is computed once at construction; the
// numerical producers are independent of each other, so a failure of one does
// not affect the others
type Comparison struct {
	Src *kelvin.LineSource
	G   *Grid
	Ref *Results // closed-form reference (its residual map is zero)
}

// NewComparison builds the comparison layer and evaluates the reference
func NewComparison(src *kelvin.LineSource, g *Grid) (o *Comparison) {
	o = &Comparison{Src: src, G: g}
	ux, uy := src.DisplField(g.X, g.Y)
	o.Ref = &Results{Name: "analytic", Ux: ux, Uy: uy, R: utl.Alloc(g.Ny, g.Nx)}
	return
}

// Gauss runs the fixed-order Gauss-Legendre producer
func (o *Comparison) Gauss(rule *quad.Rule) (res *Results) {
	ux, uy := o.Src.DisplGaussField(rule, o.G.X, o.G.Y)
	return o.newResults(io.Sf("gauss-legendre (n=%d)", rule.N), ux, uy)
}

// TanhSinh runs the tanh-sinh producer
func (o *Comparison) TanhSinh(ts quad.TanhSinh) (res *Results) {
	ux, uy := o.Src.DisplTanhSinhField(ts, o.G.X, o.G.Y)
	return o.newResults(io.Sf("tanh-sinh (h=%g, L=%g)", ts.H, ts.L), ux, uy)
}

// Adaptive runs the adaptive producer. err reports points where the
// integrator did not converge; the remaining points are still filled in
func (o *Comparison) Adaptive() (res *Results, err error) {
	ux, uy, err := o.Src.DisplAdaptiveField(o.G.X, o.G.Y)
	return o.newResults("adaptive", ux, uy), err
}

func (o *Comparison) newResults(name string, ux, uy [][]float64) *Results {
	return &Results{Name: name, Ux: ux, Uy: uy, R: Residual(ux, uy, o.Ref.Ux, o.Ref.Uy)}
}

// Residual returns the pointwise percentage difference between a numerical
// displacement field and the reference, measured on the displacement-vector
// magnitude. The magnitude avoids dividing by the exact zeros that individual
// components have on symmetry axes
func Residual(UxNum, UyNum, UxRef, UyRef [][]float64) (R [][]float64) {
	R = utl.Alloc(len(UxRef), len(UxRef[0]))
	for i := range UxRef {
		for j := range UxRef[i] {
			dx := UxNum[i][j] - UxRef[i][j]
			dy := UyNum[i][j] - UyRef[i][j]
			R[i][j] = 100.0 * math.Hypot(dx, dy) / math.Hypot(UxRef[i][j], UyRef[i][j])
		}
	}
	return
}

// MaxResidual returns the largest percentage residual among field points
// farther than band from the source line y = yline. Non-finite entries in the
// excluded strip (e.g. quadrature nodes hit by a field point) are skipped by
// construction; non-finite entries outside it propagate
func (o *Results) MaxResidual(g *Grid, yline, band float64) (rmax float64) {
	for i := 0; i < g.Ny; i++ {
		for j := 0; j < g.Nx; j++ {
			if math.Abs(g.Y[i][j]-yline) <= band {
				continue
			}
			if o.R[i][j] > rmax || math.IsNaN(o.R[i][j]) {
				rmax = o.R[i][j]
			}
		}
	}
	return
}

// Report prints a summary of one producer's residuals
func (o *Results) Report(g *Grid, yline, band float64) {
	io.Pf("%-28s max residual = %13.6e %% (field points with |y-y0| > %g)\n", o.Name, o.MaxResidual(g, yline, band), band)
}
