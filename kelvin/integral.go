// Copyright 2023 The Bemcs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kelvin

import (
	"math"

	"github.com/brendanjmeade/bemcs/quad"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// This file implements the numerical alternatives to LineSource.Displ: the
// line integral of the point-source kernel approximated with a fixed-order
// Gauss-Legendre rule, with a tanh-sinh rule, and with an automatic adaptive
// integrator. All three approximate the same quantity and must agree with the
// closed form away from the source segment. None of them resolves a field
// point sitting exactly on a quadrature node: the kernel is singular there
// and the non-finite values (or the integrator's error) are propagated.

// DisplGauss approximates the line integral at one field point with a
// fixed-order Gauss-Legendre rule. Accuracy degrades for field points close
// to the source segment since a fixed polynomial rule under-resolves the
// near-singularity; this is expected, not erroneous
func (o LineSource) DisplGauss(rule *quad.Rule, x, y float64) (ux, uy float64) {
	for i, xs := range rule.X {
		dux, duy := o.PointSource.Displ(x, y, xs, o.Y0)
		ux += rule.W[i] * dux
		uy += rule.W[i] * duy
	}
	return
}

// DisplGaussField accumulates the rule over the whole grid at once: for each
// quadrature node the weighted point-source field is added into running
// totals, so the grid is swept once per node
func (o LineSource) DisplGaussField(rule *quad.Rule, X, Y [][]float64) (Ux, Uy [][]float64) {
	Ux = utl.Alloc(len(X), len(X[0]))
	Uy = utl.Alloc(len(X), len(X[0]))
	for k, xs := range rule.X {
		for i := range X {
			for j := range X[i] {
				dux, duy := o.PointSource.Displ(X[i][j], Y[i][j], xs, o.Y0)
				Ux[i][j] += rule.W[k] * dux
				Uy[i][j] += rule.W[k] * duy
			}
		}
	}
	return
}

// DisplTanhSinh approximates the line integral at one field point with a
// tanh-sinh rule, generating the nodes and weights on the fly
func (o LineSource) DisplTanhSinh(ts quad.TanhSinh, x, y float64) (ux, uy float64) {
	ts.Each(func(xs, w float64) {
		dux, duy := o.PointSource.Displ(x, y, xs, o.Y0)
		ux += w * dux
		uy += w * duy
	})
	return
}

// DisplTanhSinhField accumulates the tanh-sinh rule over the whole grid
func (o LineSource) DisplTanhSinhField(ts quad.TanhSinh, X, Y [][]float64) (Ux, Uy [][]float64) {
	Ux = utl.Alloc(len(X), len(X[0]))
	Uy = utl.Alloc(len(X), len(X[0]))
	ts.Each(func(xs, w float64) {
		for i := range X {
			for j := range X[i] {
				dux, duy := o.PointSource.Displ(X[i][j], Y[i][j], xs, o.Y0)
				Ux[i][j] += w * dux
				Uy[i][j] += w * duy
			}
		}
	})
	return
}

// DisplAdaptive approximates the line integral at one field point by handing
// each displacement component, as a single-variable function of the source
// coordinate, to the adaptive integrator. Non-convergence (e.g. for a field
// point on the source segment) is reported per component
func (o LineSource) DisplAdaptive(x, y float64) (ux, uy float64, err error) {
	ux, err = quad.Adaptive(-1, 1, func(xs float64) float64 {
		res, _ := o.PointSource.Displ(x, y, xs, o.Y0)
		return res
	})
	if err != nil {
		return ux, uy, chk.Err("ux at (%g,%g): %v", x, y, err)
	}
	uy, err = quad.Adaptive(-1, 1, func(xs float64) float64 {
		_, res := o.PointSource.Displ(x, y, xs, o.Y0)
		return res
	})
	if err != nil {
		err = chk.Err("uy at (%g,%g): %v", x, y, err)
	}
	return
}

// DisplAdaptiveField evaluates DisplAdaptive over a grid, one point at a
// time. Points where the integrator fails are set to NaN and counted, but do
// not stop the remaining points; a non-nil summary error reports the count
func (o LineSource) DisplAdaptiveField(X, Y [][]float64) (Ux, Uy [][]float64, err error) {
	Ux = utl.Alloc(len(X), len(X[0]))
	Uy = utl.Alloc(len(X), len(X[0]))
	nfail := 0
	for i := range X {
		for j := range X[i] {
			ux, uy, e := o.DisplAdaptive(X[i][j], Y[i][j])
			if e != nil {
				nfail++
				ux, uy = math.NaN(), math.NaN()
			}
			Ux[i][j] = ux
			Uy[i][j] = uy
		}
	}
	if nfail > 0 {
		err = chk.Err("adaptive quadrature failed at %d of %d field points", nfail, len(X)*len(X[0]))
	}
	return
}
