// Copyright 2023 The Bemcs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package quad implements the numerical integration rules used to evaluate
// line-source integrals: a fixed-order Gauss-Legendre rule built from scratch,
// a tanh-sinh (double-exponential) rule generated on the fly, and a thin
// adapter over an automatic adaptive integrator
package quad

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// newtonItMax is the iteration budget for polishing one Legendre root
const newtonItMax = 100

// Rule holds the nodes and weights of an n-point Gauss-Legendre rule on
// [-1,1]. Nodes are strictly increasing and symmetric about 0; weights are
// positive, symmetric, and add up to 2 (the measure of the interval). The
// rule integrates polynomials up to degree 2n-1 exactly
type Rule struct {
	N int       // number of points
	X []float64 // [N] abscissae
	W []float64 // [N] weights
}

// NewRule builds the n-point Gauss-Legendre rule. The roots of the degree-n
// Legendre polynomial are located with Newton's method seeded from the
// Chebyshev approximation cos(π(i+3/4)/(n+1/2)); each weight follows from
//
//	w = 2 / ((1-x²)·Pn'(x)²)
//
// Only half of the roots are computed; the other half are mirrored
func NewRule(n int) (o *Rule, err error) {
	if n < 1 {
		return nil, chk.Err("Gauss-Legendre rule requires n ≥ 1; n=%d is invalid", n)
	}
	o = &Rule{N: n, X: make([]float64, n), W: make([]float64, n)}
	m := (n + 1) / 2
	for i := 0; i < m; i++ {
		z := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))
		var pp float64 // Pn'(z)
		converged := false
		for it := 0; it < newtonItMax; it++ {

			// Bonnet recursion: p1 = Pn(z), p2 = Pn-1(z)
			p1, p2 := 1.0, 0.0
			for j := 0; j < n; j++ {
				p3 := p2
				p2 = p1
				p1 = ((2.0*float64(j)+1.0)*z*p2 - float64(j)*p3) / (float64(j) + 1.0)
			}
			pp = float64(n) * (z*p1 - p2) / (z*z - 1.0)
			dz := p1 / pp
			z -= dz
			if math.Abs(dz) < 1e-15 {
				converged = true
				break
			}
		}
		if !converged {
			return nil, chk.Err("cannot build %d-point Gauss-Legendre rule: Newton iteration did not converge within %d steps for root %d", n, newtonItMax, i)
		}
		o.X[i] = -z
		o.X[n-1-i] = z
		w := 2.0 / ((1.0 - z*z) * pp * pp)
		o.W[i] = w
		o.W[n-1-i] = w
	}
	if n%2 == 1 {
		o.X[n/2] = 0 // middle root is 0 by symmetry; keep it exact
	}
	return
}

// Integrate computes ∫f(x)dx on [-1,1] with this rule
func (o *Rule) Integrate(f func(x float64) float64) (res float64) {
	for i, x := range o.X {
		res += o.W[i] * f(x)
	}
	return
}
