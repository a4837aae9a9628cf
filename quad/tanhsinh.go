// Copyright 2023 The Bemcs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import "math"

// TsDefaultL is the default truncation bound of the tanh-sinh rule. The node
// at t = L sits at x = tanh(½π·sinh(L)); with L = 2 the uncovered measure near
// each endpoint is about 2·exp(-π·sinh(2)) ≈ 2e-5, which bounds the truncation
// error for bounded integrands. Increase L (e.g. to 4) when accuracy beyond
// that is needed; cost grows only linearly with L/H
const TsDefaultL = 2.0

// TanhSinh holds the parameters of a tanh-sinh (double-exponential) rule on
// [-1,1]. The change of variable x = tanh(½π·sinh(t)) compresses the
// endpoints so that the transformed integrand decays double-exponentially;
// the rule is then the trapezoidal sum over t = k·H, |k| ≤ floor(L/H).
// Nodes and weights are cheap to regenerate, hence no table is stored
type TanhSinh struct {
	H float64 // step size in t; smaller is more accurate and more expensive
	L float64 // truncation bound in t
}

// NewTanhSinh returns a rule with step size h and the default truncation
func NewTanhSinh(h float64) TanhSinh {
	return TanhSinh{H: h, L: TsDefaultL}
}

// Each generates the (node, weight) sequence and calls fcn for every pair
func (o TanhSinh) Each(fcn func(x, w float64)) {
	n := int(math.Floor(o.L / o.H))
	for k := -n; k <= n; k++ {
		t := float64(k) * o.H
		s := 0.5 * math.Pi * math.Sinh(t)
		c := math.Cosh(s)
		fcn(math.Tanh(s), 0.5*o.H*math.Pi*math.Cosh(t)/(c*c))
	}
}

// Npoints returns the number of nodes the rule generates
func (o TanhSinh) Npoints() int {
	return 2*int(math.Floor(o.L/o.H)) + 1
}

// Integrate computes ∫f(x)dx on [-1,1] with this rule
func (o TanhSinh) Integrate(f func(x float64) float64) (res float64) {
	o.Each(func(x, w float64) {
		res += w * f(x)
	})
	return
}
