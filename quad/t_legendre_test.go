// Copyright 2023 The Bemcs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	gquad "gonum.org/v1/gonum/integrate/quad"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_legendre01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("legendre01. low-order rules versus known values")

	r1, err := NewRule(1)
	if err != nil {
		tst.Errorf("NewRule(1) failed: %v\n", err)
		return
	}
	chk.Array(tst, "x1", 1e-17, r1.X, []float64{0})
	chk.Array(tst, "w1", 1e-17, r1.W, []float64{2})

	r2, err := NewRule(2)
	if err != nil {
		tst.Errorf("NewRule(2) failed: %v\n", err)
		return
	}
	chk.Array(tst, "x2", 1e-15, r2.X, []float64{-0.5773502691896257, 0.5773502691896257})
	chk.Array(tst, "w2", 1e-15, r2.W, []float64{1, 1})

	r3, err := NewRule(3)
	if err != nil {
		tst.Errorf("NewRule(3) failed: %v\n", err)
		return
	}
	chk.Array(tst, "x3", 1e-15, r3.X, []float64{-0.7745966692414834, 0, 0.7745966692414834})
	chk.Array(tst, "w3", 1e-15, r3.W, []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0})

	r5, err := NewRule(5)
	if err != nil {
		tst.Errorf("NewRule(5) failed: %v\n", err)
		return
	}
	chk.Array(tst, "x5", 1e-14, r5.X, []float64{-0.9061798459386640, -0.5384693101056831, 0, 0.5384693101056831, 0.9061798459386640})
	chk.Array(tst, "w5", 1e-14, r5.W, []float64{0.2369268850561891, 0.4786286704993665, 0.5688888888888889, 0.4786286704993665, 0.2369268850561891})
}

func Test_legendre02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("legendre02. weight sums, symmetry and ordering")

	for _, n := range []int{1, 2, 5, 10, 39, 100} {
		r, err := NewRule(n)
		if err != nil {
			tst.Errorf("NewRule(%d) failed: %v\n", n, err)
			return
		}
		sum := 0.0
		for _, w := range r.W {
			if w <= 0 {
				tst.Errorf("n=%d: nonpositive weight %v\n", n, w)
				return
			}
			sum += w
		}
		chk.Float64(tst, io.Sf("Σw (n=%3d)", n), 1e-9, sum, 2.0)
		for i := 0; i < n; i++ {
			chk.Float64(tst, io.Sf("x[%d] = -x[%d]", i, n-1-i), 1e-17, r.X[i], -r.X[n-1-i])
			chk.Float64(tst, io.Sf("w[%d] = w[%d]", i, n-1-i), 1e-17, r.W[i], r.W[n-1-i])
			if i > 0 && r.X[i] <= r.X[i-1] {
				tst.Errorf("n=%d: nodes are not strictly increasing at i=%d\n", n, i)
				return
			}
		}
	}
}

func Test_legendre03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("legendre03. polynomial exactness up to degree 2n-1")

	r3, err := NewRule(3)
	if err != nil {
		tst.Errorf("NewRule(3) failed: %v\n", err)
		return
	}
	chk.Float64(tst, "∫x²  (n=3)", 1e-15, r3.Integrate(func(x float64) float64 { return x * x }), 2.0/3.0)
	chk.Float64(tst, "∫x⁴  (n=3)", 1e-15, r3.Integrate(func(x float64) float64 { return math.Pow(x, 4) }), 2.0/5.0)
	chk.Float64(tst, "∫x⁵  (n=3)", 1e-15, r3.Integrate(func(x float64) float64 { return math.Pow(x, 5) }), 0.0)

	// high order on smooth integrands
	r200, err := NewRule(200)
	if err != nil {
		tst.Errorf("NewRule(200) failed: %v\n", err)
		return
	}
	chk.Float64(tst, "∫x²  (n=200)", 1e-12, r200.Integrate(func(x float64) float64 { return x * x }), 2.0/3.0)
	chk.Float64(tst, "∫eˣ  (n=200)", 1e-13, r200.Integrate(math.Exp), math.E-1.0/math.E)
}

func Test_legendre04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("legendre04. cross-check versus gonum fixed-order quadrature")

	f := func(x float64) float64 { return math.Exp(x) / (1.0 + x*x) }
	for _, n := range []int{8, 16, 24} {
		r, err := NewRule(n)
		if err != nil {
			tst.Errorf("NewRule(%d) failed: %v\n", n, err)
			return
		}
		mine := r.Integrate(f)
		ref := gquad.Fixed(f, -1, 1, n, gquad.Legendre{}, 0)
		chk.AnaNum(tst, io.Sf("∫f (n=%2d)", n), 1e-14, mine, ref, chk.Verbose)
	}
}

func Test_legendre05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("legendre05. invalid order is reported")

	if _, err := NewRule(0); err == nil {
		tst.Errorf("NewRule(0) should have failed\n")
	}
	if _, err := NewRule(-3); err == nil {
		tst.Errorf("NewRule(-3) should have failed\n")
	}
}
