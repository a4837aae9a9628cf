// Copyright 2023 The Bemcs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// Adaptive computes ∫f(x)dx on [a,b] by delegating to the general-purpose
// automatic integrator num.QuadGen (QUADPACK AGSE) with its default
// tolerances. The integrator subdivides [a,b] recursively until its local
// error estimate is met. Failures to converge and non-finite estimates are
// reported as errors, never silently clamped
func Adaptive(a, b float64, f func(x float64) float64) (res float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("adaptive quadrature on [%g,%g] failed: %v", a, b, r)
		}
	}()
	res = num.QuadGen(a, b, 0, f)
	if math.IsNaN(res) || math.IsInf(res, 0) {
		return res, chk.Err("adaptive quadrature on [%g,%g] returned a non-finite estimate", a, b)
	}
	return
}
