// Copyright 2023 The Bemcs Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. reading line.sim")

	dat := Read("data/line.sim")
	chk.Float64(tst, "mu", 1e-17, dat.Mu, 1.0)
	chk.Float64(tst, "nu", 1e-17, dat.Nu, 0.25)
	chk.Float64(tst, "fx", 1e-17, dat.Fx, 0.0)
	chk.Float64(tst, "fy", 1e-17, dat.Fy, -1.0)
	chk.Float64(tst, "y0", 1e-17, dat.Y0, 0.0)
	chk.Float64(tst, "xmin", 1e-17, dat.Xmin, -2.0)
	chk.Float64(tst, "ymax", 1e-17, dat.Ymax, 1.5)
	chk.IntAssert(dat.Nx, 51)
	chk.IntAssert(dat.Ny, 51)
	chk.IntAssert(dat.Ngauss, 39)
	chk.Float64(tst, "hts", 1e-17, dat.Hts, 0.05)
	chk.String(tst, dat.Key, "line")

	prms := dat.Params()
	chk.IntAssert(len(prms), 5)
	for _, p := range prms {
		if p.N == "fy" {
			chk.Float64(tst, "prm fy", 1e-17, p.V, -1.0)
		}
	}
}
