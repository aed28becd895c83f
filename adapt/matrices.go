// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adapt

import "gonum.org/v1/gonum/mat"

// coneTransform is a cone response transform and its precomputed
// inverse, both row-major 3x3.
type coneTransform struct {
	fwd [9]float64
	inv [9]float64
}

// methods holds the cone response matrices, indexed by [Method].
// The inverses are computed once at package init.
var methods = [methodN]coneTransform{
	Bradford: {fwd: [9]float64{
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	}},
	VonKries: {fwd: [9]float64{
		0.40024, 0.70760, -0.08081,
		-0.22630, 1.16532, 0.04570,
		0.00000, 0.00000, 0.91822,
	}},
	XYZScaling: {fwd: [9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}},
	CAT02: {fwd: [9]float64{
		0.7328, 0.4296, -0.1624,
		-0.7036, 1.6975, 0.0061,
		0.0030, 0.0136, 0.9834,
	}},
	CAT16: {fwd: [9]float64{
		0.401288, 0.650173, -0.051461,
		-0.250268, 1.204414, 0.045854,
		-0.002079, 0.048952, 0.953127,
	}},
}

func init() {
	for i := range methods {
		var inv mat.Dense
		if err := inv.Inverse(mat.NewDense(3, 3, methods[i].fwd[:])); err != nil {
			panic("adapt: cone response matrix not invertible: " + Method(i).String())
		}
		copy(methods[i].inv[:], inv.RawMatrix().Data)
	}
}
