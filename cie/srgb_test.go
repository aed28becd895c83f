// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/colorimetry/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestSRGB(t *testing.T) {
	tolassert.Equal(t, float32(0.00015479876), SRGBToLinearComp(0.002))
	tolassert.Equal(t, float32(0.23302202), SRGBToLinearComp(0.52))

	tolassert.Equal(t, float32(0.012920001), SRGBFromLinearComp(0.001))
	tolassert.Equal(t, float32(0.84338915), SRGBFromLinearComp(0.68))

	rl, gl, bl := SRGBToLinear(0.3, 0.2, 0.6)
	tolassert.Equal(t, float32(0.07323897), rl)
	tolassert.Equal(t, float32(0.033104762), gl)
	tolassert.Equal(t, float32(0.31854683), bl)

	rl, gl, bl = SRGB100ToLinear(0.3, 0.2, 0.6)
	tolassert.Equal(t, float32(7.323897), rl)
	tolassert.Equal(t, float32(3.3104763), gl)
	tolassert.Equal(t, float32(31.854683), bl)

	r, g, b := SRGBFromLinear(0.12, 0.34, 0.78)
	tolassert.Equal(t, float32(0.38109186), r)
	tolassert.Equal(t, float32(0.61803144), g)
	tolassert.Equal(t, float32(0.8962438), b)

	r, g, b = SRGBFromLinear100(12, 34, 78)
	tolassert.Equal(t, float32(0.38109186), r)
	tolassert.Equal(t, float32(0.61803144), g)
	tolassert.Equal(t, float32(0.8962438), b)

	ur, ug, ub, ua := SRGBFloatToUint8(0.36, 0.81, 0.41, 0.9)
	assert.Equal(t, uint8(0x53), ur)
	assert.Equal(t, uint8(0xba), ug)
	assert.Equal(t, uint8(0x5e), ub)
	assert.Equal(t, uint8(0xe6), ua)

	fr, fg, fb, fa := SRGBUint8ToFloat(18, 201, 157, 198)
	tolassert.Equal(t, float32(0.09090909), fr)
	tolassert.Equal(t, float32(1.0151515), fg)
	tolassert.Equal(t, float32(0.7929293), fb)
	tolassert.Equal(t, float32(0.7764706), fa)
}

func TestSRGBRoundTrip(t *testing.T) {
	for _, v := range []float32{0, 0.0031308, 0.04045, 0.1, 0.5, 0.9, 1} {
		tolassert.Equal(t, v, SRGBToLinearComp(SRGBFromLinearComp(v)), 1e-6)
	}
}

func TestXYZ32(t *testing.T) {
	x, y, z := SRGBLinToXYZ(0.5, 0.6, 0.7)
	tolassert.Equal(t, float32(0.5470991), x, 1e-6)
	tolassert.Equal(t, float32(0.58596003), y, 1e-6)
	tolassert.Equal(t, float32(0.74640036), z, 1e-6)

	rl, gl, bl := XYZToSRGBLin(x, y, z)
	tolassert.Equal(t, float32(0.5000365), rl, 1e-5)
	tolassert.Equal(t, float32(0.60003513), gl, 1e-5)
	tolassert.Equal(t, float32(0.69988275), bl, 1e-5)

	x, y, z = SRGBToXYZ100(1, 1, 1)
	tolassert.Equal(t, float32(95.047), x, 0.05)
	tolassert.Equal(t, float32(100), y, 0.05)
	tolassert.Equal(t, float32(108.883), z, 0.15)
}
