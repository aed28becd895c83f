// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/colorimetry/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestChromaticity(t *testing.T) {
	v := XYZ{X: 0.9504, Y: 1, Z: 1.0888}
	c, err := v.Chromaticity()
	assert.NoError(t, err)
	tolassert.Equal(t, 0.3127, c.X, 1e-4)
	tolassert.Equal(t, 0.3290, c.Y, 1e-4)

	// round trip through xyY
	back := c.XYZ(v.Y)
	tolassert.Equal(t, v.X, back.X, 1e-12)
	tolassert.Equal(t, v.Y, back.Y, 1e-12)
	tolassert.Equal(t, v.Z, back.Z, 1e-12)

	_, err = XYZ{}.Chromaticity()
	assert.ErrorIs(t, err, ErrZeroSum)
}

func TestUV(t *testing.T) {
	// D65 u'v' published values
	u, v := WhiteD65.UV()
	tolassert.Equal(t, 0.19783, u, 1e-4)
	tolassert.Equal(t, 0.46832, v, 1e-4)
}

func TestRange(t *testing.T) {
	assert.Equal(t, 0.5, Range255.ToUnit(127.5))
	assert.Equal(t, 127.5, Range255.FromUnit(0.5))
	assert.Equal(t, 1.0, RangeUnit.ToUnit(1.0))
	assert.Equal(t, float64(255), RangeBits(8).Scale)
	assert.Equal(t, float64(1023), RangeBits(10).Scale)

	v := Range100.XYZToUnit(XYZ{X: 95.047, Y: 100, Z: 108.883})
	tolassert.Equal(t, 0.95047, v.X, 1e-12)
	tolassert.Equal(t, 1.0, v.Y, 1e-12)
	v = Range100.XYZFromUnit(v)
	tolassert.Equal(t, 100.0, v.Y, 1e-12)
}

func TestDaylightChromaticity(t *testing.T) {
	c, err := DaylightChromaticity(6504)
	assert.NoError(t, err)
	tolassert.Equal(t, WhiteD65.X, c.X, 2e-3)
	tolassert.Equal(t, WhiteD65.Y, c.Y, 2e-3)

	c, err = DaylightChromaticity(5003)
	assert.NoError(t, err)
	tolassert.Equal(t, WhiteD50.X, c.X, 2e-3)
	tolassert.Equal(t, WhiteD50.Y, c.Y, 2e-3)

	_, err = DaylightChromaticity(3000)
	assert.ErrorIs(t, err, ErrBadCCT)
	_, err = DaylightChromaticity(30000)
	assert.ErrorIs(t, err, ErrBadCCT)
}
