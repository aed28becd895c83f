// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgb

import (
	"math/rand"
	"testing"

	"cogentcore.org/colorimetry/adapt"
	"cogentcore.org/colorimetry/base/tolassert"
	"cogentcore.org/colorimetry/cie"
	"cogentcore.org/colorimetry/rgb/transfer"
	"github.com/stretchr/testify/assert"
)

func TestWhitepointInvariant(t *testing.T) {
	// the defining correctness property of the derivation: full
	// intensity linear RGB maps exactly to the whitepoint XYZ
	for _, name := range Spaces() {
		s, err := SpaceNamed(name)
		assert.NoError(t, err)
		t.Run(name, func(t *testing.T) {
			got := s.XYZ(1, 1, 1, cie.RangeUnit)
			want := s.White.XYZ(1)
			tolassert.Equal(t, want.X, got.X, 1e-6)
			tolassert.Equal(t, want.Y, got.Y, 1e-6)
			tolassert.Equal(t, want.Z, got.Z, 1e-6)
		})
	}
}

func TestSRGBMatrix(t *testing.T) {
	// published IEC 61966-2-1 matrix values
	want := [9]float64{
		0.4124, 0.3576, 0.1805,
		0.2126, 0.7152, 0.0722,
		0.0193, 0.1192, 0.9505,
	}
	m := SRGB.MatrixToXYZ()
	tolassert.EqualTolSlice(t, want[:], m[:], 1e-4)
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, name := range Spaces() {
		s, err := SpaceNamed(name)
		assert.NoError(t, err)
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				r, g, b := rnd.Float64(), rnd.Float64(), rnd.Float64()
				xyz := s.XYZ(r, g, b, cie.RangeUnit)
				rr, gg, bb := s.RGB(xyz, cie.RangeUnit)
				tolassert.Equal(t, r, rr, 1e-9)
				tolassert.Equal(t, g, gg, 1e-9)
				tolassert.Equal(t, b, bb, 1e-9)
			}
		})
	}
}

func TestEncodedRed(t *testing.T) {
	// encoded sRGB pure red decodes to linear (1, 0, 0) and lands on
	// the published red primary XYZ
	r, g, b, err := SRGB.Decode(1, 0, 0, cie.RangeUnit)
	assert.NoError(t, err)
	tolassert.Equal(t, 1.0, r, 1e-12)
	tolassert.Equal(t, 0.0, g, 1e-12)
	tolassert.Equal(t, 0.0, b, 1e-12)

	xyz, err := SRGB.EncodedXYZ(1, 0, 0, cie.RangeUnit)
	assert.NoError(t, err)
	tolassert.Equal(t, 0.4124, xyz.X, 1e-4)
	tolassert.Equal(t, 0.2126, xyz.Y, 1e-4)
	tolassert.Equal(t, 0.0193, xyz.Z, 1e-4)
}

func TestSingularPrimaries(t *testing.T) {
	colinear := [3]cie.Chromaticity{
		{X: 0.1, Y: 0.1}, {X: 0.2, Y: 0.2}, {X: 0.3, Y: 0.3},
	}
	_, err := NewSpace("degenerate", colinear, cie.WhiteD65,
		transfer.Function{Family: transfer.Linear})
	assert.ErrorIs(t, err, ErrSingularPrimaries)
}

func TestRangeScaling(t *testing.T) {
	// the same matrices serve every range convention
	xyzUnit := SRGB.XYZ(0.25, 0.5, 0.75, cie.RangeUnit)
	xyz255 := SRGB.XYZ(0.25*255, 0.5*255, 0.75*255, cie.Range255)
	tolassert.Equal(t, xyzUnit.X*255, xyz255.X, 1e-9)
	tolassert.Equal(t, xyzUnit.Y*255, xyz255.Y, 1e-9)
	tolassert.Equal(t, xyzUnit.Z*255, xyz255.Z, 1e-9)

	er, eg, eb, err := SRGB.Encode(0.25*255, 0.5*255, 0.75*255, cie.Range255)
	assert.NoError(t, err)
	ur, ug, ub, err := SRGB.Encode(0.25, 0.5, 0.75, cie.RangeUnit)
	assert.NoError(t, err)
	tolassert.Equal(t, ur*255, er, 1e-9)
	tolassert.Equal(t, ug*255, eg, 1e-9)
	tolassert.Equal(t, ub*255, eb, 1e-9)
}

func TestConvertSameWhite(t *testing.T) {
	// sRGB and Display P3 share D65 and the transfer function, so
	// grey converts to itself
	r, g, b, err := Convert(0.5, 0.5, 0.5, SRGB, DisplayP3, adapt.Bradford, cie.RangeUnit)
	assert.NoError(t, err)
	tolassert.Equal(t, 0.5, r, 1e-9)
	tolassert.Equal(t, 0.5, g, 1e-9)
	tolassert.Equal(t, 0.5, b, 1e-9)

	// saturated red is out of reach for sRGB: converting the P3 red
	// into sRGB leaves the gamut
	r, _, _, err = Convert(1, 0, 0, DisplayP3, SRGB, adapt.Bradford, cie.RangeUnit)
	assert.NoError(t, err)
	assert.Greater(t, r, 1.0)
}

func TestConvertAdapted(t *testing.T) {
	// white stays white across differing whitepoints
	r, g, b, err := Convert(1, 1, 1, SRGB, DCIP3, adapt.Bradford, cie.RangeUnit)
	assert.NoError(t, err)
	tolassert.Equal(t, 1.0, r, 1e-9)
	tolassert.Equal(t, 1.0, g, 1e-9)
	tolassert.Equal(t, 1.0, b, 1e-9)

	// and round-trips through the adaptation
	r, g, b, err = Convert(0.3, 0.6, 0.9, SRGB, ACES2065, adapt.CAT02, cie.RangeUnit)
	assert.NoError(t, err)
	r, g, b, err = Convert(r, g, b, ACES2065, SRGB, adapt.CAT02, cie.RangeUnit)
	assert.NoError(t, err)
	tolassert.Equal(t, 0.3, r, 1e-9)
	tolassert.Equal(t, 0.6, g, 1e-9)
	tolassert.Equal(t, 0.9, b, 1e-9)
}

func TestConvertSlice(t *testing.T) {
	src := []float64{0, 0, 0, 0.5, 0.5, 0.5, 1, 0, 0, 0.2, 0.4, 0.8}
	dst := make([]float64, len(src))
	assert.NoError(t, ConvertSlice(dst, src, SRGB, BT2020, adapt.Bradford, cie.RangeUnit))
	for i := 0; i < len(src); i += 3 {
		r, g, b, err := Convert(src[i], src[i+1], src[i+2], SRGB, BT2020, adapt.Bradford, cie.RangeUnit)
		assert.NoError(t, err)
		assert.Equal(t, r, dst[i])
		assert.Equal(t, g, dst[i+1])
		assert.Equal(t, b, dst[i+2])
	}

	assert.Error(t, ConvertSlice(make([]float64, 3), src, SRGB, BT2020, adapt.Bradford, cie.RangeUnit))
	assert.Error(t, ConvertSlice(make([]float64, 4), src[:4], SRGB, BT2020, adapt.Bradford, cie.RangeUnit))
}

func TestSpaceNamed(t *testing.T) {
	s, err := SpaceNamed("sRGB")
	assert.NoError(t, err)
	assert.Same(t, SRGB, s)

	_, err = SpaceNamed("NTSC 1953")
	assert.Error(t, err)

	assert.Contains(t, Spaces(), "Adobe RGB (1998)")
	assert.Contains(t, Spaces(), "ACES2065-1")
}

func BenchmarkConvert(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _, _, err := Convert(0.2, 0.4, 0.8, SRGB, BT2020, adapt.Bradford, cie.RangeUnit)
		if err != nil {
			b.Fatal(err)
		}
	}
}
