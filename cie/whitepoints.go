// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"errors"
	"math"
)

// Standard whitepoint chromaticities for the CIE 1931 2° observer,
// as published in CIE 15 and the respective colourspace standards.
var (
	// WhiteA is CIE standard illuminant A (tungsten, 2856 K).
	WhiteA = Chromaticity{X: 0.44757, Y: 0.40745}

	// WhiteD50 is CIE standard illuminant D50 (horizon daylight).
	WhiteD50 = Chromaticity{X: 0.34570, Y: 0.35850}

	// WhiteD55 is CIE standard illuminant D55.
	WhiteD55 = Chromaticity{X: 0.33243, Y: 0.34744}

	// WhiteD65 is CIE standard illuminant D65 (noon daylight), the
	// whitepoint of sRGB, Display P3, Adobe RGB and the BT standards.
	WhiteD65 = Chromaticity{X: 0.3127, Y: 0.3290}

	// WhiteD75 is CIE standard illuminant D75.
	WhiteD75 = Chromaticity{X: 0.29903, Y: 0.31488}

	// WhiteE is the equal-energy illuminant.
	WhiteE = Chromaticity{X: 1.0 / 3.0, Y: 1.0 / 3.0}

	// WhiteDCI is the DCI-P3 theatrical whitepoint.
	WhiteDCI = Chromaticity{X: 0.314, Y: 0.351}

	// WhiteACES is the ACES whitepoint (approximately D60).
	WhiteACES = Chromaticity{X: 0.32168, Y: 0.33767}
)

// Whitepoint chromaticities for the CIE 1964 10° observer.
var (
	// WhiteD65Deg10 is illuminant D65 under the 10° observer.
	WhiteD65Deg10 = Chromaticity{X: 0.31382, Y: 0.33100}

	// WhiteD50Deg10 is illuminant D50 under the 10° observer.
	WhiteD50Deg10 = Chromaticity{X: 0.34773, Y: 0.35952}
)

// ErrBadCCT is returned by [DaylightChromaticity] for correlated colour
// temperatures outside the 4000 K - 25000 K validity range of the CIE
// daylight locus polynomial.
var ErrBadCCT = errors.New("cie: correlated colour temperature outside 4000-25000 K")

// DaylightChromaticity returns the chromaticity of the CIE daylight
// illuminant with the given correlated colour temperature in kelvin,
// using the CIE daylight locus polynomial. The valid range is
// 4000 K to 25000 K; values outside it return [ErrBadCCT].
func DaylightChromaticity(cct float64) (Chromaticity, error) {
	t := cct
	t2 := t * t
	t3 := t2 * t
	var x float64
	switch {
	case t >= 4000 && t <= 7000:
		x = -4.6070e9/t3 + 2.9678e6/t2 + 0.09911e3/t + 0.244063
	case t > 7000 && t <= 25000:
		x = -2.0064e9/t3 + 1.9018e6/t2 + 0.24748e3/t + 0.237040
	default:
		return Chromaticity{}, ErrBadCCT
	}
	y := -3.000*x*x + 2.870*x - 0.275
	return Chromaticity{X: x, Y: y}, nil
}

// Equal reports whether two chromaticities are equal within the given
// absolute tolerance.
func (c Chromaticity) Equal(o Chromaticity, tol float64) bool {
	return math.Abs(c.X-o.X) <= tol && math.Abs(c.Y-o.Y) <= tol
}
