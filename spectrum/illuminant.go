// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectrum

import (
	"math"

	"cogentcore.org/colorimetry/cie"
)

// Illuminant pairs a standard light source's relative spectral power
// distribution with its published whitepoint chromaticity under the
// CIE 1931 2° observer. The built-in illuminants are process-wide
// immutable reference data.
type Illuminant struct {
	// Name identifies the illuminant, e.g. "D65".
	Name string

	// White is the published whitepoint chromaticity (2° observer).
	White cie.Chromaticity

	// SPD is the relative spectral power distribution, normalized to
	// 100 at 560 nm. Illuminant tables interpolate linearly per CIE 15.
	SPD *Distribution
}

// D65 returns CIE standard illuminant D65, noon daylight at
// approximately 6504 K. The returned value is shared reference data.
func D65() *Illuminant { return illD65 }

// D50 returns CIE standard illuminant D50, horizon daylight at
// approximately 5003 K. The returned value is shared reference data.
func D50() *Illuminant { return illD50 }

// A returns CIE standard illuminant A: a Planckian radiator at
// 2855.54 K (c2 = 1.435e-2 m·K convention), the tungsten incandescent
// reference. The returned value is shared reference data.
func A() *Illuminant { return illA }

// E returns the equal-energy illuminant: constant spectral power at
// every wavelength. The returned value is shared reference data.
func E() *Illuminant { return illE }

var (
	illD65 = &Illuminant{
		Name:  "D65",
		White: cie.WhiteD65,
		SPD:   newUniform(380, 10, d65SPD, InterpLinear),
	}
	illD50 = &Illuminant{
		Name:  "D50",
		White: cie.WhiteD50,
		SPD:   newUniform(380, 10, d50SPD, InterpLinear),
	}
	illA = &Illuminant{
		Name:  "A",
		White: cie.WhiteA,
		SPD:   newUniform(380, 5, planckianA(380, 5, 81), InterpLinear),
	}
	illE = &Illuminant{
		Name:  "E",
		White: cie.WhiteE,
		SPD:   newUniform(360, 470, []float64{100, 100}, InterpLinear),
	}
)

// planckianA tabulates the illuminant A defining formula of CIE 15:
// 100 (560/λ)^5 (e^(c2/(2848·560nm)) - 1) / (e^(c2/(2848·λ)) - 1)
// with c2 = 1.435e7 nm·K.
func planckianA(begin, step float64, n int) []float64 {
	const c2 = 1.435e7 // nm·K
	const t = 2848     // K, the conventional temperature of the formula
	ref := math.Exp(c2/(t*560)) - 1
	vals := make([]float64, n)
	for i := range vals {
		wl := begin + float64(i)*step
		vals[i] = 100 * math.Pow(560/wl, 5) * ref / (math.Exp(c2/(t*wl)) - 1)
	}
	return vals
}
