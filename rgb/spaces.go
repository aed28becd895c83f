// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgb

import (
	"fmt"
	"sort"

	"cogentcore.org/colorimetry/cie"
	"cogentcore.org/colorimetry/rgb/transfer"
)

// Built-in standard colourspaces. These are process-wide immutable
// reference data, derived once at init from their published primaries
// and whitepoints.
var (
	// SRGB is IEC 61966-2-1 sRGB: BT.709 primaries, D65, the sRGB
	// piecewise transfer function.
	SRGB *Space

	// DisplayP3 is Apple Display P3: DCI-P3 primaries, D65, the sRGB
	// transfer function.
	DisplayP3 *Space

	// DCIP3 is SMPTE RP 431-2 DCI-P3: DCI primaries, the DCI white,
	// a pure 2.6 gamma.
	DCIP3 *Space

	// AdobeRGB is Adobe RGB (1998): a pure 563/256 gamma.
	AdobeRGB *Space

	// BT709 is Rec. ITU-R BT.709: sRGB primaries with the BT.709 OETF.
	BT709 *Space

	// BT2020 is Rec. ITU-R BT.2020 with the 12-bit OETF constants.
	BT2020 *Space

	// ACES2065 is the ACES2065-1 archival space: AP0 primaries, the
	// ACES (≈D60) whitepoint, linear encoding.
	ACES2065 *Space
)

var builtin map[string]*Space

func init() {
	bt709Primaries := [3]cie.Chromaticity{
		{X: 0.64, Y: 0.33}, {X: 0.30, Y: 0.60}, {X: 0.15, Y: 0.06},
	}
	p3Primaries := [3]cie.Chromaticity{
		{X: 0.680, Y: 0.320}, {X: 0.265, Y: 0.690}, {X: 0.150, Y: 0.060},
	}

	SRGB = mustSpace("sRGB", bt709Primaries, cie.WhiteD65,
		transfer.Function{Family: transfer.SRGB})
	BT709 = mustSpace("ITU-R BT.709", bt709Primaries, cie.WhiteD65,
		transfer.Function{Family: transfer.BT709})
	DisplayP3 = mustSpace("Display P3", p3Primaries, cie.WhiteD65,
		transfer.Function{Family: transfer.SRGB})
	DCIP3 = mustSpace("DCI-P3", p3Primaries, cie.WhiteDCI,
		transfer.GammaFn(2.6))
	AdobeRGB = mustSpace("Adobe RGB (1998)", [3]cie.Chromaticity{
		{X: 0.6400, Y: 0.3300}, {X: 0.2100, Y: 0.7100}, {X: 0.1500, Y: 0.0600},
	}, cie.WhiteD65, transfer.GammaFn(563.0/256))
	BT2020 = mustSpace("ITU-R BT.2020", [3]cie.Chromaticity{
		{X: 0.708, Y: 0.292}, {X: 0.170, Y: 0.797}, {X: 0.131, Y: 0.046},
	}, cie.WhiteD65, transfer.Function{Family: transfer.BT2020})
	ACES2065 = mustSpace("ACES2065-1", [3]cie.Chromaticity{
		{X: 0.73470, Y: 0.26530}, {X: 0.00000, Y: 1.00000}, {X: 0.00010, Y: -0.07700},
	}, cie.WhiteACES, transfer.Function{Family: transfer.Linear})

	builtin = make(map[string]*Space)
	for _, s := range []*Space{SRGB, BT709, DisplayP3, DCIP3, AdobeRGB, BT2020, ACES2065} {
		builtin[s.Name] = s
	}
}

// mustSpace derives a built-in space, panicking on bad static data.
func mustSpace(name string, primaries [3]cie.Chromaticity, white cie.Chromaticity, fn transfer.Function) *Space {
	s, err := NewSpace(name, primaries, white, fn)
	if err != nil {
		panic(err)
	}
	return s
}

// Spaces returns the names of the built-in colourspaces, sorted.
func Spaces() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SpaceNamed returns the built-in colourspace with the given name.
func SpaceNamed(name string) (*Space, error) {
	s, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("rgb: no built-in colourspace named %q", name)
	}
	return s, nil
}
