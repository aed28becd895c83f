// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package colorimetry provides CIE colorimetric computation: spectral
integration to tristimulus values, chromatic adaptation, and RGB
colourspace conversion.

The module is organized into focused packages:

  - cie: core tristimulus and chromaticity types, standard whitepoints,
    domain-range scaling, and a fast float32 sRGB codec.
  - spectrum: spectral distributions, standard observers (CIE 1931 2°
    and CIE 1964 10°), standard illuminants (A, D50, D65, E), and the
    spectral-to-XYZ integration pipeline.
  - adapt: von Kries chromatic adaptation with Bradford, von Kries,
    XYZ scaling, CAT02, and CAT16 cone transforms.
  - rgb: RGB colourspace definitions (sRGB, BT.709, Display P3, DCI-P3,
    Adobe RGB, BT.2020, ACES2065-1), matrix derivation from primaries,
    and cross-space conversion with adaptation.
  - rgb/transfer: opto-electronic transfer functions (gamma, sRGB,
    BT.709, BT.2020, PQ, HLG, DCDM, ACEScc).

A typical pipeline integrates a spectral measurement under an
illuminant and encodes the result in a display colourspace:

	sd, _ := spectrum.NewDistribution(wl, vals, spectrum.InterpCubic)
	xyz, _ := spectrum.Tristimulus(sd, spectrum.CIE1931(), spectrum.D65(), cie.RangeUnit)
	r, g, b, _ := rgb.SRGB.XYZEncoded(xyz, cie.RangeUnit)

All conversions take an explicit [cie.Range] describing the numeric
scale of the XYZ values involved, so unit-scale and 0-100 data can be
mixed without ambiguity.
*/
package colorimetry
