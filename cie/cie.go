// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the core CIE colorimetry types: tristimulus
// values, chromaticity coordinates, standard whitepoints, and the
// explicit domain / range scaling convention used throughout
// cogentcore.org/colorimetry.
package cie

import (
	"errors"
	"math"
)

// ErrZeroSum is returned when tristimulus values cannot be projected
// to chromaticity coordinates because X+Y+Z is zero.
var ErrZeroSum = errors.New("cie: tristimulus values sum to zero, no chromaticity")

// XYZ is a set of CIE 1931 tristimulus values. Y carries the relative
// luminance. The values have no inherent upper bound: the scale
// convention (0-1 vs 0-100 etc) is given by the [Range] passed to the
// operation that produced them, never by the value itself.
type XYZ struct {
	X, Y, Z float64
}

// Chromaticity is a CIE 1931 xy chromaticity coordinate: the
// magnitude-free projection of tristimulus values. It is not
// invertible to XYZ without supplying a luminance, see [Chromaticity.XYZ].
type Chromaticity struct {
	X, Y float64
}

// Chromaticity projects the tristimulus values to xy chromaticity
// coordinates, returning [ErrZeroSum] if X+Y+Z is (near) zero.
func (v XYZ) Chromaticity() (Chromaticity, error) {
	s := v.X + v.Y + v.Z
	if math.Abs(s) < 1e-300 {
		return Chromaticity{}, ErrZeroSum
	}
	return Chromaticity{X: v.X / s, Y: v.Y / s}, nil
}

// XYZ recovers tristimulus values from the chromaticity coordinate and
// an explicit luminance Y. A chromaticity with y == 0 has no finite
// tristimulus representation and returns the zero XYZ.
func (c Chromaticity) XYZ(lum float64) XYZ {
	if c.Y == 0 {
		return XYZ{}
	}
	return XYZ{
		X: c.X * lum / c.Y,
		Y: lum,
		Z: (1 - c.X - c.Y) * lum / c.Y,
	}
}

// UV returns the CIE 1976 u'v' uniform chromaticity coordinates
// corresponding to the xy chromaticity.
func (c Chromaticity) UV() (u, v float64) {
	d := -2*c.X + 12*c.Y + 3
	if d == 0 {
		return 0, 0
	}
	return 4 * c.X / d, 9 * c.Y / d
}

// XYY returns the xyY representation of the tristimulus values:
// the chromaticity plus the luminance Y. It returns [ErrZeroSum] for
// the degenerate zero stimulus.
func (v XYZ) XYY() (Chromaticity, float64, error) {
	c, err := v.Chromaticity()
	if err != nil {
		return Chromaticity{}, 0, err
	}
	return c, v.Y, nil
}
