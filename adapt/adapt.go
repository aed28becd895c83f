// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adapt implements chromatic adaptation: transforming
// tristimulus values observed under one reference white so they
// represent the same perceived colour under another, via a von Kries
// style diagonal scaling in a cone response domain.
package adapt

import (
	"errors"
	"fmt"
	"strings"

	"cogentcore.org/colorimetry/cie"
)

var (
	// ErrUnknownMethod is returned for an adaptation method name that
	// is not one of the supported models.
	ErrUnknownMethod = errors.New("adapt: unknown chromatic adaptation method")

	// ErrSingularWhite is returned when a whitepoint produces a
	// near-zero cone response, which would require dividing by zero.
	ErrSingularWhite = errors.New("adapt: whitepoint has a degenerate cone response")
)

// coneEpsilon is the smallest source cone response magnitude that is
// considered non-singular.
const coneEpsilon = 1e-10

// Method selects the chromatic adaptation model: each model is a fixed
// 3x3 transform into its cone response domain. The set is closed;
// these are the standards-defined models.
type Method int32

const (
	// Bradford is the Lam & Rigg sharpened transform used by ICC and
	// most colour management systems. It is the default choice.
	Bradford Method = iota

	// VonKries is the classic Hunt-Pointer-Estevez D65-normalized
	// transform.
	VonKries

	// XYZScaling scales tristimulus values directly ("wrong von
	// Kries"); kept for round-tripping data produced that way.
	XYZScaling

	// CAT02 is the CIECAM02 adaptation transform.
	CAT02

	// CAT16 is the CAM16 adaptation transform.
	CAT16

	methodN
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case Bradford:
		return "Bradford"
	case VonKries:
		return "Von Kries"
	case XYZScaling:
		return "XYZ Scaling"
	case CAT02:
		return "CAT02"
	case CAT16:
		return "CAT16"
	}
	return fmt.Sprintf("Method(%d)", int32(m))
}

// MethodFromString returns the method with the given name
// (case and space insensitive), or [ErrUnknownMethod].
func MethodFromString(name string) (Method, error) {
	key := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	for m := Method(0); m < methodN; m++ {
		if strings.ToLower(strings.ReplaceAll(m.String(), " ", "")) == key {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Adapt transforms tristimulus values observed under the source
// whitepoint to the corresponding values under the destination
// whitepoint, using the given adaptation method. Whitepoints are
// given as chromaticities and normalized internally to Y = 1; the
// transform itself is independent of the scale convention of xyz.
//
// Equal whitepoints return xyz unchanged. A whitepoint whose cone
// response is near zero returns [ErrSingularWhite].
func Adapt(xyz cie.XYZ, srcWhite, dstWhite cie.Chromaticity, m Method) (cie.XYZ, error) {
	if srcWhite == dstWhite {
		return xyz, nil
	}
	return AdaptXYZ(xyz, srcWhite.XYZ(1), dstWhite.XYZ(1), m)
}

// AdaptXYZ is [Adapt] with the whitepoints given directly as
// tristimulus values. The whitepoint magnitudes matter only relative
// to each other.
func AdaptXYZ(xyz, srcWhite, dstWhite cie.XYZ, m Method) (cie.XYZ, error) {
	if m < 0 || m >= methodN {
		return cie.XYZ{}, fmt.Errorf("%w: %d", ErrUnknownMethod, m)
	}
	if srcWhite == dstWhite {
		return xyz, nil
	}
	mm := &methods[m]

	sl, sm, ss := mul3(&mm.fwd, srcWhite.X, srcWhite.Y, srcWhite.Z)
	dl, dm, ds := mul3(&mm.fwd, dstWhite.X, dstWhite.Y, dstWhite.Z)
	if abs(sl) < coneEpsilon || abs(sm) < coneEpsilon || abs(ss) < coneEpsilon {
		return cie.XYZ{}, fmt.Errorf("%w: source cone response (%g, %g, %g)", ErrSingularWhite, sl, sm, ss)
	}

	l, mc, s := mul3(&mm.fwd, xyz.X, xyz.Y, xyz.Z)
	l *= dl / sl
	mc *= dm / sm
	s *= ds / ss

	x, y, z := mul3(&mm.inv, l, mc, s)
	return cie.XYZ{X: x, Y: y, Z: z}, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func mul3(m *[9]float64, a, b, c float64) (float64, float64, float64) {
	return m[0]*a + m[1]*b + m[2]*c,
		m[3]*a + m[4]*b + m[5]*c,
		m[6]*a + m[7]*b + m[8]*c
}
