// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rgb models RGB colourspaces: primaries, whitepoint, the
// RGB↔XYZ matrices derived from them, and the attached transfer
// function pair. It provides the built-in standard colourspaces and
// the conversions between them.
package rgb

import (
	"errors"
	"fmt"

	"cogentcore.org/colorimetry/adapt"
	"cogentcore.org/colorimetry/cie"
	"cogentcore.org/colorimetry/rgb/transfer"
	"gonum.org/v1/gonum/mat"
)

// ErrSingularPrimaries is returned when the three primaries are
// colinear in the chromaticity plane, so no RGB↔XYZ matrix pair
// exists.
var ErrSingularPrimaries = errors.New("rgb: primaries are colinear, matrix not invertible")

// Space is an RGB colourspace: three primary chromaticities, a
// whitepoint, the forward (RGB→XYZ) and inverse matrices derived from
// them, and the transfer function pair used for encoding. A Space is
// immutable after construction and safe for concurrent use.
type Space struct {
	// Name identifies the colourspace, e.g. "sRGB".
	Name string

	// Primaries are the red, green and blue primary chromaticities.
	Primaries [3]cie.Chromaticity

	// White is the whitepoint chromaticity; the forward matrix maps
	// linear RGB (1, 1, 1) to this whitepoint's XYZ with Y = 1.
	White cie.Chromaticity

	// Transfer is the encode / decode pair attached to the space.
	Transfer transfer.Function

	toXYZ   [9]float64 // row-major RGB→XYZ
	fromXYZ [9]float64 // row-major XYZ→RGB
}

// NewSpace derives an RGB colourspace from its primaries and
// whitepoint. The forward matrix is obtained by converting each
// primary chromaticity to an XYZ direction (z = 1-x-y) and solving for
// the per-primary scales that map full-intensity RGB to the whitepoint
// XYZ normalized to Y = 1. It returns [ErrSingularPrimaries] if the
// primaries are colinear. The derivation is deterministic: equal
// inputs always produce the identical matrices.
func NewSpace(name string, primaries [3]cie.Chromaticity, white cie.Chromaticity, fn transfer.Function) (*Space, error) {
	s := &Space{
		Name:      name,
		Primaries: primaries,
		White:     white,
		Transfer:  fn,
	}

	// primaries as XYZ direction columns
	p := mat.NewDense(3, 3, nil)
	for i, c := range primaries {
		p.Set(0, i, c.X)
		p.Set(1, i, c.Y)
		p.Set(2, i, 1-c.X-c.Y)
	}
	w := white.XYZ(1)

	// solve P·s = whiteXYZ for the column scales
	var scales mat.VecDense
	if err := scales.SolveVec(p, mat.NewVecDense(3, []float64{w.X, w.Y, w.Z})); err != nil {
		return nil, fmt.Errorf("%w (%s): %v", ErrSingularPrimaries, name, err)
	}

	fwd := mat.NewDense(3, 3, nil)
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			fwd.Set(row, col, p.At(row, col)*scales.AtVec(col))
		}
	}
	var inv mat.Dense
	if err := inv.Inverse(fwd); err != nil {
		return nil, fmt.Errorf("%w (%s): %v", ErrSingularPrimaries, name, err)
	}

	copy(s.toXYZ[:], fwd.RawMatrix().Data)
	copy(s.fromXYZ[:], inv.RawMatrix().Data)
	return s, nil
}

// MatrixToXYZ returns the forward RGB→XYZ matrix in row-major order.
func (s *Space) MatrixToXYZ() [9]float64 { return s.toXYZ }

// MatrixFromXYZ returns the inverse XYZ→RGB matrix in row-major order.
func (s *Space) MatrixFromXYZ() [9]float64 { return s.fromXYZ }

// XYZ converts linear RGB channel values in the given range convention
// to tristimulus values on the same convention.
func (s *Space) XYZ(r, g, b float64, rng cie.Range) cie.XYZ {
	r, g, b = rng.ToUnit(r), rng.ToUnit(g), rng.ToUnit(b)
	x, y, z := mul3(&s.toXYZ, r, g, b)
	return rng.XYZFromUnit(cie.XYZ{X: x, Y: y, Z: z})
}

// RGB converts tristimulus values in the given range convention to
// linear RGB channel values on the same convention. Out-of-gamut
// tristimulus values produce channel values outside [0, rng.Scale];
// they are returned as-is, gamut mapping is the caller's decision.
func (s *Space) RGB(xyz cie.XYZ, rng cie.Range) (r, g, b float64) {
	v := rng.XYZToUnit(xyz)
	r, g, b = mul3(&s.fromXYZ, v.X, v.Y, v.Z)
	return rng.FromUnit(r), rng.FromUnit(g), rng.FromUnit(b)
}

// Encode applies the space's transfer function to linear RGB values in
// the given range convention, returning encoded values on the same
// convention.
func (s *Space) Encode(r, g, b float64, rng cie.Range) (er, eg, eb float64, err error) {
	if er, err = s.Transfer.Encode(rng.ToUnit(r)); err != nil {
		return 0, 0, 0, err
	}
	if eg, err = s.Transfer.Encode(rng.ToUnit(g)); err != nil {
		return 0, 0, 0, err
	}
	if eb, err = s.Transfer.Encode(rng.ToUnit(b)); err != nil {
		return 0, 0, 0, err
	}
	return rng.FromUnit(er), rng.FromUnit(eg), rng.FromUnit(eb), nil
}

// Decode reverses the space's transfer function, converting encoded
// RGB values in the given range convention to linear values on the
// same convention.
func (s *Space) Decode(er, eg, eb float64, rng cie.Range) (r, g, b float64, err error) {
	if r, err = s.Transfer.Decode(rng.ToUnit(er)); err != nil {
		return 0, 0, 0, err
	}
	if g, err = s.Transfer.Decode(rng.ToUnit(eg)); err != nil {
		return 0, 0, 0, err
	}
	if b, err = s.Transfer.Decode(rng.ToUnit(eb)); err != nil {
		return 0, 0, 0, err
	}
	return rng.FromUnit(r), rng.FromUnit(g), rng.FromUnit(b), nil
}

// EncodedXYZ converts encoded RGB values to tristimulus values:
// decode, then the forward matrix.
func (s *Space) EncodedXYZ(er, eg, eb float64, rng cie.Range) (cie.XYZ, error) {
	r, g, b, err := s.Decode(er, eg, eb, rng)
	if err != nil {
		return cie.XYZ{}, err
	}
	return s.XYZ(r, g, b, rng), nil
}

// XYZEncoded converts tristimulus values to encoded RGB values:
// the inverse matrix, then encode.
func (s *Space) XYZEncoded(xyz cie.XYZ, rng cie.Range) (er, eg, eb float64, err error) {
	r, g, b := s.RGB(xyz, rng)
	return s.Encode(r, g, b, rng)
}

// Convert converts encoded RGB values from one colourspace to another:
// decode, to XYZ, chromatic adaptation when the whitepoints differ
// (using the given method), to the destination's linear RGB, encode.
func Convert(er, eg, eb float64, from, to *Space, m adapt.Method, rng cie.Range) (float64, float64, float64, error) {
	xyz, err := from.EncodedXYZ(er, eg, eb, rng)
	if err != nil {
		return 0, 0, 0, err
	}
	if from.White != to.White {
		xyz = rng.XYZToUnit(xyz)
		xyz, err = adapt.Adapt(xyz, from.White, to.White, m)
		if err != nil {
			return 0, 0, 0, err
		}
		xyz = rng.XYZFromUnit(xyz)
	}
	return to.XYZEncoded(xyz, rng)
}

// ConvertSlice converts a stride-3 slice of encoded RGB triples from
// one colourspace to another, writing into dst, which must have the
// same length as src. It is the batch form of [Convert].
func ConvertSlice(dst, src []float64, from, to *Space, m adapt.Method, rng cie.Range) error {
	if len(dst) != len(src) {
		return fmt.Errorf("rgb: dst length %d != src length %d", len(dst), len(src))
	}
	if len(src)%3 != 0 {
		return fmt.Errorf("rgb: slice length %d is not a multiple of 3", len(src))
	}
	for i := 0; i < len(src); i += 3 {
		r, g, b, err := Convert(src[i], src[i+1], src[i+2], from, to, m, rng)
		if err != nil {
			return err
		}
		dst[i], dst[i+1], dst[i+2] = r, g, b
	}
	return nil
}

func mul3(m *[9]float64, a, b, c float64) (float64, float64, float64) {
	return m[0]*a + m[1]*b + m[2]*c,
		m[3]*a + m[4]*b + m[5]*c,
		m[6]*a + m[7]*b + m[8]*c
}
