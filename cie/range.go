// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// Range is the explicit domain / range scaling convention for
// tristimulus and RGB channel values. Every conversion that crosses a
// numeric convention boundary takes a Range parameter: there are no
// implicit context-dependent defaults. Internally all matrix and
// transfer function math runs on the unit (0-1) convention; Range only
// rescales at the boundaries.
type Range struct {
	// Scale is the value representing full intensity: 1 for the unit
	// convention, 100 for percentage-style tristimulus values, 255 for
	// 8-bit channel values, etc.
	Scale float64
}

// Standard scaling conventions.
var (
	// RangeUnit is the 0-1 convention.
	RangeUnit = Range{Scale: 1}

	// Range100 is the 0-100 convention, common for tristimulus values.
	Range100 = Range{Scale: 100}

	// Range255 is the 0-255 convention of 8-bit channels.
	Range255 = Range{Scale: 255}
)

// RangeBits returns the convention for an n-bit integer channel,
// with full intensity at 2^n - 1.
func RangeBits(n int) Range {
	return Range{Scale: float64(uint64(1)<<n - 1)}
}

// ToUnit rescales a value from this convention to the unit convention.
func (r Range) ToUnit(v float64) float64 {
	if r.Scale == 1 {
		return v
	}
	return v / r.Scale
}

// FromUnit rescales a value from the unit convention to this convention.
func (r Range) FromUnit(v float64) float64 {
	if r.Scale == 1 {
		return v
	}
	return v * r.Scale
}

// XYZToUnit rescales tristimulus values from this convention to the
// unit convention.
func (r Range) XYZToUnit(v XYZ) XYZ {
	return XYZ{X: r.ToUnit(v.X), Y: r.ToUnit(v.Y), Z: r.ToUnit(v.Z)}
}

// XYZFromUnit rescales tristimulus values from the unit convention to
// this convention.
func (r Range) XYZFromUnit(v XYZ) XYZ {
	return XYZ{X: r.FromUnit(v.X), Y: r.FromUnit(v.Y), Z: r.FromUnit(v.Z)}
}
