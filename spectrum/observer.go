// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectrum

// Observer is a set of colour matching functions (x̄, ȳ, z̄) defining a
// CIE standard observer, tabulated on a uniform wavelength grid.
// The built-in observers are process-wide immutable reference data:
// callers must not modify the returned slices.
type Observer struct {
	// Name identifies the observer, e.g. "CIE 1931 2 Degree Standard Observer".
	Name string

	// Begin and Step define the uniform wavelength grid in nm.
	Begin, Step float64

	// X, Y, Z are the colour matching function values on the grid.
	X, Y, Z []float64
}

// End returns the last wavelength of the grid in nm.
func (o *Observer) End() float64 {
	return o.Begin + float64(len(o.Y)-1)*o.Step
}

// Wavelengths returns a copy of the observer's wavelength grid.
func (o *Observer) Wavelengths() []float64 {
	return uniformGrid(o.Begin, o.End(), o.Step)
}

// CIE1931 returns the CIE 1931 2° standard observer, tabulated at 5 nm
// from 380 nm to 780 nm. The returned value is shared reference data.
func CIE1931() *Observer { return cie1931 }

// CIE1964 returns the CIE 1964 10° supplementary standard observer,
// tabulated at 10 nm from 380 nm to 780 nm. The returned value is
// shared reference data.
func CIE1964() *Observer { return cie1964 }
