// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spectrum provides spectral power distributions, the CIE
// standard observer colour matching functions and illuminant tables,
// and the integration of spectral data to tristimulus values.
package spectrum

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/interp"
)

var (
	// ErrDomainMismatch is returned when a spectral distribution does
	// not cover the wavelength domain required by an operation.
	// Operations never zero-pad missing data.
	ErrDomainMismatch = errors.New("spectrum: wavelength domain not covered")

	// ErrWavelengthOrder is returned when wavelengths are not strictly
	// increasing.
	ErrWavelengthOrder = errors.New("spectrum: wavelengths must be strictly increasing")

	// ErrTooFewSamples is returned when a distribution has fewer than
	// two samples.
	ErrTooFewSamples = errors.New("spectrum: at least two samples required")

	// ErrLengthMismatch is returned when wavelength and value slices
	// differ in length.
	ErrLengthMismatch = errors.New("spectrum: wavelength and value slices must have the same length")
)

// Interpolation selects the method used to evaluate a [Distribution]
// between its tabulated samples. The method is fixed per distribution
// at construction: there is no implicit defaulting at call sites.
type Interpolation int32

const (
	// InterpLinear is piecewise linear interpolation, the method CIE 15
	// prescribes for illuminant tables and other measured data.
	InterpLinear Interpolation = iota

	// InterpCubic is a natural cubic spline, appropriate for smooth
	// reflectance and emission curves.
	InterpCubic
)

// String returns the name of the interpolation method.
func (i Interpolation) String() string {
	switch i {
	case InterpLinear:
		return "linear"
	case InterpCubic:
		return "cubic"
	}
	return fmt.Sprintf("Interpolation(%d)", int32(i))
}

// Distribution is a spectral distribution: an ordered mapping from
// wavelength in nanometres to a non-negative intensity or reflectance
// value. Wavelengths are strictly increasing but need not be uniformly
// spaced. A Distribution is immutable after construction and safe for
// concurrent use.
type Distribution struct {
	wl     []float64
	val    []float64
	interp Interpolation
	pred   interp.Predictor
}

// NewDistribution returns a new spectral distribution over the given
// wavelengths (nm) and values, evaluated between samples with the
// given interpolation method. The slices are copied. It returns
// [ErrWavelengthOrder] if the wavelengths are not strictly increasing,
// [ErrTooFewSamples] for fewer than two samples, and
// [ErrLengthMismatch] for inconsistent slice lengths.
func NewDistribution(wavelengths, values []float64, method Interpolation) (*Distribution, error) {
	if len(wavelengths) != len(values) {
		return nil, ErrLengthMismatch
	}
	if len(wavelengths) < 2 {
		return nil, ErrTooFewSamples
	}
	for i := 1; i < len(wavelengths); i++ {
		if wavelengths[i] <= wavelengths[i-1] {
			return nil, fmt.Errorf("%w: %gnm then %gnm", ErrWavelengthOrder, wavelengths[i-1], wavelengths[i])
		}
	}
	d := &Distribution{
		wl:     append([]float64(nil), wavelengths...),
		val:    append([]float64(nil), values...),
		interp: method,
	}
	var err error
	switch method {
	case InterpCubic:
		nc := &interp.NaturalCubic{}
		err = nc.Fit(d.wl, d.val)
		d.pred = nc
	default:
		pl := &interp.PiecewiseLinear{}
		err = pl.Fit(d.wl, d.val)
		d.pred = pl
	}
	if err != nil {
		return nil, fmt.Errorf("spectrum: fitting interpolator: %w", err)
	}
	return d, nil
}

// newUniform returns a distribution on a uniform wavelength grid.
// It panics on invalid static data; it is only used for the built-in
// tables.
func newUniform(begin, step float64, values []float64, method Interpolation) *Distribution {
	wl := make([]float64, len(values))
	for i := range wl {
		wl[i] = begin + float64(i)*step
	}
	d, err := NewDistribution(wl, values, method)
	if err != nil {
		panic(err)
	}
	return d
}

// Interpolation returns the interpolation method fixed at construction.
func (d *Distribution) Interpolation() Interpolation { return d.interp }

// Domain returns the first and last tabulated wavelength in nm.
func (d *Distribution) Domain() (min, max float64) {
	return d.wl[0], d.wl[len(d.wl)-1]
}

// Len returns the number of tabulated samples.
func (d *Distribution) Len() int { return len(d.wl) }

// Covers reports whether the distribution's domain includes the
// interval [min, max].
func (d *Distribution) Covers(min, max float64) bool {
	lo, hi := d.Domain()
	return lo <= min && hi >= max
}

// Sample evaluates the distribution at the given wavelength, returning
// [ErrDomainMismatch] if the wavelength is outside the tabulated
// domain. There is no extrapolation.
func (d *Distribution) Sample(wl float64) (float64, error) {
	lo, hi := d.Domain()
	if wl < lo || wl > hi {
		return 0, fmt.Errorf("%w: %gnm outside [%g, %g]", ErrDomainMismatch, wl, lo, hi)
	}
	return d.pred.Predict(wl), nil
}

// Resample returns a new distribution evaluated on the uniform grid
// from begin to end (inclusive) with the given step, keeping the same
// interpolation method. The grid must lie within the distribution's
// domain, else [ErrDomainMismatch].
func (d *Distribution) Resample(begin, end, step float64) (*Distribution, error) {
	vals, err := d.valuesOn(begin, end, step)
	if err != nil {
		return nil, err
	}
	return NewDistribution(uniformGrid(begin, end, step), vals, d.interp)
}

// valuesOn evaluates the distribution on a uniform grid.
func (d *Distribution) valuesOn(begin, end, step float64) ([]float64, error) {
	if !d.Covers(begin, end) {
		lo, hi := d.Domain()
		return nil, fmt.Errorf("%w: need [%g, %g], have [%g, %g]", ErrDomainMismatch, begin, end, lo, hi)
	}
	n := int((end-begin)/step) + 1
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = d.pred.Predict(begin + float64(i)*step)
	}
	return vals, nil
}

func uniformGrid(begin, end, step float64) []float64 {
	n := int((end-begin)/step) + 1
	wl := make([]float64, n)
	for i := range wl {
		wl[i] = begin + float64(i)*step
	}
	return wl
}
