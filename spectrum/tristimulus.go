// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectrum

import (
	"fmt"
	"runtime"
	"sync"

	"cogentcore.org/colorimetry/cie"
	"gonum.org/v1/gonum/floats"
)

// Tristimulus integrates a spectral distribution against an observer's
// colour matching functions, producing tristimulus values.
//
// With a non-nil illuminant, sd is treated as a reflectance or
// transmittance factor viewed under that illuminant: each component is
// k·Σ sd(λ)·I(λ)·c̄(λ)·Δλ with k = rng.Scale / Σ I(λ)·ȳ(λ)·Δλ, so a
// perfect reflector has Y = rng.Scale.
//
// With a nil illuminant, sd is itself the light source and is
// normalized against its own luminance: Y = rng.Scale exactly, and the
// chromaticity is that of the source.
//
// Both sd and the illuminant table must cover the observer's full
// wavelength domain; otherwise [ErrDomainMismatch] is returned rather
// than zero-padding. The function is pure: no state is read or
// written beyond its arguments.
func Tristimulus(sd *Distribution, obs *Observer, ill *Illuminant, rng cie.Range) (cie.XYZ, error) {
	sdv, err := sd.valuesOn(obs.Begin, obs.End(), obs.Step)
	if err != nil {
		return cie.XYZ{}, fmt.Errorf("spectral distribution: %w", err)
	}
	if ill == nil {
		return integrate(sdv, nil, obs, rng)
	}
	iv, err := ill.SPD.valuesOn(obs.Begin, obs.End(), obs.Step)
	if err != nil {
		return cie.XYZ{}, fmt.Errorf("illuminant %s: %w", ill.Name, err)
	}
	return integrate(sdv, iv, obs, rng)
}

// Whitepoint integrates the illuminant itself against the observer,
// yielding the illuminant's whitepoint tristimulus values with
// Y = rng.Scale.
func Whitepoint(obs *Observer, ill *Illuminant, rng cie.Range) (cie.XYZ, error) {
	return Tristimulus(ill.SPD, obs, nil, rng)
}

// integrate performs the discrete summation on values already aligned
// to the observer grid. iv == nil selects the emissive normalization.
func integrate(sdv, iv []float64, obs *Observer, rng cie.Range) (cie.XYZ, error) {
	norm := sdv
	if iv != nil {
		norm = iv
	}
	ysum := floats.Dot(norm, obs.Y)
	if ysum <= 0 {
		return cie.XYZ{}, fmt.Errorf("%w: zero luminance normalization", ErrDomainMismatch)
	}
	k := rng.Scale / ysum
	var x, y, z float64
	for i, s := range sdv {
		w := s
		if iv != nil {
			w *= iv[i]
		}
		x += w * obs.X[i]
		y += w * obs.Y[i]
		z += w * obs.Z[i]
	}
	return cie.XYZ{X: k * x, Y: k * y, Z: k * z}, nil
}

// TristimulusBatch integrates a batch of spectral distributions under
// the same observer, illuminant, and range convention. The inputs are
// independent; large batches are fanned across goroutines. The result
// order matches the input order. On any error, the first error (in
// input order) is returned and the results are discarded: there are no
// partial results.
func TristimulusBatch(sds []*Distribution, obs *Observer, ill *Illuminant, rng cie.Range) ([]cie.XYZ, error) {
	out := make([]cie.XYZ, len(sds))
	errs := make([]error, len(sds))
	workers := runtime.GOMAXPROCS(0)
	if len(sds) < 2*workers {
		workers = 1
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(sds); i += workers {
				out[i], errs[i] = Tristimulus(sds[i], obs, ill, rng)
			}
		}(w)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
