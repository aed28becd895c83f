// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transfer implements the non-linear encode / decode pairs
// (OETF / EOTF style transfer functions) attached to RGB colourspaces.
// Encode maps linear light to the stored representation; Decode is its
// exact inverse on the function's valid domain.
//
// All functions operate on the unit (0-1) convention: range rescaling
// is the caller's concern (see cie.Range).
package transfer

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain is returned for inputs outside a transfer function's
// declared domain when the function's policy is [ErrorNegative].
var ErrDomain = errors.New("transfer: value outside the function domain")

// Policy decides how values below a function's domain are treated.
// It is chosen explicitly at construction; there is no implicit
// default at call sites.
type Policy int32

const (
	// ClampNegative clamps out-of-domain values to the domain edge.
	ClampNegative Policy = iota

	// ErrorNegative returns [ErrDomain] for out-of-domain values.
	ErrorNegative
)

// Family is the closed set of supported transfer function families.
type Family int32

const (
	// Linear is the identity: no encoding.
	Linear Family = iota

	// Gamma is a pure power law with an arbitrary exponent.
	Gamma

	// SRGB is the IEC 61966-2-1 piecewise curve with a linear toe.
	SRGB

	// BT709 is the Rec. ITU-R BT.709 OETF (linear toe, 0.45 power).
	BT709

	// BT2020 is the Rec. ITU-R BT.2020 OETF with the 12-bit constants.
	BT2020

	// PQ is the SMPTE ST 2084 perceptual quantizer, with 1.0 linear
	// representing the 10000 cd/m² peak.
	PQ

	// HLG is the Rec. ITU-R BT.2100 hybrid log-gamma OETF.
	HLG

	// DCDM is the digital cinema distribution master XYZ encoding:
	// a 2.6 power normalized so linear 52.37 encodes to 1.0 (48 cd/m²
	// reference white encodes to about 0.2182).
	DCDM

	// ACEScc is the ACES logarithmic working space encoding; it is
	// defined for negative linear values and has no domain clamp.
	ACEScc

	familyN
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case Linear:
		return "Linear"
	case Gamma:
		return "Gamma"
	case SRGB:
		return "sRGB"
	case BT709:
		return "BT.709"
	case BT2020:
		return "BT.2020"
	case PQ:
		return "ST 2084"
	case HLG:
		return "HLG"
	case DCDM:
		return "DCDM"
	case ACEScc:
		return "ACEScc"
	}
	return fmt.Sprintf("Family(%d)", int32(f))
}

// Function is an encode / decode transfer function pair. The zero
// value is the linear identity with the clamp policy. Function values
// are immutable and safe for concurrent use.
type Function struct {
	// Family selects the curve family.
	Family Family

	// Gamma is the decoding exponent for the [Gamma] family
	// (e.g. 2.2, 2.6, or Adobe RGB's 563/256); ignored otherwise.
	Gamma float64

	// Policy is the out-of-domain input policy.
	Policy Policy
}

// GammaFn returns a pure power-law function with the given decoding
// exponent and the clamp policy.
func GammaFn(gamma float64) Function {
	return Function{Family: Gamma, Gamma: gamma}
}

// WithPolicy returns a copy of the function with the given policy.
func (f Function) WithPolicy(p Policy) Function {
	f.Policy = p
	return f
}

// String returns the function name.
func (f Function) String() string {
	if f.Family == Gamma {
		return fmt.Sprintf("Gamma %.6g", f.Gamma)
	}
	return f.Family.String()
}

// domainless reports whether the family accepts all real inputs.
func (f Family) domainless() bool {
	return f == Linear || f == ACEScc
}

// Encode converts a linear-light value to its encoded representation.
// For families defined on [0, 1] or [0, ∞), negative inputs follow the
// function's policy: clamped to 0, or rejected with [ErrDomain].
func (f Function) Encode(v float64) (float64, error) {
	if !f.Family.domainless() && v < 0 {
		if f.Policy == ErrorNegative {
			return 0, fmt.Errorf("%w: encoding %g with %s", ErrDomain, v, f)
		}
		v = 0
	}
	return f.encode(v), nil
}

// Decode converts an encoded value back to linear light. Negative
// encoded inputs follow the function's policy like [Function.Encode].
func (f Function) Decode(v float64) (float64, error) {
	if !f.Family.domainless() && v < 0 {
		if f.Policy == ErrorNegative {
			return 0, fmt.Errorf("%w: decoding %g with %s", ErrDomain, v, f)
		}
		v = 0
	}
	return f.decode(v), nil
}

// EncodeAll encodes src element-wise into dst, which must have the
// same length. It is the broadcast form of [Function.Encode].
func (f Function) EncodeAll(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("transfer: dst length %d != src length %d", len(dst), len(src))
	}
	for i, v := range src {
		ev, err := f.Encode(v)
		if err != nil {
			return err
		}
		dst[i] = ev
	}
	return nil
}

// DecodeAll decodes src element-wise into dst, which must have the
// same length. It is the broadcast form of [Function.Decode].
func (f Function) DecodeAll(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("transfer: dst length %d != src length %d", len(dst), len(src))
	}
	for i, v := range src {
		dv, err := f.Decode(v)
		if err != nil {
			return err
		}
		dst[i] = dv
	}
	return nil
}

func (f Function) encode(v float64) float64 {
	switch f.Family {
	case Gamma:
		return math.Pow(v, 1/f.Gamma)
	case SRGB:
		if v <= 0.0031308 {
			return 12.92 * v
		}
		return 1.055*math.Pow(v, 1/2.4) - 0.055
	case BT709:
		if v < 0.018 {
			return 4.5 * v
		}
		return 1.099*math.Pow(v, 0.45) - 0.099
	case BT2020:
		if v < bt2020Beta {
			return 4.5 * v
		}
		return bt2020Alpha*math.Pow(v, 0.45) - (bt2020Alpha - 1)
	case PQ:
		vm := math.Pow(v, pqM1)
		return math.Pow((pqC1+pqC2*vm)/(1+pqC3*vm), pqM2)
	case HLG:
		if v <= 1.0/12 {
			return math.Sqrt(3 * v)
		}
		return hlgA*math.Log(12*v-hlgB) + hlgC
	case DCDM:
		return math.Pow(v/52.37, 1/2.6)
	case ACEScc:
		switch {
		case v <= 0:
			return (acesccLog2Min + 9.72) / 17.52
		case v < acesccToe:
			return (math.Log2(acesccMin+v*0.5) + 9.72) / 17.52
		default:
			return (math.Log2(v) + 9.72) / 17.52
		}
	}
	return v
}

func (f Function) decode(v float64) float64 {
	switch f.Family {
	case Gamma:
		return math.Pow(v, f.Gamma)
	case SRGB:
		if v <= 12.92*0.0031308 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	case BT709:
		if v < 4.5*0.018 {
			return v / 4.5
		}
		return math.Pow((v+0.099)/1.099, 1/0.45)
	case BT2020:
		if v < 4.5*bt2020Beta {
			return v / 4.5
		}
		return math.Pow((v+bt2020Alpha-1)/bt2020Alpha, 1/0.45)
	case PQ:
		vm := math.Pow(v, 1/pqM2)
		num := vm - pqC1
		if num < 0 {
			num = 0
		}
		return math.Pow(num/(pqC2-pqC3*vm), 1/pqM1)
	case HLG:
		if v <= 0.5 {
			return v * v / 3
		}
		return (math.Exp((v-hlgC)/hlgA) + hlgB) / 12
	case DCDM:
		return 52.37 * math.Pow(v, 2.6)
	case ACEScc:
		// the knee is the encoding of the toe breakpoint 2^-15
		knee := (math.Log2(acesccToe) + 9.72) / 17.52
		lin := math.Exp2(v*17.52 - 9.72)
		if v <= knee {
			return (lin - acesccMin) * 2
		}
		return lin
	}
	return v
}

// Rec. 2020 12-bit constants.
const (
	bt2020Alpha = 1.0993
	bt2020Beta  = 0.0181
)

// SMPTE ST 2084 constants.
const (
	pqM1 = 2610.0 / 16384
	pqM2 = 2523.0 / 4096 * 128
	pqC1 = 3424.0 / 4096
	pqC2 = 2413.0 / 4096 * 32
	pqC3 = 2392.0 / 4096 * 32
)

// Rec. 2100 HLG constants.
const (
	hlgA = 0.17883277
	hlgB = 1 - 4*hlgA
)

var hlgC = 0.5 - hlgA*math.Log(4*hlgA)

// ACES constants.
const (
	acesccMin = 1.0 / (1 << 16) // 2^-16
	acesccToe = 1.0 / (1 << 15) // 2^-15
)

var acesccLog2Min = math.Log2(acesccMin)
