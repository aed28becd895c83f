// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "github.com/chewxy/math32"

// This file provides the float32 sRGB fast path used when feeding
// colour values to 8-bit and 16-bit image surfaces. The float64
// general machinery lives in cogentcore.org/colorimetry/rgb; these
// functions hard-code the sRGB matrices and transfer function for the
// common case.

// SRGBToLinearComp converts an sRGB rgb component to linear space,
// removing the gamma-correction.
func SRGBToLinearComp(srgb float32) float32 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math32.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear rgb component to the sRGB
// encoding, adding the gamma-correction.
func SRGBFromLinearComp(lin float32) float32 {
	if lin <= 0.0031308 {
		return 12.92 * lin
	}
	return 1.055*math32.Pow(lin, 1.0/2.4) - 0.055
}

// SRGBToLinear converts set of sRGB components to linear values,
// removing gamma correction.
func SRGBToLinear(r, g, b float32) (rl, gl, bl float32) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGB100ToLinear converts set of sRGB components to linear values,
// removing gamma correction, returning 100-base linear values.
func SRGB100ToLinear(r, g, b float32) (rl, gl, bl float32) {
	rl = 100 * SRGBToLinearComp(r)
	gl = 100 * SRGBToLinearComp(g)
	bl = 100 * SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts set of linear RGB components to sRGB,
// adding gamma correction.
func SRGBFromLinear(rl, gl, bl float32) (r, g, b float32) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}

// SRGBFromLinear100 converts set of 100-base linear RGB components to
// sRGB, adding gamma correction.
func SRGBFromLinear100(rl, gl, bl float32) (r, g, b float32) {
	r = SRGBFromLinearComp(rl / 100)
	g = SRGBFromLinearComp(gl / 100)
	b = SRGBFromLinearComp(bl / 100)
	return
}

// SRGBFloatToUint8 converts the given non-alpha-premultiplied sRGB
// float values to alpha-premultiplied uint8 values.
func SRGBFloatToUint8(r, g, b, a float32) (ru, gu, bu, au uint8) {
	ru = uint8(r*a*255 + 0.5)
	gu = uint8(g*a*255 + 0.5)
	bu = uint8(b*a*255 + 0.5)
	au = uint8(a*255 + 0.5)
	return
}

// SRGBFloatToUint32 converts the given non-alpha-premultiplied sRGB
// float values to alpha-premultiplied uint32 values.
func SRGBFloatToUint32(r, g, b, a float32) (ru, gu, bu, au uint32) {
	ru = uint32(r*a*65535 + 0.5)
	gu = uint32(g*a*65535 + 0.5)
	bu = uint32(b*a*65535 + 0.5)
	au = uint32(a*65535 + 0.5)
	return
}

// SRGBUint8ToFloat converts the given alpha-premultiplied uint8 values
// to non-alpha-premultiplied sRGB float values.
func SRGBUint8ToFloat(r, g, b, a uint8) (rf, gf, bf, af float32) {
	af = float32(a) / 255
	rf = (float32(r) / 255) / af
	gf = (float32(g) / 255) / af
	bf = (float32(b) / 255) / af
	return
}

// SRGBUint32ToFloat converts the given alpha-premultiplied uint32
// values to non-alpha-premultiplied sRGB float values.
func SRGBUint32ToFloat(r, g, b, a uint32) (rf, gf, bf, af float32) {
	af = float32(a) / 65535
	rf = (float32(r) / 65535) / af
	gf = (float32(g) / 65535) / af
	bf = (float32(b) / 65535) / af
	return
}
