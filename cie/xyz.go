// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// Float32 sRGB <-> XYZ conversions with the hard-coded IEC 61966-2-1
// D65 matrices, for the image fast path. The equivalent float64
// machinery is derived from primaries in cogentcore.org/colorimetry/rgb.

// SRGBLinToXYZ converts sRGB linear into XYZ CIE standard color space.
func SRGBLinToXYZ(rl, gl, bl float32) (x, y, z float32) {
	x = 0.41233895*rl + 0.35762064*gl + 0.18051042*bl
	y = 0.2126*rl + 0.7152*gl + 0.0722*bl
	z = 0.01932141*rl + 0.11916382*gl + 0.95034478*bl
	return
}

// XYZToSRGBLin converts XYZ CIE standard color space to sRGB linear.
func XYZToSRGBLin(x, y, z float32) (rl, gl, bl float32) {
	rl = 3.2406*x + -1.5372*y + -0.4986*z
	gl = -0.9689*x + 1.8758*y + 0.0415*z
	bl = 0.0557*x + -0.204*y + 1.057*z
	return
}

// SRGBToXYZ converts sRGB gamma-encoded values into XYZ CIE standard
// color space.
func SRGBToXYZ(r, g, b float32) (x, y, z float32) {
	rl, gl, bl := SRGBToLinear(r, g, b)
	return SRGBLinToXYZ(rl, gl, bl)
}

// XYZToSRGB converts XYZ CIE standard color space into sRGB
// gamma-encoded values.
func XYZToSRGB(x, y, z float32) (r, g, b float32) {
	rl, gl, bl := XYZToSRGBLin(x, y, z)
	return SRGBFromLinear(rl, gl, bl)
}

// SRGBToXYZ100 converts sRGB gamma-encoded values into XYZ CIE
// standard color space, 100-base units.
func SRGBToXYZ100(r, g, b float32) (x, y, z float32) {
	x, y, z = SRGBToXYZ(r, g, b)
	x *= 100
	y *= 100
	z *= 100
	return
}

// XYZ100ToSRGB converts 100-base units XYZ CIE standard color space
// into sRGB gamma-encoded values.
func XYZ100ToSRGB(x, y, z float32) (r, g, b float32) {
	return XYZToSRGB(x/100, y/100, z/100)
}
