// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rgb_test

import (
	"fmt"

	"cogentcore.org/colorimetry/adapt"
	"cogentcore.org/colorimetry/cie"
	"cogentcore.org/colorimetry/rgb"
)

func ExampleConvert() {
	// a mid saturation sRGB colour, re-encoded for a BT.2020 display
	r, g, b, err := rgb.Convert(0.735, 0.372, 0.116, rgb.SRGB, rgb.BT2020, adapt.Bradford, cie.RangeUnit)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f %.4f %.4f\n", r, g, b)
	// both spaces use D65, so white needs no adaptation
	r, g, b, _ = rgb.Convert(1, 1, 1, rgb.SRGB, rgb.BT2020, adapt.Bradford, cie.RangeUnit)
	fmt.Printf("%.4f %.4f %.4f\n", r, g, b)
	// Output:
	// 0.5874 0.3539 0.1262
	// 1.0000 1.0000 1.0000
}
