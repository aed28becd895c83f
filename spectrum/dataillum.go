// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectrum

// Relative spectral power distributions of the CIE daylight
// illuminants, 380-780 nm at the 10 nm measurement grid of CIE 15,
// normalized to 100 at 560 nm. Intermediate wavelengths are obtained
// by linear interpolation as the standard prescribes.

var d65SPD = []float64{
	49.9755, 54.6482, 82.7549, 91.4860, 93.4318,
	86.6823, 104.8650, 117.0080, 117.8120, 114.8610,
	115.9230, 108.8110, 109.3540, 107.8020, 104.7900,
	107.6890, 104.4050, 104.0460, 100.0000, 96.3342,
	95.7880, 88.6856, 90.0062, 89.5991, 87.6987,
	83.2886, 83.6992, 80.0268, 80.1207, 82.2778,
	78.2842, 69.7213, 71.6091, 74.3490, 61.6040,
	69.8856, 75.0870, 63.5927, 46.4182, 66.8054,
	63.3828,
}

var d50SPD = []float64{
	24.4875, 29.8706, 49.3086, 56.5128, 60.0341,
	57.8187, 74.8249, 87.2469, 90.6123, 91.3680,
	95.1099, 91.9632, 95.7237, 96.6120, 97.1285,
	102.0990, 100.7550, 102.3170, 100.0000, 97.7350,
	98.9185, 93.4992, 97.6878, 99.2695, 99.0425,
	95.7220, 98.8565, 95.6672, 98.1898, 103.0030,
	99.1330, 87.3806, 91.6040, 92.8888, 76.8540,
	86.5114, 92.5800, 78.2300, 57.6926, 82.9230,
	78.2742,
}
