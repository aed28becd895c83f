// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality
// of numbers with tolerance (in other words, it provides assertions
// for approximate equality).
package tolassert

import (
	"github.com/stretchr/testify/assert"
)

// Equal asserts that the two numbers are equal within a tolerance of
// 0.001 (or the optionally specified tolerance).
func Equal[T float32 | float64](t assert.TestingT, expected, actual T, tols ...T) bool {
	tol := T(0.001)
	if len(tols) > 0 {
		tol = tols[0]
	}
	return assert.InDelta(t, expected, actual, float64(tol))
}

// EqualTol asserts that the two numbers are equal within the given tolerance.
func EqualTol[T float32 | float64](t assert.TestingT, expected, actual T, tol T) bool {
	return assert.InDelta(t, expected, actual, float64(tol))
}

// EqualTolSlice asserts that the elements of the two slices are equal
// pairwise within the given tolerance.
func EqualTolSlice[T float32 | float64](t assert.TestingT, expected, actual []T, tol T) bool {
	if !assert.Equal(t, len(expected), len(actual)) {
		return false
	}
	res := true
	for i, e := range expected {
		if !assert.InDelta(t, e, actual[i], float64(tol)) {
			res = false
		}
	}
	return res
}
