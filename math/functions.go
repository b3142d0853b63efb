// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	gmath "math"

	"github.com/chewxy/math32"
)

const (
	Pi    = gmath.Pi
	TwoPi = 2 * gmath.Pi
)

func Atan2(y, x float32) float32 {
	return math32.Atan2(y, x)
}

// Lerp computes a weighted average between a and b
func Lerp[K Float](a, b, frac K) K {
	return (1-frac)*a + frac*b
}
