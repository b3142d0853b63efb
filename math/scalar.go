// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"strconv"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// Epsilon is the tolerance used by every Scalar comparison.
const Epsilon = 1e-4

var (
	ErrDivideByZero = errors.New("division by zero")
	ErrDomain       = errors.New("value outside of function domain")
)

// Scalar is a float32 that compares with Epsilon slack. Geometric predicates
// must go through its comparison methods and never through == on floats.
type Scalar float32

func (s Scalar) Float32() float32 {
	return float32(s)
}

func (s Scalar) Eq(o Scalar) bool {
	return math32.Abs(float32(s-o)) < Epsilon
}

func (s Scalar) Ne(o Scalar) bool {
	return !s.Eq(o)
}

func (s Scalar) Lt(o Scalar) bool {
	return s < o-Epsilon
}

func (s Scalar) Le(o Scalar) bool {
	return s <= o+Epsilon
}

func (s Scalar) Gt(o Scalar) bool {
	return s > o+Epsilon
}

func (s Scalar) Ge(o Scalar) bool {
	return s >= o-Epsilon
}

// Sign returns 1 if s is above zero by more than Epsilon, -1 if it is below
// by more than Epsilon and 0 otherwise.
func (s Scalar) Sign() int {
	switch {
	case s.Gt(0):
		return 1
	case s.Lt(0):
		return -1
	}
	return 0
}

// Div returns s / o. It fails with ErrDivideByZero if |o| < Epsilon.
func (s Scalar) Div(o Scalar) (Scalar, error) {
	if math32.Abs(float32(o)) < Epsilon {
		return 0, errors.Wrapf(ErrDivideByZero, "%v / %v", s, o)
	}
	return s / o, nil
}

func (s Scalar) Abs() Scalar {
	return Scalar(math32.Abs(float32(s)))
}

// Sqrt fails with ErrDomain for negative values. Values within Epsilon below
// zero are not forgiven, they are negative.
func (s Scalar) Sqrt() (Scalar, error) {
	if s < 0 {
		return 0, errors.Wrapf(ErrDomain, "sqrt(%v)", s)
	}
	return Scalar(math32.Sqrt(float32(s))), nil
}

func (s Scalar) Pow(exp int) Scalar {
	return Scalar(math32.Pow(float32(s), float32(exp)))
}

// Min and Max use the tolerant ordering, on ties the first argument wins.
func Min(a, b Scalar) Scalar {
	if b.Lt(a) {
		return b
	}
	return a
}

func Max(a, b Scalar) Scalar {
	if b.Gt(a) {
		return b
	}
	return a
}

func (s Scalar) String() string {
	return strconv.FormatFloat(float64(s), 'g', -1, 32)
}
