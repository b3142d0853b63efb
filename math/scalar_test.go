// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"testing"

	"github.com/pkg/errors"
)

func TestScalarCompare(t *testing.T) {
	tests := []struct {
		a, b               Scalar
		eq, lt, le, gt, ge bool
	}{
		{1, 1, true, false, true, false, true},
		{1, 1.00005, true, false, true, false, true},
		{1.00005, 1, true, false, true, false, true},
		{1, 1.001, false, true, true, false, false},
		{1.001, 1, false, false, false, true, true},
		{-2, 3, false, true, true, false, false},
	}
	for _, tc := range tests {
		if got := tc.a.Eq(tc.b); got != tc.eq {
			t.Errorf("%v.Eq(%v) = %v, want %v", tc.a, tc.b, got, tc.eq)
		}
		if got := tc.a.Ne(tc.b); got == tc.eq {
			t.Errorf("%v.Ne(%v) = %v, want %v", tc.a, tc.b, got, !tc.eq)
		}
		if got := tc.a.Lt(tc.b); got != tc.lt {
			t.Errorf("%v.Lt(%v) = %v, want %v", tc.a, tc.b, got, tc.lt)
		}
		if got := tc.a.Le(tc.b); got != tc.le {
			t.Errorf("%v.Le(%v) = %v, want %v", tc.a, tc.b, got, tc.le)
		}
		if got := tc.a.Gt(tc.b); got != tc.gt {
			t.Errorf("%v.Gt(%v) = %v, want %v", tc.a, tc.b, got, tc.gt)
		}
		if got := tc.a.Ge(tc.b); got != tc.ge {
			t.Errorf("%v.Ge(%v) = %v, want %v", tc.a, tc.b, got, tc.ge)
		}
	}
}

func TestScalarSign(t *testing.T) {
	tests := []struct {
		s    Scalar
		want int
	}{
		{0, 0},
		{0.00009, 0},
		{-0.00009, 0},
		{0.5, 1},
		{-0.5, -1},
	}
	for _, tc := range tests {
		if got := tc.s.Sign(); got != tc.want {
			t.Errorf("%v.Sign() = %v, want %v", tc.s, got, tc.want)
		}
	}
}

func TestScalarDiv(t *testing.T) {
	got, err := Scalar(6).Div(3)
	if err != nil {
		t.Fatalf("6/3 failed: %v", err)
	}
	if !got.Eq(2) {
		t.Errorf("6/3 = %v, want 2", got)
	}
	if _, err := Scalar(1).Div(0.00001); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("1/0.00001 err = %v, want ErrDivideByZero", err)
	}
}

func TestScalarSqrt(t *testing.T) {
	got, err := Scalar(9).Sqrt()
	if err != nil || !got.Eq(3) {
		t.Errorf("sqrt(9) = %v, %v", got, err)
	}
	if _, err := Scalar(-1).Sqrt(); !errors.Is(err, ErrDomain) {
		t.Errorf("sqrt(-1) err = %v, want ErrDomain", err)
	}
}

func TestScalarFunctions(t *testing.T) {
	if got := Scalar(-3).Abs(); got != 3 {
		t.Errorf("abs(-3) = %v", got)
	}
	if got := Scalar(2).Pow(3); !got.Eq(8) {
		t.Errorf("2^3 = %v", got)
	}
	if got := Min(2, 5); got != 2 {
		t.Errorf("Min(2,5) = %v", got)
	}
	if got := Max(2, 5); got != 5 {
		t.Errorf("Max(2,5) = %v", got)
	}
	if got := Min(2, 2.00001); got != 2 {
		t.Errorf("Min on tie = %v, want first argument", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp[float32](2, 4, 0.5); got != 3 {
		t.Errorf("Lerp(2,4,0.5) = %v", got)
	}
	if got := Lerp[float32](2, 4, 0); got != 2 {
		t.Errorf("Lerp(2,4,0) = %v", got)
	}
}
