// SPDX-License-Identifier: GPL-2.0-or-later

package cvar

import (
	"testing"

	"github.com/pkg/errors"
)

func TestRegister(t *testing.T) {
	cv, err := Register("test_register", "2.5", NONE)
	if err != nil {
		t.Fatal(err)
	}
	if cv.Value() != 2.5 || cv.String() != "2.5" || cv.Int() != 2 {
		t.Errorf("got %v %q %v", cv.Value(), cv.String(), cv.Int())
	}
	if _, err := Register("test_register", "1", NONE); !errors.Is(err, ErrRegistered) {
		t.Errorf("second Register = %v, want ErrRegistered", err)
	}
	got, ok := Get("test_register")
	if !ok || got != cv {
		t.Errorf("Get returned %v, %v", got, ok)
	}
	byID, err := GetByID(cv.ID())
	if err != nil || byID != cv {
		t.Errorf("GetByID returned %v, %v", byID, err)
	}
	if _, err := GetByID(-1); err == nil {
		t.Errorf("GetByID(-1) did not fail")
	}
}

func TestSet(t *testing.T) {
	cv := MustRegister("test_set", "0", NOTIFY)
	calls := 0
	cv.SetCallback(func(*Cvar) { calls++ })

	tests := []struct {
		in    string
		value float32
		b     bool
	}{
		{"1", 1, true},
		{"0", 0, false},
		{"7.25", 7.25, true},
		{"junk", 0, true},
	}
	for _, tc := range tests {
		if err := Set("test_set", tc.in); err != nil {
			t.Fatal(err)
		}
		if cv.Value() != tc.value || cv.Bool() != tc.b {
			t.Errorf("Set(%q): value %v bool %v, want %v %v", tc.in, cv.Value(), cv.Bool(), tc.value, tc.b)
		}
	}
	if calls != len(tests) {
		t.Errorf("callback ran %d times, want %d", calls, len(tests))
	}
	cv.Reset()
	if cv.String() != "0" {
		t.Errorf("Reset left %q", cv.String())
	}
	if err := Set("test_missing", "1"); !errors.Is(err, ErrUnknown) {
		t.Errorf("Set unknown = %v", err)
	}
}

func TestAssign(t *testing.T) {
	cv := MustRegister("test_assign", "3", NONE)
	if err := Assign("test_assign = 9"); err != nil {
		t.Fatal(err)
	}
	if cv.Int() != 9 {
		t.Errorf("Assign gave %v", cv.Value())
	}
	for _, in := range []string{"test_assign", "=4", ""} {
		if err := Assign(in); err == nil {
			t.Errorf("Assign(%q) did not fail", in)
		}
	}
}

func TestReadOnly(t *testing.T) {
	cv := MustRegister("test_rom", "4", ROM)
	cv.SetByString("5")
	if cv.Value() != 4 {
		t.Errorf("ROM cvar changed to %v", cv.Value())
	}
	if err := Set("test_rom", "5"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Set on ROM = %v", err)
	}
}

func TestSetValueToggle(t *testing.T) {
	cv := MustRegister("test_toggle", "0", NONE)
	cv.Toggle()
	if cv.String() != "1" {
		t.Errorf("Toggle gave %q", cv.String())
	}
	cv.Toggle()
	if cv.String() != "0" {
		t.Errorf("Toggle gave %q", cv.String())
	}
	cv.SetValue(3)
	if cv.String() != "3" {
		t.Errorf("SetValue(3) gave %q", cv.String())
	}
	cv.SetValue(0.5)
	if cv.String() != "0.5" {
		t.Errorf("SetValue(0.5) gave %q", cv.String())
	}
}
