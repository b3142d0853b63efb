// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"testing"

	"github.com/pkg/errors"

	"polybsp/cvar"
	_ "polybsp/cvars"
)

func TestBoolInt(t *testing.T) {
	var flags flag.FlagSet
	flags.Init("test", flag.ContinueOnError)
	a := boolInt{false, 4}
	b := boolInt{false, 5}
	c := boolInt{true, 6}
	d := boolInt{false, 7}
	e := boolInt{false, 8}
	f := boolInt{true, 9}
	flags.Var(&a, "a", "usage")
	flags.Var(&b, "b", "usage")
	flags.Var(&c, "c", "usage")
	flags.Var(&d, "d", "usage")
	flags.Var(&e, "e", "usage")
	flags.Var(&f, "f", "usage")
	if err := flags.Parse([]string{"-a", "-b=3", "-e=true", "-f=false"}); err != nil {
		t.Error(err)
	}
	if a.set != true {
		t.Errorf("a.set = %v", a.set)
	}
	if b.set != true {
		t.Errorf("b.set = %v", b.set)
	}
	if c.set != true {
		t.Errorf("c.set = %v", c.set)
	}
	if d.set != false {
		t.Errorf("d.set = %v", d.set)
	}
	if e.set != true {
		t.Errorf("e.set = %v", e.set)
	}
	if f.set != false {
		t.Errorf("f.set = %v", f.set)
	}
	if a.num != 4 {
		t.Errorf("a.num = %v", a.num)
	}
	if b.num != 3 {
		t.Errorf("b.num = %v", b.num)
	}
	if c.num != 6 {
		t.Errorf("c.num = %v", c.num)
	}
	if d.num != 7 {
		t.Errorf("d.num = %v", d.num)
	}
}

func TestApply(t *testing.T) {
	defer func() { sets = nil }()
	var flags flag.FlagSet
	flags.Init("test", flag.ContinueOnError)
	define(&flags)
	if err := flags.Parse([]string{"-iterative", "-extent=16", "-seed", "9", "-set", "scene_traces=5", "-dump=2"}); err != nil {
		t.Fatal(err)
	}
	if err := Apply(&flags); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		want string
	}{
		{"bsp_iterative", "1"},
		{"scene_extent", "16"},
		{"scene_seed", "9"},
		{"scene_traces", "5"},
		{"scene_polygons", "64"},
	}
	for _, tc := range tests {
		cv, ok := cvar.Get(tc.name)
		if !ok {
			t.Fatalf("%s not registered", tc.name)
		}
		if cv.String() != tc.want {
			t.Errorf("%s = %q, want %q", tc.name, cv.String(), tc.want)
		}
	}
	if !Dump() || DumpDepth() != 2 {
		t.Errorf("dump = %v %v", Dump(), DumpDepth())
	}
}

func TestApplyUnknownCvar(t *testing.T) {
	defer func() { sets = nil }()
	var flags flag.FlagSet
	flags.Init("test", flag.ContinueOnError)
	define(&flags)
	if err := flags.Parse([]string{"-set", "no_such_cvar=1"}); err != nil {
		t.Fatal(err)
	}
	if err := Apply(&flags); !errors.Is(err, cvar.ErrUnknown) {
		t.Errorf("Apply = %v, want ErrUnknown", err)
	}
}
