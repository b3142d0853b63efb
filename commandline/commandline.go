// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"polybsp/cvar"
)

var (
	debug     bool
	iterative bool
	json      bool

	dump = boolInt{false, -1}

	extent   float64
	polygons int
	seed     int
	traces   int

	sets stringList
)

type boolInt struct {
	set bool
	num int
}

func (b *boolInt) IsBoolFlag() bool {
	// We can not support both "-flag" and "-flag 10"
	// This allows "-flag", and "-flag=10"
	// and also "-flag=true" and "-flag=false"
	// but not "-flag 10"
	return true
}

func (b *boolInt) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil {
		v, err := strconv.ParseBool(s)
		b.set = v
		return err
	}
	b.set = true
	b.num = int(v)
	return nil
}

func (b *boolInt) String() string {
	return fmt.Sprintf("Set: %v, Num: %v", b.set, b.num)
}

// stringList collects every occurrence of a repeated flag.
type stringList []string

func (l *stringList) Set(s string) error {
	*l = append(*l, s)
	return nil
}

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func define(fs *flag.FlagSet) {
	fs.BoolVar(&debug, "debug", false, "log tree construction")
	fs.BoolVar(&iterative, "iterative", false, "use explicit stacks instead of recursion")
	fs.BoolVar(&json, "json", false, "print the report as json")

	fs.Var(&dump, "dump", "print the tree, optional maximum depth")

	fs.Float64Var(&extent, "extent", 32, "half size of the scene cube")
	fs.IntVar(&polygons, "polygons", 64, "number of polygons to insert")
	fs.IntVar(&seed, "seed", 1, "scene seed")
	fs.IntVar(&traces, "traces", 32, "number of segments to trace")

	fs.Var(&sets, "set", "set a cvar, name=value, may be repeated")
}

func init() {
	define(flag.CommandLine)
}

// flagCvars maps flags to the cvars they override.
var flagCvars = map[string]string{
	"debug":     "bsp_debug",
	"iterative": "bsp_iterative",
	"extent":    "scene_extent",
	"polygons":  "scene_polygons",
	"seed":      "scene_seed",
	"traces":    "scene_traces",
}

// Apply pushes the flags given on fs into their cvars, followed by the -set
// assignments in order. Flags that were not given leave their cvar alone.
func Apply(fs *flag.FlagSet) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		name, ok := flagCvars[f.Name]
		if !ok || err != nil {
			return
		}
		v := f.Value.String()
		if b, perr := strconv.ParseBool(v); perr == nil && isBool(f) {
			v = "0"
			if b {
				v = "1"
			}
		}
		err = errors.Wrapf(cvar.Set(name, v), "flag -%s", f.Name)
	})
	if err != nil {
		return err
	}
	for _, s := range sets {
		if err := cvar.Assign(s); err != nil {
			return errors.Wrap(err, "flag -set")
		}
	}
	return nil
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

func JSON() bool {
	return json
}

func Dump() bool {
	return dump.set
}

// DumpDepth is negative if -dump was given without a depth.
func DumpDepth() int {
	return dump.num
}
