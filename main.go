// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"flag"
	"log/slog"
	"os"
	"sync"

	"polybsp/bsp"
	"polybsp/commandline"
	"polybsp/conlog"
	"polybsp/cvars"
	"polybsp/geom"
	"polybsp/rand"
	"polybsp/report"
	"polybsp/scene"
)

func main() {
	flag.Parse()
	if err := commandline.Apply(flag.CommandLine); err != nil {
		conlog.Printf("%v\n", err)
		os.Exit(2)
	}
	if err := run(); err != nil {
		conlog.Printf("%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if cvars.BSPDebug.Bool() {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		conlog.SetDebugPrintf(conlog.Writer(os.Stderr))
	}

	g := rand.New(uint32(cvars.SceneSeed.Int()))
	n := cvars.ScenePolygons.Int()
	extent := cvars.SceneExtent.Value()
	ps := append(scene.Triangles(g, n/2, extent), scene.Quads(g, n-n/2, extent)...)
	conlog.DPrintf("generated %d polygons\n", len(ps))

	tree := bsp.NewSync(bsp.Options{Iterative: cvars.BSPIterative.Bool()})
	failed := 0
	for _, p := range ps {
		if err := tree.Insert(p); err != nil {
			slog.Warn("polygon rejected", slog.String("polygon", p.ID.String()), slog.Any("error", err))
			failed++
		}
	}

	segs := scene.Segments(g, cvars.SceneTraces.Int(), extent)
	traces := traceAll(tree, segs)

	if commandline.Dump() {
		if err := tree.DumpDepth(os.Stdout, commandline.DumpDepth()); err != nil {
			return err
		}
	}

	r := report.New(tree.Stats(), traces)
	r.Failed = failed
	if commandline.JSON() {
		out, err := r.JSON()
		if err != nil {
			return err
		}
		conlog.Printf("%s\n", out)
		return nil
	}
	conlog.Printf("%s", r.Text())
	return nil
}

// traceAll traces every segment concurrently. The result order follows segs.
func traceAll(tree *bsp.SyncTree, segs []geom.Segment) []report.Trace {
	traces := make([]report.Trace, len(segs))
	var wg sync.WaitGroup
	for i, s := range segs {
		wg.Add(1)
		go func(i int, s geom.Segment) {
			defer wg.Done()
			h, err := tree.Trace(s)
			traces[i] = report.Trace{Segment: s, Hit: h, Err: err}
		}(i, s)
	}
	wg.Wait()
	return traces
}
