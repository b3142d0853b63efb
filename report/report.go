// SPDX-License-Identifier: GPL-2.0-or-later

// Package report summarizes a tree build and its traces.
package report

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"polybsp/bsp"
	"polybsp/geom"
)

// Trace is the outcome of tracing one segment.
type Trace struct {
	Segment geom.Segment
	// Hit is nil for a miss or a failed trace.
	Hit *bsp.Hit
	Err error
}

type Report struct {
	Stats  bsp.Stats
	Traces []Trace
	// Failed counts polygons the tree refused.
	Failed int
}

func New(stats bsp.Stats, traces []Trace) *Report {
	return &Report{Stats: stats, Traces: traces}
}

// Hits returns the number of traces that hit a polygon.
func (r *Report) Hits() int {
	n := 0
	for _, t := range r.Traces {
		if t.Hit != nil {
			n++
		}
	}
	return n
}

// Errors returns the number of traces that failed.
func (r *Report) Errors() int {
	n := 0
	for _, t := range r.Traces {
		if t.Err != nil {
			n++
		}
	}
	return n
}

func (r *Report) Text() string {
	var b strings.Builder
	s := r.Stats
	fmt.Fprintf(&b, "inserted %d polygons, %d failed, %d splits\n", s.Inserted, r.Failed, s.Splits)
	fmt.Fprintf(&b, "nodes %d leaves %d depth %d polygons %d\n", s.Nodes, s.Leaves, s.Depth, s.Polygons)
	fmt.Fprintf(&b, "traces %d hits %d errors %d\n", len(r.Traces), r.Hits(), r.Errors())
	for i, t := range r.Traces {
		switch {
		case t.Err != nil:
			fmt.Fprintf(&b, "%3d %v: %v\n", i, t.Segment, t.Err)
		case t.Hit != nil:
			fmt.Fprintf(&b, "%3d %v: node %d at %v\n", i, t.Segment, t.Hit.Node, t.Hit.Point)
		default:
			fmt.Fprintf(&b, "%3d %v: miss\n", i, t.Segment)
		}
	}
	return b.String()
}

// Struct converts r into a protobuf Struct.
func (r *Report) Struct() (*structpb.Struct, error) {
	s := r.Stats
	traces := make([]interface{}, 0, len(r.Traces))
	for _, t := range r.Traces {
		e := map[string]interface{}{
			"start": vec3(t.Segment.Start.Array()),
			"end":   vec3(t.Segment.End.Array()),
		}
		switch {
		case t.Err != nil:
			e["error"] = t.Err.Error()
		case t.Hit != nil:
			e["polygon"] = t.Hit.Polygon.ID.String()
			e["node"] = int(t.Hit.Node)
			e["point"] = vec3(t.Hit.Point.Array())
		}
		traces = append(traces, e)
	}
	st, err := structpb.NewStruct(map[string]interface{}{
		"tree": map[string]interface{}{
			"nodes":    s.Nodes,
			"leaves":   s.Leaves,
			"polygons": s.Polygons,
			"inserted": s.Inserted,
			"failed":   r.Failed,
			"splits":   s.Splits,
			"depth":    s.Depth,
		},
		"hits":   r.Hits(),
		"traces": traces,
	})
	if err != nil {
		return nil, errors.Wrap(err, "report")
	}
	return st, nil
}

func vec3(a [3]float32) []interface{} {
	return []interface{}{a[0], a[1], a[2]}
}

// JSON renders r as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	st, err := r.Struct()
	if err != nil {
		return nil, err
	}
	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(st)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode report")
	}
	return out, nil
}

// Binary renders r in protobuf wire format.
func (r *Report) Binary() ([]byte, error) {
	st, err := r.Struct()
	if err != nil {
		return nil, err
	}
	out, err := proto.Marshal(st)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode report")
	}
	return out, nil
}
