// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"testing"

	"polybsp/cvar"
)

func TestDefaults(t *testing.T) {
	tests := []struct {
		name string
		cv   *cvar.Cvar
		want float32
	}{
		{"bsp_debug", BSPDebug, 0},
		{"bsp_iterative", BSPIterative, 0},
		{"scene_extent", SceneExtent, 32},
		{"scene_polygons", ScenePolygons, 64},
		{"scene_seed", SceneSeed, 1},
		{"scene_traces", SceneTraces, 32},
	}
	for _, tc := range tests {
		got, ok := cvar.Get(tc.name)
		if !ok || got != tc.cv {
			t.Errorf("cvar %s not registered", tc.name)
			continue
		}
		if got.Value() != tc.want {
			t.Errorf("%s = %v, want %v", tc.name, got.Value(), tc.want)
		}
	}
}
