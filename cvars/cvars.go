// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"polybsp/cvar"
)

var (
	BSPDebug      *cvar.Cvar
	BSPIterative  *cvar.Cvar
	SceneExtent   *cvar.Cvar
	ScenePolygons *cvar.Cvar
	SceneSeed     *cvar.Cvar
	SceneTraces   *cvar.Cvar
)

func init() {
	BSPDebug = cvar.MustRegister("bsp_debug", "0", cvar.NONE)
	BSPIterative = cvar.MustRegister("bsp_iterative", "0", cvar.NOTIFY) // explicit stacks instead of recursion
	SceneExtent = cvar.MustRegister("scene_extent", "32", cvar.NONE)
	ScenePolygons = cvar.MustRegister("scene_polygons", "64", cvar.NONE)
	SceneSeed = cvar.MustRegister("scene_seed", "1", cvar.NONE)
	SceneTraces = cvar.MustRegister("scene_traces", "32", cvar.NONE)
}
