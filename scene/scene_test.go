// SPDX-License-Identifier: GPL-2.0-or-later

package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polybsp/geom"
	"polybsp/math/vec"
	"polybsp/rand"
)

func TestTriangles(t *testing.T) {
	ps := Triangles(rand.New(3), 50, 10)
	require.Len(t, ps, 50)
	for _, p := range ps {
		assert.Len(t, p.Vertices, 3)
		assert.GreaterOrEqual(t, p.Area(), float32(1))
		for _, v := range p.Vertices {
			assert.True(t, v.X >= -10 && v.X < 10 && v.Y >= -10 && v.Y < 10 && v.Z >= -10 && v.Z < 10, "%v", v)
		}
		_, err := p.Plane()
		assert.NoError(t, err)
	}
}

func TestQuadsArePlanarRectangles(t *testing.T) {
	ps := Quads(rand.New(5), 30, 10)
	require.Len(t, ps, 30)
	for _, p := range ps {
		require.Len(t, p.Vertices, 4)
		pl, err := p.Plane()
		require.NoError(t, err)
		assert.Equal(t, geom.Coincident, p.Relation(pl))
		d1 := vec.Distance(p.Vertices[0], p.Vertices[2])
		d2 := vec.Distance(p.Vertices[1], p.Vertices[3])
		assert.InDelta(t, d1, d2, 1e-3)
	}
}

func TestSegments(t *testing.T) {
	ss := Segments(rand.New(9), 40, 10)
	require.Len(t, ss, 40)
	for _, s := range ss {
		assert.GreaterOrEqual(t, s.Length(), float32(10))
	}
}

func TestDeterministic(t *testing.T) {
	a := Triangles(rand.New(11), 10, 4)
	b := Triangles(rand.New(11), 10, 4)
	for i := range a {
		assert.True(t, a[i].Equal(&b[i]))
		assert.NotEqual(t, a[i].ID, b[i].ID)
	}
}
