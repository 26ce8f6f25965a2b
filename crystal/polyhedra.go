package crystal

import (
	"math"

	"github.com/lixenwraith/crystal-galaxy/vmath"
)

// Base solids are unit-radius polyhedra. Subdivision splits every edge at
// its midpoint and reprojects onto the unit sphere, quadrupling the facet
// count per level. Vertex ordering is deterministic: base vertices first,
// midpoints in face-iteration order

// octahedron returns the 6-vertex, 8-facet base solid (ultra-low tier)
func octahedron() ([]vmath.Vec3F, []uint32) {
	verts := []vmath.Vec3F{
		{X: 1}, {X: -1},
		{Y: 1}, {Y: -1},
		{Z: 1}, {Z: -1},
	}
	indices := []uint32{
		0, 2, 4, 2, 1, 4, 1, 3, 4, 3, 0, 4,
		2, 0, 5, 1, 2, 5, 3, 1, 5, 0, 3, 5,
	}
	return verts, indices
}

// icosahedron returns the 12-vertex, 20-facet base solid
func icosahedron() ([]vmath.Vec3F, []uint32) {
	phi := (1 + math.Sqrt(5)) / 2
	inv := 1 / math.Sqrt(1+phi*phi)
	a, b := inv, phi*inv

	verts := []vmath.Vec3F{
		{X: -a, Y: b}, {X: a, Y: b}, {X: -a, Y: -b}, {X: a, Y: -b},
		{Y: -a, Z: b}, {Y: a, Z: b}, {Y: -a, Z: -b}, {Y: a, Z: -b},
		{X: b, Z: -a}, {X: b, Z: a}, {X: -b, Z: -a}, {X: -b, Z: a},
	}
	indices := []uint32{
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}
	return verts, indices
}

type edgeKey struct {
	lo, hi uint32
}

// subdivide performs midpoint subdivision with sphere reprojection.
// Midpoints are cached per edge so shared edges produce shared vertices
func subdivide(verts []vmath.Vec3F, indices []uint32, levels int) ([]vmath.Vec3F, []uint32) {
	for level := 0; level < levels; level++ {
		midpoints := make(map[edgeKey]uint32)
		next := make([]uint32, 0, len(indices)*4)

		midpoint := func(a, b uint32) uint32 {
			key := edgeKey{lo: a, hi: b}
			if a > b {
				key = edgeKey{lo: b, hi: a}
			}
			if idx, ok := midpoints[key]; ok {
				return idx
			}
			m := vmath.V3FNormalize(vmath.V3FScale(vmath.V3FAdd(verts[a], verts[b]), 0.5))
			verts = append(verts, m)
			idx := uint32(len(verts) - 1)
			midpoints[key] = idx
			return idx
		}

		for i := 0; i < len(indices); i += 3 {
			v0, v1, v2 := indices[i], indices[i+1], indices[i+2]
			m01 := midpoint(v0, v1)
			m12 := midpoint(v1, v2)
			m20 := midpoint(v2, v0)

			next = append(next,
				v0, m01, m20,
				v1, m12, m01,
				v2, m20, m12,
				m01, m12, m20,
			)
		}
		indices = next
	}
	return verts, indices
}

// baseSolid returns the tier's base polyhedron with its subdivision
// applied. Panics on unknown tiers; the generator's recovery boundary
// converts that into the minimal safe solid
func baseSolid(tier int) ([]vmath.Vec3F, []uint32) {
	switch tier {
	case 0: // ultra-low
		return octahedron()
	case 1: // low
		return icosahedron()
	case 2: // medium
		v, i := icosahedron()
		return subdivide(v, i, 1)
	case 3: // high
		v, i := icosahedron()
		return subdivide(v, i, 2)
	case 4: // ultra-high
		v, i := icosahedron()
		return subdivide(v, i, 3)
	}
	panic("crystal: no base solid for tier")
}
