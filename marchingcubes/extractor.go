package marchingcubes

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gtank/voxelcore/mesh"
	"github.com/gtank/voxelcore/region"
	"github.com/gtank/voxelcore/voxel"
	"github.com/gtank/voxelcore/voxerr"
	"github.com/gtank/voxelcore/volume"
)

// Options configures an extraction beyond the (volume, region, controller,
// mesh) arguments every entry point shares.
type Options[V any] struct {
	// Wrap overrides the sampler wrap mode the extractor installs while
	// sweeping the region. Nil means the default: Border with V's zero
	// value, matching spec's "Border(lowestDensity)" boundary policy for
	// the common case where a voxel type's zero value reads as empty.
	Wrap *volume.WrapMode[V]
	// ReuseBuffers is accepted but has no effect: every call allocates a
	// fresh edge-vertex map (see DESIGN.md), and no buffer is kept between
	// calls.
	ReuseBuffers bool
}

// ExtractMarchingCubes runs the extractor over r and returns a freshly
// allocated mesh with 32-bit indices.
func ExtractMarchingCubes[V any, D voxel.Density, M any](vol volume.Volume[V], r region.Region, controller voxel.Controller[V, D, M]) (*mesh.Mesh[mesh.MarchingCubesVertex[M], uint32], error) {
	m := mesh.New[mesh.MarchingCubesVertex[M], uint32]()
	if err := ExtractMarchingCubesInto[V, D, M, uint32](vol, r, controller, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ExtractMarchingCubesInto runs the extractor over r, filling m (which is
// cleared first) with the default options.
func ExtractMarchingCubesInto[V any, D voxel.Density, M any, I mesh.Index](vol volume.Volume[V], r region.Region, controller voxel.Controller[V, D, M], m *mesh.Mesh[mesh.MarchingCubesVertex[M], I]) error {
	return ExtractMarchingCubesWithOptions[V, D, M, I](vol, r, controller, m, Options[V]{})
}

// ExtractMarchingCubesWithOptions is the full entry point. It sweeps r
// slice by slice (z outer, then y, then x), classifying each cell's eight
// corners against controller's threshold, emitting one vertex per crossed
// lattice edge (deduplicated via a canonical edge key so no edge ever
// produces more than one vertex), and filling m's triangles from the
// classic edge/triangle tables.
func ExtractMarchingCubesWithOptions[V any, D voxel.Density, M any, I mesh.Index](vol volume.Volume[V], r region.Region, controller voxel.Controller[V, D, M], m *mesh.Mesh[mesh.MarchingCubesVertex[M], I], opts Options[V]) error {
	if !r.IsValid() {
		return voxerr.NewExtractorPrecondition("region is not valid")
	}
	if controller == nil {
		return voxerr.NewExtractorPrecondition("controller must not be nil")
	}
	if m == nil {
		return voxerr.NewExtractorPrecondition("mesh must not be nil")
	}
	m.Clear()

	s := vol.Sampler()
	if opts.Wrap != nil {
		s.SetWrapMode(*opts.Wrap)
	} else {
		var zero V
		s.SetWrapMode(volume.BorderWrap[V](zero))
	}

	threshold := controller.Threshold()
	edgeVerts := make(map[edgeKey]I)

	for z := r.LowerZ; z <= r.UpperZ; z++ {
		for y := r.LowerY; y <= r.UpperY; y++ {
			for x := r.LowerX; x <= r.UpperX; x++ {
				if err := extractCube[V, D, M, I](s, controller, threshold, m, edgeVerts, x, y, z); err != nil {
					m.Clear()
					return err
				}
			}
		}
	}
	return nil
}

// extractCube classifies the cube whose v000 corner is (x, y, z), emitting
// any newly-crossed edge vertices into m and recording them in edgeVerts,
// then appends the cube's triangles.
func extractCube[V any, D voxel.Density, M any, I mesh.Index](
	s *volume.Sampler[V],
	controller voxel.Controller[V, D, M],
	threshold D,
	m *mesh.Mesh[mesh.MarchingCubesVertex[M], I],
	edgeVerts map[edgeKey]I,
	x, y, z int32,
) error {
	s.SetPosition(x, y, z)

	var values [8]V
	var densities [8]D
	for i, off := range cornerOffset {
		v, err := s.PeekVoxel(off[0], off[1], off[2])
		if err != nil {
			return err
		}
		values[i] = v
		densities[i] = controller.Density(v)
	}

	var cubeIndex uint8
	for i := 0; i < 8; i++ {
		if densities[i] < threshold {
			cubeIndex |= 1 << uint(i)
		}
	}

	bits := edgeTable[cubeIndex]
	if bits == 0 {
		return nil
	}

	var vertIdx [12]I
	for e := 0; e < 12; e++ {
		if bits&(1<<uint(e)) == 0 {
			continue
		}
		key := edgeKeyFor(x, y, z, e)
		if idx, ok := edgeVerts[key]; ok {
			vertIdx[e] = idx
			continue
		}

		c0, c1 := edgeCorners[e][0], edgeCorners[e][1]
		o0, o1 := cornerOffset[c0], cornerOffset[c1]
		dA, dB := densities[c0], densities[c1]

		var u float64
		if dA == dB {
			u = 0.5
		} else {
			u = float64(threshold-dA) / float64(dB-dA)
		}

		posA := mgl32.Vec3{float32(x + o0[0]), float32(y + o0[1]), float32(z + o0[2])}
		posB := mgl32.Vec3{float32(x + o1[0]), float32(y + o1[1]), float32(z + o1[2])}
		pos := posA.Add(posB.Sub(posA).Mul(float32(u)))

		gxA, gyA, gzA, err := gradientAt(s, controller, x+o0[0], y+o0[1], z+o0[2])
		if err != nil {
			return err
		}
		gxB, gyB, gzB, err := gradientAt(s, controller, x+o1[0], y+o1[1], z+o1[2])
		if err != nil {
			return err
		}
		normal := lerpNormal(gxA, gyA, gzA, gxB, gyB, gzB, u)

		mat := controller.BlendMaterials(controller.Material(values[c0]), controller.Material(values[c1]), u)

		idx, err := m.AddVertex(mesh.MarchingCubesVertex[M]{Position: pos, Normal: normal, Material: mat})
		if err != nil {
			m.Clear()
			return err
		}
		edgeVerts[key] = idx
		vertIdx[e] = idx

		s.SetPosition(x, y, z)
	}

	tris := triTable[cubeIndex]
	for i := 0; tris[i] != -1; i += 3 {
		m.AddTriangle(vertIdx[tris[i]], vertIdx[tris[i+1]], vertIdx[tris[i+2]])
	}
	return nil
}

// gradientAt estimates the density gradient at (x, y, z) by central
// differences, used to build a per-vertex normal from the two corners an
// edge crossing falls between.
func gradientAt[V any, D voxel.Density, M any](s *volume.Sampler[V], controller voxel.Controller[V, D, M], x, y, z int32) (gx, gy, gz float64, err error) {
	s.SetPosition(x, y, z)
	xp, err := s.PeekVoxel(1, 0, 0)
	if err != nil {
		return 0, 0, 0, err
	}
	xn, err := s.PeekVoxel(-1, 0, 0)
	if err != nil {
		return 0, 0, 0, err
	}
	yp, err := s.PeekVoxel(0, 1, 0)
	if err != nil {
		return 0, 0, 0, err
	}
	yn, err := s.PeekVoxel(0, -1, 0)
	if err != nil {
		return 0, 0, 0, err
	}
	zp, err := s.PeekVoxel(0, 0, 1)
	if err != nil {
		return 0, 0, 0, err
	}
	zn, err := s.PeekVoxel(0, 0, -1)
	if err != nil {
		return 0, 0, 0, err
	}
	gx = float64(controller.Density(xp)) - float64(controller.Density(xn))
	gy = float64(controller.Density(yp)) - float64(controller.Density(yn))
	gz = float64(controller.Density(zp)) - float64(controller.Density(zn))
	return gx, gy, gz, nil
}

// lerpNormal interpolates the gradient at two corners by u, then returns
// the outward-facing unit normal (surface is solid where density is high,
// so the outward direction is the negated gradient).
func lerpNormal(gxA, gyA, gzA, gxB, gyB, gzB, u float64) mgl32.Vec3 {
	gx := gxA + (gxB-gxA)*u
	gy := gyA + (gyB-gyA)*u
	gz := gzA + (gzB-gzA)*u
	n := mgl32.Vec3{float32(-gx), float32(-gy), float32(-gz)}
	if n.Len() == 0 {
		return n
	}
	return n.Normalize()
}
