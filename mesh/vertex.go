package mesh

import "github.com/go-gl/mathgl/mgl32"

// MarchingCubesVertex is the vertex type the extractor emits: a position
// (interpolated along a crossed cube edge), a normal (estimated from the
// density gradient by central differences), and a blended material.
//
// Position and Normal are stored as mgl32.Vec3 rather than the source's
// compact 3x5-bit packed form (see spec §4.4): this module documents the
// float/clarity trade-off explicitly rather than reimplementing the packed
// encoding, which has no bearing on the geometry it describes.
type MarchingCubesVertex[M any] struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Material M
}
