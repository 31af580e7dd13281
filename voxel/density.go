package voxel

// NoMaterial is the zero-size material payload used by DensityController
// when the application voxel type carries no material information at all.
type NoMaterial struct{}

// DensityController treats a bare scalar voxel (uint8, int16, float32, ...)
// as its own density. It carries no material information: Material always
// returns the zero NoMaterial value and BlendMaterials is a no-op.
//
// This is the controller used by the "Sphere, primitive voxels" and
// "Float volume with custom controller" test scenarios.
type DensityController[D Density] struct {
	threshold D
}

// NewDensityController builds a DensityController with the given surface
// threshold.
func NewDensityController[D Density](threshold D) DensityController[D] {
	return DensityController[D]{threshold: threshold}
}

// Density returns the voxel value itself.
func (c DensityController[D]) Density(v D) D { return v }

// Material always returns the zero-size NoMaterial value.
func (c DensityController[D]) Material(v D) NoMaterial { return NoMaterial{} }

// Threshold returns the configured surface threshold.
func (c DensityController[D]) Threshold() D { return c.threshold }

// BlendMaterials is a no-op: there is no material to blend.
func (c DensityController[D]) BlendMaterials(a, b NoMaterial, w float64) NoMaterial {
	return NoMaterial{}
}
