package voxel

// MaterialDensityPair8 packs a density and a material id into a single
// byte: the low 3 bits hold density (0-7), the high 5 bits hold a
// material id (0-31). This is the 8-bit member of the density/material
// split family; wider splits (e.g. 8 density bits + 24 material bits)
// follow the same shape over a wider integer and are not implemented here.
type MaterialDensityPair8 uint8

const (
	densityBits8  = 3
	densityMask8  = uint8(1<<densityBits8) - 1
	materialMask8 = ^densityMask8
)

// NewMaterialDensityPair8 packs a density (0-7) and material id (0-31)
// into a single voxel. Values outside their range are truncated.
func NewMaterialDensityPair8(density, material uint8) MaterialDensityPair8 {
	return MaterialDensityPair8((density & densityMask8) | (material << densityBits8))
}

// MaterialDensityPair8Controller is the Controller for MaterialDensityPair8
// voxels.
type MaterialDensityPair8Controller struct {
	threshold uint8
}

// NewMaterialDensityPair8Controller builds a controller with the given
// surface threshold, expressed in the same 0-7 density units the packed
// voxel uses.
func NewMaterialDensityPair8Controller(threshold uint8) MaterialDensityPair8Controller {
	return MaterialDensityPair8Controller{threshold: threshold & densityMask8}
}

// Density extracts the low 3 bits of the packed voxel.
func (c MaterialDensityPair8Controller) Density(v MaterialDensityPair8) uint8 {
	return uint8(v) & densityMask8
}

// Material extracts the high 5 bits of the packed voxel.
func (c MaterialDensityPair8Controller) Material(v MaterialDensityPair8) uint8 {
	return (uint8(v) & materialMask8) >> densityBits8
}

// Threshold returns the configured surface threshold.
func (c MaterialDensityPair8Controller) Threshold() uint8 { return c.threshold }

// BlendMaterials picks the material of whichever side of an edge crossing
// has the larger density weight: a material below w=0.5, b material at or
// above it. This mirrors nearest-material voting rather than actually
// averaging material ids, which have no meaningful midpoint.
func (c MaterialDensityPair8Controller) BlendMaterials(a, b uint8, w float64) uint8 {
	if w < 0.5 {
		return a
	}
	return b
}
