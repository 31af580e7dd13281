// Package voxel defines the capability set (the "controller") that adapts
// an application's voxel payload type to the density/material/threshold
// view the Marching Cubes extractor needs. It also ships two concrete
// controllers covering the common cases: a bare scalar voxel whose value
// is its own density, and an 8-bit packed density/material pair.
package voxel

import "golang.org/x/exp/constraints"

// Density is the scalar type a Controller reduces a voxel to. Any ordered
// numeric type works; the extractor only ever compares a density against
// a threshold or interpolates linearly between two densities.
type Density interface {
	constraints.Integer | constraints.Float
}

// Controller adapts a voxel payload V to the extractor's required view:
// a scalar density, a blendable material, and the threshold that defines
// the iso-surface (density >= threshold is "solid").
type Controller[V any, D Density, M any] interface {
	// Density returns the scalar density of a voxel.
	Density(v V) D
	// Material returns the material payload of a voxel.
	Material(v V) M
	// Threshold returns the density at which the surface lies; density
	// values at or above Threshold are solid.
	Threshold() D
	// BlendMaterials combines the materials of two voxels straddling an
	// edge crossing, weighted by w in [0, 1] (0 favours a, 1 favours b).
	BlendMaterials(a, b M, w float64) M
}
