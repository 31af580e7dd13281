// Package voxelcore implements a voxel storage and surface-extraction
// core: Region (an axis-aligned integer box), RawVolume and PagedVolume
// (the two voxel stores), Sampler (a cursor for cheap neighbourhood
// reads), Mesh (an indexed vertex buffer), and a Marching Cubes extractor
// that turns a volume's density field into a triangle mesh.
//
// voxelcore has no rendering, scene-graph, or asset pipeline of its own;
// it produces meshes, not pixels, and leaves everything downstream of
// that to the caller.
package voxelcore
