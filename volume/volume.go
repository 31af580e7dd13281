// Package volume implements the two voxel stores the Marching Cubes
// extractor consumes: RawVolume, a flat in-memory volume over a finite
// region, and PagedVolume, a sparse volume backed by a bounded cache of
// blocks serviced by a Pager. Both share the Volume capability set so the
// extractor (and Sampler) can work against either polymorphically.
package volume

import "github.com/gtank/voxelcore/region"

// Volume is the capability set the extractor and Sampler need: an
// enclosing region, point access, and the ability to mint a Sampler over
// the volume. RawVolume and PagedVolume both implement it.
type Volume[V any] interface {
	EnclosingRegion() region.Region
	GetVoxel(x, y, z int32) (V, error)
	SetVoxel(x, y, z int32, v V) error
	Sampler() *Sampler[V]
}

// window is implemented by volumes that can hand the Sampler a
// contiguous, directly indexable buffer backing some sub-region of the
// volume, plus a generation counter that changes whenever a mutation
// (other than a plain voxel write) could invalidate that buffer. The
// Sampler falls back to GetVoxel whenever window returns ok=false
// or its cached buffer's generation goes stale.
type window[V any] interface {
	fastWindow(x, y, z int32) (buf []V, bufRegion region.Region, generation uint64, ok bool, err error)
}
