// Package pager defines the external collaborator a PagedVolume calls to
// materialize and persist fixed-size cubic blocks of voxels, along with
// two concrete pagers: a no-op (memory-only) pager and a reference
// file-backed pager.
package pager

import "github.com/gtank/voxelcore/region"

// Pager is the contract a PagedVolume uses to page blocks in and out.
// buffer always has exactly blockSide^3 elements, addressed in x-major,
// then y, then z order (x varies fastest) matching the block's region.
//
// PageIn must fill buffer with the voxels of region (or leave it at V's
// zero value to represent "empty"). PageOut persists buffer; a no-op
// implementation is valid for memory-only caches.
type Pager[V any] interface {
	PageIn(r region.Region, buffer []V) error
	PageOut(r region.Region, buffer []V) error
}

// NoOpPager is the zero-configuration pager for purely in-memory volumes.
// PageIn leaves the buffer at V's zero value (freshly allocated buffers
// already are); PageOut discards its contents. This is how "empty"
// volumes work.
type NoOpPager[V any] struct{}

// PageIn leaves buffer untouched (already zero-valued).
func (NoOpPager[V]) PageIn(r region.Region, buffer []V) error { return nil }

// PageOut discards buffer.
func (NoOpPager[V]) PageOut(r region.Region, buffer []V) error { return nil }
