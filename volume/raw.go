package volume

import (
	"github.com/gtank/voxelcore/region"
	"github.com/gtank/voxelcore/voxerr"
)

// RawVolume is a flat in-memory volume over a finite region. Unlike
// PagedVolume its logical address space is exactly its enclosing region:
// accesses outside it fail with voxerr.OutOfBounds. It is used by tests
// and small synthetic inputs, and shares the Volume/Sampler contract with
// PagedVolume.
type RawVolume[V any] struct {
	enclosing region.Region
	width     int32
	height    int32
	data      []V
}

// NewRawVolume allocates a RawVolume covering r, zero-initialized.
func NewRawVolume[V any](r region.Region) (*RawVolume[V], error) {
	if !r.IsValid() {
		return nil, voxerr.NewInvalidRegion(r, "region is not valid")
	}
	width := r.WidthInVoxels()
	height := r.HeightInVoxels()
	return &RawVolume[V]{
		enclosing: r,
		width:     width,
		height:    height,
		data:      make([]V, r.Volume()),
	}, nil
}

// EnclosingRegion returns the region this volume covers.
func (v *RawVolume[V]) EnclosingRegion() region.Region {
	return v.enclosing
}

func (v *RawVolume[V]) index(x, y, z int32) (int64, bool) {
	if !v.enclosing.ContainsPoint(x, y, z, 0) {
		return 0, false
	}
	lx := int64(x - v.enclosing.LowerX)
	ly := int64(y - v.enclosing.LowerY)
	lz := int64(z - v.enclosing.LowerZ)
	return lx + ly*int64(v.width) + lz*int64(v.width)*int64(v.height), true
}

// GetVoxel returns the voxel at (x, y, z), or voxerr.OutOfBounds if it
// lies outside the enclosing region.
func (v *RawVolume[V]) GetVoxel(x, y, z int32) (V, error) {
	idx, ok := v.index(x, y, z)
	if !ok {
		var zero V
		return zero, voxerr.NewOutOfBounds(x, y, z, v.enclosing)
	}
	return v.data[idx], nil
}

// SetVoxel writes value at (x, y, z), or fails with voxerr.OutOfBounds if
// it lies outside the enclosing region.
func (v *RawVolume[V]) SetVoxel(x, y, z int32, value V) error {
	idx, ok := v.index(x, y, z)
	if !ok {
		return voxerr.NewOutOfBounds(x, y, z, v.enclosing)
	}
	v.data[idx] = value
	return nil
}

// Sampler returns a new cursor over this volume, initially positioned at
// the origin (0, 0, 0) with wrap mode AssumeValid.
func (v *RawVolume[V]) Sampler() *Sampler[V] {
	return newSampler[V](v)
}

// fastWindow hands the Sampler the whole dense backing array: RawVolume
// never reallocates it, so the generation counter is always zero and the
// window is always valid.
func (v *RawVolume[V]) fastWindow(x, y, z int32) ([]V, region.Region, uint64, bool, error) {
	if !v.enclosing.ContainsPoint(x, y, z, 0) {
		return nil, region.Region{}, 0, false, nil
	}
	return v.data, v.enclosing, 0, true, nil
}

// currentGeneration is always zero: a RawVolume's backing array is never
// reallocated after construction, so a Sampler's cached window is always
// fresh.
func (v *RawVolume[V]) currentGeneration() uint64 { return 0 }
