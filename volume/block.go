package volume

import "github.com/gtank/voxelcore/region"

// blockKey identifies a block by its integer block coordinate (a voxel
// coordinate arithmetic-shifted by log2(blockSide)). It is comparable, so
// it can be used directly as a map key.
type blockKey struct {
	X, Y, Z int32
}

// less implements the deterministic eviction tie-break: lowest
// block-coordinate lexicographic order (X, then Y, then Z).
func (k blockKey) less(other blockKey) bool {
	if k.X != other.X {
		return k.X < other.X
	}
	if k.Y != other.Y {
		return k.Y < other.Y
	}
	return k.Z < other.Z
}

// cachedBlock is one entry in a PagedVolume's cache: the block's voxel
// buffer and the access counter value it was last touched at.
type cachedBlock[V any] struct {
	data       []V
	lastAccess uint64
}

// blockRegion returns the voxel-space region a block coordinate covers.
func blockRegion(key blockKey, blockSide int32) region.Region {
	lx := key.X * blockSide
	ly := key.Y * blockSide
	lz := key.Z * blockSide
	return region.New(lx, ly, lz, lx+blockSide-1, ly+blockSide-1, lz+blockSide-1)
}
