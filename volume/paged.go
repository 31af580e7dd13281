package volume

import (
	"log"
	"math"
	"math/bits"

	"github.com/gtank/voxelcore/pager"
	"github.com/gtank/voxelcore/region"
	"github.com/gtank/voxelcore/voxerr"
)

// PagedVolumeStats is a read-only snapshot of a PagedVolume's cache
// accounting, useful for diagnostics and tests; nothing in PagedVolume's
// behaviour depends on it.
type PagedVolumeStats struct {
	BlocksLoaded             uint64
	BlocksEvicted            uint64
	PageInCount              uint64
	PageOutCount             uint64
	MemoryUsageLimitInBlocks uint32
}

// PagedVolume is a large sparse volume backed by a bounded cache of
// uncompressed blocks. Its logical address space is the full signed
// 32-bit voxel cube: accesses are never rejected as out of bounds. Blocks
// are materialized and persisted through a Pager as the cache fills.
type PagedVolume[V any] struct {
	blockSide  int32
	blockShift uint
	blockMask  int32

	pgr   pager.Pager[V]
	cache map[blockKey]*cachedBlock[V]

	accessCounter uint64
	memoryLimit   uint32
	generation    uint64

	logger *log.Logger
	stats  PagedVolumeStats
}

// Option configures a PagedVolume at construction time.
type Option[V any] func(*PagedVolume[V])

// WithLogger sets the logger a PagedVolume uses to report pager failures
// before surfacing them to the caller. The default is log.Default().
func WithLogger[V any](logger *log.Logger) Option[V] {
	return func(v *PagedVolume[V]) { v.logger = logger }
}

// NewPagedVolume builds a PagedVolume with the given block side (must be
// a non-zero power of two), memory limit in blocks, and pager.
func NewPagedVolume[V any](blockSide uint16, memoryLimitInBlocks uint32, pgr pager.Pager[V], opts ...Option[V]) (*PagedVolume[V], error) {
	if blockSide == 0 || bits.OnesCount16(blockSide) != 1 {
		return nil, voxerr.NewInvalidBlockSide(blockSide)
	}
	v := &PagedVolume[V]{
		blockSide:   int32(blockSide),
		blockShift:  uint(bits.TrailingZeros16(blockSide)),
		blockMask:   int32(blockSide) - 1,
		pgr:         pgr,
		cache:       make(map[blockKey]*cachedBlock[V]),
		memoryLimit: memoryLimitInBlocks,
		logger:      log.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.stats.MemoryUsageLimitInBlocks = memoryLimitInBlocks
	return v, nil
}

// EnclosingRegion returns the full signed 32-bit voxel cube: PagedVolume
// has no finite bound of its own.
func (v *PagedVolume[V]) EnclosingRegion() region.Region {
	return region.New(math.MinInt32, math.MinInt32, math.MinInt32, math.MaxInt32, math.MaxInt32, math.MaxInt32)
}

// BlockSide returns the configured block side length.
func (v *PagedVolume[V]) BlockSide() uint16 { return uint16(v.blockSide) }

// MemoryUsageLimitInBlocks returns the current cache limit.
func (v *PagedVolume[V]) MemoryUsageLimitInBlocks() uint32 { return v.memoryLimit }

// SetMemoryUsageLimit changes the cache limit. It does not eagerly evict;
// the new limit is only enforced on the next block materialization.
func (v *PagedVolume[V]) SetMemoryUsageLimit(n uint32) {
	v.memoryLimit = n
	v.stats.MemoryUsageLimitInBlocks = n
}

// Stats returns a snapshot of the volume's cache accounting.
func (v *PagedVolume[V]) Stats() PagedVolumeStats { return v.stats }

func (v *PagedVolume[V]) blockKeyFor(x, y, z int32) blockKey {
	return blockKey{x >> v.blockShift, y >> v.blockShift, z >> v.blockShift}
}

func (v *PagedVolume[V]) localIndex(x, y, z int32) int64 {
	lx := int64(x & v.blockMask)
	ly := int64(y & v.blockMask)
	lz := int64(z & v.blockMask)
	side := int64(v.blockSide)
	return lx + ly*side + lz*side*side
}

func (v *PagedVolume[V]) nextTimestamp() uint64 {
	v.accessCounter++
	return v.accessCounter
}

// selectVictim scans the whole cache for the entry with the smallest
// lastAccess timestamp, breaking ties by lowest block-coordinate
// lexicographic order, so eviction is deterministic regardless of map
// iteration order.
func (v *PagedVolume[V]) selectVictim() (blockKey, *cachedBlock[V]) {
	var victimKey blockKey
	var victim *cachedBlock[V]
	first := true
	for k, e := range v.cache {
		if first || e.lastAccess < victim.lastAccess || (e.lastAccess == victim.lastAccess && k.less(victimKey)) {
			victimKey, victim, first = k, e, false
		}
	}
	return victimKey, victim
}

// getOrLoadBlock returns the cached entry for key, materializing it
// through the pager (and evicting a victim if the cache is full) if it
// isn't already present. A failed pageIn never inserts a half-filled
// block; a failed pageOut leaves the intended victim in the cache so it
// can be retried later.
func (v *PagedVolume[V]) getOrLoadBlock(key blockKey) (*cachedBlock[V], error) {
	if entry, ok := v.cache[key]; ok {
		return entry, nil
	}

	r := blockRegion(key, v.blockSide)
	buf := make([]V, int64(v.blockSide)*int64(v.blockSide)*int64(v.blockSide))
	if err := v.pgr.PageIn(r, buf); err != nil {
		failure := voxerr.NewPagerFailure("pageIn", r, err)
		if v.logger != nil {
			v.logger.Printf("%v", failure)
		}
		return nil, failure
	}
	v.stats.PageInCount++

	if uint32(len(v.cache)) >= v.memoryLimit {
		victimKey, victim := v.selectVictim()
		victimRegion := blockRegion(victimKey, v.blockSide)
		if err := v.pgr.PageOut(victimRegion, victim.data); err != nil {
			failure := voxerr.NewPagerFailure("pageOut", victimRegion, err)
			if v.logger != nil {
				v.logger.Printf("%v", failure)
			}
			return nil, failure
		}
		v.stats.PageOutCount++
		delete(v.cache, victimKey)
		v.stats.BlocksEvicted++
		v.generation++
	}

	entry := &cachedBlock[V]{data: buf}
	v.cache[key] = entry
	v.stats.BlocksLoaded++
	v.generation++
	return entry, nil
}

// GetVoxel returns the voxel at (x, y, z), materializing its containing
// block if necessary. PagedVolume never rejects a coordinate as out of
// bounds; a non-nil error here is always a voxerr.PagerFailure.
func (v *PagedVolume[V]) GetVoxel(x, y, z int32) (V, error) {
	entry, err := v.getOrLoadBlock(v.blockKeyFor(x, y, z))
	if err != nil {
		var zero V
		return zero, err
	}
	entry.lastAccess = v.nextTimestamp()
	return entry.data[v.localIndex(x, y, z)], nil
}

// SetVoxel writes value at (x, y, z), materializing its containing block
// if necessary.
func (v *PagedVolume[V]) SetVoxel(x, y, z int32, value V) error {
	entry, err := v.getOrLoadBlock(v.blockKeyFor(x, y, z))
	if err != nil {
		return err
	}
	entry.lastAccess = v.nextTimestamp()
	entry.data[v.localIndex(x, y, z)] = value
	return nil
}

// Sampler returns a new cursor over this volume, initially positioned at
// the origin with wrap mode AssumeValid.
func (v *PagedVolume[V]) Sampler() *Sampler[V] {
	return newSampler[V](v)
}

// fastWindow materializes (or reuses) the block containing (x, y, z) and
// hands its buffer straight to the Sampler.
func (v *PagedVolume[V]) fastWindow(x, y, z int32) ([]V, region.Region, uint64, bool, error) {
	key := v.blockKeyFor(x, y, z)
	entry, err := v.getOrLoadBlock(key)
	if err != nil {
		return nil, region.Region{}, 0, false, err
	}
	entry.lastAccess = v.nextTimestamp()
	return entry.data, blockRegion(key, v.blockSide), v.generation, true, nil
}

// currentGeneration returns the cache's current generation counter,
// bumped on every insertion or eviction. A Sampler compares this against
// the generation it cached alongside a block buffer to detect staleness
// cheaply, without repeating the map lookup.
func (v *PagedVolume[V]) currentGeneration() uint64 { return v.generation }

// FlushAll pages out and drops every cached block. The volume may re-page
// them on next access.
func (v *PagedVolume[V]) FlushAll() error {
	return v.flushMatching(func(blockKey) bool { return true })
}

// Flush pages out and drops every cached block whose region intersects r.
func (v *PagedVolume[V]) Flush(r region.Region) error {
	return v.flushMatching(func(k blockKey) bool {
		return blockRegion(k, v.blockSide).Intersects(r)
	})
}

func (v *PagedVolume[V]) flushMatching(match func(blockKey) bool) error {
	var firstErr error
	for k, e := range v.cache {
		if !match(k) {
			continue
		}
		r := blockRegion(k, v.blockSide)
		if err := v.pgr.PageOut(r, e.data); err != nil {
			if firstErr == nil {
				firstErr = voxerr.NewPagerFailure("pageOut", r, err)
			}
			continue
		}
		v.stats.PageOutCount++
		delete(v.cache, k)
		v.stats.BlocksEvicted++
		v.generation++
	}
	return firstErr
}
