package volume

import "github.com/gtank/voxelcore/region"

// wrapKind distinguishes the three ways a Sampler may resolve a position
// outside its volume's enclosing region.
type wrapKind int

const (
	wrapAssumeValid wrapKind = iota
	wrapClamp
	wrapBorder
)

// WrapMode controls how a Sampler resolves positions outside its
// volume's enclosing region.
type WrapMode[V any] struct {
	kind   wrapKind
	border V
}

// AssumeValidWrap is undefined behaviour (in practice: whatever the
// underlying volume does) for out-of-range coordinates. It is the
// fastest mode and the Sampler's default; use it only when the caller has
// already cropped its region to the volume's bounds.
func AssumeValidWrap[V any]() WrapMode[V] {
	return WrapMode[V]{kind: wrapAssumeValid}
}

// ClampWrap clamps out-of-range coordinates to the enclosing region's
// boundary before resolving them.
func ClampWrap[V any]() WrapMode[V] {
	return WrapMode[V]{kind: wrapClamp}
}

// BorderWrap returns border for any position outside the enclosing
// region, instead of resolving it against the volume at all.
func BorderWrap[V any](border V) WrapMode[V] {
	return WrapMode[V]{kind: wrapBorder, border: border}
}

// windowAccessor is implemented by volumes that support the Sampler's
// fast path: a directly indexable buffer plus a cheap generation check.
type windowAccessor[V any] interface {
	window[V]
	currentGeneration() uint64
}

// Sampler is a lightweight mutable cursor over a Volume, offering O(1)
// neighbourhood reads in all 26 directions. A Sampler is single-threaded:
// it caches a pointer into whichever contiguous buffer currently backs
// its position, and that cache is only ever touched by the Sampler that
// owns it.
type Sampler[V any] struct {
	vol  Volume[V]
	x, y, z int32
	wrap WrapMode[V]

	accessor windowAccessor[V]

	winValid      bool
	win           []V
	winRegion     region.Region
	winGeneration uint64
}

func newSampler[V any](vol Volume[V]) *Sampler[V] {
	s := &Sampler[V]{vol: vol, wrap: AssumeValidWrap[V]()}
	if acc, ok := vol.(windowAccessor[V]); ok {
		s.accessor = acc
	}
	return s
}

// SetPosition moves the cursor to an absolute position. Any cached block
// pointer is reused if it still covers the new position, or recomputed
// lazily on the next read.
func (s *Sampler[V]) SetPosition(x, y, z int32) {
	s.x, s.y, s.z = x, y, z
}

// Position returns the cursor's current coordinates.
func (s *Sampler[V]) Position() (x, y, z int32) {
	return s.x, s.y, s.z
}

// SetWrapMode changes how out-of-range coordinates are resolved.
func (s *Sampler[V]) SetWrapMode(mode WrapMode[V]) {
	s.wrap = mode
}

// MovePositiveX advances the cursor by +1 along X.
func (s *Sampler[V]) MovePositiveX() { s.x++ }

// MoveNegativeX retreats the cursor by -1 along X.
func (s *Sampler[V]) MoveNegativeX() { s.x-- }

// MovePositiveY advances the cursor by +1 along Y.
func (s *Sampler[V]) MovePositiveY() { s.y++ }

// MoveNegativeY retreats the cursor by -1 along Y.
func (s *Sampler[V]) MoveNegativeY() { s.y-- }

// MovePositiveZ advances the cursor by +1 along Z.
func (s *Sampler[V]) MovePositiveZ() { s.z++ }

// MoveNegativeZ retreats the cursor by -1 along Z.
func (s *Sampler[V]) MoveNegativeZ() { s.z-- }

// GetVoxel reads the voxel at the current position, subject to wrap mode.
func (s *Sampler[V]) GetVoxel() (V, error) {
	return s.PeekVoxel(0, 0, 0)
}

// PeekVoxel reads the voxel at the current position plus the given
// offset, without moving the cursor, subject to wrap mode. It is the
// primitive the 27 PeekVoxel<a>X<b>Y<c>Z methods are built from.
func (s *Sampler[V]) PeekVoxel(dx, dy, dz int32) (V, error) {
	tx, ty, tz, border, useBorder := s.applyWrap(s.x+dx, s.y+dy, s.z+dz)
	if useBorder {
		return border, nil
	}
	return s.resolve(tx, ty, tz)
}

func (s *Sampler[V]) applyWrap(x, y, z int32) (rx, ry, rz int32, border V, useBorder bool) {
	switch s.wrap.kind {
	case wrapClamp:
		enc := s.vol.EnclosingRegion()
		return clamp32(x, enc.LowerX, enc.UpperX), clamp32(y, enc.LowerY, enc.UpperY), clamp32(z, enc.LowerZ, enc.UpperZ), border, false
	case wrapBorder:
		enc := s.vol.EnclosingRegion()
		if !enc.ContainsPoint(x, y, z, 0) {
			return 0, 0, 0, s.wrap.border, true
		}
		return x, y, z, border, false
	default: // wrapAssumeValid
		return x, y, z, border, false
	}
}

// resolve answers a fully wrap-resolved coordinate, preferring the cached
// fast-path buffer and falling back to the volume's own GetVoxel when the
// position falls outside it (or the cache has gone stale).
func (s *Sampler[V]) resolve(x, y, z int32) (V, error) {
	if s.accessor != nil {
		if s.winValid && s.winRegion.ContainsPoint(x, y, z, 0) && s.accessor.currentGeneration() == s.winGeneration {
			return s.win[localOffset(s.winRegion, x, y, z)], nil
		}
		buf, bufRegion, generation, ok, err := s.accessor.fastWindow(x, y, z)
		if err != nil {
			var zero V
			return zero, err
		}
		if ok {
			s.win, s.winRegion, s.winGeneration, s.winValid = buf, bufRegion, generation, true
			return s.win[localOffset(s.winRegion, x, y, z)], nil
		}
		s.winValid = false
	}
	return s.vol.GetVoxel(x, y, z)
}

func localOffset(r region.Region, x, y, z int32) int64 {
	w := int64(r.WidthInVoxels())
	h := int64(r.HeightInVoxels())
	lx := int64(x - r.LowerX)
	ly := int64(y - r.LowerY)
	lz := int64(z - r.LowerZ)
	return lx + ly*w + lz*w*h
}

func clamp32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
