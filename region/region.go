// Package region implements Region, an axis-aligned integer box over the
// voxel lattice. Region is a pure value type: containment, crop, dilate,
// erode and shift all return a new Region rather than mutating the
// receiver's neighbours.
package region

import (
	"fmt"
	"math"

	"github.com/gtank/voxelcore/voxerr"
)

// Region is an inclusive axis-aligned integer box: every coordinate with
// lowerX <= x <= upperX (and likewise for y, z) lies inside it.
type Region struct {
	LowerX, LowerY, LowerZ int32
	UpperX, UpperY, UpperZ int32
}

// New builds a Region from explicit lower and upper corners. The corners
// are not validated; use IsValid to check before relying on the region.
func New(lowerX, lowerY, lowerZ, upperX, upperY, upperZ int32) Region {
	return Region{lowerX, lowerY, lowerZ, upperX, upperY, upperZ}
}

// Inverted returns the accumulator identity region: lower = +inf, upper =
// -inf. Accumulate grows it to cover whatever regions are folded in.
func Inverted() Region {
	return Region{
		LowerX: math.MaxInt32, LowerY: math.MaxInt32, LowerZ: math.MaxInt32,
		UpperX: math.MinInt32, UpperY: math.MinInt32, UpperZ: math.MinInt32,
	}
}

// IsValid reports whether the region's upper corner is componentwise >=
// its lower corner.
func (r Region) IsValid() bool {
	return r.UpperX >= r.LowerX && r.UpperY >= r.LowerY && r.UpperZ >= r.LowerZ
}

// WidthInVoxels returns the number of voxels spanned along X.
func (r Region) WidthInVoxels() int32 { return r.UpperX - r.LowerX + 1 }

// HeightInVoxels returns the number of voxels spanned along Y.
func (r Region) HeightInVoxels() int32 { return r.UpperY - r.LowerY + 1 }

// DepthInVoxels returns the number of voxels spanned along Z.
func (r Region) DepthInVoxels() int32 { return r.UpperZ - r.LowerZ + 1 }

// Volume returns the total voxel count enclosed by the region. Callers
// must check IsValid first; an invalid region's volume is meaningless.
func (r Region) Volume() int64 {
	return int64(r.WidthInVoxels()) * int64(r.HeightInVoxels()) * int64(r.DepthInVoxels())
}

// Centre returns the region's centre point. On each axis whose extent is
// even the halving truncates toward zero: the lower of the two middle
// voxels when lower+upper is positive, the upper one when it is negative.
func (r Region) Centre() (x, y, z int32) {
	return (r.LowerX + r.UpperX) / 2, (r.LowerY + r.UpperY) / 2, (r.LowerZ + r.UpperZ) / 2
}

// ContainsPoint reports whether p lies inside the region once boundary is
// trimmed off each face: lower+boundary <= p <= upper-boundary.
func (r Region) ContainsPoint(x, y, z int32, boundary int32) bool {
	return x >= r.LowerX+boundary && x <= r.UpperX-boundary &&
		y >= r.LowerY+boundary && y <= r.UpperY-boundary &&
		z >= r.LowerZ+boundary && z <= r.UpperZ-boundary
}

// Intersects reports whether r and other share at least one voxel.
func (r Region) Intersects(other Region) bool {
	return r.LowerX <= other.UpperX && r.UpperX >= other.LowerX &&
		r.LowerY <= other.UpperY && r.UpperY >= other.LowerY &&
		r.LowerZ <= other.UpperZ && r.UpperZ >= other.LowerZ
}

// Accumulate grows r to the smallest region enclosing both r and other.
// Folding Accumulate over a sequence of regions starting from Inverted()
// produces their bounding region.
func (r Region) Accumulate(other Region) Region {
	return Region{
		LowerX: min32(r.LowerX, other.LowerX),
		LowerY: min32(r.LowerY, other.LowerY),
		LowerZ: min32(r.LowerZ, other.LowerZ),
		UpperX: max32(r.UpperX, other.UpperX),
		UpperY: max32(r.UpperY, other.UpperY),
		UpperZ: max32(r.UpperZ, other.UpperZ),
	}
}

// Crop returns the intersection of r and other. It fails with
// voxerr.InvalidRegion if the two regions do not overlap.
func (r Region) Crop(other Region) (Region, error) {
	cropped := Region{
		LowerX: max32(r.LowerX, other.LowerX),
		LowerY: max32(r.LowerY, other.LowerY),
		LowerZ: max32(r.LowerZ, other.LowerZ),
		UpperX: min32(r.UpperX, other.UpperX),
		UpperY: min32(r.UpperY, other.UpperY),
		UpperZ: min32(r.UpperZ, other.UpperZ),
	}
	if !cropped.IsValid() {
		return Region{}, voxerr.NewInvalidRegion(r, "crop does not intersect")
	}
	return cropped, nil
}

// Dilate grows the region outward by amount on every face.
func (r Region) Dilate(amount int32) Region {
	return Region{
		LowerX: r.LowerX - amount, LowerY: r.LowerY - amount, LowerZ: r.LowerZ - amount,
		UpperX: r.UpperX + amount, UpperY: r.UpperY + amount, UpperZ: r.UpperZ + amount,
	}
}

// Erode shrinks the region inward by amount on every face. The result is
// invalid once twice amount reaches the smallest extent; callers should
// check IsValid.
func (r Region) Erode(amount int32) Region {
	return r.Dilate(-amount)
}

// Shift translates the region by (dx, dy, dz).
func (r Region) Shift(dx, dy, dz int32) Region {
	return Region{
		LowerX: r.LowerX + dx, LowerY: r.LowerY + dy, LowerZ: r.LowerZ + dz,
		UpperX: r.UpperX + dx, UpperY: r.UpperY + dy, UpperZ: r.UpperZ + dz,
	}
}

// ShiftLowerCorner translates only the lower corner, independently
// changing the region's size.
func (r Region) ShiftLowerCorner(dx, dy, dz int32) Region {
	r.LowerX += dx
	r.LowerY += dy
	r.LowerZ += dz
	return r
}

// ShiftUpperCorner translates only the upper corner, independently
// changing the region's size.
func (r Region) ShiftUpperCorner(dx, dy, dz int32) Region {
	r.UpperX += dx
	r.UpperY += dy
	r.UpperZ += dz
	return r
}

// String renders the region as its two corners, e.g. "(0, 0, 0) -> (63, 63, 63)".
func (r Region) String() string {
	return fmt.Sprintf("(%d, %d, %d) -> (%d, %d, %d)", r.LowerX, r.LowerY, r.LowerZ, r.UpperX, r.UpperY, r.UpperZ)
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
