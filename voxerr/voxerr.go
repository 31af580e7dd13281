// Package voxerr defines the typed error values surfaced by voxelcore's
// volume, sampler, mesh and extractor packages. Every kind is a distinct
// struct implementing error so callers can errors.As into it to recover
// structured fields instead of parsing a message.
package voxerr

import "fmt"

// Coord is an integer voxel coordinate triple, used to annotate
// out-of-bounds failures with the access that triggered them.
type Coord struct {
	X, Y, Z int32
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// RegionLike is implemented by region.Region without importing it here,
// which would create an import cycle (region errors live in this package
// precisely so region itself can return them).
type RegionLike interface {
	String() string
}

// OutOfBounds reports an access outside a finite volume's enclosing region.
// Only RawVolume returns this; PagedVolume's address space is unbounded.
type OutOfBounds struct {
	Coord  Coord
	Region RegionLike
}

func (e *OutOfBounds) Error() string {
	return fmt.Sprintf("voxelcore: coordinate %s is outside region %s", e.Coord, e.Region)
}

// NewOutOfBounds builds an OutOfBounds error for the given coordinate and
// enclosing region.
func NewOutOfBounds(x, y, z int32, region RegionLike) *OutOfBounds {
	return &OutOfBounds{Coord: Coord{x, y, z}, Region: region}
}

// InvalidRegion reports that a region failed IsValid or failed a crop
// intersection.
type InvalidRegion struct {
	Region RegionLike
	Reason string
}

func (e *InvalidRegion) Error() string {
	return fmt.Sprintf("voxelcore: region %s is invalid: %s", e.Region, e.Reason)
}

// NewInvalidRegion builds an InvalidRegion error.
func NewInvalidRegion(region RegionLike, reason string) *InvalidRegion {
	return &InvalidRegion{Region: region, Reason: reason}
}

// InvalidBlockSide reports a block side that is zero or not a power of two.
type InvalidBlockSide struct {
	Requested uint16
}

func (e *InvalidBlockSide) Error() string {
	return fmt.Sprintf("voxelcore: block side %d must be a non-zero power of two", e.Requested)
}

// NewInvalidBlockSide builds an InvalidBlockSide error.
func NewInvalidBlockSide(requested uint16) *InvalidBlockSide {
	return &InvalidBlockSide{Requested: requested}
}

// MeshIndexOverflow reports that a mesh exceeded the vertex capacity of its
// index width (65535 vertices for a 16-bit index mesh).
type MeshIndexOverflow struct {
	Capacity int
}

func (e *MeshIndexOverflow) Error() string {
	return fmt.Sprintf("voxelcore: mesh exceeded its %d-vertex index capacity", e.Capacity)
}

// NewMeshIndexOverflow builds a MeshIndexOverflow error.
func NewMeshIndexOverflow(capacity int) *MeshIndexOverflow {
	return &MeshIndexOverflow{Capacity: capacity}
}

// PagerFailure wraps an error surfaced by a Pager's PageIn or PageOut call.
type PagerFailure struct {
	Operation string // "pageIn" or "pageOut"
	Region    RegionLike
	Cause     error
}

func (e *PagerFailure) Error() string {
	return fmt.Sprintf("voxelcore: pager %s failed for region %s: %v", e.Operation, e.Region, e.Cause)
}

// Unwrap exposes the pager's own error to errors.Is/errors.As.
func (e *PagerFailure) Unwrap() error {
	return e.Cause
}

// NewPagerFailure builds a PagerFailure error.
func NewPagerFailure(operation string, region RegionLike, cause error) *PagerFailure {
	return &PagerFailure{Operation: operation, Region: region, Cause: cause}
}

// ExtractorPrecondition reports a caller-supplied argument to the Marching
// Cubes extractor that failed a precondition check (empty region, nil
// controller, unprepared mesh).
type ExtractorPrecondition struct {
	Detail string
}

func (e *ExtractorPrecondition) Error() string {
	return fmt.Sprintf("voxelcore: extractor precondition failed: %s", e.Detail)
}

// NewExtractorPrecondition builds an ExtractorPrecondition error.
func NewExtractorPrecondition(detail string) *ExtractorPrecondition {
	return &ExtractorPrecondition{Detail: detail}
}
