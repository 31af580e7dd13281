package pager

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gtank/voxelcore/region"
)

// FilePager is a reference pager: it stores one file per
// block in a caller-supplied directory. Each file is a fixed-size
// blockSide^3*sizeof(V) raw dump of the block's voxels in the host's
// native byte order. There is no format versioning; the file layout is
// not a stable external format and may change between voxelcore versions.
//
// V must be a fixed-size value acceptable to encoding/binary (numeric
// types, arrays, and structs built only from those) — exactly the set of
// voxel payloads the rest of this package assumes.
type FilePager[V any] struct {
	dir string
}

// NewFilePager builds a FilePager rooted at dir. The directory must
// already exist; FilePager does not create it.
func NewFilePager[V any](dir string) *FilePager[V] {
	return &FilePager[V]{dir: dir}
}

func blockFileName(r region.Region) string {
	return fmt.Sprintf("blockdata_%d_%d_%d_%d_%d_%d.tmp",
		r.LowerX, r.LowerY, r.LowerZ, r.UpperX, r.UpperY, r.UpperZ)
}

func (p *FilePager[V]) path(r region.Region) string {
	return filepath.Join(p.dir, blockFileName(r))
}

// PageIn fills buffer from the block's file, if one exists. A missing
// file is not an error: it represents a block that has never been paged
// out, and buffer is left at V's zero value.
func (p *FilePager[V]) PageIn(r region.Region, buffer []V) error {
	f, err := os.Open(p.path(r))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	return binary.Read(f, binary.NativeEndian, buffer)
}

// PageOut persists buffer to the block's file, creating or truncating it
// as needed.
func (p *FilePager[V]) PageOut(r region.Region, buffer []V) error {
	f, err := os.OpenFile(p.path(r), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	return binary.Write(f, binary.NativeEndian, buffer)
}
