// Package mesh implements the append-only vertex+index container the
// Marching Cubes extractor fills: a sequence of vertices of type Vertex and
// a sequence of indices of width I, cleared at extractor entry and returned
// to the caller as an owned value.
package mesh

import (
	"golang.org/x/exp/constraints"

	"github.com/gtank/voxelcore/voxerr"
)

// Index is the set of integer widths a Mesh's index buffer may use. u16
// meshes are capacity-limited to 65535 vertices; u32 meshes to 1<<32-1.
type Index interface {
	constraints.Unsigned
}

// Mesh is an append-only vertex+index container parameterized by a vertex
// type V and an index width I (uint16 or uint32). It has no notion of
// drawing or GPU upload — see spec Non-goals — only storage and the
// invariant that every index refers to a vertex actually appended.
type Mesh[V any, I Index] struct {
	vertices []V
	indices  []I
}

// New returns an empty Mesh.
func New[V any, I Index]() *Mesh[V, I] {
	return &Mesh[V, I]{}
}

// maxIndexValue is the largest value representable by I. A mesh holds at
// most that many vertices, so a uint16 mesh holds 65535 vertices (indices
// 0..65534).
func maxIndexValue[I Index]() int64 {
	var zero I
	switch any(zero).(type) {
	case uint16:
		return 1<<16 - 1
	default:
		return 1<<32 - 1
	}
}

// AddVertex appends v and returns its index. For a uint16-indexed mesh,
// AddVertex fails with voxerr.MeshIndexOverflow rather than adding the
// 65536th vertex.
func (m *Mesh[V, I]) AddVertex(v V) (I, error) {
	limit := maxIndexValue[I]()
	if int64(len(m.vertices)) >= limit {
		var zero I
		return zero, voxerr.NewMeshIndexOverflow(int(limit))
	}
	idx := I(len(m.vertices))
	m.vertices = append(m.vertices, v)
	return idx, nil
}

// AddIndex appends a single index, referencing a vertex already added.
func (m *Mesh[V, I]) AddIndex(i I) {
	m.indices = append(m.indices, i)
}

// AddTriangle appends three indices forming one triangle.
func (m *Mesh[V, I]) AddTriangle(i0, i1, i2 I) {
	m.indices = append(m.indices, i0, i1, i2)
}

// Clear empties both the vertex and index buffers, retaining their
// underlying capacity for reuse across repeated extractions.
func (m *Mesh[V, I]) Clear() {
	m.vertices = m.vertices[:0]
	m.indices = m.indices[:0]
}

// VertexCount returns the number of appended vertices.
func (m *Mesh[V, I]) VertexCount() int { return len(m.vertices) }

// IndexCount returns the number of appended indices.
func (m *Mesh[V, I]) IndexCount() int { return len(m.indices) }

// GetVertex returns the vertex at i.
func (m *Mesh[V, I]) GetVertex(i I) V { return m.vertices[i] }

// GetIndex returns the index at position i in the index buffer.
func (m *Mesh[V, I]) GetIndex(i int) I { return m.indices[i] }
