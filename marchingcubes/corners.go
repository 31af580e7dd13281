package marchingcubes

// cornerOffset[i] is the (dx,dy,dz) offset of cube corner i from the cube's
// v000 corner, using the classic Marching Cubes numbering: 1<<0=v000,
// 1<<1=v100, 1<<2=v110, 1<<3=v010, 1<<4=v001, 1<<5=v101, 1<<6=v111,
// 1<<7=v011 — the bit ordering this package's edgeTable/triTable assume.
var cornerOffset = [8][3]int32{
	{0, 0, 0}, // v0 = v000
	{1, 0, 0}, // v1 = v100
	{1, 1, 0}, // v2 = v110
	{0, 1, 0}, // v3 = v010
	{0, 0, 1}, // v4 = v001
	{1, 0, 1}, // v5 = v101
	{1, 1, 1}, // v6 = v111
	{0, 1, 1}, // v7 = v011
}

// edgeCorners[e] holds the two corner indices (into cornerOffset) an edge
// connects, in the classic numbering edgeTable/triTable assume.
var edgeCorners = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// edgeKey identifies an edge of the lattice by its lower endpoint (in
// global voxel coordinates) and axis, independent of which cube it was
// discovered from. Two cubes sharing an edge compute the same key, so a
// map keyed on it is exactly the dedup mechanism a rolling
// prev/curr slice buffers achieve by position instead of content —
// see DESIGN.md for why this module uses a map here.
type edgeKey struct {
	x, y, z int32
	axis    uint8
}

// edgeKeyFor returns the canonical key for edge e of the cube whose v000
// corner is at (x, y, z).
func edgeKeyFor(x, y, z int32, e int) edgeKey {
	c0, c1 := edgeCorners[e][0], edgeCorners[e][1]
	o0, o1 := cornerOffset[c0], cornerOffset[c1]
	lx, ly, lz := x+o0[0], y+o0[1], z+o0[2]
	var axis uint8
	switch {
	case o0[0] != o1[0]:
		axis = 0
		if o1[0] < o0[0] {
			lx = x + o1[0]
		}
	case o0[1] != o1[1]:
		axis = 1
		if o1[1] < o0[1] {
			ly = y + o1[1]
		}
	default:
		axis = 2
		if o1[2] < o0[2] {
			lz = z + o1[2]
		}
	}
	return edgeKey{lx, ly, lz, axis}
}
