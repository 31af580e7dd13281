package volume

// The 27 PeekVoxel<a>X<b>Y<c>Z methods below are the sampler's named
// neighbourhood reads, a,b,c each one of 1n (-1), 0p (0), 1p (+1). They
// are thin wrappers over PeekVoxel; keeping them as named methods lets
// extractor inner loops read like the corner they address instead of a
// bag of offset literals.

// PeekVoxel1nX1nY1nZ returns the voxel at the current position offset by (-1, -1, -1),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel1nX1nY1nZ() (V, error) {
	return s.PeekVoxel(-1, -1, -1)
}

// PeekVoxel1nX1nY0pZ returns the voxel at the current position offset by (-1, -1, +0),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel1nX1nY0pZ() (V, error) {
	return s.PeekVoxel(-1, -1, 0)
}

// PeekVoxel1nX1nY1pZ returns the voxel at the current position offset by (-1, -1, +1),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel1nX1nY1pZ() (V, error) {
	return s.PeekVoxel(-1, -1, 1)
}

// PeekVoxel1nX0pY1nZ returns the voxel at the current position offset by (-1, +0, -1),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel1nX0pY1nZ() (V, error) {
	return s.PeekVoxel(-1, 0, -1)
}

// PeekVoxel1nX0pY0pZ returns the voxel at the current position offset by (-1, +0, +0),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel1nX0pY0pZ() (V, error) {
	return s.PeekVoxel(-1, 0, 0)
}

// PeekVoxel1nX0pY1pZ returns the voxel at the current position offset by (-1, +0, +1),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel1nX0pY1pZ() (V, error) {
	return s.PeekVoxel(-1, 0, 1)
}

// PeekVoxel1nX1pY1nZ returns the voxel at the current position offset by (-1, +1, -1),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel1nX1pY1nZ() (V, error) {
	return s.PeekVoxel(-1, 1, -1)
}

// PeekVoxel1nX1pY0pZ returns the voxel at the current position offset by (-1, +1, +0),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel1nX1pY0pZ() (V, error) {
	return s.PeekVoxel(-1, 1, 0)
}

// PeekVoxel1nX1pY1pZ returns the voxel at the current position offset by (-1, +1, +1),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel1nX1pY1pZ() (V, error) {
	return s.PeekVoxel(-1, 1, 1)
}

// PeekVoxel0pX1nY1nZ returns the voxel at the current position offset by (+0, -1, -1),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel0pX1nY1nZ() (V, error) {
	return s.PeekVoxel(0, -1, -1)
}

// PeekVoxel0pX1nY0pZ returns the voxel at the current position offset by (+0, -1, +0),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel0pX1nY0pZ() (V, error) {
	return s.PeekVoxel(0, -1, 0)
}

// PeekVoxel0pX1nY1pZ returns the voxel at the current position offset by (+0, -1, +1),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel0pX1nY1pZ() (V, error) {
	return s.PeekVoxel(0, -1, 1)
}

// PeekVoxel0pX0pY1nZ returns the voxel at the current position offset by (+0, +0, -1),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel0pX0pY1nZ() (V, error) {
	return s.PeekVoxel(0, 0, -1)
}

// PeekVoxel0pX0pY0pZ returns the voxel at the current position offset by (+0, +0, +0),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel0pX0pY0pZ() (V, error) {
	return s.PeekVoxel(0, 0, 0)
}

// PeekVoxel0pX0pY1pZ returns the voxel at the current position offset by (+0, +0, +1),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel0pX0pY1pZ() (V, error) {
	return s.PeekVoxel(0, 0, 1)
}

// PeekVoxel0pX1pY1nZ returns the voxel at the current position offset by (+0, +1, -1),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel0pX1pY1nZ() (V, error) {
	return s.PeekVoxel(0, 1, -1)
}

// PeekVoxel0pX1pY0pZ returns the voxel at the current position offset by (+0, +1, +0),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel0pX1pY0pZ() (V, error) {
	return s.PeekVoxel(0, 1, 0)
}

// PeekVoxel0pX1pY1pZ returns the voxel at the current position offset by (+0, +1, +1),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel0pX1pY1pZ() (V, error) {
	return s.PeekVoxel(0, 1, 1)
}

// PeekVoxel1pX1nY1nZ returns the voxel at the current position offset by (+1, -1, -1),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel1pX1nY1nZ() (V, error) {
	return s.PeekVoxel(1, -1, -1)
}

// PeekVoxel1pX1nY0pZ returns the voxel at the current position offset by (+1, -1, +0),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel1pX1nY0pZ() (V, error) {
	return s.PeekVoxel(1, -1, 0)
}

// PeekVoxel1pX1nY1pZ returns the voxel at the current position offset by (+1, -1, +1),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel1pX1nY1pZ() (V, error) {
	return s.PeekVoxel(1, -1, 1)
}

// PeekVoxel1pX0pY1nZ returns the voxel at the current position offset by (+1, +0, -1),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel1pX0pY1nZ() (V, error) {
	return s.PeekVoxel(1, 0, -1)
}

// PeekVoxel1pX0pY0pZ returns the voxel at the current position offset by (+1, +0, +0),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel1pX0pY0pZ() (V, error) {
	return s.PeekVoxel(1, 0, 0)
}

// PeekVoxel1pX0pY1pZ returns the voxel at the current position offset by (+1, +0, +1),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel1pX0pY1pZ() (V, error) {
	return s.PeekVoxel(1, 0, 1)
}

// PeekVoxel1pX1pY1nZ returns the voxel at the current position offset by (+1, +1, -1),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel1pX1pY1nZ() (V, error) {
	return s.PeekVoxel(1, 1, -1)
}

// PeekVoxel1pX1pY0pZ returns the voxel at the current position offset by (+1, +1, +0),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel1pX1pY0pZ() (V, error) {
	return s.PeekVoxel(1, 1, 0)
}

// PeekVoxel1pX1pY1pZ returns the voxel at the current position offset by (+1, +1, +1),
// without moving the cursor.
func (s *Sampler[V]) PeekVoxel1pX1pY1pZ() (V, error) {
	return s.PeekVoxel(1, 1, 1)
}

