package volume

import (
	"testing"

	"github.com/gtank/voxelcore/pager"
	"github.com/gtank/voxelcore/region"
)

func fillSum(t *testing.T, v Volume[int32], r region.Region) {
	t.Helper()
	for z := r.LowerZ; z <= r.UpperZ; z++ {
		for y := r.LowerY; y <= r.UpperY; y++ {
			for x := r.LowerX; x <= r.UpperX; x++ {
				if err := v.SetVoxel(x, y, z, x+y+z); err != nil {
					t.Fatalf("SetVoxel(%d,%d,%d) returned error: %v", x, y, z, err)
				}
			}
		}
	}
}

func TestSamplerEquivalenceRawVolume(t *testing.T) {
	r := region.New(0, 0, 0, 9, 9, 9)
	v, err := NewRawVolume[int32](r)
	if err != nil {
		t.Fatalf("NewRawVolume returned error: %v", err)
	}
	fillSum(t, v, r)

	s := v.Sampler()
	offsets := []int32{-1, 0, 1}
	for z := r.LowerZ + 1; z < r.UpperZ; z++ {
		for y := r.LowerY + 1; y < r.UpperY; y++ {
			for x := r.LowerX + 1; x < r.UpperX; x++ {
				s.SetPosition(x, y, z)
				for _, dx := range offsets {
					for _, dy := range offsets {
						for _, dz := range offsets {
							want, err := v.GetVoxel(x+dx, y+dy, z+dz)
							if err != nil {
								t.Fatalf("GetVoxel returned error: %v", err)
							}
							got, err := s.PeekVoxel(dx, dy, dz)
							if err != nil {
								t.Fatalf("PeekVoxel returned error: %v", err)
							}
							if got != want {
								t.Fatalf("PeekVoxel(%d,%d,%d) at (%d,%d,%d) = %d, want %d", dx, dy, dz, x, y, z, got, want)
							}
						}
					}
				}
			}
		}
	}
}

func TestSamplerEquivalencePagedVolume(t *testing.T) {
	r := region.New(-10, -10, -10, 40, 40, 40)
	v, err := NewPagedVolume[int32](16, 4, pager.NoOpPager[int32]{})
	if err != nil {
		t.Fatalf("NewPagedVolume returned error: %v", err)
	}
	fillSum(t, v, r)

	s := v.Sampler()
	offsets := []int32{-1, 0, 1}
	// Sample a sparse grid of interior points: a dense 50^3 sweep with 27
	// peeks apiece is unnecessary to establish the same property.
	for z := int32(-9); z < 40; z += 7 {
		for y := int32(-9); y < 40; y += 7 {
			for x := int32(-9); x < 40; x += 7 {
				s.SetPosition(x, y, z)
				for _, dx := range offsets {
					for _, dy := range offsets {
						for _, dz := range offsets {
							want, err := v.GetVoxel(x+dx, y+dy, z+dz)
							if err != nil {
								t.Fatalf("GetVoxel returned error: %v", err)
							}
							got, err := s.PeekVoxel(dx, dy, dz)
							if err != nil {
								t.Fatalf("PeekVoxel returned error: %v", err)
							}
							if got != want {
								t.Fatalf("PeekVoxel(%d,%d,%d) at (%d,%d,%d) = %d, want %d", dx, dy, dz, x, y, z, got, want)
							}
						}
					}
				}
			}
		}
	}
}

// TestSampler27NeighbourhoodParity folds every peek at every interior
// cell through a running accumulator and checks it matches the same fold
// computed via direct GetVoxel calls, per the cantor-fold parity
// scenario.
func TestSampler27NeighbourhoodParity(t *testing.T) {
	r := region.New(0, 0, 0, 15, 15, 15)
	v, err := NewRawVolume[int32](r)
	if err != nil {
		t.Fatalf("NewRawVolume returned error: %v", err)
	}
	fillSum(t, v, r)

	cantor := func(acc, val int32) int32 {
		return ((acc+val)*(acc+val+1) + 2*val) / 2
	}

	var viaSampler, viaDirect int32
	s := v.Sampler()
	offsets := []int32{-1, 0, 1}
	for z := r.LowerZ + 1; z < r.UpperZ; z++ {
		for y := r.LowerY + 1; y < r.UpperY; y++ {
			for x := r.LowerX + 1; x < r.UpperX; x++ {
				s.SetPosition(x, y, z)
				for _, dx := range offsets {
					for _, dy := range offsets {
						for _, dz := range offsets {
							got, err := s.PeekVoxel(dx, dy, dz)
							if err != nil {
								t.Fatalf("PeekVoxel returned error: %v", err)
							}
							viaSampler = cantor(viaSampler, got)

							direct, err := v.GetVoxel(x+dx, y+dy, z+dz)
							if err != nil {
								t.Fatalf("GetVoxel returned error: %v", err)
							}
							viaDirect = cantor(viaDirect, direct)
						}
					}
				}
			}
		}
	}
	if viaSampler != viaDirect {
		t.Errorf("sampler-folded result %d != direct-folded result %d", viaSampler, viaDirect)
	}
}

func TestSamplerNamedPeeksMatchOffsets(t *testing.T) {
	r := region.New(0, 0, 0, 9, 9, 9)
	v, err := NewRawVolume[int32](r)
	if err != nil {
		t.Fatalf("NewRawVolume returned error: %v", err)
	}
	fillSum(t, v, r)

	s := v.Sampler()
	s.SetPosition(5, 5, 5)

	got, err := s.PeekVoxel1pX1pY1pZ()
	if err != nil {
		t.Fatalf("PeekVoxel1pX1pY1pZ returned error: %v", err)
	}
	want, err := s.PeekVoxel(1, 1, 1)
	if err != nil {
		t.Fatalf("PeekVoxel(1,1,1) returned error: %v", err)
	}
	if got != want {
		t.Errorf("PeekVoxel1pX1pY1pZ() = %d, want %d", got, want)
	}

	centre, err := s.PeekVoxel0pX0pY0pZ()
	if err != nil {
		t.Fatalf("PeekVoxel0pX0pY0pZ returned error: %v", err)
	}
	here, err := s.GetVoxel()
	if err != nil {
		t.Fatalf("GetVoxel returned error: %v", err)
	}
	if centre != here {
		t.Errorf("PeekVoxel0pX0pY0pZ() = %d, want GetVoxel() = %d", centre, here)
	}
}

func TestSamplerWrapModeBorder(t *testing.T) {
	r := region.New(0, 0, 0, 9, 9, 9)
	v, err := NewRawVolume[int32](r)
	if err != nil {
		t.Fatalf("NewRawVolume returned error: %v", err)
	}
	fillSum(t, v, r)

	s := v.Sampler()
	s.SetWrapMode(BorderWrap[int32](-1))
	s.SetPosition(0, 0, 0)

	got, err := s.PeekVoxel(-1, 0, 0)
	if err != nil {
		t.Fatalf("PeekVoxel returned error: %v", err)
	}
	if got != -1 {
		t.Errorf("PeekVoxel outside region under BorderWrap = %d, want -1", got)
	}

	inside, err := s.PeekVoxel(1, 0, 0)
	if err != nil {
		t.Fatalf("PeekVoxel returned error: %v", err)
	}
	if inside != 1 {
		t.Errorf("PeekVoxel inside region under BorderWrap = %d, want 1", inside)
	}
}

func TestSamplerWrapModeClamp(t *testing.T) {
	r := region.New(0, 0, 0, 9, 9, 9)
	v, err := NewRawVolume[int32](r)
	if err != nil {
		t.Fatalf("NewRawVolume returned error: %v", err)
	}
	fillSum(t, v, r)

	s := v.Sampler()
	s.SetWrapMode(ClampWrap[int32]())
	s.SetPosition(0, 0, 0)

	got, err := s.PeekVoxel(-5, -5, -5)
	if err != nil {
		t.Fatalf("PeekVoxel returned error: %v", err)
	}
	if got != 0 {
		t.Errorf("PeekVoxel clamped to lower corner = %d, want 0", got)
	}
}

func TestSamplerFastPathCrossesBlockBoundary(t *testing.T) {
	v, err := NewPagedVolume[int32](8, 100, pager.NoOpPager[int32]{})
	if err != nil {
		t.Fatalf("NewPagedVolume returned error: %v", err)
	}
	r := region.New(-20, -20, -20, 20, 20, 20)
	fillSum(t, v, r)

	s := v.Sampler()
	for x := int32(-10); x <= 10; x++ {
		s.SetPosition(x, 0, 0)
		got, err := s.GetVoxel()
		if err != nil {
			t.Fatalf("GetVoxel returned error: %v", err)
		}
		if got != x {
			t.Errorf("GetVoxel() at x=%d = %d, want %d", x, got, x)
		}
	}
}
