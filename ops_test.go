package seedfill

import (
	"errors"
	"testing"

	"github.com/gogpu/seedfill/pix"
)

var closedBox = []string{
	"........",
	".#####..",
	".#...#..",
	".#.#.#..",
	".#...#..",
	".#####..",
	"........",
}

// Corners missing: the inside reaches the outside only diagonally.
var cornerlessBox = []string{
	".......",
	"..###..",
	".#...#.",
	".#...#.",
	"..###..",
	".......",
}

func TestHolesByFilling(t *testing.T) {
	tests := []struct {
		name  string
		src   []string
		conn  Connectivity
		holes int
	}{
		{"closed box 4", closedBox, Conn4, 8},
		{"closed box 8", closedBox, Conn8, 8},
		{"cornerless box 4", cornerlessBox, Conn4, 6},
		{"cornerless box 8", cornerlessBox, Conn8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := rows(t, tt.src...)
			orig := src.Clone()

			holes, err := HolesByFilling(src, tt.conn)
			if err != nil {
				t.Fatalf("HolesByFilling() = %v", err)
			}
			if got := holes.CountPixels(); got != tt.holes {
				t.Errorf("holes = %d, want %d", got, tt.holes)
			}
			if !src.Equal(orig) {
				t.Error("input was modified")
			}

			// Holes never overlap the foreground.
			overlap := holes.Clone()
			if err := overlap.And(src); err != nil {
				t.Fatal(err)
			}
			if overlap.CountPixels() != 0 {
				t.Error("holes overlap the foreground")
			}
		})
	}
}

func TestHolesByFillingExact(t *testing.T) {
	holes, err := HolesByFilling(rows(t, closedBox...), Conn4)
	if err != nil {
		t.Fatal(err)
	}
	want := rows(t,
		"........",
		"........",
		"..###...",
		"..#.#...",
		"..###...",
		"........",
		"........",
	)
	if !holes.Equal(want) {
		t.Error("holes differ from the box interior")
	}
}

func TestFillClosedBorders(t *testing.T) {
	src := rows(t, closedBox...)
	filled, err := FillClosedBorders(src, Conn4)
	if err != nil {
		t.Fatal(err)
	}
	want := rows(t,
		"........",
		".#####..",
		".#####..",
		".#####..",
		".#####..",
		".#####..",
		"........",
	)
	if !filled.Equal(want) {
		t.Error("filled box mismatch")
	}

	// Diagonal leaks stop the fill under 8-connected background.
	open, err := FillClosedBorders(rows(t, cornerlessBox...), Conn8)
	if err != nil {
		t.Fatal(err)
	}
	if !open.Equal(rows(t, cornerlessBox...)) {
		t.Error("cornerless box under Conn8 should be unchanged")
	}
}

func TestBorderConnComps(t *testing.T) {
	src := rows(t,
		"##......",
		"#.......",
		"...##...",
		"...##...",
		".......#",
	)
	border := rows(t,
		"##......",
		"#.......",
		"........",
		"........",
		".......#",
	)
	inner := rows(t,
		"........",
		"........",
		"...##...",
		"...##...",
		"........",
	)

	for _, conn := range []Connectivity{Conn4, Conn8} {
		t.Run(conn.String(), func(t *testing.T) {
			got, err := ExtractBorderConnComps(src, conn)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(border) {
				t.Error("ExtractBorderConnComps() mismatch")
			}

			got, err = RemoveBorderConnComps(src, conn)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(inner) {
				t.Error("RemoveBorderConnComps() mismatch")
			}
		})
	}
}

func TestBorderConnCompsDiagonal(t *testing.T) {
	// The inner pixel touches the border component only diagonally.
	src := rows(t,
		"#....",
		".#...",
		".....",
	)

	got4, err := RemoveBorderConnComps(src, Conn4)
	if err != nil {
		t.Fatal(err)
	}
	if got4.CountPixels() != 1 || got4.Get(1, 1) != 1 {
		t.Error("Conn4 should keep the diagonal pixel")
	}

	got8, err := RemoveBorderConnComps(src, Conn8)
	if err != nil {
		t.Fatal(err)
	}
	if got8.CountPixels() != 0 {
		t.Error("Conn8 should remove the diagonal pixel with its component")
	}
}

func TestFillBgFromBorder(t *testing.T) {
	src := rows(t, closedBox...)
	got, err := FillBgFromBorder(src, Conn4)
	if err != nil {
		t.Fatal(err)
	}
	holes, err := HolesByFilling(src, Conn4)
	if err != nil {
		t.Fatal(err)
	}
	holes.Invert()
	if !got.Equal(holes) {
		t.Error("FillBgFromBorder() should be everything but the holes")
	}
}

func TestBinaryOpsValidation(t *testing.T) {
	gray := mustNew(t, 4, 4, pix.Depth8)
	bin := mustNew(t, 4, 4, pix.Depth1)

	ops := map[string]func(*pix.Buffer, Connectivity, ...Option) (*pix.Buffer, error){
		"HolesByFilling":         HolesByFilling,
		"FillClosedBorders":      FillClosedBorders,
		"ExtractBorderConnComps": ExtractBorderConnComps,
		"RemoveBorderConnComps":  RemoveBorderConnComps,
		"FillBgFromBorder":       FillBgFromBorder,
		"DistanceTransform":      DistanceTransform,
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			if _, err := op(nil, Conn4); !errors.Is(err, ErrNilBuffer) {
				t.Errorf("nil: error = %v, want ErrNilBuffer", err)
			}
			if _, err := op(gray, Conn4); !errors.Is(err, ErrUnsupportedDepth) {
				t.Errorf("8bpp: error = %v, want ErrUnsupportedDepth", err)
			}
			if _, err := op(bin, Connectivity(2)); !errors.Is(err, ErrInvalidConnectivity) {
				t.Errorf("conn 2: error = %v, want ErrInvalidConnectivity", err)
			}
		})
	}
}

// =============================================================================
// Basin fill
// =============================================================================

func TestSeedfillGrayBasin(t *testing.T) {
	// A pit of 20 inside a plateau of 100, with a wall of 255 isolating a
	// second pit at the right edge.
	mask := mustNew(t, 9, 3, pix.Depth8)
	mask.Fill(100)
	for x := 2; x <= 4; x++ {
		mask.Set(x, 1, 20)
	}
	for y := range 3 {
		mask.Set(6, y, 255)
	}
	mask.Set(8, 1, 10)

	seeds := mustNew(t, 9, 3, pix.Depth1)
	seeds.Set(3, 1, 1)
	orig := mask.Clone()

	out, err := SeedfillGrayBasin(seeds, mask, 30, Conn4)
	if err != nil {
		t.Fatalf("SeedfillGrayBasin() = %v", err)
	}
	if !mask.Equal(orig) {
		t.Error("mask was modified")
	}

	for x := 2; x <= 4; x++ {
		if got := out.Get(x, 1); got != 50 {
			t.Errorf("pit (%d, 1) = %d, want 50", x, got)
		}
	}
	if got := out.Get(0, 0); got != 100 {
		t.Errorf("plateau = %d, want 100", got)
	}
	if got := out.Get(6, 1); got != 255 {
		t.Errorf("wall = %d, want 255", got)
	}
	if got := out.Get(8, 1); got != 10 {
		t.Errorf("unreached pit = %d, want its mask value 10", got)
	}
	for y := range 3 {
		for x := range 9 {
			if out.Get(x, y) < mask.Get(x, y) {
				t.Fatalf("(%d, %d) = %d below the mask", x, y, out.Get(x, y))
			}
		}
	}
}

func TestSeedfillGrayBasinNoDelta(t *testing.T) {
	mask := mustNew(t, 4, 4, pix.Depth8)
	mask.Set(1, 1, 77)
	seeds := mustNew(t, 4, 4, pix.Depth1)
	seeds.SetAll()

	for _, delta := range []int{0, -5} {
		out, err := SeedfillGrayBasin(seeds, mask, delta, Conn8)
		if err != nil {
			t.Fatal(err)
		}
		if !out.Equal(mask) || out == mask {
			t.Errorf("delta %d: want a copy of the mask", delta)
		}
	}
}

func TestSeedfillGrayBasinValidation(t *testing.T) {
	mask := mustNew(t, 4, 4, pix.Depth8)
	seeds := mustNew(t, 4, 4, pix.Depth1)

	tests := []struct {
		name        string
		seeds, mask *pix.Buffer
		wantErr     error
	}{
		{"nil seeds", nil, mask, ErrNilBuffer},
		{"nil mask", seeds, nil, ErrNilBuffer},
		{"gray seeds", mask, mask, ErrUnsupportedDepth},
		{"binary mask", seeds, seeds, ErrUnsupportedDepth},
		{"size mismatch", mustNew(t, 5, 4, pix.Depth1), mask, ErrSizeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SeedfillGrayBasin(tt.seeds, tt.mask, 10, Conn4); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// =============================================================================
// Distance transform
// =============================================================================

func TestDistanceTransformBoundary(t *testing.T) {
	src := mustNew(t, 5, 3, pix.Depth1)
	src.SetAll()

	t.Run("bg", func(t *testing.T) {
		dist, err := DistanceTransform(src, Conn4)
		if err != nil {
			t.Fatal(err)
		}
		if dist.Depth() != pix.Depth8 || dist.Width() != 5 || dist.Height() != 3 {
			t.Fatalf("geometry = %dx%d %v, want 5x3 8bpp", dist.Width(), dist.Height(), dist.Depth())
		}
		for y := range 3 {
			for x := range 5 {
				want := uint32(min(x+1, 5-x, y+1, 3-y))
				if got := dist.Get(x, y); got != want {
					t.Errorf("(%d, %d) = %d, want %d", x, y, got, want)
				}
			}
		}
	})

	t.Run("fg", func(t *testing.T) {
		s := src.Clone()
		s.Set(0, 0, 0)
		for _, conn := range []Connectivity{Conn4, Conn8} {
			dist, err := DistanceTransform(s, conn, WithBoundary(BoundaryFG))
			if err != nil {
				t.Fatal(err)
			}
			for y := range 3 {
				for x := range 5 {
					want := uint32(x + y)
					if conn == Conn8 {
						want = uint32(max(x, y))
					}
					if got := dist.Get(x, y); got != want {
						t.Errorf("%v (%d, %d) = %d, want %d", conn, x, y, got, want)
					}
				}
			}
		}
	})

	t.Run("fg without background saturates", func(t *testing.T) {
		dist, err := DistanceTransform(src, Conn8, WithBoundary(BoundaryFG))
		if err != nil {
			t.Fatal(err)
		}
		if got := dist.Get(2, 1); got != 255 {
			t.Errorf("center = %d, want 255", got)
		}
	})
}

func TestDistanceTransformDepth(t *testing.T) {
	src := rows(t,
		".....",
		".###.",
		".....",
	)

	dist, err := DistanceTransform(src, Conn8, WithOutputDepth(pix.Depth16))
	if err != nil {
		t.Fatal(err)
	}
	if dist.Depth() != pix.Depth16 {
		t.Fatalf("Depth() = %v, want 16bpp", dist.Depth())
	}
	if dist.Get(2, 1) != 1 || dist.Get(0, 0) != 0 {
		t.Error("unexpected 16 bpp distances")
	}

	if _, err := DistanceTransform(src, Conn8, WithOutputDepth(pix.Depth4)); !errors.Is(err, ErrUnsupportedDepth) {
		t.Errorf("4bpp output error = %v, want ErrUnsupportedDepth", err)
	}
}

// =============================================================================
// Seedspread image
// =============================================================================

func TestSeedspreadImage(t *testing.T) {
	src := mustNew(t, 5, 1, pix.Depth8)
	src.Set(0, 0, 10)
	src.Set(4, 0, 50)
	orig := src.Clone()

	out, err := SeedspreadImage(src, Conn4)
	if err != nil {
		t.Fatal(err)
	}
	if !src.Equal(orig) {
		t.Error("input was modified")
	}
	if out.Width() != 5 || out.Height() != 1 {
		t.Fatalf("size = %dx%d, want 5x1", out.Width(), out.Height())
	}
	// The middle pixel is a tie; the raster scan reaches it from the left.
	for x, want := range []uint32{10, 10, 10, 50, 50} {
		if got := out.Get(x, 0); got != want {
			t.Errorf("(%d, 0) = %d, want %d", x, got, want)
		}
	}
}

func TestSeedspreadImageEdges(t *testing.T) {
	// Seeds on the image edge spread like any other.
	src := mustNew(t, 6, 6, pix.Depth8)
	src.Set(5, 5, 200)

	for _, conn := range []Connectivity{Conn4, Conn8} {
		out, err := SeedspreadImage(src, conn)
		if err != nil {
			t.Fatal(err)
		}
		if out.CountPixels() != 36 {
			t.Errorf("%v: CountPixels() = %d, want 36", conn, out.CountPixels())
		}
		if out.Get(0, 0) != 200 {
			t.Errorf("%v: far corner = %d, want 200", conn, out.Get(0, 0))
		}
	}
}

func TestSeedspreadImageNoSeeds(t *testing.T) {
	src := mustNew(t, 3, 3, pix.Depth8)
	out, err := SeedspreadImage(src, Conn8)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(src) || out == src {
		t.Error("an image without seeds should come back as a copy")
	}
}

func TestSeedspreadImageValidation(t *testing.T) {
	if _, err := SeedspreadImage(nil, Conn4); !errors.Is(err, ErrNilBuffer) {
		t.Errorf("nil: error = %v, want ErrNilBuffer", err)
	}
	if _, err := SeedspreadImage(mustNew(t, 3, 3, pix.Depth16), Conn4); !errors.Is(err, ErrUnsupportedDepth) {
		t.Errorf("16bpp: error = %v, want ErrUnsupportedDepth", err)
	}
	if _, err := SeedspreadImage(mustNew(t, 3, 3, pix.Depth8), Connectivity(1)); !errors.Is(err, ErrInvalidConnectivity) {
		t.Errorf("conn 1: error = %v, want ErrInvalidConnectivity", err)
	}
}
