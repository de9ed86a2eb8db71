package seedfill

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/gogpu/seedfill/pix"
)

var benchSizes = []struct {
	name          string
	width, height int
}{
	{"256x256", 256, 256},
	{"1024x1024", 1024, 1024},
	{"2550x3300", 2550, 3300}, // letter page at 300 dpi
}

// benchPage returns a 1 bpp page of random filled rectangles.
func benchPage(b *testing.B, r *rand.Rand, w, h int) *pix.Buffer {
	b.Helper()
	page := mustNew(b, w, h, pix.Depth1)
	for range w * h / 2000 {
		x0, y0 := r.IntN(w), r.IntN(h)
		x1, y1 := min(x0+4+r.IntN(40), w), min(y0+4+r.IntN(40), h)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				page.Set(x, y, 1)
			}
		}
	}
	return page
}

func BenchmarkSeedfillBinary(b *testing.B) {
	for _, size := range benchSizes {
		for _, conn := range []Connectivity{Conn4, Conn8} {
			b.Run(fmt.Sprintf("%s/conn%d", size.name, int(conn)), func(b *testing.B) {
				r := rand.New(rand.NewPCG(1, 2))
				mask := benchPage(b, r, size.width, size.height)
				seed := mask.Template()
				seed.SetBorder(1, 1)

				b.SetBytes(int64(len(mask.Data()) * 4))
				b.ReportAllocs()
				for b.Loop() {
					s := seed.Clone()
					_ = SeedfillBinary(s, mask, conn)
				}
			})
		}
	}
}

func BenchmarkSeedfillGray(b *testing.B) {
	for _, size := range benchSizes[:2] {
		r := rand.New(rand.NewPCG(3, 4))
		mask := randomGray(b, r, size.width, size.height)
		seed := mustNew(b, size.width, size.height, pix.Depth8)
		for range 50 {
			seed.Set(r.IntN(size.width), r.IntN(size.height), 255)
		}

		b.Run(size.name+"/hybrid", func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				s := seed.Clone()
				_ = SeedfillGray(s, mask, Conn8)
			}
		})
		b.Run(size.name+"/simple", func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				s := seed.Clone()
				_, _ = SeedfillGraySimpleIter(s, mask, Conn8)
			}
		})
	}
}

func BenchmarkHolesByFilling(b *testing.B) {
	r := rand.New(rand.NewPCG(5, 6))
	page := benchPage(b, r, 1024, 1024)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = HolesByFilling(page, Conn4)
	}
}

func BenchmarkDistanceTransform(b *testing.B) {
	r := rand.New(rand.NewPCG(7, 8))
	page := benchPage(b, r, 1024, 1024)

	for _, depth := range []pix.Depth{pix.Depth8, pix.Depth16} {
		b.Run(depth.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = DistanceTransform(page, Conn8, WithOutputDepth(depth))
			}
		})
	}
}

func BenchmarkSeedspreadImage(b *testing.B) {
	r := rand.New(rand.NewPCG(9, 10))
	src := mustNew(b, 1024, 1024, pix.Depth8)
	for range 500 {
		src.Set(r.IntN(1024), r.IntN(1024), 1+r.Uint32N(255))
	}

	b.ReportAllocs()
	for b.Loop() {
		_, _ = SeedspreadImage(src, Conn4)
	}
}

func BenchmarkRunner(b *testing.B) {
	r := rand.New(rand.NewPCG(11, 12))
	runner := NewRunner(0)
	defer runner.Close()

	masks := make([]*pix.Buffer, 16)
	for i := range masks {
		masks[i] = benchPage(b, r, 512, 512)
	}

	b.ReportAllocs()
	for b.Loop() {
		jobs := make([]Job, len(masks))
		for i, m := range masks {
			seed := m.Template()
			seed.SetBorder(1, 1)
			jobs[i] = Job{Op: OpBinary, Seed: seed, Mask: m, Conn: Conn8}
		}
		runner.Run(jobs)
	}
}
