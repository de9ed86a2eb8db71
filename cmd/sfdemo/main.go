// Command sfdemo runs a seedfill operation on an image and saves the result.
//
// Without -in it draws a small test page (rings, a filled blob and a
// gray gradient) so every operation has something to work on.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/seedfill"
	"github.com/gogpu/seedfill/pix"
)

func main() {
	var (
		op      = flag.String("op", "holes", "operation: holes, fill, border, noborder, bgfill, distance, spread, basin")
		input   = flag.String("in", "", "input image (png, tiff or bmp); empty draws a test page")
		output  = flag.String("out", "sfdemo.png", "output file (png, tiff or bmp)")
		conn    = flag.Int("conn", 4, "connectivity (4 or 8)")
		delta   = flag.Int("delta", 30, "basin fill height above the seeds")
		depth16 = flag.Bool("16", false, "16 bpp distance output")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		seedfill.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	c := seedfill.Connectivity(*conn)

	gray, err := loadGray(*input)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}
	binary := gray.Threshold(128)
	binary.Invert()

	var out *pix.Buffer
	switch *op {
	case "holes":
		out, err = seedfill.HolesByFilling(binary, c)
	case "fill":
		out, err = seedfill.FillClosedBorders(binary, c)
	case "border":
		out, err = seedfill.ExtractBorderConnComps(binary, c)
	case "noborder":
		out, err = seedfill.RemoveBorderConnComps(binary, c)
	case "bgfill":
		out, err = seedfill.FillBgFromBorder(binary, c)
	case "distance":
		depth := pix.Depth8
		if *depth16 {
			depth = pix.Depth16
		}
		out, err = seedfill.DistanceTransform(binary, c, seedfill.WithOutputDepth(depth))
	case "spread":
		out, err = seedfill.SeedspreadImage(sparse(gray), c)
	case "basin":
		out, err = seedfill.SeedfillGrayBasin(minima(gray), gray, *delta, c)
	default:
		log.Fatalf("Unknown operation %q", *op)
	}
	if err != nil {
		log.Fatalf("Failed to run %s: %v", *op, err)
	}

	if err := out.Save(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("%s saved to %s (%dx%d, %s)\n", *op, *output, out.Width(), out.Height(), out.Depth())
}

// loadGray reads an 8 bpp image, or draws the test page if path is empty.
func loadGray(path string) (*pix.Buffer, error) {
	if path != "" {
		return pix.Load(path, pix.Depth8)
	}
	return testPage(256, 192)
}

// testPage draws dark rings (which have holes), a solid blob touching the
// left edge and a light horizontal gradient behind them.
func testPage(w, h int) (*pix.Buffer, error) {
	b, err := pix.New(w, h, pix.Depth8)
	if err != nil {
		return nil, err
	}
	for y := range h {
		for x := range w {
			b.Set(x, y, uint32(160+x*90/w))
		}
	}

	ring := func(cx, cy, r0, r1 int) {
		for y := cy - r1; y <= cy+r1; y++ {
			for x := cx - r1; x <= cx+r1; x++ {
				d := (x-cx)*(x-cx) + (y-cy)*(y-cy)
				if d >= r0*r0 && d <= r1*r1 {
					b.Set(x, y, 20)
				}
			}
		}
	}
	ring(70, 60, 20, 30)
	ring(170, 70, 10, 16)
	ring(150, 140, 25, 32)
	ring(0, 150, 0, 30)
	return b, nil
}

// sparse keeps every 16th pixel on a grid and zeroes the rest.
func sparse(src *pix.Buffer) *pix.Buffer {
	out := src.Template()
	for y := 8; y < src.Height(); y += 16 {
		for x := 8; x < src.Width(); x += 16 {
			out.Set(x, y, max(src.Get(x, y), 1))
		}
	}
	return out
}

// minima marks the darkest pixel of every 32x32 tile as a basin seed.
func minima(src *pix.Buffer) *pix.Buffer {
	seeds, _ := pix.New(src.Width(), src.Height(), pix.Depth1)
	const tile = 32
	for ty := 0; ty < src.Height(); ty += tile {
		for tx := 0; tx < src.Width(); tx += tile {
			bx, by, best := tx, ty, uint32(256)
			for y := ty; y < min(ty+tile, src.Height()); y++ {
				for x := tx; x < min(tx+tile, src.Width()); x++ {
					if v := src.Get(x, y); v < best {
						bx, by, best = x, y, v
					}
				}
			}
			seeds.Set(bx, by, 1)
		}
	}
	return seeds
}
