package seedfill

import (
	"fmt"

	"github.com/gogpu/seedfill/internal/fill"
	"github.com/gogpu/seedfill/pix"
)

func checkBuffer(name string, b *pix.Buffer) error {
	if b == nil {
		return fmt.Errorf("%w: %s", ErrNilBuffer, name)
	}
	if b.Width() <= 0 || b.Height() <= 0 || len(b.Data()) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyBuffer, name)
	}
	return nil
}

func checkDepth(name string, b *pix.Buffer, want ...pix.Depth) error {
	for _, d := range want {
		if b.Depth() == d {
			return nil
		}
	}
	return fmt.Errorf("%w: %s is %s", ErrUnsupportedDepth, name, b.Depth())
}

// checkPair validates a seed/mask pair of the given depth with equal size.
func checkPair(seed, mask *pix.Buffer, conn Connectivity, depth pix.Depth) error {
	if err := checkBuffer("seed", seed); err != nil {
		return err
	}
	if err := checkBuffer("mask", mask); err != nil {
		return err
	}
	if err := conn.validate(); err != nil {
		return err
	}
	if seed.Depth() != mask.Depth() {
		return fmt.Errorf("%w: seed %s, mask %s", ErrDepthMismatch, seed.Depth(), mask.Depth())
	}
	if err := checkDepth("seed", seed, depth); err != nil {
		return err
	}
	if !seed.SameSize(mask) {
		return fmt.Errorf("%w: seed %dx%d, mask %dx%d", ErrSizeMismatch,
			seed.Width(), seed.Height(), mask.Width(), mask.Height())
	}
	return nil
}

// SeedfillBinary grows the 1 bpp seed, in place, to the union of the mask
// components it touches under conn connectivity. Pixels outside the mask are
// cleared. Seed and mask may differ in size: only the rows and words the two
// have in common are filled.
//
// One call reaches the fixed point, so a second call changes nothing.
func SeedfillBinary(seed, mask *pix.Buffer, conn Connectivity) error {
	if err := checkBuffer("seed", seed); err != nil {
		return err
	}
	if err := checkBuffer("mask", mask); err != nil {
		return err
	}
	if err := conn.validate(); err != nil {
		return err
	}
	if err := checkDepth("seed", seed, pix.Depth1); err != nil {
		return err
	}
	if err := checkDepth("mask", mask, pix.Depth1); err != nil {
		return err
	}

	passes := fillBinary(seed, mask, conn)

	Logger().Debug("seedfill: binary",
		"conn", int(conn), "width", seed.Width(), "height", seed.Height(), "passes", passes)
	return nil
}

// fillBinary repeats binary passes until one changes nothing and returns the
// number of passes run.
func fillBinary(seed, mask *pix.Buffer, conn Connectivity) int {
	passes := 1
	for fill.BinaryPass(seed, mask, int(conn)) {
		passes++
	}
	seed.ClearPadBits()
	return passes
}

// SeedfillGray reconstructs the 8 bpp seed, in place, by dilation under the
// 8 bpp mask: each pixel becomes the largest value that can flow to it from
// the seed without exceeding the mask anywhere on the way. Where the mask is
// 0 the seed is cleared.
//
// The seed should start at or below the mask. One call reaches the fixed
// point.
func SeedfillGray(seed, mask *pix.Buffer, conn Connectivity) error {
	return seedfillGray(seed, mask, conn, fill.Forward)
}

// SeedfillGrayInv fills the 8 bpp seed, in place, from above the 8 bpp mask:
// a seed value spreads into every neighbor whose mask lies below it, so
// regions of the mask lower than a surrounding seed are raised to that seed.
// The mask is a floor: every pixel ends at or above its mask value, pixels
// whose mask is 255 end at 255, and no pixel is lowered.
//
// One call reaches the fixed point.
func SeedfillGrayInv(seed, mask *pix.Buffer, conn Connectivity) error {
	return seedfillGray(seed, mask, conn, fill.Inverse)
}

func seedfillGray(seed, mask *pix.Buffer, conn Connectivity, dir fill.Direction) error {
	if err := checkPair(seed, mask, conn, pix.Depth8); err != nil {
		return err
	}

	stats := fill.Gray(seed, mask, int(conn), dir)

	Logger().Debug("seedfill: gray",
		"dir", dir.String(), "conn", int(conn),
		"width", seed.Width(), "height", seed.Height(),
		"queued", stats.Queued, "raised", stats.Raised)
	return nil
}

// SeedfillGraySimple runs one raster and one antiraster pass of forward
// grayscale seedfill, without the propagation queue. Repeating it until
// nothing changes gives the same result as SeedfillGray.
func SeedfillGraySimple(seed, mask *pix.Buffer, conn Connectivity) error {
	_, err := seedfillGraySimple(seed, mask, conn, fill.Forward)
	return err
}

// SeedfillGrayInvSimple runs one raster and one antiraster pass of inverse
// grayscale seedfill. Repeating it until nothing changes gives the same
// result as SeedfillGrayInv.
func SeedfillGrayInvSimple(seed, mask *pix.Buffer, conn Connectivity) error {
	_, err := seedfillGraySimple(seed, mask, conn, fill.Inverse)
	return err
}

func seedfillGraySimple(seed, mask *pix.Buffer, conn Connectivity, dir fill.Direction) (bool, error) {
	if err := checkPair(seed, mask, conn, pix.Depth8); err != nil {
		return false, err
	}
	return fill.GraySimple(seed, mask, int(conn), dir), nil
}

// SeedfillGraySimpleIter repeats SeedfillGraySimple until an iteration
// changes nothing and returns the number of iterations run, including the
// final one. If the cap set by WithMaxIterations (default 40) is reached
// first, it returns the cap and ErrNotConverged; the seed then holds the
// partial result.
func SeedfillGraySimpleIter(seed, mask *pix.Buffer, conn Connectivity, opts ...Option) (int, error) {
	return seedfillGraySimpleIter(seed, mask, conn, fill.Forward, opts)
}

// SeedfillGrayInvSimpleIter is SeedfillGraySimpleIter for the inverse fill.
func SeedfillGrayInvSimpleIter(seed, mask *pix.Buffer, conn Connectivity, opts ...Option) (int, error) {
	return seedfillGraySimpleIter(seed, mask, conn, fill.Inverse, opts)
}

func seedfillGraySimpleIter(seed, mask *pix.Buffer, conn Connectivity, dir fill.Direction, opts []Option) (int, error) {
	if err := checkPair(seed, mask, conn, pix.Depth8); err != nil {
		return 0, err
	}
	o := applyOptions(opts)

	for n := 1; n <= o.maxIterations; n++ {
		if !fill.GraySimple(seed, mask, int(conn), dir) {
			Logger().Debug("seedfill: gray simple",
				"dir", dir.String(), "conn", int(conn), "iterations", n)
			return n, nil
		}
	}
	Logger().Debug("seedfill: gray simple not converged",
		"dir", dir.String(), "conn", int(conn), "iterations", o.maxIterations)
	return o.maxIterations, fmt.Errorf("%w: %s fill after %d iterations",
		ErrNotConverged, dir, o.maxIterations)
}

// DistanceFunction computes, in place, the distance from each foreground
// pixel of an 8 or 16 bpp buffer to the nearest background pixel.
//
// buf must hold 0 at background and the depth's maximum value at foreground.
// The outermost ring of pixels is not computed; it acts as the boundary
// condition. Conn4 gives city-block distance and Conn8 chessboard distance.
// Distances saturate at the depth's maximum value.
func DistanceFunction(buf *pix.Buffer, conn Connectivity) error {
	if err := checkBuffer("buf", buf); err != nil {
		return err
	}
	if err := conn.validate(); err != nil {
		return err
	}
	if err := checkDepth("buf", buf, pix.Depth8, pix.Depth16); err != nil {
		return err
	}

	fill.Distance(buf, int(conn))

	Logger().Debug("seedfill: distance",
		"conn", int(conn), "depth", buf.Depth().String(),
		"width", buf.Width(), "height", buf.Height())
	return nil
}

// Seedspread gives every non-seed pixel of the 8 bpp out buffer the value of
// its nearest seed pixel, using the 16 bpp dist buffer as scratch.
//
// dist must hold 0 at seed pixels and a non-zero value elsewhere; on return
// it holds the distance to the nearest seed. The outermost ring of both
// buffers is not written, and ring pixels of dist should hold 0xffff so they
// are never chosen. Use SeedspreadImage to have the ring handled for you.
func Seedspread(out, dist *pix.Buffer, conn Connectivity) error {
	if err := checkBuffer("out", out); err != nil {
		return err
	}
	if err := checkBuffer("dist", dist); err != nil {
		return err
	}
	if err := conn.validate(); err != nil {
		return err
	}
	if err := checkDepth("out", out, pix.Depth8); err != nil {
		return err
	}
	if err := checkDepth("dist", dist, pix.Depth16); err != nil {
		return err
	}
	if !out.SameSize(dist) {
		return fmt.Errorf("%w: out %dx%d, dist %dx%d", ErrSizeMismatch,
			out.Width(), out.Height(), dist.Width(), dist.Height())
	}

	fill.Seedspread(out, dist, int(conn))

	Logger().Debug("seedfill: seedspread",
		"conn", int(conn), "width", out.Width(), "height", out.Height())
	return nil
}
