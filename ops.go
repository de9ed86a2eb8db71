package seedfill

import (
	"fmt"

	"github.com/gogpu/seedfill/internal/fill"
	"github.com/gogpu/seedfill/pix"
)

// The operations in this file return new buffers and never modify their
// inputs. Scratch buffers come from the pool set with WithPool (the package
// pool by default) and are returned to it before the call ends.

func checkBinary(src *pix.Buffer, conn Connectivity) error {
	if err := checkBuffer("src", src); err != nil {
		return err
	}
	if err := conn.validate(); err != nil {
		return err
	}
	return checkDepth("src", src, pix.Depth1)
}

// fillFromBorder returns a scratch buffer holding the pixels of mask
// connected to the image border. The caller releases it.
func fillFromBorder(o *options, mask *pix.Buffer, conn Connectivity) (*pix.Buffer, error) {
	seed, err := o.scratch(mask.Width(), mask.Height(), pix.Depth1)
	if err != nil {
		return nil, err
	}
	seed.SetBorder(1, 1)
	if err := seed.And(mask); err != nil {
		o.release(seed)
		return nil, err
	}
	fillBinary(seed, mask, conn)
	return seed, nil
}

// background returns a scratch copy of the 1 bpp src with foreground and
// background swapped. The caller releases it.
func background(o *options, src *pix.Buffer) (*pix.Buffer, error) {
	bg, err := o.scratch(src.Width(), src.Height(), pix.Depth1)
	if err != nil {
		return nil, err
	}
	if err := bg.Or(src); err != nil {
		o.release(bg)
		return nil, err
	}
	bg.Invert()
	return bg, nil
}

// fillBackground returns a scratch buffer holding the background of src
// connected to the image border. The caller releases it.
func fillBackground(o *options, src *pix.Buffer, conn Connectivity) (*pix.Buffer, error) {
	bg, err := background(o, src)
	if err != nil {
		return nil, err
	}
	defer o.release(bg)
	return fillFromBorder(o, bg, conn)
}

// HolesByFilling returns the holes of the 1 bpp foreground: background
// pixels not connected to the image border. conn is the connectivity of the
// background.
func HolesByFilling(src *pix.Buffer, conn Connectivity, opts ...Option) (*pix.Buffer, error) {
	if err := checkBinary(src, conn); err != nil {
		return nil, err
	}
	o := applyOptions(opts)

	bg, err := background(&o, src)
	if err != nil {
		return nil, err
	}
	defer o.release(bg)
	reached, err := fillFromBorder(&o, bg, conn)
	if err != nil {
		return nil, err
	}
	defer o.release(reached)

	holes := bg.Clone()
	if err := holes.Xor(reached); err != nil {
		return nil, err
	}

	Logger().Debug("seedfill: holes", "conn", int(conn), "holes", holes.CountPixels())
	return holes, nil
}

// FillClosedBorders returns the 1 bpp foreground with its holes filled.
// conn is the connectivity of the background.
func FillClosedBorders(src *pix.Buffer, conn Connectivity, opts ...Option) (*pix.Buffer, error) {
	if err := checkBinary(src, conn); err != nil {
		return nil, err
	}
	o := applyOptions(opts)

	reached, err := fillBackground(&o, src, conn)
	if err != nil {
		return nil, err
	}
	defer o.release(reached)

	filled := reached.Clone()
	filled.Invert()
	return filled, nil
}

// ExtractBorderConnComps returns the 1 bpp foreground components that touch
// the image border.
func ExtractBorderConnComps(src *pix.Buffer, conn Connectivity, opts ...Option) (*pix.Buffer, error) {
	if err := checkBinary(src, conn); err != nil {
		return nil, err
	}
	o := applyOptions(opts)

	reached, err := fillFromBorder(&o, src, conn)
	if err != nil {
		return nil, err
	}
	defer o.release(reached)
	return reached.Clone(), nil
}

// RemoveBorderConnComps returns the 1 bpp foreground components that do not
// touch the image border.
func RemoveBorderConnComps(src *pix.Buffer, conn Connectivity, opts ...Option) (*pix.Buffer, error) {
	if err := checkBinary(src, conn); err != nil {
		return nil, err
	}
	o := applyOptions(opts)

	reached, err := fillFromBorder(&o, src, conn)
	if err != nil {
		return nil, err
	}
	defer o.release(reached)

	out := src.Clone()
	if err := out.Xor(reached); err != nil {
		return nil, err
	}
	return out, nil
}

// FillBgFromBorder returns the 1 bpp foreground together with every
// background pixel connected to the image border. Only the holes of the
// foreground remain 0. conn is the connectivity of the background.
func FillBgFromBorder(src *pix.Buffer, conn Connectivity, opts ...Option) (*pix.Buffer, error) {
	if err := checkBinary(src, conn); err != nil {
		return nil, err
	}
	o := applyOptions(opts)

	reached, err := fillBackground(&o, src, conn)
	if err != nil {
		return nil, err
	}
	defer o.release(reached)

	out := reached.Clone()
	if err := out.Or(src); err != nil {
		return nil, err
	}
	return out, nil
}

// SeedfillGrayBasin fills the basins of the 8 bpp mask around the 1 bpp
// seeds. Starting at each seed pixel at level mask+delta, the level spreads
// to neighbors and rises over any higher mask pixel it crosses; every pixel
// reached ends at the larger of its mask value and the level that reaches it.
// Pixels the level cannot reach below 255 keep their mask value.
//
// If delta <= 0 a copy of the mask is returned.
func SeedfillGrayBasin(seeds, mask *pix.Buffer, delta int, conn Connectivity, opts ...Option) (*pix.Buffer, error) {
	if err := checkBuffer("seeds", seeds); err != nil {
		return nil, err
	}
	if err := checkBuffer("mask", mask); err != nil {
		return nil, err
	}
	if err := conn.validate(); err != nil {
		return nil, err
	}
	if err := checkDepth("seeds", seeds, pix.Depth1); err != nil {
		return nil, err
	}
	if err := checkDepth("mask", mask, pix.Depth8); err != nil {
		return nil, err
	}
	if !seeds.SameSize(mask) {
		return nil, fmt.Errorf("%w: seeds %dx%d, mask %dx%d", ErrSizeMismatch,
			seeds.Width(), seeds.Height(), mask.Width(), mask.Height())
	}

	out := mask.Clone()
	if delta <= 0 {
		return out, nil
	}
	o := applyOptions(opts)
	w, h := mask.Width(), mask.Height()

	// Work on the inverted image so that the level flood becomes a forward
	// reconstruction under 255-mask.
	seed, err := o.scratch(w, h, pix.Depth8)
	if err != nil {
		return nil, err
	}
	defer o.release(seed)
	inv, err := o.scratch(w, h, pix.Depth8)
	if err != nil {
		return nil, err
	}
	defer o.release(inv)

	for y := range h {
		lm, lb, ls, li := mask.Line(y), seeds.Line(y), seed.Line(y), inv.Line(y)
		for x := range w {
			m := pix.GetByte(lm, x)
			pix.SetByte(li, x, 255-m)
			if pix.GetBit(lb, x) != 0 {
				level := min(int(m)+delta, 255)
				pix.SetByte(ls, x, uint32(255-level))
			}
		}
	}

	stats := fill.Gray(seed, inv, int(conn), fill.Forward)

	for y := range h {
		ls, lo := seed.Line(y), out.Line(y)
		for x := range w {
			if s := pix.GetByte(ls, x); s > 0 {
				pix.SetByte(lo, x, 255-s)
			}
		}
	}

	Logger().Debug("seedfill: basin",
		"conn", int(conn), "delta", delta, "queued", stats.Queued, "raised", stats.Raised)
	return out, nil
}

// DistanceTransform returns the distance from each foreground pixel of the
// 1 bpp src to the nearest background pixel, as a new 8 or 16 bpp buffer
// (see WithOutputDepth). Background pixels are 0. With BoundaryBG (the
// default) pixels outside the image count as background; with BoundaryFG
// they count as foreground. Conn4 gives city-block distance and Conn8
// chessboard distance. Distances saturate at the depth's maximum value.
func DistanceTransform(src *pix.Buffer, conn Connectivity, opts ...Option) (*pix.Buffer, error) {
	if err := checkBinary(src, conn); err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	if o.depth != pix.Depth8 && o.depth != pix.Depth16 {
		return nil, fmt.Errorf("%w: output %s", ErrUnsupportedDepth, o.depth)
	}

	w, h := src.Width(), src.Height()
	work, err := o.scratch(w+2, h+2, o.depth)
	if err != nil {
		return nil, err
	}
	defer o.release(work)

	maxv := o.depth.MaxValue()
	if o.boundary == BoundaryFG {
		work.SetBorder(1, maxv)
	}
	_, set := pix.Accessors(o.depth)
	for y := range h {
		ls, lw := src.Line(y), work.Line(y+1)
		for x := range w {
			if pix.GetBit(ls, x) != 0 {
				set(lw, x+1, maxv)
			}
		}
	}

	fill.Distance(work, int(conn))

	out, err := work.RemoveBorder(1)
	if err != nil {
		return nil, err
	}

	Logger().Debug("seedfill: distance transform",
		"conn", int(conn), "depth", o.depth.String(), "boundary", o.boundary.String())
	return out, nil
}

// SeedspreadImage returns a copy of the 8 bpp src in which every zero pixel
// takes the value of its nearest non-zero pixel. Conn4 measures distance as
// city-block and Conn8 as chessboard; equal distances are broken by scan
// order. An image with no non-zero pixel is returned unchanged.
func SeedspreadImage(src *pix.Buffer, conn Connectivity, opts ...Option) (*pix.Buffer, error) {
	if err := checkBuffer("src", src); err != nil {
		return nil, err
	}
	if err := conn.validate(); err != nil {
		return nil, err
	}
	if err := checkDepth("src", src, pix.Depth8); err != nil {
		return nil, err
	}
	o := applyOptions(opts)

	w, h := src.Width(), src.Height()
	out, err := src.AddBorder(1, 0)
	if err != nil {
		return nil, err
	}
	dist, err := o.scratch(w+2, h+2, pix.Depth16)
	if err != nil {
		return nil, err
	}
	defer o.release(dist)

	dist.Fill(1)
	dist.SetBorder(1, 0xffff)
	seeds := 0
	for y := range h {
		ls, lt := src.Line(y), dist.Line(y+1)
		for x := range w {
			if pix.GetByte(ls, x) != 0 {
				pix.SetTwoBytes(lt, x+1, 0)
				seeds++
			}
		}
	}
	if seeds == 0 {
		return src.Clone(), nil
	}

	fill.Seedspread(out, dist, int(conn))

	Logger().Debug("seedfill: seedspread image", "conn", int(conn), "seeds", seeds)
	return out.RemoveBorder(1)
}
