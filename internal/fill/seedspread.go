package fill

import "github.com/gogpu/seedfill/pix"

// maxDist is the saturation value of the 16 bpp distance map.
const maxDist = 0xffff

// Seedspread copies into every non-seed pixel of the 8 bpp out buffer the
// value of its nearest seed, measured with the 16 bpp dist buffer.
//
// dist must be 0 at seed pixels and non-zero elsewhere. Only interior pixels
// are computed; ring pixels are read as neighbors but never written, so they
// should hold 0xffff to never win. Equal distances are resolved by neighbor
// order: N, W (4) or NW, N, NE, W (8) in the raster scan and S, E (4) or
// SE, S, SW, E (8) in the antiraster scan.
func Seedspread(out, dist *pix.Buffer, conn int) {
	nb := neighborhoodFor(conn)
	w, h := dist.Width(), dist.Height()

	// UL -> LR: every non-seed pixel takes its best predecessor.
	for i := 1; i < h-1; i++ {
		lt, ld := dist.Line(i), out.Line(i)
		for j := 1; j < w-1; j++ {
			if pix.GetTwoBytes(lt, j) == 0 {
				continue
			}
			best, val := nearest(out, dist, i, j, nb.before)
			pix.SetTwoBytes(lt, j, min(best, maxDist-1)+1)
			pix.SetByte(ld, j, val)
		}
	}

	// LR -> UL: replace only when a successor is strictly closer.
	for i := h - 2; i > 0; i-- {
		lt, ld := dist.Line(i), out.Line(i)
		for j := w - 2; j > 0; j-- {
			d := pix.GetTwoBytes(lt, j)
			if d == 0 {
				continue
			}
			best, val := nearest(out, dist, i, j, nb.after)
			if best+1 < d {
				pix.SetTwoBytes(lt, j, best+1)
				pix.SetByte(ld, j, val)
			}
		}
	}
}

// nearest returns the smallest distance among the neighbors of (i, j) in
// nbrs and the output value of the first neighbor holding it.
func nearest(out, dist *pix.Buffer, i, j int, nbrs []offset) (best, val uint32) {
	best = maxDist + 1
	for _, o := range nbrs {
		ii, jj := i+o.di, j+o.dj
		if d := pix.GetTwoBytes(dist.Line(ii), jj); d < best {
			best = d
			val = pix.GetByte(out.Line(ii), jj)
		}
	}
	return best, val
}
