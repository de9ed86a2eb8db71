package fill

import "github.com/gogpu/seedfill/pix"

// Distance computes, in place, the distance of every foreground pixel of an
// 8 or 16 bpp buffer to the nearest background (zero) pixel.
//
// The buffer must hold 0 at background and the depth's maximum value at
// foreground. Only interior pixels are computed; the outermost ring is read
// but never written. 4-connectivity yields city-block distance and
// 8-connectivity chessboard distance. Results saturate at the maximum value.
func Distance(buf *pix.Buffer, conn int) {
	get, set := pix.Accessors(buf.Depth())
	maxv := buf.Depth().MaxValue()
	nb := neighborhoodFor(conn)
	w, h := buf.Width(), buf.Height()

	// UL -> LR
	for i := 1; i < h-1; i++ {
		line := buf.Line(i)
		for j := 1; j < w-1; j++ {
			if get(line, j) == 0 {
				continue
			}
			minv := maxv
			for _, o := range nb.before {
				minv = min(minv, get(buf.Line(i+o.di), j+o.dj))
			}
			set(line, j, min(minv, maxv-1)+1)
		}
	}

	// LR -> UL
	for i := h - 2; i > 0; i-- {
		line := buf.Line(i)
		for j := w - 2; j > 0; j-- {
			v := get(line, j)
			if v == 0 {
				continue
			}
			minv := maxv
			for _, o := range nb.after {
				minv = min(minv, get(buf.Line(i+o.di), j+o.dj))
			}
			set(line, j, min(minv+1, v))
		}
	}
}
