package fill

import "github.com/gogpu/seedfill/pix"

// Direction selects forward (mask as ceiling) or inverse (mask as floor)
// grayscale filling.
type Direction uint8

const (
	// Forward reconstructs the seed by dilation under the mask: values grow
	// up to, and never above, the mask.
	Forward Direction = iota

	// Inverse grows seed values across pixels whose mask lies below the
	// propagating value. The mask is a floor: every pixel ends at or above
	// it, and pixels whose mask is 255 are set to 255.
	Inverse
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	if d == Inverse {
		return "inverse"
	}
	return "forward"
}

// active reports whether a pixel with mask value m can change at all.
func (d Direction) active(m uint32) bool {
	if d == Forward {
		return m > 0
	}
	return m < 255
}

// settle returns the value of an active pixel whose current value is s,
// whose best (largest) already-visited neighbor is best and whose mask is m.
func (d Direction) settle(s, best, m uint32) uint32 {
	v := max(s, best)
	if d == Forward {
		return min(v, m)
	}
	return max(v, m)
}

// inactiveValue is the value a pixel outside the fill region takes.
func (d Direction) inactiveValue() uint32 {
	if d == Forward {
		return 0
	}
	return 255
}

// canRaise reports whether a pixel with value p can raise a neighbor with
// value q and mask mq.
func (d Direction) canRaise(p, q, mq uint32) bool {
	if d == Forward {
		return q < p && q < mq
	}
	return q < p && mq < p
}

// raised returns the new neighbor value when p raises a neighbor with mask mq.
func (d Direction) raised(p, mq uint32) uint32 {
	if d == Forward {
		return min(p, mq)
	}
	return p
}

// GrayStats reports the work done by Gray.
type GrayStats struct {
	// Queued is the number of pixels pushed on the propagation queue.
	Queued int

	// Raised is the number of pixel updates made while draining the queue.
	Raised int
}

// grayScan holds the per-call state shared by the grayscale loops.
type grayScan struct {
	seed, mask []uint32
	wpls, wplm int
	w, h       int
	dir        Direction
	nb         *neighborhood
}

func newGrayScan(seed, mask *pix.Buffer, conn int, dir Direction) *grayScan {
	return &grayScan{
		seed: seed.Data(),
		mask: mask.Data(),
		wpls: seed.WordsPerLine(),
		wplm: mask.WordsPerLine(),
		w:    seed.Width(),
		h:    seed.Height(),
		dir:  dir,
		nb:   neighborhoodFor(conn),
	}
}

func (g *grayScan) seedLine(i int) []uint32 { return g.seed[i*g.wpls : (i+1)*g.wpls] }
func (g *grayScan) maskLine(i int) []uint32 { return g.mask[i*g.wplm : (i+1)*g.wplm] }

// visit updates pixel (i, j) from the neighbors in nbrs. It returns the
// pixel's value afterwards, whether the pixel is active, and whether its
// value changed.
func (g *grayScan) visit(i, j int, nbrs []offset) (uint32, bool, bool) {
	ls := g.seedLine(i)
	s := pix.GetByte(ls, j)
	m := pix.GetByte(g.maskLine(i), j)
	if !g.dir.active(m) {
		if v := g.dir.inactiveValue(); s != v {
			pix.SetByte(ls, j, v)
			return v, false, true
		}
		return s, false, false
	}

	best := s
	for _, o := range nbrs {
		if o.inside(i, j, g.w, g.h) {
			best = max(best, pix.GetByte(g.seedLine(i+o.di), j+o.dj))
		}
	}
	v := g.dir.settle(s, best, m)
	if v != s {
		pix.SetByte(ls, j, v)
		return v, true, true
	}
	return s, true, false
}

// raster runs the UL -> LR scan.
func (g *grayScan) raster() bool {
	changed := false
	for i := 0; i < g.h; i++ {
		for j := 0; j < g.w; j++ {
			if _, _, c := g.visit(i, j, g.nb.before); c {
				changed = true
			}
		}
	}
	return changed
}

// antiraster runs the LR -> UL scan. If q is non-nil, every active pixel
// that can still raise one of its antiraster successors is queued.
func (g *grayScan) antiraster(q *queue) bool {
	changed := false
	for i := g.h - 1; i >= 0; i-- {
		for j := g.w - 1; j >= 0; j-- {
			v, active, c := g.visit(i, j, g.nb.after)
			if c {
				changed = true
			}
			if q == nil || !active {
				continue
			}
			for _, o := range g.nb.after {
				if !o.inside(i, j, g.w, g.h) {
					continue
				}
				ii, jj := i+o.di, j+o.dj
				qv := pix.GetByte(g.seedLine(ii), jj)
				qm := pix.GetByte(g.maskLine(ii), jj)
				if g.dir.canRaise(v, qv, qm) {
					q.push(i, j)
					break
				}
			}
		}
	}
	return changed
}

// propagate drains q, raising neighbors of each popped pixel and queueing
// every raised neighbor, until no pixel can raise another.
func (g *grayScan) propagate(q *queue) int {
	raised := 0
	for q.len() > 0 {
		i, j := q.pop()
		p := pix.GetByte(g.seedLine(i), j)
		for _, o := range g.nb.all {
			if !o.inside(i, j, g.w, g.h) {
				continue
			}
			ii, jj := i+o.di, j+o.dj
			ls := g.seedLine(ii)
			qv := pix.GetByte(ls, jj)
			qm := pix.GetByte(g.maskLine(ii), jj)
			if g.dir.canRaise(p, qv, qm) {
				pix.SetByte(ls, jj, g.dir.raised(p, qm))
				q.push(ii, jj)
				raised++
			}
		}
	}
	return raised
}

// Gray performs a complete hybrid grayscale seedfill of the 8 bpp seed with
// the 8 bpp mask (Vincent, 1993): a raster scan, an antiraster scan that
// queues pixels whose influence has not yet reached all their neighbors, and
// FIFO propagation until the queue is empty. One call reaches the fixed point.
func Gray(seed, mask *pix.Buffer, conn int, dir Direction) GrayStats {
	g := newGrayScan(seed, mask, conn, dir)
	q := newQueue(2 * (g.w + g.h))

	g.raster()
	g.antiraster(q)
	queued := q.pushed
	raised := g.propagate(q)

	return GrayStats{Queued: queued, Raised: raised}
}

// GraySimple performs one iteration (a raster scan and an antiraster scan)
// of grayscale seedfill, without propagation. It returns true if any pixel
// changed; callers repeat until it returns false.
func GraySimple(seed, mask *pix.Buffer, conn int, dir Direction) bool {
	g := newGrayScan(seed, mask, conn, dir)
	r := g.raster()
	a := g.antiraster(nil)
	return r || a
}
