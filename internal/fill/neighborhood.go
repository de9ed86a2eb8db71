package fill

// offset is a neighbor position relative to the current pixel.
type offset struct {
	di, dj int
}

// neighborhood holds the neighbor offsets for one connectivity.
//
// before lists the neighbors already visited by a raster scan, after the
// neighbors already visited by an antiraster scan. Their order is the tie
// priority used by Seedspread: the first neighbor with the smallest value wins.
type neighborhood struct {
	before []offset
	after  []offset
	all    []offset
}

var (
	neighbors4 = neighborhood{
		before: []offset{{-1, 0}, {0, -1}},
		after:  []offset{{1, 0}, {0, 1}},
		all:    []offset{{-1, 0}, {0, -1}, {1, 0}, {0, 1}},
	}
	neighbors8 = neighborhood{
		before: []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}},
		after:  []offset{{1, 1}, {1, 0}, {1, -1}, {0, 1}},
		all:    []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}},
	}
)

// neighborhoodFor returns the table for connectivity 4 or 8.
func neighborhoodFor(conn int) *neighborhood {
	if conn == 8 {
		return &neighbors8
	}
	return &neighbors4
}

// inside reports whether (i+o.di, j+o.dj) lies in a w x h image.
func (o offset) inside(i, j, w, h int) bool {
	ii, jj := i+o.di, j+o.dj
	return ii >= 0 && ii < h && jj >= 0 && jj < w
}
