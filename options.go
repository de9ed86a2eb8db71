package seedfill

import "github.com/gogpu/seedfill/pix"

// Boundary says how pixels outside the image are treated by DistanceTransform.
type Boundary uint8

const (
	// BoundaryBG treats pixels outside the image as background, so foreground
	// pixels on the image edge are at distance 1.
	BoundaryBG Boundary = iota

	// BoundaryFG treats pixels outside the image as foreground, so distances
	// are measured to background inside the image only.
	BoundaryFG
)

// String returns a string representation of the boundary condition.
func (b Boundary) String() string {
	if b == BoundaryFG {
		return "fg"
	}
	return "bg"
}

// defaultMaxIterations bounds the iterated simple fills.
const defaultMaxIterations = 40

// Option configures the higher-level operations.
//
// Example:
//
//	dist, err := seedfill.DistanceTransform(src, seedfill.Conn8,
//	    seedfill.WithOutputDepth(pix.Depth16),
//	    seedfill.WithBoundary(seedfill.BoundaryFG))
type Option func(*options)

type options struct {
	maxIterations int
	depth         pix.Depth
	boundary      Boundary
	pool          *pix.Pool
}

func defaultOptions() options {
	return options{
		maxIterations: defaultMaxIterations,
		depth:         pix.Depth8,
		boundary:      BoundaryBG,
		pool:          pix.DefaultPool(),
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithMaxIterations caps the number of passes made by the iterated simple
// fills. Values below 1 are ignored.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithOutputDepth sets the depth of the DistanceTransform result
// (pix.Depth8 or pix.Depth16). Other depths are rejected by the operation.
func WithOutputDepth(d pix.Depth) Option {
	return func(o *options) {
		o.depth = d
	}
}

// WithBoundary sets the DistanceTransform boundary condition.
func WithBoundary(b Boundary) Option {
	return func(o *options) {
		o.boundary = b
	}
}

// WithPool sets the pool scratch buffers are taken from. A nil pool disables
// pooling.
func WithPool(p *pix.Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// scratch returns a zeroed buffer from the configured pool, or a fresh one.
func (o *options) scratch(width, height int, depth pix.Depth) (*pix.Buffer, error) {
	if o.pool == nil {
		return pix.New(width, height, depth)
	}
	return o.pool.Get(width, height, depth)
}

// release hands a scratch buffer back to the configured pool.
func (o *options) release(b *pix.Buffer) {
	if o.pool != nil {
		o.pool.Put(b)
	}
}
