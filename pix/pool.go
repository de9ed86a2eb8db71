package pix

import "sync"

// Pool is a thread-safe pool of scratch buffers.
//
// Buffers are grouped by width, height and depth so that repeated calls on
// same-sized images reuse memory instead of allocating.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Buffer
	maxSize int // max buffers per bucket
}

type poolKey struct {
	width  int
	height int
	depth  Depth
}

// NewPool creates a pool that keeps at most maxPerBucket buffers of each
// geometry. A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Buffer),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed buffer of the given geometry, reusing a pooled one
// when available.
func (p *Pool) Get(width, height int, depth Depth) (*Buffer, error) {
	key := poolKey{width: width, height: height, depth: depth}

	p.mu.Lock()
	if bucket := p.buckets[key]; len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		buf.Clear()
		return buf, nil
	}
	p.mu.Unlock()

	return New(width, height, depth)
}

// Put returns a buffer to the pool for reuse. The caller must not touch buf
// afterwards. Nil buffers are ignored, as are buffers beyond the bucket limit.
func (p *Pool) Put(buf *Buffer) {
	if buf == nil {
		return
	}

	key := poolKey{width: buf.width, height: buf.height, depth: buf.depth}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of buffers currently held for a geometry.
func (p *Pool) Len(width, height int, depth Depth) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[poolKey{width: width, height: height, depth: depth}])
}

var defaultPool = NewPool(8)

// DefaultPool returns the package-level pool.
func DefaultPool() *Pool {
	return defaultPool
}
