// Package pix provides the packed raster buffer used by the seedfill engine.
//
// A Buffer stores a width x height grid of samples of 1, 2, 4, 8 or 16 bits.
// Samples are packed most significant bits first into 32-bit words and every
// row starts on a word boundary, so the row stride is a whole number of words.
// The bits of the last word in a row that lie beyond the image width are
// called pad bits; all operations in this package keep them zero.
package pix

import (
	"errors"
	"image"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pix: invalid dimensions")

	// ErrInvalidDepth is returned when the depth is not 1, 2, 4, 8 or 16.
	ErrInvalidDepth = errors.New("pix: invalid depth")

	// ErrInvalidStride is returned when the words-per-line value is too small for the width.
	ErrInvalidStride = errors.New("pix: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("pix: data buffer too small")

	// ErrGeometryMismatch is returned when two buffers must share size and depth but do not.
	ErrGeometryMismatch = errors.New("pix: buffer geometry mismatch")
)

// Buffer is a word-packed raster image.
//
// Thread safety: Buffer is safe for concurrent read access. Writes require
// external synchronization.
type Buffer struct {
	data   []uint32
	width  int
	height int
	wpl    int
	depth  Depth
}

// New creates a zeroed buffer with the given dimensions and depth.
func New(width, height int, depth Depth) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !depth.IsValid() {
		return nil, ErrInvalidDepth
	}

	wpl := depth.WordsPerLine(width)
	return &Buffer{
		data:   make([]uint32, wpl*height),
		width:  width,
		height: height,
		wpl:    wpl,
		depth:  depth,
	}, nil
}

// FromWords wraps existing word data without copying.
// The caller keeps ownership of data and must keep it valid for the lifetime
// of the Buffer. wpl must be at least depth.WordsPerLine(width).
func FromWords(data []uint32, width, height int, depth Depth, wpl int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !depth.IsValid() {
		return nil, ErrInvalidDepth
	}
	if wpl < depth.WordsPerLine(width) {
		return nil, ErrInvalidStride
	}
	if len(data) < wpl*height {
		return nil, ErrDataTooSmall
	}

	return &Buffer{
		data:   data[:wpl*height],
		width:  width,
		height: height,
		wpl:    wpl,
		depth:  depth,
	}, nil
}

// Clone creates a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([]uint32, len(b.data))
	copy(data, b.data)
	return &Buffer{
		data:   data,
		width:  b.width,
		height: b.height,
		wpl:    b.wpl,
		depth:  b.depth,
	}
}

// Template creates a zeroed buffer with the same geometry as b.
func (b *Buffer) Template() *Buffer {
	return &Buffer{
		data:   make([]uint32, len(b.data)),
		width:  b.width,
		height: b.height,
		wpl:    b.wpl,
		depth:  b.depth,
	}
}

// Width returns the image width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Depth returns the sample depth.
func (b *Buffer) Depth() Depth {
	return b.depth
}

// WordsPerLine returns the row stride in 32-bit words.
func (b *Buffer) WordsPerLine() int {
	return b.wpl
}

// Data returns the raw word slice, row after row.
func (b *Buffer) Data() []uint32 {
	return b.data
}

// Bounds returns the image rectangle with origin at (0, 0).
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Line returns the words of row y, including pad bits.
// Returns nil if y is out of bounds.
func (b *Buffer) Line(y int) []uint32 {
	if y < 0 || y >= b.height {
		return nil
	}
	return b.data[y*b.wpl : (y+1)*b.wpl]
}

// Get returns the sample at (x, y). Returns 0 outside the image.
func (b *Buffer) Get(x, y int) uint32 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	get, _ := Accessors(b.depth)
	return get(b.Line(y), x)
}

// Set stores v at (x, y), truncated to the buffer depth.
// Coordinates outside the image are ignored.
func (b *Buffer) Set(x, y int, v uint32) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	_, set := Accessors(b.depth)
	set(b.Line(y), x, v)
}

// SameSize reports whether b and o have equal width and height.
func (b *Buffer) SameSize(o *Buffer) bool {
	return o != nil && b.width == o.width && b.height == o.height
}

// SameGeometry reports whether b and o have equal size and depth.
func (b *Buffer) SameGeometry(o *Buffer) bool {
	return b.SameSize(o) && b.depth == o.depth
}

// Equal reports whether b and o have the same geometry and pixel values.
// Pad bits are ignored.
func (b *Buffer) Equal(o *Buffer) bool {
	if !b.SameGeometry(o) {
		return false
	}
	full, tail := b.rowMask()
	for y := range b.height {
		lb, lo := b.Line(y), o.Line(y)
		for k := range full {
			if lb[k] != lo[k] {
				return false
			}
		}
		if tail != 0 && (lb[full]^lo[full])&tail != 0 {
			return false
		}
	}
	return true
}

// Clear sets all samples to zero.
func (b *Buffer) Clear() {
	clear(b.data)
}

// Fill sets every sample to v, truncated to the buffer depth.
func (b *Buffer) Fill(v uint32) {
	v &= b.depth.MaxValue()
	var word uint32
	for range b.depth.PixelsPerWord() {
		word = word<<b.depth | v
	}
	for i := range b.data {
		b.data[i] = word
	}
	b.ClearPadBits()
}

// SetAll sets every sample to the maximum value of the depth.
func (b *Buffer) SetAll() {
	b.Fill(b.depth.MaxValue())
}

// ClearPadBits zeroes the bits beyond the image width in every row.
func (b *Buffer) ClearPadBits() {
	full, tail := b.rowMask()
	if full == b.wpl {
		return
	}
	for y := range b.height {
		line := b.Line(y)
		line[full] &= tail
		clear(line[full+1:])
	}
}

// rowMask returns the number of words in a row that are entirely image
// data, and the mask of image bits in the following partial word (0 if the
// row has no partial word).
func (b *Buffer) rowMask() (full int, tail uint32) {
	bits := b.width * int(b.depth)
	full = bits / wordBits
	if rem := bits % wordBits; rem != 0 {
		tail = ^uint32(0) << (wordBits - rem)
	}
	return full, tail
}
