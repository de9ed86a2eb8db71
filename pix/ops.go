package pix

import "fmt"

// Invert replaces every sample v with max-v. For binary buffers this swaps
// foreground and background.
func (b *Buffer) Invert() {
	for i := range b.data {
		b.data[i] = ^b.data[i]
	}
	b.ClearPadBits()
}

// Or sets b to b | o, word by word. Both buffers must share geometry.
func (b *Buffer) Or(o *Buffer) error {
	return b.combine(o, func(x, y uint32) uint32 { return x | y })
}

// And sets b to b & o, word by word. Both buffers must share geometry.
func (b *Buffer) And(o *Buffer) error {
	return b.combine(o, func(x, y uint32) uint32 { return x & y })
}

// Xor sets b to b ^ o, word by word. Both buffers must share geometry.
func (b *Buffer) Xor(o *Buffer) error {
	return b.combine(o, func(x, y uint32) uint32 { return x ^ y })
}

func (b *Buffer) combine(o *Buffer, op func(x, y uint32) uint32) error {
	if !b.SameGeometry(o) {
		return ErrGeometryMismatch
	}
	for y := range b.height {
		lb, lo := b.Line(y), o.Line(y)
		n := min(b.wpl, o.wpl)
		for k := range n {
			lb[k] = op(lb[k], lo[k])
		}
	}
	b.ClearPadBits()
	return nil
}

// SetBorder sets the outer n rows and columns of the image to v.
// n larger than half the image simply covers the whole image.
func (b *Buffer) SetBorder(n int, v uint32) {
	if n <= 0 {
		return
	}
	_, set := Accessors(b.depth)
	for y := range b.height {
		line := b.Line(y)
		if y < n || y >= b.height-n {
			for x := range b.width {
				set(line, x, v)
			}
			continue
		}
		for x := 0; x < n && x < b.width; x++ {
			set(line, x, v)
			set(line, b.width-1-x, v)
		}
	}
}

// AddBorder returns a new buffer that is b surrounded by n pixels of value v
// on every side.
func (b *Buffer) AddBorder(n int, v uint32) (*Buffer, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: border %d", ErrInvalidDimensions, n)
	}
	d, err := New(b.width+2*n, b.height+2*n, b.depth)
	if err != nil {
		return nil, err
	}
	if v != 0 {
		d.Fill(v)
	}
	if err := d.Paste(b, n, n); err != nil {
		return nil, err
	}
	return d, nil
}

// RemoveBorder returns a new buffer with n pixels cut from every side.
func (b *Buffer) RemoveBorder(n int) (*Buffer, error) {
	if n < 0 || 2*n >= b.width || 2*n >= b.height {
		return nil, fmt.Errorf("%w: border %d on %dx%d", ErrInvalidDimensions, n, b.width, b.height)
	}
	d, err := New(b.width-2*n, b.height-2*n, b.depth)
	if err != nil {
		return nil, err
	}
	get, set := Accessors(b.depth)
	for y := range d.height {
		src, dst := b.Line(y+n), d.Line(y)
		for x := range d.width {
			set(dst, x, get(src, x+n))
		}
	}
	return d, nil
}

// Paste copies src into b with its top-left corner at (x0, y0).
// Pixels falling outside b are dropped. Depths must match.
func (b *Buffer) Paste(src *Buffer, x0, y0 int) error {
	if src == nil || src.depth != b.depth {
		return ErrGeometryMismatch
	}
	get, set := Accessors(b.depth)
	for y := range src.height {
		dy := y + y0
		if dy < 0 || dy >= b.height {
			continue
		}
		sl, dl := src.Line(y), b.Line(dy)
		for x := range src.width {
			dx := x + x0
			if dx < 0 || dx >= b.width {
				continue
			}
			set(dl, dx, get(sl, x))
		}
	}
	return nil
}

// SetMasked sets every sample of b to v where the 1-bit mask is 1.
// mask must have the same width and height as b.
func (b *Buffer) SetMasked(mask *Buffer, v uint32) error {
	if mask == nil || mask.depth != Depth1 || !b.SameSize(mask) {
		return ErrGeometryMismatch
	}
	_, set := Accessors(b.depth)
	for y := range b.height {
		lm, lb := mask.Line(y), b.Line(y)
		for x := range b.width {
			if GetBit(lm, x) != 0 {
				set(lb, x, v)
			}
		}
	}
	return nil
}

// AddConstant adds delta to every sample, clipping to [0, max].
func (b *Buffer) AddConstant(delta int) {
	if delta == 0 {
		return
	}
	get, set := Accessors(b.depth)
	maxv := int(b.depth.MaxValue())
	for y := range b.height {
		line := b.Line(y)
		for x := range b.width {
			v := int(get(line, x)) + delta
			set(line, x, uint32(min(max(v, 0), maxv)))
		}
	}
}

// Threshold returns a 1-bit buffer with 1 where the sample is >= level.
func (b *Buffer) Threshold(level uint32) *Buffer {
	d, _ := New(b.width, b.height, Depth1)
	get, _ := Accessors(b.depth)
	for y := range b.height {
		src, dst := b.Line(y), d.Line(y)
		for x := range b.width {
			if get(src, x) >= level {
				SetBit(dst, x)
			}
		}
	}
	return d
}

// CountPixels returns the number of non-zero samples.
func (b *Buffer) CountPixels() int {
	get, _ := Accessors(b.depth)
	n := 0
	for y := range b.height {
		line := b.Line(y)
		for x := range b.width {
			if get(line, x) != 0 {
				n++
			}
		}
	}
	return n
}
