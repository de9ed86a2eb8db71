package pix

// Depth is the number of bits per sample of a Buffer.
type Depth uint8

const (
	// Depth1 is a binary image (1 bit per pixel, 1 = foreground).
	Depth1 Depth = 1

	// Depth2 is 2-bit grayscale.
	Depth2 Depth = 2

	// Depth4 is 4-bit grayscale.
	Depth4 Depth = 4

	// Depth8 is 8-bit grayscale (1 byte per pixel).
	Depth8 Depth = 8

	// Depth16 is 16-bit grayscale (2 bytes per pixel).
	Depth16 Depth = 16
)

// wordBits is the width of one storage word.
const wordBits = 32

// IsValid returns true if d is one of the supported sample depths.
func (d Depth) IsValid() bool {
	switch d {
	case Depth1, Depth2, Depth4, Depth8, Depth16:
		return true
	default:
		return false
	}
}

// MaxValue returns the largest sample value representable at this depth.
// Returns 0 for invalid depths.
func (d Depth) MaxValue() uint32 {
	if !d.IsValid() {
		return 0
	}
	return 1<<d - 1
}

// PixelsPerWord returns how many samples fit in one 32-bit word.
func (d Depth) PixelsPerWord() int {
	if !d.IsValid() {
		return 0
	}
	return wordBits / int(d)
}

// WordsPerLine returns the row stride in words for a row of the given width.
// Rows are padded up to a whole word.
func (d Depth) WordsPerLine(width int) int {
	if !d.IsValid() || width <= 0 {
		return 0
	}
	return (width*int(d) + wordBits - 1) / wordBits
}

// String returns a string representation of the depth.
func (d Depth) String() string {
	switch d {
	case Depth1:
		return "1bpp"
	case Depth2:
		return "2bpp"
	case Depth4:
		return "4bpp"
	case Depth8:
		return "8bpp"
	case Depth16:
		return "16bpp"
	default:
		return "Unknown"
	}
}
