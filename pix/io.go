package pix

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/ccitt"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned when a file extension has no encoder.
var ErrUnsupportedFormat = errors.New("pix: unsupported format")

// binaryThreshold is the gray level below which a pixel counts as
// foreground when converting to 1 bpp.
const binaryThreshold = 128

// FromImage converts a standard library image to a Buffer of the given depth.
// For Depth1, dark pixels (luminance below 128) become foreground.
// Lower gray depths keep the most significant bits of the 8-bit luminance.
func FromImage(img image.Image, depth Depth) (*Buffer, error) {
	bounds := img.Bounds()
	b, err := New(bounds.Dx(), bounds.Dy(), depth)
	if err != nil {
		return nil, err
	}

	_, set := Accessors(depth)
	for y := range b.height {
		line := b.Line(y)
		for x := range b.width {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			switch depth {
			case Depth16:
				set(line, x, uint32(color.Gray16Model.Convert(c).(color.Gray16).Y))
			case Depth1:
				if color.GrayModel.Convert(c).(color.Gray).Y < binaryThreshold {
					SetBit(line, x)
				}
			default:
				g := uint32(color.GrayModel.Convert(c).(color.Gray).Y)
				set(line, x, g>>(8-uint(depth)))
			}
		}
	}
	return b, nil
}

// ToImage converts the buffer to a standard library image.
// Binary buffers render foreground as black on white. 2, 4 and 8 bpp
// buffers become *image.Gray scaled to the full 0-255 range; 16 bpp buffers
// become *image.Gray16.
func (b *Buffer) ToImage() image.Image {
	get, _ := Accessors(b.depth)
	if b.depth == Depth16 {
		img := image.NewGray16(b.Bounds())
		for y := range b.height {
			line := b.Line(y)
			for x := range b.width {
				img.SetGray16(x, y, color.Gray16{Y: uint16(get(line, x))})
			}
		}
		return img
	}

	img := image.NewGray(b.Bounds())
	maxv := b.depth.MaxValue()
	for y := range b.height {
		line := b.Line(y)
		row := img.Pix[y*img.Stride : y*img.Stride+b.width]
		for x := range b.width {
			v := get(line, x)
			if b.depth == Depth1 {
				row[x] = uint8(255 * (1 - v))
				continue
			}
			row[x] = uint8(v * 255 / maxv)
		}
	}
	return img
}

// Decode reads a PNG, TIFF or BMP image and converts it to the given depth.
func Decode(r io.Reader, depth Depth) (*Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pix: decode: %w", err)
	}
	return FromImage(img, depth)
}

// DecodeCCITT decodes raw CCITT fax data (Group 3 or Group 4, MSB-first bit
// order) into a binary buffer in which black pixels are foreground.
func DecodeCCITT(r io.Reader, width, height int, group4 bool) (*Buffer, error) {
	b, err := New(width, height, Depth1)
	if err != nil {
		return nil, err
	}

	sf := ccitt.Group3
	if group4 {
		sf = ccitt.Group4
	}
	dec := ccitt.NewReader(r, ccitt.MSB, sf, width, height, &ccitt.Options{Invert: true})

	row := make([]byte, (width+7)/8)
	for y := range height {
		if _, err := io.ReadFull(dec, row); err != nil {
			return nil, fmt.Errorf("pix: decode ccitt row %d: %w", y, err)
		}
		packBytes(b.Line(y), row)
	}
	b.ClearPadBits()
	return b, nil
}

// packBytes stores MSB-first bytes into MSB-first words.
func packBytes(line []uint32, src []byte) {
	clear(line)
	for k, v := range src {
		line[k>>2] |= uint32(v) << (8 * (3 - uint(k&3)))
	}
}

// EncodePNG encodes the buffer as PNG.
func (b *Buffer) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToImage()); err != nil {
		return fmt.Errorf("pix: encode PNG: %w", err)
	}
	return nil
}

// EncodeTIFF encodes the buffer as a deflate-compressed TIFF.
func (b *Buffer) EncodeTIFF(w io.Writer) error {
	if err := tiff.Encode(w, b.ToImage(), &tiff.Options{Compression: tiff.Deflate}); err != nil {
		return fmt.Errorf("pix: encode TIFF: %w", err)
	}
	return nil
}

// EncodeBMP encodes the buffer as BMP.
func (b *Buffer) EncodeBMP(w io.Writer) error {
	if err := bmp.Encode(w, b.ToImage()); err != nil {
		return fmt.Errorf("pix: encode BMP: %w", err)
	}
	return nil
}

// Load reads an image file and converts it to the given depth.
func Load(path string, depth Depth) (*Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("pix: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, depth)
}

// Save writes the buffer to path, choosing the encoder from the extension
// (.png, .tif, .tiff or .bmp).
func (b *Buffer) Save(path string) error {
	var encode func(io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = b.EncodePNG
	case ".tif", ".tiff":
		encode = b.EncodeTIFF
	case ".bmp":
		encode = b.EncodeBMP
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("pix: create file: %w", err)
	}
	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
