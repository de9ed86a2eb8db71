package pix

// Word-level sample accessors. Each function takes one row of packed words
// (as returned by Buffer.Line) and a column index. Samples are stored most
// significant bits first, so column 0 lives in the high bits of word 0.
//
// These accessors do no bounds checking beyond what slice indexing gives.

// GetBit returns the 1-bit sample at column j.
func GetBit(line []uint32, j int) uint32 {
	return (line[j>>5] >> (31 - uint(j&31))) & 1
}

// SetBit sets the 1-bit sample at column j to 1.
func SetBit(line []uint32, j int) {
	line[j>>5] |= 0x80000000 >> uint(j&31)
}

// ClearBit sets the 1-bit sample at column j to 0.
func ClearBit(line []uint32, j int) {
	line[j>>5] &^= 0x80000000 >> uint(j&31)
}

// GetDibit returns the 2-bit sample at column j.
func GetDibit(line []uint32, j int) uint32 {
	return (line[j>>4] >> (2 * (15 - uint(j&15)))) & 3
}

// SetDibit stores the low 2 bits of v at column j.
func SetDibit(line []uint32, j int, v uint32) {
	shift := 2 * (15 - uint(j&15))
	w := &line[j>>4]
	*w = (*w &^ (3 << shift)) | (v&3)<<shift
}

// GetQbit returns the 4-bit sample at column j.
func GetQbit(line []uint32, j int) uint32 {
	return (line[j>>3] >> (4 * (7 - uint(j&7)))) & 0xf
}

// SetQbit stores the low 4 bits of v at column j.
func SetQbit(line []uint32, j int, v uint32) {
	shift := 4 * (7 - uint(j&7))
	w := &line[j>>3]
	*w = (*w &^ (0xf << shift)) | (v&0xf)<<shift
}

// GetByte returns the 8-bit sample at column j.
func GetByte(line []uint32, j int) uint32 {
	return (line[j>>2] >> (8 * (3 - uint(j&3)))) & 0xff
}

// SetByte stores the low 8 bits of v at column j.
func SetByte(line []uint32, j int, v uint32) {
	shift := 8 * (3 - uint(j&3))
	w := &line[j>>2]
	*w = (*w &^ (0xff << shift)) | (v&0xff)<<shift
}

// GetTwoBytes returns the 16-bit sample at column j.
func GetTwoBytes(line []uint32, j int) uint32 {
	return (line[j>>1] >> (16 * (1 - uint(j&1)))) & 0xffff
}

// SetTwoBytes stores the low 16 bits of v at column j.
func SetTwoBytes(line []uint32, j int, v uint32) {
	shift := 16 * (1 - uint(j&1))
	w := &line[j>>1]
	*w = (*w &^ (0xffff << shift)) | (v&0xffff)<<shift
}

// Getter reads one sample from a row.
type Getter func(line []uint32, j int) uint32

// Setter writes one sample into a row.
type Setter func(line []uint32, j int, v uint32)

// Accessors returns the sample getter and setter for depth d.
// Returns nil functions for invalid depths.
func Accessors(d Depth) (Getter, Setter) {
	switch d {
	case Depth1:
		return GetBit, setBitValue
	case Depth2:
		return GetDibit, SetDibit
	case Depth4:
		return GetQbit, SetQbit
	case Depth8:
		return GetByte, SetByte
	case Depth16:
		return GetTwoBytes, SetTwoBytes
	default:
		return nil, nil
	}
}

func setBitValue(line []uint32, j int, v uint32) {
	if v&1 != 0 {
		SetBit(line, j)
	} else {
		ClearBit(line, j)
	}
}
