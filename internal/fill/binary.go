package fill

import "github.com/gogpu/seedfill/pix"

// BinaryPass runs one raster and one antiraster pass of binary seedfill,
// growing the 1 bpp seed inside the 1 bpp mask. It works on the rows and
// words the two buffers have in common and returns true if any seed word
// changed.
//
// A single pass is not always a complete fill: regions that wind against
// both scan directions need further passes. Callers iterate until the pass
// reports no change.
func BinaryPass(seed, mask *pix.Buffer, conn int) bool {
	h := min(seed.Height(), mask.Height())
	wpl := min(seed.WordsPerLine(), mask.WordsPerLine())
	ds, wpls := seed.Data(), seed.WordsPerLine()
	dm, wplm := mask.Data(), mask.WordsPerLine()
	diag := conn == 8
	changed := false

	// UL -> LR
	for i := 0; i < h; i++ {
		ls := ds[i*wpls : i*wpls+wpl]
		lm := dm[i*wplm : i*wplm+wpl]
		for j := 0; j < wpl; j++ {
			word := ls[j]
			if i > 0 {
				above := ds[(i-1)*wpls : (i-1)*wpls+wpl]
				word |= above[j]
				if diag {
					word |= above[j]<<1 | above[j]>>1
					if j > 0 {
						word |= above[j-1] << 31
					}
					if j < wpl-1 {
						word |= above[j+1] >> 31
					}
				}
			}
			if j > 0 {
				word |= ls[j-1] << 31
			}
			word = spreadWord(word&lm[j], lm[j])
			if word != ls[j] {
				ls[j] = word
				changed = true
			}
		}
	}

	// LR -> UL
	for i := h - 1; i >= 0; i-- {
		ls := ds[i*wpls : i*wpls+wpl]
		lm := dm[i*wplm : i*wplm+wpl]
		for j := wpl - 1; j >= 0; j-- {
			word := ls[j]
			if i < h-1 {
				below := ds[(i+1)*wpls : (i+1)*wpls+wpl]
				word |= below[j]
				if diag {
					word |= below[j]<<1 | below[j]>>1
					if j > 0 {
						word |= below[j-1] << 31
					}
					if j < wpl-1 {
						word |= below[j+1] >> 31
					}
				}
			}
			if j < wpl-1 {
				word |= ls[j+1] >> 31
			}
			word = spreadWord(word&lm[j], lm[j])
			if word != ls[j] {
				ls[j] = word
				changed = true
			}
		}
	}

	return changed
}

// spreadWord grows the set bits of word horizontally inside mask until
// nothing changes. word must already be a subset of mask. Every round that
// does not stop adds at least one bit, so it ends within 33 rounds.
func spreadWord(word, mask uint32) uint32 {
	for word != 0 {
		next := (word | word>>1 | word<<1) & mask
		if next == word {
			break
		}
		word = next
	}
	return word
}
