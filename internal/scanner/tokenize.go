package scanner

// tokenize drains a scanned block's structural bit mask onto the tape as
// Index entries, taking a slow, line-counting path when a newline fell
// inside a contiguous or quoted run (spec.md §4.5 "Index tape"). base is
// the window offset of the block's first byte.
func tokenize(base int, blk *block, tape *Tape, c *carry) {
	bits := blk.bits

	if c.lines != 0 || blk.newline&(blk.contiguous|blk.inQuotedRegion) != 0 {
		newline := blk.newline
		for bits != 0 {
			bit := isolateLowestBit(bits)
			bits ^= bit

			// newline holds only newlines past the previous token start, so
			// those below bit lie inside the preceding run.
			c.lines += uint32(countOnes(newline & (bit - 1)))
			if bit&newline != 0 {
				tape.Append(Index{Offset: lineFeedMarker, Lines: c.lines})
				c.lines = 0
			} else {
				pos := trailingZeroes(bit)
				tape.Append(Index{Offset: uint32(base + pos)})
			}
			newline &= uint64(-int64(bit)) - bit
		}
		// Newlines past the last token start belong to a run that continues
		// into the next block.
		c.lines += uint32(countOnes(newline))
		return
	}

	for bits != 0 {
		pos := trailingZeroes(bits)
		tape.Append(Index{Offset: uint32(base + pos)})
		bits = clearLowestBit(bits)
	}
}
