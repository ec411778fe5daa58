package scanner

// blockSize is the number of bytes classified together, matching
// ZONE_BLOCK_SIZE in the source.
const blockSize = 64

// block holds the per-block scratch described in spec.md §3: the raw input
// plus one 64-bit mask per predicate, LSB-first (bit i corresponds to byte
// i of the block).
type block struct {
	input [blockSize]byte

	newline    uint64
	backslash  uint64
	escaped    uint64
	quote      uint64
	semicolon  uint64
	comment    uint64
	quoted     uint64
	blank      uint64
	special    uint64
	contiguous uint64

	// inQuotedRegion is the full "currently inside quotes" mask for this
	// block (one bit per byte), as opposed to quoted, which only marks the
	// toggle positions. tokenize needs it to decide whether the slow,
	// line-counting path is required.
	inQuotedRegion uint64

	followsContiguous uint64

	// bits is the structural token-start mask: one bit per byte that begins
	// a new token (a special character, the first byte of a contiguous run,
	// or the first byte past an opening quote).
	bits uint64
}

// carry is the indexer state persisted between blocks (spec.md §3
// "Indexer state").
type carry struct {
	isEscaped         uint64
	inQuoted          uint64
	inComment         uint64
	followsContiguous uint64
	// lines counts newlines seen while inside a multi-line contiguous or
	// quoted run, buffered until the run's closing LINE_FEED token is
	// materialized (spec.md §3 "Indexer state").
	lines uint32
}

// scan derives the full set of classification masks for one 64-byte block,
// carrying state from the previous block via c. This is the portable
// (non-assembly) rewrite of scanner.h's scan(): with useWideClassify set,
// the single-byte equality tests run as bit-parallel SWAR operations over
// 8-byte machine words; without it, and always for the blank/special
// "any of a small set" tests, each byte is tested in a loop. No CPU SIMD
// instructions are used (spec.md §4.2's non-CLMUL fallback). See DESIGN.md for why
// the teacher's AVX2/SSE4.2/NEON assembly could not be carried over as-is.
func scan(data *[blockSize]byte, c *carry, useWideClassify bool) block {
	var b block
	b.input = *data

	if useWideClassify {
		b.newline = findByteWide(data, '\n')
		b.backslash = findByteWide(data, '\\')
	} else {
		b.newline = findByteScalar(data, '\n')
		b.backslash = findByteScalar(data, '\\')
	}

	b.escaped = findEscaped(b.backslash, &c.isEscaped)

	quote := clearBits(findByteMaybeWide(data, '"', useWideClassify), b.escaped)
	semicolon := clearBits(findByteMaybeWide(data, ';', useWideClassify), b.escaped)
	b.semicolon = semicolon

	inQuoted := c.inQuoted
	inComment := c.inComment

	if inComment != 0 || semicolon != 0 {
		quoted, comment := findDelimiters(quote, semicolon, b.newline, inQuoted, inComment)
		b.quoted = quoted
		b.comment = comment

		inQuoted ^= prefixXOR(b.quoted)
		c.inQuoted = uint64(int64(inQuoted) >> 63)
		inComment ^= prefixXOR(b.comment)
		c.inComment = uint64(int64(inComment) >> 63)
	} else {
		b.quoted = quote
		inQuoted ^= prefixXOR(b.quoted)
		c.inQuoted = uint64(int64(inQuoted) >> 63)
	}

	b.inQuotedRegion = inQuoted

	b.blank = findAnyMaybeWide(data, &blankTable, useWideClassify) &^ (b.escaped | inQuoted | inComment)
	b.special = findAnyMaybeWide(data, &specialTable, useWideClassify) &^ (b.escaped | inQuoted | inComment)

	b.contiguous = ^(b.blank | b.special | b.quoted) &^ (inQuoted | inComment)
	b.followsContiguous = follows(b.contiguous, &c.followsContiguous)

	b.bits = (b.contiguous &^ b.followsContiguous) | (b.quoted & inQuoted) | b.special

	return b
}

func clearBits(mask, clear uint64) uint64 { return mask &^ clear }

// findDelimiters splits quote/semicolon start positions into the "quoted"
// and "comment" region-toggle masks, honoring a region carried open from the
// previous block. Ported from scanner.h's find_delimiters.
func findDelimiters(quotes, semicolons, newlines, inQuoted, inComment uint64) (quoted, comment uint64) {
	starts := quotes | semicolons

	end := (newlines & inComment) | (quotes & inQuoted)
	end = isolateLowestBit(end)

	delimiters := end
	starts &^= (inComment | inQuoted) ^ (uint64(-int64(end)) - end)

	for starts != 0 {
		start := isolateLowestBit(starts)
		quoteStart := quotes & start
		semicolonStart := semicolons & start

		end = (newlines & uint64(-int64(semicolonStart))) | (quotes & (uint64(-int64(quoteStart)) - quoteStart))
		end = isolateLowestBit(end)

		delimiters |= end | start
		starts &= uint64(-int64(end)) - end
	}

	quoted = delimiters & quotes
	comment = delimiters &^ quotes
	return quoted, comment
}
