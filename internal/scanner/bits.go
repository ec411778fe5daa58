package scanner

import "math/bits"

// prefixXOR turns a mask of region-toggle bits into a mask of "currently
// inside the region" bits: bit i is set iff an odd number of toggle bits lie
// at or before position i. The source (simdzone's scanner.h, itself citing
// simdjson) computes this with a carry-less multiply by all-ones on
// platforms that have one; ported here as the portable six-step shift-xor
// chain spec.md §4.2 gives as the fallback, since no CLMUL intrinsic is
// reachable from pure Go.
func prefixXOR(x uint64) uint64 {
	x ^= x << 1
	x ^= x << 2
	x ^= x << 4
	x ^= x << 8
	x ^= x << 16
	x ^= x << 32
	return x
}

// follows shifts match left by one bit, pulling in the carry from the
// previous block, and stashes the new carry (the top bit of match) into
// *overflow for the next block.
func follows(match uint64, overflow *uint64) uint64 {
	result := match<<1 | *overflow
	*overflow = match >> 63
	return result
}

// findEscaped identifies which bits in a block are an *escaped* character
// (the byte following an odd-length run of backslashes), not the backslash
// itself. is_escaped carries the parity of a backslash run spanning the
// block boundary. Ported from simdzone's scanner.h, which in turn credits
// simdjson (BSD-3-Clause) for the algorithm.
func findEscaped(backslash uint64, isEscaped *uint64) uint64 {
	backslash &= ^*isEscaped

	followsEscape := backslash<<1 | *isEscaped

	const evenBits = 0x5555555555555555
	oddSequenceStarts := backslash &^ evenBits &^ followsEscape

	sequencesStartingOnEvenBits, carryOut := bits.Add64(oddSequenceStarts, backslash, 0)
	*isEscaped = carryOut

	invertMask := sequencesStartingOnEvenBits << 1

	return (evenBits ^ invertMask) & followsEscape
}

// countOnes and trailingZeroes wrap math/bits so the rest of the package
// reads like the source's count_ones/trailing_zeroes primitives.
func countOnes(x uint64) int { return bits.OnesCount64(x) }

func trailingZeroes(x uint64) int { return bits.TrailingZeros64(x) }

// clearLowestBit clears the lowest set bit of x, mirroring the source's
// clear_lowest_bit(x) = x & (x - 1).
func clearLowestBit(x uint64) uint64 { return x & (x - 1) }

// isolateLowestBit returns a mask containing only the lowest set bit of x,
// the two's-complement trick used throughout find_delimiters: -x & x.
func isolateLowestBit(x uint64) uint64 { return uint64(-int64(x)) & x }
