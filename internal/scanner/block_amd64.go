//go:build amd64

package scanner

// scanBlock classifies one 64-byte block, using the word-at-a-time SWAR
// classifier when the CPU advertises the vector extensions the teacher's
// AVX2/SSE4.2 assembly targeted, scalar otherwise.
func scanBlock(data *[blockSize]byte, c *carry) block {
	return scan(data, c, hasSIMD())
}
