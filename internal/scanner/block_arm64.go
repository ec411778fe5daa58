//go:build arm64

package scanner

// scanBlock classifies one 64-byte block, using the word-at-a-time SWAR
// classifier when NEON is available, scalar otherwise.
func scanBlock(data *[blockSize]byte, c *carry) block {
	return scan(data, c, hasNEON())
}
