//go:build !amd64 && !arm64

package scanner

// scanBlock always takes the scalar path on architectures without a vector
// feature probe.
func scanBlock(data *[blockSize]byte, c *carry) block {
	return scan(data, c, false)
}
