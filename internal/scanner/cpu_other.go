//go:build !amd64 && !arm64

package scanner

func hasSIMD() bool { return false }
