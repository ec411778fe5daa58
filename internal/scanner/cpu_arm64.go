//go:build arm64

package scanner

import "golang.org/x/sys/cpu"

func hasNEON() bool { return cpu.ARM64.HasASIMD }

func hasSIMD() bool { return hasNEON() }
