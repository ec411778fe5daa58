package zonescan

import "github.com/dnszone/zonescan/internal/parser"

// Code is one of the disjoint negative return codes spec.md §6 defines.
type Code = parser.Code

const (
	Success        Code = parser.Success
	SyntaxError    Code = parser.SyntaxError
	SemanticError  Code = parser.SemanticError
	OutOfMemory    Code = parser.OutOfMemory
	BadParameter   Code = parser.BadParameter
	IOError        Code = parser.IOError
	NotImplemented Code = parser.NotImplemented
	NotAFile       Code = parser.NotAFile
	NotPermitted   Code = parser.NotPermitted
)

// Error carries a Code plus the source location (both the Go call site
// that raised it and the zone-file position being parsed), the Go shape of
// zone_raise/RAISE in original_source/src/log.h.
type Error = parser.Error
