package zonescan

import "github.com/dnszone/zonescan/internal/parser"

// Name is a domain name in wire format (length-prefixed labels terminated
// by the zero-length root label).
type Name = parser.Name

// AddFunc is the Go shape of zone_accept_t: the record sink. A negative
// return aborts Parse with that value surfaced as the returned error.
type AddFunc = parser.AddFunc

// Token is one materialized lexical unit: CONTIGUOUS, QUOTED, LINE_FEED, or
// END_OF_FILE (spec.md §1).
type Token = parser.Token

// Kind identifies a Token's lexical role.
type Kind = parser.Kind

const (
	KindContiguous = parser.KindContiguous
	KindQuoted     = parser.KindQuoted
	KindLineFeed   = parser.KindLineFeed
	KindEndOfFile  = parser.KindEndOfFile
)
