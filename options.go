package zonescan

import "github.com/dnszone/zonescan/internal/parser"

// Class is a DNS class value (spec.md §6).
type Class = parser.Class

const (
	ClassIN Class = parser.ClassIN
	ClassCS Class = parser.ClassCS
	ClassCH Class = parser.ClassCH
	ClassHS Class = parser.ClassHS
)

// Options is the Go shape of zone_options_t (original_source/include/zone.h):
// Origin becomes the zone's initial origin name (an empty Origin is not
// rejected and is taken as the root name); DefaultTTL
// and DefaultClass apply until a record or $TTL directive overrides them;
// FriendlyTTLs accepts BIND-style durations ("1h2m3s") in TTL fields.
type Options = parser.Options
