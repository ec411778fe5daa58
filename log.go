package zonescan

import "github.com/dnszone/zonescan/internal/parser"

// Category is the log-callback severity bitmask (spec.md §6).
type Category = parser.Category

const (
	CategoryError   Category = parser.CategoryError
	CategoryWarning Category = parser.CategoryWarning
	CategoryInfo    Category = parser.CategoryInfo
)

// LogFunc is the Go shape of zone_log_t: the caller-supplied sink for
// diagnostic messages raised while parsing.
type LogFunc = parser.LogFunc
