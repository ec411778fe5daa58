package parser

// TypeDescriptor is the plug-in boundary for a per-RR-type RDATA parser,
// explicitly out of scope per spec.md §1 ("Per-RR-type RDATA parsers and
// their wire-format encoders"). This package defines the interface only: it
// has no descriptor registry and never calls Check; Check takes the octets
// ParseGenericRDATA returns.
type TypeDescriptor interface {
	// Type is the RR type number this descriptor handles.
	Type() uint16
	// Fields describes the wire-format layout used to validate generic
	// RDATA decoded via ParseGenericRDATA (spec.md §4.8 step 4, "check via
	// the descriptor").
	Fields() []FieldInfo
	// Check validates rdata against Fields, returning a SemanticError-coded
	// error on mismatch (e.g. wrong length for a fixed-width field).
	Check(rdata []byte) error
}

// FieldInfo names one fixed- or variable-width field within an RDATA
// layout, the Go shape of zone_rdata_descriptor_t's individual field table
// entries.
type FieldInfo struct {
	Name string
	// Width is the field's fixed byte width, or 0 for a variable-width
	// field that runs to the end of the RDATA (e.g. a trailing
	// <character-string> or domain name).
	Width int
}
