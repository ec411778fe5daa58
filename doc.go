// Package zonescan streams RFC 1035 §5 DNS zone master files into typed
// lexical tokens and, above that, resource records: a block scanner
// classifies 64-byte chunks into structural bitmasks (internal/scanner),
// and a token materializer turns those into CONTIGUOUS/QUOTED/LINE_FEED/
// END_OF_FILE tokens and then records (internal/parser). Per-RR-type RDATA
// interpretation, the CLI/benchmark harness, and DNSSEC validation are not
// part of this package; see internal/parser.TypeDescriptor for the plug-in
// boundary a caller can build typed RDATA parsing on top of.
package zonescan
