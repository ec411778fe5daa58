package zonescan

import "github.com/dnszone/zonescan/internal/parser"

// Parser drives one zone file (plus any files it $INCLUDEs) to completion.
// A Parser is single-threaded and non-reentrant (spec.md §5): one instance
// handles one input stream at a time.
type Parser struct {
	p *parser.Parser
}

// Open initializes a Parser reading from path.
func Open(path string, opts Options, userData interface{}) (*Parser, error) {
	p, err := parser.Open(path, opts, userData)
	if err != nil {
		return nil, err
	}
	return &Parser{p: p}, nil
}

// OpenString initializes a Parser reading from an in-memory buffer, with no
// filesystem access (the Go shape of zone_parse_string).
func OpenString(name string, data []byte, opts Options, userData interface{}) (*Parser, error) {
	p, err := parser.OpenString(name, data, opts, userData)
	if err != nil {
		return nil, err
	}
	return &Parser{p: p}, nil
}

// Parse drives the token loop to completion, dispatching each fully-scanned
// record to Options.Accept.
func (z *Parser) Parse() error {
	return z.p.Parse()
}

// Lex returns the next lexical token without record-level interpretation,
// for callers that want the tokenizer in isolation (spec.md's actual scope)
// rather than the record-dispatch loop Parse layers on top.
func (z *Parser) Lex() (Token, error) {
	return z.p.Lex()
}

// Close releases every resource the Parser (and any still-open $INCLUDEd
// files) holds.
func (z *Parser) Close() error {
	return z.p.Close()
}

// UserData returns the opaque value passed to Open/OpenString.
func (z *Parser) UserData() interface{} { return z.p.UserData() }
