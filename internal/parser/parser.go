package parser

import (
	"sync"

	"github.com/dnszone/zonescan/internal/scanner"
)

// Class is a DNS class value (spec.md §6).
type Class uint16

const (
	ClassIN Class = 1
	ClassCS Class = 2
	ClassCH Class = 3
	ClassHS Class = 4
)

// Category is the log-callback severity bitmask (spec.md §6).
type Category uint8

const (
	CategoryError   Category = 2
	CategoryWarning Category = 4
	CategoryInfo    Category = 8
)

// LogFunc is the Go shape of zone_log_t: the caller-supplied sink for
// diagnostic messages raised while parsing. file/line/function identify the
// internal raise site, matching the original's __FILE__/__LINE__/__func__
// capture (spec.md §6 "Log callback contract").
type LogFunc func(p *Parser, file string, line int, function string, category Category, message string)

// AddFunc is the Go shape of zone_accept_t: the record sink. A negative
// return aborts parsing with that value surfaced as the Parse error.
type AddFunc func(p *Parser, owner Name, rrtype uint16, class Class, ttl uint32, rdata []byte) int32

// Options is the Go shape of zone_options_t (original_source/include/zone.h).
type Options struct {
	Origin       string
	DefaultTTL   uint32
	DefaultClass Class
	Secondary    bool
	NoIncludes   bool
	FriendlyTTLs bool
	LogCategory  Category
	Log          LogFunc
	Accept       AddFunc
}

// Buffers describes sizes for the owner-name and RDATA scratch buffers
// (zone_buffers_t/zone_name_buffer_t/zone_rdata_buffer_t in the source,
// reworked as pooled slices since Go lacks fixed-size stack buffers of that
// shape). Open and OpenString take no Buffers value and nothing reads one:
// the pooled buffers start with capacities of 255 (owner) and 512 (RDATA)
// bytes and grow by append.
type Buffers struct {
	OwnerSize int
	RDataSize int
}

func (b Buffers) ownerSize() int {
	if b.OwnerSize > 0 {
		return b.OwnerSize
	}
	return 255
}

func (b Buffers) rdataSize() int {
	if b.RDataSize > 0 {
		return b.RDataSize
	}
	return 65535
}

var ownerBufPool = sync.Pool{New: func() interface{} { return make([]byte, 0, 255) }}
var rdataBufPool = sync.Pool{New: func() interface{} { return make([]byte, 0, 512) }}

// Parser is the Go shape of zone_parser_t: the active file stack, pooled
// scratch buffers, and the options/sink pair a Parse run drives against.
type Parser struct {
	file    *File
	options Options

	ownerBuf []byte
	rdataBuf []byte

	unlexed *Token

	userData interface{}
}

// Open initializes a Parser reading from path.
func Open(path string, opts Options, userData interface{}) (*Parser, error) {
	p := &Parser{options: opts, userData: userData}
	origin, err := CompileOrigin(opts.Origin)
	if err != nil {
		return nil, p.raiseSemanticError("compile origin %q: %v", opts.Origin, err)
	}
	f, err := openZoneFile(path)
	if err != nil {
		return nil, p.raiseIOError("open %q: %v", path, err)
	}
	f.origin = origin
	f.ttl = opts.DefaultTTL
	f.haveTTL = opts.DefaultTTL != 0
	f.class = uint16(opts.DefaultClass)
	f.haveClass = opts.DefaultClass != 0
	p.file = f
	p.acquireBuffers()
	return p, nil
}

// OpenString initializes a Parser reading from an in-memory buffer, the Go
// shape of zone_parse_string: no filesystem access ever occurs.
func OpenString(name string, data []byte, opts Options, userData interface{}) (*Parser, error) {
	p := &Parser{options: opts, userData: userData}
	origin, err := CompileOrigin(opts.Origin)
	if err != nil {
		return nil, p.raiseSemanticError("compile origin %q: %v", opts.Origin, err)
	}
	f := newFile(name, scanner.NewStringWindow(data))
	f.origin = origin
	f.ttl = opts.DefaultTTL
	f.haveTTL = opts.DefaultTTL != 0
	f.class = uint16(opts.DefaultClass)
	f.haveClass = opts.DefaultClass != 0
	p.file = f
	p.acquireBuffers()
	return p, nil
}

// UserData returns the opaque value passed to Open/OpenString, mirroring
// the user_data pointer threaded through every callback in spec.md §6 — a
// Go sink reads it off p rather than taking it as a separate argument.
func (p *Parser) UserData() interface{} { return p.userData }

func (p *Parser) acquireBuffers() {
	p.ownerBuf = ownerBufPool.Get().([]byte)[:0]
	p.rdataBuf = rdataBufPool.Get().([]byte)[:0]
}

// Close releases the active file and every includer still on its stack,
// plus the pooled scratch buffers, matching zone_close's unwind-everything
// contract (spec.md §5 "Resources").
func (p *Parser) Close() error {
	var firstErr error
	for f := p.file; f != nil; {
		if err := f.close(); err != nil && firstErr == nil {
			firstErr = err
		}
		f.scanner.Release()
		next := f.includer
		f = next
	}
	p.file = nil
	if p.ownerBuf != nil {
		ownerBufPool.Put(p.ownerBuf[:0]) //nolint:staticcheck
		p.ownerBuf = nil
	}
	if p.rdataBuf != nil {
		rdataBufPool.Put(p.rdataBuf[:0]) //nolint:staticcheck
		p.rdataBuf = nil
	}
	return firstErr
}

// record is one fully-scanned resource record, ready for the sink.
type record struct {
	owner  Name
	rrtype uint16
	class  Class
	ttl    uint32
	rdata  []byte
}

// Parse drives the token loop to completion, dispatching each record to
// options.Accept (spec.md §6 "parse(parser, user_data)"). Per-type RDATA
// parsing is out of scope (spec.md §1 Non-goals): RDATA is accepted only
// in generic notation (\#) and handed to the sink as the decoded bytes; any
// other RDATA fails with NotImplemented. No TypeDescriptor is consulted.
func (p *Parser) Parse() error {
	for {
		tok, err := p.Lex()
		if err != nil {
			return err
		}
		switch tok.Kind {
		case KindEndOfFile:
			return nil
		case KindLineFeed:
			continue
		}
		if tok.StartOfLine && tok.Kind == KindContiguous && len(tok.Text) > 0 && tok.Text[0] == '$' {
			if err := p.parseDollar(tok); err != nil {
				return err
			}
			continue
		}
		rec, err := p.parseRecord(tok)
		if err != nil {
			return err
		}
		if p.options.Accept != nil {
			if rv := p.options.Accept(p, rec.owner, rec.rrtype, rec.class, rec.ttl, rec.rdata); rv < 0 {
				e := p.raiseSemanticError("record sink rejected record with code %d", rv).(*Error)
				e.Code = Code(rv)
				return e
			}
		}
	}
}

// parseRecord consumes the owner/TTL/class/type header per spec.md §4.8,
// then the RDATA, honoring the RFC 3597 generic-notation gate.
func (p *Parser) parseRecord(first Token) (record, error) {
	f := p.file
	var owner Name
	tok := first

	if tok.StartOfLine {
		o, err := p.ScanOwner(&tok)
		if err != nil {
			return record{}, err
		}
		owner = o
		f.owner = o
		f.haveOwner = true
		var lerr error
		tok, lerr = p.Lex()
		if lerr != nil {
			return record{}, lerr
		}
	} else {
		if !f.haveOwner {
			return record{}, p.raiseSemanticError("missing owner for record not at start of line")
		}
		owner = f.owner
	}

	ttl := f.ttl
	if p.looksNumeric(tok) {
		v, err := p.ScanTTL(&tok)
		if err != nil {
			return record{}, err
		}
		ttl = v
		f.ttl = v
		f.haveTTL = true
		var lerr error
		tok, lerr = p.Lex()
		if lerr != nil {
			return record{}, lerr
		}
	} else if !f.haveTTL {
		return record{}, p.raiseSemanticError("missing TTL and no default configured")
	}

	class := Class(f.class)
	rrtype, err := p.ScanTypeOrClass(&tok, &class)
	if err != nil {
		return record{}, err
	}
	f.class = uint16(class)
	f.haveClass = true
	f.typ = rrtype

	rdataTok, err := p.Lex()
	if err != nil {
		return record{}, err
	}
	rdata, err := p.scanRDATA(rdataTok)
	if err != nil {
		return record{}, err
	}

	if err := p.skipToEndOfRecord(); err != nil {
		return record{}, err
	}

	return record{owner: owner, rrtype: rrtype, class: class, ttl: ttl, rdata: rdata}, nil
}

func (p *Parser) scanRDATA(tok Token) ([]byte, error) {
	if IsGenericNotation(tok) {
		return p.ParseGenericRDATA()
	}
	return nil, p.raise(NotImplemented, "per-type RDATA parsing is not implemented; use generic notation (\\#)")
}

// skipToEndOfRecord discards any remaining tokens through the next
// LINE_FEED (or END_OF_FILE), so an out-of-scope RDATA parser's leftover
// tokens never desynchronize the record loop.
func (p *Parser) skipToEndOfRecord() error {
	for {
		tok, err := p.Lex()
		if err != nil {
			return err
		}
		if tok.Kind == KindLineFeed || tok.Kind == KindEndOfFile {
			return nil
		}
	}
}

func (p *Parser) looksNumeric(tok Token) bool {
	if tok.Kind != KindContiguous || len(tok.Text) == 0 || tok.Text[0] < '0' || tok.Text[0] > '9' {
		return false
	}
	for _, b := range tok.Text {
		if b < '0' || b > '9' {
			if p.options.FriendlyTTLs && (b == 'w' || b == 'd' || b == 'h' || b == 'm' || b == 's' ||
				b == 'W' || b == 'D' || b == 'H' || b == 'M' || b == 'S') {
				continue
			}
			return false
		}
	}
	return true
}

// parseDollar dispatches $ORIGIN/$TTL/$INCLUDE, the directive handling
// spec.md §4.8 sketches and SPEC_FULL's supplemented feature #1 restores in
// full (original_source/src/parser.h:parse_dollar).
func (p *Parser) parseDollar(tok Token) error {
	name := string(tok.Text)
	switch name {
	case "$ORIGIN":
		arg, err := p.Lex()
		if err != nil {
			return err
		}
		if arg.Kind != KindContiguous {
			return p.raiseSyntaxError("$ORIGIN requires a domain name argument")
		}
		origin, err := CompileOrigin(string(arg.Text))
		if err != nil {
			return p.raiseSemanticError("$ORIGIN: %v", err)
		}
		p.file.origin = origin
		return p.skipToEndOfRecord()

	case "$TTL":
		arg, err := p.Lex()
		if err != nil {
			return err
		}
		ttl, err := p.ScanTTL(&arg)
		if err != nil {
			return err
		}
		p.file.ttl = ttl
		p.file.haveTTL = true
		return p.skipToEndOfRecord()

	case "$INCLUDE":
		arg, err := p.Lex()
		if err != nil {
			return err
		}
		if arg.Kind != KindContiguous {
			return p.raiseSyntaxError("$INCLUDE requires a path argument")
		}
		path := string(arg.Text)

		// The optional origin argument, if present, follows the path on
		// the includer's own line (RFC 1035 §5.1) — it must be read here,
		// before pushInclude switches p.file to the includee, or the
		// lookahead would read the wrong file's tokens entirely.
		var includeOrigin *Name
		maybeOrigin, err := p.Lex()
		if err != nil {
			return err
		}
		switch maybeOrigin.Kind {
		case KindContiguous:
			origin, err := CompileOrigin(string(maybeOrigin.Text))
			if err != nil {
				return p.raiseSemanticError("$INCLUDE origin: %v", err)
			}
			includeOrigin = &origin
			if err := p.skipToEndOfRecord(); err != nil {
				return err
			}
		case KindLineFeed, KindEndOfFile:
			// no trailing origin
		default:
			return p.raiseSyntaxError("unexpected token after $INCLUDE path")
		}

		if err := p.pushInclude(path); err != nil {
			return err
		}
		if includeOrigin != nil {
			p.file.origin = *includeOrigin
		}
		return nil

	default:
		return p.raiseSyntaxError("unknown directive %q", name)
	}
}
