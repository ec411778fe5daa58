package parser

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dnszone/zonescan/internal/scanner"
)

// maxIncludeDepth bounds $INCLUDE recursion. The original implementation
// (original_source/src/zone.c) does not detect include cycles at all;
// spec.md §9 calls out adding a depth limit as a deliberate improvement.
const maxIncludeDepth = 16

// File is one entry in the $INCLUDE stack (spec.md §3 "File"): a name, a
// scanner bound to its own window, and the record-context fields that must
// be restored verbatim when control returns to the includer after the
// included file reaches its own end.
type File struct {
	name    string
	path    string
	scanner *scanner.Scanner

	origin Name

	grouped     bool
	startOfLine bool
	line        uint32

	owner     Name
	class     uint16
	typ       uint16
	ttl       uint32
	haveOwner bool
	haveTTL   bool
	haveClass bool

	includer *File
}

func newFile(name string, w *scanner.Window) *File {
	f := &File{
		name:        name,
		scanner:     scanner.New(),
		line:        1,
		startOfLine: true,
	}
	f.scanner.Reset(w)
	return f
}

func openZoneFile(name string) (*File, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}
	fh, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	f := newFile(name, scanner.NewFileWindow(fh))
	f.path = abs
	return f, nil
}

// consumeStartOfLine returns whether the token about to be materialized
// begins a new record, then clears the flag: only the first token following
// a LINE_FEED is start-of-line.
func (f *File) consumeStartOfLine() bool {
	v := f.startOfLine
	f.startOfLine = false
	return v
}

// updateStartOfLine recomputes start-of-line from the literal byte
// following a newline at offset, per RFC 1035 §5.1's column-0 rule: a
// record continues the previous owner iff the line begins with a blank.
// offset < 0 marks a LINE_FEED taken from the tape's line-feed sentinel,
// which records no window position; start-of-line is then set true without
// looking at the following byte. A newline that is the last filled byte of
// the window leaves start-of-line false.
func (f *File) updateStartOfLine(w *scanner.Window, offset int) bool {
	if offset < 0 || offset+1 >= w.Length() {
		f.startOfLine = offset < 0
		return f.startOfLine
	}
	f.startOfLine = classifyByte(w.ByteAt(offset+1)) != lexBlank
	return f.startOfLine
}

func (f *File) close() error {
	return f.scanner.Window().Close()
}

// pushInclude opens path as a new current file, chaining f as its includer.
// Depth is tracked by walking the includer chain length.
func (p *Parser) pushInclude(path string) error {
	depth := 0
	for cur := p.file; cur != nil; cur = cur.includer {
		depth++
	}
	if depth >= maxIncludeDepth {
		return p.raiseNotPermitted("include depth exceeds %d", maxIncludeDepth)
	}
	if p.options.NoIncludes {
		return p.raiseSemanticError("includes are not permitted")
	}

	next, err := openZoneFile(path)
	if err != nil {
		return p.raiseIOError("open include %q: %v", path, err)
	}
	next.origin = p.file.origin
	next.ttl = p.file.ttl
	next.haveTTL = p.file.haveTTL
	next.class = p.file.class
	next.haveClass = p.file.haveClass
	next.includer = p.file
	p.file = next
	return nil
}

// popInclude closes the current file and resumes the includer, restoring
// its saved owner/class/ttl/origin context exactly as it was before the
// $INCLUDE was honored.
func (p *Parser) popInclude() {
	done := p.file
	p.file = done.includer
	_ = done.close()
}
