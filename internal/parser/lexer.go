package parser

import (
	"fmt"

	"github.com/dnszone/zonescan/internal/scanner"
)

// classify mirrors internal/scanner's byte classification (spec.md §4.1's
// classify[256] table) for the materializer's own purposes: deciding where
// a CONTIGUOUS run or QUOTED payload ends, and whether the byte following a
// LINE_FEED starts a new record (RFC 1035 §5.1's column-0 rule). The
// scanner's structural bitmasks only survive for the 64-byte block that
// produced them, so the materializer re-derives run boundaries directly
// from the window's bytes rather than threading block-local state forward.
type lexClass uint8

const (
	lexOther lexClass = iota
	lexBlank
	lexSpecial
)

func classifyByte(b byte) lexClass {
	switch b {
	case ' ', '\t':
		return lexBlank
	case '\n', '"', '(', ')', ';':
		return lexSpecial
	default:
		return lexOther
	}
}

// Lex drains the current file's tape and returns the next token, handling
// parenthesized grouping, line accounting, and include-file popping. This
// is the Go port of scanner.h's step(), the state machine spec.md §4.6
// tabulates; see DESIGN.md for why it is authored fresh rather than adapted
// from the teacher's JSON tree-building parseValue/parseObject, which has
// no equivalent flat token-emission loop to generalize from.
func (p *Parser) Lex() (Token, error) {
	if p.unlexed != nil {
		tok := *p.unlexed
		p.unlexed = nil
		return tok, nil
	}
	for {
		f := p.file
		idx, err := f.scanner.Next()
		if err != nil {
			return Token{}, p.raiseIOError("%v", err)
		}

		w := f.scanner.Window()
		if idx.IsLineFeed() {
			// The line-feed sentinel: a record-ending newline, plus
			// idx.Lines newlines buffered from inside a preceding
			// multi-line quoted or contiguous run (spec.md §3 "Indexer
			// state" lines).
			f.line += idx.Lines + 1
			if f.grouped {
				continue
			}
			tok := Token{Kind: KindLineFeed, Line: f.line}
			f.updateStartOfLine(w, -1)
			return tok, nil
		}

		offset := int(idx.Offset)
		if offset == w.Length() {
			// Final EOF: internal/scanner only ever emits this sentinel
			// once the window's backing reader is exhausted for good
			// (see scanner.Scanner.fill's simplified shuffle/rescan).
			if f.grouped {
				return Token{}, p.raiseSyntaxError("missing closing brace")
			}
			if f.includer != nil {
				p.popInclude()
				continue
			}
			return Token{Kind: KindEndOfFile, Line: f.line}, nil
		}

		b := w.ByteAt(offset)
		switch b {
		case '\n':
			f.line++
			startOfLine := f.updateStartOfLine(w, offset)
			_ = startOfLine
			if f.grouped {
				continue
			}
			return Token{Kind: KindLineFeed, Line: f.line}, nil

		case '"':
			end, err := scanQuoted(w, offset+1)
			if err != nil {
				return Token{}, p.raiseSyntaxError("%v", err)
			}
			// Consume the tape entry the scanner produced for the closing
			// quote; it must not be re-interpreted as its own token.
			if _, err := f.scanner.Next(); err != nil {
				return Token{}, p.raiseIOError("%v", err)
			}
			tok := Token{Kind: KindQuoted, Text: w.Bytes()[offset+1 : end], Line: f.line}
			tok.StartOfLine = f.consumeStartOfLine()
			return tok, nil

		case '(':
			if f.grouped {
				return Token{}, p.raiseSyntaxError("nested opening brace")
			}
			f.grouped = true
			continue

		case ')':
			if !f.grouped {
				return Token{}, p.raiseSyntaxError("missing opening brace")
			}
			f.grouped = false
			continue

		default:
			end := scanContiguous(w, offset)
			tok := Token{Kind: KindContiguous, Text: w.Bytes()[offset:end], Line: f.line}
			tok.StartOfLine = f.consumeStartOfLine()
			return tok, nil
		}
	}
}

// scanContiguous finds the end of the contiguous run starting at start,
// treating an escaped byte (one immediately following an unescaped
// backslash) as contiguous regardless of its own class — spec.md P3
// requires `\c` to tokenize as a single CONTIGUOUS token for every c.
func scanContiguous(w *scanner.Window, start int) int {
	i := start
	n := w.Length()
	for i < n {
		b := w.ByteAt(i)
		if b == '\\' && i+1 < n {
			i += 2
			continue
		}
		if classifyByte(b) != lexOther {
			break
		}
		i++
	}
	return i
}

// scanQuoted finds the offset of the closing, unescaped double quote
// starting the search at start (just past the opening quote).
func scanQuoted(w *scanner.Window, start int) (int, error) {
	i := start
	n := w.Length()
	for i < n {
		b := w.ByteAt(i)
		if b == '\\' && i+1 < n {
			i += 2
			continue
		}
		if b == '"' {
			return i, nil
		}
		i++
	}
	return 0, fmt.Errorf("unterminated quoted string")
}

// unlex pushes tok back so the next Lex call returns it again, for the one
// case the record loop needs lookahead: generic-RDATA hex scanning stopping
// on a non-CONTIGUOUS token it must not consume (glue.go's
// ParseGenericRDATA).
func (p *Parser) unlex(tok Token) {
	p.unlexed = &tok
}
