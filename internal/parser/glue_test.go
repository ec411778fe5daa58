package parser

import (
	"bytes"
	"testing"
)

func TestCompileOrigin_RootAndTrailingDot(t *testing.T) {
	n, err := CompileOrigin(".")
	if err != nil {
		t.Fatalf("CompileOrigin(\".\"): %v", err)
	}
	if !bytes.Equal(n.Wire, []byte{0}) {
		t.Errorf("root wire = %v, want [0]", n.Wire)
	}

	n, err = CompileOrigin("example.com.")
	if err != nil {
		t.Fatalf("CompileOrigin: %v", err)
	}
	want := []byte{7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}
	if !bytes.Equal(n.Wire, want) {
		t.Errorf("wire = %v, want %v", n.Wire, want)
	}
	if n.String() != "example.com." {
		t.Errorf("String() = %q, want %q", n.String(), "example.com.")
	}
}

func TestCompileOrigin_LabelTooLong(t *testing.T) {
	long := bytes.Repeat([]byte("a"), 64)
	_, err := CompileOrigin(string(long) + ".com.")
	if err == nil {
		t.Fatal("expected an error for a 64-octet label")
	}
}

func TestCompileOrigin_EscapedDecimalByte(t *testing.T) {
	n, err := CompileOrigin(`\065bc.com.`)
	if err != nil {
		t.Fatalf("CompileOrigin: %v", err)
	}
	// \065 decodes to 'A' (65 decimal).
	if n.Wire[0] != 3 || n.Wire[1] != 'A' {
		t.Errorf("wire = %v, want label starting 3,'A'", n.Wire)
	}
}

func TestScanTTL_FriendlyDuration(t *testing.T) {
	p := &Parser{options: Options{FriendlyTTLs: true}}
	tok := Token{Kind: KindContiguous, Text: []byte("1h2m3s")}
	got, err := p.ScanTTL(&tok)
	if err != nil {
		t.Fatalf("ScanTTL: %v", err)
	}
	want := uint32(3600 + 120 + 3)
	if got != want {
		t.Errorf("ScanTTL(%q) = %d, want %d", tok.Text, got, want)
	}
}

func TestScanTTL_FriendlyDurationRejectedWithoutOption(t *testing.T) {
	p := &Parser{options: Options{}}
	tok := Token{Kind: KindContiguous, Text: []byte("1h")}
	if _, err := p.ScanTTL(&tok); err == nil {
		t.Fatal("expected an error without FriendlyTTLs set")
	}
}

func TestScanTTL_PlainDecimal(t *testing.T) {
	p := &Parser{options: Options{}}
	tok := Token{Kind: KindContiguous, Text: []byte("3600")}
	got, err := p.ScanTTL(&tok)
	if err != nil {
		t.Fatalf("ScanTTL: %v", err)
	}
	if got != 3600 {
		t.Errorf("got %d, want 3600", got)
	}
}

// P6 (partial, the in-scope half): generic RDATA notation round-trips
// through the hex decoder exactly, for the out-of-scope RDATA boundary
// (actual per-type wire<->text equivalence lives in the caller's
// TypeDescriptor, which is out of this package's scope per spec.md §1).
func TestParseGenericRDATA_RoundTrip(t *testing.T) {
	p, err := OpenString("test", []byte(`\# 4 cafebabe`+"\n"), Options{Origin: "example.com."}, nil)
	if err != nil {
		t.Fatalf("OpenString: %v", err)
	}
	defer p.Close()

	tok, err := p.Lex()
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if !IsGenericNotation(tok) {
		t.Fatalf("expected generic notation marker, got %q", tok.Text)
	}
	data, err := p.ParseGenericRDATA()
	if err != nil {
		t.Fatalf("ParseGenericRDATA: %v", err)
	}
	want := []byte{0xca, 0xfe, 0xba, 0xbe}
	if !bytes.Equal(data, want) {
		t.Errorf("data = %x, want %x", data, want)
	}
}

func TestParseGenericRDATA_LengthMismatchIsSemanticError(t *testing.T) {
	p, err := OpenString("test", []byte(`\# 10 cafebabe`+"\n"), Options{Origin: "example.com."}, nil)
	if err != nil {
		t.Fatalf("OpenString: %v", err)
	}
	defer p.Close()

	if _, err := p.Lex(); err != nil {
		t.Fatalf("Lex: %v", err)
	}
	_, err = p.ParseGenericRDATA()
	if err == nil {
		t.Fatal("expected a length-mismatch error")
	}
	zerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if zerr.Code != SemanticError {
		t.Errorf("Code = %v, want SemanticError", zerr.Code)
	}
}

func TestScanTypeOrClass_ClassThenType(t *testing.T) {
	p, err := OpenString("test", []byte("IN A\n"), Options{Origin: "example.com."}, nil)
	if err != nil {
		t.Fatalf("OpenString: %v", err)
	}
	defer p.Close()

	tok, err := p.Lex()
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	var class Class
	rrtype, err := p.ScanTypeOrClass(&tok, &class)
	if err != nil {
		t.Fatalf("ScanTypeOrClass: %v", err)
	}
	if class != ClassIN {
		t.Errorf("class = %v, want ClassIN", class)
	}
	if rrtype != 1 {
		t.Errorf("rrtype = %d, want 1 (A)", rrtype)
	}
}

func TestScanTypeOrClass_GenericTypeMnemonic(t *testing.T) {
	p, err := OpenString("test", []byte("TYPE65280\n"), Options{Origin: "example.com."}, nil)
	if err != nil {
		t.Fatalf("OpenString: %v", err)
	}
	defer p.Close()

	tok, err := p.Lex()
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	var class Class
	rrtype, err := p.ScanTypeOrClass(&tok, &class)
	if err != nil {
		t.Fatalf("ScanTypeOrClass: %v", err)
	}
	if rrtype != 65280 {
		t.Errorf("rrtype = %d, want 65280", rrtype)
	}
}
