package scanner

import "sync"

// Scanner drives the block scanner over a Window, producing Index entries
// on a Tape (spec.md components C3-C5). It carries escape/quote/comment
// state across blocks and across refills, so a caller may consume tokens
// one at a time with bounded memory regardless of input size.
type Scanner struct {
	window *Window
	tape   Tape
	carry  carry
}

var scannerPool = sync.Pool{
	New: func() interface{} { return &Scanner{} },
}

// New returns a Scanner from the pool, not yet bound to a window; call
// Reset before use.
func New() *Scanner {
	return scannerPool.Get().(*Scanner)
}

// Reset rebinds the scanner to a fresh window, clearing all carried state.
// Each $INCLUDEd file gets its own Scanner so its carry state never leaks
// into the file that included it (spec.md §4.7).
func (s *Scanner) Reset(w *Window) {
	s.window = w
	s.tape.Reset()
	s.carry = carry{}
}

// Release clears references and returns the Scanner to the pool.
func (s *Scanner) Release() {
	s.window = nil
	s.tape.Reset()
	s.carry = carry{}
	scannerPool.Put(s)
}

// Window returns the window the scanner is currently bound to.
func (s *Scanner) Window() *Window { return s.window }

// Next returns the next Index, scanning and refilling the window as needed.
func (s *Scanner) Next() (Index, error) {
	if s.tape.Empty() {
		if err := s.fill(); err != nil {
			return Index{}, err
		}
	}
	idx := s.tape.Peek()
	s.tape.Advance()
	return idx, nil
}

// ByteAt resolves an Index's offset to the byte it names, following the
// line-feed sentinel to '\n'.
func (s *Scanner) ByteAt(idx Index) byte {
	if idx.IsLineFeed() {
		return '\n'
	}
	return s.window.ByteAt(int(idx.Offset))
}

// fill produces at least one tape entry, or determines that no more bytes
// will ever arrive and appends the terminal sentinel (an offset pointing at
// the window's trailing NUL, spec invariant I4). It is the Go analogue of
// the source's step()'s shuffle/scan/terminate sequence, simplified because
// storing offsets rather than raw pointers (spec.md §9) means compaction
// never needs to rebase a live tape entry: fill only ever runs when the
// tape is fully drained, so every index previously produced has already
// been consumed, and nothing is lost by discarding window bytes before the
// consumer's current position.
func (s *Scanner) fill() error {
	w := s.window
	for s.tape.Empty() {
		avail := w.Length() - w.Index()

		switch {
		case avail == 0 && w.State() == HaveData:
			w.Compact(w.Index())
			if err := w.Refill(); err != nil {
				return err
			}
		case avail == 0:
			s.tape.Append(Index{Offset: uint32(w.Length())})
			return nil
		case avail >= blockSize:
			s.scanFullBlock()
		case w.State() == HaveData:
			w.Compact(w.Index())
			if err := w.Refill(); err != nil {
				return err
			}
		default:
			s.scanTailBlock(avail)
		}
	}
	return nil
}

func (s *Scanner) scanFullBlock() {
	w := s.window
	base := w.Index()

	var data [blockSize]byte
	copy(data[:], w.Bytes()[base:base+blockSize])

	blk := scanBlock(&data, &s.carry)
	tokenize(base, &blk, &s.tape, &s.carry)
	w.SetIndex(base + blockSize)
}

// scanTailBlock handles the final, shorter-than-blockSize remainder once
// the window's backing reader is exhausted: zero-pad it, scan, then clear
// any structural bits the zero padding itself produced past the real data
// (spec.md §4.5 "Termination").
func (s *Scanner) scanTailBlock(avail int) {
	w := s.window
	base := w.Index()

	var data [blockSize]byte
	copy(data[:], w.Bytes()[base:base+avail])

	blk := scanBlock(&data, &s.carry)

	var keep uint64
	if avail >= 64 {
		keep = ^uint64(0)
	} else {
		keep = (uint64(1) << uint(avail)) - 1
	}
	blk.bits &= keep
	blk.contiguous &= keep

	tokenize(base, &blk, &s.tape, &s.carry)
	w.SetIndex(base + avail)
}
