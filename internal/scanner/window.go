package scanner

import (
	"errors"
	"io"
)

// WindowSize is the initial (and growth increment) capacity of a Window's
// buffer, matching ZONE_WINDOW_SIZE (256 * ZONE_BLOCK_SIZE = 16KiB) in the
// source.
const WindowSize = 256 * blockSize

// EOFState mirrors the source's end_of_file tri-state: a window can have
// more to read, have already read everything into memory (the
// zone_parse_string case), or have confirmed the underlying stream is
// exhausted.
type EOFState uint8

const (
	// HaveData means refill may still return more bytes.
	HaveData EOFState = iota
	// ReadAllData means the window was seeded with the whole input up
	// front (an in-memory string) and refill is a no-op.
	ReadAllData
	// NoMoreData means the backing reader returned io.EOF; any bytes
	// still buffered are the last there will ever be.
	NoMoreData
)

// Window owns a sliding byte buffer over a file or in-memory string (spec.md
// §4.3, component C3). It grows by WindowSize increments, refills from the
// backing io.Reader, and compacts (discards already-consumed bytes) so
// memory use stays bounded relative to how far behind the consumer is, not
// to total input size.
type Window struct {
	data   []byte
	index  int // consumer offset: bytes before this have been tokenized
	length int // filled bytes
	r      io.Reader
	closer io.Closer
	state  EOFState
}

// NewFileWindow returns a Window over r, an already opened file or other
// stream; it opens nothing itself. Close closes r.
func NewFileWindow(r io.ReadCloser) *Window {
	w := &Window{r: r, closer: r, state: HaveData}
	w.grow()
	return w
}

// NewReaderWindow wraps an arbitrary io.Reader (e.g. for $INCLUDEd files
// opened by the caller's own lookup logic).
func NewReaderWindow(r io.Reader) *Window {
	w := &Window{r: r, state: HaveData}
	if c, ok := r.(io.Closer); ok {
		w.closer = c
	}
	w.grow()
	return w
}

// NewStringWindow seeds a Window with the entirety of data, equivalent to
// the source's zone_parse_string: no further reads ever occur.
func NewStringWindow(data []byte) *Window {
	w := &Window{state: ReadAllData}
	w.data = make([]byte, len(data)+1)
	copy(w.data, data)
	w.length = len(data)
	return w
}

func (w *Window) grow() {
	newCap := len(w.data) + WindowSize
	data := make([]byte, newCap+1)
	copy(data, w.data[:w.length])
	w.data = data
}

// Refill reads more bytes from the backing reader, matching the source's
// refill(): grow first when the window is full, read into the tail,
// update length, record EOF, and keep the buffer NUL-terminated (spec
// invariant I4) so callers may always safely read one byte past length.
func (w *Window) Refill() error {
	if w.state != HaveData {
		return nil
	}
	if w.length == len(w.data)-1 {
		w.grow()
	}
	n, err := w.r.Read(w.data[w.length : len(w.data)-1])
	w.length += n
	w.data[w.length] = 0
	if err != nil {
		if errors.Is(err, io.EOF) {
			w.state = NoMoreData
			return nil
		}
		return err
	}
	if n == 0 {
		w.state = NoMoreData
	}
	return nil
}

// Compact discards bytes before keepFrom, memmove-ing the remainder to the
// start of the buffer (spec.md §4.3 "compact"). keepFrom is a byte offset
// previously returned by Index resolution; after Compact every live Index
// offset must be re-derived relative to the new base, which is why the
// scanner only calls Compact at the moment it rebuilds the tape (see
// scanner.go's shuffle step) rather than let it race with unconsumed tape
// entries.
func (w *Window) Compact(keepFrom int) {
	if keepFrom <= 0 {
		return
	}
	n := copy(w.data, w.data[keepFrom:w.length])
	w.length = n
	w.data[w.length] = 0
	w.index -= keepFrom
	if w.index < 0 {
		w.index = 0
	}
}

// Bytes returns the filled portion of the window.
func (w *Window) Bytes() []byte { return w.data[:w.length] }

// ByteAt returns the byte at offset, which may equal Length() to read the
// trailing NUL (spec invariant I4).
func (w *Window) ByteAt(offset int) byte { return w.data[offset] }

// Length returns the number of filled bytes.
func (w *Window) Length() int { return w.length }

// Index returns the consumer's current scan position.
func (w *Window) Index() int { return w.index }

// SetIndex advances the consumer's scan position.
func (w *Window) SetIndex(i int) { w.index = i }

// State returns the window's EOF state.
func (w *Window) State() EOFState { return w.state }

// Close releases the underlying reader, if any.
func (w *Window) Close() error {
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}
