// Package utf8 decodes UTF-8 byte ranges into Unicode code points.
//
// Ill-formed input is handled the way the Unicode Standard recommends
// ("maximal subparts"): every maximal prefix of a would-be valid sequence
// is reported once as ill-formed and decoding resumes at the first byte
// that could not belong to it. Overlong forms, surrogates and values above
// U+10FFFF are rejected by checking the first continuation byte against a
// range specific to the lead byte.
//
// Usage:
//
//	it := utf8.New(buf, utf8.ReplacementChar, utf8.EOF)
//	it.SkipBOM()
//	for {
//	    status, cp := it.Next()
//	    if status == utf8.EndOfStream {
//	        break
//	    }
//	    // status is Ok or IllFormed; cp is the code point or the replacement
//	}
package utf8

import (
	"iter"

	"github.com/dacapoday/u8"
)

type (
	Status    = u8.Status
	BOMStatus = u8.BOMStatus
)

const (
	Ok          = u8.Ok
	IllFormed   = u8.IllFormed
	EndOfStream = u8.EndOfStream

	Skipped    = u8.Skipped
	NotSkipped = u8.NotSkipped
)

// Iter is a cursor over a caller-owned byte range.
//
// Iter never writes to the range and holds no other memory. It is not safe
// for concurrent use, but any number of Iters may share one range.
//
// The zero value is an iterator over an empty range that reports
// EndOfStream with a zero EOF value.
type Iter struct {
	buf  []byte
	cur  int
	repl rune
	eof  rune
}

var _ u8.Decoder = (*Iter)(nil)

// New returns an iterator over buf positioned at its first byte.
// repl is produced for every ill-formed subpart and eof once buf is exhausted.
// buf may be nil.
func New(buf []byte, repl, eof rune) *Iter {
	it := new(Iter)
	it.Load(buf, repl, eof)
	return it
}

// Default returns an iterator producing ReplacementChar and EOF.
func Default(buf []byte) *Iter {
	return New(buf, ReplacementChar, EOF)
}

// NewRange returns an iterator over buf[start:end].
// Offsets reported by the iterator are relative to start.
func NewRange(buf []byte, start, end int, repl, eof rune) (*Iter, error) {
	if start < 0 || start > end || end > len(buf) {
		return nil, u8.ErrOutOfRange
	}
	return New(buf[start:end:end], repl, eof), nil
}

// Load reinitializes the iterator in place.
func (it *Iter) Load(buf []byte, repl, eof rune) {
	it.buf = buf
	it.cur = 0
	it.repl = repl
	it.eof = eof
}

// Reset moves the cursor back to the start of the range.
func (it *Iter) Reset() {
	it.cur = 0
}

// Offset returns the cursor position relative to the start of the range.
func (it *Iter) Offset() int {
	return it.cur
}

// Len returns the length of the range in bytes.
func (it *Iter) Len() int {
	return len(it.buf)
}

// Remaining returns the number of bytes not yet consumed.
func (it *Iter) Remaining() int {
	return len(it.buf) - it.cur
}

// Next decodes the code point at the cursor.
//
// Returns (Ok, cp) and advances past the sequence on success.
// Returns (IllFormed, repl) on an ill-formed subpart: an invalid lead byte is
// skipped, while a bad or missing continuation byte is left under the
// cursor. Returns (EndOfStream, eof) without moving once the range is
// exhausted.
//
// A byte-order mark is not special here; it decodes as U+FEFF.
func (it *Iter) Next() (Status, rune) {
	assertCursor("Next", it.cur, len(it.buf))

	cp, next, status, _ := decode(it.buf, it.cur)
	it.cur = next
	switch status {
	case IllFormed:
		return status, it.repl
	case EndOfStream:
		return status, it.eof
	}
	return Ok, cp
}

// Peek is Next without moving the cursor.
func (it *Iter) Peek() (Status, rune) {
	cur := it.cur
	status, cp := it.Next()
	it.cur = cur
	return status, cp
}

// SkipBOM advances past a leading byte-order mark, if any.
//
// The cursor must be at the start of the range. Returns NotSkipped, with the
// cursor unchanged, when the range is shorter than BOMLen or does not start
// with BOM.
func (it *Iter) SkipBOM() BOMStatus {
	assertAtStart("SkipBOM", it.cur)

	if it.cur != 0 || len(it.buf) < BOMLen {
		return NotSkipped
	}
	if string(it.buf[:BOMLen]) != BOM {
		return NotSkipped
	}
	it.cur = BOMLen
	return Skipped
}

// All returns a sequence of (offset, code point) pairs from the cursor to the
// end of the range. Ill-formed subparts yield the replacement value.
// The iterator is advanced as the sequence is consumed.
func (it *Iter) All() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for {
			off := it.cur
			status, cp := it.Next()
			if status == EndOfStream {
				return
			}
			if !yield(off, cp) {
				return
			}
		}
	}
}
