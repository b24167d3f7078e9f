// Package u8 defines the shared vocabulary for decoding UTF-8 byte ranges
// into Unicode code points.
//
// The decoder itself lives in package utf8; this package holds the status
// values and the minimal Decoder interface so that consumers can depend on
// the contract without the implementation.
package u8

// Status reports the outcome of a single decode step.
type Status int

const (
	// Ok means a well-formed code point was decoded.
	Ok Status = iota
	// IllFormed means a maximal ill-formed subpart was consumed and the
	// replacement value was produced in its place.
	IllFormed
	// EndOfStream means the range is exhausted and the EOF value was produced.
	// The cursor does not move.
	EndOfStream
)

func (s Status) String() string {
	switch s {
	case Ok:
		return "ok"
	case IllFormed:
		return "ill-formed"
	case EndOfStream:
		return "eos"
	}
	return "unknown"
}

// BOMStatus reports whether a byte-order mark was skipped.
type BOMStatus int

const (
	Skipped BOMStatus = iota
	NotSkipped
)

func (s BOMStatus) String() string {
	if s == Skipped {
		return "skipped"
	}
	return "not-skipped"
}

// Decoder yields code points from a byte range, one per call.
// The Decoder interface is the minimum implementation required.
//
// The *utf8.Iter type satisfies this interface.
type Decoder interface {
	// Next decodes the code point at the cursor and advances past it.
	Next() (Status, rune)

	// Peek behaves like Next but leaves the cursor where it was.
	Peek() (Status, rune)

	// Offset returns the cursor position relative to the start of the range.
	Offset() int
}
