package utf8

// The generic continuation byte range.
const (
	locb = 0x80 // 1000 0000
	hicb = 0xBF // 1011 1111
)

// lead classifies the first byte of a UTF-8 sequence.
// Each kind carries its own first-continuation range.
type lead uint8

const (
	leadInvalid lead = iota // 80..C1, F5..FF
	leadASCII               // 00..7F
	lead2                   // C2..DF
	lead3E0                 // E0
	lead3                   // E1..EC, EE..EF
	lead3ED                 // ED
	lead4F0                 // F0
	lead4                   // F1..F3
	lead4F4                 // F4
)

// leadInfo describes how a lead kind is decoded.
//
// k is the number of continuation bytes, mask extracts the payload bits of
// the lead byte, and lo..hi is the valid range of the first continuation
// byte. Subsequent continuation bytes always use locb..hicb.
type leadInfo struct {
	k    uint8
	mask byte
	lo   byte
	hi   byte
}

var leads = [...]leadInfo{
	leadInvalid: {},
	leadASCII:   {k: 0, mask: 0x7F},
	lead2:       {k: 1, mask: 0x1F, lo: locb, hi: hicb},
	lead3E0:     {k: 2, mask: 0x0F, lo: 0xA0, hi: hicb}, // overlong below A0
	lead3:       {k: 2, mask: 0x0F, lo: locb, hi: hicb},
	lead3ED:     {k: 2, mask: 0x0F, lo: locb, hi: 0x9F}, // surrogates above 9F
	lead4F0:     {k: 3, mask: 0x07, lo: 0x90, hi: hicb}, // overlong below 90
	lead4:       {k: 3, mask: 0x07, lo: locb, hi: hicb},
	lead4F4:     {k: 3, mask: 0x07, lo: locb, hi: 0x8F}, // beyond U+10FFFF above 8F
}

func classify(b byte) lead {
	switch {
	case b <= 0x7F:
		return leadASCII
	case b < 0xC2:
		return leadInvalid
	case b <= 0xDF:
		return lead2
	case b == 0xE0:
		return lead3E0
	case b == 0xED:
		return lead3ED
	case b <= 0xEF:
		return lead3
	case b == 0xF0:
		return lead4F0
	case b <= 0xF3:
		return lead4
	case b == 0xF4:
		return lead4F4
	default:
		return leadInvalid
	}
}

// decode reads one code point from buf at index i.
//
// It returns the code point (meaningful only for Ok), the index at which
// the next decode starts, the status, and whether an ill-formed result was
// caused by buf ending inside an otherwise valid prefix.
//
// An invalid lead byte is consumed. A continuation byte that fails its range
// check is not: next points at it so that it is reread as a lead byte.
func decode(buf []byte, i int) (cp rune, next int, status Status, short bool) {
	if i >= len(buf) {
		return 0, i, EndOfStream, false
	}

	l := classify(buf[i])
	if l == leadInvalid {
		return 0, i + 1, IllFormed, false
	}

	info := &leads[l]
	n := 6 * uint(info.k)
	cp = rune(buf[i]&info.mask) << n
	i++

	lo, hi := info.lo, info.hi
	for n >= 6 {
		if i >= len(buf) {
			return 0, i, IllFormed, true
		}
		b := buf[i]
		if b < lo || b > hi {
			return 0, i, IllFormed, false
		}
		lo, hi = locb, hicb

		n -= 6
		cp |= rune(b&0x3F) << n
		i++
	}

	return cp, i, Ok, false
}
