package utf8

// BOM is the UTF-8 encoding of U+FEFF, the byte-order mark.
const (
	BOM    = "\xEF\xBB\xBF"
	BOMLen = 3
)

// ReplacementCharBytes is U+FFFD REPLACEMENT CHARACTER in UTF-8 encoding.
const (
	ReplacementCharBytes = "\xEF\xBF\xBD"
	ReplacementCharLen   = 3
)

const (
	// ReplacementChar is the conventional replacement value.
	ReplacementChar rune = 0xFFFD

	// MaxRune is the largest Unicode code point.
	MaxRune rune = 0x10FFFF

	// EOF is the conventional end-of-stream value. It lies outside the
	// Unicode range, so it can never collide with a decoded code point.
	EOF rune = -1
)
