package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dacapoday/u8/utf8"
	"golang.org/x/text/unicode/runenames"
)

// item is one decoded code point or ill-formed subpart.
type item struct {
	off    int
	raw    []byte
	status utf8.Status
	cp     rune
}

// next decodes one item. ok is false at end of stream. With strict set,
// an ill-formed subpart is reported as an error.
func next(it *utf8.Iter, buf []byte, strict bool) (item, bool, error) {
	off := it.Offset()
	status, cp := it.Next()
	switch status {
	case utf8.EndOfStream:
		return item{}, false, nil
	case utf8.IllFormed:
		if strict {
			return item{}, false, errAt(off)
		}
	}
	return item{
		off:    off,
		raw:    buf[off:it.Offset()],
		status: status,
		cp:     cp,
	}, true, nil
}

func decodeAll(buf []byte, bom bool) []item {
	it := utf8.Default(buf)
	if bom {
		it.SkipBOM()
	}

	var items []item
	for {
		cp, ok, _ := next(it, buf, false)
		if !ok {
			return items
		}
		items = append(items, cp)
	}
}

// format renders an item as a single line:
//
//	offset  raw bytes    status      code point  glyph  [name]
func (it item) format(names bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%08x  %-11s  %-10s  U+%04X  %s", it.off, fmt.Sprintf("% X", it.raw), it.status, it.cp, glyph(it.cp))
	if names && it.status == utf8.Ok {
		b.WriteString("  ")
		b.WriteString(name(it.cp))
	}
	return b.String()
}

// glyph returns a printable rendering of cp, or "·" for anything that
// would disturb the terminal.
func glyph(cp rune) string {
	if unicode.IsPrint(cp) {
		return string(cp)
	}
	return "·"
}

func name(cp rune) string {
	if n := runenames.Name(cp); n != "" {
		return n
	}
	return "<unnamed>"
}
