package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"
)

type viewer struct {
	items  []item
	names  bool
	top    int // index of the first visible item
	width  int
	height int
	status string
}

// updateSize checks terminal size and returns true if changed.
func (v *viewer) updateSize() bool {
	w, h, err := term.GetSize(int(os.Stdin.Fd()))
	if err != nil {
		w, h = 80, 24
	}
	if w == v.width && h == v.height {
		return false
	}
	v.width, v.height = w, h
	v.clamp()
	return true
}

func (v *viewer) lines() int {
	return max(v.height-4, 1) // title + separator + separator + status
}

// clamp keeps at least one item visible.
func (v *viewer) clamp() {
	v.top = min(v.top, len(v.items)-1)
	v.top = max(v.top, 0)
}

func (v *viewer) atStart() bool { return v.top == 0 }

func (v *viewer) atEnd() bool { return v.top+v.lines() >= len(v.items) }

func (v *viewer) down() {
	v.top++
	v.clamp()
}

func (v *viewer) up() {
	v.top--
	v.clamp()
}

func (v *viewer) pageDown() {
	v.top += v.lines() - 1
	v.clamp()
}

func (v *viewer) pageUp() {
	v.top -= v.lines() - 1
	v.clamp()
}

func (v *viewer) first() {
	v.top = 0
}

func (v *viewer) last() {
	// back up to show a full screen
	v.top = len(v.items) - v.lines()
	v.clamp()
}

// seek positions the view at the item covering byte offset off.
func (v *viewer) seek(off int) bool {
	i := sort.Search(len(v.items), func(i int) bool {
		it := v.items[i]
		return it.off+len(it.raw) > off
	})
	if i == len(v.items) {
		return false
	}
	v.top = i
	return true
}

func (v *viewer) search(reader *bufio.Reader) {
	// show search prompt
	fmt.Print("\033[?25h") // show cursor
	fmt.Printf("\033[%d;1H\033[K/", v.height)

	// read search input
	var input []byte
	for {
		b, err := reader.ReadByte()
		if err != nil {
			break
		}
		if b == 27 || b == 3 { // Esc or Ctrl+C
			fmt.Print("\033[?25l")
			v.status = ""
			return
		}
		if b == 13 || b == 10 { // Enter
			break
		}
		if b == 127 || b == 8 { // Backspace
			if len(input) > 0 {
				input = input[:len(input)-1]
				fmt.Print("\b \b")
			}
			continue
		}
		if b >= 32 && b < 127 {
			input = append(input, b)
			fmt.Print(string(b))
		}
	}
	fmt.Print("\033[?25l")

	if len(input) == 0 {
		v.status = ""
		return
	}

	off, err := parseOffset(string(input))
	switch {
	case err != nil:
		v.status = fmt.Sprintf("bad offset: %s", input)
	case v.seek(off):
		v.status = fmt.Sprintf("jumped to: %#x", off)
	default:
		v.status = "not found"
	}
}

func (v *viewer) render() {
	var b strings.Builder

	// move to top (no clear)
	b.WriteString("\033[H")

	// header
	b.WriteString("[ u8view ]\033[K\r\n")
	b.WriteString(strings.Repeat("─", v.width))
	b.WriteString("\033[K\r\n")

	lines := v.lines()
	for i := 0; i < lines; i++ {
		if n := v.top + i; n < len(v.items) {
			b.WriteString(truncate(v.items[n].format(v.names), v.width))
		} else {
			b.WriteString("~")
		}
		b.WriteString("\033[K\r\n")
	}

	// footer
	b.WriteString(strings.Repeat("─", v.width))
	b.WriteString("\033[K\r\n")

	// status line
	pos := ""
	if v.atStart() && v.atEnd() {
		pos = "[all]"
	} else if v.atStart() {
		pos = "[top]"
	} else if v.atEnd() {
		pos = "[end]"
	}

	if v.status != "" {
		b.WriteString(" ")
		b.WriteString(v.status)
		b.WriteString(" ")
		b.WriteString(pos)
	} else {
		b.WriteString(" j/k:scroll g/G:jump /:offset q:quit ")
		b.WriteString(pos)
	}
	b.WriteString("\033[K")

	fmt.Print(b.String())
}

// truncate cuts s to at most width runes.
func truncate(s string, width int) string {
	runes := []rune(s)
	if width < 4 || len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
