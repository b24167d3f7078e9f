// u8view is a simple CLI tool for browsing the code points of a UTF-8 file.
//
// Usage:
//
//	u8view <filename>                # interactive mode
//	u8view -l <filename>             # list mode (print all)
//	u8view -l -n 20 -names <file>    # list first 20 code points with names
//	u8view -l -strict <filename>     # fail on the first ill-formed subpart
//	u8view -sanitize <filename>      # write the file with ill-formed subparts replaced
//
// Interactive mode:
//
//	j/↓    scroll down
//	k/↑    scroll up
//	g      jump to first
//	G      jump to last
//	/      jump to byte offset (decimal or 0x-hex)
//	q/Esc  quit
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dacapoday/u8"
	"github.com/dacapoday/u8/utf8"
	"golang.org/x/term"
	"golang.org/x/text/transform"
)

type options struct {
	count  int
	bom    bool
	names  bool
	strict bool
}

func main() {
	listFlag := flag.Bool("l", false, "list mode (non-interactive)")
	countFlag := flag.Int("n", 0, "number of code points (0 = all)")
	bomFlag := flag.Bool("bom", false, "skip a leading byte-order mark")
	namesFlag := flag.Bool("names", false, "show Unicode character names")
	strictFlag := flag.Bool("strict", false, "fail on the first ill-formed subpart (list mode)")
	sanitizeFlag := flag.Bool("sanitize", false, "write sanitized UTF-8 to stdout")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: u8view [-l] [-n count] [-bom] [-names] [-strict] [-sanitize] <filename>")
		os.Exit(1)
	}

	buf, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fatal(err)
	}

	if *sanitizeFlag {
		if err := sanitize(buf); err != nil {
			fatal(err)
		}
		return
	}

	opts := options{
		count:  *countFlag,
		bom:    *bomFlag,
		names:  *namesFlag,
		strict: *strictFlag,
	}

	if *listFlag || !term.IsTerminal(int(os.Stdin.Fd())) {
		w := bufio.NewWriter(os.Stdout)
		err := runList(w, buf, opts)
		if ferr := w.Flush(); err == nil {
			err = ferr
		}
		if err != nil {
			fatal(err)
		}
		return
	}

	if err := runInteractive(buf, opts); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func sanitize(buf []byte) error {
	w := transform.NewWriter(os.Stdout, utf8.Sanitizer{})
	if _, err := w.Write(buf); err != nil {
		return err
	}
	return w.Close()
}

func runList(w *bufio.Writer, buf []byte, opts options) error {
	it := utf8.Default(buf)
	if opts.bom {
		it.SkipBOM()
	}

	n := 0
	for {
		if opts.count > 0 && n >= opts.count {
			return nil
		}
		cp, ok, err := next(it, buf, opts.strict)
		if err != nil || !ok {
			return err
		}
		fmt.Fprintln(w, cp.format(opts.names))
		n++
	}
}

func runInteractive(buf []byte, opts options) error {
	items := decodeAll(buf, opts.bom)

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	v := &viewer{
		items: items,
		names: opts.names,
	}
	v.updateSize()

	fmt.Print("\033[?25l\033[2J")             // hide cursor, clear screen once
	defer fmt.Print("\033[?25h\033[2J\033[H") // show cursor, clear screen

	reader := bufio.NewReader(os.Stdin)

	for {
		v.updateSize()
		v.render()

		b, err := reader.ReadByte()
		if err != nil {
			return nil
		}

		v.status = "" // clear status on any input

		switch b {
		case 'q', 3, 27: // q, Ctrl+C, Esc
			if b == 27 && reader.Buffered() > 0 {
				// escape sequence
				b2, _ := reader.ReadByte()
				if b2 == '[' {
					b3, _ := reader.ReadByte()
					switch b3 {
					case 'A': // up
						v.up()
					case 'B': // down
						v.down()
					case '5': // page up
						reader.ReadByte()
						v.pageUp()
					case '6': // page down
						reader.ReadByte()
						v.pageDown()
					}
				}
				continue
			}
			return nil
		case 'j':
			v.down()
		case 'k':
			v.up()
		case 'g':
			v.first()
		case 'G':
			v.last()
		case '/':
			v.search(reader)
		}
	}
}

// parseOffset accepts a decimal or 0x-prefixed hexadecimal byte offset.
func parseOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		n, err := strconv.ParseUint(rest, 16, 31)
		return int(n), err
	}
	n, err := strconv.ParseUint(s, 10, 31)
	return int(n), err
}

// errAt wraps ErrIllFormed with the offending offset.
func errAt(off int) error {
	return fmt.Errorf("%w at offset %d", u8.ErrIllFormed, off)
}
