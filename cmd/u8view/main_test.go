package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/dacapoday/u8"
	"github.com/stretchr/testify/require"
)

func list(t *testing.T, buf string, opts options) (string, error) {
	t.Helper()
	var out bytes.Buffer
	w := bufio.NewWriter(&out)
	err := runList(w, []byte(buf), opts)
	require.NoError(t, w.Flush())
	return out.String(), err
}

func TestRunList(t *testing.T) {
	out, err := list(t, "\xEF\xBB\xBFA\xFF\xC3\xA9", options{bom: true, names: true})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "00000003  41           ok          U+0041  A  LATIN CAPITAL LETTER A", lines[0])
	require.Equal(t, "00000004  FF           ill-formed  U+FFFD  �", lines[1])
	require.Equal(t, "00000005  C3 A9        ok          U+00E9  é  LATIN SMALL LETTER E WITH ACUTE", lines[2])
}

func TestRunListBOMKept(t *testing.T) {
	out, err := list(t, "\xEF\xBB\xBF", options{})
	require.NoError(t, err)
	require.Equal(t, "00000000  EF BB BF     ok          U+FEFF  ·\n", out)
}

func TestRunListCount(t *testing.T) {
	out, err := list(t, "abcdef", options{count: 2})
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out, "\n"))
}

func TestRunListStrict(t *testing.T) {
	out, err := list(t, "ab\xE2\x82c", options{strict: true})
	require.ErrorIs(t, err, u8.ErrIllFormed)
	require.EqualError(t, err, "ill-formed utf-8 at offset 2")
	require.Equal(t, 2, strings.Count(out, "\n"))
}

func TestDecodeAll(t *testing.T) {
	items := decodeAll([]byte("\xEF\xBB\xBFx\xE2\x82y"), true)
	require.Len(t, items, 3)

	require.Equal(t, 3, items[0].off)
	require.Equal(t, []byte("\xE2\x82"), items[1].raw)
	require.Equal(t, u8.IllFormed, items[1].status)
	require.Equal(t, 6, items[2].off)

	require.Empty(t, decodeAll(nil, true))
}

func TestParseOffset(t *testing.T) {
	testCases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"0x2A", 42, true},
		{" 0X10 ", 16, true},
		{"-1", 0, false},
		{"0xZZ", 0, false},
		{"", 0, false},
	}

	for _, tc := range testCases {
		got, err := parseOffset(tc.in)
		if !tc.ok {
			require.Error(t, err, "%q", tc.in)
			continue
		}
		require.NoError(t, err, "%q", tc.in)
		require.Equal(t, tc.want, got, "%q", tc.in)
	}
}

func TestViewerSeek(t *testing.T) {
	v := &viewer{
		items:  decodeAll([]byte("a\xE2\x82\xACb\xFF"), false),
		height: 6,
	}

	require.True(t, v.seek(2)) // inside the euro sign
	require.Equal(t, 1, v.top)
	require.True(t, v.seek(5))
	require.Equal(t, 3, v.top)
	require.False(t, v.seek(6))

	v.first()
	require.True(t, v.atStart())
	v.last()
	require.Equal(t, 2, v.top)
	require.True(t, v.atEnd())

	v.down()
	v.down()
	require.Equal(t, 3, v.top)
	v.pageUp()
	require.Equal(t, 2, v.top)
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "abc", truncate("abc", 10))
	require.Equal(t, "ab€...", truncate("ab€defghij", 6))
}
