package utf8

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestSanitizer(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		out  string
	}{
		{"empty", "", ""},
		{"ascii", "hello", "hello"},
		{"multibyte", "hé€\U0001F600", "hé€\U0001F600"},
		{"bom_kept", BOM + "x", BOM + "x"},
		{"invalid_lead", "a\xFFb", "a�b"},
		{"overlong", "\xC0\xAF", "��"},
		{"surrogate", "\xED\xA0\x80", "���"},
		{"truncated_tail", "ab\xF0\x9F\x98", "ab�"},
		{"maximal_subparts", "a\xF1\x80\x80\xE1\x80\xC2b\x80c\x80\xBFd",
			"a���b�c��d"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, n, err := transform.String(Sanitizer{}, tc.in)
			require.NoError(t, err)
			require.Equal(t, len(tc.in), n)
			require.Equal(t, tc.out, out)

			// Byte-at-a-time input exercises the ErrShortSrc path.
			r := transform.NewReader(iotest.OneByteReader(strings.NewReader(tc.in)), Sanitizer{})
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, tc.out, string(got))
		})
	}
}

func TestSanitizerShortSrc(t *testing.T) {
	dst := make([]byte, 16)

	nDst, nSrc, err := Sanitizer{}.Transform(dst, []byte("a\xE2\x82"), false)
	require.ErrorIs(t, err, transform.ErrShortSrc)
	require.Equal(t, 1, nDst)
	require.Equal(t, 1, nSrc)

	// A failed continuation is not a short source.
	nDst, nSrc, err = Sanitizer{}.Transform(dst, []byte("\xE2\x82A"), false)
	require.NoError(t, err)
	require.Equal(t, 3, nSrc)
	require.Equal(t, "�A", string(dst[:nDst]))

	nDst, nSrc, err = Sanitizer{}.Transform(dst, []byte("a\xE2\x82"), true)
	require.NoError(t, err)
	require.Equal(t, 3, nSrc)
	require.Equal(t, "a�", string(dst[:nDst]))
}

func TestSanitizerShortDst(t *testing.T) {
	dst := make([]byte, 2)

	nDst, nSrc, err := Sanitizer{}.Transform(dst, []byte("\xFF"), true)
	require.ErrorIs(t, err, transform.ErrShortDst)
	require.Zero(t, nDst)
	require.Zero(t, nSrc)

	nDst, nSrc, err = Sanitizer{}.Transform(dst, []byte("a€"), true)
	require.ErrorIs(t, err, transform.ErrShortDst)
	require.Equal(t, 1, nDst)
	require.Equal(t, 1, nSrc)
}

func TestSanitizerWriter(t *testing.T) {
	var buf bytes.Buffer
	w := transform.NewWriter(&buf, Sanitizer{})

	for _, chunk := range []string{"x\xE2", "\x82", "\xAC\xED", "\xA0y"} {
		_, err := w.Write([]byte(chunk))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.Equal(t, "x€��y", buf.String())
}
