package utf8

import "golang.org/x/text/transform"

// Sanitizer is a transform.Transformer that copies well-formed UTF-8 and
// replaces each maximal ill-formed subpart with ReplacementCharBytes.
//
// It keeps no state between calls. A sequence cut off by the end of src is
// held back with transform.ErrShortSrc unless atEOF is set.
type Sanitizer struct {
	transform.NopResetter
}

var _ transform.Transformer = Sanitizer{}

func (Sanitizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		_, next, status, short := decode(src, nSrc)
		if status == IllFormed {
			if short && !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if nDst+ReplacementCharLen > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], ReplacementCharBytes)
		} else {
			if nDst+next-nSrc > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:next])
		}
		nSrc = next
	}
	return nDst, nSrc, nil
}
