package wordtally

import (
	"bytes"
	"unicode/utf8"
)

// stripUTF8BOM drops a leading UTF-8 byte-order mark from data, if
// present, so it is never handed to the segmenter as a word fragment.
// Used by the whole-buffer strategies (ParallelBytes, ParallelMmap,
// ParallelInMemory); the streamed strategies use the Reader-level
// skipUTF8BOM instead, since their input never arrives as one slice.
func stripUTF8BOM(data []byte) []byte {
	if bytes.HasPrefix(data, utf8BOM) {
		return data[len(utf8BOM):]
	}
	return data
}

// validPrefix splits buf into the longest valid-UTF-8 prefix and the
// trailing residue, which may be an incomplete multi-byte codepoint
// split by a chunk boundary. It is the streamed-read counterpart to a
// whole-slice SIMD UTF-8 validator: on each read, the valid prefix is
// handed to the segmenter immediately and the residue is prepended to
// the next read.
//
// If buf contains a genuine encoding error (not just a truncated
// trailing codepoint), validPrefix returns the prefix up to that error
// and a non-nil error; callers at EOF must treat any residual bytes as
// a hard failure rather than carrying them over again.
func validPrefix(buf []byte) (valid []byte, residue []byte, err error) {
	i := 0
	for i < len(buf) {
		r, size := utf8.DecodeRune(buf[i:])
		if !(r == utf8.RuneError && size == 1) {
			// A real, validly-encoded U+FFFD decodes as (RuneError, 3):
			// only a size-1 result actually signals a decoding error.
			i += size
			continue
		}

		rem := buf[i:]
		if !utf8.FullRune(rem) {
			// The sequence starting at i is a valid prefix of some
			// codepoint but the buffer ends before it completes: carry
			// it over rather than reporting an error.
			return buf[:i], rem, nil
		}
		return buf[:i], nil, &TallyError{Kind: KindUTF8, Byte: buf[i], Pos: i}
	}
	return buf, nil, nil
}

// validateStrict validates residue bytes that remain once EOF has been
// reached: there is no more data coming, so any incompleteness is now a
// genuine error.
func validateStrict(residue []byte) error {
	if len(residue) == 0 {
		return nil
	}
	if utf8.Valid(residue) {
		return nil
	}
	for i := 0; i < len(residue); {
		r, size := utf8.DecodeRune(residue[i:])
		if r == utf8.RuneError && size == 1 {
			return &TallyError{Kind: KindUTF8, Byte: residue[i], Pos: i}
		}
		i += size
	}
	return nil
}
