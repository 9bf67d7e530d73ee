package wordtally

import "bytes"

// isChunkBoundary reports whether b is one of the ASCII whitespace
// bytes chunk boundaries are aligned to. Word-forming characters in
// every script this package segments exclude space and newline, so
// cutting only at these bytes guarantees no chunk ever splits a word
// or a multi-byte UTF-8 codepoint (codepoints never contain 0x20/0x0A
// as a continuation byte, since UTF-8 continuation bytes are always
// ≥ 0x80).
func isChunkBoundary(b byte) bool {
	return b == ' ' || b == '\n'
}

// lastBoundaryAtOrBefore returns the largest index i ≤ target such that
// data[i-1] is a boundary byte, i.e. the position immediately after the
// last space or newline at or before target. It returns target
// unchanged if no such position exists in data[:target]. Scanning goes
// backward from target using the runtime's hardware-accelerated
// byte search (bytes.LastIndexByte), the Go analogue of a SIMD
// memrchr.
func lastBoundaryAtOrBefore(data []byte, target int) int {
	if target > len(data) {
		target = len(data)
	}
	window := data[:target]
	sp := bytes.LastIndexByte(window, ' ')
	nl := bytes.LastIndexByte(window, '\n')
	cut := sp
	if nl > cut {
		cut = nl
	}
	if cut < 0 {
		return target
	}
	return cut + 1
}

// fixedCountBoundaries computes chunk boundaries for in-memory
// strategies: target positions i·⌈len/n⌉ for i in 1..=n, each snapped
// to the whitespace boundary at or before it, with 0 and len always
// included. Empty ranges (two equal consecutive boundaries) are
// dropped.
func fixedCountBoundaries(data []byte, n int) []int {
	length := len(data)
	if length == 0 || n <= 0 {
		return []int{0, length}
	}
	chunkLen := (length + n - 1) / n

	bounds := make([]int, 0, n+1)
	bounds = append(bounds, 0)
	prev := 0
	for i := 1; i <= n; i++ {
		target := i * chunkLen
		if target >= length {
			break
		}
		cut := lastBoundaryAtOrBefore(data, target)
		if cut <= prev {
			continue
		}
		bounds = append(bounds, cut)
		prev = cut
	}
	if bounds[len(bounds)-1] != length {
		bounds = append(bounds, length)
	}
	return bounds
}

// chunkRanges turns a boundary list into non-overlapping [start, end)
// ranges, dropping any that are empty.
func chunkRanges(bounds []int) [][2]int {
	ranges := make([][2]int, 0, len(bounds))
	for i := 1; i < len(bounds); i++ {
		if bounds[i] > bounds[i-1] {
			ranges = append(ranges, [2]int{bounds[i-1], bounds[i]})
		}
	}
	return ranges
}

// streamedCuts collects whitespace positions in buf and emits cut
// offsets whenever the distance since the last cut reaches at least
// minDistance, matching the streamed boundary discovery algorithm in
// the chunking design: a forward scan for boundary bytes, paced by a
// minimum chunk size rather than a fixed count (the buffer length isn't
// known to be evenly divisible ahead of time, since more data may still
// arrive). If atEOF, buf's length is appended as a final cut.
func streamedCuts(buf []byte, minDistance int, atEOF bool) []int {
	if minDistance <= 0 {
		minDistance = 1
	}
	var cuts []int
	last := 0
	pos := 0
	for pos < len(buf) {
		if boundaryMask(buf[pos:]) == 0 && len(buf[pos:]) < 32 {
			break
		}
		idx := bytes.IndexAny(buf[pos:], " \n")
		if idx < 0 {
			break
		}
		abs := pos + idx + 1
		if abs-last >= minDistance {
			cuts = append(cuts, abs)
			last = abs
		}
		pos = pos + idx + 1
	}
	if atEOF && (len(cuts) == 0 || cuts[len(cuts)-1] != len(buf)) {
		cuts = append(cuts, len(buf))
	}
	return cuts
}

// totalChunks computes ⌈len/chunkSize⌉, returning a *TallyError with
// KindChunkCountExceeded if the result would not fit in an int.
func totalChunks(length, chunkSize int) (int, error) {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	chunks := (length + chunkSize - 1) / chunkSize
	if chunks < 0 { // overflow wrapped negative
		return 0, &TallyError{Kind: KindChunkCountExceeded, Count: chunks}
	}
	return chunks, nil
}
