package gdelta

import "encoding/binary"

// Byte-range comparison helpers used by the encoder's prefix/suffix
// detection and match extension. Each compares 8 bytes at a time via
// binary.LittleEndian.Uint64, falling back to a byte-at-a-time tail
// comparison for the remainder. Correctness is identical to a naive scalar
// loop; this only changes the constant factor.

// loadWord reads 8 little-endian bytes at b[0:8]. Callers must ensure
// len(b) >= 8.
func loadWord(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

// commonPrefixLen returns the longest p such that a[0:p] == b[0:p].
func commonPrefixLen(a, b []byte) int {
	maxLen := min(len(a), len(b))
	n := 0
	for n+8 <= maxLen {
		if loadWord(a[n:]) != loadWord(b[n:]) {
			break
		}
		n += 8
	}
	for n < maxLen && a[n] == b[n] {
		n++
	}
	return n
}

// commonSuffixLen returns the longest s such that the last s bytes of a
// equal the last s bytes of b, without reading past index prefixLen from
// the start of either slice: the suffix scan must not intrude into the
// prefix region.
func commonSuffixLen(a, b []byte, prefixLen int) int {
	maxLen := min(len(a)-prefixLen, len(b)-prefixLen)
	n := 0
	for n+8 <= maxLen {
		aStart := len(a) - n - 8
		bStart := len(b) - n - 8
		if loadWord(a[aStart:]) != loadWord(b[bStart:]) {
			break
		}
		n += 8
	}
	for n < maxLen && a[len(a)-n-1] == b[len(b)-n-1] {
		n++
	}
	return n
}

// extendMatch grows a verified match at (newPos, basePos) as far as
// possible forward, starting from the already-verified window length
// fingerprintWindow. No backward extension is performed.
func extendMatch(newData, baseData []byte, newPos, basePos, newEnd, baseEnd int) int {
	n := fingerprintWindow
	for newPos+n+8 <= newEnd && basePos+n+8 <= baseEnd {
		if loadWord(newData[newPos+n:]) != loadWord(baseData[basePos+n:]) {
			break
		}
		n += 8
	}
	for newPos+n < newEnd && basePos+n < baseEnd && newData[newPos+n] == baseData[basePos+n] {
		n++
	}
	return n
}
