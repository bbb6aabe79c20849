package gdelta

import "bytes"

// minMatch is the minimum prefix/suffix length that earns its own copy
// instruction instead of being folded into the middle scan. Fixed at 16
// rather than parameterized. Copies found by the middle scan are not held
// to it: they are accepted from fingerprintWindow bytes up.
const minMatch = 16

// Encode computes a delta that, together with base, can reconstruct newData
// via Decode. It never fails on valid byte-slice inputs, so it returns a
// plain []byte rather than (T, error).
//
// It finds the cheap wins first (a shared prefix and suffix), builds a hash
// index over what's left of base, then scans and emits copy/literal units
// into two streams before concatenating them.
func Encode(newData, baseData []byte) []byte {
	delta, _ := EncodeWithStats(newData, baseData)
	return delta
}

// EncodeWithStats is Encode plus the Stats gathered during the single
// encoding pass.
func EncodeWithStats(newData, baseData []byte) ([]byte, Stats) {
	var stats Stats
	newLen, baseLen := len(newData), len(baseData)

	prefix := commonPrefixLen(newData, baseData)
	if prefix < minMatch {
		prefix = 0
	}

	suffix := commonSuffixLen(newData, baseData, prefix)
	if suffix < minMatch {
		suffix = 0
	}
	if prefix+suffix > newLen {
		suffix = newLen - prefix
	}

	instStream := NewByteStream(initBufferSize)
	dataStream := NewByteStream(initBufferSize)

	if prefix+suffix >= baseLen {
		encodeTrivial(newData, baseLen, prefix, suffix, instStream, dataStream, &stats)
		return finalizeDelta(instStream, dataStream), stats
	}

	if prefix > 0 {
		emitCopy(instStream, &stats, 0, uint64(prefix))
	}

	encodeMiddle(newData, baseData, prefix, newLen-suffix, baseLen-suffix, instStream, dataStream, &stats)

	if suffix > 0 {
		emitCopy(instStream, &stats, uint64(baseLen-suffix), uint64(suffix))
	}

	return finalizeDelta(instStream, dataStream), stats
}

func emitCopy(inst *ByteStream, stats *Stats, offset, length uint64) {
	writeDeltaUnit(inst, CopyUnit(offset, length))
	stats.recordCopy(length)
}

func emitLiteral(inst, data *ByteStream, stats *Stats, bytes []byte) {
	writeDeltaUnit(inst, LiteralUnit(uint64(len(bytes))))
	data.WriteBytes(bytes)
	stats.recordLiteral(uint64(len(bytes)))
}

// encodeTrivial handles the case where the prefix and suffix already cover
// the whole base, so there's nothing left to index or scan. The trailing
// copy's offset must be derived from baseLen, not newLen: because
// prefix+suffix >= baseLen, the last suffix bytes of new equal base bytes at
// [baseLen-suffix, baseLen), which only equals [newLen-suffix, newLen) when
// newLen == baseLen. Using baseLen-suffix keeps the copy's offset a valid
// pointer into base regardless of how newLen and baseLen compare.
func encodeTrivial(newData []byte, baseLen, prefix, suffix int, inst, data *ByteStream, stats *Stats) {
	newLen := len(newData)

	if prefix > 0 {
		emitCopy(inst, stats, 0, uint64(prefix))
	}

	middleLen := newLen - prefix - suffix
	if middleLen > 0 {
		emitLiteral(inst, data, stats, newData[prefix:newLen-suffix])
	}

	if suffix > 0 {
		emitCopy(inst, stats, uint64(baseLen-suffix), uint64(suffix))
	}
}

// encodeMiddle builds the hash index over base[start:baseEnd) and scans
// new[start:newEnd), emitting copy/literal units. It walks a position
// cursor, flushing any pending literal right before emitting a copy, and
// never leaves two literals adjacent in the stream (a miss always just
// advances the cursor; it never flushes by itself).
func encodeMiddle(newData, baseData []byte, start, newEnd, baseEnd int, inst, data *ByteStream, stats *Stats) {
	if start >= newEnd || newEnd-start < fingerprintWindow {
		if start < newEnd {
			emitLiteral(inst, data, stats, newData[start:newEnd])
		}
		return
	}

	h := hashBits(baseEnd - start)
	index := buildHashIndex(baseData, start, baseEnd, h)
	shift := 64 - h

	pos := start
	litStart := start
	fp := computeFingerprint(newData, pos)

	for pos+fingerprintWindow <= newEnd {
		slot := fp >> shift
		cand := int(index[slot])

		if cand > 0 && cand+fingerprintWindow <= baseEnd &&
			bytes.Equal(newData[pos:pos+fingerprintWindow], baseData[cand:cand+fingerprintWindow]) {
			m := extendMatch(newData, baseData, pos, cand, newEnd, baseEnd)

			if pos > litStart {
				emitLiteral(inst, data, stats, newData[litStart:pos])
			}
			emitCopy(inst, stats, uint64(cand), uint64(m))

			pos += m
			litStart = pos
			if pos+fingerprintWindow <= newEnd {
				fp = computeFingerprint(newData, pos)
			}
			continue
		}

		pos++
		if pos+fingerprintWindow <= newEnd {
			fp = rollFingerprint(fp, newData[pos+fingerprintWindow-1])
		}
	}

	if litStart < newEnd {
		emitLiteral(inst, data, stats, newData[litStart:newEnd])
	}
}

// finalizeDelta assembles the final wire layout: a varint-encoded
// instruction-stream length, followed by the instructions, followed by the
// literal-data stream.
func finalizeDelta(inst, data *ByteStream) []byte {
	out := NewByteStream(inst.Len() + data.Len() + 10)
	writeVarint(out, uint64(inst.Len()))
	out.WriteBytes(inst.Bytes())
	out.WriteBytes(data.Bytes())
	return out.Bytes()
}
