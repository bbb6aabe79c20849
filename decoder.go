package gdelta

// Decode reconstructs the new blob from delta and baseData. It validates
// the instruction stream in a single pass and stops at the first malformed
// unit, never returning a partial output.
//
// Decode is strict about trailing literal data: if the literal-data stream
// still has unconsumed bytes once the instruction cursor reaches the end
// of the instruction stream, it returns an InvalidDeltaError rather than
// silently ignoring the extra bytes.
func Decode(delta, baseData []byte) ([]byte, error) {
	deltaStream := NewByteStreamFromBytes(delta)

	instLen64, err := readVarint(deltaStream)
	if err != nil {
		return nil, err
	}
	if instLen64 > uint64(len(delta)) {
		return nil, invalidDelta("instruction stream length exceeds delta size")
	}
	instLen := int(instLen64)

	instStart := deltaStream.Position()
	instEnd := instStart + instLen
	if instEnd > len(delta) {
		return nil, invalidDelta("instruction stream length exceeds delta size")
	}

	dataStream := NewByteStreamFromBytes(delta[instEnd:])
	output := NewByteStream(initBufferSize)

	for deltaStream.Position() < instEnd {
		unit, err := readDeltaUnit(deltaStream)
		if err != nil {
			return nil, err
		}

		if deltaStream.Position() > instEnd {
			return nil, invalidDelta("instruction cursor overran instruction stream")
		}

		if unit.IsCopy() {
			baseLen := uint64(len(baseData))
			if unit.Offset > baseLen || unit.Length > baseLen-unit.Offset {
				return nil, invalidDelta("copy unit references beyond base data")
			}
			output.WriteBytes(baseData[unit.Offset : unit.Offset+unit.Length])
		} else {
			if unit.Length > uint64(dataStream.Remaining()) {
				return nil, ErrUnexpectedEndOfData
			}
			lit, err := dataStream.ReadBytes(int(unit.Length))
			if err != nil {
				return nil, err
			}
			output.WriteBytes(lit)
		}
	}

	if dataStream.Remaining() > 0 {
		return nil, invalidDelta("literal-data stream has unconsumed trailing bytes")
	}

	return output.Bytes(), nil
}
