package gdelta

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeEmptyDeltaOnEmptyBase(t *testing.T) {
	out := NewByteStream(4)
	writeVarint(out, 0)

	got, err := Decode(out.Bytes(), nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDecodeSingleCopyUnit(t *testing.T) {
	base := []byte("0123456789")

	inst := NewByteStream(16)
	writeDeltaUnit(inst, CopyUnit(2, 5))

	out := NewByteStream(16)
	writeVarint(out, uint64(inst.Len()))
	out.WriteBytes(inst.Bytes())

	got, err := Decode(out.Bytes(), base)
	require.NoError(t, err)
	require.Equal(t, []byte("23456"), got)
}

func TestDecodeSingleLiteralUnit(t *testing.T) {
	lit := []byte("hello")

	inst := NewByteStream(16)
	writeDeltaUnit(inst, LiteralUnit(uint64(len(lit))))

	out := NewByteStream(16)
	writeVarint(out, uint64(inst.Len()))
	out.WriteBytes(inst.Bytes())
	out.WriteBytes(lit)

	got, err := Decode(out.Bytes(), nil)
	require.NoError(t, err)
	require.Equal(t, lit, got)
}

func TestDecodeRejectsTrailingLiteralData(t *testing.T) {
	inst := NewByteStream(16)
	writeDeltaUnit(inst, LiteralUnit(3))

	out := NewByteStream(16)
	writeVarint(out, uint64(inst.Len()))
	out.WriteBytes(inst.Bytes())
	out.WriteBytes([]byte("abcXYZ")) // 6 bytes available, only 3 consumed

	_, err := Decode(out.Bytes(), nil)
	var invalidErr *InvalidDeltaError
	require.ErrorAs(t, err, &invalidErr)
}

func TestDecodeRejectsLiteralRunningPastDataStream(t *testing.T) {
	inst := NewByteStream(16)
	writeDeltaUnit(inst, LiteralUnit(10))

	out := NewByteStream(16)
	writeVarint(out, uint64(inst.Len()))
	out.WriteBytes(inst.Bytes())
	out.WriteBytes([]byte("short"))

	_, err := Decode(out.Bytes(), nil)
	require.ErrorIs(t, err, ErrUnexpectedEndOfData)
}

func TestDecodeRejectsInstructionCursorOverrun(t *testing.T) {
	// Hand-craft an instruction stream whose declared length splits a
	// multi-byte delta unit in half.
	inst := NewByteStream(16)
	writeDeltaUnit(inst, CopyUnit(1000, 1000)) // needs a length_high + offset varint

	out := NewByteStream(16)
	writeVarint(out, 1) // claim only the first byte of the unit belongs to inst stream
	out.WriteBytes(inst.Bytes())

	_, err := Decode(out.Bytes(), make([]byte, 2000))
	require.Error(t, err)
}
