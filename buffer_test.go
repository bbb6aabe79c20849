package gdelta

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteStreamReadWrite(t *testing.T) {
	buf := NewByteStream(10)
	buf.WriteU8(42)
	buf.WriteBytes([]byte{1, 2, 3})

	require.Equal(t, 4, buf.Len())
	require.Equal(t, 4, buf.Position())

	buf.SetPosition(0)

	b, err := buf.ReadU8()
	require.NoError(t, err)
	require.Equal(t, byte(42), b)

	rest, err := buf.ReadBytes(3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, rest)
}

func TestByteStreamUnderflow(t *testing.T) {
	buf := NewByteStreamFromBytes([]byte{1, 2, 3})

	b, err := buf.ReadU8()
	require.NoError(t, err)
	require.Equal(t, byte(1), b)

	rest, err := buf.ReadBytes(2)
	require.NoError(t, err)
	require.Equal(t, []byte{2, 3}, rest)

	_, err = buf.ReadU8()
	require.ErrorIs(t, err, ErrUnexpectedEndOfData)
}

func TestByteStreamPeekAt(t *testing.T) {
	buf := NewByteStreamFromBytes([]byte{10, 20, 30, 40})

	got, err := buf.PeekAt(1, 2)
	require.NoError(t, err)
	require.Equal(t, []byte{20, 30}, got)
	require.Equal(t, 0, buf.Position(), "PeekAt must not move the cursor")

	_, err = buf.PeekAt(3, 5)
	require.ErrorIs(t, err, ErrUnexpectedEndOfData)
}

func TestByteStreamRemaining(t *testing.T) {
	buf := NewByteStreamFromBytes([]byte{1, 2, 3, 4})
	require.Equal(t, 4, buf.Remaining())
	buf.SetPosition(2)
	require.Equal(t, 2, buf.Remaining())
	buf.SetPosition(4)
	require.Equal(t, 0, buf.Remaining())
}
