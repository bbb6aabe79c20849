package gdelta

// initBufferSize is the initial capacity for the encoder's transient
// instruction/literal streams and the decoder's output buffer.
const initBufferSize = 128 * 1024

// ByteStream is a cursor-based growable byte buffer. Reads are
// bounds-checked against the cursor; writes append and advance the cursor
// in lock-step. It underlies both the encoder's instruction/literal
// streams, the decoder's output, and the decoder's view over the delta blob
// and its literal-data stream.
type ByteStream struct {
	buf    []byte
	cursor int
}

// NewByteStream creates an empty stream with the given initial capacity.
func NewByteStream(capacity int) *ByteStream {
	return &ByteStream{buf: make([]byte, 0, capacity)}
}

// NewByteStreamFromBytes wraps an existing slice, cursor at the start.
// The stream does not copy data; callers must not mutate data concurrently.
func NewByteStreamFromBytes(data []byte) *ByteStream {
	return &ByteStream{buf: data}
}

// Position returns the current cursor offset.
func (s *ByteStream) Position() int { return s.cursor }

// SetPosition moves the cursor. It does not validate against Len; the next
// read will fail with ErrUnexpectedEndOfData if the position is past Len.
// A negative position is not checked by ReadU8 or ReadBytes.
func (s *ByteStream) SetPosition(pos int) { s.cursor = pos }

// Len returns the total number of bytes written to or wrapped by the stream.
func (s *ByteStream) Len() int { return len(s.buf) }

// Remaining returns the number of unread bytes from the cursor to the end.
func (s *ByteStream) Remaining() int {
	if s.cursor >= len(s.buf) {
		return 0
	}
	return len(s.buf) - s.cursor
}

// Bytes returns the full underlying buffer, independent of cursor position.
func (s *ByteStream) Bytes() []byte { return s.buf }

// WriteU8 appends a single byte and advances the cursor.
func (s *ByteStream) WriteU8(b byte) {
	s.buf = append(s.buf, b)
	s.cursor++
}

// WriteBytes appends data and advances the cursor by len(data).
func (s *ByteStream) WriteBytes(data []byte) {
	s.buf = append(s.buf, data...)
	s.cursor += len(data)
}

// ReadU8 reads and consumes one byte, or returns ErrUnexpectedEndOfData.
func (s *ByteStream) ReadU8() (byte, error) {
	if s.cursor >= len(s.buf) {
		return 0, ErrUnexpectedEndOfData
	}
	b := s.buf[s.cursor]
	s.cursor++
	return b, nil
}

// ReadBytes reads and consumes n bytes, returning a sub-slice of the
// underlying buffer (not a copy), or ErrUnexpectedEndOfData if short.
func (s *ByteStream) ReadBytes(n int) ([]byte, error) {
	if s.cursor+n > len(s.buf) {
		return nil, ErrUnexpectedEndOfData
	}
	start := s.cursor
	s.cursor += n
	return s.buf[start:s.cursor], nil
}

// PeekAt returns n bytes at position without moving the cursor.
func (s *ByteStream) PeekAt(position, n int) ([]byte, error) {
	if position+n > len(s.buf) || position < 0 {
		return nil, ErrUnexpectedEndOfData
	}
	return s.buf[position : position+n], nil
}
