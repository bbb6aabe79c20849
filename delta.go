package gdelta

import "io"

// Delta is a thin, allocation-free view over an already-serialized delta
// blob. It gives callers that want io.Writer integration a standard surface
// (WriteTo, ReadFrom, MarshalBinary, UnmarshalBinary) without having to
// re-derive the wire format themselves. It does not change the format or
// add a version byte.
type Delta struct {
	bytes []byte
}

// NewDelta wraps an existing delta byte slice (e.g. the result of Encode)
// without copying it.
func NewDelta(b []byte) Delta { return Delta{bytes: b} }

// Bytes returns the raw delta bytes.
func (d Delta) Bytes() []byte { return d.bytes }

// WriteTo writes the raw delta bytes to w, implementing io.WriterTo.
func (d Delta) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.bytes)
	return int64(n), err
}

// ReadFrom replaces d's contents by reading all of r, implementing
// io.ReaderFrom.
func (d *Delta) ReadFrom(r io.Reader) (int64, error) {
	b, err := io.ReadAll(r)
	d.bytes = b
	return int64(len(b)), err
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d Delta) MarshalBinary() ([]byte, error) {
	out := make([]byte, len(d.bytes))
	copy(out, d.bytes)
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *Delta) UnmarshalBinary(data []byte) error {
	d.bytes = append([]byte(nil), data...)
	return nil
}

// Apply decodes d against base, equivalent to Decode(d.Bytes(), base).
func (d Delta) Apply(base []byte) ([]byte, error) {
	return Decode(d.bytes, base)
}
