package flatgeograph

import (
	"encoding/binary"
	"math"
)

// reader is a bounds-checked little-endian cursor over a byte slice.
// Fixed-width reads do not allocate; string and byte-slice reads allocate a
// copy out of the source buffer so callers may discard the original slice
// once decoding of a value completes (see spec's ownership rules for decoded
// values).
type reader struct {
	buf []byte
	pos int
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

func (r *reader) remaining() int {
	return len(r.buf) - r.pos
}

func (r *reader) need(n int) error {
	if n < 0 || r.remaining() < n {
		return newErr(KindTruncated, "need %d bytes, have %d", n, r.remaining())
	}
	return nil
}

func (r *reader) u8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

func (r *reader) i8() (int8, error) {
	v, err := r.u8()
	return int8(v), err
}

func (r *reader) u16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *reader) i16() (int16, error) {
	v, err := r.u16()
	return int16(v), err
}

func (r *reader) u32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *reader) i32() (int32, error) {
	v, err := r.u32()
	return int32(v), err
}

func (r *reader) u64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

func (r *reader) i64() (int64, error) {
	v, err := r.u64()
	return int64(v), err
}

func (r *reader) f32() (float32, error) {
	v, err := r.u32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (r *reader) f64() (float64, error) {
	v, err := r.u64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// bytesN reads n raw bytes, returning a copy.
func (r *reader) bytesN(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

// str16 reads a u16-length-prefixed UTF-8 string (used by the column schema
// codec, whose name field is capped at 65,535 bytes per spec §3).
func (r *reader) str16() (string, error) {
	n, err := r.u16()
	if err != nil {
		return "", err
	}
	b, err := r.bytesN(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// str32 reads a u32-length-prefixed UTF-8 string (used by variable-width
// property values: String, DateTime, Json).
func (r *reader) str32() (string, error) {
	n, err := r.u32()
	if err != nil {
		return "", err
	}
	b, err := r.bytesN(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// bytes32 reads a u32-length-prefixed raw byte payload (Binary columns).
func (r *reader) bytes32() ([]byte, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	return r.bytesN(int(n))
}

// writer accumulates little-endian encoded primitives into a growing byte
// slice. Callers that know the final size up front should create it with
// newWriterSize to avoid repeated reallocation (see spec §5: "the writer preallocates the
// output buffer to the exact final size").
type writer struct {
	buf []byte
}

func newWriter() *writer {
	return &writer{}
}

func newWriterSize(n int) *writer {
	return &writer{buf: make([]byte, 0, n)}
}

func (w *writer) Bytes() []byte { return w.buf }
func (w *writer) Len() int      { return len(w.buf) }

func (w *writer) u8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *writer) i8(v int8) {
	w.u8(uint8(v))
}

func (w *writer) u16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *writer) i16(v int16) {
	w.u16(uint16(v))
}

func (w *writer) u32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *writer) i32(v int32) {
	w.u32(uint32(v))
}

func (w *writer) u64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *writer) i64(v int64) {
	w.u64(uint64(v))
}

func (w *writer) f32(v float32) {
	w.u32(math.Float32bits(v))
}

func (w *writer) f64(v float64) {
	w.u64(math.Float64bits(v))
}

func (w *writer) raw(b []byte) {
	w.buf = append(w.buf, b...)
}

// str16 writes a u16-length-prefixed UTF-8 string.
func (w *writer) str16(s string) {
	w.u16(uint16(len(s)))
	w.buf = append(w.buf, s...)
}

// str32 writes a u32-length-prefixed UTF-8 string.
func (w *writer) str32(s string) {
	w.u32(uint32(len(s)))
	w.buf = append(w.buf, s...)
}

// bytes32 writes a u32-length-prefixed raw byte payload.
func (w *writer) bytes32(b []byte) {
	w.u32(uint32(len(b)))
	w.buf = append(w.buf, b...)
}
