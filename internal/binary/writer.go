package binary

import (
	"encoding/binary"
	"io"
)

// SafeWriter wraps io.Writer and tracks how many bytes went through it.
// Wrapping io.Discard turns it into a byte counter.
type SafeWriter struct {
	w      io.Writer
	offset int64
}

// NewSafeWriter creates a new SafeWriter.
func NewSafeWriter(w io.Writer) *SafeWriter {
	return &SafeWriter{w: w}
}

// Offset returns the number of bytes written so far.
func (sw *SafeWriter) Offset() int64 {
	return sw.offset
}

// WriteBytes writes raw bytes.
func (sw *SafeWriter) WriteBytes(b []byte) error {
	n, err := sw.w.Write(b)
	sw.offset += int64(n)
	if err == nil && n < len(b) {
		return io.ErrShortWrite
	}
	return err
}

// WriteString writes s as raw bytes.
func (sw *SafeWriter) WriteString(s string) error {
	return sw.WriteBytes([]byte(s))
}

// WriteZeros writes n zero bytes.
func (sw *SafeWriter) WriteZeros(n int) error {
	if n <= 0 {
		return nil
	}
	return sw.WriteBytes(make([]byte, n))
}

// Write writes val in big-endian byte order.
func Write[T uint8 | uint16 | uint32 | uint64](sw *SafeWriter, val T) error {
	buf := make([]byte, sizeOf[T]())
	switch len(buf) {
	case 1:
		buf[0] = byte(val)
	case 2:
		binary.BigEndian.PutUint16(buf, uint16(val))
	case 4:
		binary.BigEndian.PutUint32(buf, uint32(val))
	default:
		binary.BigEndian.PutUint64(buf, uint64(val))
	}
	return sw.WriteBytes(buf)
}
