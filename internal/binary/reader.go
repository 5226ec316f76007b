// Package binary provides bounds-checked big-endian reading and
// offset-tracking writing for ID3 and MPEG structures.
package binary

import (
	"errors"
	"fmt"
	"io"

	"github.com/simonhull/id3tag/internal/types"
)

// SafeReader wraps io.ReaderAt with bounds checking. Every failed read
// names the source and the structure being read.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader over the first size bytes of r.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Path returns the path or address associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the number of readable bytes.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// ReadAt fills b from offset off. Reads that fall outside [0, size)
// return *types.OutOfBoundsError.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off >= sr.size || off+int64(len(b)) > sr.size {
		return &types.OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Length: len(b),
			Size:   sr.size,
		}
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: read %s at offset %d: %w", sr.path, what, off, err)
	}
	if n < len(b) {
		return fmt.Errorf("%s: short read for %s at offset %d: got %d bytes, expected %d",
			sr.path, what, off, n, len(b))
	}

	return nil
}

// sizeOf returns the encoded width of T.
func sizeOf[T uint8 | uint16 | uint32 | uint64]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// decode converts a big-endian buffer of the right width to T.
func decode[T uint8 | uint16 | uint32 | uint64](buf []byte) T {
	var v uint64
	for _, b := range buf {
		v = v<<8 | uint64(b)
	}
	return T(v)
}

// Read reads a big-endian value of type T at off.
func Read[T uint8 | uint16 | uint32 | uint64](sr *SafeReader, off int64, what string) (T, error) {
	buf := make([]byte, sizeOf[T]())
	if err := sr.ReadAt(buf, off, what); err != nil {
		var zero T
		return zero, err
	}
	return decode[T](buf), nil
}

// Reader reads sequentially from a SafeReader, advancing its offset.
type Reader struct {
	*SafeReader
	offset int64
}

// NewReader creates a Reader positioned at offset.
func NewReader(sr *SafeReader, offset int64) *Reader {
	return &Reader{
		SafeReader: sr,
		offset:     offset,
	}
}

// ReadValue reads a big-endian T and advances past it.
func ReadValue[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) (T, error) {
	val, err := Read[T](r.SafeReader, r.offset, what)
	if err != nil {
		return val, err
	}
	r.offset += int64(sizeOf[T]())
	return val, nil
}

// ReadBytes reads n raw bytes and advances past them.
func (r *Reader) ReadBytes(n int, what string) ([]byte, error) {
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	if err := r.SafeReader.ReadAt(buf, r.offset, what); err != nil {
		return nil, err
	}
	r.offset += int64(n)
	return buf, nil
}

// ReadString reads n bytes as a string and advances past them.
func (r *Reader) ReadString(n int, what string) (string, error) {
	buf, err := r.ReadBytes(n, what)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Skip advances the offset by n bytes.
func (r *Reader) Skip(n int64) {
	r.offset += n
}

// Offset returns the current offset.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Remaining returns the number of bytes left before the end of the source.
func (r *Reader) Remaining() int64 {
	return r.size - r.offset
}

// ChainReader defers error checking across a run of reads. After the first
// failure every further read is a no-op returning the zero value.
type ChainReader struct {
	*Reader
	err error
}

// NewChainReader creates a new ChainReader.
func NewChainReader(r *Reader) *ChainReader {
	return &ChainReader{Reader: r}
}

// ReadChained reads a big-endian T unless an earlier read failed.
func ReadChained[T uint8 | uint16 | uint32 | uint64](cr *ChainReader, what string) T {
	if cr.err != nil {
		var zero T
		return zero
	}

	val, err := ReadValue[T](cr.Reader, what)
	if err != nil {
		cr.err = err
	}
	return val
}

// String reads an n byte string unless an earlier read failed.
func (cr *ChainReader) String(n int, what string) string {
	if cr.err != nil {
		return ""
	}

	val, err := cr.Reader.ReadString(n, what)
	if err != nil {
		cr.err = err
	}
	return val
}

// Error returns the first error encountered, if any.
func (cr *ChainReader) Error() error {
	return cr.err
}
