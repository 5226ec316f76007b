package binary

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/simonhull/id3tag/internal/types"
)

// mockReader implements io.ReaderAt for testing.
type mockReader struct {
	data []byte
}

func (m *mockReader) ReadAt(p []byte, off int64) (n int, err error) {
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n = copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func newTestReader(data []byte) *SafeReader {
	return NewSafeReader(&mockReader{data: data}, int64(len(data)), "test.mp3")
}

func TestSafeReader_ReadAt_Success(t *testing.T) {
	sr := newTestReader([]byte{0x01, 0x02, 0x03, 0x04})

	buf := make([]byte, 2)
	if err := sr.ReadAt(buf, 1, "test read"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf[0] != 0x02 || buf[1] != 0x03 {
		t.Errorf("expected [0x02, 0x03], got [0x%02x, 0x%02x]", buf[0], buf[1])
	}
}

func TestSafeReader_ReadAt_OutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		off  int64
		n    int
	}{
		{"offset past end", 10, 2},
		{"read crosses end", 3, 2},
		{"negative offset", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr := newTestReader([]byte{0x01, 0x02, 0x03, 0x04})
			err := sr.ReadAt(make([]byte, tt.n), tt.off, "frame header")
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var oob *types.OutOfBoundsError
			if !errors.As(err, &oob) {
				t.Fatalf("expected *OutOfBoundsError, got %T", err)
			}
			if !strings.Contains(err.Error(), "test.mp3") {
				t.Errorf("error should contain path: %v", err)
			}
			if !strings.Contains(err.Error(), "frame header") {
				t.Errorf("error should contain context: %v", err)
			}
		})
	}
}

func TestRead_Widths(t *testing.T) {
	sr := newTestReader([]byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0})

	if v, err := Read[uint8](sr, 0, "u8"); err != nil || v != 0x12 {
		t.Errorf("Read[uint8] = 0x%x, %v", v, err)
	}
	if v, err := Read[uint16](sr, 0, "u16"); err != nil || v != 0x1234 {
		t.Errorf("Read[uint16] = 0x%x, %v", v, err)
	}
	if v, err := Read[uint32](sr, 0, "u32"); err != nil || v != 0x12345678 {
		t.Errorf("Read[uint32] = 0x%x, %v", v, err)
	}
	if v, err := Read[uint64](sr, 0, "u64"); err != nil || v != 0x123456789ABCDEF0 {
		t.Errorf("Read[uint64] = 0x%x, %v", v, err)
	}
}

func TestReader_Sequential(t *testing.T) {
	sr := newTestReader([]byte{'T', 'I', 'T', '2', 0x00, 0x00, 0x00, 0x05, 0x40, 0x00, 0xAA})
	r := NewReader(sr, 0)

	id, err := r.ReadString(4, "frame id")
	if err != nil || id != "TIT2" {
		t.Fatalf("ReadString = %q, %v", id, err)
	}

	size, err := ReadValue[uint32](r, "frame size")
	if err != nil || size != 5 {
		t.Fatalf("ReadValue[uint32] = %d, %v", size, err)
	}

	flags, err := ReadValue[uint16](r, "frame flags")
	if err != nil || flags != 0x4000 {
		t.Fatalf("ReadValue[uint16] = 0x%x, %v", flags, err)
	}

	if r.Offset() != 10 {
		t.Errorf("expected offset 10, got %d", r.Offset())
	}
	if r.Remaining() != 1 {
		t.Errorf("expected 1 remaining byte, got %d", r.Remaining())
	}
}

func TestReader_ReadBytesAndSkip(t *testing.T) {
	sr := newTestReader([]byte{1, 2, 3, 4, 5})
	r := NewReader(sr, 0)

	r.Skip(2)
	b, err := r.ReadBytes(3, "body")
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if b[0] != 3 || b[2] != 5 {
		t.Errorf("unexpected bytes %v", b)
	}

	empty, err := r.ReadBytes(0, "empty")
	if err != nil || len(empty) != 0 {
		t.Errorf("ReadBytes(0) = %v, %v", empty, err)
	}

	if _, err := r.ReadBytes(1, "past end"); err == nil {
		t.Error("expected error reading past end")
	}
}

func TestChainReader_Success(t *testing.T) {
	sr := newTestReader([]byte{'C', 'O', 'M', 'M', 0x00, 0x00, 0x01, 0x00, 0x00, 0x00})
	cr := NewChainReader(NewReader(sr, 0))

	id := cr.String(4, "frame id")
	size := ReadChained[uint32](cr, "frame size")
	flags := ReadChained[uint16](cr, "frame flags")

	if err := cr.Error(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "COMM" || size != 256 || flags != 0 {
		t.Errorf("got id=%q size=%d flags=%d", id, size, flags)
	}
}

func TestChainReader_ErrorAccumulation(t *testing.T) {
	sr := newTestReader([]byte{'A', 'P', 'I'})
	cr := NewChainReader(NewReader(sr, 0))

	id := cr.String(4, "frame id")
	size := ReadChained[uint32](cr, "frame size")

	if cr.Error() == nil {
		t.Fatal("expected accumulated error")
	}
	if !strings.Contains(cr.Error().Error(), "frame id") {
		t.Errorf("first failure should be reported, got %v", cr.Error())
	}
	if id != "" || size != 0 {
		t.Errorf("expected zero values after failure, got %q %d", id, size)
	}
}

func BenchmarkRead_Uint32(b *testing.B) {
	sr := newTestReader([]byte{0x12, 0x34, 0x56, 0x78})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Read[uint32](sr, 0, "bench")
	}
}
