package binary

import (
	"bytes"
	"io"
	"testing"
)

func TestWrite_BigEndian(t *testing.T) {
	tests := []struct {
		name  string
		write func(sw *SafeWriter) error
		want  []byte
	}{
		{"uint8", func(sw *SafeWriter) error { return Write[uint8](sw, 0xAB) }, []byte{0xAB}},
		{"uint16", func(sw *SafeWriter) error { return Write[uint16](sw, 0x0102) }, []byte{0x01, 0x02}},
		{"uint32", func(sw *SafeWriter) error { return Write[uint32](sw, 0x12345678) }, []byte{0x12, 0x34, 0x56, 0x78}},
		{"uint64", func(sw *SafeWriter) error { return Write[uint64](sw, 0x0102030405060708) },
			[]byte{1, 2, 3, 4, 5, 6, 7, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := tt.write(NewSafeWriter(buf)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), tt.want) {
				t.Errorf("expected %v, got %v", tt.want, buf.Bytes())
			}
		})
	}
}

func TestSafeWriter_Offset(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf)

	if sw.Offset() != 0 {
		t.Errorf("expected initial offset 0, got %d", sw.Offset())
	}

	_ = sw.WriteString("ID3")
	_ = Write[uint16](sw, 0x0300)
	_ = sw.WriteZeros(5)

	if sw.Offset() != 10 {
		t.Errorf("expected offset 10, got %d", sw.Offset())
	}
	if buf.Len() != 10 {
		t.Errorf("expected 10 bytes written, got %d", buf.Len())
	}
}

func TestSafeWriter_CountsIntoDiscard(t *testing.T) {
	sw := NewSafeWriter(io.Discard)
	_ = sw.WriteBytes(make([]byte, 1234))
	_ = sw.WriteZeros(0)
	_ = sw.WriteZeros(-3)

	if sw.Offset() != 1234 {
		t.Errorf("expected 1234, got %d", sw.Offset())
	}
}
