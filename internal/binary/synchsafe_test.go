package binary

import (
	"bytes"
	"testing"
)

func TestSynchsafe_RoundTrip(t *testing.T) {
	tests := []struct {
		value uint32
		bytes []byte
	}{
		{0, []byte{0, 0, 0, 0}},
		{127, []byte{0, 0, 0, 0x7F}},
		{128, []byte{0, 0, 0x01, 0x00}},
		{1024, []byte{0, 0, 0x08, 0x00}},
		{MaxSynchsafe, []byte{0x7F, 0x7F, 0x7F, 0x7F}},
	}

	for _, tt := range tests {
		if got := EncodeSynchsafe(tt.value); !bytes.Equal(got, tt.bytes) {
			t.Errorf("EncodeSynchsafe(%d) = %v, want %v", tt.value, got, tt.bytes)
		}
		if got := DecodeSynchsafe(tt.bytes); got != tt.value {
			t.Errorf("DecodeSynchsafe(%v) = %d, want %d", tt.bytes, got, tt.value)
		}
	}

	if DecodeSynchsafe([]byte{1, 2}) != 0 {
		t.Error("short input should decode to 0")
	}
}

func TestRemoveUnsynchronisation(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"no marker", []byte{0x01, 0xFF, 0xE0}, []byte{0x01, 0xFF, 0xE0}},
		{"single marker", []byte{0xFF, 0x00, 0xE0}, []byte{0xFF, 0xE0}},
		{"trailing marker", []byte{0x10, 0xFF, 0x00}, []byte{0x10, 0xFF}},
		{"double", []byte{0xFF, 0x00, 0x00}, []byte{0xFF, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveUnsynchronisation(tt.in); !bytes.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
