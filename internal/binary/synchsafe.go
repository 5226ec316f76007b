package binary

import "bytes"

// MaxSynchsafe is the largest value a 4-byte synchsafe integer can hold.
const MaxSynchsafe = 1<<28 - 1

// DecodeSynchsafe decodes a 4-byte synchsafe integer (7 significant bits
// per byte). Any other length decodes to 0.
func DecodeSynchsafe(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}

// EncodeSynchsafe encodes v as a 4-byte synchsafe integer. Values above
// MaxSynchsafe are truncated to their low 28 bits.
func EncodeSynchsafe(v uint32) []byte {
	return []byte{
		byte(v>>21) & 0x7F,
		byte(v>>14) & 0x7F,
		byte(v>>7) & 0x7F,
		byte(v) & 0x7F,
	}
}

// RemoveUnsynchronisation reverses the ID3 unsynchronisation scheme by
// dropping the 0x00 inserted after every 0xFF.
func RemoveUnsynchronisation(b []byte) []byte {
	if !bytes.Contains(b, []byte{0xFF, 0x00}) {
		return b
	}

	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		out = append(out, b[i])
		if b[i] == 0xFF && i+1 < len(b) && b[i+1] == 0x00 {
			i++
		}
	}
	return out
}
