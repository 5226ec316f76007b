package id3v23

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is the text encoding byte that prefixes text-bearing frames.
// ID3v2.3 defines only ISO-8859-1 and UTF-16 with a byte order mark.
type Encoding byte

const (
	EncodingISO88591 Encoding = 0
	EncodingUTF16    Encoding = 1
)

// utf16BOM writes little-endian with a BOM and honors whatever BOM it reads.
var utf16BOM = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)

// Valid reports whether e is an encoding ID3v2.3 defines.
func (e Encoding) Valid() bool {
	return e == EncodingISO88591 || e == EncodingUTF16
}

func (e Encoding) String() string {
	switch e {
	case EncodingISO88591:
		return "ISO-8859-1"
	case EncodingUTF16:
		return "UTF-16"
	default:
		return fmt.Sprintf("Encoding(%d)", byte(e))
	}
}

// terminator returns the string terminator for e.
func (e Encoding) terminator() []byte {
	if e == EncodingUTF16 {
		return []byte{0, 0}
	}
	return []byte{0}
}

// encode converts s to e. Runes ISO-8859-1 cannot represent are replaced.
func (e Encoding) encode(s string) ([]byte, error) {
	switch e {
	case EncodingISO88591:
		return encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder()).Bytes([]byte(s))
	case EncodingUTF16:
		if s == "" {
			return []byte{0xFF, 0xFE}, nil
		}
		return utf16BOM.NewEncoder().Bytes([]byte(s))
	default:
		return nil, fmt.Errorf("invalid text encoding %d", byte(e))
	}
}

// decode converts b from e to UTF-8, dropping trailing NULs.
func (e Encoding) decode(b []byte) (string, error) {
	var (
		out []byte
		err error
	)
	switch e {
	case EncodingISO88591:
		out, err = charmap.ISO8859_1.NewDecoder().Bytes(b)
	case EncodingUTF16:
		b = trimUTF16(b)
		if len(b) < 2 {
			return "", nil
		}
		out, err = utf16BOM.NewDecoder().Bytes(b)
	default:
		return "", fmt.Errorf("invalid text encoding %d", byte(e))
	}
	if err != nil {
		return "", fmt.Errorf("decode %s text: %w", e, err)
	}
	return strings.TrimRight(string(out), "\x00"), nil
}

// trimUTF16 drops an odd final byte and trailing NUL code units.
func trimUTF16(b []byte) []byte {
	b = b[:len(b)&^1]
	for len(b) >= 2 && b[len(b)-2] == 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-2]
	}
	return b
}

// skipZerosBeforeBOM drops the zero bytes some writers leave between a
// terminator and the byte order mark of the next string. b is returned
// unchanged when no BOM follows the zeros.
func skipZerosBeforeBOM(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	if i == 0 || len(b)-i < 2 {
		return b
	}
	if bom := b[i : i+2]; bom[0] == 0xFF && bom[1] == 0xFE || bom[0] == 0xFE && bom[1] == 0xFF {
		return b[i:]
	}
	return b
}

// splitTerminated splits b at the first terminator for e. ok is false when
// b holds no terminator.
func splitTerminated(b []byte, e Encoding) (head, rest []byte, ok bool) {
	if e != EncodingUTF16 {
		i := bytes.IndexByte(b, 0)
		if i < 0 {
			return b, nil, false
		}
		return b[:i], b[i+1:], true
	}

	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return b[:i], b[i+2:], true
		}
	}
	return b, nil, false
}

// readTerminated decodes a terminated string from the front of b.
func readTerminated(b []byte, e Encoding, what string) (string, []byte, error) {
	head, rest, ok := splitTerminated(b, e)
	if !ok {
		return "", nil, fmt.Errorf("%s is not terminated", what)
	}
	s, err := e.decode(head)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", what, err)
	}
	return s, rest, nil
}

// encodeTerminated encodes s followed by its terminator.
func encodeTerminated(s string, e Encoding) ([]byte, error) {
	b, err := e.encode(s)
	if err != nil {
		return nil, err
	}
	return append(b, e.terminator()...), nil
}
