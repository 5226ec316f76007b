package id3v23

import (
	"errors"
	"fmt"

	binutil "github.com/simonhull/id3tag/internal/binary"
)

var (
	errEmptyBody    = errors.New("frame body is empty")
	errBodyTooShort = errors.New("frame body too short")
)

// TextBody is the payload of the T??? text information frames.
type TextBody struct {
	encoding Encoding
	text     string
}

func (b *TextBody) Encoding() Encoding     { return b.encoding }
func (b *TextBody) SetEncoding(e Encoding) { b.encoding = e }
func (b *TextBody) Text() string           { return b.text }
func (b *TextBody) SetText(s string)       { b.text = s }

// Decode parses [encoding][text]. A trailing terminator is tolerated.
func (b *TextBody) Decode(data []byte) error {
	if len(data) == 0 {
		return errEmptyBody
	}
	enc := Encoding(data[0])
	text, err := enc.decode(data[1:])
	if err != nil {
		return err
	}
	b.encoding, b.text = enc, text
	return nil
}

func (b *TextBody) Encode(sw *binutil.SafeWriter) error {
	text, err := b.encoding.encode(b.text)
	if err != nil {
		return err
	}
	if err := binutil.Write[uint8](sw, uint8(b.encoding)); err != nil {
		return err
	}
	return sw.WriteBytes(text)
}

func (b *TextBody) Size() int { return encodedSize(b) }

func (b *TextBody) String() string { return b.text }

// RawBody carries frames this package does not interpret, and frames whose
// flags mark them compressed, encrypted or grouped. Its bytes are written
// back unchanged.
type RawBody struct {
	data []byte
}

func (b *RawBody) Data() []byte        { return b.data }
func (b *RawBody) SetData(data []byte) { b.data = append([]byte(nil), data...) }

func (b *RawBody) Decode(data []byte) error {
	b.SetData(data)
	return nil
}

func (b *RawBody) Encode(sw *binutil.SafeWriter) error {
	return sw.WriteBytes(b.data)
}

func (b *RawBody) Size() int { return len(b.data) }

func (b *RawBody) String() string { return fmt.Sprintf("%d bytes", len(b.data)) }
