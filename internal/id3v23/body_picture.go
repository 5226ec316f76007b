package id3v23

import (
	"errors"
	"fmt"

	binutil "github.com/simonhull/id3tag/internal/binary"
)

var (
	errAPICTooShort   = errors.New("APIC frame too short")
	errAPICNoMIMETerm = errors.New("APIC MIME type not null-terminated")
	errAPICTruncated  = errors.New("APIC frame truncated after MIME type")
)

// PictureBody is the payload of APIC frames.
//
//	[1 byte]              text encoding
//	[null-terminated]     MIME type, always ISO-8859-1
//	[1 byte]              picture type
//	[terminated]          description
//	[remaining]           picture data
type PictureBody struct {
	encoding    Encoding
	mimeType    string
	pictureType PictureType
	description string
	image       []byte
}

func (b *PictureBody) Encoding() Encoding           { return b.encoding }
func (b *PictureBody) SetEncoding(e Encoding)       { b.encoding = e }
func (b *PictureBody) MIMEType() string             { return b.mimeType }
func (b *PictureBody) SetMIMEType(s string)         { b.mimeType = s }
func (b *PictureBody) PictureType() PictureType     { return b.pictureType }
func (b *PictureBody) SetPictureType(t PictureType) { b.pictureType = t }
func (b *PictureBody) Description() string          { return b.description }
func (b *PictureBody) SetDescription(s string)      { b.description = s }
func (b *PictureBody) Image() []byte                { return b.image }

// SetImage stores a copy of data.
func (b *PictureBody) SetImage(data []byte) { b.image = append([]byte(nil), data...) }

func (b *PictureBody) Decode(data []byte) error {
	if len(data) < 3 {
		return errAPICTooShort
	}
	enc := Encoding(data[0])
	if !enc.Valid() {
		return fmt.Errorf("invalid text encoding %d", data[0])
	}

	mime, rest, ok := splitTerminated(data[1:], EncodingISO88591)
	if !ok {
		return errAPICNoMIMETerm
	}
	if len(rest) < 1 {
		return errAPICTruncated
	}
	mimeType, err := EncodingISO88591.decode(mime)
	if err != nil {
		return err
	}
	pictureType := PictureType(rest[0])

	desc, image, err := readTerminated(rest[1:], enc, "picture description")
	if err != nil {
		return err
	}

	b.encoding = enc
	b.mimeType = mimeType
	b.pictureType = pictureType
	b.description = desc
	b.image = append([]byte(nil), image...)
	return nil
}

func (b *PictureBody) Encode(sw *binutil.SafeWriter) error {
	mime, err := encodeTerminated(b.mimeType, EncodingISO88591)
	if err != nil {
		return err
	}
	desc, err := encodeTerminated(b.description, b.encoding)
	if err != nil {
		return err
	}
	if err := binutil.Write[uint8](sw, uint8(b.encoding)); err != nil {
		return err
	}
	if err := sw.WriteBytes(mime); err != nil {
		return err
	}
	if err := binutil.Write[uint8](sw, uint8(b.pictureType)); err != nil {
		return err
	}
	if err := sw.WriteBytes(desc); err != nil {
		return err
	}
	return sw.WriteBytes(b.image)
}

func (b *PictureBody) Size() int { return encodedSize(b) }

func (b *PictureBody) String() string {
	return fmt.Sprintf("%s, %s, %d bytes", b.pictureType, b.mimeType, len(b.image))
}
