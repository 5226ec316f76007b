package id3v23

import (
	"fmt"

	binutil "github.com/simonhull/id3tag/internal/binary"
)

// languageText is the layout shared by COMM and USLT:
//
//	[1 byte]          text encoding
//	[3 bytes]         language
//	[terminated]      content descriptor
//	[remaining]       text
type languageText struct {
	encoding    Encoding
	language    Language
	description string
	text        string
}

func (b *languageText) Encoding() Encoding      { return b.encoding }
func (b *languageText) SetEncoding(e Encoding)  { b.encoding = e }
func (b *languageText) Language() Language      { return b.language }
func (b *languageText) SetLanguage(l Language)  { b.language = l }
func (b *languageText) Description() string     { return b.description }
func (b *languageText) SetDescription(s string) { b.description = s }
func (b *languageText) Text() string            { return b.text }
func (b *languageText) SetText(s string)        { b.text = s }
func (b *languageText) String() string          { return fmt.Sprintf("[%s] %s", b.language, b.text) }

func (b *languageText) Decode(data []byte) error {
	if len(data) < 4 {
		return errBodyTooShort
	}
	enc := Encoding(data[0])
	if !enc.Valid() {
		return fmt.Errorf("invalid text encoding %d", data[0])
	}
	lang := Language(data[1:4])
	rest := data[4:]

	var desc string
	head, tail, ok := splitTerminated(rest, enc)
	if ok {
		var err error
		if desc, err = enc.decode(head); err != nil {
			return fmt.Errorf("content descriptor: %w", err)
		}
		rest = tail
		if enc == EncodingUTF16 {
			rest = skipZerosBeforeBOM(rest)
		}
	}

	text, err := enc.decode(rest)
	if err != nil {
		return err
	}

	b.encoding, b.language, b.description, b.text = enc, lang, desc, text
	return nil
}

func (b *languageText) Encode(sw *binutil.SafeWriter) error {
	desc, err := encodeTerminated(b.description, b.encoding)
	if err != nil {
		return err
	}
	text, err := b.encoding.encode(b.text)
	if err != nil {
		return err
	}
	if err := binutil.Write[uint8](sw, uint8(b.encoding)); err != nil {
		return err
	}
	if err := sw.WriteBytes(b.language.bytes()); err != nil {
		return err
	}
	if err := sw.WriteBytes(desc); err != nil {
		return err
	}
	return sw.WriteBytes(text)
}

// CommentsBody is the payload of COMM frames.
type CommentsBody struct {
	languageText
}

func (b *CommentsBody) Size() int { return encodedSize(b) }

// LyricsBody is the payload of USLT frames.
type LyricsBody struct {
	languageText
}

func (b *LyricsBody) Size() int { return encodedSize(b) }
