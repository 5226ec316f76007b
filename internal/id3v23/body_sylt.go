package id3v23

import (
	"encoding/binary"
	"fmt"

	binutil "github.com/simonhull/id3tag/internal/binary"
)

// TimestampFormat says what SYLT timestamps count.
type TimestampFormat byte

const (
	TimestampMPEGFrames   TimestampFormat = 1
	TimestampMilliseconds TimestampFormat = 2
)

// LyricsContentType says what the synchronized text is.
type LyricsContentType byte

const (
	ContentOther LyricsContentType = iota
	ContentLyrics
	ContentTranscription
	ContentMovement
	ContentEvents
	ContentChord
	ContentTrivia
)

// SynchronizedLyric is one line of synchronized text and the time it starts.
type SynchronizedLyric struct {
	Text      string
	Timestamp uint32
}

// SynchronizedLyricsBody is the payload of SYLT frames.
//
//	[1 byte]              text encoding
//	[3 bytes]             language
//	[1 byte]              timestamp format
//	[1 byte]              content type
//	[terminated]          content descriptor
//	repeated:
//	[terminated]          text
//	[4 bytes]             timestamp
type SynchronizedLyricsBody struct {
	encoding    Encoding
	language    Language
	format      TimestampFormat
	contentType LyricsContentType
	description string
	lyrics      []SynchronizedLyric
}

func (b *SynchronizedLyricsBody) Encoding() Encoding                   { return b.encoding }
func (b *SynchronizedLyricsBody) SetEncoding(e Encoding)               { b.encoding = e }
func (b *SynchronizedLyricsBody) Language() Language                   { return b.language }
func (b *SynchronizedLyricsBody) SetLanguage(l Language)               { b.language = l }
func (b *SynchronizedLyricsBody) TimestampFormat() TimestampFormat     { return b.format }
func (b *SynchronizedLyricsBody) SetTimestampFormat(f TimestampFormat) { b.format = f }
func (b *SynchronizedLyricsBody) ContentType() LyricsContentType       { return b.contentType }
func (b *SynchronizedLyricsBody) SetContentType(c LyricsContentType)   { b.contentType = c }
func (b *SynchronizedLyricsBody) Description() string                  { return b.description }
func (b *SynchronizedLyricsBody) SetDescription(s string)              { b.description = s }

// Lyrics returns a copy of the synchronized lines.
func (b *SynchronizedLyricsBody) Lyrics() []SynchronizedLyric {
	return append([]SynchronizedLyric(nil), b.lyrics...)
}

// SetLyrics replaces the synchronized lines with a copy of lines.
func (b *SynchronizedLyricsBody) SetLyrics(lines []SynchronizedLyric) {
	b.lyrics = append([]SynchronizedLyric(nil), lines...)
}

func (b *SynchronizedLyricsBody) Decode(data []byte) error {
	if len(data) < 6 {
		return errBodyTooShort
	}
	enc := Encoding(data[0])
	if !enc.Valid() {
		return fmt.Errorf("invalid text encoding %d", data[0])
	}
	lang := Language(data[1:4])
	format := TimestampFormat(data[4])
	if format != TimestampMPEGFrames && format != TimestampMilliseconds {
		return fmt.Errorf("invalid timestamp format %d", data[4])
	}
	contentType := LyricsContentType(data[5])

	desc, rest, err := readTerminated(data[6:], enc, "content descriptor")
	if err != nil {
		return err
	}

	var lyrics []SynchronizedLyric
	for len(rest) > 0 {
		var text string
		text, rest, err = readTerminated(rest, enc, fmt.Sprintf("lyric %d", len(lyrics)))
		if err != nil {
			return err
		}
		if len(rest) < 4 {
			return fmt.Errorf("lyric %d: missing timestamp", len(lyrics))
		}
		lyrics = append(lyrics, SynchronizedLyric{
			Text:      text,
			Timestamp: binary.BigEndian.Uint32(rest[:4]),
		})
		rest = rest[4:]
	}

	b.encoding = enc
	b.language = lang
	b.format = format
	b.contentType = contentType
	b.description = desc
	b.lyrics = lyrics
	return nil
}

func (b *SynchronizedLyricsBody) Encode(sw *binutil.SafeWriter) error {
	desc, err := encodeTerminated(b.description, b.encoding)
	if err != nil {
		return err
	}
	if err := binutil.Write[uint8](sw, uint8(b.encoding)); err != nil {
		return err
	}
	if err := sw.WriteBytes(b.language.bytes()); err != nil {
		return err
	}
	if err := binutil.Write[uint8](sw, uint8(b.format)); err != nil {
		return err
	}
	if err := binutil.Write[uint8](sw, uint8(b.contentType)); err != nil {
		return err
	}
	if err := sw.WriteBytes(desc); err != nil {
		return err
	}
	for _, l := range b.lyrics {
		text, err := encodeTerminated(l.Text, b.encoding)
		if err != nil {
			return err
		}
		if err := sw.WriteBytes(text); err != nil {
			return err
		}
		if err := binutil.Write[uint32](sw, l.Timestamp); err != nil {
			return err
		}
	}
	return nil
}

func (b *SynchronizedLyricsBody) Size() int { return encodedSize(b) }

func (b *SynchronizedLyricsBody) String() string {
	return fmt.Sprintf("[%s] %d lines", b.language, len(b.lyrics))
}
