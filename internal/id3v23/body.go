package id3v23

import (
	"io"

	binutil "github.com/simonhull/id3tag/internal/binary"
)

// Body is the payload of a frame. Each frame kind knows how to decode itself
// from the bytes that follow the frame header, how to encode itself back and
// how long that encoding is.
type Body interface {
	Decode(data []byte) error
	Encode(sw *binutil.SafeWriter) error
	Size() int
	String() string
}

// Encoded is implemented by bodies that carry a text encoding byte.
type Encoded interface {
	Encoding() Encoding
	SetEncoding(e Encoding)
}

// newBody returns the empty body for frames of type ft.
func newBody(ft FrameType) Body {
	switch ft {
	case FrameAttachedPicture:
		return &PictureBody{pictureType: PictureFrontCover}
	case FrameComments:
		return &CommentsBody{languageText{language: English}}
	case FrameUnsynchronizedLyrics:
		return &LyricsBody{languageText{language: English}}
	case FrameSynchronizedLyrics:
		return &SynchronizedLyricsBody{
			language:    English,
			format:      TimestampMilliseconds,
			contentType: ContentLyrics,
		}
	case FramePopularimeter:
		return &PopularimeterBody{counterWidth: 4}
	}
	if ft.IsText() {
		return &TextBody{}
	}
	return &RawBody{}
}

// encodedSize returns the number of bytes b encodes to, or 0 when it cannot
// be encoded.
func encodedSize(b Body) int {
	sw := binutil.NewSafeWriter(io.Discard)
	if err := b.Encode(sw); err != nil {
		return 0
	}
	return int(sw.Offset())
}
