// Package id3v1 reads the fixed 128-byte ID3v1 and ID3v1.1 tag at the end
// of an MP3 file.
package id3v1

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"

	binutil "github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/types"
)

// TagSize is the size of an ID3v1 tag.
const TagSize = 128

// Layout:
//
//	[3]   "TAG"
//	[30]  title
//	[30]  artist
//	[30]  album
//	[4]   year
//	[30]  comment, or [28] comment + [1] zero + [1] track (ID3v1.1)
//	[1]   genre
const (
	offTitle   = 3
	offArtist  = 33
	offAlbum   = 63
	offYear    = 93
	offComment = 97
	offGenre   = 127
	fieldSize  = 30
)

var marker = []byte("TAG")

// Tag is a decoded ID3v1 tag. Text fields are trimmed of NUL and space
// padding.
type Tag struct {
	Title   string
	Artist  string
	Album   string
	// Year is empty unless the field holds four digits.
	Year    string
	Comment string

	// Track is 0 for ID3v1.0 tags.
	Track byte

	// Genre indexes the genre table; GenreNone means no genre.
	Genre byte
}

// GenreName returns the name of the tag's genre, or "".
func (t *Tag) GenreName() string {
	return GenreName(t.Genre)
}

// Status is the outcome of looking for a tag.
type Status int

const (
	// StatusNotFound means the file has no ID3v1 tag.
	StatusNotFound Status = iota

	// StatusFound means Result.Tag holds the decoded tag.
	StatusFound

	// StatusMalformed means the TAG marker is present but the tag could
	// not be read. Result.Err says why.
	StatusMalformed
)

func (s Status) String() string {
	switch s {
	case StatusNotFound:
		return "not found"
	case StatusFound:
		return "found"
	case StatusMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is what Read found.
type Result struct {
	Status Status
	Tag    *Tag
	Err    error
}

// Read looks for a tag in the last TagSize bytes of r.
func Read(r io.ReaderAt, size int64, path string) Result {
	if size < TagSize {
		return Result{Status: StatusNotFound}
	}
	sr := binutil.NewSafeReader(r, size, path)
	off := size - TagSize

	head := make([]byte, len(marker))
	if err := sr.ReadAt(head, off, "ID3v1 marker"); err != nil {
		var oob *types.OutOfBoundsError
		if errors.As(err, &oob) {
			return Result{Status: StatusNotFound}
		}
		return Result{Status: StatusMalformed, Err: err}
	}
	if !bytes.Equal(head, marker) {
		return Result{Status: StatusNotFound}
	}

	buf := make([]byte, TagSize)
	if err := sr.ReadAt(buf, off, "ID3v1 tag"); err != nil {
		return Result{Status: StatusMalformed, Err: err}
	}
	tag, err := Decode(buf)
	if err != nil {
		return Result{Status: StatusMalformed, Err: &types.CorruptedFileError{
			Path:   path,
			Reason: err.Error(),
			Offset: off,
		}}
	}
	return Result{Status: StatusFound, Tag: tag}
}

// Decode parses a TagSize-byte buffer that starts with the TAG marker.
func Decode(b []byte) (*Tag, error) {
	if len(b) != TagSize {
		return nil, fmt.Errorf("ID3v1 tag is %d bytes, want %d", len(b), TagSize)
	}
	if !bytes.HasPrefix(b, marker) {
		return nil, errors.New("missing TAG marker")
	}

	t := &Tag{Genre: b[offGenre]}
	var err error
	field := func(from, to int) string {
		if err != nil {
			return ""
		}
		var s string
		s, err = decodeField(b[from:to])
		return s
	}

	t.Title = field(offTitle, offTitle+fieldSize)
	t.Artist = field(offArtist, offArtist+fieldSize)
	t.Album = field(offAlbum, offAlbum+fieldSize)
	t.Year = field(offYear, offComment)

	comment := b[offComment : offComment+fieldSize]
	if comment[28] == 0 && comment[29] != 0 {
		t.Track = comment[29]
		comment = comment[:28]
	}
	t.Comment = field(offComment, offComment+len(comment))
	if err != nil {
		return nil, err
	}

	if !validYear(t.Year) {
		t.Year = ""
	}
	return t, nil
}

// validYear reports whether s is four digits. Anything else is dropped
// rather than failing the whole tag.
func validYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// decodeField converts an ISO-8859-1 field, dropping everything from the
// first NUL and any trailing spaces.
func decodeField(b []byte) (string, error) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(s), " "), nil
}

// Bytes encodes the tag. Fields are truncated to their width and runes
// ISO-8859-1 cannot represent become '?'. A non-zero Track produces an
// ID3v1.1 tag.
func (t *Tag) Bytes() []byte {
	b := make([]byte, TagSize)
	copy(b, marker)
	putField(b[offTitle:offTitle+fieldSize], t.Title)
	putField(b[offArtist:offArtist+fieldSize], t.Artist)
	putField(b[offAlbum:offAlbum+fieldSize], t.Album)
	putField(b[offYear:offComment], t.Year)
	if t.Track != 0 {
		putField(b[offComment:offComment+28], t.Comment)
		b[offComment+29] = t.Track
	} else {
		putField(b[offComment:offComment+fieldSize], t.Comment)
	}
	b[offGenre] = t.Genre
	return b
}

func putField(dst []byte, s string) {
	i := 0
	for _, r := range s {
		if i == len(dst) {
			return
		}
		c, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			c = '?'
		}
		dst[i] = c
		i++
	}
}
