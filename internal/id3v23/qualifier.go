package id3v23

import (
	"fmt"
	"strings"

	"github.com/simonhull/id3tag/internal/types"
)

// Language is an ISO-639-2 code. It qualifies comment and lyrics frames:
// a tag holds at most one such frame per language.
type Language string

const (
	English      Language = "eng"
	French       Language = "fre"
	German       Language = "ger"
	Italian      Language = "ita"
	Japanese     Language = "jpn"
	Russian      Language = "rus"
	Spanish      Language = "spa"
	Undetermined Language = "und"
)

// ParseLanguage validates s as a three letter language code. Upper case is
// folded to lower case.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(s))
	if !l.Valid() {
		return "", &types.InvalidArgumentError{
			Field:  "language",
			Value:  fmt.Sprintf("%q", s),
			Reason: "must be three ASCII letters",
		}
	}
	return l, nil
}

// Valid reports whether l is exactly three lower case ASCII letters.
func (l Language) Valid() bool {
	if len(l) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if l[i] < 'a' || l[i] > 'z' {
			return false
		}
	}
	return true
}

// bytes returns the 3-byte wire form, space padded or truncated.
func (l Language) bytes() []byte {
	b := []byte("   ")
	copy(b, l)
	return b
}

// PictureType categorizes an attached picture. A tag holds at most one
// picture per type.
type PictureType byte

const (
	PictureOther PictureType = iota
	PictureFileIcon
	PictureOtherFileIcon
	PictureFrontCover
	PictureBackCover
	PictureLeaflet
	PictureMedia
	PictureLeadArtist
	PictureArtist
	PictureConductor
	PictureBand
	PictureComposer
	PictureLyricist
	PictureRecordingLocation
	PictureDuringRecording
	PictureDuringPerformance
	PictureVideoCapture
	PictureBrightFish
	PictureIllustration
	PictureBandLogotype
	PicturePublisherLogotype
)

var pictureTypeNames = [...]string{
	"Other",
	"32x32 pixels file icon (PNG only)",
	"Other file icon",
	"Cover (front)",
	"Cover (back)",
	"Leaflet page",
	"Media (e.g. label side of CD)",
	"Lead artist/lead performer/soloist",
	"Artist/performer",
	"Conductor",
	"Band/Orchestra",
	"Composer",
	"Lyricist/text writer",
	"Recording Location",
	"During recording",
	"During performance",
	"Movie/video screen capture",
	"A bright coloured fish",
	"Illustration",
	"Band/artist logotype",
	"Publisher/Studio logotype",
}

// Valid reports whether p is one of the defined picture types.
func (p PictureType) Valid() bool {
	return p <= PicturePublisherLogotype
}

func (p PictureType) String() string {
	if !p.Valid() {
		return fmt.Sprintf("PictureType(0x%02X)", byte(p))
	}
	return pictureTypeNames[p]
}
