package id3tag

import (
	"strconv"
	"strings"

	"github.com/simonhull/id3tag/internal/id3v1"
)

// AddFrame appends an empty frame of type ft. Duplicates are allowed.
func (f *File) AddFrame(ft FrameType) *Frame { return f.tag.AddFrame(ft) }

// Frame returns the first frame of type ft, or nil.
func (f *File) Frame(ft FrameType) *Frame { return f.tag.FindFirst(ft) }

// Frames returns every frame of type ft in tag order.
func (f *File) Frames(ft FrameType) []*Frame { return f.tag.FindAll(ft) }

// RemoveFrame removes and returns the first frame of type ft, or nil.
func (f *File) RemoveFrame(ft FrameType) *Frame { return f.tag.RemoveFirst(ft) }

// RemoveFrames removes and returns every frame of type ft.
func (f *File) RemoveFrames(ft FrameType) []*Frame { return f.tag.RemoveAll(ft) }

// Text returns the text of the first frame of type ft, or "".
func (f *File) Text(ft FrameType) string {
	fr := f.tag.FindFirst(ft)
	if fr == nil {
		return ""
	}
	if b, ok := fr.Text(); ok {
		return b.Text()
	}
	return ""
}

// SetText sets the text of the first frame of type ft, adding the frame if
// needed. The text is written as UTF-16.
func (f *File) SetText(ft FrameType, s string) error {
	return f.SetTextWithEncoding(EncodingUTF16, ft, s)
}

// SetTextWithEncoding is SetText with an explicit encoding.
func (f *File) SetTextWithEncoding(enc Encoding, ft FrameType, s string) error {
	if !ft.IsText() {
		return &InvalidArgumentError{Field: "frame type", Value: ft, Reason: "not a text information frame"}
	}
	if !enc.Valid() {
		return &InvalidArgumentError{Field: "encoding", Value: byte(enc), Reason: "must be 0 or 1"}
	}
	f.setText(enc, ft, s)
	return nil
}

func (f *File) setText(enc Encoding, ft FrameType, s string) {
	fr := f.tag.FindFirst(ft)
	if fr == nil {
		fr = f.tag.AddFrame(ft)
	}
	b, ok := fr.Text()
	if !ok {
		b = &TextBody{}
		fr.Body, fr.Flags = b, 0
	}
	b.SetEncoding(enc)
	b.SetText(s)
}

// TextAsInt returns the text of the first frame of type ft as a decimal
// number. Text that does not parse, or is negative, reads as 0; "3/12"
// reads as 0 here, use Track for TRCK.
func (f *File) TextAsInt(ft FrameType) int {
	return atoiOrZero(f.Text(ft))
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// SetTextInt stores n as the decimal text of the first frame of type ft.
// n must be at least 1.
func (f *File) SetTextInt(ft FrameType, n int) error {
	if n <= 0 {
		return &InvalidArgumentError{Field: ft.ID(), Value: n, Reason: "must be greater than or equal to 1"}
	}
	return f.SetText(ft, strconv.Itoa(n))
}

// Title returns the TIT2 text.
func (f *File) Title() string { return f.Text(FrameSongTitle) }

// SetTitle sets the TIT2 text.
func (f *File) SetTitle(s string) { f.setText(EncodingUTF16, FrameSongTitle, s) }

// Band returns the TPE2 text.
func (f *File) Band() string { return f.Text(FrameBand) }

// SetBand sets the TPE2 text.
func (f *File) SetBand(s string) { f.setText(EncodingUTF16, FrameBand, s) }

// LeadPerformer returns the TPE1 text.
func (f *File) LeadPerformer() string { return f.Text(FrameLeadPerformer) }

// SetLeadPerformer sets the TPE1 text.
func (f *File) SetLeadPerformer(s string) { f.setText(EncodingUTF16, FrameLeadPerformer, s) }

// Album returns the TALB text.
func (f *File) Album() string { return f.Text(FrameAlbumTitle) }

// SetAlbum sets the TALB text.
func (f *File) SetAlbum(s string) { f.setText(EncodingUTF16, FrameAlbumTitle, s) }

// Year returns the TYER year, or 0.
func (f *File) Year() int { return f.TextAsInt(FrameYear) }

// SetYear sets the TYER year.
func (f *File) SetYear(year int) error { return f.SetTextInt(FrameYear, year) }

// Track returns the TRCK track number, or 0. A "3/12" position reads
// as 3.
func (f *File) Track() int {
	s := strings.TrimSpace(f.Text(FrameTrackNumber))
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	return atoiOrZero(s)
}

// SetTrack sets the TRCK track number.
func (f *File) SetTrack(track int) error { return f.SetTextInt(FrameTrackNumber, track) }

// Genre returns the TCON genre. A "(N)" reference to the ID3v1 genre list
// is resolved to its name.
func (f *File) Genre() string {
	s := f.Text(FrameContentType)
	if code, ok := parseGenreRef(s); ok {
		if name := id3v1.GenreName(code); name != "" {
			return name
		}
	}
	return s
}

// SetGenre sets the TCON genre. Names in the ID3v1 genre list are stored
// as a "(N)" reference, anything else as plain text.
func (f *File) SetGenre(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &InvalidArgumentError{Field: "genre", Value: `""`, Reason: "must not be empty"}
	}
	if code, ok := id3v1.LookupGenre(name); ok {
		name = genreText(code)
	}
	f.setText(EncodingUTF16, FrameContentType, name)
	return nil
}

// genreText formats an ID3v1 genre code as a TCON reference.
func genreText(code byte) string {
	return "(" + strconv.Itoa(int(code)) + ")"
}

// parseGenreRef parses a leading "(N)" TCON reference.
func parseGenreRef(s string) (byte, bool) {
	if !strings.HasPrefix(s, "(") {
		return 0, false
	}
	end := strings.IndexByte(s, ')')
	if end < 0 {
		return 0, false
	}
	n, err := strconv.ParseUint(s[1:end], 10, 8)
	if err != nil {
		return 0, false
	}
	return byte(n), true
}

// Rating returns the POPM rating, 0 when there is none.
func (f *File) Rating() int {
	fr := f.tag.FindFirst(FramePopularimeter)
	if fr == nil {
		return 0
	}
	if b, ok := fr.Popularimeter(); ok {
		return b.Rating()
	}
	return 0
}

// SetRating sets the POPM rating, 0 (unknown) to 255 (best).
func (f *File) SetRating(rating int) error {
	if rating < 0 || rating > 255 {
		return &InvalidArgumentError{Field: "rating", Value: rating, Reason: "must be between 0 and 255"}
	}
	fr := f.tag.FindFirst(FramePopularimeter)
	if fr == nil {
		fr = f.tag.AddFrame(FramePopularimeter)
	}
	b, ok := fr.Popularimeter()
	if !ok {
		b = &PopularimeterBody{}
		fr.Body, fr.Flags = b, 0
	}
	return b.SetRating(rating)
}
