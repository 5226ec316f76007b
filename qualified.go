package id3tag

import "strings"

// languageBody is implemented by the bodies of frames keyed by language.
type languageBody interface {
	Language() Language
}

// languageFrame returns the last frame of type ft in language lang, or nil.
// Duplicates left by other taggers are tolerated, not merged.
func (f *File) languageFrame(ft FrameType, lang Language) *Frame {
	var found *Frame
	for _, fr := range f.tag.FindAll(ft) {
		if b, ok := fr.Body.(languageBody); ok && b.Language() == lang {
			found = fr
		}
	}
	return found
}

func (f *File) removeLanguageFrame(ft FrameType, lang Language) bool {
	fr := f.languageFrame(ft, lang)
	if fr == nil {
		return false
	}
	return f.tag.Remove(fr)
}

func checkQualifiers(enc Encoding, lang Language) error {
	if !enc.Valid() {
		return &InvalidArgumentError{Field: "encoding", Value: byte(enc), Reason: "must be 0 or 1"}
	}
	if !lang.Valid() {
		return &InvalidArgumentError{Field: "language", Value: string(lang), Reason: "must be three lower case letters"}
	}
	return nil
}

// Comments returns the text of the comment in language lang, or "".
func (f *File) Comments(lang Language) string {
	if fr := f.languageFrame(FrameComments, lang); fr != nil {
		b, _ := fr.Comments()
		return b.Text()
	}
	return ""
}

// SetComments sets the comment in language lang, replacing any existing
// one. Blank comments are rejected; use RemoveComments.
func (f *File) SetComments(lang Language, text string) error {
	return f.SetCommentsWithEncoding(EncodingUTF16, lang, text)
}

// SetCommentsWithEncoding is SetComments with an explicit encoding.
func (f *File) SetCommentsWithEncoding(enc Encoding, lang Language, text string) error {
	if err := checkQualifiers(enc, lang); err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return &InvalidArgumentError{Field: "comments", Value: `""`, Reason: "must not be blank"}
	}

	fr := f.languageFrame(FrameComments, lang)
	if fr == nil {
		fr = f.tag.AddFrame(FrameComments)
	}
	b, _ := fr.Comments()
	b.SetEncoding(enc)
	b.SetLanguage(lang)
	b.SetText(text)
	return nil
}

// RemoveComments removes the comment in language lang and reports whether
// there was one.
func (f *File) RemoveComments(lang Language) bool {
	return f.removeLanguageFrame(FrameComments, lang)
}

// Lyrics returns the unsynchronized lyrics in language lang, or "".
func (f *File) Lyrics(lang Language) string {
	if fr := f.languageFrame(FrameUnsynchronizedLyrics, lang); fr != nil {
		b, _ := fr.Lyrics()
		return b.Text()
	}
	return ""
}

// SetLyrics sets the unsynchronized lyrics in language lang.
func (f *File) SetLyrics(lang Language, text string) error {
	return f.SetLyricsWithEncoding(EncodingUTF16, lang, text)
}

// SetLyricsWithEncoding is SetLyrics with an explicit encoding.
func (f *File) SetLyricsWithEncoding(enc Encoding, lang Language, text string) error {
	if err := checkQualifiers(enc, lang); err != nil {
		return err
	}

	fr := f.languageFrame(FrameUnsynchronizedLyrics, lang)
	if fr == nil {
		fr = f.tag.AddFrame(FrameUnsynchronizedLyrics)
	}
	b, _ := fr.Lyrics()
	b.SetEncoding(enc)
	b.SetLanguage(lang)
	b.SetText(text)
	return nil
}

// RemoveLyrics removes the unsynchronized lyrics in language lang.
func (f *File) RemoveLyrics(lang Language) bool {
	return f.removeLanguageFrame(FrameUnsynchronizedLyrics, lang)
}

// SynchronizedLyrics returns the timed lyrics in language lang, or nil.
func (f *File) SynchronizedLyrics(lang Language) []SynchronizedLyric {
	if fr := f.languageFrame(FrameSynchronizedLyrics, lang); fr != nil {
		b, _ := fr.SynchronizedLyrics()
		return b.Lyrics()
	}
	return nil
}

// SetSynchronizedLyrics sets the timed lyrics in language lang. Timestamps
// are in milliseconds.
func (f *File) SetSynchronizedLyrics(lang Language, lines []SynchronizedLyric) error {
	return f.SetSynchronizedLyricsWithEncoding(EncodingUTF16, lang, lines)
}

// SetSynchronizedLyricsWithEncoding is SetSynchronizedLyrics with an
// explicit encoding.
func (f *File) SetSynchronizedLyricsWithEncoding(enc Encoding, lang Language, lines []SynchronizedLyric) error {
	if err := checkQualifiers(enc, lang); err != nil {
		return err
	}

	fr := f.languageFrame(FrameSynchronizedLyrics, lang)
	if fr == nil {
		fr = f.tag.AddFrame(FrameSynchronizedLyrics)
	}
	b, _ := fr.SynchronizedLyrics()
	b.SetEncoding(enc)
	b.SetLanguage(lang)
	b.SetLyrics(lines)
	return nil
}

// RemoveSynchronizedLyrics removes the timed lyrics in language lang.
func (f *File) RemoveSynchronizedLyrics(lang Language) bool {
	return f.removeLanguageFrame(FrameSynchronizedLyrics, lang)
}
