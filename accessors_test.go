package id3tag_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/simonhull/id3tag"
)

func expectInvalidArgument(t *testing.T, err error) {
	t.Helper()
	var aerr *id3tag.InvalidArgumentError
	if !errors.As(err, &aerr) {
		t.Errorf("expected *InvalidArgumentError, got %v", err)
	}
}

func TestComments_OnePerLanguage(t *testing.T) {
	f := openEmpty(t)

	for _, text := range []string{"first", "second"} {
		if err := f.SetComments(id3tag.English, text); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SetComments(id3tag.German, "dritte"); err != nil {
		t.Fatal(err)
	}

	if n := len(f.Frames(id3tag.FrameComments)); n != 2 {
		t.Errorf("got %d COMM frames, want 2", n)
	}
	if f.Comments(id3tag.English) != "second" || f.Comments(id3tag.German) != "dritte" {
		t.Errorf("got %q / %q", f.Comments(id3tag.English), f.Comments(id3tag.German))
	}
	if f.Comments(id3tag.French) != "" {
		t.Error("comment in an unused language")
	}

	if !f.RemoveComments(id3tag.English) || f.RemoveComments(id3tag.English) {
		t.Error("RemoveComments should succeed once")
	}
	if n := len(f.Frames(id3tag.FrameComments)); n != 1 {
		t.Errorf("got %d COMM frames after removal, want 1", n)
	}
}

func TestComments_LastDuplicateWins(t *testing.T) {
	f := openEmpty(t)
	for _, text := range []string{"older", "newer"} {
		b, _ := f.AddFrame(id3tag.FrameComments).Comments()
		b.SetLanguage(id3tag.English)
		b.SetText(text)
	}

	if got := f.Comments(id3tag.English); got != "newer" {
		t.Errorf("Comments = %q, want newer", got)
	}
	if err := f.SetComments(id3tag.English, "updated"); err != nil {
		t.Fatal(err)
	}
	frames := f.Frames(id3tag.FrameComments)
	if len(frames) != 2 {
		t.Fatalf("got %d COMM frames, want 2", len(frames))
	}
	first, _ := frames[0].Comments()
	last, _ := frames[1].Comments()
	if first.Text() != "older" || last.Text() != "updated" {
		t.Errorf("duplicates not left as they were: %v", frames)
	}
}

func TestComments_InvalidArguments(t *testing.T) {
	f := openEmpty(t)

	expectInvalidArgument(t, f.SetComments(id3tag.English, "   "))
	expectInvalidArgument(t, f.SetComments(id3tag.Language("en"), "text"))
	expectInvalidArgument(t, f.SetCommentsWithEncoding(id3tag.Encoding(3), id3tag.English, "text"))

	if n := len(f.Frames(id3tag.FrameComments)); n != 0 {
		t.Errorf("rejected calls added %d frames", n)
	}
}

func TestCommentsWithEncoding(t *testing.T) {
	f := openEmpty(t)
	if err := f.SetCommentsWithEncoding(id3tag.EncodingISO88591, id3tag.French, "très bien"); err != nil {
		t.Fatal(err)
	}
	b, _ := f.Frame(id3tag.FrameComments).Comments()
	if b.Encoding() != id3tag.EncodingISO88591 || b.Language() != id3tag.French {
		t.Errorf("got %v %v", b.Encoding(), b.Language())
	}
}

func TestLyrics(t *testing.T) {
	f := openEmpty(t)
	if err := f.SetLyrics(id3tag.English, "line one\nline two"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetLyrics(id3tag.English, "replaced"); err != nil {
		t.Fatal(err)
	}
	if n := len(f.Frames(id3tag.FrameUnsynchronizedLyrics)); n != 1 {
		t.Errorf("got %d USLT frames", n)
	}
	if f.Lyrics(id3tag.English) != "replaced" {
		t.Errorf("Lyrics = %q", f.Lyrics(id3tag.English))
	}
	expectInvalidArgument(t, f.SetLyrics(id3tag.Language("ENG"), "x"))
	if !f.RemoveLyrics(id3tag.English) || f.Lyrics(id3tag.English) != "" {
		t.Error("RemoveLyrics failed")
	}
}

func TestSynchronizedLyrics(t *testing.T) {
	f := openEmpty(t)
	lines := []id3tag.SynchronizedLyric{{Text: "hello", Timestamp: 500}, {Text: "world", Timestamp: 1500}}
	if err := f.SetSynchronizedLyrics(id3tag.English, lines); err != nil {
		t.Fatal(err)
	}
	lines[0].Text = "mutated"

	got := f.SynchronizedLyrics(id3tag.English)
	if len(got) != 2 || got[0].Text != "hello" || got[1].Timestamp != 1500 {
		t.Errorf("got %+v", got)
	}
	if f.SynchronizedLyrics(id3tag.Spanish) != nil {
		t.Error("lyrics in an unused language")
	}
	if !f.RemoveSynchronizedLyrics(id3tag.English) {
		t.Error("RemoveSynchronizedLyrics failed")
	}
}

func TestTextAsInt_Defaults(t *testing.T) {
	tests := []struct {
		text  string
		want  int
		track int
	}{
		{"12", 12, 12},
		{"-5", 0, 0},
		{"abc", 0, 0},
		{"", 0, 0},
		{"3/12", 0, 3},
		{" 3/12", 0, 3},
		{"x/12", 0, 0},
	}

	f := openEmpty(t)
	for _, tt := range tests {
		if err := f.SetText(id3tag.FrameTrackNumber, tt.text); err != nil {
			t.Fatal(err)
		}
		if got := f.TextAsInt(id3tag.FrameTrackNumber); got != tt.want {
			t.Errorf("TextAsInt(TRCK) with %q = %d, want %d", tt.text, got, tt.want)
		}
		if got := f.Track(); got != tt.track {
			t.Errorf("Track() with %q = %d, want %d", tt.text, got, tt.track)
		}
	}
}

func TestSetTextInt_RejectsNonPositive(t *testing.T) {
	f := openEmpty(t)
	if err := f.SetTrack(4); err != nil {
		t.Fatal(err)
	}

	expectInvalidArgument(t, f.SetTrack(0))
	expectInvalidArgument(t, f.SetTrack(-1))
	expectInvalidArgument(t, f.SetYear(0))

	if f.Text(id3tag.FrameTrackNumber) != "4" {
		t.Errorf("rejected value changed TRCK to %q", f.Text(id3tag.FrameTrackNumber))
	}
	if f.Frame(id3tag.FrameYear) != nil {
		t.Error("rejected value created TYER")
	}
}

func TestSetText_NotATextFrame(t *testing.T) {
	f := openEmpty(t)
	expectInvalidArgument(t, f.SetText(id3tag.FrameComments, "x"))
	expectInvalidArgument(t, f.SetTextWithEncoding(id3tag.Encoding(9), id3tag.FrameSongTitle, "x"))
	if len(f.Tag().Frames()) != 0 {
		t.Error("rejected calls added frames")
	}
}

func TestNamedTextFields(t *testing.T) {
	f := openEmpty(t)
	f.SetTitle("Title")
	f.SetBand("Band")
	f.SetLeadPerformer("Singer")
	f.SetAlbum("Album")
	if err := f.SetYear(1984); err != nil {
		t.Fatal(err)
	}

	got := map[id3tag.FrameType]string{
		id3tag.FrameSongTitle:     f.Title(),
		id3tag.FrameBand:          f.Band(),
		id3tag.FrameLeadPerformer: f.LeadPerformer(),
		id3tag.FrameAlbumTitle:    f.Album(),
	}
	for ft, v := range got {
		if f.Text(ft) != v || v == "" {
			t.Errorf("%s = %q", ft.ID(), v)
		}
	}
	if f.Year() != 1984 {
		t.Errorf("Year = %d", f.Year())
	}

	// Setters update the existing frame.
	f.SetTitle("New Title")
	if n := len(f.Frames(id3tag.FrameSongTitle)); n != 1 {
		t.Errorf("got %d TIT2 frames", n)
	}
}

func TestGenre(t *testing.T) {
	f := openEmpty(t)

	if err := f.SetGenre("heavy metal"); err != nil {
		t.Fatal(err)
	}
	if f.Text(id3tag.FrameContentType) != "(137)" || f.Genre() != "Heavy Metal" {
		t.Errorf("TCON = %q, Genre = %q", f.Text(id3tag.FrameContentType), f.Genre())
	}

	if err := f.SetGenre("Chiptune Jazz"); err != nil {
		t.Fatal(err)
	}
	if f.Genre() != "Chiptune Jazz" {
		t.Errorf("Genre = %q", f.Genre())
	}

	if err := f.SetText(id3tag.FrameContentType, "(255)"); err != nil {
		t.Fatal(err)
	}
	if f.Genre() != "(255)" {
		t.Errorf("Genre = %q, want the raw text", f.Genre())
	}

	expectInvalidArgument(t, f.SetGenre(" "))
}

func TestRating(t *testing.T) {
	f := openEmpty(t)
	if f.Rating() != 0 {
		t.Errorf("Rating = %d without POPM", f.Rating())
	}

	expectInvalidArgument(t, f.SetRating(256))
	expectInvalidArgument(t, f.SetRating(-1))
	if f.Frame(id3tag.FramePopularimeter) != nil {
		t.Error("rejected rating created a POPM frame")
	}

	if err := f.SetRating(196); err != nil {
		t.Fatal(err)
	}
	if err := f.SetRating(255); err != nil {
		t.Fatal(err)
	}
	if f.Rating() != 255 || len(f.Frames(id3tag.FramePopularimeter)) != 1 {
		t.Errorf("Rating = %d, frames = %d", f.Rating(), len(f.Frames(id3tag.FramePopularimeter)))
	}
}

func TestPictures(t *testing.T) {
	f := openEmpty(t)
	front := &id3tag.Picture{MIMEType: "image/jpeg", Type: id3tag.PictureFrontCover, Data: []byte{0xFF, 0xD8, 1}}
	back := &id3tag.Picture{MIMEType: "image/png", Type: id3tag.PictureBackCover, Description: "back", Data: []byte{0x89, 'P'}}

	for _, p := range []*id3tag.Picture{front, back, front} {
		if err := f.SetPicture(p); err != nil {
			t.Fatal(err)
		}
	}
	if n := len(f.Pictures()); n != 2 {
		t.Errorf("got %d pictures, want 2", n)
	}

	got := f.Picture(id3tag.PictureBackCover)
	if got == nil || got.Description != "back" || !bytes.Equal(got.Data, back.Data) {
		t.Errorf("back cover = %+v", got)
	}
	if f.Picture(id3tag.PictureLeaflet) != nil {
		t.Error("picture of an unused type")
	}

	expectInvalidArgument(t, f.SetPicture(&id3tag.Picture{MIMEType: "image/png", Type: 0x20, Data: []byte{1}}))
	expectInvalidArgument(t, f.SetPicture(&id3tag.Picture{MIMEType: "image/png", Type: id3tag.PictureMedia}))
	expectInvalidArgument(t, f.SetPicture(nil))

	if !f.RemovePicture(id3tag.PictureFrontCover) || f.RemovePicture(id3tag.PictureFrontCover) {
		t.Error("RemovePicture should succeed once")
	}
}

func TestFrameCRUD(t *testing.T) {
	f := openEmpty(t)
	f.AddFrame(id3tag.FrameComposer)
	f.AddFrame(id3tag.FrameComposer)

	if f.Frame(id3tag.FrameComposer) == nil || len(f.Frames(id3tag.FrameComposer)) != 2 {
		t.Fatal("AddFrame does not append")
	}
	if f.RemoveFrame(id3tag.FrameComposer) == nil || len(f.Frames(id3tag.FrameComposer)) != 1 {
		t.Error("RemoveFrame should remove one frame")
	}
	if removed := f.RemoveFrames(id3tag.FrameComposer); len(removed) != 1 {
		t.Errorf("RemoveFrames removed %d", len(removed))
	}
	if f.RemoveFrame(id3tag.FrameComposer) != nil || f.RemoveFrames(id3tag.FrameComposer) != nil {
		t.Error("removing absent frames returned something")
	}
}

func TestAccessors_SurviveSave(t *testing.T) {
	f := openEmpty(t)
	f.SetTitle("Take Hold of the Flame")
	if err := f.SetComments(id3tag.English, "remastered"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetLyrics(id3tag.German, "Text"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetRating(128); err != nil {
		t.Fatal(err)
	}
	if err := f.SetPicture(&id3tag.Picture{MIMEType: "image/png", Type: id3tag.PictureFrontCover, Data: []byte("png")}); err != nil {
		t.Fatal(err)
	}
	if err := f.Save(); err != nil {
		t.Fatal(err)
	}

	again, err := id3tag.Open(f.Path())
	if err != nil {
		t.Fatal(err)
	}
	if again.Title() != "Take Hold of the Flame" ||
		again.Comments(id3tag.English) != "remastered" ||
		again.Lyrics(id3tag.German) != "Text" ||
		again.Rating() != 128 ||
		again.Picture(id3tag.PictureFrontCover) == nil {
		t.Errorf("reopened tag lost fields:\n%s", again)
	}
}
