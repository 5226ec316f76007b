package id3tag_test

import (
	"bytes"
	"testing"

	"github.com/bogem/id3v2/v2"

	"github.com/simonhull/id3tag"
)

// Tags written here must be readable by other ID3v2 libraries and the
// other way round.

func TestInterop_ReadBySecondLibrary(t *testing.T) {
	f := openEmpty(t)
	f.SetTitle("Eyes of a Stranger")
	f.SetLeadPerformer("Geoff Tate")
	f.SetAlbum("Operation: Mindcrime")
	if err := f.SetComments(id3tag.English, "remastered"); err != nil {
		t.Fatal(err)
	}
	if err := f.Save(); err != nil {
		t.Fatal(err)
	}

	other, err := id3v2.Open(f.Path(), id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("id3v2.Open: %v", err)
	}
	defer other.Close() //nolint:errcheck // Read-only use

	if other.Version() != 3 {
		t.Errorf("Version = %d, want 3", other.Version())
	}
	if other.Title() != "Eyes of a Stranger" || other.Artist() != "Geoff Tate" || other.Album() != "Operation: Mindcrime" {
		t.Errorf("got %q / %q / %q", other.Title(), other.Artist(), other.Album())
	}

	frames := other.GetFrames("COMM")
	if len(frames) != 1 {
		t.Fatalf("got %d COMM frames", len(frames))
	}
	comm, ok := frames[0].(id3v2.CommentFrame)
	if !ok || comm.Text != "remastered" || comm.Language != "eng" {
		t.Errorf("COMM = %#v", frames[0])
	}
}

func TestInterop_ReadFromSecondLibrary(t *testing.T) {
	audio := audioBytes(4000)
	path := writeFile(t, audio)

	other, err := id3v2.Open(path, id3v2.Options{Parse: false})
	if err != nil {
		t.Fatal(err)
	}
	other.SetVersion(3)
	other.SetDefaultEncoding(id3v2.EncodingUTF16)
	other.SetTitle("Silent Lucidity")
	other.SetArtist("Queensrÿche")
	other.AddCommentFrame(id3v2.CommentFrame{
		Encoding: id3v2.EncodingUTF16,
		Language: "ger",
		Text:     "Kommentar",
	})
	if err := other.Save(); err != nil {
		t.Fatalf("id3v2 Save: %v", err)
	}
	if err := other.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := id3tag.Open(path, id3tag.WithStrictParsing())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if f.Title() != "Silent Lucidity" || f.LeadPerformer() != "Queensrÿche" {
		t.Errorf("got %q / %q", f.Title(), f.LeadPerformer())
	}
	if f.Comments(id3tag.German) != "Kommentar" {
		t.Errorf("Comments(ger) = %q", f.Comments(id3tag.German))
	}
	if f.AudioSize() != int64(len(audio)) {
		t.Errorf("AudioSize = %d, want %d", f.AudioSize(), len(audio))
	}
	if !bytes.Equal(readFile(t, path)[f.TagSize():], audio) {
		t.Error("audio changed")
	}
}
