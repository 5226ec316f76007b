package id3tag_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/simonhull/id3tag"
	binutil "github.com/simonhull/id3tag/internal/binary"
)

// audioBytes returns n bytes of a pattern that never forms "ID3" or "TAG".
func audioBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i%251) | 0x80
	}
	return b
}

// buildTag serializes a tag prepared by fill with the given padding.
func buildTag(t testing.TB, padding int, fill func(tag *id3tag.Tag)) []byte {
	t.Helper()
	tag := id3tag.NewTag()
	if fill != nil {
		fill(tag)
	}
	if err := tag.SetPadding(padding); err != nil {
		t.Fatal(err)
	}
	data, err := tag.Bytes()
	if err != nil {
		t.Fatalf("serialize tag: %v", err)
	}
	return data
}

// addText appends a text frame to tag.
func addText(tag *id3tag.Tag, ft id3tag.FrameType, enc id3tag.Encoding, s string) {
	b, _ := tag.AddFrame(ft).Text()
	b.SetEncoding(enc)
	b.SetText(s)
}

// writeFile writes the concatenation of parts to a new file and returns
// its path.
func writeFile(t testing.TB, parts ...[]byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "song.mp3")
	if err := os.WriteFile(path, bytes.Join(parts, nil), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t testing.TB, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

// rawTag builds an ID3v2.3 tag around already encoded frames.
func rawTag(frames ...[]byte) []byte {
	body := bytes.Join(frames, nil)
	hdr := append([]byte{'I', 'D', '3', 3, 0, 0}, binutil.EncodeSynchsafe(uint32(len(body)))...)
	return append(hdr, body...)
}

// rawFrame encodes a frame header and payload.
func rawFrame(id string, payload []byte) []byte {
	n := len(payload)
	hdr := []byte{id[0], id[1], id[2], id[3], byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n), 0, 0}
	return append(hdr, payload...)
}

// openEmpty opens a file with no tag and 1000 bytes of audio.
func openEmpty(t testing.TB) *id3tag.File {
	t.Helper()
	f, err := id3tag.Open(writeFile(t, audioBytes(1000)), id3tag.WithoutLegacyFallback())
	if err != nil {
		t.Fatal(err)
	}
	return f
}

// tempFiles returns the leftover temporary files next to path.
func tempFiles(t testing.TB, path string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".id3tag-*.tmp"))
	if err != nil {
		t.Fatal(err)
	}
	return matches
}
