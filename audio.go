package id3tag

import (
	"fmt"
	"os"

	binutil "github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/id3v1"
	"github.com/simonhull/id3tag/internal/mpeg"
	"github.com/simonhull/id3tag/internal/types"
)

// AudioInfo is an alias to types.AudioInfo.
type AudioInfo = types.AudioInfo

// ErrNoAudioFrame is returned by AudioInfo when no MPEG audio frame is
// found near the start of the audio.
var ErrNoAudioFrame = mpeg.ErrNoFrame

// AudioInfo reads the first MPEG audio frame after the tag and reports
// bitrate, sample rate, channels and duration. Remote files fail with
// ErrRemoteSource.
func (f *File) AudioInfo() (AudioInfo, error) {
	if f.remote {
		return AudioInfo{}, fmt.Errorf("%s: audio info: %w", f.path, ErrRemoteSource)
	}

	fh, err := os.Open(f.path)
	if err != nil {
		return AudioInfo{}, fmt.Errorf("open file: %w", err)
	}
	defer fh.Close() //nolint:errcheck // Read-only handle

	stat, err := fh.Stat()
	if err != nil {
		return AudioInfo{}, fmt.Errorf("stat file: %w", err)
	}

	end := stat.Size()
	if res := id3v1.Read(fh, end, f.path); res.Status == id3v1.StatusFound {
		end -= id3v1.TagSize
	}
	return mpeg.Probe(binutil.NewSafeReader(fh, stat.Size(), f.path), f.tagSize, end)
}
