// Package mpeg reads the technical properties of the MPEG audio stream that
// follows an ID3v2 tag.
package mpeg

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	binutil "github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/types"
)

// ErrNoFrame is returned when no Layer III frame header is found.
var ErrNoFrame = errors.New("no MPEG audio frame found")

// MaxScan bounds how far past the start Probe looks for the first frame.
const MaxScan = 64 * 1024

// Layer III bitrates in kbps, indexed by the header's bitrate index.
var (
	bitratesV1 = [16]int{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 0}
	bitratesV2 = [16]int{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0}
)

// Sample rates in Hz, indexed by the header's sample rate index.
var (
	sampleRatesV1 = [4]int{44100, 48000, 32000, 0}
	sampleRatesV2 = [4]int{22050, 24000, 16000, 0}
)

// frameHeader is a decoded 4-byte Layer III frame header.
type frameHeader struct {
	mpeg1      bool
	bitrate    int // bps
	sampleRate int
	mono       bool
}

func (h frameHeader) samplesPerFrame() int {
	if h.mpeg1 {
		return 1152
	}
	return 576
}

func (h frameHeader) channels() int {
	if h.mono {
		return 1
	}
	return 2
}

// sideInfoEnd is the offset of the Xing/Info marker from the frame start.
func (h frameHeader) sideInfoEnd() int64 {
	switch {
	case h.mpeg1 && !h.mono:
		return 4 + 32
	case h.mpeg1, !h.mono:
		return 4 + 17
	default:
		return 4 + 9
	}
}

// parseHeader decodes a frame header. Only MPEG-1 and MPEG-2 Layer III
// frames with usable bitrate and sample rate indexes are accepted.
func parseHeader(v uint32) (frameHeader, bool) {
	if v&0xFFE00000 != 0xFFE00000 {
		return frameHeader{}, false
	}
	version := (v >> 19) & 0x3
	layer := (v >> 17) & 0x3
	if (version != 3 && version != 2) || layer != 1 {
		return frameHeader{}, false
	}

	h := frameHeader{mpeg1: version == 3, mono: (v>>6)&0x3 == 3}
	bitrates, rates := bitratesV2, sampleRatesV2
	if h.mpeg1 {
		bitrates, rates = bitratesV1, sampleRatesV1
	}
	h.bitrate = bitrates[(v>>12)&0xF] * 1000
	h.sampleRate = rates[(v>>10)&0x3]
	if h.bitrate == 0 || h.sampleRate == 0 {
		return frameHeader{}, false
	}
	return h, true
}

// Probe scans [start, end) of sr for the first Layer III frame and reports
// the stream's properties. Duration comes from a Xing/Info or VBRI header
// when there is one, otherwise it is estimated from the bitrate.
func Probe(sr *binutil.SafeReader, start, end int64) (types.AudioInfo, error) {
	if end > sr.Size() {
		end = sr.Size()
	}
	limit := min(end-4, start+MaxScan)

	buf := make([]byte, 4)
	for off := start; off <= limit; off++ {
		if err := sr.ReadAt(buf, off, "MPEG frame header"); err != nil {
			return types.AudioInfo{}, err
		}
		h, ok := parseHeader(binary.BigEndian.Uint32(buf))
		if !ok {
			continue
		}
		return describe(sr, h, off, end), nil
	}
	return types.AudioInfo{}, fmt.Errorf("%s: %w after offset %d", sr.Path(), ErrNoFrame, start)
}

func describe(sr *binutil.SafeReader, h frameHeader, off, end int64) types.AudioInfo {
	info := types.AudioInfo{
		Codec:      "MP3",
		Version:    "MPEG-2",
		SampleRate: h.sampleRate,
		Channels:   h.channels(),
		Bitrate:    h.bitrate,
	}
	if h.mpeg1 {
		info.Version = "MPEG-1"
	}

	if frames, bytes, ok := readVBRHeader(sr, h, off); ok && frames > 0 {
		info.VBR = true
		info.Duration = framesDuration(frames, h)
		if bytes == 0 {
			bytes = uint32(end - off)
		}
		if secs := info.Duration.Seconds(); secs > 0 {
			info.Bitrate = int(float64(bytes) * 8 / secs)
		}
		return info
	}

	info.Duration = time.Duration(float64(end-off) * 8 / float64(h.bitrate) * float64(time.Second))
	return info
}

// readVBRHeader looks for a Xing/Info header after the side information or
// a VBRI header 32 bytes after the frame header. It returns the frame and
// byte counts it declares; either may be 0 when absent.
func readVBRHeader(sr *binutil.SafeReader, h frameHeader, off int64) (frames, bytes uint32, ok bool) {
	buf := make([]byte, 16)
	if err := sr.ReadAt(buf, off+h.sideInfoEnd(), "Xing header"); err == nil {
		if tag := string(buf[:4]); tag == "Xing" || tag == "Info" {
			flags := binary.BigEndian.Uint32(buf[4:8])
			rest := buf[8:]
			if flags&0x1 != 0 {
				frames = binary.BigEndian.Uint32(rest[:4])
				rest = rest[4:]
			}
			if flags&0x2 != 0 {
				bytes = binary.BigEndian.Uint32(rest[:4])
			}
			return frames, bytes, true
		}
	}

	vbri := make([]byte, 18)
	if err := sr.ReadAt(vbri, off+4+32, "VBRI header"); err == nil && string(vbri[:4]) == "VBRI" {
		return binary.BigEndian.Uint32(vbri[14:18]), binary.BigEndian.Uint32(vbri[10:14]), true
	}
	return 0, 0, false
}

func framesDuration(frames uint32, h frameHeader) time.Duration {
	samples := uint64(frames) * uint64(h.samplesPerFrame())
	return time.Duration(samples) * time.Second / time.Duration(h.sampleRate)
}
