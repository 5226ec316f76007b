package types

import (
	"fmt"
	"strings"
	"time"
)

// AudioInfo describes the MPEG audio stream that follows the tag.
type AudioInfo struct {
	Codec      string // "MP3"
	Version    string // "MPEG-1", "MPEG-2"
	Duration   time.Duration
	SampleRate int
	Channels   int
	Bitrate    int // bits per second; average when VBR
	VBR        bool
}

// String returns a short description such as "MP3 44.1kHz stereo 192kbps".
func (a AudioInfo) String() string {
	parts := []string{a.Codec}
	if a.SampleRate > 0 {
		parts = append(parts, fmt.Sprintf("%.1fkHz", float64(a.SampleRate)/1000))
	}
	if ch := channelDescription(a.Channels); ch != "" {
		parts = append(parts, ch)
	}
	if a.Bitrate > 0 {
		q := fmt.Sprintf("%dkbps", a.Bitrate/1000)
		if a.VBR {
			q += " VBR"
		}
		parts = append(parts, q)
	}
	return strings.Join(parts, " ")
}

func channelDescription(channels int) string {
	switch channels {
	case 0:
		return ""
	case 1:
		return "mono"
	case 2:
		return "stereo"
	default:
		return fmt.Sprintf("%dch", channels)
	}
}
