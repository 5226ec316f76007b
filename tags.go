package id3tag

import (
	"io"

	"github.com/simonhull/id3tag/internal/id3v23"
)

// Tag is an alias to id3v23.Tag.
type Tag = id3v23.Tag

// Frame is an alias to id3v23.Frame.
type Frame = id3v23.Frame

// FrameType is an alias to id3v23.FrameType.
type FrameType = id3v23.FrameType

// FrameFlags is an alias to id3v23.FrameFlags.
type FrameFlags = id3v23.FrameFlags

// Body is an alias to id3v23.Body.
type Body = id3v23.Body

// Body kinds.
type (
	TextBody               = id3v23.TextBody
	CommentsBody           = id3v23.CommentsBody
	LyricsBody             = id3v23.LyricsBody
	SynchronizedLyricsBody = id3v23.SynchronizedLyricsBody
	SynchronizedLyric      = id3v23.SynchronizedLyric
	PictureBody            = id3v23.PictureBody
	PopularimeterBody      = id3v23.PopularimeterBody
	RawBody                = id3v23.RawBody
)

// Encoding is an alias to id3v23.Encoding.
type Encoding = id3v23.Encoding

const (
	EncodingISO88591 = id3v23.EncodingISO88591
	EncodingUTF16    = id3v23.EncodingUTF16
)

// Language is an alias to id3v23.Language.
type Language = id3v23.Language

const (
	English      = id3v23.English
	French       = id3v23.French
	German       = id3v23.German
	Italian      = id3v23.Italian
	Japanese     = id3v23.Japanese
	Russian      = id3v23.Russian
	Spanish      = id3v23.Spanish
	Undetermined = id3v23.Undetermined
)

// ParseLanguage validates a three letter language code.
func ParseLanguage(s string) (Language, error) { return id3v23.ParseLanguage(s) }

// TimestampFormat is an alias to id3v23.TimestampFormat.
type TimestampFormat = id3v23.TimestampFormat

const (
	TimestampMPEGFrames   = id3v23.TimestampMPEGFrames
	TimestampMilliseconds = id3v23.TimestampMilliseconds
)

// Frame types.
const (
	FrameTypeUnknown          = id3v23.FrameTypeUnknown
	FrameAttachedPicture      = id3v23.FrameAttachedPicture
	FrameComments             = id3v23.FrameComments
	FramePopularimeter        = id3v23.FramePopularimeter
	FrameSynchronizedLyrics   = id3v23.FrameSynchronizedLyrics
	FrameUnsynchronizedLyrics = id3v23.FrameUnsynchronizedLyrics
	FrameAlbumTitle           = id3v23.FrameAlbumTitle
	FrameBPM                  = id3v23.FrameBPM
	FrameComposer             = id3v23.FrameComposer
	FrameContentType          = id3v23.FrameContentType
	FrameCopyright            = id3v23.FrameCopyright
	FrameDate                 = id3v23.FrameDate
	FramePlaylistDelay        = id3v23.FramePlaylistDelay
	FrameEncodedBy            = id3v23.FrameEncodedBy
	FrameLyricist             = id3v23.FrameLyricist
	FrameFileType             = id3v23.FrameFileType
	FrameTime                 = id3v23.FrameTime
	FrameContentGroup         = id3v23.FrameContentGroup
	FrameSongTitle            = id3v23.FrameSongTitle
	FrameSubtitle             = id3v23.FrameSubtitle
	FrameInitialKey           = id3v23.FrameInitialKey
	FrameLanguage             = id3v23.FrameLanguage
	FrameLength               = id3v23.FrameLength
	FrameMediaType            = id3v23.FrameMediaType
	FrameOriginalAlbumTitle   = id3v23.FrameOriginalAlbumTitle
	FrameOriginalFilename     = id3v23.FrameOriginalFilename
	FrameOriginalLyricist     = id3v23.FrameOriginalLyricist
	FrameOriginalArtist       = id3v23.FrameOriginalArtist
	FrameOriginalYear         = id3v23.FrameOriginalYear
	FrameFileOwner            = id3v23.FrameFileOwner
	FrameLeadPerformer        = id3v23.FrameLeadPerformer
	FrameBand                 = id3v23.FrameBand
	FrameConductor            = id3v23.FrameConductor
	FrameInterpretedBy        = id3v23.FrameInterpretedBy
	FramePartOfSet            = id3v23.FramePartOfSet
	FramePublisher            = id3v23.FramePublisher
	FrameTrackNumber          = id3v23.FrameTrackNumber
	FrameRecordingDates       = id3v23.FrameRecordingDates
	FrameRadioStationName     = id3v23.FrameRadioStationName
	FrameRadioStationOwner    = id3v23.FrameRadioStationOwner
	FrameSize                 = id3v23.FrameSize
	FrameISRC                 = id3v23.FrameISRC
	FrameEncodingSettings     = id3v23.FrameEncodingSettings
	FrameYear                 = id3v23.FrameYear
)

// LookupFrameType returns the FrameType of a 4-character frame ID, or
// FrameTypeUnknown.
func LookupFrameType(id string) FrameType { return id3v23.LookupFrameType(id) }

// NewTag returns an empty tag with the default padding.
func NewTag() *Tag { return id3v23.New() }

// ParseTag reads an ID3v2.3 tag from the start of r. name is used in error
// messages only.
func ParseTag(r io.Reader, name string) (*Tag, error) { return id3v23.Parse(r, name) }
