package id3v23

// FrameType identifies the semantic role of a frame. It is the lookup key
// for frames inside a Tag. Frames whose ID is not listed here are kept with
// FrameTypeUnknown and a raw body.
type FrameType int

const (
	FrameTypeUnknown FrameType = iota
	FrameAttachedPicture
	FrameComments
	FramePopularimeter
	FrameSynchronizedLyrics
	FrameUnsynchronizedLyrics
	FrameAlbumTitle
	FrameBPM
	FrameComposer
	FrameContentType
	FrameCopyright
	FrameDate
	FramePlaylistDelay
	FrameEncodedBy
	FrameLyricist
	FrameFileType
	FrameTime
	FrameContentGroup
	FrameSongTitle
	FrameSubtitle
	FrameInitialKey
	FrameLanguage
	FrameLength
	FrameMediaType
	FrameOriginalAlbumTitle
	FrameOriginalFilename
	FrameOriginalLyricist
	FrameOriginalArtist
	FrameOriginalYear
	FrameFileOwner
	FrameLeadPerformer
	FrameBand
	FrameConductor
	FrameInterpretedBy
	FramePartOfSet
	FramePublisher
	FrameTrackNumber
	FrameRecordingDates
	FrameRadioStationName
	FrameRadioStationOwner
	FrameSize
	FrameISRC
	FrameEncodingSettings
	FrameYear
)

var frameTypes = [...]struct {
	id   string
	name string
}{
	FrameTypeUnknown:          {"", "Unknown"},
	FrameAttachedPicture:      {"APIC", "Attached picture"},
	FrameComments:             {"COMM", "Comments"},
	FramePopularimeter:        {"POPM", "Popularimeter"},
	FrameSynchronizedLyrics:   {"SYLT", "Synchronized lyric/text"},
	FrameUnsynchronizedLyrics: {"USLT", "Unsynchronized lyric/text transcription"},
	FrameAlbumTitle:           {"TALB", "Album/Movie/Show title"},
	FrameBPM:                  {"TBPM", "BPM (beats per minute)"},
	FrameComposer:             {"TCOM", "Composer"},
	FrameContentType:          {"TCON", "Content type"},
	FrameCopyright:            {"TCOP", "Copyright message"},
	FrameDate:                 {"TDAT", "Date"},
	FramePlaylistDelay:        {"TDLY", "Playlist delay"},
	FrameEncodedBy:            {"TENC", "Encoded by"},
	FrameLyricist:             {"TEXT", "Lyricist/Text writer"},
	FrameFileType:             {"TFLT", "File type"},
	FrameTime:                 {"TIME", "Time"},
	FrameContentGroup:         {"TIT1", "Content group description"},
	FrameSongTitle:            {"TIT2", "Title/songname/content description"},
	FrameSubtitle:             {"TIT3", "Subtitle/Description refinement"},
	FrameInitialKey:           {"TKEY", "Initial key"},
	FrameLanguage:             {"TLAN", "Language(s)"},
	FrameLength:               {"TLEN", "Length"},
	FrameMediaType:            {"TMED", "Media type"},
	FrameOriginalAlbumTitle:   {"TOAL", "Original album/movie/show title"},
	FrameOriginalFilename:     {"TOFN", "Original filename"},
	FrameOriginalLyricist:     {"TOLY", "Original lyricist(s)/text writer(s)"},
	FrameOriginalArtist:       {"TOPE", "Original artist(s)/performer(s)"},
	FrameOriginalYear:         {"TORY", "Original release year"},
	FrameFileOwner:            {"TOWN", "File owner/licensee"},
	FrameLeadPerformer:        {"TPE1", "Lead performer(s)/Soloist(s)"},
	FrameBand:                 {"TPE2", "Band/orchestra/accompaniment"},
	FrameConductor:            {"TPE3", "Conductor/performer refinement"},
	FrameInterpretedBy:        {"TPE4", "Interpreted, remixed, or otherwise modified by"},
	FramePartOfSet:            {"TPOS", "Part of a set"},
	FramePublisher:            {"TPUB", "Publisher"},
	FrameTrackNumber:          {"TRCK", "Track number/Position in set"},
	FrameRecordingDates:       {"TRDA", "Recording dates"},
	FrameRadioStationName:     {"TRSN", "Internet radio station name"},
	FrameRadioStationOwner:    {"TRSO", "Internet radio station owner"},
	FrameSize:                 {"TSIZ", "Size"},
	FrameISRC:                 {"TSRC", "ISRC (international standard recording code)"},
	FrameEncodingSettings:     {"TSSE", "Software/Hardware and settings used for encoding"},
	FrameYear:                 {"TYER", "Year"},
}

var frameTypesByID = func() map[string]FrameType {
	m := make(map[string]FrameType, len(frameTypes))
	for ft, info := range frameTypes {
		if info.id != "" {
			m[info.id] = FrameType(ft)
		}
	}
	return m
}()

// LookupFrameType returns the FrameType for a 4-character frame ID, or
// FrameTypeUnknown.
func LookupFrameType(id string) FrameType {
	return frameTypesByID[id]
}

func (ft FrameType) known() bool {
	return ft > FrameTypeUnknown && int(ft) < len(frameTypes)
}

// ID returns the 4-character frame ID, or "" for FrameTypeUnknown.
func (ft FrameType) ID() string {
	if !ft.known() {
		return ""
	}
	return frameTypes[ft].id
}

// String returns the descriptive name of the frame type.
func (ft FrameType) String() string {
	if !ft.known() {
		return frameTypes[FrameTypeUnknown].name
	}
	return frameTypes[ft].name
}

// IsText reports whether frames of this type carry a TextBody.
func (ft FrameType) IsText() bool {
	id := ft.ID()
	return id != "" && id[0] == 'T'
}

// validFrameID reports whether id is four characters from [A-Z0-9].
func validFrameID(id string) bool {
	if len(id) != 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		c := id[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
