package id3tag

import (
	"github.com/simonhull/id3tag/internal/id3v23"
)

// PictureType is an alias to id3v23.PictureType.
type PictureType = id3v23.PictureType

// Re-export all picture type constants
const (
	PictureOther             = id3v23.PictureOther
	PictureFileIcon          = id3v23.PictureFileIcon
	PictureOtherFileIcon     = id3v23.PictureOtherFileIcon
	PictureFrontCover        = id3v23.PictureFrontCover
	PictureBackCover         = id3v23.PictureBackCover
	PictureLeaflet           = id3v23.PictureLeaflet
	PictureMedia             = id3v23.PictureMedia
	PictureLeadArtist        = id3v23.PictureLeadArtist
	PictureArtist            = id3v23.PictureArtist
	PictureConductor         = id3v23.PictureConductor
	PictureBand              = id3v23.PictureBand
	PictureComposer          = id3v23.PictureComposer
	PictureLyricist          = id3v23.PictureLyricist
	PictureRecordingLocation = id3v23.PictureRecordingLocation
	PictureDuringRecording   = id3v23.PictureDuringRecording
	PictureDuringPerformance = id3v23.PictureDuringPerformance
	PictureVideoCapture      = id3v23.PictureVideoCapture
	PictureBrightFish        = id3v23.PictureBrightFish
	PictureIllustration      = id3v23.PictureIllustration
	PictureBandLogotype      = id3v23.PictureBandLogotype
	PicturePublisherLogotype = id3v23.PicturePublisherLogotype
)

// Picture is an attached picture as passed to and returned from the
// picture accessors.
type Picture struct {
	MIMEType    string
	Type        PictureType
	Description string
	Data        []byte
}

func pictureFrom(b *PictureBody) *Picture {
	return &Picture{
		MIMEType:    b.MIMEType(),
		Type:        b.PictureType(),
		Description: b.Description(),
		Data:        append([]byte(nil), b.Image()...),
	}
}

// pictureFrame returns the last APIC frame of type pt, or nil.
func (f *File) pictureFrame(pt PictureType) *Frame {
	var found *Frame
	for _, fr := range f.tag.FindAll(FrameAttachedPicture) {
		if b, ok := fr.Picture(); ok && b.PictureType() == pt {
			found = fr
		}
	}
	return found
}

// Picture returns the attached picture of type pt, or nil.
func (f *File) Picture(pt PictureType) *Picture {
	fr := f.pictureFrame(pt)
	if fr == nil {
		return nil
	}
	b, _ := fr.Picture()
	return pictureFrom(b)
}

// Pictures returns every attached picture in tag order.
func (f *File) Pictures() []*Picture {
	var out []*Picture
	for _, fr := range f.tag.FindAll(FrameAttachedPicture) {
		if b, ok := fr.Picture(); ok {
			out = append(out, pictureFrom(b))
		}
	}
	return out
}

// SetPicture stores p, replacing the picture of the same type if there is
// one. The description is written as UTF-16.
func (f *File) SetPicture(p *Picture) error {
	if p == nil || len(p.Data) == 0 {
		return &InvalidArgumentError{Field: "picture", Value: "<empty>", Reason: "image data is required"}
	}
	if !p.Type.Valid() {
		return &InvalidArgumentError{Field: "picture type", Value: byte(p.Type), Reason: "must be between 0x00 and 0x14"}
	}
	if p.MIMEType == "" {
		return &InvalidArgumentError{Field: "MIME type", Value: `""`, Reason: "must not be empty"}
	}

	fr := f.pictureFrame(p.Type)
	if fr == nil {
		fr = f.tag.AddFrame(FrameAttachedPicture)
	}
	b, _ := fr.Picture()
	b.SetEncoding(EncodingUTF16)
	b.SetMIMEType(p.MIMEType)
	b.SetPictureType(p.Type)
	b.SetDescription(p.Description)
	b.SetImage(p.Data)
	return nil
}

// RemovePicture removes the picture of type pt and reports whether there
// was one.
func (f *File) RemovePicture(pt PictureType) bool {
	fr := f.pictureFrame(pt)
	if fr == nil {
		return false
	}
	return f.tag.Remove(fr)
}
