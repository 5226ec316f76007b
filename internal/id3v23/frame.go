package id3v23

import (
	"bytes"
	"fmt"

	binutil "github.com/simonhull/id3tag/internal/binary"
)

// FrameFlags are the two flag bytes of an ID3v2.3 frame header.
type FrameFlags uint16

const (
	FlagTagAlterPreservation  FrameFlags = 0x8000
	FlagFileAlterPreservation FrameFlags = 0x4000
	FlagReadOnly              FrameFlags = 0x2000
	FlagCompression           FrameFlags = 0x0080
	FlagEncryption            FrameFlags = 0x0040
	FlagGrouping              FrameFlags = 0x0020
)

// opaque reports whether the body bytes are transformed in a way this
// package does not undo.
func (f FrameFlags) opaque() bool {
	return f&(FlagCompression|FlagEncryption|FlagGrouping) != 0
}

// Frame is one typed metadata unit of a tag.
type Frame struct {
	// ID is the 4-character frame ID. For known types it equals Type.ID().
	ID    string
	Type  FrameType
	Flags FrameFlags
	Body  Body

	diagnostic string
}

// NewFrame returns a frame of type ft with an empty body. ft must not be
// FrameTypeUnknown; use NewFrameID for IDs without a FrameType.
func NewFrame(ft FrameType) *Frame {
	return &Frame{ID: ft.ID(), Type: ft, Body: newBody(ft)}
}

// NewFrameID returns a frame for an arbitrary frame ID. Known IDs get their
// typed body, anything else a RawBody.
func NewFrameID(id string) (*Frame, error) {
	if !validFrameID(id) {
		return nil, fmt.Errorf("invalid frame ID %q", id)
	}
	ft := LookupFrameType(id)
	return &Frame{ID: id, Type: ft, Body: newBody(ft)}, nil
}

// Valid reports whether the frame body decoded cleanly.
func (f *Frame) Valid() bool { return f.diagnostic == "" }

// Diagnostic describes why the frame is invalid, or "" when it is valid.
func (f *Frame) Diagnostic() string { return f.diagnostic }

// Size returns the encoded size of the frame including its header.
func (f *Frame) Size() int { return FrameHeaderSize + f.Body.Size() }

func (f *Frame) String() string {
	if !f.Valid() {
		return f.ID + ": " + f.diagnostic
	}
	return f.ID + ": " + f.Body.String()
}

// Text returns the body of a text information frame.
func (f *Frame) Text() (*TextBody, bool) {
	b, ok := f.Body.(*TextBody)
	return b, ok
}

// Comments returns the body of a COMM frame.
func (f *Frame) Comments() (*CommentsBody, bool) {
	b, ok := f.Body.(*CommentsBody)
	return b, ok
}

// Lyrics returns the body of a USLT frame.
func (f *Frame) Lyrics() (*LyricsBody, bool) {
	b, ok := f.Body.(*LyricsBody)
	return b, ok
}

// SynchronizedLyrics returns the body of a SYLT frame.
func (f *Frame) SynchronizedLyrics() (*SynchronizedLyricsBody, bool) {
	b, ok := f.Body.(*SynchronizedLyricsBody)
	return b, ok
}

// Picture returns the body of an APIC frame.
func (f *Frame) Picture() (*PictureBody, bool) {
	b, ok := f.Body.(*PictureBody)
	return b, ok
}

// Popularimeter returns the body of a POPM frame.
func (f *Frame) Popularimeter() (*PopularimeterBody, bool) {
	b, ok := f.Body.(*PopularimeterBody)
	return b, ok
}

// Raw returns the body of a frame carried as opaque bytes.
func (f *Frame) Raw() (*RawBody, bool) {
	b, ok := f.Body.(*RawBody)
	return b, ok
}

// encode writes the frame header followed by its body. The body is encoded
// first so the header carries its exact size.
func (f *Frame) encode(sw *binutil.SafeWriter) error {
	if !validFrameID(f.ID) {
		return fmt.Errorf("invalid frame ID %q", f.ID)
	}

	var body bytes.Buffer
	if err := f.Body.Encode(binutil.NewSafeWriter(&body)); err != nil {
		return fmt.Errorf("encode frame %s: %w", f.ID, err)
	}

	if err := sw.WriteString(f.ID); err != nil {
		return err
	}
	if err := binutil.Write[uint32](sw, uint32(body.Len())); err != nil {
		return err
	}
	if err := binutil.Write[uint16](sw, uint16(f.Flags)); err != nil {
		return err
	}
	return sw.WriteBytes(body.Bytes())
}

// decodeFrame builds a frame from a header and its payload. A payload that
// does not decode yields an invalid frame holding the raw bytes.
func decodeFrame(id string, flags FrameFlags, payload []byte, offset int64) *Frame {
	ft := LookupFrameType(id)
	f := &Frame{ID: id, Type: ft, Flags: flags}

	if flags.opaque() {
		f.Body = &RawBody{}
	} else {
		f.Body = newBody(ft)
	}

	if err := f.Body.Decode(payload); err != nil {
		raw := &RawBody{}
		raw.SetData(payload)
		f.Body = raw
		f.diagnostic = fmt.Sprintf("frame %s at offset %d: %v", id, offset, err)
	}
	return f
}
