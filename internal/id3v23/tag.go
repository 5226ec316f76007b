// Package id3v23 reads and writes ID3v2.3 tags: the tag container, its
// frames and the bodies of the frame kinds the library interprets.
package id3v23

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	binutil "github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/types"
)

const (
	// HeaderSize is the size of the tag header.
	HeaderSize = 10

	// FrameHeaderSize is the size of a frame header.
	FrameHeaderSize = 10

	// DefaultPaddingSize is the padding a new or fully rewritten tag gets.
	DefaultPaddingSize = 1024
)

// HeaderFlags are the flags byte of the tag header.
type HeaderFlags byte

const (
	HeaderUnsynchronisation HeaderFlags = 0x80
	HeaderExtended          HeaderFlags = 0x40
	HeaderExperimental      HeaderFlags = 0x20
)

// Tag is an ordered collection of frames followed by padding. Frame order
// is serialization order.
type Tag struct {
	// Flags written to the header. Unsynchronisation and the extended
	// header are read but never written.
	Flags HeaderFlags

	frames  []*Frame
	invalid []*Frame
	padding int

	path     string
	diskSize int64
}

// New returns an empty tag with the default padding.
func New() *Tag {
	return &Tag{padding: DefaultPaddingSize}
}

// Parse reads an ID3v2.3 tag from the start of r.
//
// When r does not start with a tag the error satisfies
// errors.Is(err, types.ErrTagNotFound). Tags of other ID3v2 revisions fail
// with *types.UnsupportedVersionError. Frames that do not decode are kept
// in InvalidFrames and do not fail the parse.
func Parse(r io.Reader, path string) (*Tag, error) {
	hdr := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, hdr); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, &types.TagNotFoundError{Path: path, Reason: "source shorter than a tag header"}
		}
		return nil, fmt.Errorf("%s: read tag header: %w", path, err)
	}

	if string(hdr[:3]) != "ID3" {
		return nil, &types.TagNotFoundError{Path: path, Reason: "missing ID3 marker"}
	}
	if hdr[3] == 0xFF || hdr[4] == 0xFF || hdr[6]|hdr[7]|hdr[8]|hdr[9] >= 0x80 {
		return nil, &types.TagNotFoundError{Path: path, Reason: "malformed tag header"}
	}
	if hdr[3] != 3 {
		return nil, &types.UnsupportedVersionError{Path: path, Major: hdr[3], Revision: hdr[4]}
	}

	flags := HeaderFlags(hdr[5])
	size := binutil.DecodeSynchsafe(hdr[6:10])

	// The declared size is untrusted: read what the source has instead of
	// allocating it up front.
	body, err := io.ReadAll(io.LimitReader(r, int64(size)))
	if err != nil {
		return nil, fmt.Errorf("%s: read tag body: %w", path, err)
	}
	if len(body) < int(size) {
		return nil, &types.CorruptedFileError{
			Path:   path,
			Reason: fmt.Sprintf("tag declares %d bytes but the source ends after %d", size, len(body)),
			Offset: HeaderSize,
		}
	}
	if flags&HeaderUnsynchronisation != 0 {
		body = binutil.RemoveUnsynchronisation(body)
	}

	t := &Tag{
		Flags:    flags &^ (HeaderUnsynchronisation | HeaderExtended),
		path:     path,
		diskSize: HeaderSize + int64(size),
	}

	sr := binutil.NewSafeReader(bytes.NewReader(body), int64(len(body)), path)
	start := int64(0)
	if flags&HeaderExtended != 0 {
		extSize, err := binutil.Read[uint32](sr, 0, "extended header size")
		if err != nil {
			return nil, &types.CorruptedFileError{Path: path, Reason: err.Error(), Offset: HeaderSize}
		}
		start = 4 + int64(extSize)
		if start > sr.Size() {
			return nil, &types.CorruptedFileError{
				Path:   path,
				Reason: fmt.Sprintf("extended header of %d bytes runs past the tag", extSize),
				Offset: HeaderSize,
			}
		}
	}

	t.padding = int(sr.Size() - t.readFrames(binutil.NewReader(sr, start)))
	return t, nil
}

// readFrames walks the frame headers from r's offset and returns the offset
// where padding begins. A header that cannot be trusted records one
// invalid frame and ends the walk.
func (t *Tag) readFrames(r *binutil.Reader) int64 {
	for r.Remaining() >= FrameHeaderSize {
		start := r.Offset()
		if first, _ := binutil.Read[uint8](r.SafeReader, start, "frame ID"); first == 0 {
			return start
		}

		cr := binutil.NewChainReader(r)
		id := cr.String(4, "frame ID")
		size := binutil.ReadChained[uint32](cr, "frame size")
		flags := FrameFlags(binutil.ReadChained[uint16](cr, "frame flags"))
		if cr.Error() != nil {
			return start
		}

		offset := HeaderSize + start
		if !validFrameID(id) {
			t.invalid = append(t.invalid, &Frame{
				ID:         id,
				Body:       &RawBody{},
				diagnostic: fmt.Sprintf("frame %q at offset %d: invalid frame ID", id, offset),
			})
			return start
		}
		if int64(size) > r.Remaining() {
			t.invalid = append(t.invalid, &Frame{
				ID:         id,
				Type:       LookupFrameType(id),
				Flags:      flags,
				Body:       &RawBody{},
				diagnostic: fmt.Sprintf("frame %s at offset %d: size %d runs past the end of the tag", id, offset, size),
			})
			return start
		}

		payload, err := r.ReadBytes(int(size), "frame "+id)
		if err != nil {
			return start
		}

		f := decodeFrame(id, flags, payload, offset)
		if f.Valid() {
			t.frames = append(t.frames, f)
		} else {
			t.invalid = append(t.invalid, f)
		}
	}
	return r.Offset()
}

// DiskSize returns the number of bytes the tag occupied in its source,
// header included, or 0 for a tag that was never read.
func (t *Tag) DiskSize() int64 { return t.diskSize }

// AddFrame appends an empty frame of type ft. Duplicates are allowed.
func (t *Tag) AddFrame(ft FrameType) *Frame {
	f := NewFrame(ft)
	t.frames = append(t.frames, f)
	return f
}

// AddFrameID appends an empty frame for a literal frame ID.
func (t *Tag) AddFrameID(id string) (*Frame, error) {
	f, err := NewFrameID(id)
	if err != nil {
		return nil, err
	}
	t.frames = append(t.frames, f)
	return f, nil
}

// FindFirst returns the first frame of type ft, or nil.
func (t *Tag) FindFirst(ft FrameType) *Frame {
	for _, f := range t.frames {
		if f.Type == ft {
			return f
		}
	}
	return nil
}

// FindAll returns every frame of type ft in tag order.
func (t *Tag) FindAll(ft FrameType) []*Frame {
	var out []*Frame
	for _, f := range t.frames {
		if f.Type == ft {
			out = append(out, f)
		}
	}
	return out
}

// FindID returns every frame with the literal ID id in tag order.
func (t *Tag) FindID(id string) []*Frame {
	var out []*Frame
	for _, f := range t.frames {
		if f.ID == id {
			out = append(out, f)
		}
	}
	return out
}

// RemoveFirst removes and returns the first frame of type ft, or nil.
func (t *Tag) RemoveFirst(ft FrameType) *Frame {
	for i, f := range t.frames {
		if f.Type == ft {
			t.frames = slices.Delete(t.frames, i, i+1)
			return f
		}
	}
	return nil
}

// RemoveAll removes and returns every frame of type ft.
func (t *Tag) RemoveAll(ft FrameType) []*Frame {
	var removed []*Frame
	kept := t.frames[:0]
	for _, f := range t.frames {
		if f.Type == ft {
			removed = append(removed, f)
		} else {
			kept = append(kept, f)
		}
	}
	clear(t.frames[len(kept):])
	t.frames = kept
	return removed
}

// Remove removes frame f and reports whether it was in the tag.
func (t *Tag) Remove(f *Frame) bool {
	for i, g := range t.frames {
		if g == f {
			t.frames = slices.Delete(t.frames, i, i+1)
			return true
		}
	}
	return false
}

// Frames returns the valid frames in tag order.
func (t *Tag) Frames() []*Frame {
	return append([]*Frame(nil), t.frames...)
}

// InvalidFrames returns the frames that failed to decode, each with a
// diagnostic. They are never written back.
func (t *Tag) InvalidFrames() []*Frame {
	return append([]*Frame(nil), t.invalid...)
}

// Padding returns the number of padding bytes written after the frames.
func (t *Tag) Padding() int { return t.padding }

// SetPadding sets the padding. Negative sizes are rejected.
func (t *Tag) SetPadding(n int) error {
	if n < 0 {
		return &types.InvalidArgumentError{Field: "padding", Value: n, Reason: "must not be negative"}
	}
	t.padding = n
	return nil
}

// Size returns the serialized size of the tag: header, valid frames and
// padding. It is recomputed from the frame bodies on every call.
func (t *Tag) Size() int {
	size := HeaderSize + t.padding
	for _, f := range t.frames {
		size += f.Size()
	}
	return size
}

// Bytes serializes the tag.
func (t *Tag) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(t.Size())
	if _, err := t.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the header, every valid frame and zero padding to w.
func (t *Tag) WriteTo(w io.Writer) (int64, error) {
	var frames bytes.Buffer
	fw := binutil.NewSafeWriter(&frames)
	for _, f := range t.frames {
		if err := f.encode(fw); err != nil {
			return 0, err
		}
	}

	size := int64(frames.Len()) + int64(t.padding)
	if size > binutil.MaxSynchsafe {
		return 0, &types.CorruptedFileError{
			Path:   t.path,
			Reason: fmt.Sprintf("tag of %d bytes exceeds the %d byte limit", size, binutil.MaxSynchsafe),
		}
	}

	sw := binutil.NewSafeWriter(w)
	if err := sw.WriteString("ID3"); err != nil {
		return sw.Offset(), err
	}
	if err := sw.WriteBytes([]byte{3, 0, byte(t.Flags &^ (HeaderUnsynchronisation | HeaderExtended))}); err != nil {
		return sw.Offset(), err
	}
	if err := sw.WriteBytes(binutil.EncodeSynchsafe(uint32(size))); err != nil {
		return sw.Offset(), err
	}
	if err := sw.WriteBytes(frames.Bytes()); err != nil {
		return sw.Offset(), err
	}
	err := sw.WriteZeros(t.padding)
	return sw.Offset(), err
}

// SetDiskSize records that the tag now occupies size bytes of its source,
// after it has been written back.
func (t *Tag) SetDiskSize(size int64) { t.diskSize = size }

func (t *Tag) String() string {
	return fmt.Sprintf("ID3v2.3 tag, %d frames, %d invalid, %d bytes padding",
		len(t.frames), len(t.invalid), t.padding)
}
