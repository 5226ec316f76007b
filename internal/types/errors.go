// Package types holds the error taxonomy, warnings and audio properties
// shared by the tag codecs and the File façade.
package types

import (
	"errors"
	"fmt"
)

// ErrTagNotFound reports that a stream does not begin with an ID3v2 tag.
// It is recovered internally during load and triggers the legacy fallback.
var ErrTagNotFound = errors.New("ID3v2 tag not found")

// ErrRemoteSource is returned by operations that need random access to a
// local file when the File was opened from a remote address.
var ErrRemoteSource = errors.New("operation not supported on a remote source")

// TagNotFoundError describes why no ID3v2 tag was found.
type TagNotFoundError struct {
	Path   string
	Reason string
}

func (e *TagNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Path, ErrTagNotFound, e.Reason)
}

// Unwrap lets errors.Is match ErrTagNotFound.
func (e *TagNotFoundError) Unwrap() error {
	return ErrTagNotFound
}

// UnsupportedVersionError is returned when the tag is an ID3v2 tag of a
// revision other than 2.3.
type UnsupportedVersionError struct {
	Path     string
	Major    byte
	Revision byte
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("%s: unsupported ID3 version 2.%d.%d", e.Path, e.Major, e.Revision)
}

// OutOfBoundsError is returned when attempting to read beyond the source.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// CorruptedFileError is returned when a tag structure is invalid as a whole.
type CorruptedFileError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedFileError) Error() string {
	return fmt.Sprintf("%s: corrupted tag at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// InvalidArgumentError is returned by setters that reject their input.
// The tag is left untouched when it is returned.
type InvalidArgumentError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// ReadOnlyError is returned when a write is attempted on a File that cannot
// be written, such as one opened from a URL.
type ReadOnlyError struct {
	Path   string
	Reason string
}

func (e *ReadOnlyError) Error() string {
	return fmt.Sprintf("%s: read-only: %s", e.Path, e.Reason)
}

// IntegrityError is returned when the number of audio bytes copied during a
// full rewrite differs from the expected audio size. The original file is
// never replaced when it occurs.
type IntegrityError struct {
	Path     string
	Expected int64
	Actual   int64
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: audio size mismatch: expected %d bytes, copied %d bytes",
		e.Path, e.Expected, e.Actual)
}

// ReplaceError is returned when swapping the rewritten temporary file in
// for the original fails. TempPath is left on disk for manual recovery.
type ReplaceError struct {
	Path     string
	TempPath string
	Step     string // "delete", "backup" or "rename"
	Err      error
}

func (e *ReplaceError) Error() string {
	return fmt.Sprintf("%s: replace failed at %s step (new content kept in %s): %v",
		e.Path, e.Step, e.TempPath, e.Err)
}

func (e *ReplaceError) Unwrap() error {
	return e.Err
}

// RemoteError is returned when a remote source answers with a non-success
// status.
type RemoteError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: unexpected response %s", e.URL, e.Status)
}

// Warning represents a non-fatal issue encountered while loading or saving.
type Warning struct {
	// Stage where the warning occurred: "metadata", "legacy" or "save".
	Stage string

	Message string

	// Offset within the file, 0 if not applicable.
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
