package id3tag

import (
	"github.com/simonhull/id3tag/internal/types"
)

// ErrTagNotFound is matched by errors returned when a stream has no ID3v2
// tag. Open never returns it; it only surfaces from Parse.
var ErrTagNotFound = types.ErrTagNotFound

// ErrRemoteSource is returned by operations that need the local file.
var ErrRemoteSource = types.ErrRemoteSource

// TagNotFoundError is an alias to types.TagNotFoundError.
type TagNotFoundError = types.TagNotFoundError

// UnsupportedVersionError is an alias to types.UnsupportedVersionError.
type UnsupportedVersionError = types.UnsupportedVersionError

// OutOfBoundsError is an alias to types.OutOfBoundsError.
type OutOfBoundsError = types.OutOfBoundsError

// CorruptedFileError is an alias to types.CorruptedFileError.
type CorruptedFileError = types.CorruptedFileError

// InvalidArgumentError is an alias to types.InvalidArgumentError.
type InvalidArgumentError = types.InvalidArgumentError

// ReadOnlyError is an alias to types.ReadOnlyError.
type ReadOnlyError = types.ReadOnlyError

// IntegrityError is an alias to types.IntegrityError.
type IntegrityError = types.IntegrityError

// ReplaceError is an alias to types.ReplaceError.
type ReplaceError = types.ReplaceError

// RemoteError is an alias to types.RemoteError.
type RemoteError = types.RemoteError

// Warning is an alias to types.Warning.
type Warning = types.Warning
