package id3tag

import "github.com/simonhull/id3tag/internal/id3v23"

// DefaultCopyBufferSize is the buffer used to copy audio during a full
// rewrite.
const DefaultCopyBufferSize = 32 * 1024

// SaveOption configures behavior when saving files.
//
// Example:
//
//	err := file.Save(
//	    id3tag.WithBackup(".bak"),
//	    id3tag.WithValidation(),
//	)
type SaveOption func(*saveOptions)

// saveOptions holds configuration for saving files.
type saveOptions struct {
	backupSuffix    string // Suffix for backup file (e.g., ".bak")
	validate        bool   // Re-read after write to verify
	preserveModTime bool   // Keep original modification time
	paddingSize     int    // Padding after a full rewrite
	copyBufferSize  int    // Audio copy buffer
}

// defaultSaveOptions returns the default configuration for saving.
func defaultSaveOptions() *saveOptions {
	return &saveOptions{
		paddingSize:    id3v23.DefaultPaddingSize,
		copyBufferSize: DefaultCopyBufferSize,
	}
}

// WithBackup keeps the original file when Save has to rewrite it.
//
// Instead of deleting the original, Save renames it to the original name
// with suffix appended, e.g. WithBackup(".bak") keeps "song.mp3.bak". An
// existing backup is overwritten. Saves that fit in the old tag space
// write in place and make no backup.
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the file after writing to verify integrity.
//
// The file is re-opened and its frame count and title compared with the
// in-memory tag.
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the original file modification time.
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}

// WithPaddingSize sets the padding reserved after the frames when Save has
// to rewrite the whole file. The default is 1024 bytes.
func WithPaddingSize(n int) SaveOption {
	return func(o *saveOptions) {
		o.paddingSize = n
	}
}

// WithCopyBufferSize sets the size of the buffer used to copy the audio
// during a full rewrite. The default is DefaultCopyBufferSize.
func WithCopyBufferSize(n int) SaveOption {
	return func(o *saveOptions) {
		o.copyBufferSize = n
	}
}

func (o *saveOptions) validateOptions() error {
	if o.paddingSize < 0 {
		return &InvalidArgumentError{Field: "padding size", Value: o.paddingSize, Reason: "must not be negative"}
	}
	if o.copyBufferSize <= 0 {
		return &InvalidArgumentError{Field: "copy buffer size", Value: o.copyBufferSize, Reason: "must be positive"}
	}
	return nil
}
