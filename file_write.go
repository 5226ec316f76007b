package id3tag

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Save writes the tag back to the file.
//
// The TSIZ frame is first set to the audio size. When the frames need
// less room than the tag already takes on disk, the tag is overwritten in
// place with the difference as padding and the audio is not touched.
// Otherwise the file is rewritten: the tag, with fresh padding, and then
// the audio are written to a temporary file in the same directory, which
// replaces the original once the number of audio bytes copied has been
// checked.
//
// Options can be provided to customize save behavior:
//
//	err := file.Save(
//	    id3tag.WithBackup(".bak"),
//	    id3tag.WithValidation(),
//	)
//
// Remote and read-only files fail with *ReadOnlyError before any I/O. A
// short or long audio copy fails with *IntegrityError and leaves the
// original untouched. If the original cannot be swapped for the rewritten
// file, *ReplaceError names the temporary file that holds the new content.
func (f *File) Save(opts ...SaveOption) error {
	if f.remote {
		return &ReadOnlyError{Path: f.path, Reason: "opened from a URL"}
	}
	if f.options.readOnly {
		return &ReadOnlyError{Path: f.path, Reason: "opened read-only"}
	}

	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}
	if err := options.validateOptions(); err != nil {
		return err
	}

	var modTime time.Time
	if options.preserveModTime {
		if info, err := os.Stat(f.path); err == nil {
			modTime = info.ModTime()
		}
	}

	if f.audioSize > 0 {
		f.setText(EncodingUTF16, FrameSize, strconv.FormatInt(f.audioSize, 10))
	} else {
		f.tag.RemoveAll(FrameSize)
	}

	oldTagSize := f.tagSize
	oldPadding := f.tag.Padding()
	newTagSize := int64(f.tag.Size() - oldPadding)

	var err error
	if newTagSize < oldTagSize {
		err = f.writeInPlace(int(oldTagSize - newTagSize))
	} else {
		err = f.rewrite(options)
	}
	if err != nil {
		return err
	}

	if !modTime.IsZero() {
		_ = os.Chtimes(f.path, modTime, modTime) //nolint:errcheck // Non-fatal: file was written successfully
	}

	if options.validate {
		if err := f.validateWrittenFile(); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}
	return nil
}

// writeInPlace overwrites the existing tag with one padded to the same
// size. The file length does not change.
func (f *File) writeInPlace(padding int) error {
	oldPadding := f.tag.Padding()
	if err := f.tag.SetPadding(padding); err != nil {
		return err
	}
	written := false
	defer func() {
		if !written {
			_ = f.tag.SetPadding(oldPadding) //nolint:errcheck // Restoring a previously accepted value
		}
	}()

	data, err := f.tag.Bytes()
	if err != nil {
		return err
	}
	if int64(len(data)) != f.tagSize {
		return &IntegrityError{Path: f.path, Expected: f.tagSize, Actual: int64(len(data))}
	}

	fh, err := os.OpenFile(f.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open file for writing: %w", err)
	}
	defer fh.Close() //nolint:errcheck // Closed explicitly on success

	if _, err := fh.WriteAt(data, 0); err != nil {
		return fmt.Errorf("write tag: %w", err)
	}
	if err := fh.Sync(); err != nil {
		return fmt.Errorf("sync file: %w", err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}

	written = true
	f.logger.Debug().Int("padding", padding).Int64("tag_size", f.tagSize).Msg("tag written in place")
	return nil
}

// rewrite writes the tag and the audio to a temporary file and swaps it in
// for the original.
func (f *File) rewrite(options *saveOptions) error { //nolint:gocyclo // Atomic file operations require sequential steps
	oldPadding := f.tag.Padding()
	if err := f.tag.SetPadding(options.paddingSize); err != nil {
		return err
	}
	written := false
	defer func() {
		if !written {
			_ = f.tag.SetPadding(oldPadding) //nolint:errcheck // Restoring a previously accepted value
		}
	}()

	data, err := f.tag.Bytes()
	if err != nil {
		return err
	}

	src, err := os.Open(f.path)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer src.Close() //nolint:errcheck // Read-only handle

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}

	// Create temp file in same directory as the file (for rename)
	tempFile, err := os.CreateTemp(filepath.Dir(f.path), ".id3tag-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	// Ensure cleanup on any error before the replace step
	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	if err := tempFile.Chmod(info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("write tag: %w", err)
	}

	if _, err := src.Seek(f.tagSize, io.SeekStart); err != nil {
		return fmt.Errorf("seek to audio: %w", err)
	}
	// The wrappers hide ReadFrom and WriteTo so the copy goes through buf.
	buf := make([]byte, options.copyBufferSize)
	copied, err := io.CopyBuffer(struct{ io.Writer }{tempFile}, struct{ io.Reader }{src}, buf)
	if err != nil {
		return fmt.Errorf("copy audio: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if copied != f.audioSize {
		return &IntegrityError{Path: f.path, Expected: f.audioSize, Actual: copied}
	}
	_ = src.Close() //nolint:errcheck // Must be closed before the original is removed

	// From here on the temp file holds the only complete copy and is kept.
	success = true

	if options.backupSuffix != "" {
		if err := os.Rename(f.path, f.path+options.backupSuffix); err != nil {
			return &ReplaceError{Path: f.path, TempPath: tempPath, Step: "backup", Err: err}
		}
	} else if err := os.Remove(f.path); err != nil {
		return &ReplaceError{Path: f.path, TempPath: tempPath, Step: "delete", Err: err}
	}
	if err := os.Rename(tempPath, f.path); err != nil {
		return &ReplaceError{Path: f.path, TempPath: tempPath, Step: "rename", Err: err}
	}

	written = true
	f.tagSize = int64(len(data))
	f.fileSize = f.tagSize + f.audioSize
	f.tag.SetDiskSize(f.tagSize)

	f.logger.Debug().
		Int64("tag_size", f.tagSize).
		Int64("audio_size", copied).
		Msg("file rewritten")
	return nil
}

// validateWrittenFile re-opens the file and compares key metadata fields.
func (f *File) validateWrittenFile() error {
	written, err := Open(f.path, WithoutLegacyFallback(), WithReadOnly())
	if err != nil {
		return fmt.Errorf("re-open: %w", err)
	}

	if got, want := len(written.tag.Frames()), len(f.tag.Frames()); got != want {
		return fmt.Errorf("frame count mismatch: got %d, want %d", got, want)
	}
	if written.Title() != f.Title() {
		return fmt.Errorf("title mismatch: got %q, want %q", written.Title(), f.Title())
	}
	if written.AudioSize() != f.audioSize {
		return fmt.Errorf("audio size mismatch: got %d, want %d", written.AudioSize(), f.audioSize)
	}
	return nil
}
