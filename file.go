package id3tag

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/simonhull/id3tag/internal/id3v1"
	"github.com/simonhull/id3tag/internal/id3v23"
	"github.com/simonhull/id3tag/internal/types"
)

// File is the ID3v2.3 tag of one MP3 file together with the sizes needed
// to write it back.
//
// The audio size (file size minus the size of the tag on disk) is fixed
// when the file is opened and checked against the bytes actually copied
// when Save rewrites the file.
type File struct {
	// Warnings encountered while loading (non-fatal issues)
	Warnings []Warning

	path   string
	remote bool
	tag    *id3v23.Tag

	fileSize  int64
	tagSize   int64
	audioSize int64

	options *openOptions
	logger  zerolog.Logger
}

func newFile(path string, options *openOptions) *File {
	return &File{
		path:    path,
		options: options,
		logger:  options.logger.With().Str("file", path).Logger(),
	}
}

// Open opens an MP3 file and reads its tag.
//
// A file without an ID3v2.3 tag gets an empty one. Unless
// WithoutLegacyFallback is given, an ID3v1 tag at the end of the file is
// copied into it and the file is saved straight away, so the copy is not
// lost. Frames that fail to decode do not fail Open; see Errors.
//
// Tags of other ID3v2 versions fail with *UnsupportedVersionError.
//
// Example:
//
//	file, err := id3tag.Open("song.mp3")
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s - %s\n", file.Band(), file.Title())
func Open(path string, opts ...Option) (*File, error) {
	options := applyOptions(opts)
	file := newFile(path, options)

	migrated, err := file.readLocal()
	if err != nil {
		return nil, err
	}
	file.audioSize = file.fileSize - file.tagSize

	if err := file.finishLoad(); err != nil {
		return nil, err
	}
	if migrated > 0 {
		file.persistMigration(migrated)
	}
	if options.ignoreWarnings {
		file.Warnings = nil
	}
	return file, nil
}

// readLocal loads the tag from the file and returns the number of frames
// copied from an ID3v1 tag.
func (f *File) readLocal() (int, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return 0, fmt.Errorf("open file: %w", err)
	}
	defer fh.Close() //nolint:errcheck // Read-only handle

	stat, err := fh.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat file: %w", err)
	}
	f.fileSize = stat.Size()

	tag, err := id3v23.Parse(fh, f.path)
	if err == nil {
		f.setTag(tag)
		return 0, nil
	}
	if !errors.Is(err, types.ErrTagNotFound) {
		return 0, err
	}

	f.logger.Debug().Err(err).Msg("no ID3v2.3 tag")
	f.emptyTag()
	if !f.options.legacyFallback {
		return 0, nil
	}
	return f.migrateLegacy(id3v1.Read(fh, f.fileSize, f.path)), nil
}

// OpenContext opens a file after checking ctx.
//
// Options can be provided just like with Open():
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//
//	file, err := id3tag.OpenContext(ctx, "song.mp3", id3tag.WithStrictParsing())
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenURL reads the tag of a file served over HTTP.
//
// Only the tag is downloaded when the server sends a Content-Length;
// otherwise the body is read to the end to measure the file. The ID3v1
// fallback is never attempted and the File is read-only.
func OpenURL(ctx context.Context, url string, opts ...Option) (*File, error) {
	options := applyOptions(opts)
	file := newFile(url, options)
	file.remote = true

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := options.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // Body fully consumed or abandoned

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body := &countingReader{r: resp.Body}
	tag, err := id3v23.Parse(body, url)
	switch {
	case err == nil:
		file.setTag(tag)
	case errors.Is(err, types.ErrTagNotFound):
		file.logger.Debug().Err(err).Msg("no ID3v2.3 tag")
		file.emptyTag()
	default:
		return nil, err
	}

	file.fileSize = resp.ContentLength
	if file.fileSize < 0 {
		if _, err := io.Copy(io.Discard, body); err != nil {
			return nil, fmt.Errorf("measure remote file: %w", err)
		}
		file.fileSize = body.n
	}
	file.audioSize = file.fileSize - file.tagSize

	if err := file.finishLoad(); err != nil {
		return nil, err
	}
	if options.ignoreWarnings {
		file.Warnings = nil
	}
	return file, nil
}

// countingReader counts the bytes read through it.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// OpenMany opens multiple files concurrently.
//
// Files are opened in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails to open the first error is returned and no files.
//
// Example:
//
//	files, err := id3tag.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range files {
//		fmt.Printf("%s: %s\n", f.Path(), f.Title())
//	}
func OpenMany(ctx context.Context, paths ...string) ([]*File, error) {
	return OpenManyWithOptions(ctx, paths, nil)
}

// OpenManyWithOptions is OpenMany with options applied to every file.
func OpenManyWithOptions(ctx context.Context, paths []string, opts []Option) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			file, err := OpenContext(ctx, path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (f *File) setTag(tag *id3v23.Tag) {
	f.tag = tag
	f.tagSize = tag.DiskSize()
	for _, fr := range tag.InvalidFrames() {
		f.logger.Warn().Str("frame", fr.ID).Msg(fr.Diagnostic())
		f.Warnings = append(f.Warnings, Warning{Stage: "metadata", Message: fr.Diagnostic()})
	}
	f.logger.Debug().
		Int64("tag_size", f.tagSize).
		Int("frames", len(tag.Frames())).
		Int("invalid", len(tag.InvalidFrames())).
		Msg("tag loaded")
}

// emptyTag installs a fresh tag with no padding: nothing occupies the
// start of the file yet.
func (f *File) emptyTag() {
	f.tag = id3v23.New()
	_ = f.tag.SetPadding(0) //nolint:errcheck // Zero is always accepted
	f.tagSize = 0
}

// migrateLegacy copies the fields of an ID3v1 tag into the empty tag and
// returns the number of frames it added.
func (f *File) migrateLegacy(res id3v1.Result) int {
	switch res.Status {
	case id3v1.StatusNotFound:
		return 0
	case id3v1.StatusMalformed:
		f.logger.Warn().Err(res.Err).Msg("ignoring malformed ID3v1 tag")
		f.Warnings = append(f.Warnings, Warning{
			Stage:   "legacy",
			Message: res.Err.Error(),
			Offset:  f.fileSize - id3v1.TagSize,
		})
		return 0
	}

	legacy := res.Tag
	n := 0
	set := func(ft FrameType, s string) {
		f.setText(EncodingUTF16, ft, s)
		n++
	}
	if legacy.Album != "" {
		set(FrameAlbumTitle, legacy.Album)
	}
	if legacy.Artist != "" {
		set(FrameBand, legacy.Artist)
	}
	if legacy.Title != "" {
		set(FrameSongTitle, legacy.Title)
	}
	if legacy.Track != 0 {
		set(FrameTrackNumber, strconv.Itoa(int(legacy.Track)))
	}
	if legacy.GenreName() != "" {
		set(FrameContentType, genreText(legacy.Genre))
	}
	if len(legacy.Year) == 4 {
		set(FrameYear, legacy.Year)
	}

	f.logger.Debug().Int("frames", n).Msg("copied ID3v1 tag")
	return n
}

// persistMigration saves a tag seeded from ID3v1. Failure leaves the
// frames in memory and is reported as a warning.
func (f *File) persistMigration(frames int) {
	if f.options.readOnly {
		f.logger.Debug().Msg("read-only, ID3v1 copy kept in memory")
		return
	}
	if err := f.Save(); err != nil {
		f.logger.Warn().Err(err).Int("frames", frames).Msg("could not save tag copied from ID3v1")
		f.Warnings = append(f.Warnings, Warning{
			Stage:   "legacy",
			Message: fmt.Sprintf("save tag copied from ID3v1: %v", err),
		})
	}
}

// finishLoad applies WithStrictParsing.
func (f *File) finishLoad() error {
	if f.options.strictParsing && len(f.Warnings) > 0 {
		w := f.Warnings[0]
		return &CorruptedFileError{
			Path:   f.path,
			Reason: "strict parsing failed: " + w.Message,
			Offset: w.Offset,
		}
	}
	return nil
}

// Path returns the file path, or the URL of a remote file.
func (f *File) Path() string { return f.path }

// IsRemote reports whether the file was opened with OpenURL.
func (f *File) IsRemote() bool { return f.remote }

// FileSize returns the size of the file when it was opened or last saved.
func (f *File) FileSize() int64 { return f.fileSize }

// TagSize returns the number of bytes the tag occupies on disk, 0 when the
// file has no ID3v2.3 tag yet.
func (f *File) TagSize() int64 { return f.tagSize }

// AudioSize returns the number of bytes after the tag.
func (f *File) AudioSize() int64 { return f.audioSize }

// Tag returns the tag. Changes to it are written by Save.
func (f *File) Tag() *Tag { return f.tag }

func (f *File) String() string {
	return fmt.Sprintf("mp3 file.....: %s\nmp3 file size: %d bytes\naudio size...: %d bytes\nID3v2.3 tag..: %s\n",
		f.path, f.fileSize, f.audioSize, f.tag)
}
