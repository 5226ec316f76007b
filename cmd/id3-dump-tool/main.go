// Command id3-dump-tool prints the ID3v2.3 frames of MP3 files, local or
// served over HTTP, and can re-save local files with the configured
// padding.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/simonhull/id3tag"
	"github.com/simonhull/id3tag/internal/config"
	"github.com/simonhull/id3tag/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "TOML configuration file")
	save := flag.Bool("save", false, "re-save each local file after reading it")
	audio := flag.Bool("audio", false, "probe the MPEG stream for duration and bitrate")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: id3-dump-tool [flags] <file.mp3|url>...")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	level, ok := logging.ParseLevel(cfg.LogLevel)
	logger := logging.New("id3-dump-tool", level, os.Stderr)
	if !ok {
		logger.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using info")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	d := &dumper{cfg: cfg, logger: logger, save: *save, audio: *audio}
	if err := d.run(ctx, flag.Args(), os.Stdout); err != nil {
		logger.Error().Err(err).Msg("dump failed")
		os.Exit(1)
	}
}

type dumper struct {
	cfg    config.Config
	logger zerolog.Logger
	save   bool
	audio  bool
}

// run dumps every source concurrently and prints the reports in argument
// order.
func (d *dumper) run(ctx context.Context, sources []string, w io.Writer) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.Workers)

	reports := make([]bytes.Buffer, len(sources))
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			return d.dump(ctx, src, &reports[i])
		})
	}
	err := g.Wait()

	for i := range reports {
		if _, werr := reports[i].WriteTo(w); werr != nil {
			return werr
		}
	}
	return err
}

func (d *dumper) dump(ctx context.Context, src string, w io.Writer) error {
	opts := []id3tag.Option{id3tag.WithLogger(d.logger)}
	if !d.cfg.LegacyFallback {
		opts = append(opts, id3tag.WithoutLegacyFallback())
	}
	if !d.save {
		opts = append(opts, id3tag.WithReadOnly())
	}

	var (
		f   *id3tag.File
		err error
	)
	if isURL(src) {
		client := &http.Client{Timeout: d.cfg.HTTPTimeout}
		f, err = id3tag.OpenURL(ctx, src, append(opts, id3tag.WithHTTPClient(client))...)
	} else {
		f, err = id3tag.OpenContext(ctx, src, opts...)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}

	fmt.Fprint(w, f)
	for _, fr := range f.Tag().Frames() {
		fmt.Fprintf(w, "   %s\n", fr)
	}
	if err := f.DisplayErrors(w); err != nil {
		return err
	}
	for _, warn := range f.Warnings {
		fmt.Fprintf(w, "   warning: %s\n", warn.Message)
	}

	if d.audio {
		info, err := f.AudioInfo()
		switch {
		case errors.Is(err, id3tag.ErrRemoteSource):
			fmt.Fprintln(w, "audio........: not probed for remote files")
		case err != nil:
			fmt.Fprintf(w, "audio........: %v\n", err)
		default:
			fmt.Fprintf(w, "audio........: %s, %s\n", info, info.Duration)
		}
	}

	if d.save && !f.IsRemote() {
		if err := f.Save(d.saveOptions()...); err != nil {
			return fmt.Errorf("%s: save: %w", src, err)
		}
		d.logger.Info().Str("file", src).Int64("tag_size", f.TagSize()).Msg("saved")
	}
	fmt.Fprintln(w)
	return nil
}

func (d *dumper) saveOptions() []id3tag.SaveOption {
	opts := []id3tag.SaveOption{
		id3tag.WithPaddingSize(d.cfg.Padding),
		id3tag.WithCopyBufferSize(d.cfg.CopyBufferSize),
	}
	if d.cfg.Backup {
		opts = append(opts, id3tag.WithBackup(".bak"))
	}
	if d.cfg.PreserveModTime {
		opts = append(opts, id3tag.WithPreserveModTime())
	}
	return opts
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
