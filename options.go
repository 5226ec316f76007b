package id3tag

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Option configures behavior when opening files.
//
// Example:
//
//	file, err := id3tag.Open("song.mp3",
//	    id3tag.WithStrictParsing(),
//	    id3tag.WithLogger(logger),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	strictParsing  bool // Fail on any warning
	ignoreWarnings bool // Suppress all warnings
	legacyFallback bool // Seed a missing tag from ID3v1
	readOnly       bool // Reject Save
	logger         zerolog.Logger
	client         *http.Client
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		legacyFallback: true,
		logger:         zerolog.Nop(),
		client:         http.DefaultClient,
	}
}

func applyOptions(opts []Option) *openOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default a frame that fails to decode is set aside and reported by
// Errors, and the file opens normally. With strict parsing Open fails
// instead.
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// File.Warnings will always be empty. Invalid frames are still reported
// by Errors.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithoutLegacyFallback opens files without an ID3v2.3 tag with an empty
// tag, ignoring any ID3v1 tag. Nothing is written during Open.
func WithoutLegacyFallback() Option {
	return func(o *openOptions) {
		o.legacyFallback = false
	}
}

// WithReadOnly makes Save fail with a *ReadOnlyError. A tag seeded from
// ID3v1 is kept in memory only.
func WithReadOnly() Option {
	return func(o *openOptions) {
		o.readOnly = true
	}
}

// WithLogger sets the logger used for load and save events. The default
// discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *openOptions) {
		o.logger = logger
	}
}

// WithHTTPClient sets the client OpenURL uses. The default is
// http.DefaultClient.
func WithHTTPClient(client *http.Client) Option {
	return func(o *openOptions) {
		if client != nil {
			o.client = client
		}
	}
}
