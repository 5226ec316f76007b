package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/simonhull/id3tag"
	"github.com/simonhull/id3tag/internal/config"
)

func writeSong(t *testing.T, title string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "song.mp3")
	if err := os.WriteFile(path, make([]byte, 512), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := id3tag.Open(path, id3tag.WithoutLegacyFallback())
	if err != nil {
		t.Fatal(err)
	}
	f.SetTitle(title)
	if err := f.Save(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDumper_Run(t *testing.T) {
	paths := []string{writeSong(t, "first"), writeSong(t, "second")}
	d := &dumper{cfg: config.Default(), logger: zerolog.Nop()}

	var out strings.Builder
	if err := d.run(context.Background(), paths, &out); err != nil {
		t.Fatal(err)
	}

	s := out.String()
	first, second := strings.Index(s, paths[0]), strings.Index(s, paths[1])
	if first < 0 || second < first {
		t.Errorf("reports missing or out of order:\n%s", s)
	}
	if !strings.Contains(s, "first") || !strings.Contains(s, "second") {
		t.Errorf("frames not printed:\n%s", s)
	}
}

func TestDumper_SaveUsesConfig(t *testing.T) {
	path := writeSong(t, "title")
	cfg := config.Default()
	cfg.Padding = 0
	d := &dumper{cfg: cfg, logger: zerolog.Nop(), save: true}

	var out strings.Builder
	if err := d.run(context.Background(), []string{path}, &out); err != nil {
		t.Fatal(err)
	}

	f, err := id3tag.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	// Padding only applies to a rewrite; this save fits in place.
	if f.Tag().Padding() == 0 || f.Title() != "title" {
		t.Errorf("Padding = %d, Title = %q", f.Tag().Padding(), f.Title())
	}
}

func TestDumper_MissingFile(t *testing.T) {
	d := &dumper{cfg: config.Default(), logger: zerolog.Nop()}
	err := d.run(context.Background(), []string{filepath.Join(t.TempDir(), "missing.mp3")}, &strings.Builder{})
	if err == nil {
		t.Fatal("expected an error")
	}
}
