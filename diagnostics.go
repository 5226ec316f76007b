package id3tag

import (
	"fmt"
	"io"
)

// HasErrors reports whether any frame failed to decode.
func (f *File) HasErrors() bool {
	return len(f.tag.InvalidFrames()) != 0
}

// Errors returns one diagnostic per frame that failed to decode, in the
// order they were read. These frames are dropped by Save.
func (f *File) Errors() []string {
	invalid := f.tag.InvalidFrames()
	errs := make([]string, 0, len(invalid))
	for _, fr := range invalid {
		errs = append(errs, fr.Diagnostic())
	}
	return errs
}

// DisplayErrors writes the diagnostics to w, headed by the file path and
// the number of invalid frames. It writes nothing when there are none.
func (f *File) DisplayErrors(w io.Writer) error {
	errs := f.Errors()
	if len(errs) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s had %d invalid frames\n", f.path, len(errs)); err != nil {
		return err
	}
	for _, e := range errs {
		if _, err := fmt.Fprintf(w, "   %s\n", e); err != nil {
			return err
		}
	}
	return nil
}
