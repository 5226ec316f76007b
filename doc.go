// Package id3tag reads, edits and writes the ID3v2.3 tag of MP3 files.
//
// A File holds the tag of one MP3 file as an ordered list of typed frames.
// Opening a file that has no ID3v2.3 tag yields an empty tag, seeded from
// the ID3v1 tag at the end of the file when one is present. Save writes the
// tag back without touching the audio when the new tag fits in the space
// of the old one, and rewrites the whole file through a temporary file
// when it does not.
//
// # Quick Start
//
//	file, err := id3tag.Open("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("%s - %s\n", file.Band(), file.Title())
//
//	file.SetTitle("Take Hold of the Flame")
//	if err := file.SetComments(id3tag.English, "remastered"); err != nil {
//		log.Fatal(err)
//	}
//	if err := file.Save(); err != nil {
//		log.Fatal(err)
//	}
//
// No file handle is kept open between calls: Open, Save and AudioInfo each
// open the file, use it and close it before returning.
//
// # Frames and Qualifiers
//
// Every frame has a FrameType and a Body. Text frames (TIT2, TALB, ...)
// hold a TextBody; comments, lyrics, pictures and ratings have their own
// body types, reached through the checked views on Frame:
//
//	for _, fr := range file.Frames(id3tag.FrameComments) {
//		if c, ok := fr.Comments(); ok {
//			fmt.Println(c.Language(), c.Text())
//		}
//	}
//
// Comments and lyrics are keyed by language and pictures by picture type.
// The setters find the frame with the same key and update it, or append a
// new one, so a tag never gains a second comment in the same language
// through this package.
//
// Frames whose body cannot be decoded are set aside with a diagnostic.
// They are reported by Errors and DisplayErrors and are dropped on Save.
//
// # Remote Files
//
// OpenURL reads the tag of a file served over HTTP. Remote files are
// read-only: Save fails with a *ReadOnlyError before doing any I/O.
//
// # Error Handling
//
// Errors are typed and can be matched with errors.As:
//
//   - *UnsupportedVersionError: the file has an ID3v2.2 or ID3v2.4 tag
//   - *CorruptedFileError: the tag header or size is unusable
//   - *InvalidArgumentError: a setter rejected its input, nothing changed
//   - *ReadOnlyError: Save on a remote or read-only File
//   - *IntegrityError: the audio copied during a rewrite had the wrong size
//   - *ReplaceError: the rewritten file could not be moved into place
//
// Non-fatal problems found while loading are collected in File.Warnings.
package id3tag
