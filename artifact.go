package classwalk

import "io"

// Provenance distinguishes where an artifact's bytes came from.
type Provenance int

const (
	// FromFile marks an artifact read from a plain file on the filesystem.
	FromFile Provenance = iota

	// FromArchive marks an artifact read from an entry of a jar archive.
	FromArchive
)

// String returns "file" or "archive".
func (p Provenance) String() string {
	if p == FromFile {
		return "file"
	}
	return "archive"
}

// Artifact is one discovered class file. Content is owned by the caller,
// which must close it before or shortly after the next call to Next; the
// iterator does not track streams it has handed out.
type Artifact struct {
	// Content reads the artifact's bytes.
	Content io.ReadCloser

	// Name is the file's path for FromFile artifacts, or the entry's name as
	// recorded in the archive for FromArchive artifacts.
	Name string

	// Provenance tells which of the two a given artifact is.
	Provenance Provenance
}
