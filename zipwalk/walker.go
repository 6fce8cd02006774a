// Package zipwalk enumerates the regular entries of a single zip-format
// archive (such as a jar), one entry at a time. It is the archive half of the
// classwalk traversal. Directory entries are skipped transparently; no name
// filtering happens at this layer.
package zipwalk

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/klauspost/compress/zip"
)

// ErrArchiveUnreadable is returned from Open when the file cannot be opened
// or parsed as a zip archive. It can be checked with errors.Is().
var ErrArchiveUnreadable = errors.New("archive not readable")

// ErrEntryRead is returned from Entry.Open when an entry's content cannot be
// read. It can be checked with errors.Is().
var ErrEntryRead = errors.New("archive entry not readable")

// Entry is one regular (non-directory) archive entry.
type Entry struct {
	path string
	zf   *zip.File
}

// Name returns the entry's name as recorded in the archive, for example
// "com/example/Foo.class".
func (e *Entry) Name() string {
	return e.zf.Name
}

// Open returns a reader over the entry's decompressed content. The caller
// owns the returned reader and must close it. The reader stays valid only
// while the walker's container handle is open.
func (e *Entry) Open() (io.ReadCloser, error) {
	rc, err := e.zf.Open()
	if err != nil {
		return nil, fmt.Errorf("zipwalk: entry %q in %q: %w: %w", e.zf.Name, e.path, ErrEntryRead, err)
	}
	return rc, nil
}

// Walker yields the regular entries of one archive in the order they appear
// in the archive's central directory. The container handle is held open for
// the walker's lifetime and released when the walk reports io.EOF, or by
// Close for early abandonment.
//
// A Walker is not safe for concurrent use.
type Walker struct {
	path   string
	file   billy.File
	files  []*zip.File
	index  int
	closed bool
}

// Open opens the archive at path through fsys. If the file cannot be opened
// or is not a valid zip archive, Open fails with an error wrapping
// ErrArchiveUnreadable and holds no handle.
func Open(fsys billy.Filesystem, path string) (*Walker, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("zipwalk: stat %q: %w: %w", path, ErrArchiveUnreadable, err)
	}
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("zipwalk: open %q: %w: %w", path, ErrArchiveUnreadable, err)
	}
	r, err := zip.NewReader(f, info.Size())
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("zipwalk: parse %q: %w: %w", path, ErrArchiveUnreadable, err)
	}
	return &Walker{path: path, file: f, files: r.File}, nil
}

// Next returns the next regular entry, or io.EOF once every entry has been
// consumed. Reporting io.EOF releases the container handle; after that the
// walker keeps returning io.EOF.
func (w *Walker) Next() (*Entry, error) {
	for w.index < len(w.files) {
		zf := w.files[w.index]
		w.index++
		if zf.FileInfo().IsDir() {
			continue
		}
		return &Entry{path: w.path, zf: zf}, nil
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// Close releases the archive's container handle. It is idempotent and safe
// to call whether or not the walk ran to exhaustion. Entry readers obtained
// earlier become invalid once the container is closed.
func (w *Walker) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("zipwalk: close %q: %w", w.path, err)
	}
	return nil
}
