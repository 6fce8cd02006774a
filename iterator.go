package classwalk

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/classforge/classwalk/fswalk"
	"github.com/classforge/classwalk/zipwalk"
)

// Suffixes gating classification. The class suffix is matched exactly and
// case-sensitively; the jar suffix ignores case.
const (
	classSuffix = ".class"
	jarSuffix   = ".jar"
)

// Iterator walks the configured roots and yields one Artifact per call to
// Next. It is a two-state machine: while no archive is open it consumes the
// filesystem walk; while one is open it consumes that archive's entries,
// returning to the filesystem walk when the archive is exhausted. At most
// one archive container is open at any time.
//
// An Iterator is not safe for concurrent use; all state is exclusively owned
// by a single logical caller. After any error from Next the iterator must be
// treated as terminated.
type Iterator struct {
	fsys    billy.Filesystem
	files   *fswalk.Walker
	archive *zipwalk.Walker // non-nil iff currently walking an archive

	// Last produced artifact, for Name and IsFile.
	name   string
	isFile bool

	done bool
}

// New constructs an Iterator over the given roots, in order. Each root must
// exist, or construction fails with an error wrapping ErrRootNotFound. An
// empty root set is rejected.
func New(roots []string, opts ...Option) (*Iterator, error) {
	if len(roots) == 0 {
		return nil, errors.New("classwalk: no roots configured")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	files, err := fswalk.New(o.fsys, roots)
	if err != nil {
		return nil, err
	}
	return &Iterator{fsys: o.fsys, files: files}, nil
}

// NewFromPathList constructs an Iterator from a path-list string such as a
// Java class path, split on the platform's list separator (":" on Unix, ";"
// on Windows). Empty elements are dropped. The list is an explicit argument;
// the library never reads process-global state to find its roots.
func NewFromPathList(pathList string, opts ...Option) (*Iterator, error) {
	roots := SplitPathList(pathList)
	if len(roots) == 0 {
		return nil, fmt.Errorf("classwalk: empty path list %q", pathList)
	}
	return New(roots, opts...)
}

// Next returns the next class artifact, or io.EOF once the roots and any
// archive in progress are exhausted. Exhaustion is terminal and idempotent.
//
// A single call may do unbounded skipping work (files of no interest, archive
// directory entries) but always returns exactly one artifact or io.EOF; it
// never returns a "try again" signal. Any I/O failure aborts the call with an
// error; files and entries are only ever skipped because of their name, never
// because reading them failed.
func (it *Iterator) Next() (*Artifact, error) {
	if it.done {
		return nil, io.EOF
	}
	for {
		if it.archive == nil {
			f, err := it.files.Next()
			if err != nil {
				if errors.Is(err, io.EOF) {
					it.done = true
					return nil, io.EOF
				}
				return nil, err
			}
			if strings.HasSuffix(f.Path, classSuffix) {
				rc, err := it.fsys.Open(f.Path)
				if err != nil {
					return nil, fmt.Errorf("classwalk: open %q: %w", f.Path, err)
				}
				it.name, it.isFile = f.Path, true
				return &Artifact{Content: rc, Name: f.Path, Provenance: FromFile}, nil
			}
			if f.Root && hasSuffixFold(f.Path, jarSuffix) {
				aw, err := zipwalk.Open(it.fsys, f.Path)
				if err != nil {
					return nil, err
				}
				it.archive = aw
			}
			// Anything else is of no interest; keep walking.
			continue
		}

		entry, err := it.archive.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				it.archive = nil
				continue
			}
			return nil, err
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, err
		}
		it.name, it.isFile = entry.Name(), false
		return &Artifact{Content: rc, Name: entry.Name(), Provenance: FromArchive}, nil
	}
}

// Name returns the display name of the artifact produced by the most recent
// successful Next: the file's path, or the archive entry's name. Valid only
// between that call and the following one.
func (it *Iterator) Name() string {
	return it.name
}

// IsFile reports whether the most recent artifact was read from a plain file
// rather than an archive entry. Valid under the same window as Name.
func (it *Iterator) IsFile() bool {
	return it.isFile
}

// Close releases the archive container handle if the caller abandons the
// iteration while an archive is being walked. It is idempotent, and a no-op
// after Next has already reported io.EOF (exhaustion releases the handle on
// its own).
func (it *Iterator) Close() error {
	if it.archive == nil {
		return nil
	}
	aw := it.archive
	it.archive = nil
	return aw.Close()
}

// hasSuffixFold reports whether s ends with suffix under ASCII case folding.
func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
