// Package fswalk enumerates the plain files reachable from an ordered set of
// root paths, recursing into directories lazily. It is the filesystem half of
// the classwalk traversal; archive containers discovered here are opaque files
// as far as this package is concerned.
package fswalk

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/go-git/go-billy/v5"
)

// ErrRootNotFound is returned from New when a configured root path does not
// exist. It can be checked with errors.Is().
var ErrRootNotFound = errors.New("root path not found")

// ErrDirUnreadable is returned from Next when listing a directory fails
// mid-traversal. It can be checked with errors.Is().
var ErrDirUnreadable = errors.New("directory not readable")

// File is one plain file yielded by the walk.
type File struct {
	// Path is the file's path as reachable through the walker's filesystem.
	Path string

	// Root reports whether the file came directly from the root list, as
	// opposed to being discovered while recursing into a directory.
	Root bool
}

// Walker yields every plain file under an ordered list of root paths in
// depth-first pre-order. Directory listings are performed lazily, one
// directory at a time, as the traversal reaches them; the walker holds no
// open file handles between calls.
//
// A Walker is not safe for concurrent use.
type Walker struct {
	fsys    billy.Filesystem
	pending []pendingItem
}

// pendingItem is one work-list entry: either a file waiting to be yielded or
// a directory waiting to be listed.
type pendingItem struct {
	path string
	dir  bool
	root bool
}

// New constructs a Walker over the given roots. Each root must exist on fsys,
// or construction fails with an error wrapping ErrRootNotFound. Roots are
// visited in the order given.
func New(fsys billy.Filesystem, roots []string) (*Walker, error) {
	w := &Walker{fsys: fsys}
	items := make([]pendingItem, 0, len(roots))
	for _, root := range roots {
		info, err := fsys.Stat(root)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("fswalk: root %q: %w", root, ErrRootNotFound)
			}
			return nil, fmt.Errorf("fswalk: stat root %q: %w", root, err)
		}
		items = append(items, pendingItem{path: root, dir: info.IsDir(), root: true})
	}
	// The pending list is consumed from the tail, so the roots go in reversed
	// to preserve their configured order.
	for i := len(items) - 1; i >= 0; i-- {
		w.pending = append(w.pending, items[i])
	}
	return w, nil
}

// Next returns the next plain file in depth-first pre-order, or io.EOF once
// every root has been exhausted. Exhaustion is terminal: further calls keep
// returning io.EOF. A failed directory listing aborts the call with an error
// wrapping ErrDirUnreadable.
func (w *Walker) Next() (File, error) {
	for len(w.pending) > 0 {
		item := w.pending[len(w.pending)-1]
		w.pending = w.pending[:len(w.pending)-1]

		if !item.dir {
			return File{Path: item.path, Root: item.root}, nil
		}

		entries, err := w.fsys.ReadDir(item.path)
		if err != nil {
			return File{}, fmt.Errorf("fswalk: list %q: %w: %w", item.path, ErrDirUnreadable, err)
		}
		// Sort by name so the visit order is stable run to run; billy backends
		// make no ordering promise of their own.
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
		for i := len(entries) - 1; i >= 0; i-- {
			entry := entries[i]
			w.pending = append(w.pending, pendingItem{
				path: w.fsys.Join(item.path, entry.Name()),
				dir:  entry.IsDir(),
			})
		}
	}
	return File{}, io.EOF
}
