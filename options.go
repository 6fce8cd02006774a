package classwalk

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// options holds the configurable collaborators of an Iterator.
type options struct {
	fsys billy.Filesystem
}

// Option is a functional option for configuring an Iterator.
type Option func(*options)

// WithFilesystem makes the iterator traverse fsys instead of the host
// filesystem. This is how tests run the traversal against memfs.
func WithFilesystem(fsys billy.Filesystem) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

func defaultOptions() *options {
	return &options{fsys: &hostFS{}}
}

// hostFS is a billy.Filesystem over the host, unconfined to a chroot, so
// absolute and working-directory-relative root paths both resolve the way
// os.Open would resolve them.
type hostFS struct {
	osfs.ChrootOS
}

func (h *hostFS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

func (h *hostFS) Root() string {
	return "/"
}
