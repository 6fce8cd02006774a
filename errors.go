package classwalk

import (
	"github.com/classforge/classwalk/fswalk"
	"github.com/classforge/classwalk/zipwalk"
)

// Sentinel errors surfaced by construction and by Next. Each originates in
// the walker package that detected it and is re-exported here so callers can
// check every failure mode against one package with errors.Is().

// ErrRootNotFound is returned from New when a configured root path does not
// exist. No artifacts are ever produced in that case.
var ErrRootNotFound = fswalk.ErrRootNotFound

// ErrDirUnreadable is returned from Next when listing a directory fails
// mid-traversal.
var ErrDirUnreadable = fswalk.ErrDirUnreadable

// ErrArchiveUnreadable is returned from Next when a root-level jar cannot be
// opened or parsed as an archive.
var ErrArchiveUnreadable = zipwalk.ErrArchiveUnreadable

// ErrEntryRead is returned from Next when an archive entry's content cannot
// be read.
var ErrEntryRead = zipwalk.ErrEntryRead
