// Package walktest provides shared fixtures for the classwalk test suites:
// helpers that populate a billy filesystem with file trees and in-memory jar
// archives. It is imported by tests only.
package walktest

import (
	"bytes"
	"io"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/klauspost/compress/zip"
)

// JarEntry describes one entry to place in a fixture jar. A Name ending in
// "/" produces a directory entry; Data is ignored for those.
type JarEntry struct {
	Name string
	Data []byte
}

// WriteFile writes data to path on fsys, failing the test on error.
func WriteFile(t *testing.T, fsys billy.Filesystem, path string, data []byte) {
	t.Helper()
	if err := util.WriteFile(fsys, path, data, 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", path, err)
	}
}

// WriteJar builds a zip archive holding the given entries, in order, and
// writes it to path on fsys, failing the test on error.
func WriteJar(t *testing.T, fsys billy.Filesystem, path string, entries []JarEntry) {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.Name)
		if err != nil {
			t.Fatalf("WriteJar(%q): create entry %q: %v", path, e.Name, err)
		}
		if len(e.Data) > 0 {
			if _, err := w.Write(e.Data); err != nil {
				t.Fatalf("WriteJar(%q): write entry %q: %v", path, e.Name, err)
			}
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("WriteJar(%q): close writer: %v", path, err)
	}
	WriteFile(t, fsys, path, buf.Bytes())
}

// WriteJarUnreadableEntry writes a zip archive to path whose single entry is
// stored with a compression method no reader knows, so the container parses
// but the entry's content cannot be opened.
func WriteJarUnreadableEntry(t *testing.T, fsys billy.Filesystem, path, entryName string) {
	t.Helper()
	const unknownMethod = 99
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(unknownMethod, func(w io.Writer) (io.WriteCloser, error) {
		return nopWriteCloser{w}, nil
	})
	w, err := zw.CreateHeader(&zip.FileHeader{Name: entryName, Method: unknownMethod})
	if err != nil {
		t.Fatalf("WriteJarUnreadableEntry(%q): create entry %q: %v", path, entryName, err)
	}
	if _, err := w.Write([]byte("opaque")); err != nil {
		t.Fatalf("WriteJarUnreadableEntry(%q): write entry %q: %v", path, entryName, err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("WriteJarUnreadableEntry(%q): close writer: %v", path, err)
	}
	WriteFile(t, fsys, path, buf.Bytes())
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// ReadAndClose drains rc and closes it, failing the test on error.
func ReadAndClose(t *testing.T, rc io.ReadCloser) []byte {
	t.Helper()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAndClose: read: %v", err)
	}
	if err := rc.Close(); err != nil {
		t.Fatalf("ReadAndClose: close: %v", err)
	}
	return data
}
