// Package classwalk enumerates class-file artifacts reachable from a set of
// filesystem roots: plain .class files, directories (walked recursively), and
// root-level jar archives whose entries are surfaced one at a time.
//
// The traversal is pull-based and bounded-memory: nothing is listed or read
// until a call to Next needs it, and at most one archive container is held
// open at any moment. Next composes two lazy stages, a filesystem walk
// (fswalk) and an archive-entry walk (zipwalk), handing control to a fresh
// archive walker whenever the file walk yields a root-level jar and taking it
// back when the archive is exhausted.
//
// Example usage:
//
//	it, err := classwalk.New([]string{"build/classes", "lib/app.jar"})
//	if err != nil {
//		return err
//	}
//	defer it.Close()
//	for {
//		a, err := it.Next()
//		if errors.Is(err, io.EOF) {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		scan(a.Name, a.Content)
//		a.Content.Close()
//	}
//
// All filesystem access goes through a billy.Filesystem, injectable with
// WithFilesystem; the default is the host filesystem.
package classwalk
