package classwalk

import "path/filepath"

// SplitPathList splits a class-path-style list into individual root paths
// using the platform's path-list separator, dropping empty elements. The
// result preserves the list's order and is suitable for New.
func SplitPathList(pathList string) []string {
	var roots []string
	for _, p := range filepath.SplitList(pathList) {
		if p == "" {
			continue
		}
		roots = append(roots, p)
	}
	return roots
}
