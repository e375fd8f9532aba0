package sequence

import (
	"os"
	"path/filepath"
	"strings"
)

// Join returns the path of a data file named relative to the header's
// directory. Absolute names are returned cleaned.
func Join(dir, name string) string {
	name = strings.TrimPrefix(name, "./")
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(dir, filepath.FromSlash(name))
}

// Locate returns path when it names a regular file. Otherwise it tries
// the same path once with the extension's case flipped (".raw" and
// ".RAW") and reports whether either exists.
func Locate(path string) (string, bool) {
	if isFile(path) {
		return path, true
	}
	alt, ok := alternateExt(path)
	if ok && isFile(alt) {
		return alt, true
	}
	return path, false
}

func alternateExt(path string) (string, bool) {
	ext := filepath.Ext(path)
	if len(ext) < 2 {
		return "", false
	}
	flipped := strings.ToUpper(ext)
	if flipped == ext {
		flipped = strings.ToLower(ext)
	}
	if flipped == ext {
		return "", false
	}
	return strings.TrimSuffix(path, ext) + flipped, true
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
