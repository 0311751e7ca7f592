package utils

import (
	"path/filepath"
	"strings"
)

// SanitizeFilename reduces a caller-supplied filename to a string safe to
// use as a single path component: path separators and parent references are
// stripped, spaces become underscores, and anything outside a conservative
// character set is dropped. An empty result means the name was unusable.
func SanitizeFilename(name string) string {
	// Windows clients send backslash-separated paths.
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}

	// A leading dot would hide the file or, for "..", escape the directory.
	return strings.TrimLeft(b.String(), "._")
}
