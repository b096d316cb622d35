package validation

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxFilenameLength is the longest client filename kept, in bytes.
const maxFilenameLength = 255

// fallbackFilename replaces names that sanitise to nothing.
const fallbackFilename = "upload"

// ClientFilename reduces a client supplied multipart filename to a bare,
// printable name. Directory components sent by some browsers are dropped,
// quotes and control characters become underscores, and leading dots are
// removed so the name can never address a hidden file or a parent directory.
func ClientFilename(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	name = strings.Map(func(r rune) rune {
		if r == '"' || r == ':' || unicode.IsControl(r) || r == utf8.RuneError {
			return '_'
		}
		return r
	}, name)

	name = strings.TrimLeft(strings.TrimSpace(name), ".")
	name = strings.TrimSpace(name)
	if strings.Trim(name, "_") == "" {
		return fallbackFilename
	}

	if len(name) > maxFilenameLength {
		name = truncateKeepingExt(name)
	}
	return name
}

func truncateKeepingExt(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || len(ext) >= maxFilenameLength/2 {
		return truncateUTF8(name, maxFilenameLength)
	}
	base := strings.TrimSuffix(name, ext)
	return truncateUTF8(base, maxFilenameLength-len(ext)) + ext
}

// truncateUTF8 cuts s to at most n bytes on a rune boundary.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// ThumbnailDisposition returns an inline Content-Disposition value naming
// the thumbnail file.
func ThumbnailDisposition(name string) string {
	name = ClientFilename(name)
	if name == fallbackFilename {
		name = "thumbnail"
	}
	if !strings.EqualFold(filepath.Ext(name), ".png") {
		name = truncateUTF8(name, maxFilenameLength-len(".png")) + ".png"
	}
	return fmt.Sprintf("inline; filename=%q", name)
}
