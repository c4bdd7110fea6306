// Package fileutil provides filename hygiene helpers for output tracks.
package fileutil

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// SanitizeBaseName normalizes a name for cross-filesystem safety. The input
// is NFC-normalized, reserved characters are replaced with underscores, and
// surrounding whitespace and dots are trimmed.
func SanitizeBaseName(name string) string {
	name = norm.NFC.String(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	replacer := strings.NewReplacer(
		"<", "_", ">", "_", ":", "_", "\"", "_",
		"/", "_", "\\", "_", "|", "_", "?", "_", "*", "_",
	)
	name = replacer.Replace(name)
	// Control characters are invalid on most filesystems.
	name = strings.Map(func(r rune) rune {
		if r < 0x20 {
			return '_'
		}
		return r
	}, name)
	return strings.Trim(name, " .")
}

// SourceBaseName derives a sanitized base name from an input file path,
// stripping the directory and extension.
func SourceBaseName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	sanitized := SanitizeBaseName(stem)
	if sanitized == "" {
		return "track"
	}
	return sanitized
}

// SourceExtension returns the lowercase extension of the input path without
// the leading dot, defaulting to "mp3" when the path has none. Copy-mode
// extraction keeps the container, so outputs share the source extension.
func SourceExtension(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "mp3"
	}
	return ext
}
