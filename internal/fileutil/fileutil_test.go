package fileutil_test

import (
	"testing"

	"cleaver/internal/fileutil"
)

func TestSanitizeBaseName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Album: Disc 1", "Album_ Disc 1"},
		{`weird/name\with|chars?`, "weird_name_with_chars_"},
		{"  spaced  ", "spaced"},
		{"trailing...", "trailing"},
		{"", ""},
		{"clean-name_01", "clean-name_01"},
	}
	for _, tc := range cases {
		if got := fileutil.SanitizeBaseName(tc.in); got != tc.want {
			t.Errorf("SanitizeBaseName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSourceBaseName(t *testing.T) {
	if got := fileutil.SourceBaseName("/music/My OST: Vol 2.mp3"); got != "My OST_ Vol 2" {
		t.Fatalf("unexpected base name %q", got)
	}
	if got := fileutil.SourceBaseName("/tmp/...mp3"); got != "track" {
		t.Fatalf("expected fallback base name, got %q", got)
	}
}

func TestSourceExtension(t *testing.T) {
	if got := fileutil.SourceExtension("a/b/file.FLAC"); got != "flac" {
		t.Fatalf("expected flac, got %q", got)
	}
	if got := fileutil.SourceExtension("noext"); got != "mp3" {
		t.Fatalf("expected mp3 fallback, got %q", got)
	}
}
