package compat

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"jukebox/internal/nong"
)

const sampleLegacy = `{
  "version": 2,
  "nongs": {
    "100": {
      "default_path": "a.mp3",
      "active_path": "b.mp3",
      "songs": [
        {"name": "Official", "artist": "RobTop", "path": "a.mp3"},
        {"name": "Better Song", "artist": "Someone", "path": "b.mp3", "offset": 3}
      ]
    },
    "-2": {
      "default_path": "songs/stereo.mp3",
      "songs": [
        {"name": "Stereo Madness", "artist": "ForeverBound", "path": "songs/stereo.mp3"}
      ]
    }
  }
}`

func writeLegacy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nong_data.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write legacy manifest: %v", err)
	}
	return path
}

func TestManifestExists(t *testing.T) {
	path := writeLegacy(t, sampleLegacy)
	if !ManifestExists(path) {
		t.Fatal("expected manifest to exist")
	}
	if ManifestExists(path + ".nope") {
		t.Fatal("expected missing manifest to report false")
	}
	if ManifestExists(filepath.Dir(path)) {
		t.Fatal("a directory is not a manifest")
	}
}

func TestParseManifest(t *testing.T) {
	path := writeLegacy(t, sampleLegacy)

	parsed, err := ParseManifest(path)
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(parsed))
	}

	entry := parsed[100]
	if entry.SongID != 100 {
		t.Fatalf("unexpected song ID: %d", entry.SongID)
	}
	if entry.Default.Path != "a.mp3" || entry.Default.Meta.Name != "Official" {
		t.Fatalf("default mismatch: %+v", entry.Default)
	}
	if len(entry.Songs) != 2 {
		t.Fatalf("expected 2 songs, got %d", len(entry.Songs))
	}
	for _, s := range entry.Songs {
		if s.Meta.UniqueID == "" {
			t.Fatal("parse did not generate unique IDs")
		}
	}

	// Active path resolves to the generated ID of the matching record.
	var wantActive string
	for _, s := range entry.Songs {
		if s.Path == "b.mp3" {
			wantActive = s.Meta.UniqueID
		}
	}
	if entry.ActiveUniqueID != wantActive {
		t.Fatalf("active mismatch: got %q want %q", entry.ActiveUniqueID, wantActive)
	}

	// No recorded active: falls back to the default record.
	robtop := parsed[-2]
	if robtop.ActiveUniqueID != robtop.Default.Meta.UniqueID {
		t.Fatalf("missing active should fall back to default: %+v", robtop)
	}
}

func TestParseManifestRejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"nongs":`},
		{"non-numeric song ID", `{"version":2,"nongs":{"abc":{"default_path":"a.mp3","songs":[]}}}`},
		{"missing default path", `{"version":2,"nongs":{"5":{"songs":[]}}}`},
		{"record without path", `{"version":2,"nongs":{"5":{"default_path":"a.mp3","songs":[{"name":"x","artist":"y"}]}}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeLegacy(t, tc.content)
			if _, err := ParseManifest(path); !errors.Is(err, nong.ErrParse) {
				t.Fatalf("expected ErrParse, got %v", err)
			}
		})
	}
}

func TestBackupManifestDeletingOriginal(t *testing.T) {
	path := writeLegacy(t, sampleLegacy)

	if err := BackupManifest(path, true); err != nil {
		t.Fatalf("BackupManifest: %v", err)
	}
	if ManifestExists(path) {
		t.Fatal("original should be gone after backup with delete")
	}
	if _, err := os.Stat(path + ".bak"); err != nil {
		t.Fatalf("backup missing: %v", err)
	}
}

func TestBackupManifestKeepingOriginal(t *testing.T) {
	path := writeLegacy(t, sampleLegacy)

	if err := BackupManifest(path, false); err != nil {
		t.Fatalf("BackupManifest: %v", err)
	}
	if !ManifestExists(path) {
		t.Fatal("original should remain without delete")
	}
	if _, err := os.Stat(path + ".bak"); err != nil {
		t.Fatalf("backup missing: %v", err)
	}
}
