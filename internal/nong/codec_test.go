package nong

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"jukebox/internal/song"
)

func TestCommitThenLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "100.json")

	n := NewWithPath(100, testDefault(100), path)
	alt := song.New(song.Metadata{GDID: 100, UniqueID: "uid-1", Name: "Song", Artist: "Artist", StartOffset: 7}, filepath.Join(dir, "uid-1.mp3"))
	if err := n.Add(alt); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := n.SetActive("uid-1"); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if err := n.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if loaded.SongID() != 100 {
		t.Fatalf("song ID mismatch: %d", loaded.SongID())
	}
	if *loaded.DefaultSong() != *n.DefaultSong() {
		t.Fatalf("default mismatch: %+v vs %+v", loaded.DefaultSong(), n.DefaultSong())
	}
	if len(loaded.Locals()) != 1 || *loaded.Locals()[0] != alt {
		t.Fatalf("locals mismatch: %+v", loaded.Locals())
	}
	if loaded.ActiveUniqueID() != "uid-1" {
		t.Fatalf("active mismatch: %q", loaded.ActiveUniqueID())
	}
}

func TestCommitRequiresBoundFile(t *testing.T) {
	n := New(100, testDefault(100))
	if err := n.Commit(); err == nil {
		t.Fatal("expected error committing unbound manifest")
	}
}

func TestCommitLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "100.json")
	n := NewWithPath(100, testDefault(100), path)

	if err := n.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "100.json" {
		t.Fatalf("unexpected directory contents: %v", entries)
	}
}

func TestParseManifestFilename(t *testing.T) {
	cases := []struct {
		path   string
		wantID int
		wantOK bool
	}{
		{"100.json", 100, true},
		{"/some/dir/42.json", 42, true},
		{"-2.json", -2, true},
		{"abc.json", 0, false},
		{"0.json", 0, false},
		{"12abc.json", 0, false},
	}

	for _, tc := range cases {
		id, err := ParseManifestFilename(tc.path)
		if tc.wantOK {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tc.path, err)
			} else if id != tc.wantID {
				t.Errorf("%s: got %d want %d", tc.path, id, tc.wantID)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidFilename) {
			t.Errorf("%s: expected ErrInvalidFilename, got %v", tc.path, err)
		}
	}
}

func TestLoadFromPathRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "100.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := LoadFromPath(path); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestLoadFromPathRejectsSchemaViolations(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{
			"default without path or pending",
			`{"version":3,"default":{"unique_id":"d","name":"x","artist":"y"},"locals":[],"active":"d"}`,
		},
		{
			"duplicate local unique IDs",
			`{"version":3,"default":{"unique_id":"d","name":"x","artist":"y","path":"a.mp3"},` +
				`"locals":[{"unique_id":"u","name":"a","artist":"b","path":"u.mp3"},{"unique_id":"u","name":"c","artist":"e","path":"v.mp3"}],"active":"d"}`,
		},
		{
			"active references no record",
			`{"version":3,"default":{"unique_id":"d","name":"x","artist":"y","path":"a.mp3"},"locals":[],"active":"ghost"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "100.json")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := LoadFromPath(path); !errors.Is(err, ErrParse) {
				t.Fatalf("expected ErrParse, got %v", err)
			}
		})
	}
}

func TestLoadFromPathDefaultsActiveToDefaultSong(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "100.json")
	content := `{"version":3,"default":{"unique_id":"d","name":"x","artist":"y","path":"a.mp3"},"locals":[]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	n, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if n.ActiveUniqueID() != "d" {
		t.Fatalf("active should default to default song, got %q", n.ActiveUniqueID())
	}
}
