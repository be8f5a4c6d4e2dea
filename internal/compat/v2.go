// Package compat reads the retired combined-manifest format, in which every
// track's songs lived in one JSON document. It exists only to feed the
// one-shot migration into per-track manifest files.
package compat

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"jukebox/internal/fileutil"
	"jukebox/internal/nong"
	"jukebox/internal/song"
)

// Manifest is one track's worth of legacy data, reshaped into the current
// record model. The legacy format predates unique IDs, so fresh IDs are
// generated at parse time and the recorded active path is resolved to the
// matching generated ID.
type Manifest struct {
	SongID         int
	Default        song.LocalSong
	Songs          []song.LocalSong
	ActiveUniqueID string
}

type legacyFile struct {
	Version int                    `json:"version"`
	Nongs   map[string]legacyEntry `json:"nongs"`
}

type legacyEntry struct {
	DefaultPath string       `json:"default_path"`
	ActivePath  string       `json:"active_path"`
	Songs       []legacySong `json:"songs"`
}

type legacySong struct {
	Name   string `json:"name"`
	Artist string `json:"artist"`
	Path   string `json:"path"`
	Offset int    `json:"offset,omitempty"`
}

// ManifestExists reports whether a legacy manifest is present at path. Its
// absence is the "already migrated" marker; no separate flag is persisted.
func ManifestExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ParseManifest loads and validates the legacy file, yielding per-song-ID
// manifests in the current record shape.
func ParseManifest(path string) (map[int]Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read legacy manifest: %w", err)
	}

	var doc legacyFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: legacy manifest: %v", nong.ErrParse, err)
	}

	out := make(map[int]Manifest, len(doc.Nongs))
	for key, entry := range doc.Nongs {
		id, err := strconv.Atoi(key)
		if err != nil || id == 0 {
			return nil, fmt.Errorf("%w: legacy manifest: invalid song ID %q", nong.ErrParse, key)
		}
		if entry.DefaultPath == "" {
			return nil, fmt.Errorf("%w: legacy manifest: song %d has no default path", nong.ErrParse, id)
		}

		manifest := Manifest{SongID: id}
		for _, ls := range entry.Songs {
			if ls.Path == "" {
				return nil, fmt.Errorf("%w: legacy manifest: song %d has a record without a path", nong.ErrParse, id)
			}
			meta := song.NewMetadata(id, ls.Name, ls.Artist)
			meta.StartOffset = ls.Offset
			manifest.Songs = append(manifest.Songs, song.New(meta, ls.Path))
		}

		manifest.Default = findByPath(manifest.Songs, entry.DefaultPath)
		if manifest.Default.Meta.UniqueID == "" {
			// The default was not listed among the songs; synthesize it.
			manifest.Default = song.New(song.NewMetadata(id, "Unknown", ""), entry.DefaultPath)
		}

		active := findByPath(manifest.Songs, entry.ActivePath)
		if active.Meta.UniqueID == "" {
			active = manifest.Default
		}
		manifest.ActiveUniqueID = active.Meta.UniqueID

		out[id] = manifest
	}

	return out, nil
}

func findByPath(songs []song.LocalSong, path string) song.LocalSong {
	if path == "" {
		return song.LocalSong{}
	}
	for _, s := range songs {
		if s.Path == path {
			return s
		}
	}
	return song.LocalSong{}
}

// BackupManifest copies the legacy file to <path>.bak and, when
// deleteOriginal is set, removes the original so migration cannot re-trigger.
func BackupManifest(path string, deleteOriginal bool) error {
	if err := fileutil.CopyFile(path, path+".bak"); err != nil {
		return fmt.Errorf("back up legacy manifest: %w", err)
	}
	if deleteOriginal {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove legacy manifest: %w", err)
		}
	}
	return nil
}
