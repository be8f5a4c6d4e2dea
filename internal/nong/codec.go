package nong

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"jukebox/internal/fileutil"
	"jukebox/internal/song"
)

// ManifestVersion is the current per-track manifest format version. Version 2
// was the combined single-file format handled by the compat package.
const ManifestVersion = 3

type manifestFile struct {
	Version int           `json:"version"`
	Default song.Record   `json:"default"`
	Locals  []song.Record `json:"locals"`
	Active  string        `json:"active"`
}

// Commit serializes the manifest to its backing file via a temp-file-and-
// rename write, so a partial write is never visible under the canonical name.
func (n *Nongs) Commit() error {
	if n.manifestPath == "" {
		return errors.New("manifest is not bound to a file")
	}

	doc := manifestFile{
		Version: ManifestVersion,
		Default: n.defaultSong.Record(),
		Locals:  make([]song.Record, 0, len(n.locals)),
		Active:  n.active,
	}
	for _, s := range n.locals {
		doc.Locals = append(doc.Locals, s.Record())
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest %d: %w", n.songID, err)
	}

	return fileutil.WriteFileAtomic(n.manifestPath, data, 0o644)
}

// ParseManifestFilename extracts the song ID from a manifest filename. The
// stem must parse as a nonzero integer; built-in tracks store under negative
// IDs, so only zero and non-numeric stems are invalid.
func ParseManifestFilename(path string) (int, error) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	id, err := strconv.Atoi(stem)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidFilename, filepath.Base(path))
	}
	return id, nil
}

// LoadFromPath reads and validates one per-track manifest file. The filename
// stem supplies the song ID.
func LoadFromPath(path string) (*Nongs, error) {
	id, err := ParseManifestFilename(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %d: %w", id, err)
	}

	var doc manifestFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %d: %v", ErrParse, id, err)
	}

	defaultSong, err := song.FromRecord(doc.Default, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %d: default: %v", ErrParse, id, err)
	}

	n := NewWithPath(id, defaultSong, path)
	for _, rec := range doc.Locals {
		s, err := song.FromRecord(rec, id)
		if err != nil {
			return nil, fmt.Errorf("%w: %d: %v", ErrParse, id, err)
		}
		if err := n.Add(s); err != nil {
			return nil, fmt.Errorf("%w: %d: %v", ErrParse, id, err)
		}
	}

	if doc.Active != "" {
		if err := n.SetActive(doc.Active); err != nil {
			return nil, fmt.Errorf("%w: %d: active %q references no record", ErrParse, id, doc.Active)
		}
	}

	return n, nil
}
