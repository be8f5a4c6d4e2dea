package nong

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"jukebox/internal/song"
)

// Nongs holds every known variant for one song ID. The zero value is not
// usable; construct with New or NewWithPath, or load with LoadFromPath.
type Nongs struct {
	songID       int
	manifestPath string
	defaultSong  song.LocalSong
	locals       []song.LocalSong
	active       string
}

// New builds a manifest for songID seeded with its default song. The active
// selection starts at the default. The manifest is not bound to a file; use
// NewWithPath when the manifest should be committable.
func New(songID int, defaultSong song.LocalSong) *Nongs {
	return &Nongs{
		songID:      songID,
		defaultSong: defaultSong,
		active:      defaultSong.Meta.UniqueID,
	}
}

// NewWithPath builds a manifest bound to the given backing file.
func NewWithPath(songID int, defaultSong song.LocalSong, manifestPath string) *Nongs {
	n := New(songID, defaultSong)
	n.manifestPath = manifestPath
	return n
}

// SongID returns the immutable song ID this manifest belongs to.
func (n *Nongs) SongID() int { return n.songID }

// ManifestPath returns the backing file path, empty for unbound manifests.
func (n *Nongs) ManifestPath() string { return n.manifestPath }

// DefaultSong returns the record for the game's official track.
func (n *Nongs) DefaultSong() *song.LocalSong { return &n.defaultSong }

// Locals returns the user-added alternates in insertion order. The returned
// pointers stay owned by the manifest and are valid until the next mutation.
func (n *Nongs) Locals() []*song.LocalSong {
	out := make([]*song.LocalSong, len(n.locals))
	for i := range n.locals {
		out[i] = &n.locals[i]
	}
	return out
}

// ActiveUniqueID returns the unique ID of the currently selected variant.
func (n *Nongs) ActiveUniqueID() string { return n.active }

// Active returns the currently selected variant.
func (n *Nongs) Active() *song.LocalSong {
	if s, ok := n.find(n.active); ok {
		return s
	}
	// The invariant guarantees this is unreachable after construction.
	return &n.defaultSong
}

// FindSong returns the record with the given unique ID if present.
func (n *Nongs) FindSong(uniqueID string) (*song.LocalSong, bool) {
	return n.find(uniqueID)
}

func (n *Nongs) find(uniqueID string) (*song.LocalSong, bool) {
	if n.defaultSong.Meta.UniqueID == uniqueID {
		return &n.defaultSong, true
	}
	for i := range n.locals {
		if n.locals[i].Meta.UniqueID == uniqueID {
			return &n.locals[i], true
		}
	}
	return nil, false
}

// Add inserts an alternate, preserving insertion order. It does not persist;
// call Commit separately.
func (n *Nongs) Add(s song.LocalSong) error {
	if _, exists := n.find(s.Meta.UniqueID); exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, s.Meta.UniqueID)
	}
	n.locals = append(n.locals, s)
	return nil
}

// SetActive selects the variant with the given unique ID. Idempotent.
func (n *Nongs) SetActive(uniqueID string) error {
	if _, exists := n.find(uniqueID); !exists {
		return fmt.Errorf("%w: %s", ErrUnknownID, uniqueID)
	}
	n.active = uniqueID
	return nil
}

// DeleteSong removes an alternate and its audio file. The default song can
// never be deleted. A missing audio file is tolerated; a blocked deletion
// (permissions) fails the operation before the record is removed. When the
// deleted alternate was active, the selection falls back to the default.
func (n *Nongs) DeleteSong(uniqueID string) error {
	if uniqueID == n.defaultSong.Meta.UniqueID {
		return fmt.Errorf("%w: %s", ErrActiveRecordProtected, uniqueID)
	}

	index := -1
	for i := range n.locals {
		if n.locals[i].Meta.UniqueID == uniqueID {
			index = i
			break
		}
	}
	if index == -1 {
		return fmt.Errorf("%w: %s", ErrUnknownID, uniqueID)
	}

	if err := removeAudio(n.locals[index]); err != nil {
		return err
	}

	if n.active == uniqueID {
		n.active = n.defaultSong.Meta.UniqueID
	}
	n.locals = append(n.locals[:index], n.locals[index+1:]...)
	return nil
}

// DeleteSongAudio removes an alternate's audio file from disk but keeps the
// record, which becomes pending again. Deleting the default song's audio is
// refused.
func (n *Nongs) DeleteSongAudio(uniqueID string) error {
	if uniqueID == n.defaultSong.Meta.UniqueID {
		return fmt.Errorf("%w: %s", ErrActiveRecordProtected, uniqueID)
	}

	s, exists := n.find(uniqueID)
	if !exists {
		return fmt.Errorf("%w: %s", ErrUnknownID, uniqueID)
	}

	if err := removeAudio(*s); err != nil {
		return err
	}
	s.Path = ""
	return nil
}

// DeleteAllSongs removes every alternate and its audio file and resets the
// active selection to the default. Individual file deletions are best-effort;
// the first error encountered is reported after all removable files are gone.
func (n *Nongs) DeleteAllSongs() error {
	var firstErr error
	for _, s := range n.locals {
		if err := removeAudio(s); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	n.locals = nil
	n.active = n.defaultSong.Meta.UniqueID
	return firstErr
}

// Merge adds every alternate from other not already present by unique ID.
// Existing records are never overwritten. Fails when the song IDs differ.
func (n *Nongs) Merge(other *Nongs) error {
	if other.songID != n.songID {
		return fmt.Errorf("%w: cannot merge %d into %d", ErrIDMismatch, other.songID, n.songID)
	}
	for _, s := range other.locals {
		if _, exists := n.find(s.Meta.UniqueID); exists {
			continue
		}
		if err := n.Add(s); err != nil {
			return err
		}
	}
	return nil
}

func removeAudio(s song.LocalSong) error {
	if s.Path == "" {
		return nil
	}
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete audio file %q: %w", s.Path, err)
	}
	return nil
}
