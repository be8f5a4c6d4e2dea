// Package song defines the value types describing one audio variant: its
// metadata and either a resolved audio path or a pending marker for records
// whose audio has not been fetched yet.
package song

import (
	"github.com/google/uuid"
)

// Metadata identifies one song variant. UniqueID is generated at creation and
// never changes for the lifetime of the record.
type Metadata struct {
	GDID        int
	UniqueID    string
	Name        string
	Artist      string
	StartOffset int
}

// NewMetadata builds metadata with a freshly generated unique ID.
func NewMetadata(gdID int, name, artist string) Metadata {
	return Metadata{
		GDID:     gdID,
		UniqueID: uuid.NewString(),
		Name:     name,
		Artist:   artist,
	}
}

// LocalSong is one audio variant. An empty Path marks a record whose metadata
// is known (or pending fetch) but whose audio is not available on disk.
type LocalSong struct {
	Meta Metadata
	Path string
}

// New builds a LocalSong from metadata and a resolved audio path.
func New(meta Metadata, path string) LocalSong {
	return LocalSong{Meta: meta, Path: path}
}

// NewUnknown builds a placeholder record for a song whose metadata has been
// requested but not received yet.
func NewUnknown(gdID int) LocalSong {
	meta := NewMetadata(gdID, "Unknown", "")
	return LocalSong{Meta: meta}
}

// IsUnknown reports whether the record has no audio path yet.
func (s LocalSong) IsUnknown() bool {
	return s.Path == ""
}

/// EquivalentTo reports whether two records describe the same song: matching
// name, artist, and start offset. Used for de-duplication during legacy
// migration.
func (s LocalSong) EquivalentTo(other LocalSong) bool {
	return s.Meta.Name == other.Meta.Name &&
		s.Meta.Artist == other.Meta.Artist &&
		s.Meta.StartOffset == other.Meta.StartOffset
}
