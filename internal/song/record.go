package song

import (
	"errors"
	"fmt"
	"strings"
)

// Record is the JSON form of a LocalSong inside a manifest document. A record
// carries either a path or an explicit pending marker, never both; optional
// fields are omitted so files stay cross-readable between format versions.
type Record struct {
	UniqueID    string `json:"unique_id"`
	Name        string `json:"name"`
	Artist      string `json:"artist"`
	StartOffset int    `json:"offset,omitempty"`
	Path        string `json:"path,omitempty"`
	Pending     bool   `json:"pending,omitempty"`
}

// Record converts the song to its serialized form.
func (s LocalSong) Record() Record {
	return Record{
		UniqueID:    s.Meta.UniqueID,
		Name:        s.Meta.Name,
		Artist:      s.Meta.Artist,
		StartOffset: s.Meta.StartOffset,
		Path:        s.Path,
		Pending:     s.IsUnknown(),
	}
}

// FromRecord validates a serialized record and rebuilds the LocalSong for the
// given song ID.
func FromRecord(rec Record, gdID int) (LocalSong, error) {
	if strings.TrimSpace(rec.UniqueID) == "" {
		return LocalSong{}, errors.New("record is missing a unique ID")
	}
	if rec.Pending && rec.Path != "" {
		return LocalSong{}, fmt.Errorf("record %s is both pending and has a path", rec.UniqueID)
	}
	if !rec.Pending && rec.Path == "" {
		return LocalSong{}, fmt.Errorf("record %s has neither a path nor a pending marker", rec.UniqueID)
	}

	return LocalSong{
		Meta: Metadata{
			GDID:        gdID,
			UniqueID:    rec.UniqueID,
			Name:        rec.Name,
			Artist:      rec.Artist,
			StartOffset: rec.StartOffset,
		},
		Path: rec.Path,
	}, nil
}
