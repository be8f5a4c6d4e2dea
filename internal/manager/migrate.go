package manager

import (
	"sort"

	"jukebox/internal/compat"
	"jukebox/internal/logging"
	"jukebox/internal/nong"
	"jukebox/internal/song"
)

// migrateV2 folds the legacy combined manifest into per-track files. It runs
// under the manager lock during Init. The legacy file's absence is the
// "already migrated" marker: once it is backed up, later runs skip entirely.
// A parse failure leaves the file untouched for a future retry.
func (m *Manager) migrateV2() error {
	legacyPath := m.cfg.Paths.LegacyManifest

	if !compat.ManifestExists(legacyPath) {
		m.logger.Debug("no legacy manifest to migrate")
		return nil
	}

	parsed, err := compat.ParseManifest(legacyPath)
	if err != nil {
		return err
	}

	// Iterate a fixed snapshot while mutating the live map.
	ids := make([]int, 0, len(parsed))
	for id := range parsed {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	migrated := 0
	for _, id := range ids {
		entry := parsed[id]

		n, exists := m.nongs[id]
		if !exists {
			n = nong.NewWithPath(id, entry.Default, m.manifestPath(id))
			m.nongs[id] = n
		}

		for _, legacySong := range entry.Songs {
			if legacySong.Path == entry.Default.Path {
				continue
			}
			if hasEquivalent(n, legacySong) {
				continue
			}
			if err := n.Add(legacySong); err != nil {
				m.logger.Error("failed to add migrated song to manifest",
					logging.Args(logging.Int("song_id", id), logging.Error(err))...)
			}
		}

		// The recorded active variant may have been skipped as a duplicate
		// or belong to a pre-existing default; keep the current selection
		// in that case.
		if err := n.SetActive(entry.ActiveUniqueID); err != nil {
			m.logger.Debug("legacy active selection not applicable",
				logging.Args(logging.Int("song_id", id), logging.Error(err))...)
		}

		if err := n.Commit(); err != nil {
			m.logger.Error("failed to commit migrated manifest",
				logging.Args(logging.Int("song_id", id), logging.Error(err))...)
			continue
		}
		migrated++
	}

	m.logger.Info("migrated legacy manifest", logging.Args(logging.Int("track_count", migrated))...)

	return compat.BackupManifest(legacyPath, true)
}

// hasEquivalent reports whether the manifest already stores a record matching
// the candidate by name, artist, and start offset.
func hasEquivalent(n *nong.Nongs, candidate song.LocalSong) bool {
	for _, stored := range n.Locals() {
		if stored.EquivalentTo(candidate) {
			return true
		}
	}
	return false
}
