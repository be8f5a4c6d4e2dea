package manager

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"jukebox/internal/config"
	"jukebox/internal/gd"
	"jukebox/internal/logging"
	"jukebox/internal/nong"
	"jukebox/internal/song"
)

// Manager is the process-wide manifest store. One mutex guards the track map
// and every mutate-plus-commit pair; a commit racing a mutation could corrupt
// a file otherwise.
type Manager struct {
	cfg      *config.Config
	logger   *slog.Logger
	resolver gd.Resolver
	fetcher  gd.Fetcher

	lock *flock.Flock

	mu          sync.Mutex
	nongs       map[int]*nong.Nongs
	initialized bool
}

// New constructs a manager. The resolver and fetcher may be nil when the host
// integration is unavailable (CLI use); logger nil means silent.
func New(cfg *config.Config, logger *slog.Logger, resolver gd.Resolver, fetcher gd.Fetcher) *Manager {
	if fetcher == nil {
		fetcher = gd.NopFetcher{}
	}
	return &Manager{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "manager"),
		resolver: resolver,
		fetcher:  fetcher,
		nongs:    make(map[int]*nong.Nongs),
	}
}

// Init scans the manifest directory, loads every readable per-track file,
// quarantines the rest, and runs the legacy migration. Idempotent; a second
// call is a no-op. Per-file failures are logged and skipped, never fatal.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	dir := m.cfg.Paths.ManifestDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, "manifest.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire manifest lock: %w", err)
	}
	if !ok {
		return errors.New("another jukebox instance holds the manifest directory")
	}
	m.lock = lock

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("scan manifest directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		n, err := nong.LoadFromPath(path)
		if err != nil {
			m.quarantine(path, err)
			continue
		}
		m.nongs[n.SongID()] = n
	}

	m.logger.Info("manifest scan complete", logging.Args(logging.Int("track_count", len(m.nongs)))...)

	if err := m.migrateV2(); err != nil {
		m.logger.Error("legacy migration failed", logging.Args(logging.Error(err))...)
	}

	m.initialized = true
	return nil
}

// quarantine renames an unreadable manifest file out of the scan's way so a
// later fix can recover it.
func (m *Manager) quarantine(path string, cause error) {
	backup := path + ".bak"
	if err := os.Rename(path, backup); err != nil {
		m.logger.Error("failed to quarantine manifest file",
			logging.Args(logging.String("path", path), logging.Error(err))...)
		return
	}
	m.logger.Error("quarantined unreadable manifest file",
		logging.Args(logging.String("path", path), logging.String("backup", backup), logging.Error(cause))...)
}

// Close releases the manifest directory lock.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lock == nil {
		return nil
	}
	err := m.lock.Unlock()
	m.lock = nil
	return err
}

// Initialized reports whether Init has completed.
func (m *Manager) Initialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// ManifestVersion returns the current per-track format version.
func (m *Manager) ManifestVersion() int { return nong.ManifestVersion }

// StoredIDCount returns how many song IDs have manifests.
func (m *Manager) StoredIDCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.nongs)
}

// SongIDs returns every tracked song ID in ascending order.
func (m *Manager) SongIDs() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]int, 0, len(m.nongs))
	for id := range m.nongs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Nongs returns the manifest for a song ID. The reference stays owned by the
// manager and is only valid until the next mutating call.
func (m *Manager) Nongs(songID int) (*nong.Nongs, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.nongs[songID]
	return n, ok
}

// AdjustSongID maps built-in track IDs into the negative range so they never
// collide with server song IDs.
func AdjustSongID(id int, robtop bool) int {
	if !robtop || id < 0 {
		return id
	}
	return -id - 1
}

func (m *Manager) manifestPath(songID int) string {
	return filepath.Join(m.cfg.Paths.ManifestDir, fmt.Sprintf("%d.json", songID))
}

// InitSongID ensures a manifest exists for the track, creating one from the
// best available source of default-song metadata: the host-provided object,
// the fetcher's cache, or a pending record corrected once the fetch lands.
// Exactly one manifest is created per ID regardless of retries.
func (m *Manager) InitSongID(obj *gd.SongInfo, id int, robtop bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return nong.ErrNotInitialized
	}

	adjusted := AdjustSongID(id, robtop)
	if _, exists := m.nongs[adjusted]; exists {
		return nil
	}

	if obj == nil && robtop && m.resolver != nil {
		if info, ok := m.resolver.SongInfoForID(id); ok {
			obj = &info
		}
	}
	if obj == nil && robtop {
		return fmt.Errorf("no song object for built-in track %d", id)
	}

	if robtop {
		audioPath := filepath.Join(m.cfg.Paths.ResourcesDir, obj.AudioFilename)
		defaultSong := song.New(song.NewMetadata(adjusted, obj.Name, obj.Artist), audioPath)
		m.nongs[adjusted] = nong.NewWithPath(adjusted, defaultSong, m.manifestPath(adjusted))
		return nil
	}

	if obj == nil {
		if info, ok := m.fetcher.CachedInfo(id); ok {
			obj = &info
		}
	}

	if obj == nil {
		// Metadata not known yet; ask the service and record a pending
		// default to be corrected when the fetch completes.
		m.fetcher.RequestSongInfo(id)
		m.nongs[id] = nong.NewWithPath(id, song.NewUnknown(id), m.manifestPath(id))
		return nil
	}

	defaultSong := song.New(song.NewMetadata(id, obj.Name, obj.Artist), m.fetcher.PathForSong(id))
	m.nongs[id] = nong.NewWithPath(id, defaultSong, m.manifestPath(id))
	return nil
}

// SaveNongs commits one track's manifest.
func (m *Manager) SaveNongs(songID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveLocked(songID)
}

// SaveAllNongs commits every manifest, stopping at the first failure and
// reporting which ID failed. Callers needing best-effort-all should save
// per ID instead.
func (m *Manager) SaveAllNongs() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int, 0, len(m.nongs))
	for id := range m.nongs {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		if err := m.saveLocked(id); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) saveLocked(songID int) error {
	n, ok := m.nongs[songID]
	if !ok {
		return nil
	}
	if err := n.Commit(); err != nil {
		m.logger.Error("failed to save manifest",
			logging.Args(logging.Int("song_id", songID), logging.Error(err))...)
		return fmt.Errorf("save manifest %d: %w", songID, err)
	}
	return nil
}

// AddNongs merges the given manifest's alternates into the tracked manifest
// for the same song ID and persists the result.
func (m *Manager) AddNongs(other *nong.Nongs) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, err := m.lookupLocked(other.SongID())
	if err != nil {
		return err
	}
	if err := n.Merge(other); err != nil {
		return err
	}
	return m.saveLocked(n.SongID())
}

// SetActiveSong selects which variant plays for the track and persists.
func (m *Manager) SetActiveSong(songID int, uniqueID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, err := m.lookupLocked(songID)
	if err != nil {
		return err
	}
	if err := n.SetActive(uniqueID); err != nil {
		return err
	}
	return m.saveLocked(songID)
}

// DeleteSong removes one alternate and persists.
func (m *Manager) DeleteSong(songID int, uniqueID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, err := m.lookupLocked(songID)
	if err != nil {
		return err
	}
	if err := n.DeleteSong(uniqueID); err != nil {
		return err
	}
	return m.saveLocked(songID)
}

// DeleteSongAudio removes one alternate's audio file, keeping its record, and
// persists.
func (m *Manager) DeleteSongAudio(songID int, uniqueID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, err := m.lookupLocked(songID)
	if err != nil {
		return err
	}
	if err := n.DeleteSongAudio(uniqueID); err != nil {
		return err
	}
	return m.saveLocked(songID)
}

// DeleteAllSongs removes every alternate for the track and persists.
func (m *Manager) DeleteAllSongs(songID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, err := m.lookupLocked(songID)
	if err != nil {
		return err
	}
	if err := n.DeleteAllSongs(); err != nil {
		return err
	}
	return m.saveLocked(songID)
}

func (m *Manager) lookupLocked(songID int) (*nong.Nongs, error) {
	if !m.initialized {
		return nil, nong.ErrNotInitialized
	}
	n, ok := m.nongs[songID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", nong.ErrSongNotInitialized, songID)
	}
	return n, nil
}

// HandleSongInfoFetched applies a metadata correction reported by the fetch
// service to the track's default record and persists when anything changed.
func (m *Manager) HandleSongInfoFetched(songID int, name, artist string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, err := m.lookupLocked(songID)
	if err != nil {
		return err
	}

	meta := &n.DefaultSong().Meta
	if meta.Name == name && meta.Artist == artist {
		return nil
	}
	meta.Name = name
	meta.Artist = artist

	return m.saveLocked(songID)
}

// HandleSongError logs a failure reported by the fetch service.
func (m *Manager) HandleSongError(songID int, message string) {
	m.logger.Error("song fetch failed",
		logging.Args(logging.Int("song_id", songID), logging.String("reason", message))...)
}

// RefetchDefault drops the fetcher's cached metadata for the song and asks
// for it again.
func (m *Manager) RefetchDefault(songID int) {
	m.fetcher.ClearCachedSong(songID)
	m.fetcher.RequestSongInfo(songID)
}

// GenerateSongFilePath returns a destination for new nong audio under the
// configured nong directory, creating the directory when missing. A random
// name is generated unless filename is given.
func (m *Manager) GenerateSongFilePath(extension, filename string) (string, error) {
	if err := os.MkdirAll(m.cfg.Paths.NongDir, 0o755); err != nil {
		return "", fmt.Errorf("create nong directory: %w", err)
	}
	if filename == "" {
		filename = uuid.NewString()
	}
	return filepath.Join(m.cfg.Paths.NongDir, filename+extension), nil
}

// ActiveSongsSize sums the on-disk sizes of the active variants for the given
// song IDs. Missing files and untracked IDs contribute nothing. Paths
// relative to the game resources are resolved against the configured
// resources directory.
func (m *Manager) ActiveSongsSize(songIDs []int) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	var sum int64
	for _, id := range songIDs {
		n, ok := m.nongs[id]
		if !ok {
			continue
		}
		path := n.Active().Path
		if path == "" {
			continue
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(m.cfg.Paths.ResourcesDir, path)
		}
		if info, err := os.Stat(path); err == nil {
			sum += info.Size()
		}
	}
	return sum
}
