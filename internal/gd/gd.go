// Package gd models the host game's side of the manifest system: resolving
// built-in tracks to their bundled audio files and requesting metadata for
// user songs from the download service. The manager consumes these as
// interfaces; everything network-facing lives behind them.
package gd

// SongInfo is what the host knows about one track.
type SongInfo struct {
	Name          string
	Artist        string
	IsRobtop      bool
	AudioFilename string // relative to the game resources directory
}

// Resolver answers track lookups against the host game's built-in data.
type Resolver interface {
	// SongInfoForID returns the host's knowledge of a track, if any.
	SongInfoForID(id int) (SongInfo, bool)
}

// Fetcher is the asynchronous metadata service for user songs. Results arrive
// through the manager's HandleSongInfoFetched intake, never as return values.
type Fetcher interface {
	// RequestSongInfo asks the service for a song's name and artist.
	RequestSongInfo(id int)
	// ClearCachedSong drops any cached metadata for the song.
	ClearCachedSong(id int)
	// CachedInfo returns already-fetched metadata, if present.
	CachedInfo(id int) (SongInfo, bool)
	// PathForSong returns where the service stores the song's audio.
	PathForSong(id int) string
}

// NopFetcher ignores every request and caches nothing.
type NopFetcher struct{}

func (NopFetcher) RequestSongInfo(int)            {}
func (NopFetcher) ClearCachedSong(int)            {}
func (NopFetcher) CachedInfo(int) (SongInfo, bool) { return SongInfo{}, false }
func (NopFetcher) PathForSong(int) string          { return "" }
