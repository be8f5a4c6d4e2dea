package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dhowden/tag"
	"github.com/spf13/cobra"

	"jukebox/internal/fileutil"
	"jukebox/internal/manager"
	"jukebox/internal/nong"
	"jukebox/internal/song"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var (
		name   string
		artist string
		offset int
	)

	cmd := &cobra.Command{
		Use:   "add <songID> <file>...",
		Short: "Add audio files as alternates for a song",
		Long: `Add audio files as alternates for a tracked song.

Each file is copied into the nong storage directory under a fresh name.
Name and artist are read from the file's tags when present; --name and
--artist override them (single file only).`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			songID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid song ID %q", args[0])
			}
			files := args[1:]
			if len(files) > 1 && (name != "" || artist != "") {
				return fmt.Errorf("--name and --artist apply to a single file")
			}

			return ctx.withManager(func(mgr *manager.Manager) error {
				existing, ok := mgr.Nongs(songID)
				if !ok {
					return fmt.Errorf("song %d is not tracked; run init first", songID)
				}

				incoming := nong.New(songID, *existing.DefaultSong())
				for _, file := range files {
					s, err := importSongFile(mgr, songID, file, name, artist, offset)
					if err != nil {
						return err
					}
					if err := incoming.Add(s); err != nil {
						return fmt.Errorf("add %s: %w", file, err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Added %s - %s (%s)\n", s.Meta.Artist, s.Meta.Name, s.Meta.UniqueID)
				}
				return mgr.AddNongs(incoming)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "song name (overrides file tags)")
	cmd.Flags().StringVar(&artist, "artist", "", "song artist (overrides file tags)")
	cmd.Flags().IntVar(&offset, "offset", 0, "playback start offset in milliseconds")
	return cmd
}

// importSongFile copies the file into nong storage and builds its record,
// preferring explicit overrides, then embedded tags, then the filename.
func importSongFile(mgr *manager.Manager, songID int, file, name, artist string, offset int) (song.LocalSong, error) {
	tagName, tagArtist := readAudioTags(file)
	if name == "" {
		name = tagName
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}
	if artist == "" {
		artist = tagArtist
	}

	dest, err := mgr.GenerateSongFilePath(filepath.Ext(file), "")
	if err != nil {
		return song.LocalSong{}, err
	}
	if err := fileutil.CopyFile(file, dest); err != nil {
		return song.LocalSong{}, fmt.Errorf("copy %s: %w", file, err)
	}

	meta := song.NewMetadata(songID, name, artist)
	meta.StartOffset = offset
	return song.New(meta, dest), nil
}

// readAudioTags best-effort extracts title and artist from the file's
// metadata. Unreadable or untagged files return empty strings.
func readAudioTags(file string) (name, artist string) {
	f, err := os.Open(file)
	if err != nil {
		return "", ""
	}
	defer f.Close()

	md, err := tag.ReadFrom(f)
	if err != nil {
		return "", ""
	}
	return md.Title(), md.Artist()
}
