package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"jukebox/internal/manager"
	"jukebox/internal/nong"
	"jukebox/internal/song"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list [songID]",
		Short: "List tracked songs, or every variant of one song",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withManager(func(mgr *manager.Manager) error {
				if len(args) == 0 {
					return listAllTracks(cmd, mgr)
				}

				songID, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid song ID %q", args[0])
				}
				return listTrackVariants(cmd, mgr, songID)
			})
		},
	}
}

func listAllTracks(cmd *cobra.Command, mgr *manager.Manager) error {
	ids := mgr.SongIDs()
	if len(ids) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tracked songs.")
		return nil
	}

	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		n, ok := mgr.Nongs(id)
		if !ok {
			continue
		}
		active := n.Active()
		rows = append(rows, []string{
			strconv.Itoa(id),
			n.DefaultSong().Meta.Name,
			strconv.Itoa(len(n.Locals())),
			fmt.Sprintf("%s - %s", active.Meta.Artist, active.Meta.Name),
		})
	}

	out := renderTable(
		[]string{"ID", "Default", "Nongs", "Active"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
	)
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func listTrackVariants(cmd *cobra.Command, mgr *manager.Manager, songID int) error {
	n, ok := mgr.Nongs(songID)
	if !ok {
		return fmt.Errorf("song %d is not tracked", songID)
	}

	rows := [][]string{variantRow(n, n.DefaultSong(), "default")}
	for _, s := range n.Locals() {
		rows = append(rows, variantRow(n, s, "nong"))
	}

	out := renderTable(
		[]string{"", "Unique ID", "Name", "Artist", "Kind", "Size"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	)
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func variantRow(n *nong.Nongs, s *song.LocalSong, kind string) []string {
	marker := ""
	if n.ActiveUniqueID() == s.Meta.UniqueID {
		marker = "*"
	}
	return []string{marker, s.Meta.UniqueID, s.Meta.Name, s.Meta.Artist, kind, variantSize(s)}
}

func variantSize(s *song.LocalSong) string {
	if s.IsUnknown() {
		return "pending"
	}
	info, err := os.Stat(s.Path)
	if err != nil {
		return "n/a"
	}
	return humanize.IBytes(uint64(info.Size()))
}
