package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"jukebox/internal/manager"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info <songID>",
		Short: "Show manifest details for one song",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			songID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid song ID %q", args[0])
			}

			return ctx.withManager(func(mgr *manager.Manager) error {
				n, ok := mgr.Nongs(songID)
				if !ok {
					return fmt.Errorf("song %d is not tracked", songID)
				}

				active := n.Active()
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Song ID:       %d\n", n.SongID())
				fmt.Fprintf(out, "Manifest:      %s\n", n.ManifestPath())
				fmt.Fprintf(out, "Default:       %s - %s\n", n.DefaultSong().Meta.Artist, n.DefaultSong().Meta.Name)
				fmt.Fprintf(out, "Alternates:    %d\n", len(n.Locals()))
				fmt.Fprintf(out, "Active:        %s - %s (%s)\n", active.Meta.Artist, active.Meta.Name, active.Meta.UniqueID)
				if active.Meta.StartOffset != 0 {
					fmt.Fprintf(out, "Start offset:  %dms\n", active.Meta.StartOffset)
				}
				if size := mgr.ActiveSongsSize([]int{songID}); size > 0 {
					fmt.Fprintf(out, "Active size:   %s\n", humanize.IBytes(uint64(size)))
				}
				return nil
			})
		},
	}
}
