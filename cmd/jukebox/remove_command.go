package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"jukebox/internal/manager"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	var (
		audioOnly bool
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "remove <songID> [uniqueID]",
		Short: "Remove a song variant, its audio, or every variant",
		Long: `Remove a variant from a song's manifest along with its audio file.

With --audio the record stays in the manifest but becomes pending again
after its audio is deleted. With --all every alternate is removed and
the default becomes active.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			songID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid song ID %q", args[0])
			}

			return ctx.withManager(func(mgr *manager.Manager) error {
				out := cmd.OutOrStdout()
				switch {
				case all:
					if len(args) > 1 {
						return fmt.Errorf("--all takes no uniqueID")
					}
					if err := mgr.DeleteAllSongs(songID); err != nil {
						return err
					}
					fmt.Fprintf(out, "Removed all alternates for song %d\n", songID)
				case len(args) < 2:
					return fmt.Errorf("uniqueID required unless --all is given")
				case audioOnly:
					if err := mgr.DeleteSongAudio(songID, args[1]); err != nil {
						return err
					}
					fmt.Fprintf(out, "Removed audio for %s; record is pending\n", args[1])
				default:
					if err := mgr.DeleteSong(songID, args[1]); err != nil {
						return err
					}
					fmt.Fprintf(out, "Removed %s from song %d\n", args[1], songID)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&audioOnly, "audio", false, "delete the audio file but keep the record")
	cmd.Flags().BoolVar(&all, "all", false, "remove every alternate for the song")
	return cmd
}
