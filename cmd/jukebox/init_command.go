package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"jukebox/internal/gd"
	"jukebox/internal/manager"
)

func newInitCommand(ctx *commandContext) *cobra.Command {
	var (
		robtop bool
		name   string
		artist string
	)

	cmd := &cobra.Command{
		Use:   "init <songID>",
		Short: "Start tracking a song ID",
		Long: `Start tracking a song ID, creating its manifest if needed.

Built-in level tracks use --robtop and resolve their metadata from the
bundled track table. Custom songs whose metadata the service has not
returned yet are recorded as pending and corrected once it arrives;
pass --name/--artist to fill the default record immediately.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			songID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid song ID %q", args[0])
			}

			// Built-in tracks resolve from the bundled table; hints only
			// apply to custom songs.
			var obj *gd.SongInfo
			if !robtop && (name != "" || artist != "") {
				obj = &gd.SongInfo{Name: name, Artist: artist}
			}

			return ctx.withManager(func(mgr *manager.Manager) error {
				if err := mgr.InitSongID(obj, songID, robtop); err != nil {
					return err
				}
				adjusted := manager.AdjustSongID(songID, robtop)
				if err := mgr.SaveNongs(adjusted); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Tracking song %d\n", adjusted)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&robtop, "robtop", false, "treat the ID as a built-in level track")
	cmd.Flags().StringVar(&name, "name", "", "default song name (skips the metadata fetch)")
	cmd.Flags().StringVar(&artist, "artist", "", "default song artist")
	return cmd
}
