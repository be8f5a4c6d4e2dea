package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"jukebox/internal/manager"
)

func newActivateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "activate <songID> <uniqueID>",
		Short: "Select which variant plays for a song",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			songID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid song ID %q", args[0])
			}
			uniqueID := args[1]

			return ctx.withManager(func(mgr *manager.Manager) error {
				if err := mgr.SetActiveSong(songID, uniqueID); err != nil {
					return err
				}
				n, _ := mgr.Nongs(songID)
				active := n.Active()
				fmt.Fprintf(cmd.OutOrStdout(), "Now playing %s - %s for song %d\n",
					active.Meta.Artist, active.Meta.Name, songID)
				return nil
			})
		},
	}
}
