package cmd

import (
	"github.com/spf13/cobra"

	"hyprconf/internal/state"
)

func newApplyCmd(a *app) *cobra.Command {
	var flags commitFlags
	cmd := &cobra.Command{
		Use:   "apply <file>",
		Short: "Write a saved change set into the config",
		Long: `Replay a change set written by "hyprconf export" onto the configured
Hyprland config. The set's own config path is ignored so a set taken from
one machine can be applied to another.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := state.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("applying change set", "id", set.ID, "changes", set.Len(), "from", set.ConfigPath)
			set.ConfigPath = a.settings.Config

			res, err := a.editor(nil).Commit(cmd.Context(), set, a.commitOptions(flags))
			if err != nil {
				return err
			}
			printCommit(cmd.OutOrStdout(), a.settings.Config, res, flags.dryRun)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
