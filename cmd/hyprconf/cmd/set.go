package cmd

import (
	"github.com/spf13/cobra"
)

func newSetCmd(a *app) *cobra.Command {
	var flags commitFlags
	cmd := &cobra.Command{
		Use:   "set <section> <key> <value>",
		Short: "Set an option, creating its section if needed",
		Example: `  hyprconf set general gaps_in 8
  hyprconf set decoration.blur size 5 --dry-run`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			editor := a.editor(nil)
			set := editor.NewChangeSet(a.settings.Config)
			set.Set(args[0], args[1], args[2], editor.Clock().Now())

			res, err := editor.Commit(cmd.Context(), set, a.commitOptions(flags))
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
