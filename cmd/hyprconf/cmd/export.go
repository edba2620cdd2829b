package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Save the current value of every known option as a change set",
		Long: `Save every catalogue option that is set in the config as a change set.
The format follows the file extension: .yaml or .yml for YAML, JSON
otherwise. The file can later be replayed with "hyprconf apply".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			editor := a.editor(nil)
			doc, err := editor.Open(a.settings.Config)
			if err != nil {
				return err
			}
			set := editor.Export(doc, a.catalog, a.settings.Config)
			if err := set.SaveToFile(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d option(s) to %s\n", set.Len(), args[0])
			return nil
		},
	}
}
