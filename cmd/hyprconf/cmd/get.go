package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hyprconf/internal/catalog"
)

func newGetCmd(a *app) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "get <category> <name>",
		Short: "Print the value of an option",
		Long: `Print the value of name inside category. The name may reach into
subsections ("touchpad.natural_scroll" in "input") or use Hyprland's
"blur:size" notation. Sourced files are consulted when the main config
does not set the option.`,
		Example: `  hyprconf get general gaps_in
  hyprconf get input touchpad.natural_scroll
  hyprconf get decoration blur:size`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.open()
			if err != nil {
				return err
			}
			category, name := args[0], args[1]

			var v string
			var ok bool
			if strings.Contains(name, ":") {
				v, ok = doc.Value(catalog.Locate(category, name))
			} else {
				v, ok = doc.Lookup(category, name)
			}
			if !ok {
				if strict {
					return fmt.Errorf("%s %s is not set", category, name)
				}
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when the option is not set")
	return cmd
}
