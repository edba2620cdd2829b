package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:     "search <pattern>",
		Short:   "Fuzzy-search options and show their current values",
		Example: "  hyprconf search blur",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches := a.catalog.Search(strings.Join(args, " "))
			if len(matches) == 0 {
				return fmt.Errorf("no options match %q", strings.Join(args, " "))
			}
			if limit > 0 && len(matches) > limit {
				matches = matches[:limit]
			}
			values, err := a.values()
			if err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("OPTION", "VALUE", "TYPE", "DESCRIPTION")
			for _, m := range matches {
				v, ok := values(m.Option)
				if !ok {
					v = "-"
				}
				t.Row(m.Option.Category+":"+m.Option.Name, v, m.Option.Kind.String(), m.Option.Label)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "show at most n matches (0 for all)")
	return cmd
}
