package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSectionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List section blocks with their line ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.open()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, path := range doc.Sections() {
				for _, r := range doc.Ranges(path) {
					fmt.Fprintf(out, "%s\t%d-%d\n", path, r.Start+1, r.End+1)
				}
			}
			return nil
		},
	}
}
