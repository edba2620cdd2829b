package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"hyprconf/internal/catalog"
)

func newCatalogCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Render every known option with its current value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.values()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch format {
			case "markdown", "md":
				fmt.Fprint(out, a.catalog.Markdown(values))
			case "html":
				html, err := a.catalog.HTML(values)
				if err != nil {
					return err
				}
				fmt.Fprint(out, html)
			default:
				return fmt.Errorf("unknown format %q (want markdown or html)", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "markdown", "output format: markdown or html")
	return cmd
}

// values reads option values from the configured file. A missing file
// yields no values rather than an error.
func (a *app) values() (catalog.ValueFunc, error) {
	doc, err := a.open()
	if errors.Is(err, fs.ErrNotExist) {
		a.logger.Info("config not found, showing defaults only", "path", a.settings.Config)
		return func(catalog.Option) (string, bool) { return "", false }, nil
	}
	if err != nil {
		return nil, err
	}
	return func(o catalog.Option) (string, bool) {
		return doc.Value(o.Section, o.Key)
	}, nil
}
