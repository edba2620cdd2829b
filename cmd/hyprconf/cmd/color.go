package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hyprconf/pkg/color"
)

func newColorCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Convert between Hyprland colours and channel values",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:     "parse <value>",
			Short:   "Print the channels of rgba(RRGGBBAA) or rgb(RRGGBB) as numbers in [0, 1]",
			Example: "  hyprconf color parse 'rgba(33ccffee)'",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, ok := color.Parse(args[0])
				if !ok {
					return fmt.Errorf("not a colour: %q", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%.4f %.4f %.4f %.4f\n", c.R, c.G, c.B, c.A)
				return nil
			},
		},
		&cobra.Command{
			Use:     "format <r> <g> <b> <a>",
			Short:   "Print channels in [0, 1] as rgba(RRGGBBAA)",
			Example: "  hyprconf color format 0.2 0.8 1 0.93",
			Args:    cobra.ExactArgs(4),
			RunE: func(cmd *cobra.Command, args []string) error {
				var ch [4]float64
				for i, arg := range args {
					v, err := strconv.ParseFloat(arg, 64)
					if err != nil {
						return fmt.Errorf("channel %d: %w", i+1, err)
					}
					ch[i] = v
				}
				fmt.Fprintln(cmd.OutOrStdout(), color.Format(ch[0], ch[1], ch[2], ch[3]))
				return nil
			},
		},
	)
	return cmd
}
