package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"hyprconf/internal/watcher"
)

func newWatchCmd(a *app) *cobra.Command {
	var reload bool
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print changes to the config and the files it sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.watch(ctx, cmd, reload)
		},
	}
	cmd.Flags().BoolVar(&reload, "reload", false, "run hyprctl reload after each change")
	return cmd
}

func (a *app) watch(ctx context.Context, cmd *cobra.Command, reload bool) error {
	doc, err := a.open()
	if err != nil {
		return err
	}
	w, err := watcher.New(watcher.WithDebounce(a.settings.Watch.Debounce()))
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Watch(a.loader.WatchPaths(a.settings.Config, doc)...); err != nil {
		return err
	}
	a.logger.Info("watching", "files", len(w.Files()))

	out := cmd.OutOrStdout()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			a.logger.Error("watch error", "error", err)
		case ev, ok := <-w.Events():
			if !ok {
				return nil
			}
			fmt.Fprintf(out, "%s %s %s\n", ev.Time.Format("15:04:05"), ev.Op, ev.Path)

			// Sources may have been added or removed.
			if doc, err := a.open(); err == nil {
				if err := w.Watch(a.loader.WatchPaths(a.settings.Config, doc)...); err != nil {
					a.logger.Warn("watching new sources", "error", err)
				}
			}
			if reload {
				if err := a.hyprctl.Reload(ctx); err != nil {
					a.logger.Error("reload failed", "error", err)
				} else {
					a.logger.Info("hyprland reloaded")
				}
			}
		}
	}
}
