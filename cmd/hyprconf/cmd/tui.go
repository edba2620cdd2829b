package cmd

import (
	"github.com/spf13/cobra"

	"hyprconf/internal/core"
	"hyprconf/internal/logging"
	"hyprconf/internal/session"
	"hyprconf/internal/tui"
	"hyprconf/internal/watcher"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Edit the config in an interactive terminal UI",
		Long: `Browse options by category, edit values and save them back. Unsaved
changes are kept when quitting and offered again on the next start. The
view reloads when the config or a sourced file changes on disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The UI owns the terminal, so logs go to a file.
			f, err := logging.OpenFile(a.loader.Expand(a.settings.Log.File))
			if err != nil {
				return err
			}
			defer f.Close()
			if err := a.setLogger(f); err != nil {
				return err
			}

			store := core.NewFileChangeStore(a.loader.Expand(a.settings.PendingFile))
			s, err := session.Open(a.editor(store), a.settings.Config)
			if err != nil {
				return err
			}

			w, err := watcher.New(watcher.WithDebounce(a.settings.Watch.Debounce()))
			if err != nil {
				return err
			}
			defer w.Close()
			if err := w.Watch(a.loader.WatchPaths(a.settings.Config, s.Document())...); err != nil {
				a.logger.Warn("file watching disabled", "error", err)
			}

			return tui.Run(s, a.catalog, w, tui.Options{
				Backup: a.settings.Backup,
				Reload: a.settings.Reload,
			})
		},
	}
}
