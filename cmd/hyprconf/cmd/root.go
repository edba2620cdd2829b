package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"hyprconf/internal/catalog"
	"hyprconf/internal/core"
	"hyprconf/internal/document"
	"hyprconf/internal/hyprctl"
	"hyprconf/internal/loader"
	"hyprconf/internal/logging"
	"hyprconf/internal/settings"
)

// app holds what every subcommand needs once flags and settings are read.
type app struct {
	// flags
	settingsPath string
	configPath   string
	logLevel     string
	logFormat    string

	// injected by tests
	fs     loader.FileSystem
	runner hyprctl.CommandRunner
	getenv func(string) string

	settings settings.Settings
	logger   *slog.Logger
	loader   *loader.Loader
	catalog  *catalog.Catalog
	hyprctl  *hyprctl.Client
}

// newRootCmd builds the command tree around a.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "hyprconf",
		Short: "Read and edit Hyprland configuration files",
		Long: `hyprconf edits hyprland.conf in place: values are inserted or replaced
inside their section blocks and everything else in the file, comments and
formatting included, is left exactly as it was.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&a.configPath, "config", "c", "", "Hyprland config file (default from settings)")
	f.StringVar(&a.settingsPath, "settings", "", "hyprconf settings file (default "+settings.DefaultPath()+")")
	f.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		newGetCmd(a),
		newSetCmd(a),
		newSectionsCmd(a),
		newColorCmd(a),
		newCatalogCmd(a),
		newSearchCmd(a),
		newExportCmd(a),
		newApplyCmd(a),
		newWatchCmd(a),
		newTUICmd(a),
	)
	return root
}

// setup loads settings, applies the environment and flags, and builds the
// logger, loader and hyprctl client.
func (a *app) setup(logw io.Writer) error {
	path := a.settingsPath
	if path == "" {
		path = settings.DefaultPath()
	}
	s, err := settings.Load(path)
	if err != nil {
		return err
	}
	getenv := a.getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	s.ApplyEnv(getenv)
	if a.configPath != "" {
		s.Config = a.configPath
	}
	if a.logLevel != "" {
		s.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		s.Log.Format = a.logFormat
	}
	a.settings = s

	if err := a.setLogger(logw); err != nil {
		return err
	}
	a.catalog = catalog.Default()
	a.hyprctl = hyprctl.New(a.runner)
	return nil
}

// setLogger points logging at w and rebuilds the loader to use it.
func (a *app) setLogger(w io.Writer) error {
	logger, err := logging.New(logging.Options{
		Level:  a.settings.Log.Level,
		Format: a.settings.Log.Format,
		Writer: w,
	})
	if err != nil {
		return err
	}
	a.logger = logger

	opts := []loader.Option{loader.WithLogger(logger)}
	if a.fs != nil {
		opts = append(opts, loader.WithFS(a.fs))
	}
	a.loader = loader.New(opts...)
	return nil
}

// editor returns an editor over the configured loader. Only the terminal UI
// keeps pending changes across runs, so store is nil elsewhere.
func (a *app) editor(store core.ChangeStore) *core.Editor {
	opts := []core.EditorOption{
		core.WithLogger(a.logger),
		core.WithReloader(a.hyprctl),
		core.WithParseOptions(document.WithMaxSourceDepth(a.settings.MaxSourceDepth)),
	}
	if store != nil {
		opts = append(opts, core.WithStore(store))
	}
	return core.NewEditor(a.loader, opts...)
}

// open parses the configured Hyprland config.
func (a *app) open() (*document.Document, error) {
	return a.editor(nil).Open(a.settings.Config)
}

// commitFlags are shared by set and apply.
type commitFlags struct {
	dryRun   bool
	reload   bool
	noBackup bool
}

func (f *commitFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "print the resulting config instead of writing it")
	cmd.Flags().BoolVar(&f.reload, "reload", false, "run hyprctl reload after writing")
	cmd.Flags().BoolVar(&f.noBackup, "no-backup", false, "do not keep a backup of the previous file")
}

func (a *app) commitOptions(f commitFlags) core.CommitOptions {
	return core.CommitOptions{
		DryRun: f.dryRun,
		Backup: a.settings.Backup && !f.noBackup,
		Reload: f.reload || a.settings.Reload,
	}
}

func printCommit(w io.Writer, path string, res core.CommitResult, dryRun bool) {
	switch {
	case dryRun:
		fmt.Fprint(w, res.Text)
	case !res.Changed:
		fmt.Fprintf(w, "%s unchanged\n", path)
	case res.Backup != "":
		fmt.Fprintf(w, "wrote %s (backup %s)\n", path, res.Backup)
	default:
		fmt.Fprintf(w, "wrote %s\n", path)
	}
}

// Execute runs the command line and exits non-zero on error.
func Execute() {
	if err := newRootCmd(&app{}).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
