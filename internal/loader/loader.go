// Package loader reads Hyprland configuration files from disk, resolves the
// files they source and writes edited text back with optional backups.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"hyprconf/internal/clock"
	"hyprconf/internal/document"
)

// BackupLayout is the timestamp format of backup file suffixes.
const BackupLayout = "20060102-150405"

// ErrNoMatches is returned when a glob source matches nothing.
var ErrNoMatches = errors.New("no files match")

// Loader reads and writes configuration files.
type Loader struct {
	fs     FileSystem
	home   string
	clock  clock.Clock
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithFS replaces the OS file system.
func WithFS(fsys FileSystem) Option {
	return func(l *Loader) { l.fs = fsys }
}

// WithHome sets the directory "~" expands to.
func WithHome(home string) Option {
	return func(l *Loader) { l.home = home }
}

// WithClock sets the clock used to stamp backups.
func WithClock(c clock.Clock) Option {
	return func(l *Loader) { l.clock = c }
}

// WithLogger sets the logger handed to parsed documents.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// New returns a Loader over the OS file system.
func New(opts ...Option) *Loader {
	l := &Loader{fs: OSFS{}}
	for _, opt := range opts {
		opt(l)
	}
	if l.home == "" {
		l.home, _ = os.UserHomeDir()
	}
	l.clock = clock.Or(l.clock)
	if l.logger == nil {
		l.logger = slog.New(slog.DiscardHandler)
	}
	return l
}

// FS returns the loader's file system.
func (l *Loader) FS() FileSystem {
	return l.fs
}

// ExpandHome replaces a leading "~" with home.
func ExpandHome(path, home string) string {
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	}
	return path
}

// Expand applies ExpandHome with the loader's home directory.
func (l *Loader) Expand(path string) string {
	return ExpandHome(path, l.home)
}

// Read returns the contents of path.
func (l *Loader) Read(path string) (string, error) {
	data, err := l.fs.ReadFile(l.Expand(path))
	if err != nil {
		return "", fmt.Errorf("reading config %s: %w", path, err)
	}
	return string(data), nil
}

// Open reads path and parses it, following its `source =` directives.
func (l *Loader) Open(path string, opts ...document.Option) (*document.Document, error) {
	text, err := l.Read(path)
	if err != nil {
		return nil, err
	}
	return l.Parse(path, text, opts...), nil
}

// Parse parses text as the contents of path, resolving sources relative to
// path's directory.
func (l *Loader) Parse(path, text string, opts ...document.Option) *document.Document {
	base := []document.Option{
		document.WithResolver(l.Resolver(path)),
		document.WithLogger(l.logger),
	}
	return document.Parse(text, append(base, opts...)...)
}

// Resolver resolves source paths the way Hyprland does: "~" expands to the
// home directory, relative paths are taken from the directory of configPath
// and glob patterns may match several files.
func (l *Loader) Resolver(configPath string) document.SourceResolver {
	dir := filepath.Dir(l.Expand(configPath))
	return document.SourceResolverFunc(func(src string) ([]document.SourceFile, error) {
		p := l.Expand(src)
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}

		if !strings.ContainsAny(p, "*?[") {
			data, err := l.fs.ReadFile(p)
			if err != nil {
				return nil, err
			}
			return []document.SourceFile{{Path: p, Text: string(data)}}, nil
		}

		matches, err := l.fs.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", p, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%s: %w", p, ErrNoMatches)
		}
		files := make([]document.SourceFile, 0, len(matches))
		for _, m := range matches {
			data, err := l.fs.ReadFile(m)
			if err != nil {
				return nil, err
			}
			files = append(files, document.SourceFile{Path: m, Text: string(data)})
		}
		return files, nil
	})
}

// Write stores text at path. With backup set and an existing file, the old
// contents are first copied to path.bak.<timestamp>, whose name is returned.
func (l *Loader) Write(path, text string, backup bool) (string, error) {
	p := l.Expand(path)
	perm := fs.FileMode(0o644)

	var backupPath string
	if info, err := l.fs.Stat(p); err == nil {
		perm = info.Mode().Perm()
		if backup {
			old, err := l.fs.ReadFile(p)
			if err != nil {
				return "", fmt.Errorf("reading %s for backup: %w", path, err)
			}
			backupPath = p + ".bak." + l.clock.Now().Format(BackupLayout)
			if err := l.fs.WriteFile(backupPath, old, perm); err != nil {
				return "", fmt.Errorf("writing backup %s: %w", backupPath, err)
			}
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	if err := l.fs.WriteFile(p, []byte(text), perm); err != nil {
		return "", fmt.Errorf("writing config %s: %w", path, err)
	}
	return backupPath, nil
}

// WatchPaths lists the primary file and every registered source of doc,
// absolute and without duplicates.
func (l *Loader) WatchPaths(path string, doc *document.Document) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	add(l.Expand(path))
	for _, s := range doc.Sources() {
		add(s.Path)
	}
	return out
}
