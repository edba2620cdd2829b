package document

import "log/slog"

// DefaultMaxSourceDepth bounds nested `source =` resolution.
const DefaultMaxSourceDepth = 8

// Option configures Parse.
type Option func(*options)

type options struct {
	resolver SourceResolver
	maxDepth int
	logger   *slog.Logger
}

func defaultOptions() options {
	return options{
		maxDepth: DefaultMaxSourceDepth,
		logger:   slog.New(slog.DiscardHandler),
	}
}

// WithResolver reads the files named by `source =` directives.
func WithResolver(r SourceResolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

// WithMaxSourceDepth limits how deep sourced files may source others.
func WithMaxSourceDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// WithLogger sets the logger used for warnings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
