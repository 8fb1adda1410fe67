package salph

import (
	"log/slog"

	"github.com/aretw0/salph/pkg/core"
)

// options holds the internal configuration for catalog construction.
type options struct {
	builtins bool
	extra    []core.Alphabet
	logger   *slog.Logger
}

// Option defines a functional option for configuring the catalog.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		builtins: true,
		logger:   nil, // or slog.Default() if we prefer
	}
}

// WithoutBuiltins skips registration of the built-in alphabets,
// yielding an empty catalog (useful for embedders and tests).
func WithoutBuiltins() Option {
	return func(o *options) {
		o.builtins = false
	}
}

// WithAlphabets registers additional alphabets on top of the built-ins.
// They go through the same validation as compiled-in definitions.
func WithAlphabets(alphabets ...core.Alphabet) Option {
	return func(o *options) {
		o.extra = append(o.extra, alphabets...)
	}
}

// WithLogger sets the logger for the catalog.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
