package salph

import (
	"log/slog"
	"sync"

	"github.com/aretw0/salph/pkg/core"
	"github.com/aretw0/salph/pkg/salph"
)

// Version exposes the version of the library.
const Version = "1.2.0"

// --- Types ---

// Alphabet is a public alias for the domain alphabet.
type Alphabet = core.Alphabet

// Translation is a public alias for the translation result.
type Translation = core.Translation

// WordSpelling is a public alias for a single word's breakdown.
type WordSpelling = core.WordSpelling

// LetterSpelling is a public alias for a single character's spelling.
type LetterSpelling = core.LetterSpelling

// Catalog is a public alias for the alphabet registry.
type Catalog = salph.Catalog

// --- Errors ---

var (
	ErrUnknownAlphabet   = core.ErrUnknownAlphabet
	ErrDuplicateAlphabet = core.ErrDuplicateAlphabet
	ErrInvalidAlphabet   = core.ErrInvalidAlphabet
)

// --- Configuration ---

// Option defines a functional option for configuring the catalog.
type Option = salph.Option

// WithoutBuiltins skips registration of the built-in alphabets.
func WithoutBuiltins() Option {
	return salph.WithoutBuiltins()
}

// WithAlphabets registers additional alphabets on top of the built-ins.
func WithAlphabets(alphabets ...Alphabet) Option {
	return salph.WithAlphabets(alphabets...)
}

// WithLogger sets the logger for the catalog.
func WithLogger(logger *slog.Logger) Option {
	return salph.WithLogger(logger)
}

// --- Factory ---

// New builds a catalog of spelling alphabets.
func New(opts ...Option) (*Catalog, error) {
	return salph.New(opts...)
}

// --- Default catalog ---

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog of built-in alphabets,
// building it on first use. The built-in definitions are covered by
// tests, so construction cannot fail short of a broken binary.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := salph.New()
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// --- Operations ---

// Spell translates text under the named alphabet from the default catalog.
func Spell(alphabet, text string) (Translation, error) {
	return Default().Translate(alphabet, text)
}

// Translate spells out text under an already-resolved alphabet.
func Translate(a *Alphabet, text string) Translation {
	return salph.Translate(a, text)
}

// Names lists the built-in alphabet names, sorted.
func Names() []string {
	return Default().Names()
}
