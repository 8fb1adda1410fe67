package salph

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"unicode"

	"github.com/aretw0/salph/pkg/alphabets"
	"github.com/aretw0/salph/pkg/core"
)

// Catalog is the registry of known spelling alphabets, keyed by name.
// It is built once and never mutated afterwards, so concurrent
// Resolve/Describe/Translate calls need no locking.
type Catalog struct {
	byName map[string]*core.Alphabet
	logger *slog.Logger
}

// New builds a catalog. By default it registers the built-in alphabets;
// see WithoutBuiltins and WithAlphabets to change the set.
//
// A registration failure here means a definition is malformed and is
// returned as an error wrapping core.ErrInvalidAlphabet or
// core.ErrDuplicateAlphabet. Composition roots should treat it as fatal.
func New(opts ...Option) (*Catalog, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	c := &Catalog{
		byName: make(map[string]*core.Alphabet),
		logger: o.logger,
	}

	if o.builtins {
		builtin, err := alphabets.Load()
		if err != nil {
			return nil, err
		}
		for _, a := range builtin {
			if err := c.register(a); err != nil {
				return nil, err
			}
		}
	}

	for _, a := range o.extra {
		if err := c.register(a); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// register validates and adds one alphabet. It is unexported on purpose:
// the catalog is read-only once New returns.
func (c *Catalog) register(a core.Alphabet) error {
	if err := validate(a); err != nil {
		return err
	}

	key := strings.ToLower(a.Name)
	if _, exists := c.byName[key]; exists {
		return fmt.Errorf("%w: %q", core.ErrDuplicateAlphabet, a.Name)
	}

	if c.logger != nil {
		c.logger.Debug("registered alphabet", "name", key, "entries", len(a.Entries))
	}

	c.byName[key] = &a
	return nil
}

// Resolve looks up an alphabet by name, case-insensitively.
func (c *Catalog) Resolve(name string) (*core.Alphabet, error) {
	a, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownAlphabet, name)
	}
	return a, nil
}

// Names returns the registered alphabet names, sorted. The slice is a
// fresh copy on every call.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Descriptions returns the long name of every registered alphabet,
// keyed by its (lowercase) name.
func (c *Catalog) Descriptions() map[string]string {
	out := make(map[string]string, len(c.byName))
	for name, a := range c.byName {
		out[name] = a.Description
	}
	return out
}

// Describe returns the full character-to-codeword table of the named
// alphabet, letters A-Z first and digits after, in ascending order.
func (c *Catalog) Describe(name string) ([]core.Entry, error) {
	a, err := c.Resolve(name)
	if err != nil {
		return nil, err
	}

	chars := a.Chars()
	entries := make([]core.Entry, 0, len(chars))
	for _, r := range chars {
		entries = append(entries, core.Entry{Char: r, Codeword: a.Entries[r]})
	}
	return entries, nil
}

// Translate resolves name and spells out text under that alphabet.
func (c *Catalog) Translate(name, text string) (core.Translation, error) {
	a, err := c.Resolve(name)
	if err != nil {
		return core.Translation{}, err
	}
	return Translate(a, text), nil
}

// validate enforces the alphabet invariants: a non-empty name, single
// letter-or-digit keys, non-empty codewords, and full A-Z coverage.
func validate(a core.Alphabet) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: empty name", core.ErrInvalidAlphabet)
	}

	for r, codeword := range a.Entries {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("%w: %q: key %q is not a letter or digit", core.ErrInvalidAlphabet, a.Name, r)
		}
		if unicode.IsLetter(r) && r != unicode.ToUpper(r) {
			return fmt.Errorf("%w: %q: key %q is not in canonical uppercase form", core.ErrInvalidAlphabet, a.Name, r)
		}
		if codeword == "" {
			return fmt.Errorf("%w: %q: empty codeword for %q", core.ErrInvalidAlphabet, a.Name, r)
		}
	}

	for r := 'A'; r <= 'Z'; r++ {
		if _, ok := a.Entries[r]; !ok {
			return fmt.Errorf("%w: %q: missing entry for %q", core.ErrInvalidAlphabet, a.Name, r)
		}
	}

	return nil
}
