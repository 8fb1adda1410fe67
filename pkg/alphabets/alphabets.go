// Package alphabets holds the built-in spelling alphabet definitions.
//
// Definitions are YAML files embedded at build time; they are the only
// "storage" this project has. The catalog validates each definition on
// registration, so a malformed file here is a build defect caught by
// the tests in this package, never a runtime condition.
package alphabets

import (
	"embed"
	"fmt"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/salph/pkg/core"
)

//go:embed *.yaml
var defFS embed.FS

// definition mirrors the on-disk YAML schema.
type definition struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Letters     map[string]string `yaml:"letters"`
	Digits      map[string]string `yaml:"digits"`
}

// Load parses every embedded definition file into domain alphabets,
// in file-name order.
func Load() ([]core.Alphabet, error) {
	files, err := defFS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate embedded alphabets: %w", err)
	}

	out := make([]core.Alphabet, 0, len(files))
	for _, f := range files {
		data, err := defFS.ReadFile(f.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f.Name(), err)
		}

		var def definition
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", f.Name(), err)
		}

		a, err := def.toAlphabet()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name(), err)
		}
		out = append(out, a)
	}
	return out, nil
}

// MustLoad is Load for composition roots where a failure means the
// binary itself is broken.
func MustLoad() []core.Alphabet {
	alphabets, err := Load()
	if err != nil {
		panic(err)
	}
	return alphabets
}

func (d definition) toAlphabet() (core.Alphabet, error) {
	entries := make(map[rune]string, len(d.Letters)+len(d.Digits))

	for key, codeword := range d.Letters {
		r, err := singleRune(key)
		if err != nil {
			return core.Alphabet{}, err
		}
		if !unicode.IsLetter(r) {
			return core.Alphabet{}, fmt.Errorf("letter key %q is not a letter", key)
		}
		entries[unicode.ToUpper(r)] = codeword
	}

	for key, codeword := range d.Digits {
		r, err := singleRune(key)
		if err != nil {
			return core.Alphabet{}, err
		}
		if !unicode.IsDigit(r) {
			return core.Alphabet{}, fmt.Errorf("digit key %q is not a digit", key)
		}
		entries[r] = codeword
	}

	return core.Alphabet{
		Name:        d.Name,
		Description: d.Description,
		Entries:     entries,
	}, nil
}

func singleRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("key %q is not a single character", s)
	}
	return r, nil
}
