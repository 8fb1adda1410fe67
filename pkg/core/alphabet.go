// Alphabet is the central entity of the domain.
package core

import (
	"sort"
	"unicode"
)

// Alphabet represents a spelling alphabet: a mapping from single
// characters (letters, optionally digits) to the codewords used to
// spell them out loud.
// It is agnostic to how the definition was authored (YAML, literal).
type Alphabet struct {
	// Name identifies the alphabet. Lookups are case-insensitive,
	// so "NATO" and "nato" refer to the same alphabet.
	Name string

	// Description is the human-readable long name, e.g.
	// "NATO/ICAO radiotelephony alphabet".
	Description string

	// Entries maps the uppercase canonical form of a character to
	// its codeword. Keys are single letter or digit runes; values
	// are never empty once the alphabet passed catalog validation.
	Entries map[rune]string
}

// Entry is one row of an alphabet listing: a character and its codeword.
type Entry struct {
	Char     rune
	Codeword string
}

// Codeword returns the codeword for r, folding case before the lookup.
// The second return value reports whether the alphabet defines r.
func (a *Alphabet) Codeword(r rune) (string, bool) {
	w, ok := a.Entries[unicode.ToUpper(r)]
	return w, ok
}

// Chars returns the characters the alphabet defines, letters A-Z first,
// then digits, each group in ascending order.
func (a *Alphabet) Chars() []rune {
	letters := make([]rune, 0, len(a.Entries))
	digits := make([]rune, 0, 10)
	for r := range a.Entries {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		} else {
			letters = append(letters, r)
		}
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	sort.Slice(digits, func(i, j int) bool { return digits[i] < digits[j] })
	return append(letters, digits...)
}
