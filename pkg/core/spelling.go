package core

import "strings"

// LetterSpelling is the spelling of a single character within a word.
// An empty Codeword means the character has no mapping in the alphabet
// (punctuation, or a digit/letter the alphabet does not define); the
// character is still carried so the original word can be reconstructed.
// Codewords are never empty for mapped characters, so "" is unambiguous.
type LetterSpelling struct {
	Char     string `json:"char"`
	Codeword string `json:"codeword,omitempty"`
	Digit    bool   `json:"digit,omitempty"`
}

// Spelled reports whether the character resolved to a codeword.
func (l LetterSpelling) Spelled() bool { return l.Codeword != "" }

// WordSpelling is the spelling of one whitespace-delimited input word.
type WordSpelling struct {
	Original string           `json:"original"`
	Letters  []LetterSpelling `json:"letters"`
}

// Codewords returns the codewords of the word in order, skipping
// unmapped characters.
func (w WordSpelling) Codewords() []string {
	out := make([]string, 0, len(w.Letters))
	for _, l := range w.Letters {
		if l.Spelled() {
			out = append(out, l.Codeword)
		}
	}
	return out
}

// Join renders the word's codewords separated by sep.
func (w WordSpelling) Join(sep string) string {
	return strings.Join(w.Codewords(), sep)
}

// Translation is the result of spelling out a full input text.
// Words appear in input order, one per whitespace-delimited word.
type Translation struct {
	Alphabet string         `json:"alphabet"`
	Words    []WordSpelling `json:"words"`
}
