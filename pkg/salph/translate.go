package salph

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/aretw0/salph/pkg/core"
)

// Translate spells out text under the given alphabet.
//
// The input is split into words on runs of whitespace. Every character
// of every word gets a slot in the result: letters and digits the
// alphabet defines resolve to their codeword (case-folded), everything
// else keeps its place with an empty codeword. Word order, character
// order and original casing are preserved, so the result reconstructs
// the input exactly. Empty or all-whitespace input yields zero words.
//
// Text is normalized to NFC first, so a combining sequence like
// "é" is treated as the single rune "é". Letters outside the
// alphabet's set (accented letters under nato, say) follow the same
// passthrough rule as punctuation.
//
// Translate is pure and never fails; it is safe to call concurrently
// with any other catalog operation.
func Translate(a *core.Alphabet, text string) core.Translation {
	fields := strings.Fields(norm.NFC.String(text))

	words := make([]core.WordSpelling, 0, len(fields))
	for _, field := range fields {
		words = append(words, spellWord(a, field))
	}

	return core.Translation{
		Alphabet: a.Name,
		Words:    words,
	}
}

func spellWord(a *core.Alphabet, word string) core.WordSpelling {
	letters := make([]core.LetterSpelling, 0, len(word))
	for _, r := range word {
		l := core.LetterSpelling{Char: string(r)}
		if codeword, ok := a.Codeword(r); ok {
			l.Codeword = codeword
			l.Digit = unicode.IsDigit(r)
		}
		letters = append(letters, l)
	}

	return core.WordSpelling{
		Original: word,
		Letters:  letters,
	}
}
