// Package salph implements the spelling alphabet core: the Catalog of
// known alphabets and the translation engine.
//
// The Catalog owns the registered alphabets and resolves names to
// definitions; Translate turns input text into a per-word, per-character
// codeword breakdown under a resolved alphabet.
//
// Usage:
//
//	// Build a catalog with functional options
//	catalog, err := salph.New(
//		salph.WithLogger(logger),
//	)
//
//	// Spell out a sentence
//	tr, err := catalog.Translate("nato", "hello world")
package salph
