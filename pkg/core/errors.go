package core

import "errors"

// Common errors.
var (
	// ErrUnknownAlphabet is returned when a name matches no registered alphabet.
	ErrUnknownAlphabet = errors.New("unknown alphabet")

	// ErrDuplicateAlphabet is returned when two alphabets share a name
	// (case-insensitive). This is a data-authoring defect, fatal at startup.
	ErrDuplicateAlphabet = errors.New("duplicate alphabet name")

	// ErrInvalidAlphabet is returned when a definition is malformed:
	// empty name, non-single-character key, empty codeword, or missing
	// A-Z coverage. Same treatment as ErrDuplicateAlphabet.
	ErrInvalidAlphabet = errors.New("invalid alphabet definition")
)
