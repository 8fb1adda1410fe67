// Package salph turns text into its spoken spelling under a chosen
// spelling alphabet ("cat" becomes Charlie Alfa Tango under nato).
//
// It connects the core domain types with the catalog and translation
// engine, for programs that want a single import.
//
// Philosophy:
//
// The catalog of alphabets is compiled-in data: built once at startup,
// validated at construction, immutable afterwards. Translation is a
// pure function of the alphabet and the input text. There is no I/O,
// no global mutable state, and nothing to lock.
//
// Features:
//
//   - **Built-in alphabets**: nato (with figures), dutch, french, german,
//     italian, swedish, us — all validated for full A-Z coverage.
//   - **Structured results**: per-word, per-character breakdown that
//     preserves casing, ordering and unmapped characters.
//   - **Embeddable**: construct your own Catalog, inject extra alphabets
//     or a logger via functional options.
//   - **Concurrency-safe**: the catalog is read-only after construction.
//
// Usage:
//
//	// One-call convenience against the default catalog
//	tr, err := salph.Spell("nato", "cat")
//
//	// Or an explicit catalog for embedding
//	catalog, err := salph.New(salph.WithLogger(logger))
//	tr, err := catalog.Translate("nato", "cat")
package salph
