package salph_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/salph/pkg/core"
	"github.com/aretw0/salph/pkg/salph"
)

// testAlphabet builds a minimal valid alphabet covering A-Z.
func testAlphabet(name string) core.Alphabet {
	entries := make(map[rune]string, 26)
	for r := 'A'; r <= 'Z'; r++ {
		entries[r] = "Word" + string(r)
	}
	return core.Alphabet{Name: name, Description: name + " test alphabet", Entries: entries}
}

func TestResolve(t *testing.T) {
	catalog, err := salph.New()
	require.NoError(t, err)

	t.Run("Case Insensitive", func(t *testing.T) {
		lower, err := catalog.Resolve("nato")
		require.NoError(t, err)

		upper, err := catalog.Resolve("NATO")
		require.NoError(t, err)

		assert.Same(t, lower, upper)
	})

	t.Run("Unknown Name Fails", func(t *testing.T) {
		_, err := catalog.Resolve("doesnotexist")
		assert.ErrorIs(t, err, core.ErrUnknownAlphabet)
	})
}

func TestNames(t *testing.T) {
	catalog, err := salph.New()
	require.NoError(t, err)

	names := catalog.Names()
	require.NotEmpty(t, names)
	assert.True(t, sort.StringsAreSorted(names), "Names() must be sorted")
	assert.Contains(t, names, "nato")

	// Re-enumerable: a second call yields an equal, independent slice.
	again := catalog.Names()
	assert.Equal(t, names, again)
	again[0] = "mutated"
	assert.NotEqual(t, names[0], again[0], "Names() must return a fresh copy")

	seen := map[string]bool{}
	for _, name := range names {
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
}

func TestDescribe(t *testing.T) {
	catalog, err := salph.New()
	require.NoError(t, err)

	t.Run("Ordered Letters Then Digits", func(t *testing.T) {
		entries, err := catalog.Describe("nato")
		require.NoError(t, err)
		require.Len(t, entries, 36)

		assert.Equal(t, 'A', entries[0].Char)
		assert.Equal(t, "Alfa", entries[0].Codeword)
		assert.Equal(t, 'Z', entries[25].Char)
		assert.Equal(t, '0', entries[26].Char)
		assert.Equal(t, '9', entries[35].Char)
	})

	t.Run("Unknown Name Fails", func(t *testing.T) {
		_, err := catalog.Describe("doesnotexist")
		assert.ErrorIs(t, err, core.ErrUnknownAlphabet)
	})
}

func TestRegistration(t *testing.T) {
	t.Run("Extra Alphabet", func(t *testing.T) {
		catalog, err := salph.New(salph.WithAlphabets(testAlphabet("custom")))
		require.NoError(t, err)

		a, err := catalog.Resolve("CUSTOM")
		require.NoError(t, err)
		assert.Equal(t, "custom", a.Name)
	})

	t.Run("Without Builtins", func(t *testing.T) {
		catalog, err := salph.New(salph.WithoutBuiltins())
		require.NoError(t, err)
		assert.Empty(t, catalog.Names())

		_, err = catalog.Resolve("nato")
		assert.ErrorIs(t, err, core.ErrUnknownAlphabet)
	})

	t.Run("Duplicate Name Fails", func(t *testing.T) {
		_, err := salph.New(salph.WithAlphabets(testAlphabet("NATO")))
		assert.ErrorIs(t, err, core.ErrDuplicateAlphabet)
	})

	t.Run("Missing Coverage Fails", func(t *testing.T) {
		a := testAlphabet("gappy")
		delete(a.Entries, 'Q')

		_, err := salph.New(salph.WithoutBuiltins(), salph.WithAlphabets(a))
		assert.ErrorIs(t, err, core.ErrInvalidAlphabet)
	})

	t.Run("Empty Codeword Fails", func(t *testing.T) {
		a := testAlphabet("hollow")
		a.Entries['Q'] = ""

		_, err := salph.New(salph.WithoutBuiltins(), salph.WithAlphabets(a))
		assert.ErrorIs(t, err, core.ErrInvalidAlphabet)
	})

	t.Run("Non Letter Key Fails", func(t *testing.T) {
		a := testAlphabet("punct")
		a.Entries['!'] = "Bang"

		_, err := salph.New(salph.WithoutBuiltins(), salph.WithAlphabets(a))
		assert.ErrorIs(t, err, core.ErrInvalidAlphabet)
	})

	t.Run("Lowercase Key Fails", func(t *testing.T) {
		a := testAlphabet("folded")
		a.Entries['a'] = "Alfa"

		_, err := salph.New(salph.WithoutBuiltins(), salph.WithAlphabets(a))
		assert.ErrorIs(t, err, core.ErrInvalidAlphabet)
	})

	t.Run("Empty Name Fails", func(t *testing.T) {
		_, err := salph.New(salph.WithAlphabets(testAlphabet("  ")))
		assert.ErrorIs(t, err, core.ErrInvalidAlphabet)
	})
}

// The catalog is read-only after New, so concurrent resolution and
// translation must be race-free without locking.
func TestConcurrentReads(t *testing.T) {
	catalog, err := salph.New()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := catalog.Resolve("nato"); err != nil {
					t.Errorf("Resolve failed: %v", err)
					return
				}
				if _, err := catalog.Translate("nato", "concurrent cat"); err != nil {
					t.Errorf("Translate failed: %v", err)
					return
				}
				catalog.Names()
			}
		}()
	}
	wg.Wait()
}

func TestDescriptions(t *testing.T) {
	catalog, err := salph.New()
	require.NoError(t, err)

	descriptions := catalog.Descriptions()
	assert.Len(t, descriptions, len(catalog.Names()))
	assert.Equal(t, "NATO/ICAO radiotelephony alphabet", descriptions["nato"])
}
