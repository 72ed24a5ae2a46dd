package crypto

import (
	"errors"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// AmbiguousChars are visually confusable (0/O, 1/l/I, pipe) and are
	// stripped from every pool when ExcludeAmbiguous is set.
	AmbiguousChars = "0O1lI|"
)

var (
	ErrNoCharacterTypes = errors.New("no character type selected")
	ErrEmptyAfterFilter = errors.New("no characters remain after filtering")
)

// buildPools assembles the enabled character pools in fixed order
// (uppercase, lowercase, digits, symbols) and the combined alphabet.
// Pool definitions are constants; filtering builds fresh copies per call,
// removing every member of ambiguous when ExcludeAmbiguous is set. A pool
// emptied entirely by the filter is dropped, and if no enabled pool
// survives, the whole build fails.
func buildPools(opts GeneratorOptions, ambiguous string) (pools []string, alphabet string, err error) {
	candidates := []struct {
		enabled bool
		chars   string
	}{
		{opts.Uppercase, uppercaseChars},
		{opts.Lowercase, lowercaseChars},
		{opts.Digits, digitChars},
		{opts.Symbols, symbolChars},
	}

	anyEnabled := false
	for _, c := range candidates {
		if !c.enabled {
			continue
		}
		anyEnabled = true

		chars := c.chars
		if opts.ExcludeAmbiguous {
			chars = stripChars(chars, ambiguous)
		}
		if chars == "" {
			continue
		}

		pools = append(pools, chars)
		alphabet += chars
	}

	if !anyEnabled {
		return nil, "", ErrNoCharacterTypes
	}
	if len(pools) == 0 {
		return nil, "", ErrEmptyAfterFilter
	}

	return pools, alphabet, nil
}

// stripChars returns chars with every member of unwanted removed.
func stripChars(chars, unwanted string) string {
	var b strings.Builder
	for _, r := range chars {
		if !strings.ContainsRune(unwanted, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
