package crypto

import "errors"

const (
	// MinLength is enforced at the service boundary, not here, so callers
	// with their own policy can generate shorter secrets.
	MinLength = 12
	MaxLength = 128
)

var (
	ErrInvalidLength      = errors.New("password length must be positive")
	ErrLengthTooShort     = errors.New("password length must be at least 12")
	ErrLengthTooLong      = errors.New("password length must be at most 128")
	ErrLengthInsufficient = errors.New("password length must be at least equal to the number of selected character types")
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length            int
	Uppercase         bool
	Lowercase         bool
	Digits            bool
	Symbols           bool
	ExcludeAmbiguous  bool
	GuaranteeEachType bool
}

// DefaultOptions returns sensible defaults: 16 characters, all types
// enabled, with one character of each type guaranteed.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:            16,
		Uppercase:         true,
		Lowercase:         true,
		Digits:            true,
		Symbols:           true,
		GuaranteeEachType: true,
	}
}

// Generate creates a cryptographically secure random password based on the
// given options.
//
// When GuaranteeEachType is set, one character is first drawn from each
// enabled pool, then the remaining positions are filled from the combined
// alphabet. The result is always run through an unbiased shuffle, so the
// seeded characters carry no positional bias.
func Generate(opts GeneratorOptions) (string, error) {
	if opts.Length < 1 {
		return "", ErrInvalidLength
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	pools, alphabet, err := buildPools(opts, AmbiguousChars)
	if err != nil {
		return "", err
	}

	// Guaranteed coverage cannot fit more pools than positions. Reject
	// rather than silently dropping a pool's guarantee.
	if opts.GuaranteeEachType && opts.Length < len(pools) {
		return "", ErrLengthInsufficient
	}

	result := make([]byte, 0, opts.Length)

	if opts.GuaranteeEachType {
		for _, pool := range pools {
			ch, err := randChar(pool)
			if err != nil {
				return "", err
			}
			result = append(result, ch)
		}
	}

	for len(result) < opts.Length {
		ch, err := randChar(alphabet)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	if err := shuffleBytes(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// AlphabetSize reports how many distinct characters Generate would draw
// from under the given options, after filtering. Fails with the same pool
// errors as Generate.
func AlphabetSize(opts GeneratorOptions) (int, error) {
	_, alphabet, err := buildPools(opts, AmbiguousChars)
	if err != nil {
		return 0, err
	}
	return len(alphabet), nil
}

// randChar picks one character uniformly from charset.
func randChar(charset string) (byte, error) {
	i, err := Intn(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}
