package crypto

import "math"

// Strength is a coarse, display-only category derived from entropy bits.
// It never feeds back into generation.
type Strength string

const (
	StrengthWeak        Strength = "Weak"
	StrengthFair        Strength = "Fair"
	StrengthGood        Strength = "Good"
	StrengthStrong      Strength = "Strong"
	StrengthVeryStrong  Strength = "Very Strong"
	StrengthUncrackable Strength = "Uncrackable"
)

// EstimateBits returns the Shannon entropy of a password of the given
// length drawn independently and uniformly from an alphabet of the given
// size, rounded to the nearest whole bit. Non-positive inputs yield zero.
func EstimateBits(length, alphabetSize int) int {
	if length <= 0 || alphabetSize <= 0 {
		return 0
	}
	return int(math.Round(float64(length) * math.Log2(float64(alphabetSize))))
}

// StrengthFor maps an entropy bit count to its strength category.
func StrengthFor(bits int) Strength {
	switch {
	case bits < 40:
		return StrengthWeak
	case bits < 60:
		return StrengthFair
	case bits < 80:
		return StrengthGood
	case bits < 100:
		return StrengthStrong
	case bits < 128:
		return StrengthVeryStrong
	default:
		return StrengthUncrackable
	}
}
