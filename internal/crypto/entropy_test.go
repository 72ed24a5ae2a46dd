package crypto

import "testing"

func TestEstimateBits(t *testing.T) {
	tests := []struct {
		length       int
		alphabetSize int
		want         int
	}{
		{20, 91, 130},
		{12, 26, 56},
		{12, 91, 78},
		{16, 88, 103},
		{1, 2, 1},
		{0, 88, 0},
		{-3, 88, 0},
		{16, 0, 0},
		{16, 1, 0},
	}

	for _, tt := range tests {
		if got := EstimateBits(tt.length, tt.alphabetSize); got != tt.want {
			t.Errorf("EstimateBits(%d, %d) = %d, want %d", tt.length, tt.alphabetSize, got, tt.want)
		}
	}
}

func TestStrengthFor(t *testing.T) {
	tests := []struct {
		bits int
		want Strength
	}{
		{0, StrengthWeak},
		{39, StrengthWeak},
		{40, StrengthFair},
		{59, StrengthFair},
		{60, StrengthGood},
		{79, StrengthGood},
		{80, StrengthStrong},
		{99, StrengthStrong},
		{100, StrengthVeryStrong},
		{127, StrengthVeryStrong},
		{128, StrengthUncrackable},
		{300, StrengthUncrackable},
	}

	for _, tt := range tests {
		if got := StrengthFor(tt.bits); got != tt.want {
			t.Errorf("StrengthFor(%d) = %q, want %q", tt.bits, got, tt.want)
		}
	}
}
