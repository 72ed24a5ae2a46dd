package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/bits"
)

var ErrInvalidMax = errors.New("sampler max must be positive")

// randomWord reads a fresh 32-bit word from the operating system CSPRNG.
// A failing entropy source is unrecoverable: no password may ever be built
// from a degraded generator, so a read error panics instead of returning.
func randomWord() uint32 {
	var b [4]byte
	if _, err := io.ReadFull(rand.Reader, b[:]); err != nil {
		panic(fmt.Errorf("crypto: reading from system entropy source: %w", err))
	}
	return binary.LittleEndian.Uint32(b[:])
}

// Intn returns an integer uniformly distributed over [0, max) using
// rejection sampling, so no value is favored by modulo bias. The masked
// draw is accepted with probability above one half, so the expected number
// of words consumed stays below two for any max.
func Intn(max int) (int, error) {
	if max <= 0 {
		return 0, ErrInvalidMax
	}
	if max == 1 {
		return 0, nil
	}

	// Smallest all-ones mask covering max-1.
	mask := ^uint32(0) >> bits.LeadingZeros32(uint32(max-1))
	for {
		if v := randomWord() & mask; v < uint32(max) {
			return int(v), nil
		}
	}
}

// shuffleBytes permutes data in place with a Fisher-Yates shuffle driven by
// Intn, producing each permutation with equal probability. Sequences of
// length one or zero are left untouched.
func shuffleBytes(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := Intn(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
