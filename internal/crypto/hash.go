package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrMalformedHash      = errors.New("malformed encoded hash")
	ErrUnsupportedVersion = errors.New("unsupported argon2 version")
)

// argonParams holds the Argon2id cost parameters baked into an encoded hash.
type argonParams struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
}

// Defaults follow the second RFC 9106 recommended option (64 MiB, t=3).
var defaultArgonParams = argonParams{
	memory:      64 * 1024,
	iterations:  3,
	parallelism: 2,
}

const (
	saltLength = 16
	keyLength  = 32
)

// HashPassword derives an Argon2id hash of the account password and returns
// it in PHC string format, e.g.
// $argon2id$v=19$m=65536,t=3,p=2$<base64-salt>$<base64-key>.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	p := defaultArgonParams
	key := argon2.IDKey([]byte(password), salt, p.iterations, p.memory, p.parallelism, keyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.memory, p.iterations, p.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword reports whether password matches the PHC-encoded hash,
// comparing in constant time.
func VerifyPassword(password, encoded string) (bool, error) {
	p, salt, key, err := parseEncodedHash(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, p.iterations, p.memory, p.parallelism, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func parseEncodedHash(encoded string) (argonParams, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return argonParams{}, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return argonParams{}, nil, nil, ErrMalformedHash
	}
	if version != argon2.Version {
		return argonParams{}, nil, nil, ErrUnsupportedVersion
	}

	var p argonParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.iterations, &p.parallelism); err != nil {
		return argonParams{}, nil, nil, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return argonParams{}, nil, nil, ErrMalformedHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return argonParams{}, nil, nil, ErrMalformedHash
	}

	return p, salt, key, nil
}
