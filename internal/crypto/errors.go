package crypto

import "errors"

var (
	// ErrInvalidHash is returned when an encoded hash cannot be parsed.
	ErrInvalidHash = errors.New("encoded hash is not in the expected format")

	// ErrIncompatibleVersion is returned when an encoded hash was produced by
	// a different Argon2 version.
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)
