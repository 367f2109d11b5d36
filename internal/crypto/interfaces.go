package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted, self-describing
// hashes and checks candidates against them.
type PasswordHasher interface {
	// Hash returns an encoded hash of password. Every call uses a fresh
	// random salt, so two hashes of the same password differ.
	Hash(password string) (string, error)

	// Verify reports whether password matches the encoded hash.
	// A mismatch is reported as (false, nil); a malformed encoding as an error.
	Verify(password, encoded string) (bool, error)
}
