package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against them. Plaintext is never stored or logged.
type PasswordHasher interface {
	// Hash returns a salted hash of password. Hashing the same password
	// twice yields different strings.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored hash.
	// A mismatch is reported as (false, nil); an error is returned only when
	// the stored hash itself is unusable.
	Verify(password, hash string) (bool, error)
}
