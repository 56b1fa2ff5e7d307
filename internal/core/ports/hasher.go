package ports

// PasswordHasher abstracts the one-way password transform so the services
// stay independent of the hashing algorithm.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare reports whether password matches the stored hash.
	Compare(hash, password string) bool
}
