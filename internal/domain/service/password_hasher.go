// Package service declares the ports the usecases depend on: credential
// checks, token signing and the external collaborators.
package service

// PasswordHasher hashes and checks the admin password.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
