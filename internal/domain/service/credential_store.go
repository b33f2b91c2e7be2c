package service

// CredentialStore checks a username/password pair against the configured principal.
// It reports success or failure only.
type CredentialStore interface {
	Authenticate(username, password string) bool
}
