package auth

import (
	"crypto/subtle"
	"log/slog"

	"workbench/config"
	"workbench/internal/domain/service"
)

// staticCredentialStore holds the single configured admin principal.
type staticCredentialStore struct {
	username     string
	password     string
	passwordHash string
	hasher       service.PasswordHasher
}

// NewCredentialStore builds the admin credential store from configuration.
// A plaintext admin password is accepted but logged as a weakness; set admin.passwordHash instead.
func NewCredentialStore(cfg *config.Config, hasher service.PasswordHasher, logger *slog.Logger) service.CredentialStore {
	store := &staticCredentialStore{hasher: hasher}
	if cfg.Admin != nil {
		store.username = cfg.Admin.Username
		store.password = cfg.Admin.Password
		store.passwordHash = cfg.Admin.PasswordHash
	}

	if store.passwordHash == "" && store.password != "" {
		logger.Warn("Admin password is configured in plaintext, set admin.passwordHash to a bcrypt hash")
	}

	return store
}

// Authenticate compares both values in constant time. Empty configured values never match.
func (s *staticCredentialStore) Authenticate(username, password string) bool {
	if s.username == "" || username == "" || password == "" {
		return false
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1

	var passOK bool
	switch {
	case s.passwordHash != "":
		passOK = s.hasher.Check(password, s.passwordHash)
	case s.password != "":
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	}

	return userOK && passOK
}
