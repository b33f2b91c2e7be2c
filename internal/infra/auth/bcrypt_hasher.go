package auth

import (
	"workbench/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// hashCost matches the cost of hashes produced by `htpasswd -B`.
const hashCost = bcrypt.DefaultCost

type bcryptHasher struct{}

// NewBcryptHasher returns a PasswordHasher that accepts ADMIN_PASSWORD_HASH values.
func NewBcryptHasher() service.PasswordHasher {
	return bcryptHasher{}
}

func (bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(hash), nil
}

func (bcryptHasher) Check(password, hash string) bool {
	if hash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
