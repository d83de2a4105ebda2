// Package auth verifies the fixed admin credential configured at
// process start. The verifier is an interface so a hashed or multi-user
// scheme can be substituted without touching the login handler.
package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks a username/password pair against the
// configured admin credential.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticCredentials verifies against a single admin user. When
// PasswordHash is set it takes precedence and is compared with bcrypt;
// otherwise Password is compared in constant time.
type StaticCredentials struct {
	Username     string
	Password     string
	PasswordHash string
}

func (s StaticCredentials) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.Username)) == 1
	if s.PasswordHash != "" {
		passOK := bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(password)) == nil
		return userOK && passOK
	}
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.Password)) == 1
	return userOK && passOK
}

// HashPassword returns a bcrypt hash for seeding ADMIN_PASSWORD_HASH.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
