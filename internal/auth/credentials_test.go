package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelez/tireshop/internal/auth"
)

func TestStaticCredentials_Plaintext(t *testing.T) {
	creds := auth.StaticCredentials{Username: "admin", Password: "hunter2"}

	assert.True(t, creds.Verify("admin", "hunter2"))
	assert.False(t, creds.Verify("admin", "wrong"))
	assert.False(t, creds.Verify("root", "hunter2"))
	assert.False(t, creds.Verify("", ""))
}

func TestStaticCredentials_BcryptHashTakesPrecedence(t *testing.T) {
	hash, err := auth.HashPassword("hunter2", 4)
	require.NoError(t, err)

	creds := auth.StaticCredentials{
		Username:     "admin",
		Password:     "something-else",
		PasswordHash: hash,
	}

	assert.True(t, creds.Verify("admin", "hunter2"))
	assert.False(t, creds.Verify("admin", "something-else"), "plaintext field ignored when hash set")
	assert.False(t, creds.Verify("admin", hash), "hash itself is not the password")
}
