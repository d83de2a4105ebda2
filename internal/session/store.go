// Package session implements the server-side session store: an opaque
// random bearer token mapped to the authenticated identity. A token is
// valid exactly as long as it is present in the store; there is no TTL,
// so sessions end only at explicit logout (or, for the in-memory store,
// process restart). This is documented behavior, not a bug.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

// Store maps session tokens to identities. Implementations must be safe
// for concurrent use; login, logout and authentication all hit the
// store from concurrent requests.
type Store interface {
	// Put records token -> identity.
	Put(ctx context.Context, token, identity string) error
	// Identity returns the identity bound to token and whether the
	// token is currently valid.
	Identity(ctx context.Context, token string) (string, bool, error)
	// Delete removes the token. Deleting an absent token is not an
	// error; logout is idempotent.
	Delete(ctx context.Context, token string) error
}

// NewToken returns a hex-encoded string generated from 48 bytes of
// cryptographically secure random data (96 hex characters).
func NewToken() (string, error) {
	buf := make([]byte, 48)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
