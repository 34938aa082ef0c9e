// Package cryptox implements credential hashing for the local account
// record. Passwords are never stored or compared in plaintext: a random
// per-account salt feeds argon2id, and only a SHA-256 verifier of the
// derived key is persisted.
package cryptox

import (
	"crypto/sha256"

	"golang.org/x/crypto/argon2"
)

// DeriveCredentialKey stretches password with salt using argon2id.
// Parameters (t=1, m=64MiB, p=4, 32-byte key) follow the RFC 9106
// low-memory recommendation.
func DeriveCredentialKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier reduces a derived key to the value actually persisted.
// Storing a hash of the key (not the key itself) means a leaked store
// never yields material that can be replayed as a credential.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}
