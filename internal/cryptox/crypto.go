// Package cryptox holds the password derivation used to check credentials
// without keeping plaintext passwords in memory.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the salt length used for newly seeded accounts.
const SaltSize = 32

// DeriveKey stretches password with argon2id (1 pass, 64 MiB, 4 lanes)
// into a 32-byte key.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key into the value stored for comparison.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// CheckPassword derives a verifier for password and compares it with want
// in constant time.
func CheckPassword(password, salt, want []byte) bool {
	got := MakeVerifier(DeriveKey(password, salt))
	return subtle.ConstantTimeCompare(got, want) == 1
}
