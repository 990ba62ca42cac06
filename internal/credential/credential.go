// Package credential implements password key derivation for local accounts.
// Secrets are never stored: a per-user random salt and a PBKDF2-derived key
// are kept instead, and login attempts are checked by re-deriving.
package credential

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// saltLength is the number of random bytes generated per credential.
	saltLength = 16
	// iterations is the fixed PBKDF2 iteration count. Changing it breaks
	// verification of every stored key, so treat it as part of the schema.
	iterations = 10000
	// keyLength is the PBKDF2 output length in bytes.
	keyLength = 64
)

// GenerateSalt returns fresh cryptographically random salt material,
// base64-encoded for storage. A failing entropy source is a fatal condition
// for the caller; there is no fallback.
func GenerateSalt() (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to read random salt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

// DeriveKey derives a storage key from a plaintext secret and a
// base64-encoded salt using PBKDF2-SHA512.
//
// An empty secret or an absent salt yields the empty string. This is the
// defined "no secret set" result: comparing anything against it can never
// succeed, so an unset credential cannot authenticate. The same applies to a
// salt that does not decode, which can only mean corrupted storage.
func DeriveKey(secret, salt string) string {
	if secret == "" || salt == "" {
		return ""
	}
	rawSalt, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return ""
	}
	key := pbkdf2.Key([]byte(secret), rawSalt, iterations, keyLength, sha512.New)
	return base64.StdEncoding.EncodeToString(key)
}

// Verify re-derives a key from the candidate secret and the stored salt and
// compares it against the stored key in constant time. It returns false, never
// an error, when the stored salt or key is empty.
func Verify(candidate, salt, derivedKey string) bool {
	if salt == "" || derivedKey == "" {
		return false
	}
	rederived := DeriveKey(candidate, salt)
	if rederived == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(rederived), []byte(derivedKey)) == 1
}
