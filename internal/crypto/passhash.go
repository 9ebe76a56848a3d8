// Package crypto implements server-side password hashing and sign-in link tokens.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// Argon2Params tunes Argon2id.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen int
}

// DefaultArgon2 is used by the server.
var DefaultArgon2 = Argon2Params{Time: 3, Memory: 64 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16}

// RandBytes returns n cryptographically secure random bytes.
func RandBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// Hasher hashes and verifies passwords with fixed parameters.
type Hasher struct{ p Argon2Params }

// NewHasher returns a Hasher; zero params fall back to DefaultArgon2.
func NewHasher(p Argon2Params) *Hasher {
	if p.Time == 0 || p.Memory == 0 || p.KeyLen == 0 {
		p = DefaultArgon2
	}
	if p.Threads == 0 {
		p.Threads = 1
	}
	if p.SaltLen == 0 {
		p.SaltLen = DefaultArgon2.SaltLen
	}
	return &Hasher{p: p}
}

// Hash derives a new salt and returns (hash, salt).
func (h *Hasher) Hash(password string) ([]byte, []byte, error) {
	salt, err := RandBytes(h.p.SaltLen)
	if err != nil {
		return nil, nil, err
	}
	return h.derive([]byte(password), salt), salt, nil
}

// Verify compares password against the stored hash in constant time.
func (h *Hasher) Verify(password string, salt, expected []byte) bool {
	if len(expected) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(h.derive([]byte(password), salt), expected) == 1
}

func (h *Hasher) derive(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, h.p.Time, h.p.Memory, h.p.Threads, h.p.KeyLen)
}
