package crypto

import (
	"crypto/sha256"
	"encoding/base64"
)

const linkTokenLen = 32

// NewLinkToken returns an opaque URL-safe token and the hash to persist.
func NewLinkToken() (string, []byte, error) {
	raw, err := RandBytes(linkTokenLen)
	if err != nil {
		return "", nil, err
	}
	tok := base64.RawURLEncoding.EncodeToString(raw)
	return tok, HashToken(tok), nil
}

// HashToken is the lookup key for a link token.
func HashToken(tok string) []byte {
	h := sha256.Sum256([]byte(tok))
	return h[:]
}
