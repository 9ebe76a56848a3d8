package crypto

import (
	"bytes"
	"testing"
)

// cheap parameters keep the suite fast
var testParams = Argon2Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16}

func TestRandBytes_Length(t *testing.T) {
	t.Parallel()

	a, err := RandBytes(32)
	if err != nil || len(a) != 32 {
		t.Fatalf("RandBytes: len=%d err=%v", len(a), err)
	}
	b, _ := RandBytes(32)
	if bytes.Equal(a, b) {
		t.Fatalf("two RandBytes calls are equal")
	}
}

func TestHasher_HashVerify(t *testing.T) {
	t.Parallel()

	h := NewHasher(testParams)
	hash, salt, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if len(salt) != 16 || len(hash) != 32 {
		t.Fatalf("unexpected sizes: salt=%d hash=%d", len(salt), len(hash))
	}
	if !h.Verify("secret1", salt, hash) {
		t.Fatalf("Verify: want true for correct password")
	}
	if h.Verify("secret2", salt, hash) {
		t.Fatalf("Verify: want false for wrong password")
	}
	if h.Verify("secret1", []byte("other-salt-16byt"), hash) {
		t.Fatalf("Verify: want false for wrong salt")
	}
	if h.Verify("", nil, nil) {
		t.Fatalf("Verify: want false for passwordless account")
	}

	hash2, salt2, _ := h.Hash("secret1")
	if bytes.Equal(salt, salt2) || bytes.Equal(hash, hash2) {
		t.Fatalf("salts must be fresh per hash")
	}
}

func TestNewHasher_Defaults(t *testing.T) {
	t.Parallel()

	if got := NewHasher(Argon2Params{}).p; got != DefaultArgon2 {
		t.Fatalf("zero params: got %+v", got)
	}
}

func TestLinkToken(t *testing.T) {
	t.Parallel()

	tok, hash, err := NewLinkToken()
	if err != nil {
		t.Fatalf("NewLinkToken: %v", err)
	}
	if len(tok) != 43 {
		t.Fatalf("token len=%d", len(tok))
	}
	if !bytes.Equal(hash, HashToken(tok)) {
		t.Fatalf("hash mismatch")
	}
	tok2, _, _ := NewLinkToken()
	if tok == tok2 {
		t.Fatalf("tokens must differ")
	}
}
