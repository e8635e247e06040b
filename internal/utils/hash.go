package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader is the header carrying the hex HMAC-SHA256 of a request or
// response body.
const HashHeader = "HashSHA256"

// Signer computes keyed HMAC-SHA256 signatures over request bodies.
// Hash instances are pooled per signer.
type Signer struct {
	pool sync.Pool
}

// NewSigner returns a Signer using key. An empty key yields a nil Signer,
// on which Enabled reports false.
func NewSigner(key string) *Signer {
	if key == "" {
		return nil
	}
	s := &Signer{}
	s.pool.New = func() any {
		return hmac.New(sha256.New, []byte(key))
	}
	return s
}

// Enabled reports whether the signer has a key configured.
func (s *Signer) Enabled() bool {
	return s != nil
}

// Sign returns the raw HMAC-SHA256 digest of data.
func (s *Signer) Sign(data []byte) []byte {
	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return sum
}

// SignHex returns the hex-encoded HMAC-SHA256 digest of data.
func (s *Signer) SignHex(data []byte) string {
	return hex.EncodeToString(s.Sign(data))
}

// Verify reports whether signature is the hex digest of data. Comparison is
// constant time.
func (s *Signer) Verify(data []byte, signature string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, s.Sign(data))
}

// HashString computes an HMAC-SHA256 signature over data using hashKey and
// returns it hex-encoded. It does not use a pool.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
