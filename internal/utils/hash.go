package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries the hex HMAC-SHA256 of a request or response body.
const HashHeader = "HashSHA256"

// Hasher computes HMAC-SHA256 sums with a fixed key. The hash.Hash values are
// pooled because a Hasher is shared by every request of a client or server.
type Hasher struct {
	pool sync.Pool
	key  string
}

// NewHasher returns a Hasher for key. A Hasher with an empty key is
// disabled: [Hasher.Enabled] reports false and callers skip the check.
func NewHasher(key string) *Hasher {
	h := &Hasher{key: key}
	h.pool.New = func() any {
		return hmac.New(sha256.New, []byte(key))
	}
	return h
}

// Enabled reports whether a key is configured.
func (h *Hasher) Enabled() bool {
	return h != nil && h.key != ""
}

// Hash returns the HMAC-SHA256 of data.
func (h *Hasher) Hash(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// HashString returns the hex-encoded HMAC-SHA256 of data.
func (h *Hasher) HashString(data []byte) string {
	return hex.EncodeToString(h.Hash(data))
}

// Verify reports whether sum is the hex HMAC-SHA256 of data.
func (h *Hasher) Verify(data []byte, sum string) bool {
	decoded, err := hex.DecodeString(sum)
	if err != nil {
		return false
	}
	return hmac.Equal(decoded, h.Hash(data))
}
