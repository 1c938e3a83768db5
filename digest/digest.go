// Package digest computes deterministic content signatures for
// bbexpr's signature builder. It wraps github.com/spaolacci/murmur3's
// 128-bit variant rather than a cryptographic hash: the signature only
// needs to be stable and collision-resistant enough for incremental
// build cache keys, not secure against an adversarial input.
package digest

import (
	"encoding/base64"
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

// Hash is a 128-bit digest.
type Hash struct {
	hi, lo uint64
}

// Sum computes the digest of data.
func Sum(data []byte) Hash {
	hi, lo := murmur3.Sum128(data)
	return Hash{hi: hi, lo: lo}
}

// Bytes returns the digest's big-endian 16-byte form.
func (h Hash) Bytes() []byte {
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b[:8], h.hi)
	binary.BigEndian.PutUint64(b[8:], h.lo)
	return b
}

// Base64 returns the digest as unpadded URL-safe base64, the form
// suitable for embedding in a cache-path component.
func (h Hash) Base64() string {
	return base64.RawURLEncoding.EncodeToString(h.Bytes())
}

func (h Hash) String() string { return h.Base64() }
