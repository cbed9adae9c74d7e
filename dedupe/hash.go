package dedupe

import (
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// Seed is applied to every line hash. Hashes are never persisted so any fixed value works.
const Seed uint64 = 64

// Hasher computes seeded xxHash64 values, reusing a single digest.
type Hasher struct {
	d *xxhash.Digest
}

func NewHasher() *Hasher {
	return &Hasher{d: xxhash.NewWithSeed(Seed)}
}

// Sum64 returns the seeded xxHash64 of b.
func (h *Hasher) Sum64(b []byte) uint64 {
	h.d.ResetWithSeed(Seed)
	// Digest.Write never fails
	_, _ = h.d.Write(b)
	return h.d.Sum64()
}

// Hash64 returns the seeded xxHash64 of b.
func Hash64(b []byte) uint64 {
	return NewHasher().Sum64(b)
}

// Hash128 returns the seeded xxh3 128 bit hash of b.
func Hash128(b []byte) xxh3.Uint128 {
	return xxh3.Hash128Seed(b, Seed)
}
