package dedupe

import (
	"math"

	"github.com/AustralianCyberSecurityCentre/azul-rmdup.git/prom"
)

// Bounded is the antibloom cache, a fixed size table of line hashes.
type Bounded struct {
	hasher   *Hasher
	keys     []uint64
	sizeMask uint64
	used     int
}

// NewBounded returns a Bounded with the specified capacity in bytes.
func NewBounded(size uint64) *Bounded {
	// round up
	size = uint64(math.Pow(2, math.Ceil(math.Log2(float64(size)))))
	if size < 8 {
		size = 8
	}
	// 8 bytes per entry (uint64)
	size = size / 8
	sizeMask := size - 1          // masked val = array index
	slice := make([]uint64, size) // prealloc to trigger any mem issues upfront
	return &Bounded{hasher: NewHasher(), keys: slice, sizeMask: sizeMask}
}

// Insert adds the line, evicting whatever hash shared its slot, and reports whether it was not present.
func (b *Bounded) Insert(line []byte) bool {
	h := b.hasher.Sum64(line)
	// zero marks an empty slot
	if h == 0 {
		h = 1
	}
	index := h & b.sizeMask
	oldHash := b.keys[index]
	b.keys[index] = h
	switch {
	case oldHash == h:
		return false
	case oldHash == 0:
		b.used++
	default:
		prom.DedupeCacheEvictions.Inc()
	}
	return true
}

func (b *Bounded) Len() int { return b.used }

// Slots is the number of hashes the table can hold.
func (b *Bounded) Slots() int { return len(b.keys) }
