package dedupe

import "github.com/zeebo/xxh3"

// Wide is an unbounded set of 128 bit xxh3 line hashes.
type Wide struct {
	hashes map[xxh3.Uint128]struct{}
}

func NewWide() *Wide {
	return &Wide{hashes: make(map[xxh3.Uint128]struct{})}
}

func (w *Wide) Insert(line []byte) bool {
	h := Hash128(line)
	if _, ok := w.hashes[h]; ok {
		return false
	}
	w.hashes[h] = struct{}{}
	return true
}

func (w *Wide) Len() int { return len(w.hashes) }
