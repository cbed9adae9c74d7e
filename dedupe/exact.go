package dedupe

// Exact is an unbounded set of xxHash64 line hashes.
type Exact struct {
	hasher *Hasher
	hashes map[uint64]struct{}
}

func NewExact() *Exact {
	return &Exact{hasher: NewHasher(), hashes: make(map[uint64]struct{})}
}

func (e *Exact) Insert(line []byte) bool {
	return e.InsertHash(e.hasher.Sum64(line))
}

// InsertHash adds an already computed hash and reports whether it was new.
func (e *Exact) InsertHash(h uint64) bool {
	if _, ok := e.hashes[h]; ok {
		return false
	}
	e.hashes[h] = struct{}{}
	return true
}

func (e *Exact) Len() int { return len(e.hashes) }
