package dedupe

import (
	"fmt"
	"strings"
)

const (
	ModeExact   = "exact"
	ModeWide    = "wide"
	ModeBounded = "bounded"
)

// Seen records which lines have already been emitted.
type Seen interface {
	// Insert adds the line and reports whether it was not already present.
	Insert(line []byte) bool
	// Len is the number of hashes currently held.
	Len() int
}

// New returns the Seen implementation for mode.
// cacheBytes is only used by the bounded mode.
func New(mode string, cacheBytes uint64) (Seen, error) {
	switch strings.ToLower(mode) {
	case "", ModeExact:
		return NewExact(), nil
	case ModeWide:
		return NewWide(), nil
	case ModeBounded:
		if cacheBytes == 0 {
			return nil, fmt.Errorf("bounded dedupe requires a cache size")
		}
		return NewBounded(cacheBytes), nil
	default:
		return nil, fmt.Errorf("unknown dedupe mode %q, expected one of %s, %s, %s", mode, ModeExact, ModeWide, ModeBounded)
	}
}
