// Package cardkey builds canonical byte encodings of game state and hashes
// them into compact equivalence-class keys. It has no notion of cards or
// Klondike rules; callers assemble the canonical form field by field.
package cardkey

import "hash/fnv"

// Key is a 64-bit equivalence-class fingerprint.
type Key uint64

// sep is the separator byte written between logical sections of the
// canonical form, so that e.g. an empty section cannot be confused with
// the absence of a following one.
const sep = 0xFF

// Builder assembles the canonical byte form of a state incrementally. The
// zero value is not usable; use NewBuilder.
type Builder struct {
	buf []byte
}

// NewBuilder returns a Builder with a small preallocated buffer, sized for
// a typical Klondike-scale fingerprint (well under 200 bytes).
func NewBuilder() *Builder {
	return &Builder{buf: make([]byte, 0, 192)}
}

// Bool appends a single byte: 1 for true, 0 for false.
func (b *Builder) Bool(v bool) *Builder {
	if v {
		b.buf = append(b.buf, 1)
	} else {
		b.buf = append(b.buf, 0)
	}
	return b
}

// Byte appends a single raw byte.
func (b *Builder) Byte(v byte) *Builder {
	b.buf = append(b.buf, v)
	return b
}

// Bytes appends a raw byte slice verbatim.
func (b *Builder) Bytes(v []byte) *Builder {
	b.buf = append(b.buf, v...)
	return b
}

// Sep appends a section separator byte.
func (b *Builder) Sep() *Builder {
	b.buf = append(b.buf, sep)
	return b
}

// Sum hashes the assembled canonical form with FNV-1a and returns the key.
// Collisions are an accepted source of rare, harmless over-pruning; they
// are not treated as an error condition anywhere in this package.
func (b *Builder) Sum() Key {
	h := fnv.New64a()
	h.Write(b.buf)
	return Key(h.Sum64())
}

// Reset clears the builder so it can be reused for another state without
// reallocating its backing buffer.
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
}
