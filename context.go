package exifcore

import "encoding/binary"

// readerContext bundles the reader and traversal state threaded through
// a walk: the byte-ordered random-access reader, the base offset all
// tag offsets are relative to, and the set of IFD offsets already
// visited (cycle prevention). Every derivation method returns a new
// value; the receiver is never mutated, so a handler that stashes a
// context from an outer IFD is unaffected by a sibling's traversal.
type readerContext struct {
	r       RandomAccessReader
	visited map[int64]bool
}

// newReaderContext creates the root context for a walk.
func newReaderContext(r RandomAccessReader) readerContext {
	return readerContext{r: r, visited: make(map[int64]bool)}
}

// WithByteOrder returns a context reading through order from here on,
// sharing the same visited set (byte-order overrides, as used by some
// makernote dialects, don't reset cycle tracking).
func (c readerContext) WithByteOrder(order binary.ByteOrder) readerContext {
	return readerContext{r: c.r.WithByteOrder(order), visited: c.visited}
}

// WithBaseOffset returns a context whose absolute offsets are shifted
// by delta, e.g. entering a makernote block whose internal offsets are
// relative to the block start rather than the TIFF header.
func (c readerContext) WithBaseOffset(delta int64) readerContext {
	return readerContext{r: c.r.WithBaseOffset(delta), visited: c.visited}
}

// ByteOrder returns the context's current byte order.
func (c readerContext) ByteOrder() binary.ByteOrder {
	return c.r.ByteOrder()
}

// Enter records offset (local to c's current base) as visited,
// returning false if its absolute offset was already visited (a cycle)
// instead of recording it again. Keying on the absolute offset rather
// than the raw local one matters once WithBaseOffset is in play: a
// makernote rule's walkOffset is deliberately small and local to its
// shifted base, and two unrelated IFDs can share that local value while
// living at entirely different absolute positions in the file.
func (c readerContext) Enter(offset int64) bool {
	abs := offset + c.r.BaseOffset()
	if c.visited[abs] {
		return false
	}
	c.visited[abs] = true
	return true
}

// Visited reports whether offset (local to c's current base) has
// already been walked as an IFD in this traversal, by its absolute
// position.
func (c readerContext) Visited(offset int64) bool {
	return c.visited[offset+c.r.BaseOffset()]
}
