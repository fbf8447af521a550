package grace

import "hash/fnv"

// ID uniquely identifies a widget across frames.
type ID uint64

// idFromString hashes a label into an ID, seeded by the enclosing panel so
// the same label can appear in several panels.
func idFromString(seed ID, label string) ID {
	h := fnv.New64a()
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(seed >> (8 * i))
	}
	h.Write(buf[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}
