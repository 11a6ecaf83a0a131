// Package metadata carries the opaque string attributes attached to channel
// bindings and messages. The classifier passes attributes through untouched;
// only the wiring runtime on the far side of the boundary interprets them.
package metadata

// Metadata is a string key/value attribute map.
type Metadata map[string]string

// New constructs a Metadata map from alternating key/value pairs. An odd
// trailing key is ignored.
func New(pairs ...string) Metadata {
	m := make(Metadata, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		m[pairs[i]] = pairs[i+1]
	}
	return m
}

// Clone returns a shallow copy of the metadata map. A nil map clones to an
// empty, writable map.
func (m Metadata) Clone() Metadata {
	cloned := make(Metadata, len(m))
	for k, v := range m {
		cloned[k] = v
	}
	return cloned
}

// With returns a cloned metadata map containing the provided key/value pair.
// The receiver is never mutated.
func (m Metadata) With(key, value string) Metadata {
	cloned := m.Clone()
	cloned[key] = value
	return cloned
}

// Merge returns a cloned metadata map with all entries from other applied on
// top of the receiver's entries.
func (m Metadata) Merge(other Metadata) Metadata {
	cloned := m.Clone()
	for k, v := range other {
		cloned[k] = v
	}
	return cloned
}

// Get returns the value for key, or fallback when the key is absent.
func (m Metadata) Get(key, fallback string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}
