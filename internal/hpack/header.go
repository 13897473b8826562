package hpack

// HeaderField is a name/value header pair as exchanged between an
// Encoder and a Decoder. Both fields are treated as opaque octet
// strings; callers are expected to lowercase names before encoding,
// per RFC 7541 Section 8.1.2.
type HeaderField struct {
	Name  string
	Value string
}

// size is the RFC 7541 Section 4.1 entry size: the octet lengths of
// name and value plus a fixed 32 bytes of accounting overhead.
func (f HeaderField) size() uint32 {
	return uint32(len(f.Name) + len(f.Value) + 32)
}

func (f HeaderField) equal(other HeaderField) bool {
	return f.Name == other.Name && f.Value == other.Value
}
