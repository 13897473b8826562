package hpack

// Encode creates a fresh Encoder with default settings, encodes
// headers into one block, and discards the encoder. It is a
// convenience for callers that do not need a dynamic table to persist
// across blocks.
func Encode(headers []HeaderField, huffman bool) ([]byte, error) {
	enc := NewEncoder(defaultMaxTableSize, WithHuffman(huffman))
	return enc.EncodeBlock(headers)
}

// Decode creates a fresh Decoder with default settings, decodes one
// block, and discards the decoder.
func Decode(data []byte) ([]HeaderField, error) {
	dec := NewDecoder(defaultMaxTableSize)
	return dec.DecodeBlock(data)
}
