package hpack

// HPACK string representation, RFC 7541 Section 5.2: a Huffman flag in
// the high bit of a 7-bit-prefix length integer, followed by that many
// octets of either raw or Huffman-coded payload.

// appendString appends the wire form of s to dst, using Huffman coding
// when enabled and beneficial.
func appendString(dst []byte, s string, huffmanEnabled bool) []byte {
	if huffmanEnabled && shouldHuffmanEncode(s) {
		encoded := huffmanAppend(nil, s)
		offset := len(dst)
		dst = appendInteger(dst, 7, uint64(len(encoded)))
		dst[offset] |= 0x80
		return append(dst, encoded...)
	}
	dst = appendInteger(dst, 7, uint64(len(s)))
	return append(dst, s...)
}

// readString reads a wire string from the start of buf, validating it
// against the header-value control-byte predicate and against maxLen
// (0 meaning unbounded). It returns the decoded string and the number
// of octets consumed.
func readString(buf []byte, maxLen int) (string, int, error) {
	if len(buf) == 0 {
		return "", 0, newError(KindTruncated, "truncated string header")
	}
	huffman := buf[0]&0x80 != 0
	length, n, err := decodeInteger(buf, 7)
	if err != nil {
		return "", 0, err
	}
	if uint64(len(buf)-n) < length {
		return "", 0, newError(KindTruncated, "truncated string body")
	}
	body := buf[n : n+int(length)]

	var s string
	if huffman {
		decoded, err := huffmanDecode(nil, body)
		if err != nil {
			return "", 0, err
		}
		s = string(decoded)
	} else {
		s = string(body)
	}

	if maxLen > 0 && len(s) > maxLen {
		return "", 0, newError(KindInvalidHeader, "decoded string of %d bytes exceeds max of %d", len(s), maxLen)
	}
	if !ValidHeaderValue(s) {
		return "", 0, newError(KindProtocolError, "decoded string contains an illegal control byte")
	}
	return s, n + int(length), nil
}
