package hpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendStringRoundTripRaw(t *testing.T) {
	// A short string whose Huffman encoding does not compress is emitted
	// raw even with huffman enabled: two digits take 5 bits each, which
	// rounds up to 2 octets, no shorter than the raw form.
	s := "12"
	encoded := appendString(nil, s, true)
	assert.Equal(t, byte(len(s)), encoded[0]&0x7f)
	assert.Equal(t, byte(0), encoded[0]&0x80)

	decoded, n, err := readString(encoded, 0)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)
	assert.Equal(t, len(encoded), n)
}

func TestAppendStringRoundTripHuffman(t *testing.T) {
	s := "www.example.com"
	encoded := appendString(nil, s, true)
	assert.Equal(t, byte(0x80), encoded[0]&0x80)

	decoded, n, err := readString(encoded, 0)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)
	assert.Equal(t, len(encoded), n)
}

func TestAppendStringHuffmanDisabled(t *testing.T) {
	encoded := appendString(nil, "www.example.com", false)
	assert.Equal(t, byte(0), encoded[0]&0x80)
}

func TestReadStringTruncated(t *testing.T) {
	_, _, err := readString(nil, 0)
	requireKind(t, err, KindTruncated)

	// Length prefix claims more body bytes than are present.
	buf := appendInteger(nil, 7, 20)
	_, _, err = readString(buf, 0)
	requireKind(t, err, KindTruncated)
}

func TestReadStringExceedsMaxLen(t *testing.T) {
	encoded := appendString(nil, "a fairly long value", false)
	_, _, err := readString(encoded, 4)
	requireKind(t, err, KindInvalidHeader)
}

func TestReadStringRejectsControlBytes(t *testing.T) {
	encoded := appendString(nil, "bad\x00value", false)
	_, _, err := readString(encoded, 0)
	requireKind(t, err, KindProtocolError)
}
