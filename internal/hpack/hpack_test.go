package hpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatelessEncodeDecodeRoundTrip(t *testing.T) {
	headers := []HeaderField{
		{":method", "GET"},
		{":scheme", "https"},
		{":path", "/"},
		{"custom-key", "custom-value"},
	}
	block, err := Encode(headers, true)
	require.NoError(t, err)

	decoded, err := Decode(block)
	require.NoError(t, err)
	assert.Equal(t, headers, decoded)
}

// TestEncoderDecoderMirroredState walks both sides of a connection
// through the same sequence of blocks, feeding the encoder's output
// straight into a matching decoder, the way an HTTP/2 peer pair would.
func TestEncoderDecoderMirroredState(t *testing.T) {
	enc := NewEncoder(4096)
	dec := NewDecoder(4096)

	requestOne := []HeaderField{
		{":method", "GET"},
		{":scheme", "https"},
		{":path", "/"},
		{":authority", "www.example.com"},
	}
	block, err := enc.EncodeBlock(requestOne)
	require.NoError(t, err)
	out, err := dec.DecodeBlock(block)
	require.NoError(t, err)
	assert.Equal(t, requestOne, out)

	// Second request repeats :authority verbatim; static table already
	// covers the other three, so only :authority is a candidate for
	// promotion into the dynamic table.
	requestTwo := []HeaderField{
		{":method", "GET"},
		{":scheme", "https"},
		{":path", "/"},
		{":authority", "www.example.com"},
	}
	block, err = enc.EncodeBlock(requestTwo)
	require.NoError(t, err)
	out, err = dec.DecodeBlock(block)
	require.NoError(t, err)
	assert.Equal(t, requestTwo, out)
	assert.Equal(t, StaticTableSize+1, dec.maxIndex(), ":authority crossed the probation threshold")

	// Third request: everything including :authority is now a full
	// dynamic-table match; the encoded block shrinks to four indexed
	// bytes.
	block, err = enc.EncodeBlock(requestTwo)
	require.NoError(t, err)
	assert.Len(t, block, 4)
	out, err = dec.DecodeBlock(block)
	require.NoError(t, err)
	assert.Equal(t, requestTwo, out)
}

func TestEncoderDecoderSensitiveHeaderNeverEntersDynamicTable(t *testing.T) {
	enc := NewEncoder(4096)
	dec := NewDecoder(4096)

	headers := []HeaderField{{"authorization", "Bearer token-one"}}
	for i := 0; i < 3; i++ {
		block, err := enc.EncodeBlock(headers)
		require.NoError(t, err)
		out, err := dec.DecodeBlock(block)
		require.NoError(t, err)
		assert.Equal(t, headers, out)
	}
	assert.Equal(t, StaticTableSize, dec.maxIndex(), "a never-indexed header must not grow the dynamic table")
}

func TestEncoderDecoderTableShrinkEvictsMirrored(t *testing.T) {
	enc := NewEncoder(4096)
	dec := NewDecoder(4096)

	f := HeaderField{"custom-key", "custom-value"}
	for i := 0; i < 2; i++ {
		block, err := enc.EncodeBlock([]HeaderField{f})
		require.NoError(t, err)
		_, err = dec.DecodeBlock(block)
		require.NoError(t, err)
	}
	require.Equal(t, StaticTableSize+1, dec.maxIndex())

	update, err := enc.UpdateTableSize(0)
	require.NoError(t, err)
	require.NotEmpty(t, update)

	out, err := dec.DecodeBlock(update)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, StaticTableSize, dec.maxIndex(), "shrinking to zero evicts every dynamic entry")
}

func TestDecoderRejectsOversizeHeaderList(t *testing.T) {
	dec := NewDecoder(4096, WithMaxHeaderListSize(16))
	enc := NewEncoder(4096)

	block, err := enc.EncodeBlock([]HeaderField{
		{"x-long-header-name", "and an even longer value to go with it"},
	})
	require.NoError(t, err)

	_, err = dec.DecodeBlock(block)
	requireKind(t, err, KindHeaderListTooLarge)
}

func TestDecoderRejectsTruncatedInput(t *testing.T) {
	enc := NewEncoder(4096)
	dec := NewDecoder(4096)

	block, err := enc.EncodeBlock([]HeaderField{{"custom-key", "custom-value"}})
	require.NoError(t, err)
	require.Greater(t, len(block), 1)

	_, err = dec.DecodeBlock(block[:len(block)-1])
	require.Error(t, err)
}

func TestProbationCrossBlock(t *testing.T) {
	enc := NewEncoder(4096)
	f := HeaderField{"x-session", "abc123"}

	first, err := enc.EncodeBlock([]HeaderField{f})
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), first[0]&0xf0)

	second, err := enc.EncodeBlock(nil)
	require.NoError(t, err)
	assert.Empty(t, second)

	third, err := enc.EncodeBlock([]HeaderField{f})
	require.NoError(t, err)
	assert.Equal(t, byte(0x40), third[0]&0xc0, "probation count survived the intervening empty block")
}

func TestLenientDecoderDropsOutOfRangeIndex(t *testing.T) {
	dec := NewDecoder(4096, WithLenientIndexing())
	var block []byte
	block = appendLiteral(block, reprIncrementalIndexed, true, StaticTableSize+1, "", "orphaned", false)
	block = appendLiteral(block, reprWithoutIndexing, false, 0, "x-ok", "value", false)

	out, err := dec.DecodeBlock(block)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, HeaderField{"x-ok", "value"}, out[0])
}
