package hpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticTableSize(t *testing.T) {
	assert.Equal(t, 61, StaticTableSize)
}

func TestFindStaticIndexExactMatch(t *testing.T) {
	assert.Equal(t, 2, findStaticIndex(":method", "GET"))
	assert.Equal(t, 3, findStaticIndex(":method", "POST"))
	assert.Equal(t, 7, findStaticIndex(":scheme", "https"))
	assert.Equal(t, 0, findStaticIndex(":method", "PATCH"))
	assert.Equal(t, 0, findStaticIndex("not-a-header", ""))
}

func TestFindStaticNameIndexPrefersLowestIndex(t *testing.T) {
	// :status appears at indices 8-14; the name-only lookup must return
	// the smallest one.
	assert.Equal(t, 8, findStaticNameIndex(":status"))
	assert.Equal(t, 1, findStaticNameIndex(":authority"))
	assert.Equal(t, 0, findStaticNameIndex("x-unknown"))
}

func TestStaticTableEntryZeroIsPlaceholder(t *testing.T) {
	assert.Equal(t, HeaderField{}, staticTable[0])
}
