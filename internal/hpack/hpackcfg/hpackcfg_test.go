package hpackcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hpackcodec/internal/hpack"
)

func headerFixture() []hpack.HeaderField {
	return []hpack.HeaderField{
		{Name: ":method", Value: "GET"},
		{Name: ":scheme", Value: "https"},
		{Name: ":path", Value: "/"},
	}
}

const validProfile = `
encoder:
  max_table_size: 4096
  huffman: true
  max_header_string_size: 8192
  probation_threshold: 2
  never_index_value_for_names:
    - authorization
  max_candidates: 256
decoder:
  max_table_size: 4096
  max_header_list_size: 8192
  lenient_indexing: false
`

func writeProfile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadValidProfile(t *testing.T) {
	path := writeProfile(t, validProfile)
	profile, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint32(4096), profile.Encoder.MaxTableSize)
	assert.True(t, profile.Encoder.Huffman)
	assert.Equal(t, 2, profile.Encoder.ProbationThreshold)
	assert.Equal(t, []string{"authorization"}, profile.Encoder.NeverIndexValueForNames)
	assert.Equal(t, 8192, profile.Decoder.MaxHeaderListSize)
}

func TestLoadProfileRoundTripsThroughCodec(t *testing.T) {
	path := writeProfile(t, validProfile)
	profile, err := Load(path)
	require.NoError(t, err)

	enc := profile.NewEncoder()
	dec := profile.NewDecoder()

	block, err := enc.EncodeBlock(headerFixture())
	require.NoError(t, err)

	out, err := dec.DecodeBlock(block)
	require.NoError(t, err)
	assert.Equal(t, headerFixture(), out)
}

func TestLoadRejectsZeroEncoderMaxTableSize(t *testing.T) {
	path := writeProfile(t, `
encoder:
  max_table_size: 0
  probation_threshold: 1
decoder:
  max_table_size: 4096
  max_header_list_size: 100
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsZeroHeaderListSize(t *testing.T) {
	path := writeProfile(t, `
encoder:
  max_table_size: 4096
  probation_threshold: 1
decoder:
  max_table_size: 4096
  max_header_list_size: 0
`)
	_, err := Load(path)
	assert.Error(t, err)
}
