// Package hpackcfg loads YAML-described encoder/decoder tuning
// profiles, the same Validate()-after-Unmarshal shape the teacher's
// internal/reverseproxy package uses for its own config file.
package hpackcfg

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"hpackcodec/internal/hpack"
)

// EncoderProfile mirrors hpack.EncodingOptions plus the constructor
// arguments NewEncoder takes, in a form that round-trips through YAML.
type EncoderProfile struct {
	MaxTableSize            uint32   `yaml:"max_table_size"`
	Huffman                 bool     `yaml:"huffman"`
	MaxHeaderStringSize     int      `yaml:"max_header_string_size"`
	ProbationThreshold      int      `yaml:"probation_threshold"`
	NeverIndexValueForNames []string `yaml:"never_index_value_for_names"`
	MaxCandidates           int      `yaml:"max_candidates"`
}

// DecoderProfile mirrors the Decoder constructor's tunables.
type DecoderProfile struct {
	MaxTableSize      uint32 `yaml:"max_table_size"`
	MaxHeaderListSize int    `yaml:"max_header_list_size"`
	LenientIndexing   bool   `yaml:"lenient_indexing"`
}

// Profile is the top-level document cmd/hpackdump loads.
type Profile struct {
	Encoder EncoderProfile `yaml:"encoder"`
	Decoder DecoderProfile `yaml:"decoder"`
}

func (p *Profile) Validate() error {
	if p.Encoder.MaxTableSize == 0 {
		return errors.New("encoder.max_table_size must be set")
	}
	if p.Encoder.ProbationThreshold < 1 {
		return errors.New("encoder.probation_threshold must be >= 1")
	}
	if p.Decoder.MaxTableSize == 0 {
		return errors.New("decoder.max_table_size must be set")
	}
	if p.Decoder.MaxHeaderListSize <= 0 {
		return errors.New("decoder.max_header_list_size must be > 0")
	}
	return nil
}

// Load reads and validates a Profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// NewEncoder builds an *hpack.Encoder from the profile.
func (p *Profile) NewEncoder() *hpack.Encoder {
	names := make(map[string]bool, len(p.Encoder.NeverIndexValueForNames))
	for _, n := range p.Encoder.NeverIndexValueForNames {
		names[n] = true
	}
	opts := []hpack.Option{
		hpack.WithHuffman(p.Encoder.Huffman),
		hpack.WithEncodingOptions(hpack.EncodingOptions{
			NeverIndexValueForNames: names,
			ProbationThreshold:      p.Encoder.ProbationThreshold,
		}),
	}
	if p.Encoder.MaxHeaderStringSize > 0 {
		opts = append(opts, hpack.WithMaxHeaderStringSize(p.Encoder.MaxHeaderStringSize))
	}
	if p.Encoder.MaxCandidates > 0 {
		opts = append(opts, hpack.WithMaxCandidates(p.Encoder.MaxCandidates))
	}
	return hpack.NewEncoder(p.Encoder.MaxTableSize, opts...)
}

// NewDecoder builds an *hpack.Decoder from the profile.
func (p *Profile) NewDecoder() *hpack.Decoder {
	var opts []hpack.DecoderOption
	if p.Decoder.MaxHeaderListSize > 0 {
		opts = append(opts, hpack.WithMaxHeaderListSize(p.Decoder.MaxHeaderListSize))
	}
	if p.Decoder.LenientIndexing {
		opts = append(opts, hpack.WithLenientIndexing())
	}
	return hpack.NewDecoder(p.Decoder.MaxTableSize, opts...)
}
