package hpack

// EncodingOptions tunes the encoder's per-header strategy engine.
type EncodingOptions struct {
	// NeverIndexValueForNames lists lowercase header names whose
	// values must always be emitted as never-indexed literals,
	// regardless of the built-in sensitive-name set.
	NeverIndexValueForNames map[string]bool
	// ProbationThreshold is how many times a (name,value) pair must be
	// observed before it is added to the dynamic table. Must be >= 1.
	ProbationThreshold int
	// MinHuffmanSavingsPercent is reserved for a future heuristic; the
	// current behavior always uses Huffman when it is strictly
	// shorter than the raw encoding, independent of this field.
	MinHuffmanSavingsPercent int
}

// defaultNeverIndexNames mirrors the spec's default
// never_index_value_for_names set: values that tend to be unique per
// request and pollute the dynamic table without ever being reused.
func defaultNeverIndexNames() map[string]bool {
	return map[string]bool{
		"etag":          true,
		"if-none-match": true,
		"x-request-id":  true,
		"x-trace-id":    true,
	}
}

// sensitiveHeaderNames is the built-in set of names whose values are
// always never-indexed, independent of EncodingOptions.
var sensitiveHeaderNames = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"cookie":              true,
	"set-cookie":          true,
}

func defaultEncodingOptions() EncodingOptions {
	return EncodingOptions{
		NeverIndexValueForNames: defaultNeverIndexNames(),
		ProbationThreshold:      2,
	}
}

const (
	defaultMaxTableSize         = 4096
	defaultMaxHeaderStringSize  = 8192
	defaultMaxHeaderListSize    = 8192
)

// Option configures an Encoder at construction time.
type Option func(*Encoder)

// WithHuffman toggles Huffman coding of literal strings. Enabled by
// default.
func WithHuffman(enabled bool) Option {
	return func(e *Encoder) { e.huffmanEnabled = enabled }
}

// WithMaxHeaderStringSize caps the byte length of any name or value
// the encoder will accept.
func WithMaxHeaderStringSize(n int) Option {
	return func(e *Encoder) { e.maxHeaderStringSize = n }
}

// WithEncodingOptions overrides the default EncodingOptions.
func WithEncodingOptions(opts EncodingOptions) Option {
	return func(e *Encoder) { e.opts = opts }
}

// WithMaxCandidates bounds the encoder's probation candidate pool: once
// more than n distinct (name,value) pairs are being tracked, the
// oldest-observed pair is evicted to make room. Zero (the default)
// leaves the pool unbounded, matching spec.md's reference behavior.
func WithMaxCandidates(n int) Option {
	return func(e *Encoder) { e.maxCandidates = n }
}

// DecoderOption configures a Decoder at construction time.
type DecoderOption func(*Decoder)

// WithMaxHeaderListSize caps the cumulative decoded name+value byte
// count for one block.
func WithMaxHeaderListSize(n int) DecoderOption {
	return func(d *Decoder) { d.maxHeaderListSize = n }
}

// WithLenientIndexing switches the decoder from the default strict
// behavior (an out-of-range dynamic index is a ProtocolError) to
// silently dropping the offending header instead. spec.md's decoder
// leniency open question authorizes this as an explicit, never-default
// opt-in.
func WithLenientIndexing() DecoderOption {
	return func(d *Decoder) { d.lenientIndexing = true }
}
