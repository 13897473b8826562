package hpack

// Encoder holds per-connection HPACK encoding state: one
// indexingTable, string-size limits, and the probation candidate pool
// that backs the strategy engine in encodeHeader.
type Encoder struct {
	table               *indexingTable
	huffmanEnabled      bool
	maxHeaderStringSize int
	opts                EncodingOptions

	candidatePool map[HeaderField]int
	candidateFIFO []HeaderField
	maxCandidates int
}

// NewEncoder returns an Encoder ready to encode header blocks for one
// connection direction, with the given maximum dynamic table size.
func NewEncoder(maxTableSize uint32, opts ...Option) *Encoder {
	if maxTableSize == 0 {
		maxTableSize = defaultMaxTableSize
	}
	e := &Encoder{
		table:               newIndexingTable(maxTableSize),
		huffmanEnabled:      true,
		maxHeaderStringSize: defaultMaxHeaderStringSize,
		opts:                defaultEncodingOptions(),
		candidatePool:       make(map[HeaderField]int),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EncodeBlock encodes headers, in order, into a single HPACK header
// block. On any validation failure, no partial block is returned: the
// caller sees only the error.
func (e *Encoder) EncodeBlock(headers []HeaderField) ([]byte, error) {
	var buf []byte
	for _, f := range headers {
		var err error
		buf, err = e.encodeHeader(buf, f)
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// encodeHeader implements the §4.8 strategy engine for a single
// header field, appending its chosen representation to dst.
func (e *Encoder) encodeHeader(dst []byte, f HeaderField) ([]byte, error) {
	if !ValidHeaderName(f.Name) || !hpackSafeString(f.Value, e.maxHeaderStringSize) || len(f.Name) > e.maxHeaderStringSize {
		return nil, newError(KindInvalidHeader, "invalid header field %q", f.Name)
	}

	if idx := e.table.findIndex(f.Name, f.Value, nil); idx > 0 {
		return appendIndexed(dst, idx), nil
	}

	if e.isSensitive(f.Name) {
		if nameIdx := e.table.findNameIndex(f.Name); nameIdx > 0 {
			return appendLiteral(dst, reprNeverIndexed, true, nameIdx, f.Name, f.Value, e.huffmanEnabled), nil
		}
		return appendLiteral(dst, reprNeverIndexed, false, 0, f.Name, f.Value, e.huffmanEnabled), nil
	}

	count := e.observe(f)
	nameIdx := e.table.findNameIndex(f.Name)
	if count >= e.opts.ProbationThreshold {
		var out []byte
		if nameIdx > 0 {
			out = appendLiteral(dst, reprIncrementalIndexed, true, nameIdx, f.Name, f.Value, e.huffmanEnabled)
		} else {
			out = appendLiteral(dst, reprIncrementalIndexed, false, 0, f.Name, f.Value, e.huffmanEnabled)
		}
		e.table.add(f)
		return out, nil
	}
	if nameIdx > 0 {
		return appendLiteral(dst, reprWithoutIndexing, true, nameIdx, f.Name, f.Value, e.huffmanEnabled), nil
	}
	return appendLiteral(dst, reprWithoutIndexing, false, 0, f.Name, f.Value, e.huffmanEnabled), nil
}

func (e *Encoder) isSensitive(name string) bool {
	return sensitiveHeaderNames[name] || e.opts.NeverIndexValueForNames[name]
}

// observe increments the probation counter for f and returns the new
// count. The counter persists across EncodeBlock calls until Reset,
// per spec.md's "probation scope" open question.
func (e *Encoder) observe(f HeaderField) int {
	count := e.candidatePool[f] + 1
	if _, existed := e.candidatePool[f]; !existed {
		e.candidateFIFO = append(e.candidateFIFO, f)
		if e.maxCandidates > 0 && len(e.candidateFIFO) > e.maxCandidates {
			oldest := e.candidateFIFO[0]
			e.candidateFIFO = e.candidateFIFO[1:]
			delete(e.candidatePool, oldest)
		}
	}
	e.candidatePool[f] = count
	return count
}

// UpdateTableSize resizes the encoder's dynamic table. If the size
// actually changed, it returns the Dynamic Table Size Update
// representation the caller MUST prepend to the next emitted block.
func (e *Encoder) UpdateTableSize(newMax uint32) ([]byte, error) {
	if uint64(newMax) > maxTableSizeCap {
		return nil, newError(KindOverflow, "table size %d exceeds the 2^32-1 cap", newMax)
	}
	if newMax == e.table.dynamic.MaxSize() {
		return nil, nil
	}
	e.table.resize(newMax)
	return appendTableSizeUpdate(nil, newMax), nil
}

// Reset clears the dynamic table and the probation candidate pool,
// returning the encoder to its post-construction state (aside from
// configured options).
func (e *Encoder) Reset() {
	e.table.reset()
	e.candidatePool = make(map[HeaderField]int)
	e.candidateFIFO = nil
}
