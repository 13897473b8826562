package hpack

// Decoder holds per-connection HPACK decoding state: one dynamic
// table, the soft cap on table-size updates, and the cumulative byte
// budget for one decoded header list.
type Decoder struct {
	table             *dynamicTable
	maxTableSize      uint32
	maxHeaderListSize int
	lenientIndexing   bool
}

// NewDecoder returns a Decoder ready to decode header blocks for one
// connection direction.
func NewDecoder(maxTableSize uint32, opts ...DecoderOption) *Decoder {
	if maxTableSize == 0 {
		maxTableSize = defaultMaxTableSize
	}
	d := &Decoder{
		table:             newDynamicTable(maxTableSize),
		maxTableSize:      maxTableSize,
		maxHeaderListSize: defaultMaxHeaderListSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetMaxTableSize updates the soft cap a Table Size Update
// representation must respect, mirroring an out-of-band HTTP/2
// SETTINGS_HEADER_TABLE_SIZE change.
func (d *Decoder) SetMaxTableSize(size uint32) { d.maxTableSize = size }

// Reset clears the dynamic table.
func (d *Decoder) Reset() { d.table.Reset() }

func (d *Decoder) maxIndex() int { return StaticTableSize + d.table.Len() }

func (d *Decoder) get(index int) (HeaderField, bool) {
	if index < 1 {
		return HeaderField{}, false
	}
	if index <= StaticTableSize {
		return staticTable[index], true
	}
	return d.table.at(index - StaticTableSize)
}

// DecodeBlock decodes one complete HPACK header block, returning the
// header fields in the order they were encoded.
func (d *Decoder) DecodeBlock(data []byte) ([]HeaderField, error) {
	var out []HeaderField
	listSize := 0
	sizeUpdateAllowed := true

	for len(data) > 0 {
		b := data[0]
		switch {
		case b&0x80 == 0x80:
			f, n, dropped, err := d.readIndexed(data)
			if err != nil {
				return nil, err
			}
			data = data[n:]
			sizeUpdateAllowed = false
			if !dropped {
				out, listSize, err = appendDecoded(out, listSize, f, d.maxHeaderListSize)
				if err != nil {
					return nil, err
				}
			}

		case b&0xC0 == 0x40:
			f, n, dropped, err := d.readLiteral(data, reprIncrementalIndexed)
			if err != nil {
				return nil, err
			}
			data = data[n:]
			sizeUpdateAllowed = false
			if !dropped {
				var appendErr error
				out, listSize, appendErr = appendDecoded(out, listSize, f, d.maxHeaderListSize)
				d.table.add(f)
				if appendErr != nil {
					return nil, appendErr
				}
			}

		case b&0xE0 == 0x20:
			if !sizeUpdateAllowed {
				return nil, newError(KindProtocolError, "table size update must open a block or follow another size update")
			}
			n, err := d.readTableSizeUpdate(data)
			if err != nil {
				return nil, err
			}
			data = data[n:]

		case b&0xF0 == 0x10:
			f, n, dropped, err := d.readLiteral(data, reprNeverIndexed)
			if err != nil {
				return nil, err
			}
			data = data[n:]
			sizeUpdateAllowed = false
			if !dropped {
				out, listSize, err = appendDecoded(out, listSize, f, d.maxHeaderListSize)
				if err != nil {
					return nil, err
				}
			}

		case b&0xF0 == 0x00:
			f, n, dropped, err := d.readLiteral(data, reprWithoutIndexing)
			if err != nil {
				return nil, err
			}
			data = data[n:]
			sizeUpdateAllowed = false
			if !dropped {
				out, listSize, err = appendDecoded(out, listSize, f, d.maxHeaderListSize)
				if err != nil {
					return nil, err
				}
			}

		default:
			return nil, newError(KindProtocolError, "unrecognized representation byte 0x%02x", b)
		}
	}
	return out, nil
}

func appendDecoded(out []HeaderField, listSize int, f HeaderField, maxHeaderListSize int) ([]HeaderField, int, error) {
	out = append(out, f)
	listSize += len(f.Name) + len(f.Value)
	if maxHeaderListSize > 0 && listSize > maxHeaderListSize {
		return nil, 0, newError(KindHeaderListTooLarge, "decoded header list exceeds %d bytes", maxHeaderListSize)
	}
	return out, listSize, nil
}

// readIndexed reads an Indexed Header Field representation. dropped is
// true only in lenient mode, when the index lies past the end of the
// dynamic table; index 0 is always a ProtocolError.
func (d *Decoder) readIndexed(data []byte) (HeaderField, int, bool, error) {
	idx, n, err := decodeInteger(data, 7)
	if err != nil {
		return HeaderField{}, 0, false, err
	}
	if idx != 0 && int(idx) > d.maxIndex() && d.lenientIndexing {
		return HeaderField{}, n, true, nil
	}
	if idx == 0 || int(idx) > d.maxIndex() {
		return HeaderField{}, 0, false, newError(KindProtocolError, "indexed representation references invalid index %d", idx)
	}
	f, ok := d.get(int(idx))
	if !ok {
		return HeaderField{}, 0, false, newError(KindProtocolError, "indexed representation references invalid index %d", idx)
	}
	return f, n, false, nil
}

// readLiteral reads one of the three literal representations starting
// at data[0]. dropped is true only in lenient mode, when the
// indexed-name reference was out of range; the caller must still
// advance past the full representation but must not emit the field.
func (d *Decoder) readLiteral(data []byte, kind representationKind) (f HeaderField, consumed int, dropped bool, err error) {
	prefixBits := 4
	if kind == reprIncrementalIndexed {
		prefixBits = 6
	}

	idx, n, err := decodeInteger(data, prefixBits)
	if err != nil {
		return HeaderField{}, 0, false, err
	}
	rest := data[n:]

	var name string
	if idx == 0 {
		var nameLen int
		name, nameLen, err = readString(rest, 0)
		if err != nil {
			return HeaderField{}, 0, false, err
		}
		rest = rest[nameLen:]
		n += nameLen
	} else {
		if int(idx) > d.maxIndex() {
			if d.lenientIndexing {
				dropped = true
			} else {
				return HeaderField{}, 0, false, newError(KindProtocolError, "literal representation references invalid name index %d", idx)
			}
		} else {
			entry, _ := d.get(int(idx))
			name = entry.Name
		}
	}

	value, valueLen, err := readString(rest, 0)
	if err != nil {
		return HeaderField{}, 0, false, err
	}
	n += valueLen

	return HeaderField{Name: name, Value: value}, n, dropped, nil
}

func (d *Decoder) readTableSizeUpdate(data []byte) (int, error) {
	newSize, n, err := decodeInteger(data, 5)
	if err != nil {
		return 0, err
	}
	if newSize > uint64(d.maxTableSize) {
		return 0, newError(KindProtocolError, "table size update %d exceeds max table size %d", newSize, d.maxTableSize)
	}
	d.table.resize(uint32(newSize))
	return n, nil
}
