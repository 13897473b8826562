package hpack

// dynamicTable is a FIFO, byte-budgeted ring buffer of HeaderField
// entries, newest at relative index 1. RFC 7541 Section 2.3.2.

const maxTableSizeCap = (1 << 32) - 1

type dynamicTable struct {
	entries []HeaderField // ring buffer
	head    int           // index of the newest entry
	count   int
	size    uint32
	maxSize uint32
}

func newDynamicTable(maxSize uint32) *dynamicTable {
	capacity := int(maxSize / 64)
	if capacity < 16 {
		capacity = 16
	}
	return &dynamicTable{
		entries: make([]HeaderField, capacity),
		maxSize: maxSize,
	}
}

func (dt *dynamicTable) Len() int        { return dt.count }
func (dt *dynamicTable) Size() uint32    { return dt.size }
func (dt *dynamicTable) MaxSize() uint32 { return dt.maxSize }

// at returns the entry at 1-based relative index i, where 1 is the
// newest entry.
func (dt *dynamicTable) at(i int) (HeaderField, bool) {
	if i < 1 || i > dt.count {
		return HeaderField{}, false
	}
	pos := (dt.head + i - 1) % len(dt.entries)
	return dt.entries[pos], true
}

// add inserts f at the head of the table, evicting from the tail as
// needed to respect maxSize. If f alone is larger than maxSize, the
// entire table is cleared and f is discarded — this is explicitly
// permitted by RFC 7541 Section 4.4.
func (dt *dynamicTable) add(f HeaderField) {
	fsize := f.size()
	if fsize > dt.maxSize {
		dt.Reset()
		return
	}
	for dt.size+fsize > dt.maxSize && dt.count > 0 {
		dt.evictOldest()
	}
	if dt.count == len(dt.entries) {
		dt.grow()
	}
	dt.head = (dt.head - 1 + len(dt.entries)) % len(dt.entries)
	dt.entries[dt.head] = f
	dt.count++
	dt.size += fsize
}

// resize changes maxSize, evicting from the tail until current_size
// is within the new budget.
func (dt *dynamicTable) resize(newMax uint32) {
	dt.maxSize = newMax
	for dt.size > dt.maxSize && dt.count > 0 {
		dt.evictOldest()
	}
}

func (dt *dynamicTable) evictOldest() {
	if dt.count == 0 {
		return
	}
	tail := (dt.head + dt.count - 1) % len(dt.entries)
	dt.size -= dt.entries[tail].size()
	dt.entries[tail] = HeaderField{}
	dt.count--
}

func (dt *dynamicTable) grow() {
	newEntries := make([]HeaderField, len(dt.entries)*2)
	for i := 0; i < dt.count; i++ {
		pos := (dt.head + i) % len(dt.entries)
		newEntries[i] = dt.entries[pos]
	}
	dt.entries = newEntries
	dt.head = 0
}

// Reset clears every entry from the table without changing maxSize.
func (dt *dynamicTable) Reset() {
	for i := range dt.entries {
		dt.entries[i] = HeaderField{}
	}
	dt.head = 0
	dt.count = 0
	dt.size = 0
}

// findIndex returns the smallest 1-based relative index whose entry
// matches both name and value, newest first, or 0 if there is none.
func (dt *dynamicTable) findIndex(name, value string) int {
	for i := 0; i < dt.count; i++ {
		pos := (dt.head + i) % len(dt.entries)
		entry := dt.entries[pos]
		if entry.Name == name && entry.Value == value {
			return i + 1
		}
	}
	return 0
}

// findNameIndex returns the smallest 1-based relative index whose
// entry name matches, newest first, or 0 if there is none.
func (dt *dynamicTable) findNameIndex(name string) int {
	for i := 0; i < dt.count; i++ {
		pos := (dt.head + i) % len(dt.entries)
		if dt.entries[pos].Name == name {
			return i + 1
		}
	}
	return 0
}
