package hpack

// indexingTable exposes a unified 1-based index space over the shared
// static table (1..StaticTableSize) and an owned dynamic table
// (StaticTableSize+1.. newest first).
type indexingTable struct {
	dynamic *dynamicTable
}

func newIndexingTable(maxDynamicSize uint32) *indexingTable {
	return &indexingTable{dynamic: newDynamicTable(maxDynamicSize)}
}

func (t *indexingTable) get(index int) (HeaderField, bool) {
	if index < 1 {
		return HeaderField{}, false
	}
	if index <= StaticTableSize {
		return staticTable[index], true
	}
	return t.dynamic.at(index - StaticTableSize)
}

func (t *indexingTable) add(f HeaderField) { t.dynamic.add(f) }

func (t *indexingTable) resize(newMax uint32) { t.dynamic.resize(newMax) }

func (t *indexingTable) reset() { t.dynamic.Reset() }

// lookupHint is the precomputed (name,value) -> relative dynamic
// index map an encoder may build once per EncodeBlock call, per the
// §4.6 performance contract. It never overrides static-first
// precedence; findIndex/findNameIndex still search the static table
// first regardless of whether a hint is supplied.
type lookupHint map[HeaderField]int

func (t *indexingTable) buildLookupHint() lookupHint {
	hint := make(lookupHint, t.dynamic.count)
	for i := 0; i < t.dynamic.count; i++ {
		pos := (t.dynamic.head + i) % len(t.dynamic.entries)
		f := t.dynamic.entries[pos]
		if _, exists := hint[f]; !exists {
			hint[f] = i + 1
		}
	}
	return hint
}

// findIndex returns the smallest 1-based index (static preferred,
// then newest-first dynamic) matching both name and value, or 0.
func (t *indexingTable) findIndex(name, value string, hint lookupHint) int {
	if idx := findStaticIndex(name, value); idx > 0 {
		return idx
	}
	if hint != nil {
		if rel, ok := hint[HeaderField{Name: name, Value: value}]; ok {
			return StaticTableSize + rel
		}
		return 0
	}
	if rel := t.dynamic.findIndex(name, value); rel > 0 {
		return StaticTableSize + rel
	}
	return 0
}

// findNameIndex returns the smallest 1-based index (static preferred,
// then newest-first dynamic) matching name regardless of value, or 0.
func (t *indexingTable) findNameIndex(name string) int {
	if idx := findStaticNameIndex(name); idx > 0 {
		return idx
	}
	if rel := t.dynamic.findNameIndex(name); rel > 0 {
		return StaticTableSize + rel
	}
	return 0
}

func (t *indexingTable) maxIndex() int {
	return StaticTableSize + t.dynamic.count
}
