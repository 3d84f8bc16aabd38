package registry

// NameIndex answers "which named function lives at this relative address"
// in constant time.
type NameIndex map[uint64]*Entry

// BuildNameIndex indexes every named entry by relative address. Unnamed
// entries are skipped. The index holds references into entries and is not
// updated incrementally; rebuild it whenever the registry changes.
func BuildNameIndex(entries []Entry) NameIndex {
	index := make(NameIndex, len(entries))
	for i := range entries {
		if entries[i].Name == "" {
			continue
		}
		index[entries[i].Addr] = &entries[i]
	}
	return index
}
