package registry

// Tally aggregates entry counts and byte totals per status.
type Tally struct {
	Counts [numStatuses]int
	Bytes  [numStatuses]uint64
}

// TallyEntries rolls up per-status counts and sizes for a snapshot.
func TallyEntries(entries []Entry) Tally {
	var t Tally
	for i := range entries {
		t.Counts[entries[i].Status]++
		t.Bytes[entries[i].Status] += uint64(entries[i].Size)
	}
	return t
}

// Total returns the number of entries counted.
func (t *Tally) Total() int {
	n := 0
	for _, c := range t.Counts {
		n += c
	}
	return n
}

// TotalBytes returns the summed size of all entries.
func (t *Tally) TotalBytes() uint64 {
	var n uint64
	for _, b := range t.Bytes {
		n += b
	}
	return n
}

// Decompiled returns the number of entries with a decompiled status.
func (t *Tally) Decompiled() int {
	n := 0
	for s, c := range t.Counts {
		if Status(s).IsDecompiled() {
			n += c
		}
	}
	return n
}

// DecompiledBytes returns the summed size of entries with a decompiled
// status.
func (t *Tally) DecompiledBytes() uint64 {
	var n uint64
	for s, b := range t.Bytes {
		if Status(s).IsDecompiled() {
			n += b
		}
	}
	return n
}
