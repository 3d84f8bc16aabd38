package registry

import (
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/decompkit/symreg/pkg/demangle"
)

// parallelThreshold is the entry count below which scans stay sequential.
// Spawning workers costs more than scanning a few thousand names.
const parallelThreshold = 4096

// FindFuzzy resolves query to an entry in two phases, cheapest first.
// Phase one scans for an exact name match. Phase two, entered only when
// phase one finds nothing, demangles each entry's name and tests whether
// query is a substring of the demangled form. Names that do not demangle
// never match.
//
// Both phases scan disjoint partitions of entries concurrently and stop
// at the first hit any worker reports. When several entries qualify,
// which one is returned depends on scheduling: callers get some matching
// entry, not the positionally first one. Returns nil when neither phase
// matches.
func FindFuzzy(entries []Entry, query string) *Entry {
	if match := scan(entries, func(e *Entry) bool { return e.Name == query }); match != nil {
		return match
	}

	// Demangling every candidate is far more expensive than a plain
	// string comparison, so it only runs once the exact pass comes up
	// empty.
	return scan(entries, func(e *Entry) bool {
		return strings.Contains(demangle.Filter(e.Name), query)
	})
}

// scan returns a pointer to some entry satisfying match, or nil. Large
// inputs are split across one goroutine per CPU; workers poll for a
// winner between entries and finish their current entry before stopping.
func scan(entries []Entry, match func(*Entry) bool) *Entry {
	workers := runtime.GOMAXPROCS(0)
	if len(entries) < parallelThreshold || workers < 2 {
		for i := range entries {
			if match(&entries[i]) {
				return &entries[i]
			}
		}
		return nil
	}

	chunk := (len(entries) + workers - 1) / workers
	var (
		wg    sync.WaitGroup
		found atomic.Pointer[Entry]
	)
	for start := 0; start < len(entries); start += chunk {
		part := entries[start:min(start+chunk, len(entries))]
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range part {
				if found.Load() != nil {
					// Another worker already found a match.
					return
				}
				if match(&part[i]) {
					found.CompareAndSwap(nil, &part[i])
					return
				}
			}
		}()
	}
	wg.Wait()

	return found.Load()
}
