package registry

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// initialCapacity pre-sizes the entry slice. Function listings for
// complete titles run to roughly 110k rows.
const initialCapacity = 110_000

// maxLineBytes bounds a single record. Names are short identifiers, so
// anything near this limit is a corrupt file, not a real row.
const maxLineBytes = 1 << 20

// Loader reads and validates registry files.
type Loader struct {
	base   uint64
	logger zerolog.Logger
}

// NewLoader returns a Loader that rebases on-disk addresses onto base.
func NewLoader(base uint64, logger zerolog.Logger) *Loader {
	return &Loader{
		base:   base,
		logger: logger.With().Str("component", "registry").Logger(),
	}
}

// Load reads, parses and validates the registry at path. Entries keep
// their file order. An empty file yields zero entries and no error; any
// parse or validation failure aborts the whole load with no partial
// result.
func (l *Loader) Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, numNames, err := l.parse(f)
	if err != nil {
		return nil, err
	}
	if err := l.validate(entries, numNames); err != nil {
		return nil, err
	}

	l.logger.Debug().
		Int("entries", len(entries)).
		Str("path", path).
		Msg("Loaded function registry")

	return entries, nil
}

// parse reads the header and all data rows. It also counts named entries
// so validate can size its name set in one allocation.
func (l *Loader) parse(r io.Reader) ([]Entry, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNumber := 0
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, 0, fmt.Errorf("failed to read registry: %w", err)
		}
		// No header row at all. Treat the file as an empty registry.
		return []Entry{}, 0, nil
	}
	lineNumber++

	var header [recordFields]string
	if err := splitRecord(scanner.Text(), &header); err != nil || header != csvHeader {
		return nil, 0, fmt.Errorf("%w: first row must be the header %q; listings in the old format are not supported",
			ErrFormat, strings.Join(csvHeader[:], ","))
	}

	entries := make([]Entry, 0, initialCapacity)
	numNames := 0
	var fields [recordFields]string
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if line == "" {
			// Blank lines are separators, not records.
			continue
		}
		if err := splitRecord(line, &fields); err != nil {
			return nil, 0, fmt.Errorf("failed to parse record at line %d: %w", lineNumber, err)
		}
		entry, err := DecodeRecord(fields[:], l.base)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to parse record at line %d: %w", lineNumber, err)
		}
		if entry.Name != "" {
			numNames++
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read registry: %w", err)
	}

	return entries, numNames, nil
}

// validate enforces the registry invariants: every decompiled function
// carries a name, and no non-empty name appears twice. Duplicates are
// collected across the whole pass and reported as one error.
func (l *Loader) validate(entries []Entry, numNames int) error {
	knownNames := make(map[string]bool, numNames)
	var duplicates []string
	for i := range entries {
		entry := &entries[i]
		if entry.IsDecompiled() && entry.Name == "" {
			return fmt.Errorf("%w: function at 0x%016x is marked %c but has an empty name",
				ErrMissingName, ToAbsolute(entry.Addr, l.base), entry.Status.Code())
		}
		if entry.Name == "" {
			continue
		}
		if knownNames[entry.Name] {
			duplicates = append(duplicates, entry.Name)
			continue
		}
		knownNames[entry.Name] = true
	}
	if len(duplicates) > 0 {
		return &DuplicateNamesError{Names: duplicates}
	}
	return nil
}
