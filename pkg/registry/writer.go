package registry

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Writer persists registry snapshots. Every write is a full-file rewrite
// in entry order; there is no in-place patching or append mode.
type Writer struct {
	base   uint64
	logger zerolog.Logger
}

// NewWriter returns a Writer that writes addresses as absolute values
// against base.
func NewWriter(base uint64, logger zerolog.Logger) *Writer {
	return &Writer{
		base:   base,
		logger: logger.With().Str("component", "registry").Logger(),
	}
}

// Write replaces the file at path with the header row followed by one
// encoded row per entry.
func (w *Writer) Write(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create registry: %w", err)
	}

	if err := w.writeAll(f, entries); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close registry: %w", err)
	}

	w.logger.Debug().
		Int("entries", len(entries)).
		Str("path", path).
		Msg("Wrote function registry")

	return nil
}

func (w *Writer) writeAll(f *os.File, entries []Entry) error {
	// bufio write errors are sticky, so Flush reports the first failure.
	bw := bufio.NewWriterSize(f, 64*1024)
	_, _ = fmt.Fprintf(bw, "%s\n", strings.Join(csvHeader[:], ","))
	for i := range entries {
		entry := &entries[i]
		if strings.ContainsAny(entry.Name, ",\r\n") {
			return fmt.Errorf("%w: name %q contains a delimiter or newline", ErrFormat, entry.Name)
		}
		record := EncodeRecord(entry, w.base)
		_, _ = fmt.Fprintf(bw, "%s,%s,%s,%s\n", record[0], record[1], record[2], record[3])
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write registry: %w", err)
	}
	return nil
}
