package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"github.com/decompkit/symreg/internal/errors"
	"github.com/decompkit/symreg/pkg/registry"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	// FormatText outputs human-readable text
	FormatText OutputFormat = "text"
	// FormatJSON outputs JSON
	FormatJSON OutputFormat = "json"
	// FormatCSV outputs CSV
	FormatCSV OutputFormat = "csv"
)

// parseFormat validates a --format flag value.
func parseFormat(value string) (OutputFormat, error) {
	switch format := OutputFormat(value); format {
	case FormatText, FormatJSON, FormatCSV:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or csv)", value)
	}
}

// entryRow is the report shape of one registry entry. Addresses are
// rendered in absolute form, the way they appear in the listing file.
type entryRow struct {
	Address string `json:"address"`
	Quality string `json:"quality"`
	Size    uint32 `json:"size"`
	Name    string `json:"name,omitempty"`
	Status  string `json:"status"`
}

func newEntryRow(e *registry.Entry, base uint64) entryRow {
	return entryRow{
		Address: fmt.Sprintf("0x%016x", registry.ToAbsolute(e.Addr, base)),
		Quality: string(e.Status.Code()),
		Size:    e.Size,
		Name:    e.Name,
		Status:  e.Status.Description(),
	}
}

// formatEntries renders registry entries in the requested format.
func formatEntries(format OutputFormat, base uint64, entries []*registry.Entry) (string, error) {
	rows := make([]entryRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, newEntryRow(e, base))
	}

	switch format {
	case FormatJSON:
		return formatJSON(rows)
	case FormatCSV:
		records := make([][]string, 0, len(rows)+1)
		records = append(records, []string{"address", "quality", "size", "name", "status"})
		for _, row := range rows {
			records = append(records, []string{
				row.Address,
				row.Quality,
				strconv.FormatUint(uint64(row.Size), 10),
				row.Name,
				row.Status,
			})
		}
		return formatCSV(records)
	default:
		return formatEntriesText(rows), nil
	}
}

// nolint: errcheck
func formatEntriesText(rows []entryRow) string {
	if len(rows) == 0 {
		return "No matching functions found.\n"
	}

	var buf strings.Builder
	w := tabwriter.NewWriter(&buf, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ADDRESS\tQUALITY\tSIZE\tNAME\tSTATUS")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", row.Address, row.Quality, row.Size, row.Name, row.Status)
	}
	w.Flush()
	return buf.String()
}

// tallyRow is one per-status line of the progress report.
type tallyRow struct {
	Status string `json:"status"`
	Code   string `json:"code"`
	Count  int    `json:"count"`
	Bytes  uint64 `json:"bytes"`
}

// tallyReport is the full progress report.
type tallyReport struct {
	Statuses        []tallyRow `json:"statuses"`
	Total           int        `json:"total_functions"`
	TotalBytes      uint64     `json:"total_bytes"`
	Decompiled      int        `json:"decompiled_functions"`
	DecompiledBytes uint64     `json:"decompiled_bytes"`
	CountPercent    float64    `json:"decompiled_percent"`
	BytesPercent    float64    `json:"decompiled_bytes_percent"`
}

func newTallyReport(tally registry.Tally) tallyReport {
	report := tallyReport{
		Statuses:        make([]tallyRow, 0, len(tally.Counts)),
		Total:           tally.Total(),
		TotalBytes:      tally.TotalBytes(),
		Decompiled:      tally.Decompiled(),
		DecompiledBytes: tally.DecompiledBytes(),
	}
	for s := range tally.Counts {
		status := registry.Status(s)
		report.Statuses = append(report.Statuses, tallyRow{
			Status: status.Description(),
			Code:   string(status.Code()),
			Count:  tally.Counts[s],
			Bytes:  tally.Bytes[s],
		})
	}
	if report.Total > 0 {
		report.CountPercent = float64(report.Decompiled) * 100 / float64(report.Total)
	}
	if report.TotalBytes > 0 {
		report.BytesPercent = float64(report.DecompiledBytes) * 100 / float64(report.TotalBytes)
	}
	return report
}

// formatTally renders the progress report in the requested format.
func formatTally(format OutputFormat, report tallyReport) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(report)
	case FormatCSV:
		records := make([][]string, 0, len(report.Statuses)+1)
		records = append(records, []string{"status", "code", "count", "bytes"})
		for _, row := range report.Statuses {
			records = append(records, []string{
				row.Status,
				row.Code,
				strconv.Itoa(row.Count),
				strconv.FormatUint(row.Bytes, 10),
			})
		}
		return formatCSV(records)
	default:
		return formatTallyText(report), nil
	}
}

// nolint: errcheck
func formatTallyText(report tallyReport) string {
	var buf strings.Builder
	w := tabwriter.NewWriter(&buf, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "STATUS\tCODE\tFUNCTIONS\tBYTES")
	for _, row := range report.Statuses {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", row.Status, row.Code, row.Count, row.Bytes)
	}
	w.Flush()

	fmt.Fprintf(&buf, "\nTotal:      %d functions, %d bytes\n", report.Total, report.TotalBytes)
	fmt.Fprintf(&buf, "Decompiled: %d functions (%.2f%%), %d bytes (%.2f%%)\n",
		report.Decompiled, report.CountPercent, report.DecompiledBytes, report.BytesPercent)
	return buf.String()
}

func formatJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data) + "\n", nil
}

func formatCSV(records [][]string) (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return "", fmt.Errorf("failed to write CSV: %w", err)
	}
	return buf.String(), nil
}

// writeReport sends rendered output to stdout, or to path when the
// --output flag was given.
func writeReport(logger zerolog.Logger, stdout io.Writer, path, output string) error {
	if path == "" {
		_, err := fmt.Fprint(stdout, output)
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer errors.DeferClose(logger, f, "failed to close report file")

	if _, err := f.WriteString(output); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	logger.Debug().Str("path", path).Msg("Wrote report")
	return nil
}
