package registry

import (
	"fmt"
	"strconv"
	"strings"
)

// recordFields is the fixed column count of the registry file.
const recordFields = 4

// csvHeader is the exact header row every registry file must start with.
var csvHeader = [recordFields]string{"Address", "Quality", "Size", "Name"}

// DecodeRecord parses the four columns of one data row into an Entry. The
// on-disk address is absolute; the decoded entry is rebased onto base.
func DecodeRecord(fields []string, base uint64) (Entry, error) {
	if len(fields) != recordFields {
		return Entry{}, fmt.Errorf("%w: expected %d fields, got %d", ErrFormat, recordFields, len(fields))
	}

	absolute, err := ParseHex(fields[0])
	if err != nil {
		return Entry{}, err
	}
	addr, err := ToRelative(absolute, base)
	if err != nil {
		return Entry{}, err
	}

	if fields[1] == "" {
		return Entry{}, ErrMissingStatus
	}
	if len(fields[1]) != 1 {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownStatus, fields[1])
	}
	status, err := ParseStatusCode(fields[1][0])
	if err != nil {
		return Entry{}, err
	}

	size, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: invalid size %q", ErrParse, fields[2])
	}

	return Entry{
		Addr:   addr,
		Size:   uint32(size),
		Name:   fields[3],
		Status: status,
	}, nil
}

// EncodeRecord renders an Entry back into its four file columns. The
// address is written absolute as 0x plus 16 lowercase hex digits and the
// size is zero-padded to six digits, so rows stay byte-stable across
// rewrites.
func EncodeRecord(e *Entry, base uint64) [recordFields]string {
	return [recordFields]string{
		fmt.Sprintf("0x%016x", ToAbsolute(e.Addr, base)),
		string(e.Status.Code()),
		fmt.Sprintf("%06d", e.Size),
		e.Name,
	}
}

// splitRecord cuts a raw line into exactly recordFields comma-separated
// columns. The format has no quoting, so a comma always separates fields.
func splitRecord(line string, fields *[recordFields]string) error {
	for i := 0; i < recordFields-1; i++ {
		j := strings.IndexByte(line, ',')
		if j < 0 {
			return fmt.Errorf("%w: expected %d fields, got %d", ErrFormat, recordFields, i+1)
		}
		fields[i] = line[:j]
		line = line[j+1:]
	}
	if extra := strings.Count(line, ","); extra > 0 {
		return fmt.Errorf("%w: expected %d fields, got %d", ErrFormat, recordFields, recordFields+extra)
	}
	fields[recordFields-1] = line
	return nil
}
