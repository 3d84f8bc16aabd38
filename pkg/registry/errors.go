package registry

import (
	"errors"
	"strings"
)

// Errors reported while loading or encoding a registry. Failures wrap one
// of these sentinels; classify them with errors.Is.
var (
	// ErrFormat reports a structurally invalid file: a bad header row, a
	// row with the wrong number of fields, or a name that cannot be
	// written without breaking the row format.
	ErrFormat = errors.New("invalid registry format")

	// ErrParse reports a malformed numeric field.
	ErrParse = errors.New("malformed field")

	// ErrUnknownStatus reports a status column with a character outside
	// the fixed code set.
	ErrUnknownStatus = errors.New("unknown status code")

	// ErrMissingStatus reports an empty status column.
	ErrMissingStatus = errors.New("missing status code")

	// ErrMissingName reports a decompiled function with an empty name.
	ErrMissingName = errors.New("missing function name")

	// ErrAddressRange reports an absolute address below the configured
	// base.
	ErrAddressRange = errors.New("address out of range")
)

// DuplicateNamesError reports every function name that appears more than
// once in a registry. Validation collects all repeats in one pass instead
// of failing on the first, so a single fix cycle sees the full list.
type DuplicateNamesError struct {
	// Names holds one item per repeated occurrence, in file order.
	Names []string
}

func (e *DuplicateNamesError) Error() string {
	return "duplicate function names: " + strings.Join(e.Names, ", ")
}
