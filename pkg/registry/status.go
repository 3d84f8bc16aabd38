package registry

import "fmt"

// Status classifies how far along a function's decompilation is.
type Status uint8

const (
	// StatusMatching marks a function whose reimplementation compiles to
	// the exact original bytes.
	StatusMatching Status = iota
	// StatusNonMatchingMinor marks a function that is functionally
	// equivalent with minor instruction differences.
	StatusNonMatchingMinor
	// StatusNonMatchingMajor marks a function with major differences from
	// the original code.
	StatusNonMatchingMajor
	// StatusNotDecompiled marks a function nobody has started on.
	StatusNotDecompiled
	// StatusWip marks a function that is actively being worked on.
	StatusWip
	// StatusLibrary marks a statically linked library function that is
	// not meant to be decompiled.
	StatusLibrary
)

// numStatuses is the size of the closed status set.
const numStatuses = 6

var statusCodes = [numStatuses]byte{'O', 'm', 'M', 'U', 'W', 'L'}

var statusDescriptions = [numStatuses]string{
	"matching",
	"non-matching (minor)",
	"non-matching (major)",
	"not decompiled",
	"WIP",
	"library function",
}

// ParseStatusCode maps a single-character file code to its Status.
func ParseStatusCode(code byte) (Status, error) {
	switch code {
	case 'O':
		return StatusMatching, nil
	case 'm':
		return StatusNonMatchingMinor, nil
	case 'M':
		return StatusNonMatchingMajor, nil
	case 'U':
		return StatusNotDecompiled, nil
	case 'W':
		return StatusWip, nil
	case 'L':
		return StatusLibrary, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, string(code))
	}
}

// Code returns the single-character code the file format uses for s.
func (s Status) Code() byte {
	return statusCodes[s]
}

// Description returns the human-readable form shown in reports.
func (s Status) Description() string {
	return statusDescriptions[s]
}

// IsDecompiled reports whether s counts as decompiled. Everything except
// NotDecompiled and Library does, including work in progress.
func (s Status) IsDecompiled() bool {
	return s != StatusNotDecompiled && s != StatusLibrary
}

func (s Status) String() string {
	return s.Description()
}
