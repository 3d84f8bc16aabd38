package registry

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHex parses hexadecimal text with or without a leading "0x" prefix.
func ParseHex(text string) (uint64, error) {
	value, err := strconv.ParseUint(strings.TrimPrefix(text, "0x"), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid hex value %q", ErrParse, text)
	}
	return value, nil
}

// ToRelative rebases an absolute file address onto base. Addresses below
// the base cannot be represented and are rejected.
func ToRelative(absolute, base uint64) (uint64, error) {
	if absolute < base {
		return 0, fmt.Errorf("%w: 0x%x is below base 0x%x", ErrAddressRange, absolute, base)
	}
	return absolute - base, nil
}

// ToAbsolute converts a base-relative address back to its absolute form.
func ToAbsolute(relative, base uint64) uint64 {
	return relative + base
}
