// Package demangle turns mangled C++ symbol names back into readable
// declarations.
package demangle

import (
	"errors"
	"fmt"
	"strings"

	cxx "github.com/ianlancetaylor/demangle"
)

// ErrNotMangled reports a name without the external mangling marker.
var ErrNotMangled = errors.New("not an external mangled name")

// Demangle converts an Itanium-mangled symbol into a readable C++
// declaration. Only names beginning with "_Z" are candidates; anything
// else fails with ErrNotMangled.
func Demangle(name string) (string, error) {
	if !strings.HasPrefix(name, "_Z") {
		return "", fmt.Errorf("%w: %q", ErrNotMangled, name)
	}
	out, err := cxx.ToString(name)
	if err != nil {
		return "", fmt.Errorf("failed to demangle %q: %w", name, err)
	}
	return out, nil
}

// Filter returns the demangled form of name, or "" when name does not
// demangle. Substring matching against the result treats undemanglable
// names as never matching.
func Filter(name string) string {
	out, err := Demangle(name)
	if err != nil {
		return ""
	}
	return out
}
