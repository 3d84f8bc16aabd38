package registry

// Entry is one function record in the registry.
type Entry struct {
	// Addr is the function's address relative to the configured base.
	Addr uint64
	// Size is the function's size in bytes.
	Size uint32
	// Name is the function's identifier in the decompiled source, or
	// empty for functions nobody has named yet.
	Name string
	// Status records how far along the function's decompilation is.
	Status Status
}

// IsDecompiled reports whether someone has produced source for this
// function. Everything except NotDecompiled and Library counts, including
// work-in-progress entries.
func (e Entry) IsDecompiled() bool {
	return e.Status.IsDecompiled()
}
