// Package registry reads, validates and serves the function listing of a
// matching-decompilation project.
//
// The listing is one flat delimited file. Every row describes a single
// function in the target binary: its absolute address, a one-letter
// decompilation status, its size in bytes and the name it carries in the
// decompiled source. Loader parses and validates a whole file into an
// ordered Entry slice; Writer emits a slice back out in the same row
// format. NameIndex and FindFuzzy answer address and name queries against
// a loaded snapshot, and Cache keeps a snapshot pinned to a fingerprint
// of the backing file so long-lived tools reload only on change.
package registry
