// Package constants defines shared configuration constants.
package constants

var (
	// ConfigFile is the project marker looked up by config discovery.
	ConfigFile = ".symreg.yaml"

	// DefaultRegistryPath is the function listing location relative to
	// the project root.
	DefaultRegistryPath = "data/functions.csv"

	// DefaultAddressBase is the load address of the target executable.
	// Addresses on disk are absolute; in memory they are relative to
	// this base.
	DefaultAddressBase uint64 = 0x71_0000_0000
)
