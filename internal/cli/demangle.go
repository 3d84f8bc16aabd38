package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/decompkit/symreg/pkg/demangle"
)

// NewDemangleCmd creates the demangle command
func NewDemangleCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "demangle [name...]",
		Aliases: []string{"filt"},
		Short:   "Demangle C++ symbol names",
		Long: `Demangle one or more Itanium-mangled C++ names. With no arguments,
names are read from stdin one per line; lines that do not demangle
are passed through unchanged, like c++filt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return demangleStream(cmd.InOrStdin(), cmd.OutOrStdout())
			}

			for _, name := range args {
				readable, err := demangle.Demangle(name)
				if err != nil {
					return err
				}
				cmd.Println(readable)
			}
			return nil
		},
	}
}

// nolint: errcheck
func demangleStream(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if readable := demangle.Filter(line); readable != "" {
			fmt.Fprintln(w, readable)
		} else {
			fmt.Fprintln(w, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read names: %w", err)
	}
	return nil
}
