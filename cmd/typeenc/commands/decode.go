// Package commands implements the typeenc subcommands.
package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	typeenc "github.com/appsworld/go-typeenc"
)

var encColor = color.New(color.FgHiBlack)

// NewDecodeCommand returns the decode subcommand, which renders one or more
// type encodings as C-like declarations.
func NewDecodeCommand() *cobra.Command {
	var showEncoding bool

	cmd := &cobra.Command{
		Use:   "decode <encoding>...",
		Short: "Decode type encodings into C-like declarations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, enc := range args {
				typ := typeenc.Decode(enc)
				if typ == nil {
					return fmt.Errorf("malformed type encoding %q", enc)
				}
				if showEncoding {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", encColor.Sprint(typ.Encode()), typ.Decl())
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), typ.Decl())
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showEncoding, "encoding", "e", false, "print the re-encoded form alongside the declaration")

	return cmd
}
