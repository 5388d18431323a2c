package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	typeenc "github.com/appsworld/go-typeenc"
)

// NewMethodCommand returns the method subcommand, which splits a method-type
// encoding into its return/argument slots.
func NewMethodCommand() *cobra.Command {
	var selector string

	cmd := &cobra.Command{
		Use:   "method <encoding>",
		Short: "Split a method-type encoding into return type and arguments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig := typeenc.ParseSignature(args[0])
			if sig.Return.TypeEncoding == "" {
				return fmt.Errorf("malformed method encoding %q", args[0])
			}

			out := cmd.OutOrStdout()
			if selector != "" {
				fmt.Fprintln(out, sig.Decl(selector))
			}
			if sig.StackSize != nil {
				fmt.Fprintf(out, "stack size: %d\n", *sig.StackSize)
			}

			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.AppendHeader(table.Row{"#", "Encoding", "Type", "Offset"})
			t.AppendRow(table.Row{"ret", sig.Return.TypeEncoding, sig.Return.Decl(), ""})
			for i, arg := range sig.Arguments {
				offset := ""
				if arg.Offset != nil {
					offset = fmt.Sprintf("%d", *arg.Offset)
				}
				t.AppendRow(table.Row{i, arg.TypeEncoding, arg.Decl(), offset})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&selector, "selector", "s", "", "render a method declaration for this selector")

	return cmd
}
