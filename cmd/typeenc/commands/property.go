package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	typeenc "github.com/appsworld/go-typeenc"
)

// NewPropertyCommand returns the property subcommand, which decodes a runtime
// property attribute string.
func NewPropertyCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "property <attributes>",
		Short: "Decode a property attribute string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prop := typeenc.ParseProperty(args[0])
			if prop.TypeEncoding == "" {
				return fmt.Errorf("attribute string %q carries no type encoding", args[0])
			}
			if name == "" {
				name = strings.TrimPrefix(prop.IvarName, "_")
			}
			if name == "" {
				name = "property"
			}
			fmt.Fprintln(cmd.OutOrStdout(), prop.Decl(name))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "property name to use in the declaration")

	return cmd
}
