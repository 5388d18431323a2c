// Package main provides the entry point for the typeenc CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/appsworld/go-typeenc/cmd/typeenc/commands"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "typeenc",
		Short: "Decode Objective-C runtime type encodings",
		Long: `typeenc decodes Objective-C runtime type-encoding strings into
C-like declarations, splits method-type encodings, and decodes
property attribute strings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewDecodeCommand())
	rootCmd.AddCommand(commands.NewMethodCommand())
	rootCmd.AddCommand(commands.NewPropertyCommand())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "typeenc %s\n", version)
		},
	}
}
