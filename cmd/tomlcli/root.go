// Package tomlcli is the cobra command tree exposing the parser, printer,
// and file/merge front end as standalone tools: a file-to-TOML
// round-tripper, a stdin-to-JSON conformance driver, and a base/override
// merger.
package tomlcli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "toml",
	Short: "toml is a tool for parsing, printing, and merging TOML v0.4.0 documents.",
	Long:  "toml is a tool for parsing, printing, and merging TOML v0.4.0 documents. It can read a file, emit a JSON-tagged form for conformance testing, or merge an override document onto a base.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command, exiting the process with status 1 on
// any cobra-level error (flag parsing, unknown subcommand).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of toml",
	Long:  `All software has versions. This is toml's.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("toml v0.4.0 -- HEAD")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(parseStdinCmd)
	rootCmd.AddCommand(mergeCmd)
}
