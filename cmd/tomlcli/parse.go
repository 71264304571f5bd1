package tomlcli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kvconf/tomlv04/tomlfile"
	"github.com/kvconf/tomlv04/tomlparse"
	"github.com/kvconf/tomlv04/tomlprint"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a TOML file and print it back out",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root, err := tomlfile.ParseFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := tomlprint.Fprint(os.Stdout, root); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

var parseStdinCmd = &cobra.Command{
	Use:   "parse-stdin",
	Short: "Parse a TOML document from stdin and emit its JSON-tagged conformance form",
	Run: func(cmd *cobra.Command, args []string) {
		root, err := tomlparse.Parse(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(conform(root)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}
