package tomlcli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kvconf/tomlv04/tomlfile"
	"github.com/kvconf/tomlv04/tomlprint"
)

var (
	mergeAllowAdditions bool
	mergeWatch          bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge <base> <override>",
	Short: "Merge an override TOML document onto a base document and print the result",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		base, override := args[0], args[1]

		if mergeWatch {
			runMergeWatch(base, override)
			return
		}

		merged, err := tomlfile.ParseBaseAndOverride(base, override, mergeAllowAdditions)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := tomlprint.Fprint(os.Stdout, merged); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	mergeCmd.Flags().BoolVar(&mergeAllowAdditions, "allow-additions", true, "allow the override to introduce keys absent from the base")
	mergeCmd.Flags().BoolVar(&mergeWatch, "watch", false, "re-merge and reprint on every change to base or override, until interrupted")
}

// runMergeWatch prints the merged tree once up front, then again on every
// change delivered by the watcher, until SIGINT.
func runMergeWatch(base, override string) {
	w, err := tomlfile.Watch(base, override, mergeAllowAdditions)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer w.Close()

	if merged, err := tomlfile.ParseBaseAndOverride(base, override, mergeAllowAdditions); err == nil {
		tomlprint.Fprint(os.Stdout, merged)
	} else {
		fmt.Fprintln(os.Stderr, err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case result, ok := <-w.Updates():
			if !ok {
				return
			}
			if result.Err != nil {
				fmt.Fprintln(os.Stderr, result.Err)
				continue
			}
			if err := tomlprint.Fprint(os.Stdout, result.Table); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		case <-sigCh:
			return
		}
	}
}
