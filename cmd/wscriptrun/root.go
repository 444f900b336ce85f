package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var settingsPath string

var rootCmd = &cobra.Command{
	Use:   "wscriptrun",
	Short: "Run and evaluate Windows desktop-automation scripts",
	Long: `wscriptrun loads the runtime kernel's settings record, constructs the
value/environment/builtin-dispatch machinery, and hands scripts off to a
parser and evaluator outside this binary's scope.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().
		StringVar(&settingsPath, "settings", "", "path to a YAML settings file")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
