package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wscript-lang/runtime/pkg/settings"
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Load settings and hand a script off to the parser/evaluator",
	Long: `run wires the runtime kernel's process-level state (settings, logging)
and locates the script file, then hands off to a parser/evaluator package
that is out of this repository's scope. It exists so the kernel's process
wiring has somewhere to live and can be exercised end to end once a
parser/evaluator is linked in.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scriptPath := args[0]
		if _, err := os.Stat(scriptPath); err != nil {
			return fmt.Errorf("script not found: %w", err)
		}
		if settingsPath != "" {
			if _, err := settings.Load(settingsPath); err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}
		}
		return fmt.Errorf("no parser/evaluator is linked into this binary; " +
			"wscriptrun only wires the runtime kernel's process-level state")
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
