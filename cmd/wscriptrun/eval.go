package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wscript-lang/runtime/pkg/value"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expr>",
	Short: "Evaluate a literal value-producing expression and print its display form",
	Long: `eval stands in for the invoke_eval_script boundary without reimplementing
a parser: it recognizes the handful of literal forms the value model itself
defines (numbers, quoted strings, true/false, and Empty) and round-trips
them through pkg/value's Display contract. A real parser/evaluator package
outside this repository's scope would replace this with full re-entry into
the language.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := evalLiteral(args[0])
		if err != nil {
			return err
		}
		fmt.Println(v.Display())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

// evalLiteral parses the handful of literal forms pkg/value defines
// directly, with no operators, identifiers, or calls.
func evalLiteral(src string) (value.Value, error) {
	src = strings.TrimSpace(src)
	switch {
	case src == "":
		return value.Empty, nil
	case src == "true":
		return value.Bool(true), nil
	case src == "false":
		return value.Bool(false), nil
	case len(src) >= 2 && src[0] == '"' && src[len(src)-1] == '"':
		return value.String(src[1 : len(src)-1]), nil
	default:
		f, err := strconv.ParseFloat(src, 64)
		if err != nil {
			return value.Empty, fmt.Errorf("not a literal this kernel-only build can evaluate: %q", src)
		}
		return value.Num(f), nil
	}
}
