package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gitnlsn/ncas/expr"
	"github.com/gitnlsn/ncas/internal/script"
	"github.com/gitnlsn/ncas/rewrite"
	"github.com/pkg/errors"
	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"
)

var EvalCmd = &cobra.Command{
	Use:   "eval 'expr.Add(expr.Var(\"a\"), expr.Int(1))'",
	Short: "Expand, simplify and evaluate an expression built by a Go snippet",
	Long: `The snippet is interpreted as Go code with the expr and rewrite packages
imported. Free variables can be given values with --bind.`,
	RunE:         runEval,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var (
	evalFlags    *simplifierFlags
	evalBindings *map[string]string
	evalDump     *bool
)

func init() {
	evalFlags = addSimplifierFlags(EvalCmd)
	evalBindings = EvalCmd.Flags().StringToString("bind", nil, "variable values, as name=value")
	evalDump = EvalCmd.Flags().Bool("dump", false, "dump the simplified tree and its measures")
}

func runEval(cmd *cobra.Command, args []string) error {
	simplifier, err := evalFlags.setup()
	if err != nil {
		return err
	}
	bindings, err := parseBindings(*evalBindings)
	if err != nil {
		return err
	}

	input, err := script.Eval(args[0])
	if err != nil {
		return fmt.Errorf("could not build expression: %w", err)
	}
	logger.Debug("evaluating", "input", input.String(), "bindings", len(bindings))

	simplified := simplifier.Simplify(input)
	out := cmd.OutOrStdout()
	printField(out, "input", input.String())
	printField(out, "expanded", rewrite.Expand(input).String())
	printField(out, "simplified", simplified.String())
	printField(out, "variables", strings.Join(expr.Variables(simplified), ", "))

	value, err := expr.EvaluateWith(simplified, bindings)
	var unevaluable expr.UnevaluableError
	switch {
	case errors.As(err, &unevaluable):
		printField(out, "value", "unbound "+unevaluable.Expr.String())
	case err != nil:
		return fmt.Errorf("could not evaluate expression: %w", err)
	default:
		printField(out, "value", strconv.FormatFloat(value, 'g', -1, 64))
	}

	if *evalDump {
		dumper := litter.Options{HidePrivateFields: false, Separator: " "}
		_, _ = fmt.Fprintln(out, dumper.Sdump(simplified))
		_, _ = fmt.Fprintln(out, litter.Sdump(expr.Measure(simplified)))
	}
	return nil
}

func printField(out io.Writer, name, value string) {
	_, _ = fmt.Fprintf(out, "%-11s %s\n", name+":", value)
}

func parseBindings(raw map[string]string) (expr.Bindings, error) {
	bindings := make(expr.Bindings, len(raw))
	for name, value := range raw {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("could not parse value of '%s': %w", name, err)
		}
		bindings[name] = f
	}
	return bindings, nil
}
