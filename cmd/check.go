package cmd

import (
	"fmt"
	"strings"

	"github.com/gitnlsn/ncas/expr"
	"github.com/gitnlsn/ncas/internal/script"
	"github.com/gitnlsn/ncas/ncaserr"
	"github.com/gitnlsn/ncas/rewrite"
	"github.com/gitnlsn/ncas/util"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var CheckCmd = &cobra.Command{
	Use:   "check suite.yaml",
	Short: "Check a suite of identities between scripted expressions",
	Long: `A suite is a YAML list of cases:

  - name: square of a sum
    lhs: expr.Pow(expr.Add(expr.Var("a"), expr.Var("b")), expr.Int(2))
    rhs: expr.NewAddition(expr.Pow(expr.Var("a"), expr.Int(2)), expr.Mul(expr.Int(2), expr.Mul(expr.Var("a"), expr.Var("b"))), expr.Pow(expr.Var("b"), expr.Int(2)))
    relation: equal

relation is one of equal (the default), not-equal, greater, lesser,
greater-equal, lesser-equal or structural.`,
	RunE:         runCheck,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

// Fs is where suites are read from
var Fs = afero.NewOsFs()

var checkFlags *simplifierFlags

func init() {
	checkFlags = addSimplifierFlags(CheckCmd)
}

type identityCase struct {
	Name     string `yaml:"name"`
	Lhs      string `yaml:"lhs"`
	Rhs      string `yaml:"rhs"`
	Relation string `yaml:"relation"`
}

// relations maps a relation name to the comparison signs that satisfy it
var relations = map[string]func(sign int) bool{
	"equal":         func(sign int) bool { return sign == 0 },
	"not-equal":     func(sign int) bool { return sign != 0 },
	"greater":       func(sign int) bool { return sign > 0 },
	"lesser":        func(sign int) bool { return sign < 0 },
	"greater-equal": func(sign int) bool { return sign >= 0 },
	"lesser-equal":  func(sign int) bool { return sign <= 0 },
}

const structural = "structural"

func runCheck(cmd *cobra.Command, args []string) error {
	simplifier, err := checkFlags.setup()
	if err != nil {
		return err
	}
	suite, err := loadSuite(Fs, args[0])
	if err != nil {
		return err
	}
	interpreter, err := script.New()
	if err != nil {
		return err
	}

	var errs *ncaserr.Errors
	failed := 0
	out := cmd.OutOrStdout()
	for _, c := range suite {
		if caseErrs := checkCase(interpreter, simplifier, c); caseErrs.HasError() {
			failed++
			errs = errs.Merge(caseErrs)
			_, _ = fmt.Fprintf(out, "FAIL %s: %s\n", c.Name, strings.Join(util.MapSlice(caseErrs.Errors(), ncaserr.FormatWithCode), "; "))
			continue
		}
		_, _ = fmt.Fprintf(out, "ok   %s\n", c.Name)
	}
	if errs.HasError() {
		logger.Debug("suite failed", "errors", errs)
		return fmt.Errorf("%d of %d identities failed: %w", failed, len(suite), errs.ErrorOrNil())
	}
	return nil
}

func loadSuite(fs afero.Fs, path string) ([]identityCase, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, ncaserr.New(ncaserr.NewSuite{Path: path, From: err})
	}
	var suite []identityCase
	if err := yaml.Unmarshal(content, &suite); err != nil {
		return nil, ncaserr.New(ncaserr.NewSuite{Path: path, From: err})
	}
	for i, c := range suite {
		if c.Relation == "" {
			suite[i].Relation = "equal"
		}
		if _, ok := relations[suite[i].Relation]; !ok && suite[i].Relation != structural {
			return nil, ncaserr.New(ncaserr.NewSuite{Path: path, From: fmt.Errorf("case '%s' has unknown relation '%s'", c.Name, c.Relation)})
		}
		if c.Name == "" {
			suite[i].Name = fmt.Sprintf("case %d", i+1)
		}
	}
	return suite, nil
}

// checkCase reports the script errors of both sides together, and otherwise
// at most one relation error
func checkCase(interpreter *script.Interpreter, simplifier *rewrite.Simplifier, c identityCase) *ncaserr.Errors {
	var errs *ncaserr.Errors
	lhs, err := interpreter.Eval(c.Lhs)
	if err != nil {
		errs = errs.With(ncaserr.AsError(err))
	}
	rhs, err := interpreter.Eval(c.Rhs)
	if err != nil {
		errs = errs.With(ncaserr.AsError(err))
	}
	if errs.HasError() {
		return errs
	}
	mismatch := ncaserr.NewIdentityMismatch{Name: c.Name, Relation: c.Relation, Lhs: lhs.String(), Rhs: rhs.String()}

	if c.Relation == structural {
		if !expr.Equal(lhs, rhs) {
			return errs.With(mismatch)
		}
		return nil
	}
	sign, ok := simplifier.Compare(lhs, rhs)
	if !ok {
		difference := simplifier.Simplify(expr.NewSubtraction(lhs, rhs))
		return errs.With(ncaserr.NewUndefinedComparison{Name: c.Name, Difference: difference.String()})
	}
	if !relations[c.Relation](sign) {
		return errs.With(mismatch)
	}
	return nil
}
