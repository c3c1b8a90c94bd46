package cmd

import (
	"log/slog"

	"github.com/gitnlsn/ncas/internal/log"
	"github.com/gitnlsn/ncas/rewrite"
	"github.com/spf13/cobra"
)

// simplifierFlags are shared by every command that simplifies expressions
type simplifierFlags struct {
	logLevel    *int
	logSections *[]string
	policy      *string
	maxPasses   *int
}

func addSimplifierFlags(cmd *cobra.Command) *simplifierFlags {
	return &simplifierFlags{
		logLevel:    cmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level"),
		logSections: cmd.Flags().StringSlice("log-section", nil, "log sections to show below warning level (simplify, simplify.expand, compare, script, expr, cmd)"),
		policy:      cmd.Flags().String("policy", rewrite.MaxOrder{}.Name(), "how to choose among rewrite alternatives: max-order or smallest"),
		maxPasses:   cmd.Flags().Int("max-passes", 0, "bound on simplification passes, 0 to run until nothing changes"),
	}
}

// setup applies the logging flags and builds the configured Simplifier
func (f *simplifierFlags) setup() (*rewrite.Simplifier, error) {
	log.SetLevel(slog.Level(*f.logLevel))
	if len(*f.logSections) > 0 {
		log.EnableSections(*f.logSections...)
	}
	policy, err := rewrite.PolicyByName(*f.policy)
	if err != nil {
		return nil, err
	}
	return rewrite.NewSimplifier(rewrite.Config{
		Policy:    policy,
		MaxPasses: *f.maxPasses,
	}), nil
}

var logger = log.DefaultLogger.With("section", "cmd")
