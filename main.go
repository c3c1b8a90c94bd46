//go:build !(js || wasm)

package main

import (
	"os"

	"github.com/gitnlsn/ncas/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "ncas [subcommand]",
	Short:        "ncas\n a small symbolic algebra kernel: canonical forms, expansion and simplification",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.EvalCmd)
	rootCmd.AddCommand(cmd.CheckCmd)
}
