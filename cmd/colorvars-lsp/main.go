package main

import (
	"os"

	"github.com/sketch-hq/color-variables-migrator/internal/lsp"
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	var verbosity int
	cmd := &cobra.Command{
		Use:     "colorvars-lsp",
		Short:   "Language server for color document files",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return lsp.NewServer(version, verbosity).Run()
		},
	}
	cmd.Flags().IntVarP(&verbosity, "verbosity", "v", 1, "log verbosity (0 notice, 1 info, 2 debug)")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
