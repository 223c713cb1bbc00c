package main

import (
	"fmt"
	"os"

	migrator "github.com/sketch-hq/color-variables-migrator"
	"github.com/sketch-hq/color-variables-migrator/internal/config"
	"github.com/sketch-hq/color-variables-migrator/internal/format"
	"github.com/sketch-hq/color-variables-migrator/internal/migrate"
	"github.com/sketch-hq/color-variables-migrator/internal/report"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	flagConfig      string
	flagOut         string
	flagDryRun      bool
	flagAll         bool
	flagLayerColors bool
	flagStyleColors bool
	flagSimplify    bool
	flagGenerate    bool
	flagCheck       bool
	flagVerbose     int
	version         = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:     "colorvars",
	Short:   "Move the colors of a design document onto its color swatches",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(flagVerbose, nil)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate <file>",
	Short: "Replace independent colors with swatch references",
	Long: `Run the enabled migration phases over a document file, in this order:
simplify styles, replace layer colors, replace style colors, generate missing swatches.
With no phase enabled the migration is cancelled and nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runMigrate,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format document files",
	Long:  "Format one or more document files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "log more (repeat for debug output)")

	migrateCmd.Flags().StringVar(&flagConfig, "config", "", "HCL file with a migrate block selecting the phases")
	migrateCmd.Flags().StringVarP(&flagOut, "out", "o", "", "write the migrated document here instead of in place")
	migrateCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "report what would change without writing")
	migrateCmd.Flags().BoolVar(&flagAll, "all", false, "enable every phase")
	migrateCmd.Flags().BoolVar(&flagLayerColors, "replace-layer-colors", false, "point layer colors at matching swatches")
	migrateCmd.Flags().BoolVar(&flagStyleColors, "replace-style-colors", false, "point shared style colors at matching swatches")
	migrateCmd.Flags().BoolVar(&flagSimplify, "simplify-styles", false, "turn single-color layer styles into swatches")
	migrateCmd.Flags().BoolVar(&flagGenerate, "generate-missing-swatches", false, "create swatches for colors that have none")

	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

// applyFlags overrides opts with the phase flags the user set explicitly.
// --all enables every phase before the individual flags apply.
func applyFlags(opts config.Options, changed func(name string) bool) config.Options {
	if changed("all") && flagAll {
		opts = config.All()
	}
	if changed("replace-layer-colors") {
		opts.ReplaceLayerColors = flagLayerColors
	}
	if changed("replace-style-colors") {
		opts.ReplaceStyleColors = flagStyleColors
	}
	if changed("simplify-styles") {
		opts.SimplifyStyles = flagSimplify
	}
	if changed("generate-missing-swatches") {
		opts.GenerateMissingSwatches = flagGenerate
	}
	return opts
}

func runMigrate(cmd *cobra.Command, args []string) error {
	var opts config.Options
	if flagConfig != "" {
		var err error
		if opts, err = config.Load(flagConfig); err != nil {
			return err
		}
	}
	opts = applyFlags(opts, cmd.Flags().Changed)

	notify := migrate.NotifierFunc(func(msg string) {
		commonlog.GetLogger("colorvars").Notice(msg)
	})
	job := &migrator.Job{
		Input:    args[0],
		Output:   flagOut,
		Options:  opts,
		DryRun:   flagDryRun,
		Notifier: notify,
	}

	res, err := job.Run()
	if res != nil {
		if rerr := report.Render(cmd.OutOrStdout(), res); rerr != nil {
			return rerr
		}
	}
	if err != nil {
		return err
	}
	if flagDryRun && res.State == migrate.Done {
		fmt.Fprintln(cmd.OutOrStdout(), "Dry run: nothing written")
	}
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted, err := format.Format(content)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
