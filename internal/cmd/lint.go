package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liantichess/variants/internal/manifest"
	"github.com/liantichess/variants/internal/ui"
)

var lintStrict bool

// lintCmd checks definitions against the engine schema.
var lintCmd = &cobra.Command{
	Use:   "lint [file]",
	Short: "Check definitions against the engine schema",
	Long: `Check variant definitions before handing them to the engine.

Errors (exit status 1):
  - duplicate section names
  - base variants that are neither built in nor defined earlier
  - unknown option keys
  - values that do not match the option's type

Warnings:
  - options set more than once in a section
  - sections that override nothing
  - sections that redefine a built-in variant

Examples:
  variants lint                       # Lint the built-in definitions
  variants lint client/variants.ini   # Lint a file
  variants lint --strict              # Fail on warnings too`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLint,
}

func init() {
	lintCmd.Flags().BoolVar(&lintStrict, "strict", false, "Treat warnings as errors")

	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.IniFile = args[0]
	}

	doc, source, err := loadDocument(cfg)
	if err != nil {
		return err
	}

	ui.Header("Linting %d variants from %s", len(doc.Sections), source)
	ui.Step(1, "Parsed %s", source)
	ui.Step(2, "Checking bases and options against the engine schema")

	issues := manifest.Validate(doc)
	var errs, warns int
	for _, issue := range issues {
		if issue.Severity == manifest.SeverityError {
			ui.Error("%s", issue)
			errs++
		} else {
			ui.Warning("%s", issue)
			warns++
		}
	}

	if errs > 0 || (lintStrict && warns > 0) {
		return fmt.Errorf("lint failed: %d error(s), %d warning(s)", errs, warns)
	}
	if warns > 0 {
		ui.Yellow.Printf("Passed with %d warning(s)\n", warns)
		return nil
	}
	ui.Success("All %d variants are valid", len(doc.Sections))
	return nil
}
