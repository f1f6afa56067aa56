package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liantichess/variants/internal/config"
	"github.com/liantichess/variants/internal/gitsource"
	"github.com/liantichess/variants/internal/manifest"
	"github.com/liantichess/variants/internal/ui"
)

var (
	driftRepo     string
	driftRef      string
	driftPath     string
	driftExitCode bool
)

// driftCmd compares the definitions with the copy committed in git.
var driftCmd = &cobra.Command{
	Use:   "drift",
	Short: "Compare definitions with the copy committed in git",
	Long: `Compare the current definitions with a variants file committed in a git
repository, for example the copy the engine deployment reads.

Only effective definitions are compared: comments, ordering and repeated
keys are ignored.

Examples:
  variants drift --repo ../server --path engine/variants.ini
  variants drift --ref origin/main --exit-code`,
	Args: cobra.NoArgs,
	RunE: runDrift,
}

func init() {
	driftCmd.Flags().StringVar(&driftRepo, "repo", "", "Repository path (default: config, then current directory)")
	driftCmd.Flags().StringVar(&driftRef, "ref", "", "Revision to compare with (default: config, then HEAD)")
	driftCmd.Flags().StringVar(&driftPath, "path", "", "File inside the repository (default: config, then variants.ini)")
	driftCmd.Flags().BoolVar(&driftExitCode, "exit-code", false, "Fail when drift is found")

	rootCmd.AddCommand(driftCmd)
}

func runDrift(cmd *cobra.Command, args []string) error {
	return withDocument(func(cfg *config.Config, doc *manifest.Document, source string) error {
		repo := firstNonEmpty(driftRepo, cfg.Drift.Repo, ".")
		ref := firstNonEmpty(driftRef, cfg.Drift.Ref, "HEAD")
		path := firstNonEmpty(driftPath, cfg.Drift.Path, "variants.ini")

		data, rev, err := gitsource.ReadFile(repo, ref, path)
		if err != nil {
			return err
		}
		committed, err := manifest.Parse(data)
		if err != nil {
			return fmt.Errorf("%s@%s: %w", path, rev.Short(), err)
		}

		ui.Knight("Comparing %s@%s (%s) with %s", path, rev.Short(), rev.Ref, source)

		changes := manifest.Diff(committed, doc)
		if len(changes) == 0 {
			ui.Success("No drift")
			return nil
		}

		out := cmd.OutOrStdout()
		for _, c := range changes {
			fmt.Fprintln(out, formatChange(c))
		}

		if driftExitCode {
			return fmt.Errorf("%d difference(s) from %s@%s", len(changes), path, rev.Short())
		}
		ui.Warning("%d difference(s)", len(changes))
		return nil
	})
}

func formatChange(c manifest.Change) string {
	switch {
	case c.Key == "" && c.Kind == manifest.Added:
		return fmt.Sprintf("+ [%s]", c.New)
	case c.Key == "" && c.Kind == manifest.Removed:
		return fmt.Sprintf("- [%s]", c.Old)
	case c.Key == "":
		return fmt.Sprintf("~ [%s] base %s -> %s", c.Section, c.Old, c.New)
	case c.Kind == manifest.Added:
		return fmt.Sprintf("+ [%s] %s = %s", c.Section, c.Key, c.New)
	case c.Kind == manifest.Removed:
		return fmt.Sprintf("- [%s] %s = %s", c.Section, c.Key, c.Old)
	default:
		return fmt.Sprintf("~ [%s] %s = %s -> %s", c.Section, c.Key, c.Old, c.New)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
