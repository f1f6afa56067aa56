package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/liantichess/variants/internal/ui"
	"github.com/liantichess/variants/internal/update"
)

var updateCheck bool

// updateCmd updates the binary from GitHub releases.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update to the latest release",
	Long: `Check GitHub releases and replace this binary with the latest version.

Examples:
  variants update           # Download and install the latest release
  variants update --check   # Only report whether an update exists`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&updateCheck, "check", false, "Only check for a newer release")

	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ui.Info("Current version: %s (%s)", version, update.PlatformInfo())

	if updateCheck {
		rel, found, err := update.CheckForUpdate(ctx, version)
		if err != nil {
			return fmt.Errorf("check for update: %w", err)
		}
		if !found {
			ui.Success("Already up to date")
			return nil
		}
		ui.King("Version %s is available (published %s)", rel.Version, rel.PublishedAt)
		ui.Info("%s", rel.ReleaseURL)
		return nil
	}

	rel, err := update.Update(ctx, version)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	if rel == nil {
		ui.Success("Already up to date")
		return nil
	}
	ui.Success("Updated to %s", rel.Version)
	return nil
}
