package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liantichess/variants/internal/config"
	"github.com/liantichess/variants/internal/fileutil"
	"github.com/liantichess/variants/internal/lock"
	"github.com/liantichess/variants/internal/manifest"
	"github.com/liantichess/variants/internal/ui"
	"github.com/liantichess/variants/internal/variants"
)

var (
	exportOutput string
	exportRaw    bool
	exportBackup bool
	exportForce  bool
)

// exportCmd writes the definitions for the engine.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the definitions to stdout or a file",
	Long: `Write the variant definitions in canonical INI form.

The definitions are linted first; export refuses to write a document with
lint errors unless --force is given. Files are written atomically under an
advisory lock (<file>.lock).

Examples:
  variants export                          # Print to stdout
  variants export -o engine/variants.ini   # Write a file
  variants export -o engine/variants.ini --backup
  variants export --raw                    # The built-in payload verbatim`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (prints to stdout if not set)")
	exportCmd.Flags().BoolVar(&exportRaw, "raw", false, "Write the built-in payload byte for byte")
	exportCmd.Flags().BoolVar(&exportBackup, "backup", false, "Keep the previous file as <file>.bak")
	exportCmd.Flags().BoolVar(&exportForce, "force", false, "Export even if lint reports errors")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	var data []byte
	if exportRaw {
		data = []byte(variants.Ini)
	} else {
		err := withDocument(func(_ *config.Config, doc *manifest.Document, source string) error {
			if issues := manifest.Validate(doc); manifest.HasErrors(issues) && !exportForce {
				return fmt.Errorf("%s has lint errors, run 'variants lint' or pass --force", source)
			}
			var buf bytes.Buffer
			if err := manifest.Render(doc, &buf); err != nil {
				return err
			}
			data = buf.Bytes()
			return nil
		})
		if err != nil {
			return err
		}
	}

	if exportOutput == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	ui.Step(1, "Rendered %d bytes", len(data))
	return lock.WithLock(exportOutput, func() error {
		if exportBackup {
			backup, err := fileutil.Backup(exportOutput)
			if err != nil {
				return err
			}
			if backup != "" {
				ui.Pawn("Saved previous file to %s", backup)
			}
		}
		ui.Step(2, "Writing %s", exportOutput)
		if err := fileutil.WriteFileAtomic(exportOutput, data, 0644); err != nil {
			return err
		}
		ui.Success("Wrote %s", exportOutput)
		return nil
	})
}
