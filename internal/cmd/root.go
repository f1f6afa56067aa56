// Package cmd provides the CLI commands for variants.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/liantichess/variants/internal/ui"
)

const version = "0.3.0"

var (
	iniFile string
	noColor bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "variants",
	Short: "Antichess-family variant definitions for the variant engine",
	Long: `variants - antichess hybrids for the variant engine

Ships the INI definitions of the antichess family hybrids (anti-antichess,
antiatomic, antihouse, coffeehouse, coffee-hill, atomic giveaway hill) and
the tools to inspect, lint and export them.

DEFINITIONS
  list                  List defined variants
  show <variant>        Show one definition
    --resolved, -r      Flatten inheritance from earlier sections
    --format ini|yaml   Output format
  lint [file]           Check definitions against the engine schema
  export                Write the definitions to stdout or a file
    --output, -o <file> Write atomically to a file
  drift                 Compare with the copy committed in git

TOURNAMENTS
  schedule              Plan upcoming arenas
    --date YYYY-MM-DD   Plan as of a given day
    --days <n>          Days ahead to plan

MAINTENANCE
  update                Update this binary to the latest release

Definitions come from the built-in payload unless --file, the ini key of
variants.yaml, or VARIANTS_INI names another file.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.Configure(noColor)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Fatal("%v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&iniFile, "file", "f", "", "Variants INI file (default: built-in definitions)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.SetVersionTemplate("variants version {{.Version}}\n")
}
