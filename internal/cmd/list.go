package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/liantichess/variants/internal/config"
	"github.com/liantichess/variants/internal/manifest"
	"github.com/liantichess/variants/internal/ui"
)

// listCmd lists the defined variants.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List defined variants",
	Long: `List every variant section with its base variant, number of overrides
and description.

Examples:
  variants list
  variants list -f client/variants.ini`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	return withDocument(func(_ *config.Config, doc *manifest.Document, source string) error {
		ui.Header("%d variants from %s", len(doc.Sections), source)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tBASE\tOPTIONS\tDESCRIPTION")
		for _, s := range doc.Sections {
			base := s.Base
			if base == "" {
				base = "-"
			}
			desc, _, _ := strings.Cut(s.Comment, "\n")
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.Name, base, len(s.Options), desc)
		}
		return w.Flush()
	})
}
