package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/liantichess/variants/internal/config"
	"github.com/liantichess/variants/internal/manifest"
)

var (
	showResolved bool
	showFormat   string
)

// showCmd prints one variant definition.
var showCmd = &cobra.Command{
	Use:   "show <variant>",
	Short: "Show one variant definition",
	Long: `Show the definition of a single variant.

With --resolved, options inherited from sections defined earlier in the
document are merged in and the chain is reported (yaml output).

Examples:
  variants show antihouse
  variants show antiatomic --format yaml
  variants show mychild --resolved`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeVariantNames,
	RunE:              runShow,
}

func init() {
	showCmd.Flags().BoolVarP(&showResolved, "resolved", "r", false, "Flatten inheritance from earlier sections")
	showCmd.Flags().StringVar(&showFormat, "format", "ini", "Output format: ini or yaml")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if showFormat != "ini" && showFormat != "yaml" {
		return fmt.Errorf("unknown format %q (want ini or yaml)", showFormat)
	}

	return withDocument(func(_ *config.Config, doc *manifest.Document, _ string) error {
		name := args[0]
		section, ok := doc.Lookup(name)
		if !ok {
			return fmt.Errorf("%w: %s", manifest.ErrUnknownVariant, name)
		}

		out := cmd.OutOrStdout()

		if showResolved {
			res, err := manifest.Resolve(doc, name)
			if err != nil {
				return err
			}
			if showFormat == "yaml" {
				return writeYAML(out, res)
			}
			flat := &manifest.Section{Name: res.Name, Base: res.Builtin, Comment: section.Comment}
			for _, key := range sortedKeys(res.Options) {
				flat.Options = append(flat.Options, manifest.Option{Key: key, Value: res.Options[key]})
			}
			return manifest.Render(&manifest.Document{Sections: []*manifest.Section{flat}}, out)
		}

		if showFormat == "yaml" {
			return writeYAML(out, section)
		}
		return manifest.Render(&manifest.Document{Sections: []*manifest.Section{section}}, out)
	})
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// completeVariantNames offers section names for shell completion.
func completeVariantNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	_ = withDocument(func(_ *config.Config, doc *manifest.Document, _ string) error {
		names = doc.Names()
		return nil
	})
	return names, cobra.ShellCompDirectiveNoFileComp
}
