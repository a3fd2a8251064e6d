package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archpad/archpad/pkg/codec"
	"github.com/archpad/archpad/pkg/errors"
)

// newShareCmd creates the share command: compress a diagram into a URL
// share link.
func newShareCmd(cfg *Config) *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   "share [file]",
		Short: "Pack a diagram into a URL share link",
		Long: `Pack a diagram into a URL share link.

The diagram is default-stripped, compressed, and embedded in the data
query parameter of the configured base URL. The input format is
auto-detected (structured JSON or DSL). Reads from stdin when no file
is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) > 0 {
				input = args[0]
			}
			text, err := readInput(cmd.Context(), input)
			if err != nil {
				return err
			}
			d, _, err := importDiagram(text)
			if err != nil {
				return err
			}

			if base == "" {
				base = cfg.BaseURL
			}
			link, err := codec.BuildShareLink(d, base)
			if err != nil {
				return err
			}

			report, err := codec.CheckSizeBudget(d, cfg.BudgetKB)
			if err != nil {
				return err
			}
			if !report.WithinBudget {
				fmt.Printf("%s %s\n",
					styleWarning.Render(iconWarning),
					styleWarning.Render(fmt.Sprintf("link payload is %.2f KB, over the %.0f KB budget", report.CompressedSizeKB, cfg.BudgetKB)))
			}

			fmt.Println(styleLink.Render(link))
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "base URL for the link (default from config)")
	return cmd
}

// newOpenCmd creates the open command: decode a share link back into
// structured JSON.
func newOpenCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "open <url>",
		Short: "Decode a share link back into a diagram",
		Long: `Decode a share link back into a diagram.

Accepts a full share URL. Legacy links produced by the old encoder are
decoded through the fallback path automatically.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := codec.ParseShareLink(args[0])
			if d == nil {
				return errors.New(errors.ErrCodeNotFound, "no decodable diagram in %q", args[0])
			}

			data, err := json.MarshalIndent(d, "", "  ")
			if err != nil {
				return err
			}
			return writeOutput(output, append(data, '\n'))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
