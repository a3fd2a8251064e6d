package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archpad/archpad/pkg/codec"
	"github.com/archpad/archpad/pkg/hierarchy"
)

// newInspectCmd creates the inspect command: entity counts, nesting
// depth, and encoded size against the configured budget.
func newInspectCmd(cfg *Config) *cobra.Command {
	var budgetKB float64

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Report diagram statistics and encoded size",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) > 0 {
				input = args[0]
			}
			text, err := readInput(cmd.Context(), input)
			if err != nil {
				return err
			}
			d, format, err := importDiagram(text)
			if err != nil {
				return err
			}

			if budgetKB == 0 {
				budgetKB = cfg.BudgetKB
			}
			report, err := codec.CheckSizeBudget(d, budgetKB)
			if err != nil {
				return err
			}

			maxDepth := 0
			for i := range d.Groups {
				if depth := hierarchy.DepthOf(d, d.Groups[i].ID); depth > maxDepth {
					maxDepth = depth
				}
			}

			fmt.Println(styleTitle.Render("Diagram"))
			printField("format", string(format))
			printField("nodes", fmt.Sprintf("%d", len(d.Nodes)))
			printField("groups", fmt.Sprintf("%d", len(d.Groups)))
			printField("edges", fmt.Sprintf("%d", len(d.Edges)))
			printField("max nesting depth", fmt.Sprintf("%d", maxDepth))
			printField("original size", fmt.Sprintf("%.2f KB", report.OriginalSizeKB))
			printField("compressed size", fmt.Sprintf("%.2f KB", report.CompressedSizeKB))

			if report.WithinBudget {
				fmt.Printf("%s %s\n", styleSuccess.Render(iconSuccess),
					styleSuccess.Render(fmt.Sprintf("within the %.0f KB share budget", budgetKB)))
			} else {
				fmt.Printf("%s %s\n", styleWarning.Render(iconWarning),
					styleWarning.Render(fmt.Sprintf("over the %.0f KB share budget", budgetKB)))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&budgetKB, "budget-kb", 0, "size budget in KB (default from config)")
	return cmd
}
