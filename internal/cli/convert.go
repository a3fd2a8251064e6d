package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/archpad/archpad/pkg/codec"
	"github.com/archpad/archpad/pkg/dsl"
	"github.com/archpad/archpad/pkg/errors"
	"github.com/archpad/archpad/pkg/export"
	"github.com/archpad/archpad/pkg/model"
)

// Output formats accepted by convert --to.
const (
	formatDSL       = "dsl"
	formatFlowchart = "flowchart"
	formatJSON      = "json"
	formatDOT       = "dot"
)

// newConvertCmd creates the convert command: auto-detect the input
// format and re-emit the diagram in another.
func newConvertCmd() *cobra.Command {
	var (
		to     string
		output string
	)

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a diagram between interchange formats",
		Long: `Convert a diagram between interchange formats.

The input format is auto-detected: structured diagram JSON or the
nested-group DSL. The input may be a file path or an http(s) URL;
reads from stdin when neither is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			var input string
			if len(args) > 0 {
				input = args[0]
			}
			text, err := readInput(cmd.Context(), input)
			if err != nil {
				return err
			}

			d, detected, err := importDiagram(text)
			if err != nil {
				return err
			}
			logger.Debug("detected input format", "format", detected)

			out, err := renderFormat(d, to)
			if err != nil {
				return err
			}

			prog.done(fmt.Sprintf("Converted %d nodes, %d groups, %d edges to %s",
				len(d.Nodes), len(d.Groups), len(d.Edges), to))
			return writeOutput(output, []byte(out))
		},
	}

	cmd.Flags().StringVar(&to, "to", formatDSL, "output format: dsl, flowchart, json, dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// renderFormat emits the diagram in the requested output format.
func renderFormat(d *model.Diagram, to string) (string, error) {
	switch to {
	case formatDSL:
		return dsl.Emit(d), nil
	case formatFlowchart:
		return dsl.EmitFlowchart(d), nil
	case formatDOT:
		return export.ToDOT(d), nil
	case formatJSON:
		data, err := json.MarshalIndent(codec.Optimize(d), "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unknown output format %q", to)
	}
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
