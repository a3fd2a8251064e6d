package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/archpad/archpad/pkg/cache"
	"github.com/archpad/archpad/pkg/export"
)

// renderCacheTTL bounds how long rendered SVGs are kept. Keys are
// content-addressed, so the TTL only limits disk growth.
const renderCacheTTL = 30 * 24 * time.Hour

// newRenderCmd creates the render command: diagram to SVG via Graphviz,
// with a content-addressed file cache.
func newRenderCmd(cfg *Config) *cobra.Command {
	var (
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a diagram to SVG via Graphviz",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			prog := newProgress(logger)

			var input string
			if len(args) > 0 {
				input = args[0]
			}
			text, err := readInput(ctx, input)
			if err != nil {
				return err
			}
			d, _, err := importDiagram(text)
			if err != nil {
				return err
			}
			dot := export.ToDOT(d)

			store := cache.NewNullCache()
			if !noCache {
				if fc, err := cache.NewFileCache(cfg.cacheDir()); err == nil {
					store = fc
				} else {
					logger.Debug("cache unavailable, rendering uncached", "err", err)
				}
			}
			defer store.Close()

			key := cache.RenderKey("svg", []byte(dot))
			svg, hit, err := store.Get(ctx, key)
			if err != nil || !hit {
				svg, err = export.RenderSVG(ctx, dot)
				if err != nil {
					return fmt.Errorf("render: %w", err)
				}
				if err := store.Set(ctx, key, svg, renderCacheTTL); err != nil {
					logger.Debug("cache write failed", "err", err)
				}
				prog.done("Rendered SVG")
			} else {
				prog.done("Rendered SVG (cached)")
			}

			if output == "" {
				output = "diagram.svg"
			}
			return writeOutput(output, svg)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default diagram.svg)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")
	return cmd
}
