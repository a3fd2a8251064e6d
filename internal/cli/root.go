package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/archpad/archpad/pkg/buildinfo"
)

// Execute runs the archpad CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, loads the
// TOML config, configures logging based on the --verbose flag, and
// executes the command tree. The logger is attached to the context and
// accessible to all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configFile string
		cfg        Config
	)

	root := &cobra.Command{
		Use:          "archpad",
		Short:        "archpad converts and shares service-architecture diagrams",
		Long:         `archpad is the interchange tool for service-architecture diagrams: it converts between the nested-group DSL, mermaid flowcharts, Graphviz DOT, and the structured JSON form, and packs whole diagrams into URL share links.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))

			var err error
			cfg, err = loadConfig(configFile)
			return err
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ~/.config/archpad/config.toml)")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newShareCmd(&cfg))
	root.AddCommand(newOpenCmd())
	root.AddCommand(newInspectCmd(&cfg))
	root.AddCommand(newRenderCmd(&cfg))
	root.AddCommand(newServeCmd(&cfg))

	return root.ExecuteContext(ctx)
}
