package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seven7ty/typeshi/internal/config"
	"github.com/seven7ty/typeshi/internal/logging"
	"github.com/seven7ty/typeshi/pkg/typeshi"
)

// app carries the configuration shared by all commands.
type app struct {
	cfg        *config.Config
	logCleanup func() error
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	a := &app{cfg: cfg}

	root := &cobra.Command{
		Use:   "typeshi",
		Short: "Generate Python TypedDict declarations from example JSON or YAML",
		Long: `typeshi reads an example JSON or YAML document, infers the shape of every
nested object and writes a Python module of TypedDict classes describing it.`,
		Version:       typeshi.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// serve configures logging through the server facade
			if cmd.Name() == "serve" {
				return nil
			}
			cleanup, err := logging.Setup(logging.FromConfig(a.cfg))
			if err != nil {
				return fmt.Errorf("failed to setup logging: %w", err)
			}
			a.logCleanup = cleanup
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.logCleanup == nil {
				return nil
			}
			return a.logCleanup()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Logging level (debug, info, warn, error)")
	pf.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json)")
	pf.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Log file path; empty logs to stderr")

	root.AddCommand(
		newGenerateCmd(a),
		newSchemaCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

// addGenerationFlags binds the inference and rendering options of cfg to
// flags of cmd.
func addGenerationFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	f.StringVar(&cfg.ToplevelName, "name", cfg.ToplevelName, "Class name of the top-level record")
	f.BoolVar(&cfg.Literals, "literals", cfg.Literals, "Fold int, str and bool values into Literal types")
	f.BoolVar(&cfg.Total, "total", cfg.Total, "Mark every field as required; false adds total=False")
	f.IntVar(&cfg.MaxInputBytes, "max-input-bytes", cfg.MaxInputBytes, "Reject documents larger than this; 0 disables the limit")
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the generator version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "typeshi %s\n", typeshi.Version)
		},
	}
}
