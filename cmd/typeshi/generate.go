package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/seven7ty/typeshi/internal/query"
	"github.com/seven7ty/typeshi/pkg/contenttype"
	"github.com/seven7ty/typeshi/pkg/typeshi"
)

type generateFlags struct {
	output     string
	outDir     string
	selectExpr string
	format     string
	dump       bool
}

func newGenerateCmd(a *app) *cobra.Command {
	var fl generateFlags

	cmd := &cobra.Command{
		Use:   "generate [flags] <input>...",
		Short: "Write the TypedDict declaration module of example documents",
		Long: `Generate infers the record schema of each input document and renders it as
Python TypedDict declarations. A single input is written to stdout or --output;
several inputs need --out-dir and are processed concurrently. Use "-" to read
from stdin.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.cfg.GenerateOptions()
			if err != nil {
				return err
			}
			format, err := parseFormat(fl.format)
			if err != nil {
				return err
			}
			if fl.selectExpr != "" {
				if err := query.Validate(fl.selectExpr); err != nil {
					return err
				}
			}

			if fl.outDir != "" {
				if fl.output != "" {
					return errors.New("--output and --out-dir are mutually exclusive")
				}
				return a.generateBatch(cmd.Context(), args, fl, format, opts)
			}
			if len(args) > 1 {
				return errors.New("multiple inputs require --out-dir")
			}

			tree, err := a.loadTree(args[0], cmd.InOrStdin(), format, fl.selectExpr)
			if err != nil {
				return err
			}
			res, err := typeshi.Generate(tree, opts)
			if err != nil {
				return err
			}
			if fl.dump {
				spew.Fdump(cmd.ErrOrStderr(), res.Record)
			}

			if fl.output == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), res.Text)
				return err
			}
			if err := typeshi.WriteDeclarationModule(fl.output, res, opts); err != nil {
				return err
			}
			slog.Info("declaration module written",
				slog.String("output", fl.output),
				slog.Int("records", len(res.Module.Declarations)),
			)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&fl.output, "output", "o", "", "Write the module to this file instead of stdout")
	f.StringVar(&fl.outDir, "out-dir", "", "Write one module per input into this directory")
	f.StringVar(&fl.selectExpr, "select", "", "jq path expression selecting the object to describe")
	f.StringVar(&fl.format, "format", "", "Input format: json or yaml (default: detected)")
	f.BoolVar(&fl.dump, "dump", false, "Dump the inferred record tree to stderr")

	cfg := a.cfg
	addGenerationFlags(cmd, cfg)
	f.BoolVar(&cfg.Header, "header", cfg.Header, "Emit the version header comment")
	f.StringVar(&cfg.BaseClass, "base-class", cfg.BaseClass, "Dotted base class of every declaration, or none")
	f.StringVar(&cfg.HomeModule, "home-module", cfg.HomeModule, "Module path for types defined in __main__")
	f.IntVar(&cfg.LiteralWrapWidth, "wrap-width", cfg.LiteralWrapWidth, "Line width for wrapping long string literals; 0 disables")
	f.BoolVar(&cfg.NoNonPyWarning, "no-nonpy-warning", cfg.NoNonPyWarning, "Do not warn when an output path does not end in .py")
	f.IntVarP(&cfg.Workers, "workers", "j", cfg.Workers, "Inputs processed concurrently with --out-dir")

	return cmd
}

// generateBatch writes one module per input into fl.outDir.
func (a *app) generateBatch(ctx context.Context, inputs []string, fl generateFlags, format contenttype.Category, opts typeshi.Options) error {
	targets := make(map[string]string, len(inputs))
	for _, in := range inputs {
		if in == stdinPath {
			return errors.New("stdin input cannot be combined with --out-dir")
		}
		out := filepath.Join(fl.outDir, moduleFileName(in))
		if prev, ok := targets[out]; ok {
			return fmt.Errorf("inputs %s and %s both map to %s", prev, in, out)
		}
		targets[out] = in
	}
	if err := os.MkdirAll(fl.outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	if a.cfg.Workers > 0 {
		g.SetLimit(a.cfg.Workers)
	}

	for _, in := range inputs {
		out := filepath.Join(fl.outDir, moduleFileName(in))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if fl.selectExpr == "" && format == contenttype.Unknown {
				return typeshi.SaveDeclarationModule(ctx, in, out, opts)
			}

			tree, err := a.loadTree(in, nil, format, fl.selectExpr)
			if err != nil {
				return err
			}
			res, err := typeshi.Generate(tree, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			return typeshi.WriteDeclarationModule(out, res, opts)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("declaration modules written",
		slog.Int("count", len(inputs)),
		slog.String("dir", fl.outDir),
	)
	return nil
}
