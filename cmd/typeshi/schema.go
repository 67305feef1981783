package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/seven7ty/typeshi/internal/query"
	"github.com/seven7ty/typeshi/pkg/jsonschema"
	"github.com/seven7ty/typeshi/pkg/typeshi"
)

func newSchemaCmd(a *app) *cobra.Command {
	var (
		selectExpr string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "schema [flags] <input>",
		Short: "Print the inferred schema of a document as JSON Schema",
		Long: `Schema infers the record schema of the input document and prints it as a
JSON Schema (draft 2020-12). The document is validated against the result and
the command fails if it does not match.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.cfg.GenerateOptions()
			if err != nil {
				return err
			}
			category, err := parseFormat(format)
			if err != nil {
				return err
			}
			if selectExpr != "" {
				if err := query.Validate(selectExpr); err != nil {
					return err
				}
			}

			tree, err := a.loadTree(args[0], cmd.InOrStdin(), category, selectExpr)
			if err != nil {
				return err
			}
			rec, err := typeshi.Infer(tree, opts)
			if err != nil {
				return err
			}

			schema := jsonschema.FromRecord(rec)
			result, err := jsonschema.Verify(schema, tree)
			if err != nil {
				return err
			}
			if !result.Valid {
				for _, msg := range result.Errors {
					slog.Error("validation error", slog.String("error", msg))
				}
				return fmt.Errorf("%s does not validate against its inferred schema", args[0])
			}

			data, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("serializing schema: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().StringVar(&selectExpr, "select", "", "jq path expression selecting the object to describe")
	cmd.Flags().StringVar(&format, "format", "", "Input format: json or yaml (default: detected)")
	addGenerationFlags(cmd, a.cfg)
	return cmd
}
