// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag/jsonutils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/statline/conform"
	"github.com/statline/conform/post"
	"github.com/statline/conform/schema"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type validateOptions struct {
	schemaPath    string
	extra         string
	strict        bool
	applyDefaults bool
	prune         bool
	quiet         bool
	output        string
}

func newValidateCmd() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate -s SCHEMA PAYLOAD...",
		Short: "Validate payload files against a schema document",
		Long: `Validate one or more payload files (JSON or YAML) against a schema
document. Every violation is reported on its own line, prefixed with the
payload path. Undeclared keys of a valid payload are reported after the
violations.`,
		Example: `  # Validate a player record
  conform validate -s fixtures/schemas/player.yaml player.json

  # Reject undeclared keys and cross-type coercion
  conform validate -s player.yaml --extra forbid --strict player.json

  # Print the coerced record, defaults filled in and undeclared keys stripped
  conform validate -s player.yaml --apply-defaults --prune -o json player.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schemaPath, "schema", "s", "", "schema document (YAML or JSON)")
	_ = cmd.MarkFlagRequired("schema")
	cmd.Flags().StringVar(&opts.extra, "extra", "collect", "undeclared key policy: collect, ignore or forbid")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "require declared native types, no cross-type coercion")
	cmd.Flags().BoolVar(&opts.applyDefaults, "apply-defaults", false, "fill declared defaults into the payload, then revalidate")
	cmd.Flags().BoolVar(&opts.prune, "prune", false, "strip undeclared keys from the payload, then revalidate")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress per-payload reporting")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputText, "output format: text or json")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string, opts *validateOptions) error {
	if opts.output != outputText && opts.output != outputJSON {
		return fmt.Errorf("unknown output format %q (want text or json)", opts.output)
	}
	policy, err := extraPolicy(opts.extra)
	if err != nil {
		return err
	}

	sch, err := schema.Load(opts.schemaPath)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	options := []conform.Option{
		conform.WithExtraFields(policy),
		conform.WithStrictTypes(opts.strict),
	}

	failed := 0
	for _, path := range args {
		res, err := validateFile(cmd, sch, path, opts, options)
		if err != nil {
			return err
		}
		if !res.IsValid() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d payloads do not conform", failed, len(args))
	}
	return nil
}

// validateFile validates a single payload file and reports on it. The
// returned error is operational (unreadable file, unrenderable record):
// validation failures only show in the result.
func validateFile(cmd *cobra.Command, sch *schema.Schema, path string, opts *validateOptions, options []conform.Option) (*conform.Result, error) {
	doc, err := readPayload(path)
	if err != nil {
		return nil, err
	}

	res := conform.NewSchemaValidator(sch, "", strfmt.Default, options...).Validate(doc)

	// The rewrite flags mutate the payload in place. Revalidating makes the
	// reported result and record reflect the rewritten payload.
	if res.IsValid() && (opts.applyDefaults || opts.prune) {
		if opts.applyDefaults {
			post.ApplyDefaults(res)
		}
		if opts.prune {
			post.Prune(res)
		}
		res = conform.NewSchemaValidator(sch, "", strfmt.Default, options...).Validate(doc)
	}

	report(cmd, path, res, opts)

	if opts.output == outputJSON && res.IsValid() {
		b, err := jsonutils.WriteJSON(res.Record())
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", path, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
	}
	return res, nil
}

func report(cmd *cobra.Command, path string, res *conform.Result, opts *validateOptions) {
	if opts.quiet {
		return
	}
	errw := cmd.ErrOrStderr()
	for _, e := range res.Errors {
		fmt.Fprintf(errw, "%s: %v\n", path, e)
	}
	if res.IsValid() {
		for _, x := range res.Extras() {
			fmt.Fprintf(errw, "%s: extra field %q\n", path, x)
		}
		if opts.output == outputText {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", path)
		}
	}
}

func extraPolicy(name string) (conform.ExtraPolicy, error) {
	switch name {
	case "collect":
		return conform.ExtraCollect, nil
	case "ignore":
		return conform.ExtraIgnore, nil
	case "forbid":
		return conform.ExtraForbid, nil
	default:
		return conform.ExtraCollect, fmt.Errorf("unknown extra-fields policy %q (want collect, ignore or forbid)", name)
	}
}

// readPayload decodes a payload file. JSON payloads go through the JSON
// reader; everything else is read as YAML, of which JSON is a subset anyway.
func readPayload(path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading payload: %w", err)
	}

	var doc interface{}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := jsonutils.ReadJSON(data, &doc); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
