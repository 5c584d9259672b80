// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/spf13/cobra"

	"github.com/statline/conform"
	"github.com/statline/conform/schema"
)

type lintOptions struct {
	continueOnErrors bool
}

func newLintCmd() *cobra.Command {
	opts := &lintOptions{}

	cmd := &cobra.Command{
		Use:   "lint SCHEMA...",
		Short: "Check schema documents for declaration mistakes",
		Long: `Lint one or more schema documents: structural soundness first, then
constraint coherence (keywords against types, conflicting bounds, patterns
that compile, predicates that resolve), then declared defaults and examples
against their own field declaration.

Findings that do not make the schema unusable, such as an example failing
its own declaration, are reported as warnings and do not affect the exit
status.`,
		Example: `  # Lint the player schema
  conform lint fixtures/schemas/player.yaml

  # Keep linting a structurally broken schema
  conform lint --continue-on-errors broken.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.continueOnErrors, "continue-on-errors", false, "keep linting after structural errors")

	return cmd
}

func runLint(cmd *cobra.Command, args []string, opts *lintOptions) error {
	broken := 0
	for _, path := range args {
		sch, err := schema.Load(path)
		if err != nil {
			return fmt.Errorf("loading schema: %w", err)
		}

		d := conform.NewDefinitionValidator(sch, strfmt.Default)
		d.Options.ContinueOnErrors = opts.continueOnErrors
		errs, warnings := d.Validate()

		errw := cmd.ErrOrStderr()
		for _, e := range errs.Errors {
			fmt.Fprintf(errw, "%s: %v\n", path, e)
		}
		// the warnings result reports its findings in Errors
		for _, w := range warnings.Errors {
			fmt.Fprintf(errw, "%s: warning: %v\n", path, w)
		}

		if errs.HasErrors() {
			broken++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
	}
	if broken > 0 {
		return fmt.Errorf("%d of %d schemas have declaration errors", broken, len(args))
	}
	return nil
}
