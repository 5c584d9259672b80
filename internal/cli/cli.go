// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

// Package cli wires the conform command tree: validate payloads against a
// schema document, lint schema documents themselves.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/statline/conform"
)

// NewRootCmd builds the conform root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:   "conform",
		Short: "Validate JSON-like payloads against a declared schema",
		Long: `conform validates JSON or YAML payload files against a schema document,
coercing values to their declared types, and lints schema documents
themselves.`,
		// errors are reported once, by the caller of Execute
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				conform.Debug = true
			}
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "write the engine trace log to stdout")

	root.AddCommand(newValidateCmd())
	root.AddCommand(newLintCmd())

	return root
}
