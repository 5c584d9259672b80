// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

// Package main is the entry point for the conform CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/statline/conform/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
