// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statline/conform"
)

var (
	schemaFixturesPath = filepath.Join("..", "..", "fixtures", "schemas")
	playerFixturesPath = filepath.Join("..", "..", "fixtures", "players")
)

// runCLI executes the command tree against args, capturing both streams.
func runCLI(t testing.TB, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestCLI_DebugFlag(t *testing.T) {
	saved := conform.Debug
	conform.Debug = false
	defer func() { conform.Debug = saved }()

	_, _, err := runCLI(t, "--debug", "lint", filepath.Join(schemaFixturesPath, "player.yaml"))
	require.NoError(t, err)
	assert.True(t, conform.Debug)
}

func TestCLI_UnknownCommand(t *testing.T) {
	_, _, err := runCLI(t, "transmogrify")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
