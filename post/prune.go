// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package post

import (
	"github.com/statline/conform"
)

// Prune removes from the original input, in place, every key that no schema
// field declares. Nested mappings and array elements are pruned too: each
// undeclared key was located during validation, wherever it sat.
func Prune(r *conform.Result) {
	r.PruneExtras()
}
