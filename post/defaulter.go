// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

// Package post postprocesses validated inputs.
//
// Validation never mutates its input: substituted defaults and undeclared
// keys are recorded on the Result instead. Applying them back to the input
// is an explicit step, taken here.
package post

import (
	"github.com/statline/conform"
)

// ApplyDefaults applies the defaults substituted during validation to the
// original input, in place: every field found absent with a declared
// default gets that default written into its mapping.
func ApplyDefaults(r *conform.Result) {
	r.ApplyDefaults()
}
