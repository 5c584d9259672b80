// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package conform

import (
	"github.com/statline/conform/schema"
)

// defaultValidator validates default values declared in a schema definition
type defaultValidator struct {
	DefinitionValidator *DefinitionValidator
}

// Validate validates the default values declared in the schema definition:
// a default must satisfy the very declaration it belongs to, since it takes
// the value's place whenever the field is absent.
func (d *defaultValidator) Validate() (errs *Result) {
	errs = new(Result)
	if d == nil || d.DefinitionValidator == nil {
		return errs
	}
	errs.Merge(d.validateDefaultsValidAgainstDeclaration()) // error and warning

	return errs
}

func (d *defaultValidator) validateDefaultsValidAgainstDeclaration() *Result {
	res := new(Result)
	dv := d.DefinitionValidator
	checker := dv.valueChecker()

	dv.eachField(func(path string, f *schema.FieldSpec) {
		if !f.HasDefault {
			return
		}
		if f.Required {
			// the default satisfies the presence check before
			// requiredness is ever seen
			res.AddWarnings(requiredHasDefaultMsg(path))
		}
		if _, red := checker.validateValue(path, f, f.Default); red.HasErrors() {
			res.AddErrors(defaultFailsValidationMsg(path))
			res.Merge(red)
		}
	})
	return res
}
