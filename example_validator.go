// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package conform

import (
	"github.com/statline/conform/schema"
)

// exampleValidator validates example values declared in a schema definition
type exampleValidator struct {
	DefinitionValidator *DefinitionValidator
}

// Validate validates the example values declared in the schema definition.
//
// Examples are documentation: a mismatch yields a warning, never an error.
func (ex *exampleValidator) Validate() (errs *Result) {
	errs = new(Result)
	if ex == nil || ex.DefinitionValidator == nil {
		return errs
	}
	errs.Merge(ex.validateExamplesValidAgainstDeclaration()) // warning -

	return errs
}

func (ex *exampleValidator) validateExamplesValidAgainstDeclaration() *Result {
	// values provided as example must validate the field they examplify
	res := new(Result)
	d := ex.DefinitionValidator
	checker := d.valueChecker()

	d.eachField(func(path string, f *schema.FieldSpec) {
		if f.Example == nil {
			return
		}
		if _, red := checker.validateValue(path, f, f.Example); red.HasErrors() {
			res.AddWarnings(exampleFailsValidationMsg(path))
			res.MergeAsWarnings(red)
		}
	})
	return res
}
