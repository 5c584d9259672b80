// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package conform

import (
	"reflect"

	"github.com/go-openapi/strfmt"

	"github.com/statline/conform/schema"
)

// formatValidator validates a string against a named format from the strfmt
// registry. The date and date-time declared kinds go through it before
// parsing.
type formatValidator struct {
	Path         string
	In           string
	Format       string
	KnownFormats strfmt.Registry
	Options      *SchemaValidatorOptions
}

func newFormatValidator(path, in, format string, formats strfmt.Registry, opts *SchemaValidatorOptions) *formatValidator {
	if opts == nil {
		opts = new(SchemaValidatorOptions)
	}
	if formats == nil {
		formats = strfmt.Default
	}
	return &formatValidator{
		Path:         path,
		In:           in,
		Format:       format,
		KnownFormats: formats,
		Options:      opts,
	}
}

func (f *formatValidator) SetPath(path string) {
	f.Path = path
}

func (f *formatValidator) Applies(source interface{}, kind reflect.Kind) bool {
	if f.KnownFormats == nil || kind != reflect.String {
		return false
	}
	fl, ok := source.(*schema.FieldSpec)
	if !ok {
		return false
	}
	return (fl.Type.Kind == schema.KindDate || fl.Type.Kind == schema.KindDateTime) &&
		f.KnownFormats.ContainsName(f.Format)
}

func (f *formatValidator) Validate(val interface{}) *Result {
	result := new(Result)
	debugLog("validating %q format in %s", f.Format, f.Path)

	str, ok := val.(string)
	if !ok {
		return result
	}
	if err := FormatOf(f.Path, f.In, f.Format, str, f.KnownFormats); err != nil && err.HasErrors() {
		result.Merge(err)
		return result
	}
	result.Inc()
	return result
}
