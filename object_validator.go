// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package conform

import (
	"reflect"
	"sort"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"

	"github.com/statline/conform/schema"
)

// objectValidator walks a schema in field declaration order: presence and
// requiredness first, then per-field coercion and constraints, undeclared
// keys last. All violations across fields are collected in one pass.
type objectValidator struct {
	Path         string
	In           string
	Schema       *schema.Schema
	KnownFormats strfmt.Registry
	Options      *SchemaValidatorOptions
	validator    *SchemaValidator
}

func newObjectValidator(path, in string, s *schema.Schema, validator *SchemaValidator) *objectValidator {
	return &objectValidator{
		Path:         path,
		In:           in,
		Schema:       s,
		KnownFormats: validator.KnownFormats,
		Options:      &validator.Options,
		validator:    validator,
	}
}

func (o *objectValidator) SetPath(path string) {
	o.Path = path
}

func (o *objectValidator) Applies(source interface{}, kind reflect.Kind) bool {
	_, ok := source.(*schema.Schema)
	return ok && kind == reflect.Map
}

func (o *objectValidator) Validate(data interface{}) *Result {
	_, result := o.ValidateCoerce(data)
	return result
}

// ValidateCoerce validates the mapping and builds its coerced record.
func (o *objectValidator) ValidateCoerce(data interface{}) (*Record, *Result) {
	result := new(Result)

	obj, ok := data.(map[string]interface{})
	if !ok {
		result.AddErrors(errors.InvalidType(orRootPath(o.Path), o.In, "object", data))
		return nil, result
	}

	rec := newRecord(o.Schema.Len())

	for _, f := range o.Schema.Fields() {
		fpath := pathHelp.fieldPath(o.Path, f.Name)
		raw, present := obj[f.Name]

		if !present {
			switch {
			case f.HasDefault:
				// the default takes the value's place and goes through
				// the same pipeline, so the record stays typed
				value, res := o.validator.validateValue(fpath, f, f.Default)
				// side effects recorded while replaying a default target
				// the declaration, not the input: drop them
				res.Defaulters = nil
				res.extras = nil
				result.Merge(res)
				if !res.HasErrors() {
					rec.set(f.Name, value)
				}
				name, def := f.Name, f.Default
				result.Defaulters = append(result.Defaulters, DefaulterFunc(func() {
					obj[name] = def
				}))
			case f.Required:
				result.AddErrors(errors.Required(fpath, o.In, nil))
			default:
				debugLog("optional field %s absent, no default", fpath)
			}
			continue
		}

		value, res := o.validator.validateValue(fpath, f, raw)
		result.Merge(res)
		if !res.HasErrors() {
			rec.set(f.Name, value)
		}
	}

	o.collectExtras(obj, rec, result)

	if result.IsValid() {
		result.Inc()
	}
	return rec, result
}

// collectExtras deals with input keys no field declares, per the configured
// policy. Keys are visited in sorted order: map iteration would shuffle
// reports between runs.
func (o *objectValidator) collectExtras(obj map[string]interface{}, rec *Record, result *Result) {
	var undeclared []string
	for key := range obj {
		if _, declared := o.Schema.Field(key); !declared {
			undeclared = append(undeclared, key)
		}
	}
	sort.Strings(undeclared)

	for _, key := range undeclared {
		xpath := pathHelp.fieldPath(o.Path, key)
		reported := o.Options.ExtraFields != ExtraIgnore
		result.addExtra(extraField{
			path:      xpath,
			key:       key,
			value:     obj[key],
			container: obj,
			reported:  reported,
		})
		if reported {
			rec.setExtra(key, obj[key])
		}
		if o.Options.ExtraFields == ExtraForbid {
			result.AddErrors(extraFieldDetectedMsg(xpath))
		}
	}
}

func orRootPath(path string) string {
	if path == "" {
		return "root"
	}
	return path
}
