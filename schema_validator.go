// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package conform

import (
	"reflect"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"

	"github.com/statline/conform/schema"
)

// SchemaValidator validates input mappings against a schema.
type SchemaValidator struct {
	Path         string
	In           string
	Schema       *schema.Schema
	KnownFormats strfmt.Registry
	Options      SchemaValidatorOptions
}

// Validate validates data against a schema and returns the coerced record.
//
// Violations found in a single pass come back flattened into one composite
// error, and no record. Callers that want the partial record alongside the
// violations use NewSchemaValidator and inspect the Result.
func Validate(s *schema.Schema, data interface{}, formats strfmt.Registry, options ...Option) (*Record, error) {
	res := NewSchemaValidator(s, "", formats, options...).Validate(data)
	if res.HasErrors() {
		return nil, errors.CompositeValidationError(res.Errors...)
	}
	return res.Record(), nil
}

// AgainstSchema validates data against a schema, flattening every violation
// found in a single pass into one composite error. Nil when the data is
// valid.
func AgainstSchema(s *schema.Schema, data interface{}, formats strfmt.Registry, options ...Option) error {
	_, err := Validate(s, data, formats, options...)
	return err
}

// NewSchemaValidator creates a validator for schema s.
//
// Violations are reported under the given root path; pass "" for a top
// level object. A nil formats registry falls back to strfmt.Default.
func NewSchemaValidator(s *schema.Schema, root string, formats strfmt.Registry, options ...Option) *SchemaValidator {
	if formats == nil {
		formats = strfmt.Default
	}
	sv := &SchemaValidator{
		Path:         root,
		In:           inBody,
		Schema:       s,
		KnownFormats: formats,
	}
	for _, o := range options {
		if o != nil {
			o(&sv.Options)
		}
	}
	return sv
}

// SetPath sets the path prefix for all reported violations.
func (s *SchemaValidator) SetPath(path string) {
	s.Path = path
}

// Validate validates the data against the schema and yields the full result:
// every violation across every field, and the coerced record.
//
// The input is left untouched; defaults substituted for absent fields land
// in the record, and in the input only through Result.ApplyDefaults (see the
// post package).
func (s *SchemaValidator) Validate(data interface{}) *Result {
	result := new(Result)
	if s == nil {
		return result
	}
	if s.Schema == nil || s.Schema.Len() == 0 {
		result.AddErrors(emptySchemaMsg())
		return result
	}

	if Debug {
		debugDump("validating against "+orRootPath(s.Path), data)
	}

	if data == nil {
		// a nil input validates like an empty mapping: required fields
		// without defaults report missing
		data = map[string]interface{}{}
	}

	ov := newObjectValidator(s.Path, s.In, s.Schema, s)
	rec, res := ov.ValidateCoerce(data)
	result.Merge(res)
	result.record = rec

	if result.IsValid() {
		result.Inc()
	}
	return result
}

// validateValue runs the per-value pipeline: null handling, coercion to the
// declared type, then constraints in declaration order with the first
// failing constraint closing the field.
func (s *SchemaValidator) validateValue(path string, f *schema.FieldSpec, value interface{}) (interface{}, *Result) {
	result := new(Result)

	if value == nil {
		if f.Nullable {
			result.Inc()
			return nil, result
		}
		result.AddErrors(errors.InvalidType(path, s.In, f.Type.String(), nil))
		return nil, result
	}

	switch f.Type.Kind {
	case schema.KindObject:
		ov := newObjectValidator(path, s.In, f.Type.Sub, s)
		rec, res := ov.ValidateCoerce(value)
		result.Merge(res)
		if result.HasErrors() {
			return nil, result
		}
		result.Merge(s.applyCompositePredicates(path, f, rec))
		if result.HasErrors() {
			return nil, result
		}
		return rec, result

	case schema.KindArray:
		sv := newSliceValidator(path, s.In, f.Constraints, f.Type.Elem, s)
		coerced, res := sv.ValidateCoerce(value)
		result.Merge(res)
		if result.HasErrors() {
			return nil, result
		}
		return coerced, result

	default:
		coerced, res := coerceScalar(path, f.Type.Kind, value, s.KnownFormats, &s.Options)
		if res.HasErrors() {
			result.Merge(res)
			return nil, result
		}
		result.Merge(res)
		result.Merge(s.applyConstraints(path, f, coerced))
		if result.HasErrors() {
			return nil, result
		}
		return coerced, result
	}
}

// applyConstraints checks a coerced scalar against the field constraints, in
// declaration order. The first failure stops further checks for this field;
// other fields are unaffected.
func (s *SchemaValidator) applyConstraints(path string, f *schema.FieldSpec, value interface{}) *Result {
	result := new(Result)
	kind := reflect.ValueOf(value).Kind()

	for i := range f.Constraints {
		c := &f.Constraints[i]

		if c.Kind == schema.PredicateConstraint {
			if _, found := s.Options.resolvePredicate(c); !found {
				result.AddErrors(unknownPredicateMsg(path, c.Name))
				return result
			}
		}

		v := s.validatorForConstraint(path, c)
		if v == nil || !v.Applies(f, kind) {
			debugLog("skipping %s constraint on %s", c.Kind, path)
			continue
		}

		res := v.Validate(value)
		result.Merge(res)
		if res.HasErrors() {
			return result
		}
	}
	return result
}

// applyCompositePredicates runs the predicate constraints declared on an
// object field against its coerced record. Other constraint kinds have no
// meaning for objects.
func (s *SchemaValidator) applyCompositePredicates(path string, f *schema.FieldSpec, rec *Record) *Result {
	result := new(Result)
	for i := range f.Constraints {
		c := &f.Constraints[i]
		if c.Kind != schema.PredicateConstraint {
			debugLog("skipping %s constraint on object %s", c.Kind, path)
			continue
		}
		fn, found := s.Options.resolvePredicate(c)
		if !found {
			result.AddErrors(unknownPredicateMsg(path, c.Name))
			return result
		}
		pv := newPredicateValidator(path, s.In, fn, predicateReason(c), &s.Options)
		res := pv.Validate(rec)
		result.Merge(res)
		if res.HasErrors() {
			return result
		}
	}
	return result
}

// validatorForConstraint builds the checking validator for one constraint
// descriptor. Array-level constraints are handled by the slice validator and
// yield nil here.
func (s *SchemaValidator) validatorForConstraint(path string, c *schema.Constraint) valueValidator {
	switch c.Kind { //nolint:exhaustive
	case schema.MinimumConstraint:
		min := c.Number
		return newNumberValidator(path, s.In, &min, c.Exclusive, nil, false, nil, &s.Options)
	case schema.MaximumConstraint:
		max := c.Number
		return newNumberValidator(path, s.In, nil, false, &max, c.Exclusive, nil, &s.Options)
	case schema.MultipleOfConstraint:
		factor := c.Number
		return newNumberValidator(path, s.In, nil, false, nil, false, &factor, &s.Options)
	case schema.EnumConstraint:
		return newBasicCommonValidator(path, s.In, c.Enum, &s.Options)
	case schema.MinLengthConstraint:
		length := c.Length
		return newStringValidator(path, s.In, &length, nil, "", &s.Options)
	case schema.MaxLengthConstraint:
		length := c.Length
		return newStringValidator(path, s.In, nil, &length, "", &s.Options)
	case schema.PatternConstraint:
		return newStringValidator(path, s.In, nil, nil, c.Pattern, &s.Options)
	case schema.NotBeforeConstraint:
		floor := c.Time
		return newTemporalValidator(path, s.In, &floor, nil, &s.Options)
	case schema.NotAfterConstraint:
		ceiling := c.Time
		return newTemporalValidator(path, s.In, nil, &ceiling, &s.Options)
	case schema.PredicateConstraint:
		fn, found := s.Options.resolvePredicate(c)
		if !found {
			return nil
		}
		return newPredicateValidator(path, s.In, fn, predicateReason(c), &s.Options)
	default:
		return nil
	}
}
