// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package conform

import (
	"reflect"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"

	"github.com/statline/conform/schema"
)

// sliceValidator coerces and validates a sequence: every element is brought
// to the declared element type, then the array-level constraints run in
// declaration order.
type sliceValidator struct {
	Path         string
	In           string
	Constraints  []schema.Constraint
	Items        *schema.FieldSpec
	KnownFormats strfmt.Registry
	Options      *SchemaValidatorOptions
	validator    *SchemaValidator
}

func newSliceValidator(path, in string, constraints []schema.Constraint, items *schema.FieldSpec, validator *SchemaValidator) *sliceValidator {
	return &sliceValidator{
		Path:         path,
		In:           in,
		Constraints:  constraints,
		Items:        items,
		KnownFormats: validator.KnownFormats,
		Options:      &validator.Options,
		validator:    validator,
	}
}

func (s *sliceValidator) SetPath(path string) {
	s.Path = path
}

func (s *sliceValidator) Applies(source interface{}, kind reflect.Kind) bool {
	f, ok := source.(*schema.FieldSpec)
	return ok && f.Type.Kind == schema.KindArray && kind == reflect.Slice
}

func (s *sliceValidator) Validate(data interface{}) *Result {
	_, result := s.ValidateCoerce(data)
	return result
}

// ValidateCoerce validates the sequence and yields its coerced elements.
func (s *sliceValidator) ValidateCoerce(data interface{}) ([]interface{}, *Result) {
	result := new(Result)
	if s.Items == nil {
		// the definition linter reports this before any data is seen;
		// guard anyway for hand-built schemas
		result.AddErrors(arrayRequiresItemsMsg(s.Path))
		return nil, result
	}

	seq, ok := data.([]interface{})
	if !ok {
		result.AddErrors(errors.InvalidType(s.Path, s.In, "array", data))
		return nil, result
	}

	coerced := make([]interface{}, len(seq))
	broken := false
	for i, elem := range seq {
		value, res := s.validator.validateValue(pathHelp.indexedPath(s.Path, i), s.Items, elem)
		result.Merge(res)
		if res.HasErrors() {
			broken = true
			continue
		}
		coerced[i] = value
	}
	if broken {
		// the sequence did not coerce: array-level constraints do not run
		return nil, result
	}

	size := int64(len(coerced))
	for i := range s.Constraints {
		c := &s.Constraints[i]
		switch c.Kind { //nolint:exhaustive
		case schema.MinItemsConstraint:
			if err := MinItems(s.Path, s.In, size, c.Length); err != nil {
				result.AddErrors(err)
				return coerced, result
			}
		case schema.MaxItemsConstraint:
			if err := MaxItems(s.Path, s.In, size, c.Length); err != nil {
				result.AddErrors(err)
				return coerced, result
			}
		case schema.UniqueItemsConstraint:
			if err := UniqueItems(s.Path, s.In, coerced); err != nil {
				result.AddErrors(err)
				return coerced, result
			}
		case schema.PredicateConstraint:
			fn, found := s.Options.resolvePredicate(c)
			if !found {
				result.AddErrors(unknownPredicateMsg(s.Path, c.Name))
				return coerced, result
			}
			pv := newPredicateValidator(s.Path, s.In, fn, predicateReason(c), s.Options)
			if res := pv.Validate(coerced); res.HasErrors() {
				result.Merge(res)
				return coerced, result
			}
		default:
			// constraints for other types do not apply to a sequence;
			// the definition linter flags them
			debugLog("skipping %s constraint on array %s", c.Kind, s.Path)
		}
	}

	result.Inc()
	return coerced, result
}
