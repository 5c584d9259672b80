// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package conform

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/statline/conform/schema"
)

// valueValidator validates the values it applies to.
type valueValidator interface {
	// SetPath sets the exact path of the validator prior to calling Validate
	SetPath(path string)
	// Applies returns true if the validator applies to the field
	// description and the kind of the coerced value
	Applies(source interface{}, kind reflect.Kind) bool
	// Validate validates a single coerced value
	Validate(value interface{}) *Result
}

// basicCommonValidator checks constraints that apply to any type, i.e. enum
// membership.
type basicCommonValidator struct {
	Path    string
	In      string
	Enum    []interface{}
	Options *SchemaValidatorOptions
}

func newBasicCommonValidator(path, in string, enum []interface{}, opts *SchemaValidatorOptions) *basicCommonValidator {
	if opts == nil {
		opts = new(SchemaValidatorOptions)
	}
	return &basicCommonValidator{
		Path:    path,
		In:      in,
		Enum:    enum,
		Options: opts,
	}
}

func (b *basicCommonValidator) SetPath(path string) {
	b.Path = path
}

func (b *basicCommonValidator) Applies(source interface{}, _ reflect.Kind) bool {
	_, ok := source.(*schema.FieldSpec)
	return ok
}

func (b *basicCommonValidator) Validate(data interface{}) *Result {
	result := new(Result)
	if len(b.Enum) > 0 {
		if err := Enum(b.Path, b.In, data, b.Enum); err != nil {
			result.AddErrors(err)
		}
	}
	if result.IsValid() {
		result.Inc()
	}
	return result
}

// numberValidator checks the numeric bound constraints. A coerced value is
// either int64 or float64, native range checks pick the cheapest arithmetic.
type numberValidator struct {
	Path             string
	In               string
	Minimum          *float64
	ExclusiveMinimum bool
	Maximum          *float64
	ExclusiveMaximum bool
	MultipleOf       *float64
	Options          *SchemaValidatorOptions
}

func newNumberValidator(path, in string, min *float64, exclusiveMin bool, max *float64, exclusiveMax bool, multipleOf *float64, opts *SchemaValidatorOptions) *numberValidator {
	if opts == nil {
		opts = new(SchemaValidatorOptions)
	}
	return &numberValidator{
		Path:             path,
		In:               in,
		Minimum:          min,
		ExclusiveMinimum: exclusiveMin,
		Maximum:          max,
		ExclusiveMaximum: exclusiveMax,
		MultipleOf:       multipleOf,
		Options:          opts,
	}
}

func (n *numberValidator) SetPath(path string) {
	n.Path = path
}

func (n *numberValidator) Applies(source interface{}, kind reflect.Kind) bool {
	if _, ok := source.(*schema.FieldSpec); !ok {
		return false
	}
	switch kind { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func (n *numberValidator) Validate(val interface{}) *Result {
	res := new(Result)
	if n.Minimum != nil {
		if err := MinimumNativeType(n.Path, n.In, val, *n.Minimum, n.ExclusiveMinimum); err != nil {
			res.AddErrors(err)
		}
	}
	if n.Maximum != nil {
		if err := MaximumNativeType(n.Path, n.In, val, *n.Maximum, n.ExclusiveMaximum); err != nil {
			res.AddErrors(err)
		}
	}
	if n.MultipleOf != nil {
		if err := MultipleOfNativeType(n.Path, n.In, val, *n.MultipleOf); err != nil {
			res.AddErrors(err)
		}
	}
	if res.IsValid() {
		res.Inc()
	}
	return res
}

// stringValidator checks the length and pattern constraints.
type stringValidator struct {
	Path      string
	In        string
	MinLength *int64
	MaxLength *int64
	Pattern   string
	Options   *SchemaValidatorOptions
}

func newStringValidator(path, in string, minLength, maxLength *int64, pattern string, opts *SchemaValidatorOptions) *stringValidator {
	if opts == nil {
		opts = new(SchemaValidatorOptions)
	}
	return &stringValidator{
		Path:      path,
		In:        in,
		MinLength: minLength,
		MaxLength: maxLength,
		Pattern:   pattern,
		Options:   opts,
	}
}

func (s *stringValidator) SetPath(path string) {
	s.Path = path
}

func (s *stringValidator) Applies(source interface{}, kind reflect.Kind) bool {
	if _, ok := source.(*schema.FieldSpec); !ok {
		return false
	}
	return kind == reflect.String
}

func (s *stringValidator) Validate(val interface{}) *Result {
	res := new(Result)
	data, ok := val.(string)
	if !ok {
		return res
	}
	if s.MinLength != nil {
		if err := MinLength(s.Path, s.In, data, *s.MinLength); err != nil {
			res.AddErrors(err)
		}
	}
	if s.MaxLength != nil {
		if err := MaxLength(s.Path, s.In, data, *s.MaxLength); err != nil {
			res.AddErrors(err)
		}
	}
	if s.Pattern != "" {
		if err := Pattern(s.Path, s.In, data, s.Pattern); err != nil {
			res.AddErrors(err)
		}
	}
	if res.IsValid() {
		res.Inc()
	}
	return res
}

// temporalValidator checks the notBefore and notAfter constraints on coerced
// date and date-time values.
type temporalValidator struct {
	Path      string
	In        string
	NotBefore *time.Time
	NotAfter  *time.Time
	Options   *SchemaValidatorOptions
}

func newTemporalValidator(path, in string, notBefore, notAfter *time.Time, opts *SchemaValidatorOptions) *temporalValidator {
	if opts == nil {
		opts = new(SchemaValidatorOptions)
	}
	return &temporalValidator{
		Path:      path,
		In:        in,
		NotBefore: notBefore,
		NotAfter:  notAfter,
		Options:   opts,
	}
}

func (t *temporalValidator) SetPath(path string) {
	t.Path = path
}

func (t *temporalValidator) Applies(source interface{}, _ reflect.Kind) bool {
	f, ok := source.(*schema.FieldSpec)
	if !ok {
		return false
	}
	return f.Type.Kind == schema.KindDate || f.Type.Kind == schema.KindDateTime
}

func (t *temporalValidator) Validate(val interface{}) *Result {
	res := new(Result)
	instant, ok := asInstant(val)
	if !ok {
		return res
	}
	if t.NotBefore != nil {
		res.AddErrors(NotBeforeInstant(t.Path, t.In, instant, *t.NotBefore))
	}
	if t.NotAfter != nil {
		res.AddErrors(NotAfterInstant(t.Path, t.In, instant, *t.NotAfter))
	}
	if res.IsValid() {
		res.Inc()
	}
	return res
}

// asInstant reads any of the coerced temporal representations.
func asInstant(val interface{}) (time.Time, bool) {
	switch v := val.(type) {
	case strfmt.Date:
		return time.Time(v), true
	case strfmt.DateTime:
		return time.Time(v), true
	case time.Time:
		return v, true
	default:
		return time.Time{}, false
	}
}

// predicateValidator checks a custom pass/fail predicate and reports its
// declared reason on failure.
type predicateValidator struct {
	Path      string
	In        string
	Predicate schema.PredicateFunc
	Reason    string
	Options   *SchemaValidatorOptions
}

func newPredicateValidator(path, in string, fn schema.PredicateFunc, reason string, opts *SchemaValidatorOptions) *predicateValidator {
	if opts == nil {
		opts = new(SchemaValidatorOptions)
	}
	return &predicateValidator{
		Path:      path,
		In:        in,
		Predicate: fn,
		Reason:    reason,
		Options:   opts,
	}
}

func (p *predicateValidator) SetPath(path string) {
	p.Path = path
}

func (p *predicateValidator) Applies(source interface{}, _ reflect.Kind) bool {
	_, ok := source.(*schema.FieldSpec)
	return ok && p.Predicate != nil
}

func (p *predicateValidator) Validate(val interface{}) *Result {
	res := new(Result)
	if !p.Predicate(val) {
		res.AddErrors(predicateFailureMsg(p.Path, p.Reason))
		return res
	}
	res.Inc()
	return res
}

// predicateReason picks the failure wording for a predicate constraint.
func predicateReason(c *schema.Constraint) string {
	if c.Reason != "" {
		return c.Reason
	}
	if c.Name != "" {
		return fmt.Sprintf("must satisfy %q", c.Name)
	}
	return "does not satisfy its predicate"
}
