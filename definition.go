// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package conform

import (
	"sync"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"

	"github.com/statline/conform/schema"
)

// Opts specifies validation options for a DefinitionValidator.
type Opts struct {
	// ContinueOnErrors reports all findings of a broken definition instead
	// of stopping at the first group of structural errors
	ContinueOnErrors bool

	// Predicates names the predicate implementations the definition may
	// reference, consulted before the built-in schema.KnownPredicates
	Predicates schema.Registry
}

var (
	defaultOpts = Opts{
		ContinueOnErrors: false,
	}

	defaultOptsMutex = &sync.Mutex{}
)

// SetContinueOnErrors sets the default behavior for all new definition
// validators: with true, linting reports as many findings as possible
// instead of stopping at the first group of structural errors.
//
// Per-validator, this default may be overridden by setting
// DefinitionValidator.Options.
func SetContinueOnErrors(c bool) {
	defaultOptsMutex.Lock()
	defer defaultOptsMutex.Unlock()
	defaultOpts.ContinueOnErrors = c
}

// Definition lints a schema definition.
//
// Returns an error flattening in a single standard error, all linting
// messages. Warnings (example mismatches, a required field carrying a
// default) do not surface here: use a DefinitionValidator to get them.
func Definition(s *schema.Schema, formats strfmt.Registry) error {
	errs, _ /*warns*/ := NewDefinitionValidator(s, formats).Validate()
	if errs.HasErrors() {
		return errors.CompositeValidationError(errs.Errors...)
	}
	return nil
}

// DefinitionValidator lints a schema definition: structural soundness first,
// then constraint coherence, then declared defaults and examples against
// their own field declarations.
type DefinitionValidator struct {
	schema       *schema.Schema
	KnownFormats strfmt.Registry
	Options      Opts // validation options
}

// NewDefinitionValidator creates a new definition linter instance.
func NewDefinitionValidator(s *schema.Schema, formats strfmt.Registry) *DefinitionValidator {
	if formats == nil {
		formats = strfmt.Default
	}
	return &DefinitionValidator{
		schema:       s,
		KnownFormats: formats,
		Options:      defaultOpts,
	}
}

// Validate lints the schema definition.
//
// The first result holds all errors and all warnings; the second only the
// warnings.
func (d *DefinitionValidator) Validate() (errs *Result, warnings *Result) {
	errs = new(Result)
	warnings = new(Result)
	if d == nil || d.schema == nil || d.schema.Len() == 0 {
		errs.AddErrors(emptySchemaMsg())
		return
	}

	defer func() {
		// errs holds all errors and warnings,
		// warnings only warnings
		errs.MergeAsWarnings(warnings)
		warnings.AddErrors(errs.Warnings...)
	}()

	errs.Merge(d.validateFieldNames())      // error -
	errs.Merge(d.validateTypesResolvable()) // error -
	// a broken structure makes further findings unreliable
	if !d.Options.ContinueOnErrors && errs.HasErrors() {
		return // no point in continuing
	}

	errs.Merge(d.validateConstraintCoherence()) // error and warning

	if !d.Options.ContinueOnErrors && errs.HasErrors() {
		return // no point in continuing
	}

	// declared defaults must validate their own declaration
	df := &defaultValidator{DefinitionValidator: d}
	errs.Merge(df.Validate())

	// declared examples should validate their own declaration
	ex := &exampleValidator{DefinitionValidator: d}
	errs.Merge(ex.Validate())

	return
}

// valueChecker builds the schema validator used to replay declared defaults
// and examples through the regular validation pipeline.
func (d *DefinitionValidator) valueChecker() *SchemaValidator {
	return NewSchemaValidator(d.schema, "", d.KnownFormats, WithPredicates(d.Options.Predicates))
}

// eachField walks every field declaration depth first, arrays' element
// declarations included, handing each to fn along with its path.
func (d *DefinitionValidator) eachField(fn func(path string, f *schema.FieldSpec)) {
	d.walkSchema("", d.schema, fn)
}

func (d *DefinitionValidator) walkSchema(path string, s *schema.Schema, fn func(path string, f *schema.FieldSpec)) {
	for _, f := range s.Fields() {
		fpath := pathHelp.fieldPath(path, f.Name)
		fn(fpath, f)

		switch f.Type.Kind {
		case schema.KindObject:
			if f.Type.Sub != nil {
				d.walkSchema(fpath, f.Type.Sub, fn)
			}
		case schema.KindArray:
			if f.Type.Elem != nil {
				epath := fpath + ".items"
				fn(epath, f.Type.Elem)
				if f.Type.Elem.Type.Kind == schema.KindObject && f.Type.Elem.Type.Sub != nil {
					d.walkSchema(epath, f.Type.Elem.Type.Sub, fn)
				}
			}
		}
	}
}

func (d *DefinitionValidator) validateFieldNames() *Result {
	res := new(Result)
	d.namesIn("", d.schema, res)
	return res
}

func (d *DefinitionValidator) namesIn(path string, s *schema.Schema, res *Result) {
	known := make(map[string]int, s.Len())
	for _, name := range s.Names() {
		known[name]++
	}

	reported := make(map[string]struct{})
	for _, f := range s.Fields() {
		if f.Name == "" {
			res.AddErrors(fieldRequiresNameMsg(orRootPath(path)))
			continue
		}
		if times := known[f.Name]; times > 1 {
			if _, done := reported[f.Name]; !done {
				res.AddErrors(duplicateFieldMsg(pathHelp.fieldPath(path, f.Name), times))
				reported[f.Name] = struct{}{}
			}
			continue
		}

		switch f.Type.Kind {
		case schema.KindObject:
			if f.Type.Sub != nil {
				d.namesIn(pathHelp.fieldPath(path, f.Name), f.Type.Sub, res)
			}
		case schema.KindArray:
			if f.Type.Elem != nil && f.Type.Elem.Type.Kind == schema.KindObject && f.Type.Elem.Type.Sub != nil {
				d.namesIn(pathHelp.fieldPath(path, f.Name)+".items", f.Type.Elem.Type.Sub, res)
			}
		}
	}
}

func (d *DefinitionValidator) validateTypesResolvable() *Result {
	res := new(Result)
	d.eachField(func(path string, f *schema.FieldSpec) {
		switch f.Type.Kind {
		case schema.KindArray:
			if f.Type.Elem == nil {
				res.AddErrors(arrayRequiresItemsMsg(path))
			}
		case schema.KindObject:
			if f.Type.Sub == nil || f.Type.Sub.Len() == 0 {
				res.AddErrors(objectRequiresFieldsMsg(path))
			}
		case schema.KindInvalid:
			res.AddErrors(unresolvableTypeMsg(path))
		}
	})
	return res
}

// validateConstraintCoherence checks that every declared constraint can
// apply to its field type and carries a sound operand.
func (d *DefinitionValidator) validateConstraintCoherence() *Result {
	res := new(Result)
	opts := &SchemaValidatorOptions{Predicates: d.Options.Predicates}

	d.eachField(func(path string, f *schema.FieldSpec) {
		bounds := make(map[schema.ConstraintKind]*schema.Constraint, 2)

		for i := range f.Constraints {
			c := &f.Constraints[i]

			if !constraintAppliesToKind(c.Kind, f.Type.Kind) {
				res.AddErrors(constraintTypeMismatchMsg(path, c.Kind.String(), f.Type.String()))
				continue
			}

			switch c.Kind { //nolint:exhaustive
			case schema.MultipleOfConstraint:
				if c.Number <= 0 {
					res.AddErrors(multipleOfMustBePositiveMsg(path, c.Number))
				}
			case schema.PatternConstraint:
				if _, err := compileRegexp(c.Pattern); err != nil {
					res.AddErrors(invalidPatternInFieldMsg(path, c.Pattern))
				}
			case schema.EnumConstraint:
				if len(c.Enum) == 0 {
					res.AddErrors(emptyEnumMsg(path))
				}
			case schema.PredicateConstraint:
				if _, found := opts.resolvePredicate(c); !found {
					res.AddErrors(unknownPredicateMsg(path, c.Name))
				}
			case schema.MinimumConstraint, schema.MaximumConstraint,
				schema.MinLengthConstraint, schema.MaxLengthConstraint,
				schema.MinItemsConstraint, schema.MaxItemsConstraint,
				schema.NotBeforeConstraint, schema.NotAfterConstraint:
				if _, seen := bounds[c.Kind]; !seen {
					bounds[c.Kind] = c
				}
			}
		}

		res.Merge(checkBoundsConflicts(path, bounds))
	})
	return res
}

// checkBoundsConflicts reports lower bounds declared above their matching
// upper bound. Touching closed bounds are fine; an exclusive bound meeting
// its counterpart leaves no valid value and conflicts.
func checkBoundsConflicts(path string, bounds map[schema.ConstraintKind]*schema.Constraint) *Result {
	res := new(Result)

	if low, ok := bounds[schema.MinimumConstraint]; ok {
		if high, okk := bounds[schema.MaximumConstraint]; okk {
			if low.Number > high.Number || (low.Number == high.Number && (low.Exclusive || high.Exclusive)) {
				res.AddErrors(boundsConflictMsg(path, "minimum", low.Number, "maximum", high.Number))
			}
		}
	}
	if low, ok := bounds[schema.MinLengthConstraint]; ok {
		if high, okk := bounds[schema.MaxLengthConstraint]; okk && low.Length > high.Length {
			res.AddErrors(boundsConflictMsg(path, "minLength", low.Length, "maxLength", high.Length))
		}
	}
	if low, ok := bounds[schema.MinItemsConstraint]; ok {
		if high, okk := bounds[schema.MaxItemsConstraint]; okk && low.Length > high.Length {
			res.AddErrors(boundsConflictMsg(path, "minItems", low.Length, "maxItems", high.Length))
		}
	}
	if low, ok := bounds[schema.NotBeforeConstraint]; ok {
		if high, okk := bounds[schema.NotAfterConstraint]; okk && low.Time.After(high.Time) {
			res.AddErrors(boundsConflictMsg(path, "notBefore", formatInstant(low.Time), "notAfter", formatInstant(high.Time)))
		}
	}
	return res
}

func constraintAppliesToKind(c schema.ConstraintKind, k schema.Kind) bool {
	switch c {
	case schema.MinimumConstraint, schema.MaximumConstraint, schema.MultipleOfConstraint:
		return k == schema.KindInteger || k == schema.KindNumber
	case schema.MinLengthConstraint, schema.MaxLengthConstraint, schema.PatternConstraint:
		return k == schema.KindString
	case schema.MinItemsConstraint, schema.MaxItemsConstraint, schema.UniqueItemsConstraint:
		return k == schema.KindArray
	case schema.NotBeforeConstraint, schema.NotAfterConstraint:
		return k == schema.KindDate || k == schema.KindDateTime
	case schema.EnumConstraint:
		return k.IsScalar()
	case schema.PredicateConstraint:
		return k != schema.KindInvalid
	default:
		return false
	}
}
