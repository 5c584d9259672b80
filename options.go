// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package conform

import (
	"github.com/statline/conform/schema"
)

// ExtraPolicy tells the validator what to do with input keys that no field
// declares.
type ExtraPolicy uint8

const (
	// ExtraCollect keeps undeclared keys out of the validated fields and
	// reports them on the Result and the Record. This is the default:
	// extra keys never fail validation unless asked to.
	ExtraCollect ExtraPolicy = iota
	// ExtraIgnore drops undeclared keys silently.
	ExtraIgnore
	// ExtraForbid turns every undeclared key into a validation error.
	ExtraForbid
)

// SchemaValidatorOptions defines optional rules for schema validation
type SchemaValidatorOptions struct {
	ExtraFields ExtraPolicy
	StrictTypes bool
	Predicates  schema.Registry
}

// Option sets optional rules for schema validation
type Option func(*SchemaValidatorOptions)

// WithExtraFields sets the policy applied to undeclared input keys.
func WithExtraFields(policy ExtraPolicy) Option {
	return func(svo *SchemaValidatorOptions) {
		svo.ExtraFields = policy
	}
}

// WithStrictTypes disables cross-type coercion: a value must already carry
// its declared native type, save for dates and date-times which are always
// parsed from strings.
func WithStrictTypes(enabled bool) Option {
	return func(svo *SchemaValidatorOptions) {
		svo.StrictTypes = enabled
	}
}

// WithPredicates registers named predicate implementations, consulted before
// the built-in schema.KnownPredicates when resolving predicate constraints.
func WithPredicates(registry schema.Registry) Option {
	return func(svo *SchemaValidatorOptions) {
		svo.Predicates = registry
	}
}

// Options returns the current schema validation options as a flat list of
// Option, suitable to pass to a nested validator.
func (svo SchemaValidatorOptions) Options() []Option {
	return []Option{
		WithExtraFields(svo.ExtraFields),
		WithStrictTypes(svo.StrictTypes),
		WithPredicates(svo.Predicates),
	}
}

// resolvePredicate yields the callable behind a predicate constraint: either
// the inline function, or the named implementation looked up in the caller's
// registry, then among the built-ins.
func (svo *SchemaValidatorOptions) resolvePredicate(c *schema.Constraint) (schema.PredicateFunc, bool) {
	if c.Predicate != nil {
		return c.Predicate, true
	}
	if c.Name == "" {
		return nil, false
	}
	if fn, ok := svo.Predicates.Lookup(c.Name); ok {
		return fn, true
	}
	return schema.KnownPredicates.Lookup(c.Name)
}
