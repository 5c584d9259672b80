// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"strings"
	"time"
	"unicode"
)

// ConstraintKind tags the variant carried by a Constraint.
type ConstraintKind uint8

const (
	// InvalidConstraint is the zero value; the linter rejects it.
	InvalidConstraint ConstraintKind = iota
	// MinimumConstraint is a numeric lower bound (inclusive unless Exclusive).
	MinimumConstraint
	// MaximumConstraint is a numeric upper bound (inclusive unless Exclusive).
	MaximumConstraint
	// MultipleOfConstraint requires the value to be a multiple of Number.
	MultipleOfConstraint
	// EnumConstraint requires membership in the Enum set.
	EnumConstraint
	// MinLengthConstraint is a string length lower bound.
	MinLengthConstraint
	// MaxLengthConstraint is a string length upper bound.
	MaxLengthConstraint
	// PatternConstraint requires the string to match Pattern.
	PatternConstraint
	// MinItemsConstraint is a sequence length lower bound.
	MinItemsConstraint
	// MaxItemsConstraint is a sequence length upper bound.
	MaxItemsConstraint
	// UniqueItemsConstraint forbids duplicate sequence elements.
	UniqueItemsConstraint
	// NotBeforeConstraint is a date/date-time lower bound (inclusive).
	NotBeforeConstraint
	// NotAfterConstraint is a date/date-time upper bound (inclusive).
	NotAfterConstraint
	// PredicateConstraint runs a custom pass/fail check with a reason.
	PredicateConstraint
)

// String yields the keyword used by the document loader and the linter.
func (k ConstraintKind) String() string {
	switch k {
	case MinimumConstraint:
		return "minimum"
	case MaximumConstraint:
		return "maximum"
	case MultipleOfConstraint:
		return "multipleOf"
	case EnumConstraint:
		return "enum"
	case MinLengthConstraint:
		return "minLength"
	case MaxLengthConstraint:
		return "maxLength"
	case PatternConstraint:
		return "pattern"
	case MinItemsConstraint:
		return "minItems"
	case MaxItemsConstraint:
		return "maxItems"
	case UniqueItemsConstraint:
		return "uniqueItems"
	case NotBeforeConstraint:
		return "notBefore"
	case NotAfterConstraint:
		return "notAfter"
	case PredicateConstraint:
		return "predicate"
	default:
		return "invalid"
	}
}

// PredicateFunc is a custom pass/fail check over a coerced value.
type PredicateFunc func(value interface{}) bool

// Constraint is a tagged-variant constraint descriptor. Exactly the fields
// relevant to Kind are set; validators dispatch on Kind and ignore the rest.
// Constraints attached to a FieldSpec apply in declaration order, and the
// first failing constraint stops further checks for that field.
type Constraint struct {
	Kind      ConstraintKind
	Number    float64       // Minimum, Maximum, MultipleOf operand
	Exclusive bool          // open bound for Minimum/Maximum
	Length    int64         // MinLength, MaxLength, MinItems, MaxItems operand
	Pattern   string        // Pattern operand
	Enum      []interface{} // Enum members
	Time      time.Time     // NotBefore, NotAfter operand
	Predicate PredicateFunc // inline predicate
	Name      string        // registry name for a predicate loaded by reference
	Reason    string        // human-readable predicate failure reason
}

// Minimum constrains a numeric field to values >= n.
func Minimum(n float64) Constraint {
	return Constraint{Kind: MinimumConstraint, Number: n}
}

// ExclusiveMinimum constrains a numeric field to values > n.
func ExclusiveMinimum(n float64) Constraint {
	return Constraint{Kind: MinimumConstraint, Number: n, Exclusive: true}
}

// Maximum constrains a numeric field to values <= n.
func Maximum(n float64) Constraint {
	return Constraint{Kind: MaximumConstraint, Number: n}
}

// ExclusiveMaximum constrains a numeric field to values < n.
func ExclusiveMaximum(n float64) Constraint {
	return Constraint{Kind: MaximumConstraint, Number: n, Exclusive: true}
}

// MultipleOf constrains a numeric field to multiples of n.
func MultipleOf(n float64) Constraint {
	return Constraint{Kind: MultipleOfConstraint, Number: n}
}

// Enum constrains a field to one of the given values.
func Enum(values ...interface{}) Constraint {
	return Constraint{Kind: EnumConstraint, Enum: values}
}

// MinLength constrains a string field to at least n characters.
func MinLength(n int64) Constraint {
	return Constraint{Kind: MinLengthConstraint, Length: n}
}

// MaxLength constrains a string field to at most n characters.
func MaxLength(n int64) Constraint {
	return Constraint{Kind: MaxLengthConstraint, Length: n}
}

// Pattern constrains a string field to match the regular expression expr.
func Pattern(expr string) Constraint {
	return Constraint{Kind: PatternConstraint, Pattern: expr}
}

// MinItems constrains a sequence field to at least n elements.
func MinItems(n int64) Constraint {
	return Constraint{Kind: MinItemsConstraint, Length: n}
}

// MaxItems constrains a sequence field to at most n elements.
func MaxItems(n int64) Constraint {
	return Constraint{Kind: MaxItemsConstraint, Length: n}
}

// UniqueItems forbids duplicate elements in a sequence field.
func UniqueItems() Constraint {
	return Constraint{Kind: UniqueItemsConstraint}
}

// NotBefore constrains a date or date-time field to instants at or after t.
func NotBefore(t time.Time) Constraint {
	return Constraint{Kind: NotBeforeConstraint, Time: t}
}

// NotAfter constrains a date or date-time field to instants at or before t.
func NotAfter(t time.Time) Constraint {
	return Constraint{Kind: NotAfterConstraint, Time: t}
}

// Predicate attaches a custom check. The reason is reported verbatim after
// the field path when the check fails, so phrase it as a sentence fragment,
// e.g. "must be capitalized".
func Predicate(fn PredicateFunc, reason string) Constraint {
	return Constraint{Kind: PredicateConstraint, Predicate: fn, Reason: reason}
}

// NamedPredicate attaches a check resolved by name from a Registry at
// validation time. The document loader produces these.
func NamedPredicate(name, reason string) Constraint {
	return Constraint{Kind: PredicateConstraint, Name: name, Reason: reason}
}

// Registry resolves predicate names to checks. Schemas loaded from documents
// reference predicates by name only; validation resolves them against a
// registry, defaulting to KnownPredicates.
type Registry map[string]PredicateFunc

// Add registers fn under name, replacing any previous entry.
func (r Registry) Add(name string, fn PredicateFunc) {
	r[name] = fn
}

// Lookup resolves name.
func (r Registry) Lookup(name string) (PredicateFunc, bool) {
	fn, ok := r[name]
	return fn, ok
}

// KnownPredicates holds the built-in named predicates.
var KnownPredicates = Registry{
	"words-capitalized": WordsCapitalized,
	"uppercase":         UpperCaseToken,
}

// WordsCapitalized reports whether every space-separated word in a string
// value begins with an upper case letter ("San Antonio Spurs").
func WordsCapitalized(value interface{}) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	for _, word := range strings.Fields(s) {
		r := []rune(word)[0]
		if !unicode.IsUpper(r) && unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// UpperCaseToken reports whether a string value is a non-empty all-upper-case
// token ("C", "PF").
func UpperCaseToken(value interface{}) bool {
	s, ok := value.(string)
	if !ok || s == "" {
		return false
	}
	return s == strings.ToUpper(s)
}
