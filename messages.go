// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package conform

import (
	"net/http"

	"github.com/go-openapi/errors"
)

const (
	// error messages related to definition linting and returned as results

	// EmptySchema states that a schema must declare at least one field
	EmptySchema = "schema declares no fields"
	// DuplicateField indicates that a field name is declared several times in the same schema
	DuplicateField = "field %q is declared %d times"
	// FieldRequiresName indicates a field declaration without a name
	FieldRequiresName = "schema %s declares a field without a name"
	// UnresolvableType indicates a field whose type tree is incomplete
	UnresolvableType = "field %q has no resolvable type"
	// ArrayRequiresItems indicates an array field without an element definition
	ArrayRequiresItems = "field %q is a collection without an element type (array requires items definition)"
	// ObjectRequiresFields indicates an object field with no sub-schema
	ObjectRequiresFields = "field %q is an object without any declared field"
	// ConstraintTypeMismatch indicates a constraint that cannot apply to the declared type
	ConstraintTypeMismatch = "field %q declares %s but is typed %s"
	// BoundsConflict indicates a lower bound declared above the matching upper bound
	BoundsConflict = "field %q declares %s %v above %s %v"
	// MultipleOfMustBePositive indicates a non-positive multipleOf factor
	MultipleOfMustBePositive = "field %q declares a multipleOf factor that is not positive: %v"
	// InvalidPatternInField indicates a pattern that does not compile
	InvalidPatternInField = "field %q has an invalid pattern: %q"
	// UnknownPredicate indicates a named predicate with no registered implementation
	UnknownPredicate = "field %q references unknown predicate %q"
	// EmptyEnum indicates an enum constraint without any allowed value
	EmptyEnum = "field %q declares an empty enum"
	// DefaultFailsValidation indicates a default value rejected by its own field declaration
	DefaultFailsValidation = "default value for field %q does not validate its declaration"
	// ExampleFailsValidation indicates an example value rejected by its own field declaration
	ExampleFailsValidation = "example value for field %q does not validate its declaration"
	// RequiredHasDefault notes that a default neutralizes the required flag
	RequiredHasDefault = "field %q is required but carries a default: the default always satisfies the presence check"

	// error messages related to record validation

	// ExtraFieldDetected reports an input key that no field declares
	ExtraFieldDetected = "unknown field detected: %s"
	// PredicateFailure reports a value rejected by a predicate constraint
	PredicateFailure = "%s %s"
	// ValueBeforeFloor reports a temporal value earlier than its declared floor
	ValueBeforeFloor = "%s in %s must not be before %s"
	// ValueAfterCeiling reports a temporal value later than its declared ceiling
	ValueAfterCeiling = "%s in %s must not be after %s"
)

const (
	// InternalErrorCode reports an internal technical error
	InternalErrorCode = http.StatusInternalServerError
	// NotFoundErrorCode indicates that something referenced (e.g. a predicate) could not be found
	NotFoundErrorCode = http.StatusNotFound
)

func emptySchemaMsg() errors.Error {
	return errors.New(errors.CompositeErrorCode, EmptySchema)
}

func duplicateFieldMsg(name string, times int) errors.Error {
	return errors.New(errors.CompositeErrorCode, DuplicateField, name, times)
}

func fieldRequiresNameMsg(path string) errors.Error {
	return errors.New(errors.CompositeErrorCode, FieldRequiresName, path)
}

func unresolvableTypeMsg(path string) errors.Error {
	return errors.New(errors.CompositeErrorCode, UnresolvableType, path)
}

func arrayRequiresItemsMsg(path string) errors.Error {
	return errors.New(errors.CompositeErrorCode, ArrayRequiresItems, path)
}

func objectRequiresFieldsMsg(path string) errors.Error {
	return errors.New(errors.CompositeErrorCode, ObjectRequiresFields, path)
}

func constraintTypeMismatchMsg(path, keyword, typeName string) errors.Error {
	return errors.New(errors.CompositeErrorCode, ConstraintTypeMismatch, path, keyword, typeName)
}

func boundsConflictMsg(path, lowKeyword string, low interface{}, highKeyword string, high interface{}) errors.Error {
	return errors.New(errors.CompositeErrorCode, BoundsConflict, path, lowKeyword, low, highKeyword, high)
}

func multipleOfMustBePositiveMsg(path string, factor float64) errors.Error {
	return errors.New(errors.CompositeErrorCode, MultipleOfMustBePositive, path, factor)
}

func invalidPatternInFieldMsg(path, pattern string) errors.Error {
	return errors.New(errors.CompositeErrorCode, InvalidPatternInField, path, pattern)
}

func unknownPredicateMsg(path, name string) errors.Error {
	return errors.New(NotFoundErrorCode, UnknownPredicate, path, name)
}

func emptyEnumMsg(path string) errors.Error {
	return errors.New(errors.CompositeErrorCode, EmptyEnum, path)
}

func defaultFailsValidationMsg(path string) errors.Error {
	return errors.New(errors.CompositeErrorCode, DefaultFailsValidation, path)
}

func exampleFailsValidationMsg(path string) errors.Error {
	return errors.New(errors.CompositeErrorCode, ExampleFailsValidation, path)
}

func requiredHasDefaultMsg(path string) errors.Error {
	return errors.New(errors.CompositeErrorCode, RequiredHasDefault, path)
}

func extraFieldDetectedMsg(path string) errors.Error {
	return errors.New(errors.CompositeErrorCode, ExtraFieldDetected, path)
}

func predicateFailureMsg(path, reason string) errors.Error {
	return errors.New(errors.CompositeErrorCode, PredicateFailure, path, reason)
}

func valueBeforeFloorMsg(path, in, floor string) errors.Error {
	return errors.New(errors.CompositeErrorCode, ValueBeforeFloor, path, in, floor)
}

func valueAfterCeilingMsg(path, in, ceiling string) errors.Error {
	return errors.New(errors.CompositeErrorCode, ValueAfterCeiling, path, in, ceiling)
}
