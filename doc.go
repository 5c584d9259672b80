// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

/*
Package conform validates JSON-like input mappings against a declared
schema, and coerces them into typed records.

A schema is an ordered list of typed field declarations (see the schema
package), possibly nested through objects and arrays. Validation walks the
declaration order, checks presence, coerces raw values to their declared
types, applies per-field constraints, and reports every violation found in a
single pass.

# Validating a record

Validates an input mapping (typically the result of unmarshaling a JSON or
YAML payload) against a schema, then yields either a coerced Record or the
full list of violations.

Entry points:
  - Validate()
  - AgainstSchema()
  - NewSchemaValidator()
  - SchemaValidator.Validate()

Reported as errors:
  - a required field without a default is absent from the input
  - a value does not coerce to its declared type (including null for a
    field not declared nullable)
  - a coerced value fails one of its declared constraints; constraints run
    in declaration order and the first failure stops further checks on that
    field, while remaining fields are still processed
  - an undeclared key is present in the input, when the validator is
    configured with ExtraForbid

By default, undeclared keys never fail validation: they are collected and
reported on the Result and on the Record, and remain addressable for
pruning (see the post package).

# Linting a definition

Checks that a schema definition is itself sound before it is used to
validate anything.

Entry points:
  - Definition()
  - NewDefinitionValidator()
  - DefinitionValidator.Validate()

Reported as errors:
  - a schema without any field, or with a field declared more than once
  - an array field without an element definition, or an object field with
    an empty sub-schema
  - a constraint that cannot apply to the declared type (a pattern on an
    integer, a minimum on a boolean)
  - conflicting bounds (minimum above maximum, minLength above maxLength)
  - a non-positive multipleOf factor
  - a pattern that does not compile
  - a predicate name with no registered implementation
  - a default value that does not validate against its own field

Reported as warnings:
  - an example value that does not validate against its own field
  - a field declared required while also carrying a default: the default
    always satisfies the presence check, so the required flag is inert

# Known limitations

  - numbers are handled in float64 precision, as after encoding/json
    decoding; integers beyond 2^53 lose precision before validation sees
    them
  - date-time values without a time zone are accepted and read as UTC
  - regular expressions use the Go regexp engine: patterns valid in
    ECMA 262 but rejected by Go are considered invalid
*/
package conform
