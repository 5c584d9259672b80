// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package conform

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statline/conform/schema"
)

func TestNumberValidator_EdgeCases(t *testing.T) {
	min := float64(math.MinInt32 - 1)
	max := float64(math.MaxInt32 + 1)

	v := newNumberValidator(
		"path",
		"body",
		&min, false,
		&max, false,
		nil,
		nil,
	)

	// numberValidator applies to numeric values of a field declaration
	source := schema.NewField("path", schema.Integer())

	assert.False(t, v.Applies(source, reflect.String))
	assert.False(t, v.Applies(source, reflect.Struct))
	assert.True(t, v.Applies(source, reflect.Int))
	assert.True(t, v.Applies(source, reflect.Int8))
	assert.True(t, v.Applies(source, reflect.Uint16))
	assert.True(t, v.Applies(source, reflect.Uint64))
	assert.True(t, v.Applies(source, reflect.Float32))
	assert.True(t, v.Applies(source, reflect.Float64))

	// applies to field declarations only
	assert.False(t, v.Applies(float64(32), reflect.Float64))
	assert.False(t, v.Applies(schema.New(), reflect.Float64))

	t.Run("should validate values within bounds", func(t *testing.T) {
		res := v.Validate(int64(12))
		assert.True(t, res.IsValid())
		assert.Equal(t, 1, res.MatchCount)

		res = v.Validate(float64(12.5))
		assert.True(t, res.IsValid())
	})

	t.Run("should report values outside bounds", func(t *testing.T) {
		res := v.Validate(int64(math.MaxInt32 + 2))
		assert.True(t, res.HasErrors())

		res = v.Validate(int64(math.MinInt32 - 2))
		assert.True(t, res.HasErrors())
	})

	t.Run("should honor exclusive bounds", func(t *testing.T) {
		floor := float64(1949)
		ev := newNumberValidator("path", "body", &floor, true, nil, false, nil, nil)

		res := ev.Validate(int64(1949))
		assert.True(t, res.HasErrors())

		res = ev.Validate(int64(1950))
		assert.True(t, res.IsValid())
	})

	t.Run("should validate multipleOf", func(t *testing.T) {
		factor := float64(10)
		mv := newNumberValidator("path", "body", nil, false, nil, false, &factor, nil)

		res := mv.Validate(int64(120))
		assert.True(t, res.IsValid())

		res = mv.Validate(int64(121))
		assert.True(t, res.HasErrors())

		// fractional factor goes through float arithmetic
		half := 0.5
		fv := newNumberValidator("path", "body", nil, false, nil, false, &half, nil)
		res = fv.Validate(float64(2.5))
		assert.True(t, res.IsValid())

		res = fv.Validate(float64(2.3))
		assert.True(t, res.HasErrors())
	})
}

func TestStringValidator_EdgeCases(t *testing.T) {
	one := int64(1)
	twenty := int64(20)

	v := newStringValidator("path", "body", &one, &twenty, "", nil)

	source := schema.NewField("path", schema.String())

	assert.False(t, v.Applies(source, reflect.Struct))
	assert.False(t, v.Applies(source, reflect.Int))
	assert.True(t, v.Applies(source, reflect.String))
	assert.False(t, v.Applies("A string", reflect.String))

	t.Run("should validate length bounds", func(t *testing.T) {
		res := v.Validate("Tim Duncan")
		assert.True(t, res.IsValid())

		res = v.Validate("")
		assert.True(t, res.HasErrors())

		res = v.Validate("a name well beyond the twenty runes allowed")
		assert.True(t, res.HasErrors())
	})

	t.Run("should count runes, not bytes", func(t *testing.T) {
		four := int64(4)
		rv := newStringValidator("path", "body", nil, &four, "", nil)

		// four runes, twelve bytes
		res := rv.Validate("四文字だ")
		assert.True(t, res.IsValid())
	})

	t.Run("should validate pattern", func(t *testing.T) {
		pv := newStringValidator("path", "body", nil, nil, `^[A-Z]{2,3}$`, nil)

		res := pv.Validate("SAS")
		assert.True(t, res.IsValid())

		res = pv.Validate("spurs")
		assert.True(t, res.HasErrors())
	})

	t.Run("should skip non-string values", func(t *testing.T) {
		res := v.Validate(12)
		assert.True(t, res.IsValid())
		assert.Equal(t, 0, res.MatchCount)
	})
}

func TestBasicCommonValidator_EdgeCases(t *testing.T) {
	v := newBasicCommonValidator("path", "body", []interface{}{"C", "F", "G", 3}, nil)

	source := schema.NewField("path", schema.String())

	assert.True(t, v.Applies(source, reflect.String))
	assert.True(t, v.Applies(source, reflect.Int))
	assert.False(t, v.Applies("A string", reflect.String))

	t.Run("should validate enum membership", func(t *testing.T) {
		res := v.Validate("C")
		assert.True(t, res.IsValid())

		res = v.Validate(3)
		assert.True(t, res.IsValid())

		// numeric membership tolerates representation changes
		res = v.Validate(float64(3))
		assert.True(t, res.IsValid())

		res = v.Validate("B")
		require.True(t, res.HasErrors())
	})

	t.Run("should accept anything against an empty enum", func(t *testing.T) {
		ev := newBasicCommonValidator("path", "body", nil, nil)

		res := ev.Validate("anything")
		assert.True(t, res.IsValid())
	})
}

func TestTemporalValidator_EdgeCases(t *testing.T) {
	floor := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	ceiling := time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)

	v := newTemporalValidator("path", "body", &floor, &ceiling, nil)

	dateField := schema.NewField("path", schema.Date())
	stringField := schema.NewField("path", schema.String())

	assert.True(t, v.Applies(dateField, reflect.String))
	assert.False(t, v.Applies(stringField, reflect.String))
	assert.False(t, v.Applies("1976-04-25", reflect.String))

	t.Run("should validate all coerced representations", func(t *testing.T) {
		res := v.Validate(strfmt.Date(time.Date(1976, 4, 25, 0, 0, 0, 0, time.UTC)))
		assert.True(t, res.IsValid())

		res = v.Validate(strfmt.DateTime(time.Date(2023, 10, 10, 0, 0, 0, 0, time.UTC)))
		assert.True(t, res.IsValid())

		res = v.Validate(time.Date(2023, 10, 10, 0, 0, 0, 0, time.UTC))
		assert.True(t, res.IsValid())
	})

	t.Run("should report values outside the window", func(t *testing.T) {
		res := v.Validate(strfmt.Date(time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC)))
		require.True(t, res.HasErrors())
		assert.Contains(t, res.Errors[0].Error(), "must not be before")

		res = v.Validate(strfmt.Date(time.Date(2101, 1, 1, 0, 0, 0, 0, time.UTC)))
		require.True(t, res.HasErrors())
		assert.Contains(t, res.Errors[0].Error(), "must not be after")
	})

	t.Run("should skip values that are not instants", func(t *testing.T) {
		res := v.Validate("not parsed here")
		assert.True(t, res.IsValid())
		assert.Equal(t, 0, res.MatchCount)
	})
}

func TestPredicateValidator(t *testing.T) {
	positive := func(value interface{}) bool {
		f, ok := value.(float64)
		return ok && f > 0
	}

	v := newPredicateValidator("ppg", "body", positive, "must be positive", nil)

	source := schema.NewField("ppg", schema.Number())
	assert.True(t, v.Applies(source, reflect.Float64))

	nilPredicate := newPredicateValidator("ppg", "body", nil, "", nil)
	assert.False(t, nilPredicate.Applies(source, reflect.Float64))

	t.Run("should pass and fail with the declared reason", func(t *testing.T) {
		res := v.Validate(float64(19))
		assert.True(t, res.IsValid())

		res = v.Validate(float64(-1))
		require.True(t, res.HasErrors())
		assert.EqualError(t, res.Errors[0], "ppg must be positive")
	})
}

func TestPredicateReason(t *testing.T) {
	c := schema.NamedPredicate("words-capitalized", "every word must start with a capital letter")
	assert.Equal(t, "every word must start with a capital letter", predicateReason(&c))

	bare := schema.NamedPredicate("upper-case-token", "")
	assert.Equal(t, `must satisfy "upper-case-token"`, predicateReason(&bare))

	inline := schema.Predicate(func(interface{}) bool { return true }, "")
	assert.Equal(t, "does not satisfy its predicate", predicateReason(&inline))
}
