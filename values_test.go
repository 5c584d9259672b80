// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package conform

import (
	"math"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValues_ValidateIntEnum(t *testing.T) {
	enumValues := []interface{}{1, 2, 3}

	require.Error(t, Enum("test", "body", int64(5), enumValues))
	require.Nil(t, Enum("test", "body", int64(1), enumValues))
}

func TestValues_ValidateEnum(t *testing.T) {
	enumValues := []string{"C", "F", "G"}

	require.Error(t, Enum("test", "body", "B", enumValues))
	require.Nil(t, Enum("test", "body", "F", enumValues))

	type CustomString string

	require.Error(t, Enum("test", "body", CustomString("B"), enumValues))
	require.Nil(t, Enum("test", "body", CustomString("F"), enumValues))
}

func TestValues_ValidateNilEnum(t *testing.T) {
	enumValues := []string{"C", "F", "G"}

	require.Error(t, Enum("test", "body", nil, enumValues))
}

// Check edge cases in Enum
func TestValues_Enum_EdgeCases(t *testing.T) {
	enumValues := "C, F, G"

	// No validation occurs: enumValues is not a slice
	require.Nil(t, Enum("test", "body", int64(1), enumValues))
}

func TestValues_ValidateEnumCaseInsensitive(t *testing.T) {
	enumValues := []string{"C", "F", "G"}

	require.Error(t, EnumCase("test", "body", "b", enumValues, true))
	require.Nil(t, EnumCase("test", "body", "F", enumValues, true))
	require.Error(t, EnumCase("test", "body", "f", enumValues, true))
	require.Error(t, EnumCase("test", "body", "b", enumValues, false))
	require.Nil(t, EnumCase("test", "body", "F", enumValues, false))
	require.Nil(t, EnumCase("test", "body", "f", enumValues, false))
	require.Error(t, EnumCase("test", "body", int64(1), enumValues, false))
}

func TestValues_ValidateUniqueItems(t *testing.T) {
	itemsNonUnique := []interface{}{
		[]int32{1, 2, 3, 4, 4, 5},
		[]string{"C", "F", "G", "G"},
	}
	for _, v := range itemsNonUnique {
		require.Error(t, UniqueItems("test", "body", v))
	}

	itemsUnique := []interface{}{
		[]int32{1, 2, 3},
		"I'm a string",
		map[string]int{
			"ppg": 19,
			"rpg": 10,
		},
		nil,
	}
	for _, v := range itemsUnique {
		require.Nil(t, UniqueItems("test", "body", v))
	}
}

func TestValues_ValidateMinLength(t *testing.T) {
	const minLength = int64(5)
	require.Error(t, MinLength("test", "body", "Tim", minLength))
	require.Nil(t, MinLength("test", "body", "Duncan", minLength))

	// length counts runes
	require.Nil(t, MinLength("test", "body", "ダンカン選手", minLength))
}

func TestValues_ValidateMaxLength(t *testing.T) {
	const maxLength = int64(5)
	require.Error(t, MaxLength("test", "body", "Duncan", maxLength))
	require.Nil(t, MaxLength("test", "body", "Tim", maxLength))
}

func TestValues_ValidateRequired(t *testing.T) {
	const (
		path = "test"
		in   = "body"
	)

	require.Error(t, Required(path, in, ""))
	require.Error(t, Required(path, in, 0))
	require.Error(t, Required(path, in, nil))
	require.Nil(t, Required(path, in, "Tim Duncan"))
	require.Nil(t, Required(path, in, 21))
}

func TestValues_ValidateMinItems(t *testing.T) {
	require.Error(t, MinItems("test", "body", 0, 1))
	require.Nil(t, MinItems("test", "body", 1, 1))
}

func TestValues_ValidateMaxItems(t *testing.T) {
	require.Error(t, MaxItems("test", "body", 6, 5))
	require.Nil(t, MaxItems("test", "body", 5, 5))
}

func TestValues_ValidatePattern(t *testing.T) {
	require.Error(t, Pattern("test", "body", "spurs", `^[A-Z]`))
	require.Nil(t, Pattern("test", "body", "Spurs", `^[A-Z]`))

	t.Run("with an invalid pattern", func(t *testing.T) {
		err := Pattern("test", "body", "Spurs", `^[(`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pattern is invalid")
	})
}

func TestValues_ValidateMinimum(t *testing.T) {
	require.Error(t, Minimum("test", "body", 1948, 1949, false))
	require.Nil(t, Minimum("test", "body", 1949, 1949, false))
	require.Error(t, Minimum("test", "body", 1949, 1949, true))

	require.Error(t, MinimumInt("test", "body", 1948, 1949, false))
	require.Nil(t, MinimumInt("test", "body", 1949, 1949, false))

	require.Error(t, MinimumUint("test", "body", 1948, 1949, false))
	require.Nil(t, MinimumUint("test", "body", 1949, 1949, false))
}

func TestValues_ValidateMaximum(t *testing.T) {
	require.Error(t, Maximum("test", "body", 51, 50, false))
	require.Nil(t, Maximum("test", "body", 50, 50, false))
	require.Error(t, Maximum("test", "body", 50, 50, true))

	require.Error(t, MaximumInt("test", "body", 51, 50, false))
	require.Nil(t, MaximumInt("test", "body", 50, 50, false))

	require.Error(t, MaximumUint("test", "body", 51, 50, false))
	require.Nil(t, MaximumUint("test", "body", 50, 50, false))
}

func TestValues_ValidateNativeNumeric(t *testing.T) {
	t.Run("minimum against native types", func(t *testing.T) {
		require.Nil(t, MinimumNativeType("test", "body", int8(5), 1, false))
		require.Nil(t, MinimumNativeType("test", "body", uint(5), 1, false))
		require.Nil(t, MinimumNativeType("test", "body", float32(5), 1, false))
		require.Error(t, MinimumNativeType("test", "body", int64(0), 1, false))

		// a negative floor always accepts an unsigned value
		require.Nil(t, MinimumNativeType("test", "body", uint16(0), -10, false))
	})

	t.Run("maximum against native types", func(t *testing.T) {
		require.Nil(t, MaximumNativeType("test", "body", int32(5), 10, false))
		require.Error(t, MaximumNativeType("test", "body", uint64(15), 10, false))

		// a negative ceiling always rejects an unsigned value
		require.Error(t, MaximumNativeType("test", "body", uint32(0), -1, false))
	})

	t.Run("multipleOf against native types", func(t *testing.T) {
		require.Nil(t, MultipleOfNativeType("test", "body", int64(120), 10))
		require.Error(t, MultipleOfNativeType("test", "body", int64(121), 10))
		require.Nil(t, MultipleOfNativeType("test", "body", uint8(4), 2))
		require.Nil(t, MultipleOfNativeType("test", "body", float64(2.5), 0.5))
		require.Error(t, MultipleOfNativeType("test", "body", float64(2.3), 0.5))
	})

	t.Run("integer arithmetic survives values float64 cannot represent", func(t *testing.T) {
		require.Nil(t, MultipleOfNativeType("test", "body", int64(math.MaxInt64), 1))
	})
}

func TestValues_ValidateMultipleOf(t *testing.T) {
	// positive case
	require.Nil(t, MultipleOf("test", "body", 9, 3))
	require.Nil(t, MultipleOf("test", "body", 9.3, 3.1))
	require.Nil(t, MultipleOf("test", "body", 0.9, 0.3))

	// zero or negative factors are definition errors
	require.Error(t, MultipleOf("test", "body", 9, 0))
	require.Error(t, MultipleOf("test", "body", 9, -3))
	require.Error(t, MultipleOfInt("test", "body", 9, 0))
	require.Error(t, MultipleOfUint("test", "body", 9, 0))

	// not a multiple
	require.Error(t, MultipleOf("test", "body", 9.1, 3))
	require.Error(t, MultipleOfInt("test", "body", 10, 3))
	require.Error(t, MultipleOfUint("test", "body", 10, 3))
	require.Nil(t, MultipleOfInt("test", "body", 9, 3))
	require.Nil(t, MultipleOfUint("test", "body", 9, 3))
}

func TestValues_ValidateFormatOf(t *testing.T) {
	res := FormatOf("test", "body", "date", "1976-04-25", strfmt.Default)
	assert.True(t, res.IsValid())

	res = FormatOf("test", "body", "date", "not a date", strfmt.Default)
	assert.True(t, res.HasErrors())

	res = FormatOf("test", "body", "date-time", "2023-10-10T00:00:00Z", strfmt.Default)
	assert.True(t, res.IsValid())

	// nil registry falls back to the default one
	res = FormatOf("test", "body", "date", "1976-04-25", nil)
	assert.True(t, res.IsValid())

	t.Run("with an unknown format name", func(t *testing.T) {
		res := FormatOf("test", "body", "no-such-format", "anything", strfmt.Default)
		require.True(t, res.HasErrors())
	})
}

func TestValues_ValidateInstantBounds(t *testing.T) {
	floor := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	ceiling := time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)

	require.Nil(t, NotBeforeInstant("test", "body", time.Date(1976, 4, 25, 0, 0, 0, 0, time.UTC), floor))
	require.Nil(t, NotBeforeInstant("test", "body", floor, floor))

	err := NotBeforeInstant("test", "body", floor.Add(-time.Hour), floor)
	require.Error(t, err)
	assert.EqualError(t, err, "test in body must not be before 1900-01-01")

	require.Nil(t, NotAfterInstant("test", "body", ceiling, ceiling))

	err = NotAfterInstant("test", "body", ceiling.Add(time.Hour), ceiling)
	require.Error(t, err)
	assert.EqualError(t, err, "test in body must not be after 2100-01-01")
}

func TestValues_FormatInstant(t *testing.T) {
	assert.Equal(t, "1900-01-01", formatInstant(time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2023-10-10T12:30:00Z", formatInstant(time.Date(2023, 10, 10, 12, 30, 0, 0, time.UTC)))
}
