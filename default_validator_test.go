// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package conform

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statline/conform/schema"
)

func makeDefinitionValidator(fields ...*schema.FieldSpec) *DefinitionValidator {
	return NewDefinitionValidator(schema.New(fields...), nil)
}

func TestDefault_ValidatePlayer(t *testing.T) {
	s, err := schema.Load(filepath.Join("fixtures", "schemas", "player.yaml"))
	require.NoError(t, err)

	validator := NewDefinitionValidator(s, nil)
	myDefaultValidator := &defaultValidator{DefinitionValidator: validator}
	res := myDefaultValidator.Validate()
	assert.Empty(t, res.Errors)
}

func TestDefault_ValidateDefaults(t *testing.T) {
	t.Run("defaults satisfying their declaration pass", func(t *testing.T) {
		validator := makeDefinitionValidator(
			schema.NewField("jersey", schema.Integer()).
				WithDefault(21.0).
				WithConstraints(schema.Minimum(1)),
			schema.NewField("position", schema.String()).
				WithDefault("C").
				WithConstraints(schema.Enum("C", "F", "G")),
			schema.NewField("dob", schema.Date()).
				AsNullable().
				WithDefault(nil),
		)
		myDefaultValidator := &defaultValidator{DefinitionValidator: validator}
		res := myDefaultValidator.Validate()
		assert.Empty(t, res.Errors)
		assert.Empty(t, res.Warnings)
	})

	t.Run("defaults are found in nested objects", func(t *testing.T) {
		validator := makeDefinitionValidator(
			schema.NewField("career_stats", schema.ObjectOf(schema.New(
				schema.NewField("apg", schema.Number()).
					WithDefault("three").
					WithConstraints(schema.Minimum(0)),
			))),
		)
		myDefaultValidator := &defaultValidator{DefinitionValidator: validator}
		res := myDefaultValidator.Validate()
		require.NotEmpty(t, res.Errors)
		assert.Contains(t, res.Errors[0].Error(), `default value for field "career_stats.apg" does not validate its declaration`)
	})

	t.Run("a failing default reports the underlying violation too", func(t *testing.T) {
		validator := makeDefinitionValidator(
			schema.NewField("jersey", schema.Integer()).
				WithDefault(0.0).
				WithConstraints(schema.Minimum(1)),
		)
		myDefaultValidator := &defaultValidator{DefinitionValidator: validator}
		res := myDefaultValidator.Validate()
		require.Len(t, res.Errors, 2)
		assert.Contains(t, res.Errors[0].Error(), `default value for field "jersey" does not validate its declaration`)
		assert.Contains(t, res.Errors[1].Error(), "jersey in body should be greater than or equal to 1")
	})

	t.Run("a default of the wrong type is caught by coercion", func(t *testing.T) {
		validator := makeDefinitionValidator(
			schema.NewField("jersey", schema.Integer()).WithDefault("twenty-one"),
		)
		myDefaultValidator := &defaultValidator{DefinitionValidator: validator}
		res := myDefaultValidator.Validate()
		require.NotEmpty(t, res.Errors)
		assert.Contains(t, res.Errors[1].Error(), "jersey in body must be of type integer")
	})

	t.Run("required with a default is a warning, not an error", func(t *testing.T) {
		validator := makeDefinitionValidator(
			schema.NewField("jersey", schema.Integer()).
				AsRequired().
				WithDefault(21.0),
		)
		myDefaultValidator := &defaultValidator{DefinitionValidator: validator}
		res := myDefaultValidator.Validate()
		assert.Empty(t, res.Errors)
		require.NotEmpty(t, res.Warnings)
		assert.Contains(t, res.Warnings[0].Error(), `field "jersey" is required but carries a default`)
	})
}

func TestDefault_EdgeCase(t *testing.T) {
	// Testing guards
	var myDefaultvalidator *defaultValidator
	res := myDefaultvalidator.Validate()
	assert.True(t, res.IsValid())

	myDefaultvalidator = &defaultValidator{}
	res = myDefaultvalidator.Validate()
	assert.True(t, res.IsValid())
}
