// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package conform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statline/conform/schema"
)

func TestSchemaOptions(t *testing.T) {
	t.Run("WithExtraFields", func(t *testing.T) {
		opts := &SchemaValidatorOptions{}
		setter := WithExtraFields(ExtraForbid)
		setter(opts)
		require.Equal(t, ExtraForbid, opts.ExtraFields)
	})

	t.Run("WithStrictTypes", func(t *testing.T) {
		opts := &SchemaValidatorOptions{}
		setter := WithStrictTypes(true)
		setter(opts)
		require.True(t, opts.StrictTypes)
	})

	t.Run("WithPredicates", func(t *testing.T) {
		registry := schema.Registry{"always": func(interface{}) bool { return true }}
		opts := &SchemaValidatorOptions{}
		setter := WithPredicates(registry)
		setter(opts)
		_, found := opts.Predicates.Lookup("always")
		require.True(t, found)
	})

	t.Run("default Options()", func(t *testing.T) {
		opts := &SchemaValidatorOptions{}
		setters := opts.Options()

		target := &SchemaValidatorOptions{}
		for _, apply := range setters {
			apply(target)
		}
		require.Equal(t, opts, target)
	})

	t.Run("all set Options()", func(t *testing.T) {
		opts := &SchemaValidatorOptions{
			ExtraFields: ExtraIgnore,
			StrictTypes: true,
			Predicates:  schema.Registry{},
		}
		setters := opts.Options()

		target := &SchemaValidatorOptions{}
		for _, apply := range setters {
			apply(target)
		}
		require.Equal(t, opts, target)
	})
}

func TestSchemaOptions_ResolvePredicate(t *testing.T) {
	inline := schema.Predicate(func(interface{}) bool { return true }, "always passes")
	named := schema.NamedPredicate("words-capitalized", "")
	custom := schema.NamedPredicate("retired-number", "")
	unknown := schema.NamedPredicate("no-such-check", "")
	unnamed := schema.Constraint{Kind: schema.PredicateConstraint}

	opts := &SchemaValidatorOptions{
		Predicates: schema.Registry{"retired-number": func(interface{}) bool { return true }},
	}

	t.Run("inline functions win", func(t *testing.T) {
		fn, found := opts.resolvePredicate(&inline)
		require.True(t, found)
		assert.NotNil(t, fn)
	})

	t.Run("caller registry is consulted before the built-ins", func(t *testing.T) {
		fn, found := opts.resolvePredicate(&custom)
		require.True(t, found)
		assert.NotNil(t, fn)

		// a caller entry shadows a built-in of the same name
		shadowing := &SchemaValidatorOptions{
			Predicates: schema.Registry{"words-capitalized": func(interface{}) bool { return false }},
		}
		fn, found = shadowing.resolvePredicate(&named)
		require.True(t, found)
		assert.False(t, fn("San Antonio Spurs"))
	})

	t.Run("built-ins resolve last", func(t *testing.T) {
		fn, found := opts.resolvePredicate(&named)
		require.True(t, found)
		assert.True(t, fn("San Antonio Spurs"))
	})

	t.Run("unknown names do not resolve", func(t *testing.T) {
		_, found := opts.resolvePredicate(&unknown)
		assert.False(t, found)
	})

	t.Run("a predicate with neither function nor name never resolves", func(t *testing.T) {
		_, found := opts.resolvePredicate(&unnamed)
		assert.False(t, found)
	})
}
