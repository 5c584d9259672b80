// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package schema

// FieldSpec declares a single schema field: its name, type, presence rules,
// default, and an ordered list of constraint descriptors.
//
// Default and HasDefault are separate so that a nil default remains
// expressible: an optional field may legitimately default to null.
type FieldSpec struct {
	Name        string
	Type        Type
	Required    bool
	Nullable    bool
	Default     interface{}
	HasDefault  bool
	Example     interface{}
	Constraints []Constraint
}

// NewField starts a field declaration. Follow up with the With*/As* builders:
//
//	schema.NewField("draft_year", schema.Integer()).
//		AsRequired().
//		WithConstraints(schema.Minimum(1949))
func NewField(name string, typ Type) *FieldSpec {
	return &FieldSpec{Name: name, Type: typ}
}

// AsRequired marks the field required: absence without a default is an error.
func (f *FieldSpec) AsRequired() *FieldSpec {
	f.Required = true
	return f
}

// AsOptional marks the field optional (the default for a fresh FieldSpec).
func (f *FieldSpec) AsOptional() *FieldSpec {
	f.Required = false
	return f
}

// AsNullable allows an explicit null value in place of a typed one.
func (f *FieldSpec) AsNullable() *FieldSpec {
	f.Nullable = true
	return f
}

// WithDefault declares a value substituted when the field is absent.
// WithDefault(nil) declares an explicit null default.
func (f *FieldSpec) WithDefault(value interface{}) *FieldSpec {
	f.Default = value
	f.HasDefault = true
	return f
}

// WithExample attaches documentation metadata; the definition linter checks
// it against the field spec, validation ignores it.
func (f *FieldSpec) WithExample(value interface{}) *FieldSpec {
	f.Example = value
	return f
}

// WithConstraints appends constraint descriptors, preserving order.
func (f *FieldSpec) WithConstraints(constraints ...Constraint) *FieldSpec {
	f.Constraints = append(f.Constraints, constraints...)
	return f
}
