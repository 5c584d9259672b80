// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

// Package schema declares the data model validated by package conform: typed
// fields with presence rules, defaults, and ordered constraint descriptors,
// assembled into ordered, possibly nested schemas.
//
// Schemas are built once, either programmatically:
//
//	player := schema.New(
//		schema.NewField("id", schema.Integer()).AsRequired(),
//		schema.NewField("dob", schema.Date()),
//	)
//
// or from a YAML/JSON document via Load, FromYAML or FromJSON. A built
// Schema is immutable and safe for concurrent use by any number of
// validators.
package schema

// Schema is an ordered sequence of field declarations. Order matters twice:
// fields validate in declaration order, and a validated record preserves it.
type Schema struct {
	fields []*FieldSpec
	index  map[string]int
}

// New assembles a Schema from field declarations. Nil entries are skipped.
// Duplicate names are retained (the first wins for lookup) so that the
// definition linter can report them instead of masking the mistake here.
func New(fields ...*FieldSpec) *Schema {
	s := &Schema{index: make(map[string]int, len(fields))}
	for _, f := range fields {
		if f == nil {
			continue
		}
		if _, seen := s.index[f.Name]; !seen {
			s.index[f.Name] = len(s.fields)
		}
		s.fields = append(s.fields, f)
	}
	return s
}

// Len reports the number of declared fields.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.fields)
}

// Fields returns the declarations in order. The slice is a copy; the specs
// it points to are shared and must not be mutated after first use.
func (s *Schema) Fields() []*FieldSpec {
	if s == nil {
		return nil
	}
	out := make([]*FieldSpec, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field looks a declaration up by name.
func (s *Schema) Field(name string) (*FieldSpec, bool) {
	if s == nil {
		return nil, false
	}
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[i], true
}

// Names returns the declared field names in order, including duplicates.
func (s *Schema) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}
