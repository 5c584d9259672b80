// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
	"os"
	"time"

	"github.com/go-openapi/swag/stringutils"
	"gopkg.in/yaml.v3"
)

// knownTypeNames are the type keywords accepted by schema documents,
// including the loader aliases.
var knownTypeNames = []string{
	"string", "integer", "int", "number", "float",
	"boolean", "bool", "date", "date-time", "datetime",
	"object", "array",
}

// document is the on-disk schema representation. YAML tags serve JSON
// documents too: JSON is parsed through the YAML reader.
type document struct {
	Fields []fieldDoc `yaml:"fields"`
}

type fieldDoc struct {
	Name     string     `yaml:"name"`
	Type     string     `yaml:"type"`
	Required bool       `yaml:"required"`
	Nullable bool       `yaml:"nullable"`
	Default  *yaml.Node `yaml:"-"`
	Example  *yaml.Node `yaml:"-"`

	// composite types
	Items  *fieldDoc  `yaml:"items"`
	Fields []fieldDoc `yaml:"fields"`

	// constraint keywords; assembled into descriptors in canonical keyword
	// order (bounds, enum, lengths, pattern, items, dates, predicate), not
	// document order, which a struct decode does not preserve
	Minimum          *float64      `yaml:"minimum"`
	ExclusiveMinimum bool          `yaml:"exclusiveMinimum"`
	Maximum          *float64      `yaml:"maximum"`
	ExclusiveMaximum bool          `yaml:"exclusiveMaximum"`
	MultipleOf       *float64      `yaml:"multipleOf"`
	Enum             []interface{} `yaml:"enum"`
	MinLength        *int64        `yaml:"minLength"`
	MaxLength        *int64        `yaml:"maxLength"`
	Pattern          string        `yaml:"pattern"`
	MinItems         *int64        `yaml:"minItems"`
	MaxItems         *int64        `yaml:"maxItems"`
	UniqueItems      bool          `yaml:"uniqueItems"`
	NotBefore        string        `yaml:"notBefore"`
	NotAfter         string        `yaml:"notAfter"`
	Predicate        string        `yaml:"predicate"`
	Reason           string        `yaml:"reason"`
}

// UnmarshalYAML decodes a field entry. The struct decode on its own loses
// explicit nulls ("default: null" leaves the node pointer nil, the same as no
// default at all), so default and example nodes are recovered from the
// mapping afterwards.
func (f *fieldDoc) UnmarshalYAML(n *yaml.Node) error {
	type plain fieldDoc
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*f = fieldDoc(p)
	for i := 0; i+1 < len(n.Content); i += 2 {
		switch n.Content[i].Value {
		case "default":
			f.Default = n.Content[i+1]
		case "example":
			f.Example = n.Content[i+1]
		}
	}
	return nil
}

// Load reads a schema document from path. The document may be YAML or JSON.
func Load(path string) (*Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema document: %w", err)
	}
	s, err := FromYAML(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// FromYAML parses a YAML schema document.
func FromYAML(data []byte) (*Schema, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema document: %w", err)
	}
	if len(doc.Fields) == 0 {
		return nil, fmt.Errorf("schema document declares no fields")
	}
	return buildSchema(doc.Fields, "")
}

// FromJSON parses a JSON schema document. JSON being a YAML subset, this is
// the YAML reader under a clearer name for JSON call sites.
func FromJSON(data []byte) (*Schema, error) {
	return FromYAML(data)
}

func buildSchema(docs []fieldDoc, at string) (*Schema, error) {
	fields := make([]*FieldSpec, 0, len(docs))
	for i := range docs {
		f, err := buildField(&docs[i], at)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return New(fields...), nil
}

func buildField(doc *fieldDoc, parent string) (*FieldSpec, error) {
	if doc.Name == "" {
		return nil, fmt.Errorf("%s: field declared without a name", orRoot(parent))
	}
	at := childPath(parent, doc.Name)
	typ, err := buildType(doc, at)
	if err != nil {
		return nil, err
	}

	f := NewField(doc.Name, typ)
	f.Required = doc.Required
	f.Nullable = doc.Nullable
	if doc.Default != nil {
		var v interface{}
		if err := doc.Default.Decode(&v); err != nil {
			return nil, fmt.Errorf("%s: malformed default: %w", at, err)
		}
		f.WithDefault(v)
	}
	if doc.Example != nil {
		var v interface{}
		if err := doc.Example.Decode(&v); err != nil {
			return nil, fmt.Errorf("%s: malformed example: %w", at, err)
		}
		f.WithExample(v)
	}

	constraints, err := buildConstraints(doc, at)
	if err != nil {
		return nil, err
	}
	f.WithConstraints(constraints...)
	return f, nil
}

func buildType(doc *fieldDoc, at string) (Type, error) {
	if doc.Type == "" {
		return Type{}, fmt.Errorf("%s: field declared without a type", at)
	}
	if !stringutils.ContainsStrings(knownTypeNames, doc.Type) {
		return Type{}, fmt.Errorf("%s: unknown type %q", at, doc.Type)
	}

	switch kind := KindFromName(doc.Type); kind {
	case KindArray:
		if doc.Items == nil {
			return Type{}, fmt.Errorf("%s: array requires an items definition", at)
		}
		elem, err := buildElem(doc.Items, at+".items")
		if err != nil {
			return Type{}, err
		}
		return ItemsOf(elem), nil
	case KindObject:
		if len(doc.Fields) == 0 {
			return Type{}, fmt.Errorf("%s: object requires a non-empty fields list", at)
		}
		sub, err := buildSchema(doc.Fields, at)
		if err != nil {
			return Type{}, err
		}
		return ObjectOf(sub), nil
	default:
		return Type{Kind: kind}, nil
	}
}

// buildElem builds the element description of an array. Elements need no
// name; constraints and nullability apply to every entry.
func buildElem(doc *fieldDoc, at string) (*FieldSpec, error) {
	typ, err := buildType(doc, at)
	if err != nil {
		return nil, err
	}
	constraints, err := buildConstraints(doc, at)
	if err != nil {
		return nil, err
	}
	return &FieldSpec{
		Name:        doc.Name,
		Type:        typ,
		Nullable:    doc.Nullable,
		Constraints: constraints,
	}, nil
}

func buildConstraints(doc *fieldDoc, at string) ([]Constraint, error) {
	var out []Constraint

	if doc.Minimum != nil {
		if doc.ExclusiveMinimum {
			out = append(out, ExclusiveMinimum(*doc.Minimum))
		} else {
			out = append(out, Minimum(*doc.Minimum))
		}
	}
	if doc.Maximum != nil {
		if doc.ExclusiveMaximum {
			out = append(out, ExclusiveMaximum(*doc.Maximum))
		} else {
			out = append(out, Maximum(*doc.Maximum))
		}
	}
	if doc.MultipleOf != nil {
		out = append(out, MultipleOf(*doc.MultipleOf))
	}
	if len(doc.Enum) > 0 {
		out = append(out, Enum(doc.Enum...))
	}
	if doc.MinLength != nil {
		out = append(out, MinLength(*doc.MinLength))
	}
	if doc.MaxLength != nil {
		out = append(out, MaxLength(*doc.MaxLength))
	}
	if doc.Pattern != "" {
		out = append(out, Pattern(doc.Pattern))
	}
	if doc.MinItems != nil {
		out = append(out, MinItems(*doc.MinItems))
	}
	if doc.MaxItems != nil {
		out = append(out, MaxItems(*doc.MaxItems))
	}
	if doc.UniqueItems {
		out = append(out, UniqueItems())
	}
	if doc.NotBefore != "" {
		t, err := parseInstant(doc.NotBefore)
		if err != nil {
			return nil, fmt.Errorf("%s: malformed notBefore %q: %w", at, doc.NotBefore, err)
		}
		out = append(out, NotBefore(t))
	}
	if doc.NotAfter != "" {
		t, err := parseInstant(doc.NotAfter)
		if err != nil {
			return nil, fmt.Errorf("%s: malformed notAfter %q: %w", at, doc.NotAfter, err)
		}
		out = append(out, NotAfter(t))
	}
	if doc.Predicate != "" {
		reason := doc.Reason
		if reason == "" {
			reason = fmt.Sprintf("must satisfy %q", doc.Predicate)
		}
		out = append(out, NamedPredicate(doc.Predicate, reason))
	}
	return out, nil
}

// parseInstant accepts a full date or an RFC3339 date-time.
func parseInstant(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func childPath(at, name string) string {
	if at == "" {
		return name
	}
	return at + "." + name
}

func orRoot(at string) string {
	if at == "" {
		return "schema"
	}
	return at
}
