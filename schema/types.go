// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package schema

// Kind enumerates the declarable field types.
type Kind uint8

const (
	// KindInvalid is the zero Kind. It never validates.
	KindInvalid Kind = iota
	// KindString declares a plain string value.
	KindString
	// KindInteger declares an integral number.
	KindInteger
	// KindNumber declares a floating point number.
	KindNumber
	// KindBoolean declares a boolean.
	KindBoolean
	// KindDate declares a full-date (RFC3339 date part, e.g. 1976-04-25).
	KindDate
	// KindDateTime declares a date-time (RFC3339, fractional seconds and
	// missing time zone accepted).
	KindDateTime
	// KindObject declares a nested mapping validated by a sub-schema.
	KindObject
	// KindArray declares a sequence of a single element type.
	KindArray
)

// String yields the canonical type name, as used by the document loader and
// in validation messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindDate:
		return "date"
	case KindDateTime:
		return "date-time"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// IsScalar reports whether the kind is a primitive scalar (everything but
// object and array).
func (k Kind) IsScalar() bool {
	switch k {
	case KindString, KindInteger, KindNumber, KindBoolean, KindDate, KindDateTime:
		return true
	default:
		return false
	}
}

// Type is a recursive type descriptor. Scalars carry only a Kind; arrays
// describe their elements in Elem; objects carry their sub-schema in Sub.
//
// Elem is a full field description so elements can declare constraints of
// their own (an enum on every entry, a floor on every year). Its Name,
// Required and Default attributes have no meaning in element context and are
// ignored.
type Type struct {
	Kind Kind
	Elem *FieldSpec
	Sub  *Schema
}

// String declares a string type.
func String() Type { return Type{Kind: KindString} }

// Integer declares an integer type.
func Integer() Type { return Type{Kind: KindInteger} }

// Number declares a floating point type.
func Number() Type { return Type{Kind: KindNumber} }

// Boolean declares a boolean type.
func Boolean() Type { return Type{Kind: KindBoolean} }

// Date declares a full-date type.
func Date() Type { return Type{Kind: KindDate} }

// DateTime declares a date-time type.
func DateTime() Type { return Type{Kind: KindDateTime} }

// ListOf declares a sequence of unconstrained elem values.
func ListOf(elem Type) Type {
	return Type{Kind: KindArray, Elem: &FieldSpec{Type: elem}}
}

// ItemsOf declares a sequence whose elements are described by item,
// constraints included.
func ItemsOf(item *FieldSpec) Type {
	return Type{Kind: KindArray, Elem: item}
}

// ObjectOf declares a nested object validated by sub.
func ObjectOf(sub *Schema) Type {
	return Type{Kind: KindObject, Sub: sub}
}

// Resolvable reports whether the type tree is complete: arrays have an
// element type and objects a sub-schema, recursively. The definition linter
// turns a false answer into a proper error with a path.
func (t Type) Resolvable() bool {
	switch t.Kind {
	case KindArray:
		return t.Elem != nil && t.Elem.Type.Resolvable()
	case KindObject:
		return t.Sub != nil && t.Sub.Len() > 0
	case KindInvalid:
		return false
	default:
		return true
	}
}

// String renders the type tree, e.g. "array of object" or "integer".
func (t Type) String() string {
	if t.Kind == KindArray && t.Elem != nil {
		return "array of " + t.Elem.Type.String()
	}
	return t.Kind.String()
}

// KindFromName maps a canonical type name to its Kind. The alias "datetime"
// is accepted alongside "date-time", and "bool" alongside "boolean".
func KindFromName(name string) Kind {
	switch name {
	case "string":
		return KindString
	case "integer", "int":
		return KindInteger
	case "number", "float":
		return KindNumber
	case "boolean", "bool":
		return KindBoolean
	case "date":
		return KindDate
	case "date-time", "datetime":
		return KindDateTime
	case "object":
		return KindObject
	case "array":
		return KindArray
	default:
		return KindInvalid
	}
}
