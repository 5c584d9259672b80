// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package conform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/go-openapi/jsonpointer"
	"github.com/go-openapi/strfmt"
	"github.com/mitchellh/mapstructure"
)

// Record is the coerced, validated output of a validation call.
//
// Field values are held in schema declaration order. Nested objects are
// records themselves, arrays are []interface{} of coerced elements, dates
// and date-times are strfmt values.
//
// Undeclared input keys never land among the validated fields: they are kept
// in a side mapping, available from Extras.
type Record struct {
	names  []string
	values map[string]interface{}

	extraNames  []string
	extraValues map[string]interface{}
}

func newRecord(capacity int) *Record {
	return &Record{
		names:  make([]string, 0, capacity),
		values: make(map[string]interface{}, capacity),
	}
}

func (r *Record) set(name string, value interface{}) {
	if _, seen := r.values[name]; !seen {
		r.names = append(r.names, name)
	}
	r.values[name] = value
}

func (r *Record) setExtra(name string, value interface{}) {
	if r.extraValues == nil {
		r.extraValues = make(map[string]interface{})
	}
	if _, seen := r.extraValues[name]; !seen {
		r.extraNames = append(r.extraNames, name)
	}
	r.extraValues[name] = value
}

// Len counts the validated fields.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.names)
}

// Names lists the validated field names in declaration order.
func (r *Record) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Value yields the coerced value of a validated field.
func (r *Record) Value(name string) (interface{}, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.values[name]
	return v, ok
}

// AsMap renders the validated fields as a plain nested mapping, nested
// records flattened recursively. The result round-trips: validating it again
// against the same schema succeeds and yields the same record.
func (r *Record) AsMap() map[string]interface{} {
	if r == nil {
		return nil
	}
	out := make(map[string]interface{}, len(r.names))
	for _, name := range r.names {
		out[name] = flattenValue(r.values[name])
	}
	return out
}

func flattenValue(v interface{}) interface{} {
	switch value := v.(type) {
	case *Record:
		return value.AsMap()
	case []interface{}:
		out := make([]interface{}, len(value))
		for i, elem := range value {
			out[i] = flattenValue(elem)
		}
		return out
	default:
		return v
	}
}

// ExtraNames lists the undeclared keys found in the input, sorted.
func (r *Record) ExtraNames() []string {
	if r == nil {
		return nil
	}
	names := make([]string, len(r.extraNames))
	copy(names, r.extraNames)
	return names
}

// Extras yields the side mapping of undeclared keys to their raw values.
func (r *Record) Extras() map[string]interface{} {
	if r == nil || len(r.extraValues) == 0 {
		return nil
	}
	out := make(map[string]interface{}, len(r.extraValues))
	for k, v := range r.extraValues {
		out[k] = v
	}
	return out
}

// JSONLookup implements jsonpointer.JSONPointable, so a record tree can be
// addressed with JSON pointers.
func (r *Record) JSONLookup(token string) (interface{}, error) {
	if v, ok := r.values[token]; ok {
		return v, nil
	}
	if v, ok := r.extraValues[token]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("record has no field %q", token)
}

// Pointer resolves a JSON pointer against the record, e.g. "/teams/0/name".
func (r *Record) Pointer(ptr string) (interface{}, error) {
	p, err := jsonpointer.New(ptr)
	if err != nil {
		return nil, err
	}
	v, _, err := p.Get(r)
	return v, err
}

// Decode unpacks the record into a tagged struct (or a map), converting
// strfmt temporal values on the way when the target asks for time.Time or
// string. Field matching uses json tags.
func (r *Record) Decode(target interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     target,
		TagName:    "json",
		DecodeHook: decodeTemporalHook,
	})
	if err != nil {
		return err
	}
	return dec.Decode(r.AsMap())
}

// decodeTemporalHook bridges strfmt values to common target types.
func decodeTemporalHook(from reflect.Value, to reflect.Value) (interface{}, error) {
	data := from.Interface()
	switch to.Interface().(type) {
	case time.Time:
		switch d := data.(type) {
		case strfmt.Date:
			return time.Time(d), nil
		case strfmt.DateTime:
			return time.Time(d), nil
		}
	case string:
		switch d := data.(type) {
		case strfmt.Date:
			return d.String(), nil
		case strfmt.DateTime:
			return d.String(), nil
		}
	}
	return data, nil
}

// MarshalJSON renders the record as a JSON object, validated fields first in
// declaration order, extra fields last.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	writePair := func(name string, value interface{}) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(name)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(v)
		return nil
	}
	for _, name := range r.names {
		if err := writePair(name, r.values[name]); err != nil {
			return nil, err
		}
	}
	for _, name := range r.extraNames {
		if err := writePair(name, r.extraValues[name]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
