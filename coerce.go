// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package conform

import (
	"encoding/json"
	"math"
	"time"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag/conv"
	"github.com/go-openapi/swag/stringutils"

	"github.com/statline/conform/schema"
)

// looseBoolStrings are the string renderings accepted as booleans when
// strict types are off. Membership decides acceptance, conv decides truth.
var looseBoolStrings = []string{
	"true", "false", "1", "0", "yes", "no", "y", "n", "on", "off",
}

// naiveDateTimeLayouts recognize RFC3339-like timestamps without a time
// zone. Those read as UTC.
var naiveDateTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// coerceScalar brings a raw input value to its declared scalar kind.
//
// Coercion is idempotent: a value already carrying the target native type is
// returned unchanged, so a validated record can be fed back to validation.
func coerceScalar(path string, kind schema.Kind, value interface{}, formats strfmt.Registry, opts *SchemaValidatorOptions) (interface{}, *Result) {
	switch kind { //nolint:exhaustive
	case schema.KindString:
		return coerceString(path, value, opts)
	case schema.KindInteger:
		return coerceInteger(path, value, opts)
	case schema.KindNumber:
		return coerceNumber(path, value, opts)
	case schema.KindBoolean:
		return coerceBoolean(path, value, opts)
	case schema.KindDate:
		return coerceDate(path, value, formats, opts)
	case schema.KindDateTime:
		return coerceDateTime(path, value, formats, opts)
	default:
		return nil, typeFailure(path, kind.String(), value)
	}
}

func typeFailure(path, typeName string, value interface{}) *Result {
	res := new(Result)
	res.AddErrors(errors.InvalidType(path, inBody, typeName, value))
	return res
}

func coerceString(path string, value interface{}, opts *SchemaValidatorOptions) (interface{}, *Result) {
	switch v := value.(type) {
	case string:
		return v, new(Result)
	case json.Number:
		if opts.StrictTypes {
			break
		}
		return v.String(), new(Result)
	case bool:
		if opts.StrictTypes {
			break
		}
		return conv.FormatBool(v), new(Result)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32:
		if opts.StrictTypes {
			break
		}
		return conv.FormatInteger(valueHelp.asInt64(v)), new(Result)
	case uint64:
		if opts.StrictTypes {
			break
		}
		return conv.FormatUinteger(v), new(Result)
	case float32, float64:
		if opts.StrictTypes {
			break
		}
		return conv.FormatFloat(valueHelp.asFloat64(v)), new(Result)
	}
	return nil, typeFailure(path, "string", value)
}

func coerceInteger(path string, value interface{}, opts *SchemaValidatorOptions) (interface{}, *Result) {
	switch v := value.(type) {
	case int, int8, int16, int32, int64:
		return valueHelp.asInt64(v), new(Result)
	case uint, uint8, uint16, uint32:
		return valueHelp.asInt64(v), new(Result)
	case uint64:
		if v > math.MaxInt64 {
			break
		}
		return int64(v), new(Result)
	case float32, float64:
		// encoding/json hands integers over as float64: accept the
		// integral ones regardless of strictness
		f := valueHelp.asFloat64(v)
		if math.Trunc(f) == f && f >= math.MinInt64 && f <= math.MaxInt64 {
			return int64(f), new(Result)
		}
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, new(Result)
		}
	case string:
		if opts.StrictTypes {
			break
		}
		if i, err := conv.ConvertInteger[int64](v); err == nil {
			return i, new(Result)
		}
	}
	return nil, typeFailure(path, "integer", value)
}

func coerceNumber(path string, value interface{}, opts *SchemaValidatorOptions) (interface{}, *Result) {
	switch v := value.(type) {
	case float32, float64:
		return valueHelp.asFloat64(v), new(Result)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return valueHelp.asFloat64(v), new(Result)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f, new(Result)
		}
	case string:
		if opts.StrictTypes {
			break
		}
		if f, err := conv.ConvertFloat[float64](v); err == nil {
			return f, new(Result)
		}
	}
	return nil, typeFailure(path, "number", value)
}

func coerceBoolean(path string, value interface{}, opts *SchemaValidatorOptions) (interface{}, *Result) {
	switch v := value.(type) {
	case bool:
		return v, new(Result)
	case string:
		if opts.StrictTypes {
			break
		}
		if stringutils.ContainsStringsCI(looseBoolStrings, v) {
			b, _ := conv.ConvertBool(v)
			return b, new(Result)
		}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		if opts.StrictTypes {
			break
		}
		// only the two canonical numeric renderings pass
		switch valueHelp.asFloat64(v) {
		case 0:
			return false, new(Result)
		case 1:
			return true, new(Result)
		}
	}
	return nil, typeFailure(path, "boolean", value)
}

func coerceDate(path string, value interface{}, formats strfmt.Registry, opts *SchemaValidatorOptions) (interface{}, *Result) {
	switch v := value.(type) {
	case strfmt.Date:
		return v, new(Result)
	case time.Time:
		return strfmt.Date(v), new(Result)
	case string:
		fv := newFormatValidator(path, inBody, "date", formats, opts)
		if res := fv.Validate(v); res.HasErrors() {
			return nil, res
		}
		parsed, err := formats.Parse("date", v)
		if err != nil {
			break
		}
		switch d := parsed.(type) {
		case *strfmt.Date:
			return *d, new(Result)
		case strfmt.Date:
			return d, new(Result)
		}
	}
	return nil, typeFailure(path, "date", value)
}

func coerceDateTime(path string, value interface{}, formats strfmt.Registry, opts *SchemaValidatorOptions) (interface{}, *Result) {
	switch v := value.(type) {
	case strfmt.DateTime:
		return v, new(Result)
	case time.Time:
		return strfmt.DateTime(v), new(Result)
	case string:
		fv := newFormatValidator(path, inBody, "date-time", formats, opts)
		if res := fv.Validate(v); !res.HasErrors() {
			parsed, err := formats.Parse("date-time", v)
			if err == nil {
				switch d := parsed.(type) {
				case *strfmt.DateTime:
					return *d, new(Result)
				case strfmt.DateTime:
					return d, new(Result)
				}
			}
		}
		// tolerate timestamps without a zone, read as UTC
		for _, layout := range naiveDateTimeLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return strfmt.DateTime(t), new(Result)
			}
		}
	}
	return nil, typeFailure(path, "date-time", value)
}
