// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package conform

import (
	"reflect"
	"regexp"
	"strconv"
	"sync"
)

const (
	// the conform validators report values as coming from the request body,
	// the only location this package validates
	inBody = "body"
)

// Helpers available at the package level
var (
	pathHelp  = new(pathHelper)
	valueHelp = new(valueHelper)
)

type pathHelper struct{}

// fieldPath joins a parent path and a field name with a dot. An empty parent
// denotes the root object.
func (h *pathHelper) fieldPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

// indexedPath locates an array element, e.g. "teams.0".
func (h *pathHelper) indexedPath(parent string, index int) string {
	return h.fieldPath(parent, strconv.Itoa(index))
}

type valueHelper struct{}

// asInt64 reads any native numeric value as int64, without error checking
// (implements an implicit type upgrade).
func (h *valueHelper) asInt64(val interface{}) int64 {
	v := reflect.ValueOf(val)
	switch v.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return int64(v.Float())
	default:
		// Non-numeric values are already ruled out by coercion
		return 0
	}
}

// asUint64 reads any native numeric value as uint64, without error checking.
func (h *valueHelper) asUint64(val interface{}) uint64 {
	v := reflect.ValueOf(val)
	switch v.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return uint64(v.Float())
	default:
		return 0
	}
}

// asFloat64 reads any native numeric value as float64, without error checking.
func (h *valueHelper) asFloat64(val interface{}) float64 {
	v := reflect.ValueOf(val)
	switch v.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	default:
		return 0
	}
}

// isNumeric reports whether the value is a native Go number.
func (h *valueHelper) isNumeric(val interface{}) bool {
	switch val.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	default:
		return false
	}
}

// compiled patterns are cached: schemas are immutable and shared across
// concurrent validation calls
var rxCache = &sync.Map{}

func compileRegexp(pattern string) (*regexp.Regexp, error) {
	if cached, ok := rxCache.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}
	rx, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	rxCache.Store(pattern, rx)
	return rx, nil
}
