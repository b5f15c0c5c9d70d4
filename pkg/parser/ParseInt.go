// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package parser

import (
	"reflect"
)

// ParseInt extracts an integer attribute from a raw document node.  JSON
// deserialization yields float64 for all numbers, so both integer and
// float kinds are accepted.  Returns the fallback if the attribute is
// missing or not a number.
func ParseInt(obj interface{}, name string, fallback int) int {
	m := reflect.ValueOf(obj)
	if m.Kind() != reflect.Map {
		return fallback
	}
	v := m.MapIndex(reflect.ValueOf(name))
	if !v.IsValid() {
		return fallback
	}
	switch value := v.Interface().(type) {
	case int:
		return value
	case int32:
		return int(value)
	case int64:
		return int(value)
	case float32:
		return int(value)
	case float64:
		return int(value)
	}
	return fallback
}
