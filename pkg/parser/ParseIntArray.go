// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package parser

import (
	"reflect"

	"github.com/pkg/errors"
)

// ParseIntArray extracts an array of integers from an attribute of a raw
// document node.  Returns an empty slice if the attribute is missing.
func ParseIntArray(obj interface{}, name string) ([]int, error) {
	m := reflect.ValueOf(obj)
	if m.Kind() != reflect.Map {
		return nil, errors.New("object with attribute " + name + " is not a map")
	}
	v := m.MapIndex(reflect.ValueOf(name))
	if !v.IsValid() {
		return make([]int, 0), nil
	}
	list := reflect.ValueOf(v.Interface())
	if k := list.Kind(); k != reflect.Array && k != reflect.Slice {
		return nil, errors.New("attribute " + name + " is not an array")
	}
	out := make([]int, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		switch value := list.Index(i).Interface().(type) {
		case int:
			out = append(out, value)
		case int64:
			out = append(out, int(value))
		case float64:
			out = append(out, int(value))
		default:
			return nil, errors.Errorf("attribute %s has non-numeric entry %v", name, value)
		}
	}
	return out, nil
}
