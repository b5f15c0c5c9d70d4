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

// ParseStringArray extracts an array of strings from an attribute of a raw
// document node.  Returns an empty slice if the attribute is missing.
func ParseStringArray(obj interface{}, name string) ([]string, error) {
	m := reflect.ValueOf(obj)
	if m.Kind() != reflect.Map {
		return nil, errors.New("object with attribute " + name + " is not a map")
	}
	v := m.MapIndex(reflect.ValueOf(name))
	if !v.IsValid() {
		return make([]string, 0), nil
	}
	list := reflect.ValueOf(v.Interface())
	if k := list.Kind(); k != reflect.Array && k != reflect.Slice {
		return nil, errors.New("attribute " + name + " is not an array")
	}
	out := make([]string, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		value, ok := list.Index(i).Interface().(string)
		if !ok {
			return nil, errors.Errorf("attribute %s has non-string entry %v", name, list.Index(i).Interface())
		}
		out = append(out, value)
	}
	return out, nil
}
