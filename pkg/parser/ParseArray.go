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

// ParseArray extracts an array of raw nodes from an attribute of a raw
// document node.  Returns an empty slice if the attribute is missing.
func ParseArray(obj interface{}, name string) ([]interface{}, error) {
	m := reflect.ValueOf(obj)
	if m.Kind() != reflect.Map {
		return nil, errors.New("object with attribute " + name + " is not a map")
	}
	v := m.MapIndex(reflect.ValueOf(name))
	if !v.IsValid() {
		return make([]interface{}, 0), nil
	}
	list := reflect.ValueOf(v.Interface())
	if k := list.Kind(); k != reflect.Array && k != reflect.Slice {
		return nil, errors.New("attribute " + name + " is not an array")
	}
	out := make([]interface{}, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		out = append(out, list.Index(i).Interface())
	}
	return out, nil
}
