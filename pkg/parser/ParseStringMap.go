// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package parser

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// ParseStringMap extracts a map of string to string from an attribute of a
// raw document node, used for localized label bundles.  Returns an empty
// map if the attribute is missing.
func ParseStringMap(obj interface{}, name string) (map[string]string, error) {
	m := reflect.ValueOf(obj)
	if m.Kind() != reflect.Map {
		return nil, errors.New("object with attribute " + name + " is not a map")
	}
	v := m.MapIndex(reflect.ValueOf(name))
	if !v.IsValid() {
		return map[string]string{}, nil
	}
	inner := reflect.ValueOf(v.Interface())
	if inner.Kind() != reflect.Map {
		return nil, errors.New("attribute " + name + " is not a map")
	}
	out := map[string]string{}
	for _, key := range inner.MapKeys() {
		value, ok := inner.MapIndex(key).Interface().(string)
		if !ok {
			return nil, errors.Errorf("attribute %s has non-string value %v", name, inner.MapIndex(key).Interface())
		}
		out[fmt.Sprint(key.Interface())] = value
	}
	return out, nil
}
