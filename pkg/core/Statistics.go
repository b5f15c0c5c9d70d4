// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package core

import (
	"context"
)

const (
	StatisticsTypeAttributes = "attributes"
	StatisticsTypeUrl        = "url"
)

// Attribute is a single statistical attribute exposed by a layer.
type Attribute struct {
	Labels    map[string]string
	Attribute string
}

func (a Attribute) Map(ctx context.Context) map[string]interface{} {
	return map[string]interface{}{
		"labels":    a.Labels,
		"attribute": a.Attribute,
	}
}

// Statistics describes a statistical query surface of a WMS layer, either
// a set of queryable attributes or an external url.
type Statistics struct {
	Type       string
	Labels     map[string]string
	Attributes []Attribute
	Url        string
}

func (s Statistics) Map(ctx context.Context) map[string]interface{} {
	m := map[string]interface{}{
		"type":   s.Type,
		"labels": s.Labels,
	}
	if s.Type == StatisticsTypeAttributes {
		attributes := make([]map[string]interface{}, 0, len(s.Attributes))
		for _, a := range s.Attributes {
			attributes = append(attributes, a.Map(ctx))
		}
		m["attributes"] = attributes
	}
	if len(s.Url) > 0 {
		m["url"] = s.Url
	}
	return m
}
