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

// WMSLayer is a layer served by one or more WMS servers.  Times holds the
// raw ISO-8601 time strings declared by the layer; ordering of Times is
// imposed by the catalog time aggregation, not here.
type WMSLayer struct {
	Id          int
	Name        string
	ServerUrls  []string
	ImageFormat string
	Visible     bool
	Legend      *Legend
	Styles      map[string]string
	Times       []string
	Statistics  []Statistics
}

func (l *WMSLayer) GetID() int {
	return l.Id
}

func (l *WMSLayer) GetVisible() bool {
	return l.Visible
}

// Queryable reports whether the layer exposes at least one statistics
// descriptor.
func (l *WMSLayer) Queryable() bool {
	return len(l.Statistics) > 0
}

func (l *WMSLayer) Map(ctx context.Context) map[string]interface{} {
	m := map[string]interface{}{
		"type":       "wms",
		"id":         l.Id,
		"name":       l.Name,
		"serverUrls": l.ServerUrls,
		"visible":    l.Visible,
	}
	if len(l.ImageFormat) > 0 {
		m["imageFormat"] = l.ImageFormat
	}
	if l.Legend != nil {
		m["legend"] = l.Legend.Map(ctx)
	}
	if len(l.Styles) > 0 {
		m["styles"] = l.Styles
	}
	if len(l.Times) > 0 {
		m["times"] = l.Times
	}
	if len(l.Statistics) > 0 {
		statistics := make([]map[string]interface{}, 0, len(l.Statistics))
		for _, s := range l.Statistics {
			statistics = append(statistics, s.Map(ctx))
		}
		m["statistics"] = statistics
	}
	return m
}
