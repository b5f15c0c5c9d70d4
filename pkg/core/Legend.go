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
	LegendTypeWms = "wms"
	LegendTypeUrl = "url"
)

// Legend describes how to render a WMS layer legend, either from a WMS
// style name or from an explicit image url.
type Legend struct {
	Type  string
	Style string
	Url   string
}

func (l Legend) Map(ctx context.Context) map[string]interface{} {
	m := map[string]interface{}{
		"type": l.Type,
	}
	if len(l.Style) > 0 {
		m["style"] = l.Style
	}
	if len(l.Url) > 0 {
		m["url"] = l.Url
	}
	return m
}
