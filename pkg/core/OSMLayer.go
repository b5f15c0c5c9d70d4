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

// OSMLayer is the OpenStreetMap base layer.
type OSMLayer struct {
	Id      int
	Visible bool
}

func (l *OSMLayer) GetID() int {
	return l.Id
}

func (l *OSMLayer) GetVisible() bool {
	return l.Visible
}

func (l *OSMLayer) Map(ctx context.Context) map[string]interface{} {
	return map[string]interface{}{
		"type":    "osm",
		"id":      l.Id,
		"visible": l.Visible,
	}
}
