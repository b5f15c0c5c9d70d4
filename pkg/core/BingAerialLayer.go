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

// BingAerialLayer is the Bing Maps aerial base layer.
type BingAerialLayer struct {
	Id      int
	Visible bool
}

func (l *BingAerialLayer) GetID() int {
	return l.Id
}

func (l *BingAerialLayer) GetVisible() bool {
	return l.Visible
}

func (l *BingAerialLayer) Map(ctx context.Context) map[string]interface{} {
	return map[string]interface{}{
		"type":    "bing-aerial",
		"id":      l.Id,
		"visible": l.Visible,
	}
}
