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

// Layer is a single renderable data source.  The concrete types are
// *WMSLayer, *BingAerialLayer, and *OSMLayer.  Layer ids are unique across
// the whole layer catalog and form an identity space separate from the
// Group/Context tree.
type Layer interface {
	GetID() int
	GetVisible() bool
	Map(ctx context.Context) map[string]interface{}
}
