// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package catalog

import (
	"github.com/sopheayat/slms-geo-portal/pkg/core"
)

// ActiveLayers returns the de-duplicated union of the layers of every
// active context, ordered by first occurrence across contexts in
// context-list order, then by layer order within each context.  The
// result is derived on demand from current state, never cached.
func (c *PortalCatalog) ActiveLayers() []core.Layer {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.activeLayers()
}

// QueryableLayers returns the subset of the active layers that expose at
// least one statistics descriptor.
func (c *PortalCatalog) QueryableLayers() []core.Layer {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	layers := make([]core.Layer, 0)
	for _, layer := range c.activeLayers() {
		if wms, ok := layer.(*core.WMSLayer); ok && wms.Queryable() {
			layers = append(layers, layer)
		}
	}
	return layers
}

func (c *PortalCatalog) activeLayers() []core.Layer {
	layers := make([]core.Layer, 0)
	seen := map[int]struct{}{}
	for _, context := range c.contexts {
		if _, active := c.active[context.Id]; !active {
			continue
		}
		for _, layer := range context.Layers {
			if _, duplicate := seen[layer.GetID()]; duplicate {
				continue
			}
			seen[layer.GetID()] = struct{}{}
			layers = append(layers, layer)
		}
	}
	return layers
}
