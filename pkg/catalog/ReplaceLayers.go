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

// ReplaceLayers swaps the layer catalog wholesale.  Every context's layer
// references are re-resolved against the new catalog; references to ids
// absent from the new catalog are dropped silently.  Times are recomputed
// afterwards.
func (c *PortalCatalog) ReplaceLayers(layers []core.Layer) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.layers = layers
	c.layersById = make(map[int]core.Layer, len(layers))
	for _, layer := range layers {
		if _, ok := c.layersById[layer.GetID()]; ok {
			continue
		}
		c.layersById[layer.GetID()] = layer
	}

	for _, context := range c.contexts {
		context.Layers = c.resolveLayers(layerIds(context.Layers))
	}
	c.aggregateTimes()
}

func layerIds(layers []core.Layer) []int {
	ids := make([]int, 0, len(layers))
	for _, layer := range layers {
		ids = append(ids, layer.GetID())
	}
	return ids
}
