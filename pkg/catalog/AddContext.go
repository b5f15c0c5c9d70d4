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

// AddContext creates a new context with no layers and no times, appends it
// to the root items and to the flat context list.
func (c *PortalCatalog) AddContext() *core.Context {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	context := &core.Context{
		Id:     c.nextItemId(),
		Label:  "New context",
		Labels: map[string]string{},
		Layers: make([]core.Layer, 0),
		Times:  make([]string, 0),
	}
	c.contexts = append(c.contexts, context)
	c.contextsById[context.Id] = context

	root := c.groups[c.rootId]
	root.Items = append(root.Items, core.Item{Kind: core.ItemKindContext, Id: context.Id})
	c.parents[context.Id] = root.Id
	return context
}
