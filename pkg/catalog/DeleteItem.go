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

// DeleteItem removes the node with the given id from its parent's items.
// Deletion is non-recursive: descendants are abandoned in the arena and
// contexts stay in the flat list.  Dump only walks the tree, so orphans
// are dropped the next time the configuration is persisted.  Returns
// false without side effects when the id does not resolve or names the
// root.
func (c *PortalCatalog) DeleteItem(id int) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, ok := c.findItem(id); !ok {
		return false
	}
	parentId, ok := c.parents[id]
	if !ok {
		return false
	}
	parent, ok := c.groups[parentId]
	if !ok {
		return false
	}

	items := make([]core.Item, 0, len(parent.Items))
	for _, item := range parent.Items {
		if item.Id == id {
			continue
		}
		items = append(items, item)
	}
	parent.Items = items
	delete(c.parents, id)
	return true
}
