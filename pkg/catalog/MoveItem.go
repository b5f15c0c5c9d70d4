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

// MoveItem reparents the node with the given id into the group with the
// given target id at the given position, as with drag and drop.  The
// ordered items of both affected groups are rebuilt and the parent index
// is re-stamped for every item in both lists.  Returns false without side
// effects when the node, its parent, or the target group does not
// resolve, or when the target is inside the moved subtree.
func (c *PortalCatalog) MoveItem(id int, targetGroupId int, position int) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	node, ok := c.findItem(id)
	if !ok {
		return false
	}
	sourceId, ok := c.parents[id]
	if !ok {
		return false
	}
	source, ok := c.groups[sourceId]
	if !ok {
		return false
	}
	target, ok := c.findGroup(targetGroupId)
	if !ok {
		return false
	}

	// moving a group under its own descendant would detach the subtree
	// from the root
	if moved, ok := node.(*core.Group); ok {
		if moved.Id == target.Id {
			return false
		}
		cycle := false
		c.walk(moved, func(descendant core.Node) {
			if descendant.GetID() == target.Id {
				cycle = true
			}
		})
		if cycle {
			return false
		}
	}

	sourceItems := make([]core.Item, 0, len(source.Items))
	for _, item := range source.Items {
		if item.Id == id {
			continue
		}
		sourceItems = append(sourceItems, item)
	}
	source.Items = sourceItems

	if position < 0 || position > len(target.Items) {
		position = len(target.Items)
	}
	targetItems := make([]core.Item, 0, len(target.Items)+1)
	targetItems = append(targetItems, target.Items[:position]...)
	targetItems = append(targetItems, core.Item{Kind: node.GetKind(), Id: id})
	targetItems = append(targetItems, target.Items[position:]...)
	target.Items = targetItems

	for _, item := range source.Items {
		c.parents[item.Id] = source.Id
	}
	for _, item := range target.Items {
		c.parents[item.Id] = target.Id
	}
	return true
}
