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

// AddGroup creates a new group with a placeholder label and appends it to
// the items of the group with the given parent id.  If the parent id does
// not resolve to a reachable group, the new group is attached to the root.
func (c *PortalCatalog) AddGroup(parentId int) *core.Group {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	parent, ok := c.findGroup(parentId)
	if !ok {
		parent = c.groups[c.rootId]
	}

	group := &core.Group{
		Id:     c.nextItemId(),
		Label:  "New group",
		Labels: map[string]string{},
		Items:  make([]core.Item, 0),
	}
	c.groups[group.Id] = group
	parent.Items = append(parent.Items, core.Item{Kind: core.ItemKindGroup, Id: group.Id})
	c.parents[group.Id] = parent.Id
	return group
}
