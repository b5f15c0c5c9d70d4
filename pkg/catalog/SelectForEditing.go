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

// SelectForEditing marks the group or context with the given id as the
// current editing target.  If the id does not resolve the selection is
// cleared, since the target can legitimately disappear between intent and
// dispatch.
func (c *PortalCatalog) SelectForEditing(id int) (core.Node, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	node, ok := c.findItem(id)
	if !ok {
		c.editing = nil
		return nil, false
	}
	c.editing = &core.Item{Kind: node.GetKind(), Id: node.GetID()}
	return node, true
}

// Editing returns the node currently selected for editing, if any.
func (c *PortalCatalog) Editing() (core.Node, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	if c.editing == nil {
		return nil, false
	}
	switch c.editing.Kind {
	case core.ItemKindGroup:
		if group, ok := c.groups[c.editing.Id]; ok {
			return group, true
		}
	case core.ItemKindContext:
		if context, ok := c.contextsById[c.editing.Id]; ok {
			return context, true
		}
	}
	return nil, false
}
