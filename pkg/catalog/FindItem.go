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

// FindItem returns the first Group or Context with the given id, searching
// depth-first from the root in insertion order.  Nodes detached from the
// tree are not found even if they are still in the arena.
func (c *PortalCatalog) FindItem(id int) (core.Node, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.findItem(id)
}

// ParentOf returns the parent group of the node with the given id, or
// false for the root and for unknown ids.
func (c *PortalCatalog) ParentOf(id int) (*core.Group, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	parentId, ok := c.parents[id]
	if !ok {
		return nil, false
	}
	parent, ok := c.groups[parentId]
	return parent, ok
}

// Descendants lists the subtree rooted at the given id in depth-first
// insertion order, excluding the node itself.
func (c *PortalCatalog) Descendants(id int) []core.Node {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	group, ok := c.groups[id]
	if !ok {
		return make([]core.Node, 0)
	}
	nodes := make([]core.Node, 0)
	c.walk(group, func(node core.Node) {
		nodes = append(nodes, node)
	})
	return nodes
}

func (c *PortalCatalog) findItem(id int) (core.Node, bool) {
	root := c.groups[c.rootId]
	if root.Id == id {
		return root, true
	}
	var found core.Node
	c.walk(root, func(node core.Node) {
		if found == nil && node.GetID() == id {
			found = node
		}
	})
	if found == nil {
		return nil, false
	}
	return found, true
}

// walk visits the subtree below g depth-first in insertion order.  Items
// whose target is missing from the arena are skipped.
func (c *PortalCatalog) walk(g *core.Group, visit func(core.Node)) {
	for _, item := range g.Items {
		switch item.Kind {
		case core.ItemKindGroup:
			child, ok := c.groups[item.Id]
			if !ok {
				continue
			}
			visit(child)
			c.walk(child, visit)
		case core.ItemKindContext:
			child, ok := c.contextsById[item.Id]
			if !ok {
				continue
			}
			visit(child)
		}
	}
}

// findGroup resolves an id to a Group reachable from the root.  Caller
// must hold the mutex.
func (c *PortalCatalog) findGroup(id int) (*core.Group, bool) {
	node, ok := c.findItem(id)
	if !ok {
		return nil, false
	}
	group, ok := node.(*core.Group)
	return group, ok
}
