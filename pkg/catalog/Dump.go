// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package catalog

import (
	"context"
)

import (
	"github.com/sopheayat/slms-geo-portal/pkg/core"
)

// Dump serializes the catalog back to the configuration document shape,
// the exact inverse of load: a flat layers array, a flat contexts array,
// and the group tree with {group: {...}} / {context: id} item wrappers.
// Only the tree is walked, so contexts orphaned by non-recursive deletes
// are dropped here.
func (c *PortalCatalog) Dump(ctx context.Context) map[string]interface{} {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	layers := make([]map[string]interface{}, 0, len(c.layers))
	for _, layer := range c.layers {
		layers = append(layers, layer.Map(ctx))
	}

	reachable := map[int]struct{}{}
	c.walk(c.groups[c.rootId], func(node core.Node) {
		if context, ok := node.(*core.Context); ok {
			reachable[context.Id] = struct{}{}
		}
	})

	contexts := make([]map[string]interface{}, 0, len(c.contexts))
	for _, entry := range c.contexts {
		if _, ok := reachable[entry.Id]; !ok {
			continue
		}
		contexts = append(contexts, entry.Map(ctx))
	}

	return map[string]interface{}{
		"layers":   layers,
		"contexts": contexts,
		"group":    c.dumpGroup(ctx, c.groups[c.rootId]),
	}
}

func (c *PortalCatalog) dumpGroup(ctx context.Context, group *core.Group) map[string]interface{} {
	m := group.Map(ctx)
	items := make([]map[string]interface{}, 0, len(group.Items))
	for _, item := range group.Items {
		switch item.Kind {
		case core.ItemKindGroup:
			child, ok := c.groups[item.Id]
			if !ok {
				continue
			}
			items = append(items, map[string]interface{}{"group": c.dumpGroup(ctx, child)})
		case core.ItemKindContext:
			child, ok := c.contextsById[item.Id]
			if !ok {
				continue
			}
			items = append(items, map[string]interface{}{"context": child.Id})
		}
	}
	m["items"] = items
	return m
}
