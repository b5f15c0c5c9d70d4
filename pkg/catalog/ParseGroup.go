// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package catalog

import (
	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-try-get/pkg/gtg"
)

import (
	"github.com/sopheayat/slms-geo-portal/pkg/core"
	rerrors "github.com/sopheayat/slms-geo-portal/pkg/errors"
	"github.com/sopheayat/slms-geo-portal/pkg/parser"
)

// parseGroup builds a group and its subtree from a raw document node,
// registering descendant groups in the arena and stamping parent links as
// it goes.  Tree entries referencing contexts absent from the flat list
// are dropped silently.  Caller must hold the mutex.
func (c *PortalCatalog) parseGroup(obj interface{}) (*core.Group, error) {

	if gtg.TryGet(obj, "id", nil) == nil {
		return nil, &rerrors.ErrMissingRequiredParameter{Name: "id"}
	}
	labels, err := parser.ParseStringMap(obj, "labels")
	if err != nil {
		return nil, errors.Wrap(err, "error parsing group labels")
	}

	group := &core.Group{
		Id:        parser.ParseInt(obj, "id", 0),
		Label:     gtg.TryGetString(obj, "label", ""),
		Labels:    labels,
		InfoFile:  gtg.TryGetString(obj, "infoFile", ""),
		Exclusive: gtg.TryGetBool(obj, "exclusive", false),
		Items:     make([]core.Item, 0),
	}

	items, err := parser.ParseArray(obj, "items")
	if err != nil {
		return nil, errors.Wrap(err, "error parsing group items")
	}
	for _, item := range items {
		if sub := gtg.TryGet(item, "group", nil); sub != nil {
			child, err := c.parseGroup(sub)
			if err != nil {
				return nil, err
			}
			c.groups[child.Id] = child
			group.Items = append(group.Items, core.Item{Kind: core.ItemKindGroup, Id: child.Id})
			c.parents[child.Id] = group.Id
			continue
		}
		if ref := gtg.TryGet(item, "context", nil); ref != nil {
			id := parser.ParseInt(item, "context", -1)
			if context, ok := c.contextsById[id]; ok {
				group.Items = append(group.Items, core.Item{Kind: core.ItemKindContext, Id: context.Id})
				c.parents[context.Id] = group.Id
			}
			continue
		}
		return nil, &rerrors.ErrInvalidObject{Value: item}
	}

	return group, nil
}
