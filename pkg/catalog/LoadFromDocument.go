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
	rerrors "github.com/sopheayat/slms-geo-portal/pkg/errors"
	"github.com/sopheayat/slms-geo-portal/pkg/parser"
)

// LoadFromDocument replaces the catalog state with the content of an
// already-validated configuration document.  The replacement is atomic:
// the document is loaded into fresh state first, and the previous state
// remains untouched if any part of the load fails.
func (c *PortalCatalog) LoadFromDocument(doc interface{}) error {

	fresh := NewPortalCatalog()
	if err := fresh.load(doc); err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.layers = fresh.layers
	c.layersById = fresh.layersById
	c.contexts = fresh.contexts
	c.contextsById = fresh.contextsById
	c.groups = fresh.groups
	c.rootId = fresh.rootId
	c.parents = fresh.parents
	c.active = fresh.active
	c.contextTimes = fresh.contextTimes
	c.editing = nil
	return nil
}

func (c *PortalCatalog) load(doc interface{}) error {

	rawLayers, err := parser.ParseArray(doc, "layers")
	if err != nil {
		return errors.Wrap(err, "error parsing layers")
	}
	for _, raw := range rawLayers {
		layer, err := c.ParseLayer(raw)
		if err != nil {
			return errors.Wrap(&rerrors.ErrInvalidObject{Value: raw}, err.Error())
		}
		c.layers = append(c.layers, layer)
		if _, ok := c.layersById[layer.GetID()]; !ok {
			c.layersById[layer.GetID()] = layer
		}
	}

	rawContexts, err := parser.ParseArray(doc, "contexts")
	if err != nil {
		return errors.Wrap(err, "error parsing contexts")
	}
	for _, raw := range rawContexts {
		context, ids, err := c.ParseContext(raw)
		if err != nil {
			return errors.Wrap(&rerrors.ErrInvalidObject{Value: raw}, err.Error())
		}
		context.Layers = c.resolveLayers(ids)
		c.contexts = append(c.contexts, context)
		c.contextsById[context.Id] = context
		if context.Active {
			c.active[context.Id] = struct{}{}
		}
	}

	rawGroup := gtg.TryGet(doc, "group", nil)
	if rawGroup == nil {
		return &rerrors.ErrMissingRequiredParameter{Name: "group"}
	}
	root, err := c.parseGroup(rawGroup)
	if err != nil {
		return errors.Wrap(err, "error parsing group tree")
	}
	c.groups[root.Id] = root
	c.rootId = root.Id
	delete(c.parents, root.Id)

	c.aggregateTimes()
	return nil
}
