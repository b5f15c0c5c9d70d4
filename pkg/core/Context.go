// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package core

import (
	"context"
)

// Context is a named, independently activatable bundle of layers
// representing a map preset.  Layers holds resolved references into the
// layer catalog; Times is derived state recomputed by the catalog and is
// not part of the persisted document.
type Context struct {
	Id              int
	Label           string
	Labels          map[string]string
	InfoFile        string
	InlineLegendUrl string
	DownloadUrl     string
	Active          bool
	Layers          []Layer
	Times           []string
}

func (c *Context) GetID() int {
	return c.Id
}

func (c *Context) GetKind() ItemKind {
	return ItemKindContext
}

// LayerIds returns the ids of the resolved member layers in order.
func (c *Context) LayerIds() []int {
	ids := make([]int, 0, len(c.Layers))
	for _, layer := range c.Layers {
		ids = append(ids, layer.GetID())
	}
	return ids
}

func (c *Context) Map(ctx context.Context) map[string]interface{} {
	m := map[string]interface{}{
		"id":     c.Id,
		"label":  c.Label,
		"active": c.Active,
		"layers": c.LayerIds(),
	}
	if len(c.Labels) > 0 {
		m["labels"] = c.Labels
	}
	if len(c.InfoFile) > 0 {
		m["infoFile"] = c.InfoFile
	}
	if len(c.InlineLegendUrl) > 0 {
		m["inlineLegendUrl"] = c.InlineLegendUrl
	}
	if len(c.DownloadUrl) > 0 {
		m["downloadUrl"] = c.DownloadUrl
	}
	return m
}
