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

// Group is a folder-like container in the configuration hierarchy.  Items
// references child Groups and Contexts by id in insertion order.  Parent
// links are not stored on the Group; the catalog maintains them as an
// index keyed by id.
type Group struct {
	Id        int
	Label     string
	Labels    map[string]string
	InfoFile  string
	Exclusive bool
	Items     []Item
}

func (g *Group) GetID() int {
	return g.Id
}

func (g *Group) GetKind() ItemKind {
	return ItemKindGroup
}

// Map returns the document shape of the group without its items.  The
// catalog fills in items when dumping, since resolving them requires the
// arena.
func (g *Group) Map(ctx context.Context) map[string]interface{} {
	m := map[string]interface{}{
		"id":    g.Id,
		"label": g.Label,
	}
	if len(g.Labels) > 0 {
		m["labels"] = g.Labels
	}
	if len(g.InfoFile) > 0 {
		m["infoFile"] = g.InfoFile
	}
	if g.Exclusive {
		m["exclusive"] = true
	}
	return m
}
