// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package catalog

import (
	"sync"
)

import (
	"github.com/sopheayat/slms-geo-portal/pkg/core"
)

// PortalCatalog holds the in-memory map configuration: the layer catalog,
// the flat context list, and the group tree.  The tree is stored as an
// arena of nodes keyed by id with parent links kept in a separate index,
// so reparenting and deletion are index rewrites rather than pointer
// surgery.  All operations are atomic under a single mutex; there is one
// writer at a time.
type PortalCatalog struct {
	mutex        *sync.RWMutex
	layers       []core.Layer
	layersById   map[int]core.Layer
	contexts     []*core.Context
	contextsById map[int]*core.Context
	groups       map[int]*core.Group
	rootId       int
	parents      map[int]int
	active       map[int]struct{}
	contextTimes map[int]string
	editing      *core.Item
}

func NewPortalCatalog() *PortalCatalog {
	root := &core.Group{Id: 0, Label: "root", Items: make([]core.Item, 0)}
	return &PortalCatalog{
		mutex:        &sync.RWMutex{},
		layers:       make([]core.Layer, 0),
		layersById:   map[int]core.Layer{},
		contexts:     make([]*core.Context, 0),
		contextsById: map[int]*core.Context{},
		groups:       map[int]*core.Group{root.Id: root},
		rootId:       root.Id,
		parents:      map[int]int{},
		active:       map[int]struct{}{},
		contextTimes: map[int]string{},
	}
}

// Root returns the root group of the tree.
func (c *PortalCatalog) Root() *core.Group {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.groups[c.rootId]
}

// Layers returns the layer catalog in order.
func (c *PortalCatalog) Layers() []core.Layer {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	layers := make([]core.Layer, len(c.layers))
	copy(layers, c.layers)
	return layers
}

// Contexts returns the flat context list in order.
func (c *PortalCatalog) Contexts() []*core.Context {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	contexts := make([]*core.Context, len(c.contexts))
	copy(contexts, c.contexts)
	return contexts
}

// Layer looks up a layer by id in the layer catalog.
func (c *PortalCatalog) Layer(id int) (core.Layer, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	layer, ok := c.layersById[id]
	return layer, ok
}

// Context looks up a context by id in the flat context list.
func (c *PortalCatalog) Context(id int) (*core.Context, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	context, ok := c.contextsById[id]
	return context, ok
}

// nextItemId returns a fresh id in the shared Group/Context identity
// space.  Caller must hold the mutex.
func (c *PortalCatalog) nextItemId() int {
	next := c.rootId + 1
	for id := range c.groups {
		if id >= next {
			next = id + 1
		}
	}
	for id := range c.contextsById {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

// resolveLayers resolves layer ids against the live layer catalog.
// Unresolved ids are silently dropped, never an error: a context keeps
// working with the layers that still exist.  Caller must hold the mutex.
func (c *PortalCatalog) resolveLayers(ids []int) []core.Layer {
	layers := make([]core.Layer, 0, len(ids))
	for _, id := range ids {
		if layer, ok := c.layersById[id]; ok {
			layers = append(layers, layer)
		}
	}
	return layers
}
