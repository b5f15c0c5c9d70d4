// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

import (
	"github.com/sopheayat/slms-geo-portal/pkg/core"
)

func testDocument() map[string]interface{} {
	return map[string]interface{}{
		"layers": []interface{}{
			map[string]interface{}{
				"type":       "wms",
				"id":         1,
				"name":       "rainfall",
				"serverUrls": []interface{}{"https://wms.example.com/geoserver/wms"},
				"times":      []interface{}{"2020-01-03", "2020-01-01"},
				"statistics": []interface{}{
					map[string]interface{}{
						"type":   "url",
						"labels": map[string]interface{}{"en": "Rainfall"},
						"url":    "https://stats.example.com/rainfall",
					},
				},
			},
			map[string]interface{}{
				"type":       "wms",
				"id":         2,
				"name":       "wind",
				"serverUrls": []interface{}{"https://wms.example.com/geoserver/wms"},
				"times":      []interface{}{"2020-01-02", "2020-01-01"},
			},
			map[string]interface{}{
				"type": "osm",
				"id":   3,
			},
		},
		"contexts": []interface{}{
			map[string]interface{}{
				"id":     10,
				"label":  "Weather",
				"active": true,
				"layers": []interface{}{1, 2},
			},
			map[string]interface{}{
				"id":     11,
				"label":  "Base",
				"layers": []interface{}{3},
			},
		},
		"group": map[string]interface{}{
			"id":    0,
			"label": "root",
			"items": []interface{}{
				map[string]interface{}{"context": 10},
				map[string]interface{}{
					"group": map[string]interface{}{
						"id":    20,
						"label": "More",
						"items": []interface{}{
							map[string]interface{}{"context": 11},
						},
					},
				},
			},
		},
	}
}

func loadTestCatalog(t *testing.T) *PortalCatalog {
	c := NewPortalCatalog()
	err := c.LoadFromDocument(testDocument())
	assert.NoError(t, err)
	return c
}

func TestLoadFromDocument(t *testing.T) {
	c := loadTestCatalog(t)

	assert.Len(t, c.Layers(), 3)
	assert.Len(t, c.Contexts(), 2)

	node, ok := c.FindItem(10)
	assert.True(t, ok)
	assert.Equal(t, core.ItemKindContext, node.GetKind())

	node, ok = c.FindItem(20)
	assert.True(t, ok)
	assert.Equal(t, core.ItemKindGroup, node.GetKind())

	_, ok = c.FindItem(99)
	assert.False(t, ok)

	parent, ok := c.ParentOf(11)
	assert.True(t, ok)
	assert.Equal(t, 20, parent.Id)

	parent, ok = c.ParentOf(20)
	assert.True(t, ok)
	assert.Equal(t, 0, parent.Id)

	// layer references resolved in order
	context, ok := c.Context(10)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, context.LayerIds())

	// active seeded from the document
	assert.Equal(t, []int{10}, c.ActiveContextIds())
}

func TestLoadReplacesStateAtomically(t *testing.T) {
	c := loadTestCatalog(t)

	// a document that fails mid-load must leave the previous state alone
	bad := testDocument()
	bad["layers"] = []interface{}{
		map[string]interface{}{"type": "wms", "name": "no id"},
	}
	err := c.LoadFromDocument(bad)
	assert.Error(t, err)
	assert.Len(t, c.Layers(), 3)
	assert.Len(t, c.Contexts(), 2)
}

func TestAggregateTimes(t *testing.T) {
	c := loadTestCatalog(t)

	context, ok := c.Context(10)
	assert.True(t, ok)
	assert.Equal(t, []string{"2020-01-01", "2020-01-02", "2020-01-03"}, context.Times)

	current, ok := c.ContextTime(10)
	assert.True(t, ok)
	assert.Equal(t, "2020-01-03", current)

	// base layers expose no times
	context, ok = c.Context(11)
	assert.True(t, ok)
	assert.Len(t, context.Times, 0)
	_, ok = c.ContextTime(11)
	assert.False(t, ok)

	// recomputation is idempotent
	c.AggregateTimes()
	context, _ = c.Context(10)
	assert.Equal(t, []string{"2020-01-01", "2020-01-02", "2020-01-03"}, context.Times)
}

func TestAddGroup(t *testing.T) {
	c := loadTestCatalog(t)

	group := c.AddGroup(20)
	assert.Equal(t, "New group", group.Label)

	parent, ok := c.ParentOf(group.Id)
	assert.True(t, ok)
	assert.Equal(t, 20, parent.Id)

	// an unresolved parent falls back to the root
	orphan := c.AddGroup(99)
	parent, ok = c.ParentOf(orphan.Id)
	assert.True(t, ok)
	assert.Equal(t, 0, parent.Id)

	// ids are fresh across groups and contexts
	assert.NotEqual(t, group.Id, orphan.Id)
}

func TestAddContext(t *testing.T) {
	c := loadTestCatalog(t)

	context := c.AddContext()
	assert.Equal(t, "New context", context.Label)
	assert.Len(t, context.Layers, 0)
	assert.Len(t, c.Contexts(), 3)

	parent, ok := c.ParentOf(context.Id)
	assert.True(t, ok)
	assert.Equal(t, 0, parent.Id)
}

func TestSaveGroup(t *testing.T) {
	c := loadTestCatalog(t)

	err := c.SaveGroup(&SaveGroupInput{
		Id:        20,
		Label:     "Overlays",
		Labels:    map[string]string{"en": "Overlays"},
		Exclusive: true,
	})
	assert.NoError(t, err)

	node, ok := c.FindItem(20)
	assert.True(t, ok)
	group := node.(*core.Group)
	assert.Equal(t, "Overlays", group.Label)
	assert.True(t, group.Exclusive)
	// items untouched by an attribute save
	assert.Len(t, group.Items, 1)

	err = c.SaveGroup(&SaveGroupInput{Id: 99, Label: "missing"})
	assert.Error(t, err)
}

func TestSaveContextDropsUnresolvedLayers(t *testing.T) {
	c := loadTestCatalog(t)

	err := c.SaveContext(&SaveContextInput{
		Id:       11,
		Label:    "Base",
		LayerIds: []int{3, 1, 99},
	})
	assert.NoError(t, err)

	context, ok := c.Context(11)
	assert.True(t, ok)
	assert.Equal(t, []int{3, 1}, context.LayerIds())

	// times recomputed from the new membership
	current, ok := c.ContextTime(11)
	assert.True(t, ok)
	assert.Equal(t, "2020-01-03", current)

	err = c.SaveContext(&SaveContextInput{Id: 99})
	assert.Error(t, err)
}

func TestSelectForEditing(t *testing.T) {
	c := loadTestCatalog(t)

	node, ok := c.SelectForEditing(11)
	assert.True(t, ok)
	assert.Equal(t, 11, node.GetID())

	node, ok = c.Editing()
	assert.True(t, ok)
	assert.Equal(t, 11, node.GetID())

	// an unresolved id clears the selection instead of failing
	_, ok = c.SelectForEditing(99)
	assert.False(t, ok)
	_, ok = c.Editing()
	assert.False(t, ok)
}

func TestDeleteItem(t *testing.T) {
	c := loadTestCatalog(t)

	// deleting a group abandons its descendants rather than cascading
	assert.True(t, c.DeleteItem(20))

	_, ok := c.FindItem(20)
	assert.False(t, ok)
	_, ok = c.FindItem(11)
	assert.False(t, ok)

	// the orphaned context stays in the flat list until the next dump
	_, ok = c.Context(11)
	assert.True(t, ok)
	assert.Len(t, c.Contexts(), 2)

	dump := c.Dump(nil)
	assert.Len(t, dump["contexts"], 1)

	// unresolved and repeated deletes are no-ops
	assert.False(t, c.DeleteItem(99))
	assert.False(t, c.DeleteItem(20))
	assert.False(t, c.DeleteItem(0))
}

func TestMoveItem(t *testing.T) {
	c := loadTestCatalog(t)

	assert.True(t, c.MoveItem(11, 0, 0))

	parent, ok := c.ParentOf(11)
	assert.True(t, ok)
	assert.Equal(t, 0, parent.Id)
	assert.Equal(t, 11, c.Root().Items[0].Id)
	assert.Len(t, c.Root().Items, 3)

	node, _ := c.FindItem(20)
	assert.Len(t, node.(*core.Group).Items, 0)

	// out-of-range positions clamp to append
	assert.True(t, c.MoveItem(11, 20, 100))
	parent, _ = c.ParentOf(11)
	assert.Equal(t, 20, parent.Id)

	// a group cannot be moved into its own subtree
	assert.True(t, c.MoveItem(11, 20, -1))
	assert.False(t, c.MoveItem(20, 20, -1))
	group := c.AddGroup(20)
	assert.False(t, c.MoveItem(20, group.Id, -1))

	// unresolved targets are no-ops
	assert.False(t, c.MoveItem(99, 0, 0))
	assert.False(t, c.MoveItem(11, 99, 0))
}

func TestReplaceLayers(t *testing.T) {
	c := loadTestCatalog(t)

	layer, err := c.ParseLayer(map[string]interface{}{
		"type":       "wms",
		"id":         1,
		"name":       "rainfall-v2",
		"serverUrls": []interface{}{"https://wms.example.com/geoserver/wms"},
		"times":      []interface{}{"2021-06-01"},
	})
	assert.NoError(t, err)

	c.ReplaceLayers([]core.Layer{layer})

	assert.Len(t, c.Layers(), 1)

	// every context re-resolves against the new catalog
	context, _ := c.Context(10)
	assert.Equal(t, []int{1}, context.LayerIds())
	context, _ = c.Context(11)
	assert.Len(t, context.LayerIds(), 0)

	// aggregated times follow the replacement
	current, ok := c.ContextTime(10)
	assert.True(t, ok)
	assert.Equal(t, "2021-06-01", current)
	_, ok = c.ContextTime(11)
	assert.False(t, ok)
}

func TestReplaceLayersFirstWins(t *testing.T) {
	c := loadTestCatalog(t)

	first, err := c.ParseLayer(map[string]interface{}{
		"type": "osm", "id": 7,
	})
	assert.NoError(t, err)
	second, err := c.ParseLayer(map[string]interface{}{
		"type": "bing-aerial", "id": 7,
	})
	assert.NoError(t, err)

	c.ReplaceLayers([]core.Layer{first, second})

	layer, ok := c.Layer(7)
	assert.True(t, ok)
	assert.IsType(t, &core.OSMLayer{}, layer)
}

func TestToggleContext(t *testing.T) {
	c := loadTestCatalog(t)

	assert.Equal(t, []int{10}, c.ActiveContextIds())

	assert.True(t, c.ToggleContext(11))
	assert.Equal(t, []int{10, 11}, c.ActiveContextIds())

	assert.True(t, c.ToggleContext(11))
	assert.Equal(t, []int{10}, c.ActiveContextIds())

	assert.False(t, c.ToggleContext(99))
	assert.Equal(t, []int{10}, c.ActiveContextIds())
}

func TestIsActive(t *testing.T) {
	c := loadTestCatalog(t)

	assert.True(t, c.IsActive(10))
	assert.False(t, c.IsActive(11))
	assert.False(t, c.IsActive(99))

	// membership tracks toggles, not the persisted default flag
	assert.True(t, c.ToggleContext(10))
	assert.False(t, c.IsActive(10))
	context, ok := c.Context(10)
	assert.True(t, ok)
	assert.True(t, context.Active)

	assert.True(t, c.ToggleContext(11))
	assert.True(t, c.IsActive(11))
}

func TestDescendants(t *testing.T) {
	c := loadTestCatalog(t)

	ids := make([]int, 0)
	for _, node := range c.Descendants(0) {
		ids = append(ids, node.GetID())
	}
	assert.Equal(t, []int{10, 20, 11}, ids)

	nodes := c.Descendants(20)
	assert.Len(t, nodes, 1)
	assert.Equal(t, 11, nodes[0].GetID())

	// contexts have no subtree; unknown ids yield nothing
	assert.Len(t, c.Descendants(10), 0)
	assert.Len(t, c.Descendants(99), 0)
}

func TestSetContextTime(t *testing.T) {
	c := loadTestCatalog(t)

	c.SetContextTime(10, "2020-01-01")
	current, ok := c.ContextTime(10)
	assert.True(t, ok)
	assert.Equal(t, "2020-01-01", current)

	// recomputation resets the selection to the latest instant
	c.AggregateTimes()
	current, _ = c.ContextTime(10)
	assert.Equal(t, "2020-01-03", current)
}

func TestActiveLayers(t *testing.T) {
	c := loadTestCatalog(t)

	assert.Equal(t, []int{1, 2}, layerIds(c.ActiveLayers()))
	assert.Equal(t, []int{1}, layerIds(c.QueryableLayers()))

	// overlap across contexts is de-duplicated, first occurrence wins
	err := c.SaveContext(&SaveContextInput{Id: 11, Label: "Base", LayerIds: []int{2, 3}})
	assert.NoError(t, err)
	assert.True(t, c.ToggleContext(11))

	assert.Equal(t, []int{1, 2, 3}, layerIds(c.ActiveLayers()))
	assert.Equal(t, []int{1}, layerIds(c.QueryableLayers()))
}

func TestDumpRoundTrip(t *testing.T) {
	c := loadTestCatalog(t)

	dump := c.Dump(nil)

	fresh := NewPortalCatalog()
	err := fresh.LoadFromDocument(dump)
	assert.NoError(t, err)

	assert.Len(t, fresh.Layers(), 3)
	assert.Len(t, fresh.Contexts(), 2)

	parent, ok := fresh.ParentOf(11)
	assert.True(t, ok)
	assert.Equal(t, 20, parent.Id)

	context, ok := fresh.Context(10)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, context.LayerIds())
	assert.Equal(t, []int{10}, fresh.ActiveContextIds())
}
