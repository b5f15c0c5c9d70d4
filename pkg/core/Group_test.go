// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupMap(t *testing.T) {
	g := &Group{
		Id:    20,
		Label: "Overlays",
		Items: []Item{
			{Kind: ItemKindContext, Id: 10},
		},
	}

	// items are filled in by the catalog during a dump
	out := g.Map(nil)
	assert.Equal(t, map[string]interface{}{
		"id":    20,
		"label": "Overlays",
	}, out)
}

func TestGroupMapExclusive(t *testing.T) {
	g := &Group{
		Id:        20,
		Label:     "Overlays",
		Exclusive: true,
		InfoFile:  "overlays.html",
	}

	out := g.Map(nil)
	assert.Equal(t, true, out["exclusive"])
	assert.Equal(t, "overlays.html", out["infoFile"])
}
