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

func TestContextMap(t *testing.T) {
	c := &Context{
		Id:     10,
		Label:  "Weather",
		Active: true,
		Layers: []Layer{
			&OSMLayer{Id: 3, Visible: true},
			&BingAerialLayer{Id: 4},
		},
		Times: []string{"2020-01-01"},
	}

	// times are derived state and stay out of the document shape
	out := c.Map(nil)
	assert.Equal(t, map[string]interface{}{
		"id":     10,
		"label":  "Weather",
		"active": true,
		"layers": []int{3, 4},
	}, out)
}

func TestContextLayerIds(t *testing.T) {
	c := &Context{Id: 10, Layers: make([]Layer, 0)}
	assert.Equal(t, []int{}, c.LayerIds())
}
