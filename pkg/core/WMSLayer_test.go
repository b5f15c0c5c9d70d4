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

func TestWMSLayerMap(t *testing.T) {
	l := &WMSLayer{
		Id:         1,
		Name:       "rainfall",
		ServerUrls: []string{"https://wms.example.com/geoserver/wms"},
		Visible:    true,
	}

	out := l.Map(nil)
	assert.Equal(t, map[string]interface{}{
		"type":       "wms",
		"id":         1,
		"name":       "rainfall",
		"serverUrls": []string{"https://wms.example.com/geoserver/wms"},
		"visible":    true,
	}, out)
}

func TestWMSLayerMapFull(t *testing.T) {
	l := &WMSLayer{
		Id:          1,
		Name:        "rainfall",
		ServerUrls:  []string{"https://wms.example.com/geoserver/wms"},
		ImageFormat: "image/png",
		Visible:     false,
		Legend:      &Legend{Type: LegendTypeWms, Style: "rainfall-style"},
		Times:       []string{"2020-01-01"},
	}

	out := l.Map(nil)
	assert.Equal(t, "image/png", out["imageFormat"])
	assert.Equal(t, []string{"2020-01-01"}, out["times"])
	assert.Equal(t, map[string]interface{}{"type": "wms", "style": "rainfall-style"}, out["legend"])
}

func TestWMSLayerQueryable(t *testing.T) {
	l := &WMSLayer{Id: 1}
	assert.False(t, l.Queryable())

	l.Statistics = []Statistics{
		{Type: StatisticsTypeUrl, Url: "https://stats.example.com/rainfall"},
	}
	assert.True(t, l.Queryable())
}
