// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDocument() map[string]interface{} {
	return map[string]interface{}{
		"$schema": "https://example.com/config.schema.json",
		"layers": []interface{}{
			map[string]interface{}{
				"type":       "wms",
				"id":         1,
				"name":       "rainfall",
				"serverUrls": []interface{}{"https://wms.example.com/geoserver/wms"},
				"times":      []interface{}{"2020-01-01", "2020-01-02T12:00"},
			},
			map[string]interface{}{
				"type": "osm",
				"id":   2,
			},
		},
		"contexts": []interface{}{
			map[string]interface{}{
				"id":     10,
				"label":  "Weather",
				"active": true,
				"layers": []interface{}{1},
			},
		},
		"group": map[string]interface{}{
			"id":    0,
			"label": "root",
			"items": []interface{}{
				map[string]interface{}{"context": 10},
			},
		},
	}
}

func hasViolation(violations Violations, path string) bool {
	for _, violation := range violations {
		if violation.Path == path {
			return true
		}
	}
	return false
}

func TestValidateAccepts(t *testing.T) {
	violations := Validate(validDocument())
	assert.Len(t, violations, 0)
}

func TestValidateNotAnObject(t *testing.T) {
	violations := Validate([]interface{}{})
	assert.True(t, hasViolation(violations, "$"))
}

func TestValidateMissingTopLevelKeys(t *testing.T) {
	violations := Validate(map[string]interface{}{})
	assert.Len(t, violations, 3)
	assert.True(t, hasViolation(violations, "$"))
}

func TestValidateUnknownTopLevelKey(t *testing.T) {
	doc := validDocument()
	doc["mapConfig"] = map[string]interface{}{}
	violations := Validate(doc)
	assert.True(t, hasViolation(violations, "$.mapConfig"))
}

func TestValidateUnknownLayerKey(t *testing.T) {
	doc := validDocument()
	doc["layers"].([]interface{})[0].(map[string]interface{})["opacity"] = 0.5
	violations := Validate(doc)
	assert.True(t, hasViolation(violations, "$.layers[0].opacity"))
}

func TestValidateWmsMissingServerUrls(t *testing.T) {
	doc := validDocument()
	delete(doc["layers"].([]interface{})[0].(map[string]interface{}), "serverUrls")
	violations := Validate(doc)
	assert.True(t, hasViolation(violations, "$.layers[0]"))
}

func TestValidateImpliedWms(t *testing.T) {
	doc := validDocument()
	delete(doc["layers"].([]interface{})[0].(map[string]interface{}), "type")
	violations := Validate(doc)
	assert.Len(t, violations, 0)
}

func TestValidateUndiscriminableLayer(t *testing.T) {
	doc := validDocument()
	doc["layers"].([]interface{})[0] = map[string]interface{}{"id": 1, "visible": true}
	violations := Validate(doc)
	assert.True(t, hasViolation(violations, "$.layers[0]"))
}

func TestValidateBadTime(t *testing.T) {
	doc := validDocument()
	doc["layers"].([]interface{})[0].(map[string]interface{})["times"] = []interface{}{"January 1st"}
	violations := Validate(doc)
	assert.True(t, hasViolation(violations, "$.layers[0].times[0]"))
}

func TestValidateDuplicateLayerId(t *testing.T) {
	doc := validDocument()
	doc["layers"].([]interface{})[1].(map[string]interface{})["id"] = 1
	violations := Validate(doc)
	assert.True(t, hasViolation(violations, "$.layers[1].id"))
}

func TestValidateDuplicateNodeId(t *testing.T) {
	// contexts and groups share one identity space
	doc := validDocument()
	doc["group"].(map[string]interface{})["id"] = 10
	violations := Validate(doc)
	assert.True(t, hasViolation(violations, "$.group.id"))
}

func TestValidateItemShape(t *testing.T) {
	doc := validDocument()
	doc["group"].(map[string]interface{})["items"] = []interface{}{
		map[string]interface{}{
			"group":   map[string]interface{}{"id": 20, "label": "child"},
			"context": 10,
		},
	}
	violations := Validate(doc)
	assert.True(t, hasViolation(violations, "$.group.items[0]"))
}

func TestValidateNestedGroup(t *testing.T) {
	doc := validDocument()
	doc["group"].(map[string]interface{})["items"] = []interface{}{
		map[string]interface{}{"context": 10},
		map[string]interface{}{
			"group": map[string]interface{}{
				"id":        20,
				"label":     "More",
				"exclusive": true,
				"items": []interface{}{
					map[string]interface{}{"context": "ten"},
				},
			},
		},
	}
	violations := Validate(doc)
	assert.Len(t, violations, 1)
	assert.True(t, hasViolation(violations, "$.group.items[1].group.items[0].context"))
}

func TestValidateLegend(t *testing.T) {
	doc := validDocument()
	doc["layers"].([]interface{})[0].(map[string]interface{})["legend"] = map[string]interface{}{
		"type": "gradient",
	}
	violations := Validate(doc)
	assert.True(t, hasViolation(violations, "$.layers[0].legend.type"))
}

func TestValidateStatistics(t *testing.T) {
	doc := validDocument()
	doc["layers"].([]interface{})[0].(map[string]interface{})["statistics"] = []interface{}{
		map[string]interface{}{
			"type":   "url",
			"labels": map[string]interface{}{"en": "Rainfall"},
			"url":    "https://stats.example.com/rainfall",
		},
		map[string]interface{}{
			"type":   "attributes",
			"labels": map[string]interface{}{"en": "Rainfall"},
		},
	}
	violations := Validate(doc)
	assert.Len(t, violations, 1)
	assert.True(t, hasViolation(violations, "$.layers[0].statistics[1]"))
}

func TestValidateNeverRaises(t *testing.T) {
	assert.NotPanics(t, func() {
		Validate(nil)
		Validate(42)
		Validate(map[string]interface{}{"layers": 1, "contexts": true, "group": "x"})
	})
}
