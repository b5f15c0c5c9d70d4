// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package schema

import (
	"fmt"
	"regexp"
	"strconv"
)

// TimePattern matches the accepted ISO-8601 shapes for wms layer times,
// from a date through a full timestamp with optional fractional seconds
// and Z or numeric offset.
var TimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}(:\d{2}(\.\d+)?)?(Z|[+-]\d{2}:\d{2})?)?$`)

var (
	topLevelKeys   = keySet("$schema", "layers", "contexts", "group")
	wmsLayerKeys   = keySet("type", "id", "name", "serverUrls", "imageFormat", "legend", "styles", "times", "statistics", "visible")
	baseLayerKeys  = keySet("type", "id", "visible")
	contextKeys    = keySet("id", "label", "labels", "infoFile", "inlineLegendUrl", "downloadUrl", "active", "layers")
	groupKeys      = keySet("id", "label", "labels", "infoFile", "exclusive", "items")
	wmsLegendKeys  = keySet("type", "style")
	urlLegendKeys  = keySet("type", "url")
	attrStatsKeys  = keySet("type", "labels", "attributes")
	urlStatsKeys   = keySet("type", "labels", "url")
	attributeKeys  = keySet("labels", "attribute")
	itemKeys       = keySet("group", "context")
)

// Validate checks a candidate configuration document against the closed
// world schema: the exact top-level shape, the three layer variants, the
// group/context tree, and uniqueness of ids.  Any field not explicitly
// declared is rejected.  Validation is a pure function and never raises;
// the result is the full list of violations, empty on acceptance.
func Validate(object interface{}) Violations {

	v := &validator{violations: Violations{}}

	doc, ok := asMap(object)
	if !ok {
		v.report("$", "document is not an object")
		return v.violations
	}

	v.checkKeys("$", doc, topLevelKeys)

	if schemaUri, found := doc["$schema"]; found {
		if _, ok := schemaUri.(string); !ok {
			v.report("$.$schema", "expected a string")
		}
	}

	layerIds := map[int]string{}
	if layers, found := doc["layers"]; found {
		if list, ok := asArray(layers); ok {
			for i, layer := range list {
				v.validateLayer(fmt.Sprintf("$.layers[%d]", i), layer, layerIds)
			}
		} else {
			v.report("$.layers", "expected an array")
		}
	} else {
		v.report("$", "missing required key layers")
	}

	nodeIds := map[int]string{}
	if contexts, found := doc["contexts"]; found {
		if list, ok := asArray(contexts); ok {
			for i, context := range list {
				v.validateContext(fmt.Sprintf("$.contexts[%d]", i), context, nodeIds)
			}
		} else {
			v.report("$.contexts", "expected an array")
		}
	} else {
		v.report("$", "missing required key contexts")
	}

	if group, found := doc["group"]; found {
		v.validateGroup("$.group", group, nodeIds)
	} else {
		v.report("$", "missing required key group")
	}

	return v.violations
}

type validator struct {
	violations Violations
}

func (v *validator) report(path string, reason string) {
	v.violations = append(v.violations, Violation{Path: path, Reason: reason})
}

func (v *validator) checkKeys(path string, m map[string]interface{}, allowed map[string]struct{}) {
	for key := range m {
		if _, ok := allowed[key]; !ok {
			v.report(path+"."+key, "unknown key")
		}
	}
}

func (v *validator) validateLayer(path string, object interface{}, seen map[int]string) {
	m, ok := asMap(object)
	if !ok {
		v.report(path, "expected an object")
		return
	}

	layerType := "wms"
	if raw, found := m["type"]; found {
		s, ok := raw.(string)
		if !ok {
			v.report(path+".type", "expected a string")
			return
		}
		layerType = s
	} else {
		// wms is implied only when the wms-specific identity fields are
		// present; anything else is undiscriminable.
		_, hasName := m["name"]
		_, hasServerUrls := m["serverUrls"]
		if !hasName && !hasServerUrls {
			v.report(path, "unable to discriminate layer variant: missing type")
			return
		}
	}

	switch layerType {
	case "wms":
		v.checkKeys(path, m, wmsLayerKeys)
		v.requireId(path, m, "layer", seen)
		v.requireString(path, m, "name")
		if serverUrls, found := m["serverUrls"]; found {
			v.validateStringArray(path+".serverUrls", serverUrls)
		} else {
			v.report(path, "missing required key serverUrls")
		}
		v.optionalString(path, m, "imageFormat")
		v.optionalBool(path, m, "visible")
		if legend, found := m["legend"]; found {
			v.validateLegend(path+".legend", legend)
		}
		if styles, found := m["styles"]; found {
			v.validateStringMap(path+".styles", styles)
		}
		if times, found := m["times"]; found {
			v.validateTimes(path+".times", times)
		}
		if statistics, found := m["statistics"]; found {
			v.validateStatistics(path+".statistics", statistics)
		}
	case "bing-aerial", "osm":
		v.checkKeys(path, m, baseLayerKeys)
		v.requireId(path, m, "layer", seen)
		v.optionalBool(path, m, "visible")
	default:
		v.report(path+".type", "unknown layer type "+layerType)
	}
}

func (v *validator) validateLegend(path string, object interface{}) {
	m, ok := asMap(object)
	if !ok {
		v.report(path, "expected an object")
		return
	}
	legendType, _ := m["type"].(string)
	switch legendType {
	case "wms":
		v.checkKeys(path, m, wmsLegendKeys)
		v.requireString(path, m, "style")
	case "url":
		v.checkKeys(path, m, urlLegendKeys)
		v.requireString(path, m, "url")
	default:
		v.report(path+".type", "expected wms or url")
	}
}

func (v *validator) validateStatistics(path string, object interface{}) {
	list, ok := asArray(object)
	if !ok {
		v.report(path, "expected an array")
		return
	}
	for i, entry := range list {
		entryPath := fmt.Sprintf("%s[%d]", path, i)
		m, ok := asMap(entry)
		if !ok {
			v.report(entryPath, "expected an object")
			continue
		}
		statisticsType, _ := m["type"].(string)
		switch statisticsType {
		case "attributes":
			v.checkKeys(entryPath, m, attrStatsKeys)
			v.requireStringMap(entryPath, m, "labels")
			attributes, found := m["attributes"]
			if !found {
				v.report(entryPath, "missing required key attributes")
				continue
			}
			attributeList, ok := asArray(attributes)
			if !ok {
				v.report(entryPath+".attributes", "expected an array")
				continue
			}
			for j, attribute := range attributeList {
				attributePath := fmt.Sprintf("%s.attributes[%d]", entryPath, j)
				am, ok := asMap(attribute)
				if !ok {
					v.report(attributePath, "expected an object")
					continue
				}
				v.checkKeys(attributePath, am, attributeKeys)
				v.requireStringMap(attributePath, am, "labels")
				v.requireString(attributePath, am, "attribute")
			}
		case "url":
			v.checkKeys(entryPath, m, urlStatsKeys)
			v.requireStringMap(entryPath, m, "labels")
			v.requireString(entryPath, m, "url")
		default:
			v.report(entryPath+".type", "expected attributes or url")
		}
	}
}

func (v *validator) validateContext(path string, object interface{}, seen map[int]string) {
	m, ok := asMap(object)
	if !ok {
		v.report(path, "expected an object")
		return
	}
	v.checkKeys(path, m, contextKeys)
	v.requireId(path, m, "context", seen)
	v.optionalString(path, m, "label")
	v.optionalString(path, m, "infoFile")
	v.optionalString(path, m, "inlineLegendUrl")
	v.optionalString(path, m, "downloadUrl")
	v.optionalBool(path, m, "active")
	if labels, found := m["labels"]; found {
		v.validateStringMap(path+".labels", labels)
	}
	if layers, found := m["layers"]; found {
		list, ok := asArray(layers)
		if !ok {
			v.report(path+".layers", "expected an array")
			return
		}
		for i, id := range list {
			if !isNumber(id) {
				v.report(fmt.Sprintf("%s.layers[%d]", path, i), "expected a layer id")
			}
		}
	}
}

func (v *validator) validateGroup(path string, object interface{}, seen map[int]string) {
	m, ok := asMap(object)
	if !ok {
		v.report(path, "expected an object")
		return
	}
	v.checkKeys(path, m, groupKeys)
	v.requireId(path, m, "group", seen)
	v.optionalString(path, m, "label")
	v.optionalString(path, m, "infoFile")
	v.optionalBool(path, m, "exclusive")
	if labels, found := m["labels"]; found {
		v.validateStringMap(path+".labels", labels)
	}
	items, found := m["items"]
	if !found {
		return
	}
	list, ok := asArray(items)
	if !ok {
		v.report(path+".items", "expected an array")
		return
	}
	for i, item := range list {
		itemPath := fmt.Sprintf("%s.items[%d]", path, i)
		im, ok := asMap(item)
		if !ok {
			v.report(itemPath, "expected an object")
			continue
		}
		v.checkKeys(itemPath, im, itemKeys)
		group, hasGroup := im["group"]
		context, hasContext := im["context"]
		switch {
		case hasGroup == hasContext:
			v.report(itemPath, "expected exactly one of group or context")
		case hasGroup:
			v.validateGroup(itemPath+".group", group, seen)
		case hasContext:
			if !isNumber(context) {
				v.report(itemPath+".context", "expected a context id")
			}
		}
	}
}

func (v *validator) requireId(path string, m map[string]interface{}, kind string, seen map[int]string) {
	raw, found := m["id"]
	if !found {
		v.report(path, "missing required key id")
		return
	}
	if !isNumber(raw) {
		v.report(path+".id", "expected a number")
		return
	}
	id := asInt(raw)
	if previous, duplicate := seen[id]; duplicate {
		v.report(path+".id", "duplicate id "+strconv.Itoa(id)+" already used by "+previous)
		return
	}
	seen[id] = kind + " at " + path
}

func (v *validator) requireString(path string, m map[string]interface{}, name string) {
	raw, found := m[name]
	if !found {
		v.report(path, "missing required key "+name)
		return
	}
	if _, ok := raw.(string); !ok {
		v.report(path+"."+name, "expected a string")
	}
}

func (v *validator) optionalString(path string, m map[string]interface{}, name string) {
	if raw, found := m[name]; found {
		if _, ok := raw.(string); !ok {
			v.report(path+"."+name, "expected a string")
		}
	}
}

func (v *validator) optionalBool(path string, m map[string]interface{}, name string) {
	if raw, found := m[name]; found {
		if _, ok := raw.(bool); !ok {
			v.report(path+"."+name, "expected a boolean")
		}
	}
}

func (v *validator) requireStringMap(path string, m map[string]interface{}, name string) {
	raw, found := m[name]
	if !found {
		v.report(path, "missing required key "+name)
		return
	}
	v.validateStringMap(path+"."+name, raw)
}

func (v *validator) validateStringMap(path string, object interface{}) {
	m, ok := asMap(object)
	if !ok {
		v.report(path, "expected an object")
		return
	}
	for key, value := range m {
		if _, ok := value.(string); !ok {
			v.report(path+"."+key, "expected a string")
		}
	}
}

func (v *validator) validateStringArray(path string, object interface{}) {
	list, ok := asArray(object)
	if !ok {
		v.report(path, "expected an array")
		return
	}
	for i, entry := range list {
		if _, ok := entry.(string); !ok {
			v.report(fmt.Sprintf("%s[%d]", path, i), "expected a string")
		}
	}
}

func (v *validator) validateTimes(path string, object interface{}) {
	list, ok := asArray(object)
	if !ok {
		v.report(path, "expected an array")
		return
	}
	for i, entry := range list {
		s, ok := entry.(string)
		if !ok {
			v.report(fmt.Sprintf("%s[%d]", path, i), "expected a string")
			continue
		}
		if !TimePattern.MatchString(s) {
			v.report(fmt.Sprintf("%s[%d]", path, i), "not an ISO-8601 time: "+s)
		}
	}
}

func keySet(keys ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set
}

func asMap(object interface{}) (map[string]interface{}, bool) {
	switch m := object.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		// yaml deserialization yields interface keys
		out := make(map[string]interface{}, len(m))
		for key, value := range m {
			out[fmt.Sprint(key)] = value
		}
		return out, true
	}
	return nil, false
}

func asArray(object interface{}) ([]interface{}, bool) {
	list, ok := object.([]interface{})
	return list, ok
}

func isNumber(object interface{}) bool {
	switch object.(type) {
	case int, int32, int64, float32, float64:
		return true
	}
	return false
}

func asInt(object interface{}) int {
	switch value := object.(type) {
	case int:
		return value
	case int32:
		return int(value)
	case int64:
		return int(value)
	case float32:
		return int(value)
	case float64:
		return int(value)
	}
	return 0
}
