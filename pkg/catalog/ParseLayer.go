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
	"github.com/sopheayat/slms-geo-portal/pkg/core"
	rerrors "github.com/sopheayat/slms-geo-portal/pkg/errors"
	"github.com/sopheayat/slms-geo-portal/pkg/parser"
)

// ParseLayer builds a layer from a raw document node.  The variant is
// discriminated by the optional type field; wms is implied when absent.
func (c *PortalCatalog) ParseLayer(obj interface{}) (core.Layer, error) {

	if gtg.TryGet(obj, "id", nil) == nil {
		return nil, &rerrors.ErrMissingRequiredParameter{Name: "id"}
	}
	id := parser.ParseInt(obj, "id", 0)
	visible := gtg.TryGetBool(obj, "visible", true)

	layerType := gtg.TryGetString(obj, "type", "")
	if len(layerType) == 0 {
		layerType = "wms"
	}

	switch layerType {
	case "wms":
		name := gtg.TryGetString(obj, "name", "")
		if len(name) == 0 {
			return nil, &rerrors.ErrMissingRequiredParameter{Name: "name"}
		}
		serverUrls, err := parser.ParseStringArray(obj, "serverUrls")
		if err != nil {
			return nil, errors.Wrap(err, "error parsing layer server urls")
		}
		if len(serverUrls) == 0 {
			return nil, &rerrors.ErrMissingRequiredParameter{Name: "serverUrls"}
		}
		styles, err := parser.ParseStringMap(obj, "styles")
		if err != nil {
			return nil, errors.Wrap(err, "error parsing layer styles")
		}
		times, err := parser.ParseStringArray(obj, "times")
		if err != nil {
			return nil, errors.Wrap(err, "error parsing layer times")
		}
		layer := &core.WMSLayer{
			Id:          id,
			Name:        name,
			ServerUrls:  serverUrls,
			ImageFormat: gtg.TryGetString(obj, "imageFormat", ""),
			Visible:     visible,
			Styles:      styles,
			Times:       times,
		}
		if raw := gtg.TryGet(obj, "legend", nil); raw != nil {
			legend, err := parseLegend(raw)
			if err != nil {
				return nil, errors.Wrap(err, "error parsing layer legend")
			}
			layer.Legend = legend
		}
		statistics, err := parser.ParseArray(obj, "statistics")
		if err != nil {
			return nil, errors.Wrap(err, "error parsing layer statistics")
		}
		for _, raw := range statistics {
			entry, err := parseStatistics(raw)
			if err != nil {
				return nil, errors.Wrap(err, "error parsing layer statistics")
			}
			layer.Statistics = append(layer.Statistics, entry)
		}
		return layer, nil
	case "bing-aerial":
		return &core.BingAerialLayer{Id: id, Visible: visible}, nil
	case "osm":
		return &core.OSMLayer{Id: id, Visible: visible}, nil
	}

	return nil, &rerrors.ErrInvalidParameter{Name: "type", Value: layerType}
}

func parseLegend(obj interface{}) (*core.Legend, error) {
	legendType := gtg.TryGetString(obj, "type", "")
	switch legendType {
	case core.LegendTypeWms:
		style := gtg.TryGetString(obj, "style", "")
		if len(style) == 0 {
			return nil, &rerrors.ErrMissingRequiredParameter{Name: "style"}
		}
		return &core.Legend{Type: legendType, Style: style}, nil
	case core.LegendTypeUrl:
		url := gtg.TryGetString(obj, "url", "")
		if len(url) == 0 {
			return nil, &rerrors.ErrMissingRequiredParameter{Name: "url"}
		}
		return &core.Legend{Type: legendType, Url: url}, nil
	}
	return nil, &rerrors.ErrInvalidParameter{Name: "type", Value: legendType}
}

func parseStatistics(obj interface{}) (core.Statistics, error) {
	labels, err := parser.ParseStringMap(obj, "labels")
	if err != nil {
		return core.Statistics{}, errors.Wrap(err, "error parsing statistics labels")
	}
	statisticsType := gtg.TryGetString(obj, "type", "")
	switch statisticsType {
	case core.StatisticsTypeAttributes:
		raw, err := parser.ParseArray(obj, "attributes")
		if err != nil {
			return core.Statistics{}, errors.Wrap(err, "error parsing statistics attributes")
		}
		attributes := make([]core.Attribute, 0, len(raw))
		for _, entry := range raw {
			attributeLabels, err := parser.ParseStringMap(entry, "labels")
			if err != nil {
				return core.Statistics{}, errors.Wrap(err, "error parsing attribute labels")
			}
			name := gtg.TryGetString(entry, "attribute", "")
			if len(name) == 0 {
				return core.Statistics{}, &rerrors.ErrMissingRequiredParameter{Name: "attribute"}
			}
			attributes = append(attributes, core.Attribute{Labels: attributeLabels, Attribute: name})
		}
		return core.Statistics{Type: statisticsType, Labels: labels, Attributes: attributes}, nil
	case core.StatisticsTypeUrl:
		url := gtg.TryGetString(obj, "url", "")
		if len(url) == 0 {
			return core.Statistics{}, &rerrors.ErrMissingRequiredParameter{Name: "url"}
		}
		return core.Statistics{Type: statisticsType, Labels: labels, Url: url}, nil
	}
	return core.Statistics{}, &rerrors.ErrInvalidParameter{Name: "type", Value: statisticsType}
}
