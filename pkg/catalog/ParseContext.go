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

// ParseContext builds a context from a raw document node and returns the
// declared layer ids alongside it.  Layer resolution is left to the
// caller, since it depends on the live layer catalog.
func (c *PortalCatalog) ParseContext(obj interface{}) (*core.Context, []int, error) {

	if gtg.TryGet(obj, "id", nil) == nil {
		return nil, nil, &rerrors.ErrMissingRequiredParameter{Name: "id"}
	}
	labels, err := parser.ParseStringMap(obj, "labels")
	if err != nil {
		return nil, nil, errors.Wrap(err, "error parsing context labels")
	}
	ids, err := parser.ParseIntArray(obj, "layers")
	if err != nil {
		return nil, nil, errors.Wrap(err, "error parsing context layers")
	}

	context := &core.Context{
		Id:              parser.ParseInt(obj, "id", 0),
		Label:           gtg.TryGetString(obj, "label", ""),
		Labels:          labels,
		InfoFile:        gtg.TryGetString(obj, "infoFile", ""),
		InlineLegendUrl: gtg.TryGetString(obj, "inlineLegendUrl", ""),
		DownloadUrl:     gtg.TryGetString(obj, "downloadUrl", ""),
		Active:          gtg.TryGetBool(obj, "active", false),
		Layers:          make([]core.Layer, 0),
		Times:           make([]string, 0),
	}
	return context, ids, nil
}
