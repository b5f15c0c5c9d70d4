// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package catalog

import (
	rerrors "github.com/sopheayat/slms-geo-portal/pkg/errors"
)

type SaveContextInput struct {
	Id              int
	Label           string
	Labels          map[string]string
	InfoFile        string
	InlineLegendUrl string
	Active          bool
	LayerIds        []int
}

// SaveContext overwrites the editable attributes of the context with the
// given id and re-resolves its layer references against the live layer
// catalog, dropping unresolved ids.  Times are recomputed for the whole
// tree afterwards.
func (c *PortalCatalog) SaveContext(input *SaveContextInput) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	context, ok := c.contextsById[input.Id]
	if !ok {
		return &rerrors.ErrMissingObject{Type: "context", Id: input.Id}
	}

	context.Label = input.Label
	context.Labels = input.Labels
	context.InfoFile = input.InfoFile
	context.InlineLegendUrl = input.InlineLegendUrl
	context.Active = input.Active
	context.Layers = c.resolveLayers(input.LayerIds)
	c.aggregateTimes()
	return nil
}
