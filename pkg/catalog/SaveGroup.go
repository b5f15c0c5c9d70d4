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

type SaveGroupInput struct {
	Id        int
	Label     string
	Labels    map[string]string
	InfoFile  string
	Exclusive bool
}

// SaveGroup overwrites the editable attributes of the group with the given
// id in place.  The items of the group are not touched.
func (c *PortalCatalog) SaveGroup(input *SaveGroupInput) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	group, ok := c.findGroup(input.Id)
	if !ok {
		return &rerrors.ErrMissingObject{Type: "group", Id: input.Id}
	}

	group.Label = input.Label
	group.Labels = input.Labels
	group.InfoFile = input.InfoFile
	group.Exclusive = input.Exclusive
	return nil
}
