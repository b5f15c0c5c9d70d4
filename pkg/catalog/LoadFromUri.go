// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package catalog

import (
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-reader-writer/pkg/grw"
	"github.com/spatialcurrent/go-sync-logger/pkg/gsl"
)

import (
	"github.com/sopheayat/slms-geo-portal/pkg/schema"
	"github.com/sopheayat/slms-geo-portal/pkg/serializer"
	"github.com/sopheayat/slms-geo-portal/pkg/util"
)

type LoadFromUriInput struct {
	Uri         string
	Format      string
	Compression string
	Logger      *gsl.Logger
	S3Client    *s3.S3
}

// LoadFromUri reads a configuration document from the given uri, runs the
// schema validator, and replaces the catalog state on acceptance.  On a
// schema rejection the violations are returned as the error and the
// previous state is left exactly as it was.
func (c *PortalCatalog) LoadFromUri(input *LoadFromUriInput) error {

	uri := input.Uri
	format := input.Format
	compression := input.Compression
	if len(format) == 0 {
		_, format, compression = util.SplitNameFormatCompression(uri)
	}

	input.Logger.InfoF("* loading configuration from %s", uri)

	raw, err := serializer.New(format, compression, grw.NoDict).S3Client(input.S3Client).Deserialize(uri)
	if err != nil {
		return errors.Wrapf(err, "error loading configuration from uri %q", uri)
	}
	if raw == nil {
		input.Logger.Info("* configuration was empty")
		return nil
	}

	if violations := schema.Validate(raw); len(violations) > 0 {
		return errors.Wrapf(violations, "error validating configuration from uri %q", uri)
	}

	if err := c.LoadFromDocument(raw); err != nil {
		return errors.Wrapf(err, "error loading configuration from uri %q", uri)
	}

	input.Logger.InfoF("* loaded %d layers and %d contexts", len(c.Layers()), len(c.Contexts()))
	return nil
}
